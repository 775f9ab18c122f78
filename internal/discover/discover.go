// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package discover finds source files under the paths given on the command
// line, honoring gitignore rules for directory arguments while treating
// explicit file arguments as always-included (ripgrep semantics).
package discover

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	ignore "github.com/sabhiram/go-gitignore"

	"cruxlines/internal/lang"
	"cruxlines/pkg/types"
)

// ErrMissingPath is returned when a positional path does not exist.
var ErrMissingPath = errors.New("path does not exist")

var skipDirs = map[string]struct{}{
	"__pycache__":  {},
	"node_modules": {},
	".git":         {},
	".hg":          {},
	".svn":         {},
	"venv":         {},
	".venv":        {},
	"target":       {},
	"dist":         {},
	"build":        {},
}

// Entry is a single discovered source file, tagged with its language.
type Entry struct {
	Path string // as recorded in output: the directory arg joined with the file's path under it, or the literal arg for an explicit file
	Lang types.Lang
}

// Files resolves the CLI's positional <path> arguments into a deduplicated,
// sorted list of source files. A directory argument is scanned recursively
// and filtered by gitignore/git ls-files; a file argument bypasses ignore
// filtering entirely.
func Files(paths []string) ([]Entry, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	seen := make(map[string]bool)
	var entries []Entry

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingPath, p)
		}

		if info.IsDir() {
			dirEntries, err := walkDir(p)
			if err != nil {
				return nil, err
			}
			for _, e := range dirEntries {
				if !seen[e.Path] {
					seen[e.Path] = true
					entries = append(entries, e)
				}
			}
			continue
		}

		l, ok := lang.ForPath(p)
		if !ok {
			continue
		}
		if !seen[p] {
			seen[p] = true
			entries = append(entries, Entry{Path: p, Lang: l})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

// walkDir scans a directory argument, respecting git's tracked-file list
// when root itself contains a .git directory, or root's own .gitignore file
// otherwise; a directory below a repository root is filtered only by its
// own .gitignore. Paths are recorded as root joined with the file's path
// relative to root.
func walkDir(root string) ([]Entry, error) {
	gitFiles := gitLsFiles(root)
	var gi *ignore.GitIgnore
	if gitFiles == nil {
		gi = loadGitignore(root)
	}

	var entries []Entry

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		name := d.Name()

		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if gitFiles != nil {
			if _, ok := gitFiles[rel]; !ok {
				return nil
			}
		} else if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		l, ok := lang.ForPath(path)
		if !ok {
			return nil
		}

		entries = append(entries, Entry{Path: filepath.Join(root, rel), Lang: l})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func gitLsFiles(root string) map[string]struct{} {
	gitDir := filepath.Join(root, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "ls-files", "--cached", "--others", "--exclude-standard")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil
	}

	files := make(map[string]struct{})
	for _, line := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
		if line != "" {
			files[line] = struct{}{}
		}
	}
	return files
}

func loadGitignore(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}
