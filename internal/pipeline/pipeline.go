// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pipeline wires the discovery, parse/extract, resolution,
// file-graph, frecency, and scoring stages into the single end-to-end run
// the command layer drives (spec §2).
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"cruxlines/internal/discover"
	"cruxlines/internal/emit"
	"cruxlines/internal/frecency"
	"cruxlines/internal/graph"
	"cruxlines/internal/index"
	"cruxlines/internal/parse"
	"cruxlines/internal/score"
	"cruxlines/internal/timing"
	"cruxlines/pkg/types"
)

// ErrInvalidArgument marks configuration the command layer rejects before
// any file is touched (spec §7, exit code 2).
var ErrInvalidArgument = errors.New("invalid argument")

// ErrMissingPath re-exports discover.ErrMissingPath so callers can branch
// on it with errors.Is without importing internal/discover themselves.
var ErrMissingPath = discover.ErrMissingPath

// Config holds the resolved CLI configuration for a single run.
type Config struct {
	Paths       []string
	References  bool
	MaxFileSize int64
	Workers     int
}

// Skip is a per-file diagnostic surfaced to the command layer for stderr
// reporting, in the same shape as spec §6's "SKIP <path>: <reason>" line.
type Skip struct {
	Path   string
	Reason string
}

// Result is everything the command layer needs to produce the run's
// output: the stable-sorted scored definitions, whether reference
// locations should be printed, and the skip diagnostics collected along
// the way.
type Result struct {
	Defs       []types.ScoredDefinition
	References bool
	Skips      []Skip
}

// Run executes the full pipeline: discover files, parse and extract
// concurrently, build the name index and resolve references against it,
// build the file-reference graph and rank it, blend in git frecency, score
// every definition, and stable-sort the result. It returns
// ErrMissingPath-wrapping errors for a nonexistent positional path and
// propagates context cancellation; every other failure is per-file and
// recorded as a Skip rather than returned.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.MaxFileSize < 0 {
		return nil, fmt.Errorf("%w: --max-file-size must not be negative", ErrInvalidArgument)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: --workers must not be negative", ErrInvalidArgument)
	}

	discoverStart := time.Now()
	entries, err := discover.Files(cfg.Paths)
	if err != nil {
		return nil, err
	}
	timing.Count("discover", discoverStart, len(entries))

	parseStart := time.Now()
	parsed, err := parse.Run(ctx, entries, cfg.Workers, cfg.MaxFileSize)
	if err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	timing.Count("parse+extract", parseStart, len(entries))

	allFiles := make([]string, 0, len(entries))
	for _, e := range entries {
		allFiles = append(allFiles, e.Path)
	}

	var allDefs []types.Definition
	var allRefs []types.Reference
	var skips []Skip
	for _, r := range parsed {
		if r.Skip != nil {
			skips = append(skips, Skip{Path: r.Skip.Path, Reason: r.Skip.Reason})
			continue
		}
		allDefs = append(allDefs, r.Defs...)
		allRefs = append(allRefs, r.Refs...)
	}

	defer timing.Start("rank+score")()

	idx := index.Build(allDefs)
	resolved := idx.Resolve(allRefs)

	g := graph.Build(allFiles, resolved, idx)
	raw := g.Rank(graph.RankConfig{})

	oracle := frecency.Open(frecencyRoot(cfg.Paths))
	blended := graph.Blend(raw, oracle.Map(allFiles))

	scored := score.Score(allDefs, resolved, idx, blended)
	emit.Sort(scored)

	return &Result{Defs: scored, References: cfg.References, Skips: skips}, nil
}

// Emit writes a Result's scored definitions to w in the spec §4.6 TSV
// format, including per-definition reference locations when the run was
// configured with --references.
func Emit(w io.Writer, result *Result) error {
	return emit.Write(w, result.Defs, result.References)
}

// frecencyRoot picks the directory the git oracle should open from: the
// first positional path if one was given, resolved to its containing
// directory when it names a file (go-git walks upward from there to find
// the enclosing .git), or the current directory for implicit "."
// discovery.
func frecencyRoot(paths []string) string {
	if len(paths) == 0 {
		return "."
	}
	root := paths[0]
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		return filepath.Dir(root)
	}
	return root
}
