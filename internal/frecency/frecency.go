// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package frecency implements the git-history frecency oracle: a pure
// function from file path to a recency-and-frequency scalar, neutral
// (1.0) when no git repository covers the path (spec §6 frecency oracle
// contract).
package frecency

import (
	"math"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// halfLifeDays controls how fast a commit's contribution decays: a commit
// made halfLifeDays ago counts for half of one made today.
const halfLifeDays = 14.0

// Oracle holds the per-path weight table computed once from a single walk
// of the commit log. weights is keyed by path relative to the repository
// root (the same form go-git's diff reports use), not by whatever form the
// caller's paths happen to take — Weight/Map normalize to that form before
// looking a path up.
type Oracle struct {
	weights map[string]float64
	root    string // absolute repository root; empty when no repo was found
}

// Open walks the commit history of the repository containing root, if
// any, and accumulates an exponentially recency-weighted touch count per
// path. When root is not inside a git repository (or history cannot be
// read for any other reason), the Oracle has no weights and Weight
// returns the neutral value for every path.
func Open(root string) *Oracle {
	o := &Oracle{weights: make(map[string]float64)}

	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return o
	}

	wt, err := repo.Worktree()
	if err != nil {
		return o
	}
	o.root = wt.Filesystem.Root()

	head, err := repo.Head()
	if err != nil {
		return o
	}

	iter, err := repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return o
	}

	now := time.Now()
	iter.ForEach(func(c *object.Commit) error {
		o.accumulate(c, now)
		return nil
	})

	return o
}

func (o *Oracle) accumulate(c *object.Commit, now time.Time) {
	if c.NumParents() == 0 {
		return
	}
	parent, err := c.Parent(0)
	if err != nil {
		return
	}
	parentTree, err := parent.Tree()
	if err != nil {
		return
	}
	commitTree, err := c.Tree()
	if err != nil {
		return
	}
	changes, err := parentTree.Diff(commitTree)
	if err != nil {
		return
	}

	ageDays := now.Sub(c.Author.When).Hours() / 24
	contribution := math.Exp2(-ageDays / halfLifeDays)

	for _, change := range changes {
		path := change.To.Name
		if path == "" {
			path = change.From.Name
		}
		o.weights[path] += contribution
	}
}

// Weight returns the frecency scalar for path: 1.0 when the path has no
// history (or no repository was found), plus accumulated recency-weighted
// commit contributions otherwise. path may be relative to the current
// directory or absolute; it is normalized to the repository-root-relative
// form the commit log was indexed under before lookup.
func (o *Oracle) Weight(path string) float32 {
	return float32(1.0 + o.weights[o.repoRelative(path)])
}

// Map evaluates Weight over a fixed set of paths, for callers building a
// full path -> weight table to pass into the file ranker. The returned
// map is keyed by the same path strings passed in, not the normalized
// form used internally, so callers can look results up by their own
// discovery paths.
func (o *Oracle) Map(paths []string) map[string]float64 {
	m := make(map[string]float64, len(paths))
	for _, p := range paths {
		m[p] = float64(o.Weight(p))
	}
	return m
}

// repoRelative converts path into the form commit diffs report paths in:
// slash-separated, relative to the repository root. Without a detected
// repository root (no repo found), path is returned unchanged — every
// lookup against the empty weights map then falls through to the neutral
// value regardless of key, so no normalization is needed in that case.
func (o *Oracle) repoRelative(path string) string {
	if o.root == "" {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(o.root, abs)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
