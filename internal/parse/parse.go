// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package parse runs the parse+extract stage of the pipeline: for every
// discovered file, parse it with the language-appropriate tree-sitter
// grammar and hand the tree to the matching extractor. Stage 2-3 work is
// embarrassingly parallel per file, so it fans out over a worker pool;
// each worker owns its own parser instances because grammar state is not
// reentrant.
package parse

import (
	"context"
	"fmt"
	"os"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"golang.org/x/sync/errgroup"

	"cruxlines/internal/discover"
	"cruxlines/internal/extract"
	"cruxlines/internal/lang"
	"cruxlines/pkg/types"
)

// Skip records a non-fatal per-file failure (spec §7: ParseFailure, ReadFailure).
type Skip struct {
	Path   string
	Reason string
}

// Result is the outcome of parsing and extracting a single file.
type Result struct {
	Path string
	Defs []types.Definition
	Refs []types.Reference
	Skip *Skip
}

// pool holds one lazily constructed parser per language, reused across
// files of that language handled by the same worker.
type pool struct {
	parsers map[types.Lang]*sitter.Parser
}

func newPool() *pool {
	return &pool{parsers: make(map[types.Lang]*sitter.Parser)}
}

func (p *pool) parserFor(l types.Lang) *sitter.Parser {
	if sp, ok := p.parsers[l]; ok {
		return sp
	}
	sp := sitter.NewParser()
	sp.SetLanguage(lang.Grammar(l))
	p.parsers[l] = sp
	return sp
}

// Run parses and extracts every entry concurrently, bounded by workers
// concurrent goroutines, and returns one Result per entry in input order.
// maxFileSize is a byte ceiling past which a file is treated as a
// ReadFailure-class skip rather than parsed. The context is checked
// between files; a cancelled run returns ctx.Err() and no results.
func Run(ctx context.Context, entries []discover.Entry, workers int, maxFileSize int64) ([]Result, error) {
	results := make([]Result, len(entries))

	parserPools := sync.Pool{New: func() any { return newPool() }}

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			p := parserPools.Get().(*pool)
			results[i] = parseOne(gctx, p, entry, maxFileSize)
			parserPools.Put(p)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseOne(ctx context.Context, p *pool, entry discover.Entry, maxFileSize int64) Result {
	info, err := os.Stat(entry.Path)
	if err != nil {
		return Result{Path: entry.Path, Skip: &Skip{Path: entry.Path, Reason: fmt.Sprintf("read failed: %v", err)}}
	}
	if maxFileSize > 0 && info.Size() > maxFileSize {
		return Result{Path: entry.Path, Skip: &Skip{Path: entry.Path, Reason: "file exceeds max-file-size"}}
	}

	source, err := os.ReadFile(entry.Path)
	if err != nil {
		return Result{Path: entry.Path, Skip: &Skip{Path: entry.Path, Reason: fmt.Sprintf("read failed: %v", err)}}
	}

	sp := p.parserFor(entry.Lang)
	tree, err := sp.ParseCtx(ctx, nil, source)
	if err != nil || tree == nil {
		return Result{Path: entry.Path, Skip: &Skip{Path: entry.Path, Reason: "parse failed"}}
	}

	ex := extract.For(entry.Lang)
	if ex == nil {
		return Result{Path: entry.Path, Skip: &Skip{Path: entry.Path, Reason: "no extractor for language"}}
	}

	defs, refs := ex(tree.RootNode(), source, entry.Path)
	return Result{Path: entry.Path, Defs: defs, Refs: refs}
}
