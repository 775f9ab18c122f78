// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package graph builds the directed file-reference graph and computes the
// per-file stationary distribution (PageRank) blended with git frecency.
package graph

import "cruxlines/pkg/types"

type edgeKey struct{ from, to string }

// Graph is the file-to-file reference graph: nodes are every known file
// (even ones with no edges, so they still receive PageRank teleport mass);
// edges carry the fractional weight accumulated in Build.
type Graph struct {
	Nodes []string
	edges map[edgeKey]float64
}

// Resolver is the subset of *index.Index that Build needs; declared here
// to avoid an import cycle between graph and index.
type Resolver interface {
	Definitions(name string) []types.Definition
}

// Build constructs the file graph from every resolved reference. For a
// reference in file u resolving to the definition set D, each d in D with
// d.File = v receives 1/|D| on edge (u, v), skipping v == u (spec §4.4,
// §3 Reference invariants: self-references never become graph edges).
// allFiles is the full set of discovered files, independent of whether any
// reference or definition touches them.
func Build(allFiles []string, refs []types.Reference, idx Resolver) *Graph {
	g := &Graph{
		Nodes: append([]string(nil), allFiles...),
		edges: make(map[edgeKey]float64),
	}

	for _, r := range refs {
		defs := idx.Definitions(r.Name)
		m := len(defs)
		if m == 0 {
			continue
		}
		share := 1.0 / float64(m)
		for _, d := range defs {
			if d.File == r.File {
				continue
			}
			g.edges[edgeKey{from: r.File, to: d.File}] += share
		}
	}

	return g
}
