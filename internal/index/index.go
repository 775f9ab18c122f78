// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package index builds the global name index from every file's extracted
// definitions and resolves references against it. Resolution is
// name-based only: a reference to n is considered to point at every
// definition named n, with no scope analysis.
package index

import "cruxlines/pkg/types"

// Index is a name -> definitions multimap.
type Index struct {
	byName map[string][]types.Definition
}

// Build inserts every definition into the name index.
func Build(defs []types.Definition) *Index {
	idx := &Index{byName: make(map[string][]types.Definition)}
	for _, d := range defs {
		idx.byName[d.Name] = append(idx.byName[d.Name], d)
	}
	return idx
}

// CollisionCount is the number of definitions sharing a name; this is the
// m used by the 1/m collision smoother in the definition scorer.
func (idx *Index) CollisionCount(name string) int {
	return len(idx.byName[name])
}

// Definitions returns every definition named name, or nil if unresolvable.
func (idx *Index) Definitions(name string) []types.Definition {
	return idx.byName[name]
}

// Resolvable reports whether at least one definition exists for name.
func (idx *Index) Resolvable(name string) bool {
	return len(idx.byName[name]) > 0
}

// Resolve drops every reference whose name has no known definition and
// returns the survivors. This is the only filtering step in the pipeline;
// every later stage assumes its input references are resolvable.
func (idx *Index) Resolve(refs []types.Reference) []types.Reference {
	var resolved []types.Reference
	for _, r := range refs {
		if idx.Resolvable(r.Name) {
			resolved = append(resolved, r)
		}
	}
	return resolved
}
