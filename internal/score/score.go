// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package score computes the per-definition local_score and final score
// from the resolved reference list and the file_rank vector (spec §4.5).
package score

import (
	"sort"

	"cruxlines/internal/index"
	"cruxlines/pkg/types"
)

// Score computes a types.ScoredDefinition for every definition. refs must
// already be resolved (every name present has at least one definition) —
// the caller runs them through index.Resolve first. fileRank supplies
// file_rank[f] for every file the graph stage knows about.
func Score(defs []types.Definition, refs []types.Reference, idx *index.Index, fileRank map[string]float64) []types.ScoredDefinition {
	refsByName := make(map[string][]types.Reference)
	for _, r := range refs {
		refsByName[r.Name] = append(refsByName[r.Name], r)
	}

	scored := make([]types.ScoredDefinition, 0, len(defs))
	for _, d := range defs {
		m := idx.CollisionCount(d.Name)

		sum := 0.0
		for _, r := range refsByName[d.Name] {
			sum += fileRank[r.File]
		}
		local := sum / float64(m)

		scored = append(scored, types.ScoredDefinition{
			Def:        d,
			LocalScore: local,
			FileRank:   fileRank[d.File],
			Score:      local * fileRank[d.File],
			Refs:       dedupeLocations(refsByName[d.Name]),
		})
	}
	return scored
}

// dedupeLocations sorts reference locations into the (path, line, col)
// order the emitter requires and removes duplicates.
func dedupeLocations(refs []types.Reference) []types.Location {
	if len(refs) == 0 {
		return nil
	}
	locs := make([]types.Location, len(refs))
	for i, r := range refs {
		locs[i] = r.Location
	}
	sort.Slice(locs, func(i, j int) bool { return locs[i].Less(locs[j]) })

	out := locs[:1]
	for _, l := range locs[1:] {
		if l != out[len(out)-1] {
			out = append(out, l)
		}
	}
	return out
}
