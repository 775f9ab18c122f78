// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package graph

import "math"

const (
	defaultDamping   = 0.85
	defaultMaxIter   = 100
	defaultTolerance = 1e-6
)

// RankConfig configures PageRank. Zero values fall back to the spec's
// fixed parameters.
type RankConfig struct {
	Damping   float64
	MaxIter   int
	Tolerance float64
}

// Rank computes the stationary distribution over files via PageRank with
// uniform teleport (every file, including ones with no edges, shares
// equally in the (1-damping) mass) and uniform dangling-node redistribution.
// Iteration stops when the L1 change between iterates falls below
// Tolerance or after MaxIter iterations, whichever comes first; the
// iterate reached at that point is returned regardless (spec §7,
// RankConvergenceTimeout is not an error).
func (g *Graph) Rank(cfg RankConfig) map[string]float64 {
	damping := cfg.Damping
	if damping == 0 {
		damping = defaultDamping
	}
	maxIter := cfg.MaxIter
	if maxIter == 0 {
		maxIter = defaultMaxIter
	}
	tolerance := cfg.Tolerance
	if tolerance == 0 {
		tolerance = defaultTolerance
	}

	n := len(g.Nodes)
	result := make(map[string]float64, n)
	if n == 0 {
		return result
	}

	idx := make(map[string]int, n)
	for i, node := range g.Nodes {
		idx[node] = i
	}

	type outEdge struct {
		to     int
		weight float64
	}
	outEdges := make([][]outEdge, n)
	outWeight := make([]float64, n)
	for key, weight := range g.edges {
		from, ok := idx[key.from]
		if !ok {
			continue
		}
		to, ok := idx[key.to]
		if !ok {
			continue
		}
		outEdges[from] = append(outEdges[from], outEdge{to: to, weight: weight})
		outWeight[from] += weight
	}

	teleport := 1.0 / float64(n)
	rank := make([]float64, n)
	for i := range rank {
		rank[i] = teleport
	}

	newRank := make([]float64, n)
	for iter := 0; iter < maxIter; iter++ {
		for i := range newRank {
			newRank[i] = (1.0 - damping) * teleport
		}

		for i := 0; i < n; i++ {
			if outWeight[i] == 0 {
				share := damping * rank[i] * teleport
				for j := range newRank {
					newRank[j] += share
				}
				continue
			}
			for _, e := range outEdges[i] {
				newRank[e.to] += damping * rank[i] * (e.weight / outWeight[i])
			}
		}

		diff := 0.0
		for i := range rank {
			diff += math.Abs(newRank[i] - rank[i])
		}
		copy(rank, newRank)
		if diff < tolerance {
			break
		}
	}

	for i, node := range g.Nodes {
		result[node] = rank[i]
	}
	return result
}

// Blend combines the raw stationary distribution with per-file frecency
// weights and max-normalizes the product so the largest file_rank is 1.0
// (spec §4.4: a readability choice, not a probabilistic one — do not
// substitute sum/L1 normalization here). A file absent from frecency is
// treated as neutral (1.0).
func Blend(raw map[string]float64, frecency map[string]float64) map[string]float64 {
	blended := make(map[string]float64, len(raw))
	max := 0.0
	for file, v := range raw {
		fr := frecency[file]
		if fr == 0 {
			fr = 1.0
		}
		b := v * fr
		blended[file] = b
		if b > max {
			max = b
		}
	}
	if max == 0 {
		return blended
	}
	for file := range blended {
		blended[file] /= max
	}
	return blended
}
