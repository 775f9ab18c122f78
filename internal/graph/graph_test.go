// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cruxlines/pkg/types"
)

type fakeResolver map[string][]types.Definition

func (f fakeResolver) Definitions(name string) []types.Definition { return f[name] }

func TestBuild_CrossFileEdge(t *testing.T) {
	idx := fakeResolver{
		"add": {{Name: "add", File: "utils.js"}},
	}
	refs := []types.Reference{{Name: "add", File: "main.js"}}

	g := Build([]string{"main.js", "utils.js"}, refs, idx)

	assert.Equal(t, 1.0, g.edges[edgeKey{from: "main.js", to: "utils.js"}])
}

func TestBuild_NoSelfEdge(t *testing.T) {
	idx := fakeResolver{"f": {{Name: "f", File: "a.py"}}}
	refs := []types.Reference{{Name: "f", File: "a.py"}}

	g := Build([]string{"a.py"}, refs, idx)
	assert.Empty(t, g.edges)
}

func TestBuild_FractionalAttributionOverCollision(t *testing.T) {
	idx := fakeResolver{
		"Status": {{Name: "Status", File: "a.js"}, {Name: "Status", File: "b.js"}},
	}
	refs := []types.Reference{{Name: "Status", File: "main.js"}}

	g := Build([]string{"main.js", "a.js", "b.js"}, refs, idx)
	assert.Equal(t, 0.5, g.edges[edgeKey{from: "main.js", to: "a.js"}])
	assert.Equal(t, 0.5, g.edges[edgeKey{from: "main.js", to: "b.js"}])
}

func TestRank_EmptyGraph(t *testing.T) {
	g := &Graph{}
	ranked := g.Rank(RankConfig{})
	assert.Empty(t, ranked)
}

func TestRank_IsolatedFilesStillGetUniformMass(t *testing.T) {
	g := Build([]string{"a.py", "lonely.py"}, nil, fakeResolver{})
	ranked := g.Rank(RankConfig{})

	require.Contains(t, ranked, "lonely.py")
	assert.InDelta(t, 0.5, ranked["lonely.py"], 1e-6)
}

func TestRank_SymmetricMutualReferenceYieldsEqualRank(t *testing.T) {
	idx := fakeResolver{
		"A": {{Name: "A", File: "a.go"}},
		"B": {{Name: "B", File: "b.go"}},
	}
	refs := []types.Reference{
		{Name: "A", File: "b.go"},
		{Name: "B", File: "a.go"},
	}

	g := Build([]string{"a.go", "b.go"}, refs, idx)
	ranked := g.Rank(RankConfig{})

	assert.InDelta(t, ranked["a.go"], ranked["b.go"], 1e-6)
}

func TestBlend_MaxNormalizes(t *testing.T) {
	raw := map[string]float64{"a": 0.2, "b": 0.8}
	frecency := map[string]float64{"a": 1.0, "b": 1.0}

	blended := Blend(raw, frecency)
	assert.Equal(t, 1.0, blended["b"])
	assert.Equal(t, 0.25, blended["a"])
}

func TestBlend_NeutralFrecencyDegeneratesToMaxNormalizedPageRank(t *testing.T) {
	raw := map[string]float64{"a": 0.3, "b": 0.3}
	blended := Blend(raw, map[string]float64{})

	assert.Equal(t, 1.0, blended["a"])
	assert.Equal(t, 1.0, blended["b"])
}
