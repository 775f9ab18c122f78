// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package emit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cruxlines/pkg/types"
)

func TestSort_OrdersByScoreThenTieBreaks(t *testing.T) {
	defs := []types.ScoredDefinition{
		{Def: types.Definition{Name: "b", Location: types.Location{Path: "b.py", Line: 1}}, Score: 0.5},
		{Def: types.Definition{Name: "a", Location: types.Location{Path: "a.py", Line: 1}}, Score: 0.9, LocalScore: 0.2},
		{Def: types.Definition{Name: "c", Location: types.Location{Path: "c.py", Line: 1}}, Score: 0.9, LocalScore: 0.1},
	}

	Sort(defs)

	assert.Equal(t, "a", defs[0].Def.Name)
	assert.Equal(t, "c", defs[1].Def.Name) // same score as a, but lower local_score sorts after
	assert.Equal(t, "b", defs[2].Def.Name)
}

func TestSort_IsStableOnFullTie(t *testing.T) {
	defs := []types.ScoredDefinition{
		{Def: types.Definition{Name: "x", Location: types.Location{Path: "f.py", Line: 1, Column: 1}, Lang: types.Python}},
		{Def: types.Definition{Name: "x", Location: types.Location{Path: "f.py", Line: 1, Column: 1}, Lang: types.JavaScript}},
	}
	Sort(defs)
	assert.Len(t, defs, 2)
	// Lang is not a sort key, so it shows whether the input order survived.
	assert.Equal(t, types.Python, defs[0].Def.Lang)
	assert.Equal(t, types.JavaScript, defs[1].Def.Lang)
}

func TestWrite_FieldOrderWithoutReferences(t *testing.T) {
	defs := []types.ScoredDefinition{
		{
			Def:        types.Definition{Name: "add", Location: types.Location{Path: "utils.js", Line: 1, Column: 17}},
			LocalScore: 0.4,
			FileRank:   1.0,
			Score:      0.4,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, defs, false))

	assert.Equal(t, "0.4\t0.4\t1\tadd\tutils.js:1:17\n", buf.String())
}

func TestWrite_IncludesDedupedReferencesWhenRequested(t *testing.T) {
	defs := []types.ScoredDefinition{
		{
			Def:  types.Definition{Name: "add", Location: types.Location{Path: "utils.js", Line: 1, Column: 17}},
			Refs: []types.Location{{Path: "main.js", Line: 2, Column: 1}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, defs, true))

	assert.Equal(t, "0\t0\t0\tadd\tutils.js:1:17\tmain.js:2:1\n", buf.String())
}

func TestFormatNumber_FixedAndScientificRanges(t *testing.T) {
	assert.Equal(t, "123.456", formatNumber(123.456))
	assert.Equal(t, "0.0001", formatNumber(1e-4))
}
