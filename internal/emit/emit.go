// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package emit stable-sorts scored definitions and writes the TSV output
// format defined in spec §4.6.
package emit

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"cruxlines/pkg/types"
)

// Sort stable-sorts defs by score descending, breaking ties by
// local_score desc, then file_rank desc, then lexicographic
// (path, line, col), then name asc.
func Sort(defs []types.ScoredDefinition) {
	sort.SliceStable(defs, func(i, j int) bool {
		a, b := defs[i], defs[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.LocalScore != b.LocalScore {
			return a.LocalScore > b.LocalScore
		}
		if a.FileRank != b.FileRank {
			return a.FileRank > b.FileRank
		}
		if a.Def.Location != b.Def.Location {
			return a.Def.Location.Less(b.Def.Location)
		}
		return a.Def.Name < b.Def.Name
	})
}

// Write emits one TSV row per definition in the order given (callers sort
// first): score, local_score, file_rank, name, def location, then,
// when includeRefs is set, one path:line:col field per deduplicated
// reference location.
func Write(w io.Writer, defs []types.ScoredDefinition, includeRefs bool) error {
	for _, d := range defs {
		fields := []string{
			formatNumber(d.Score),
			formatNumber(d.LocalScore),
			formatNumber(d.FileRank),
			d.Def.Name,
			d.Def.Location.String(),
		}
		if includeRefs {
			for _, r := range d.Refs {
				fields = append(fields, r.String())
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// formatNumber renders v with six significant digits, fixed notation for
// magnitudes in [1e-4, 1e+6) and scientific notation outside that range —
// exactly the behavior of the 'g' verb at precision 6.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
