// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// Definition is an importable/top-level named construct extracted from a
// source file per the language-specific rules in the extractor for its Lang.
type Definition struct {
	Name     string
	File     string
	Location Location
	Lang     Lang
}

// Reference is an identifier occurrence in expression or type position.
// Extractors emit one for every candidate identifier, whether or not any
// Definition has its name; resolution against the name index happens later
// and drops the unmatched ones. A Reference on its own carries no target.
type Reference struct {
	Name     string
	File     string
	Location Location
}

// ScoredDefinition is a Definition annotated with the scores computed by the
// ranking pipeline and, when requested, the locations of every reference
// that contributed to its local score.
type ScoredDefinition struct {
	Def        Definition
	LocalScore float64
	FileRank   float64
	Score      float64
	Refs       []Location
}
