// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package lang maps file extensions to language tags and to the tree-sitter
// grammars that parse them.
package lang

import (
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"cruxlines/pkg/types"
)

var byExtension = map[string]types.Lang{
	".py":  types.Python,
	".js":  types.JavaScript,
	".jsx": types.JavaScript,
	".ts":  types.TypeScript,
	".tsx": types.TypeScript,
	".rs":  types.Rust,
}

// ForPath returns the language tag for a file path based on its extension.
// The second return value is false for unrecognized extensions, which the
// caller must ignore entirely rather than attempt to parse.
func ForPath(path string) (types.Lang, bool) {
	l, ok := byExtension[filepath.Ext(path)]
	return l, ok
}

// Grammar returns the tree-sitter grammar for a language tag. Grammars are
// package-level singletons in go-tree-sitter and safe to share read-only
// across Parser instances; only Parser itself is not reentrant.
func Grammar(l types.Lang) *sitter.Language {
	switch l {
	case types.Python:
		return python.GetLanguage()
	case types.JavaScript:
		return javascript.GetLanguage()
	case types.TypeScript:
		return typescript.GetLanguage()
	case types.Rust:
		return rust.GetLanguage()
	default:
		return nil
	}
}
