// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	sitter "github.com/smacker/go-tree-sitter"

	"cruxlines/pkg/types"
)

// ExtractTypeScript emits everything ExtractJavaScript does, plus export
// interface/type/enum/namespace declarations, and treats type_identifier
// nodes (interface/type names used in type position) as reference
// candidates alongside plain identifiers.
func ExtractTypeScript(root *sitter.Node, source []byte, path string) ([]types.Definition, []types.Reference) {
	return extractJSFamily(root, source, path, types.TypeScript, identifierTypesTS)
}
