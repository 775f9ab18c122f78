// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	sitter "github.com/smacker/go-tree-sitter"

	"cruxlines/pkg/types"
)

// ExtractJavaScript emits a definition for every exported function, class,
// const/let/var, re-export, and default export. See extractJSFamily for the
// shared rules.
func ExtractJavaScript(root *sitter.Node, source []byte, path string) ([]types.Definition, []types.Reference) {
	return extractJSFamily(root, source, path, types.JavaScript, identifierTypesJS)
}
