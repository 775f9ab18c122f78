// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	sitter "github.com/smacker/go-tree-sitter"

	"cruxlines/pkg/types"
)

var rustIdentifiers = map[string]bool{"identifier": true, "type_identifier": true}

// ExtractRust emits a definition for every file-scope fn, struct, enum,
// trait, type, const, static, mod, and union item. Visibility is ignored:
// top-level-ness alone qualifies. impl blocks never add a name, and items
// declared inside a mod{} block or an impl block are not descended into
// for definitions (they are not file-scope). References are collected over
// the whole tree, including inside impl/mod bodies.
func ExtractRust(root *sitter.Node, source []byte, path string) ([]types.Definition, []types.Reference) {
	var defs []types.Definition
	excluded := make(map[uint32]bool)

	addDef := func(n *sitter.Node) {
		if n == nil {
			return
		}
		defs = append(defs, types.Definition{
			Name:     nodeText(n, source),
			File:     path,
			Location: nodeLocation(n, path),
			Lang:     types.Rust,
		})
		excluded[n.StartByte()] = true
	}

	count := int(root.ChildCount())
	for i := 0; i < count; i++ {
		item := root.Child(i)
		if item == nil {
			continue
		}
		switch item.Type() {
		case "function_item", "struct_item", "enum_item", "trait_item",
			"type_item", "const_item", "static_item", "mod_item", "union_item":
			addDef(item.ChildByFieldName("name"))
		}
	}

	refs := collectReferences(root, source, path, excluded, rustIdentifiers, rustSkip)
	return defs, refs
}

func rustSkip(n *sitter.Node) bool {
	if hasAncestor(n, "use_declaration") {
		return true
	}
	parent := n.Parent()
	if parent == nil {
		return false
	}
	switch parent.Type() {
	case "field_expression":
		return isFieldOf(parent, n, "field")
	case "scoped_identifier", "scoped_type_identifier":
		return isFieldOf(parent, n, "path")
	}
	return false
}
