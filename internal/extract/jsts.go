// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	sitter "github.com/smacker/go-tree-sitter"

	"cruxlines/pkg/types"
)

var identifierTypesJS = map[string]bool{"identifier": true}
var identifierTypesTS = map[string]bool{"identifier": true, "type_identifier": true}

// extractJSFamily implements the export-only definition rules shared by
// JavaScript and TypeScript: export function/class/const/let/var, export {A,
// B as C}, export default (named or anonymous), and, when the grammar
// produces them, interface/type/enum/namespace declarations. property
// names in member access (`a.b`) are excluded automatically because the
// member-expression grammar gives them the distinct node type
// property_identifier, never identifier.
func extractJSFamily(root *sitter.Node, source []byte, path string, l types.Lang, identifierTypes map[string]bool) ([]types.Definition, []types.Reference) {
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
			Lang:     l,
		})
		excluded[n.StartByte()] = true
	}
	addDefaultDef := func(at *sitter.Node) {
		defs = append(defs, types.Definition{
			Name:     "default",
			File:     path,
			Location: nodeLocation(at, path),
			Lang:     l,
		})
	}

	count := int(root.ChildCount())
	for i := 0; i < count; i++ {
		stmt := root.Child(i)
		if stmt == nil || stmt.Type() != "export_statement" {
			continue
		}

		if clause := findChildOfType(stmt, "export_clause"); clause != nil {
			collectExportClause(clause, addDef)
			continue
		}

		decl := exportDeclaration(stmt)
		if decl == nil {
			continue
		}

		switch decl.Type() {
		case "function_declaration", "generator_function_declaration", "class_declaration":
			if name := decl.ChildByFieldName("name"); name != nil {
				addDef(name)
			} else {
				addDefaultDef(stmt)
			}
		case "lexical_declaration", "variable_declaration":
			collectVariableDeclarators(decl, addDef)
		case "interface_declaration", "type_alias_declaration":
			addDef(decl.ChildByFieldName("name"))
		case "enum_declaration":
			addDef(decl.ChildByFieldName("name"))
		case "internal_module", "module":
			addDef(decl.ChildByFieldName("name"))
		default:
			if isDefaultExport(stmt) {
				addDefaultDef(stmt)
			}
		}
	}

	refs := collectReferences(root, source, path, excluded, identifierTypes, jsSkip)
	return defs, refs
}

func findChildOfType(n *sitter.Node, want string) *sitter.Node {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		if c := n.Child(i); c != nil && c.Type() == want {
			return c
		}
	}
	return nil
}

func collectExportClause(clause *sitter.Node, addDef func(*sitter.Node)) {
	count := int(clause.ChildCount())
	for i := 0; i < count; i++ {
		spec := clause.Child(i)
		if spec == nil || spec.Type() != "export_specifier" {
			continue
		}
		if alias := spec.ChildByFieldName("alias"); alias != nil {
			addDef(alias)
		} else if name := spec.ChildByFieldName("name"); name != nil {
			addDef(name)
		}
	}
}

func collectVariableDeclarators(decl *sitter.Node, addDef func(*sitter.Node)) {
	count := int(decl.ChildCount())
	for i := 0; i < count; i++ {
		c := decl.Child(i)
		if c == nil || c.Type() != "variable_declarator" {
			continue
		}
		if name := c.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
			addDef(name)
		}
	}
}

// exportDeclaration finds the declaration (or bare expression) an
// export_statement wraps, trying the field names used across grammar
// versions before falling back to scanning children.
func exportDeclaration(stmt *sitter.Node) *sitter.Node {
	if d := stmt.ChildByFieldName("declaration"); d != nil {
		return d
	}
	if d := stmt.ChildByFieldName("value"); d != nil {
		return d
	}
	var last *sitter.Node
	count := int(stmt.ChildCount())
	for i := 0; i < count; i++ {
		c := stmt.Child(i)
		switch c.Type() {
		case "export", "default", ";", "*", "export_clause":
			continue
		}
		last = c
	}
	return last
}

func isDefaultExport(stmt *sitter.Node) bool {
	count := int(stmt.ChildCount())
	for i := 0; i < count; i++ {
		if stmt.Child(i).Type() == "default" {
			return true
		}
	}
	return false
}

func jsSkip(n *sitter.Node) bool {
	return hasAncestor(n, "import_statement", "import_clause")
}
