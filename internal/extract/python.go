// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	sitter "github.com/smacker/go-tree-sitter"

	"cruxlines/pkg/types"
)

var pythonIdentifiers = map[string]bool{"identifier": true}

// ExtractPython emits a definition for every top-level (indent level 0)
// `def`, `class`, and bare-identifier assignment target, including
// annotated assignments, tuple-unpacking targets, and decorated defs/
// classes (`@dataclass\nclass C`, `@app.route("/")\ndef handler()`).
// Methods and nested defs/classes are not descended into for definitions.
// Every remaining identifier in the file is a candidate reference, except
// the attribute name in `a.b` and anything inside an import statement.
func ExtractPython(root *sitter.Node, source []byte, path string) ([]types.Definition, []types.Reference) {
	var defs []types.Definition
	excluded := make(map[uint32]bool)

	addDef := func(nameNode *sitter.Node) {
		if nameNode == nil {
			return
		}
		defs = append(defs, types.Definition{
			Name:     nodeText(nameNode, source),
			File:     path,
			Location: nodeLocation(nameNode, path),
			Lang:     types.Python,
		})
		excluded[nameNode.StartByte()] = true
	}

	count := int(root.ChildCount())
	for i := 0; i < count; i++ {
		stmt := root.Child(i)
		if stmt == nil {
			continue
		}
		switch stmt.Type() {
		case "function_definition":
			addDef(stmt.ChildByFieldName("name"))
		case "class_definition":
			addDef(stmt.ChildByFieldName("name"))
		case "decorated_definition":
			addPythonDecoratedDef(stmt, addDef)
		case "expression_statement":
			if stmt.ChildCount() > 0 {
				collectPythonAssignTargets(stmt.Child(0), addDef)
			}
		}
	}

	refs := collectReferences(root, source, path, excluded, pythonIdentifiers, pythonSkip)
	return defs, refs
}

// addPythonDecoratedDef unwraps a top-level decorated_definition (one or
// more `@decorator` lines followed by a def/class) and emits a definition
// for the wrapped function or class, the same as an undecorated one would
// get. Without this, a decorated top-level def/class is invisible to
// Defs and its name is instead picked up as a plain reference.
func addPythonDecoratedDef(n *sitter.Node, addDef func(*sitter.Node)) {
	def := n.ChildByFieldName("definition")
	if def == nil {
		return
	}
	switch def.Type() {
	case "function_definition", "class_definition":
		addDef(def.ChildByFieldName("name"))
	}
}

func collectPythonAssignTargets(n *sitter.Node, addDef func(*sitter.Node)) {
	if n == nil || n.Type() != "assignment" {
		return
	}
	collectPythonPatternIdentifiers(n.ChildByFieldName("left"), addDef)
}

func collectPythonPatternIdentifiers(n *sitter.Node, addDef func(*sitter.Node)) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "identifier":
		addDef(n)
	case "pattern_list", "tuple_pattern", "list_pattern":
		count := int(n.ChildCount())
		for i := 0; i < count; i++ {
			collectPythonPatternIdentifiers(n.Child(i), addDef)
		}
	}
}

func pythonSkip(n *sitter.Node) bool {
	if hasAncestor(n, "import_statement", "import_from_statement") {
		return true
	}
	parent := n.Parent()
	if parent != nil && parent.Type() == "attribute" {
		return isFieldOf(parent, n, "attribute")
	}
	return false
}
