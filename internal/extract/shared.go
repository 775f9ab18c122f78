// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package extract walks a parsed syntax tree for one of the four supported
// languages and yields its top-level definitions and its identifier
// references, per the rules each language file documents on its own
// exported Extract function.
package extract

import (
	sitter "github.com/smacker/go-tree-sitter"

	"cruxlines/pkg/types"
)

// Extractor walks a parse tree rooted at root (over source, recorded under
// path) and returns the definitions and references it finds.
type Extractor func(root *sitter.Node, source []byte, path string) ([]types.Definition, []types.Reference)

// For returns the Extractor for a language tag, or nil if none is registered.
func For(l types.Lang) Extractor {
	switch l {
	case types.Python:
		return ExtractPython
	case types.JavaScript:
		return ExtractJavaScript
	case types.TypeScript:
		return ExtractTypeScript
	case types.Rust:
		return ExtractRust
	default:
		return nil
	}
}

func nodeText(n *sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	return n.Content(source)
}

func nodeLocation(n *sitter.Node, path string) types.Location {
	p := n.StartPoint()
	return types.Location{Path: path, Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}

// walk visits every node in the tree rooted at n, depth-first pre-order.
// visit returns false to skip descending into that node's children;
// collectReferences, its only caller, always descends.
func walk(n *sitter.Node, visit func(*sitter.Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		walk(n.Child(i), visit)
	}
}

// hasAncestor reports whether any ancestor of n has one of the given types.
func hasAncestor(n *sitter.Node, types ...string) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		for _, want := range types {
			if p.Type() == want {
				return true
			}
		}
	}
	return false
}

// isFieldOf reports whether node is the named field of parent.
func isFieldOf(parent, node *sitter.Node, field string) bool {
	f := parent.ChildByFieldName(field)
	return f != nil && f.StartByte() == node.StartByte()
}

// collectReferences walks the whole tree and emits a Reference for every
// node whose type is in identifierTypes, except defining occurrences
// (tracked by byte offset in excluded) and nodes skip reports as
// non-reference positions (attribute/property names, import path segments).
func collectReferences(root *sitter.Node, source []byte, path string, excluded map[uint32]bool, identifierTypes map[string]bool, skip func(n *sitter.Node) bool) []types.Reference {
	var refs []types.Reference
	walk(root, func(n *sitter.Node) bool {
		if identifierTypes[n.Type()] && !excluded[n.StartByte()] && !skip(n) {
			refs = append(refs, types.Reference{
				Name:     nodeText(n, source),
				File:     path,
				Location: nodeLocation(n, path),
			})
		}
		return true
	})
	return refs
}
