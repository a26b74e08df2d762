// Package io provides JSON import and export for label trees.
//
// # Overview
//
// This package enables serialization of trees to and from a simple nested
// JSON format. The format is designed for:
//
//   - Feeding trees to the texttree CLI from external tools
//   - Round-trip preservation: import, render, export, and re-import
//     produce the same tree
//
// # JSON Format
//
// A document is a single node object; children nest recursively:
//
//	{
//	  "label": "root",
//	  "children": [
//	    {"label": "lib-a"},
//	    {"label": "lib-b", "children": [{"label": "lib-c"}]}
//	  ]
//	}
//
// The label is required (it may be empty, which renders as one empty
// line) and may contain embedded newlines, which become separate display
// lines. The children array is optional; a missing or empty array marks a
// leaf. Child order is preserved exactly - renderers never reorder.
//
// # Import
//
// Use [ImportJSON] to read a tree from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	root, err := io.ImportJSON("tree.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Export
//
// Use [ExportJSON] to write a tree to a file, or [WriteJSON] to write to
// any io.Writer. Export accepts any [tree.Node] implementation, so typed
// trees serialize the same way as string trees.
package io
