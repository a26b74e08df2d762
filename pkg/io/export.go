package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/texttree/pkg/tree"
)

// WriteJSON encodes a tree as nested JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip
// processing. Multi-line labels are joined with embedded newlines.
func WriteJSON(n tree.Node, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(buildDocument(n)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a tree to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(n tree.Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(n, f)
}

func buildDocument(n tree.Node) document {
	doc := document{Label: strings.Join(n.Lines(), "\n")}
	for _, c := range n.Children() {
		doc.Children = append(doc.Children, buildDocument(c))
	}
	return doc
}
