package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/texttree/pkg/tree"
)

// document is the wire form of a node; children nest recursively.
type document struct {
	Label    string     `json:"label"`
	Children []document `json:"children,omitempty"`
}

// ReadJSON decodes a nested JSON tree from r.
//
// The input must be a single node object:
//
//	{"label": "root", "children": [{"label": "child"}]}
//
// Labels may contain embedded newlines; they become separate display
// lines. ReadJSON returns an error if the JSON is malformed. It does not
// close r, and the returned tree is independent of r.
func ReadJSON(r io.Reader) (*tree.StringNode, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return buildNode(doc), nil
}

// ImportJSON reads a JSON file at path and returns the decoded tree.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*tree.StringNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func buildNode(doc document) *tree.StringNode {
	n := tree.New(doc.Label)
	for _, c := range doc.Children {
		n.AddNode(buildNode(c))
	}
	return n
}
