package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleJSON = `{
  "label": "root",
  "children": [
    {"label": "lib-a"},
    {"label": "lib-b", "children": [{"label": "lib-c"}]}
  ]
}`

func TestReadJSON(t *testing.T) {
	root, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if got := root.Label(); got != "root" {
		t.Errorf("root label = %q, want %q", got, "root")
	}
	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("root has %d children, want 2", len(children))
	}
	if got := children[1].Children(); len(got) != 1 || got[0].Lines()[0] != "lib-c" {
		t.Errorf("nested child not decoded, got %v", got)
	}
}

func TestReadJSON_MultilineLabel(t *testing.T) {
	root, err := ReadJSON(strings.NewReader(`{"label": "one\ntwo"}`))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if got := root.Lines(); len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("Lines() = %v, want [one two]", got)
	}
}

func TestReadJSON_Malformed(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader(`{"label": `)); err == nil {
		t.Error("ReadJSON() error = nil, want decode error")
	}
}

func TestReadJSON_UnknownField(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader(`{"label": "x", "weight": 3}`)); err == nil {
		t.Error("ReadJSON() error = nil, want unknown field error")
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	root, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(root, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	again, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("re-import error = %v", err)
	}
	if got, want := again.Label(), root.Label(); got != want {
		t.Errorf("round-trip label = %q, want %q", got, want)
	}
	if got, want := len(again.Children()), len(root.Children()); got != want {
		t.Errorf("round-trip children = %d, want %d", got, want)
	}
}

func TestImportExportJSON_Files(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")
	if err := os.WriteFile(in, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	root, err := ImportJSON(in)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if err := ExportJSON(root, out); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	again, err := ImportJSON(out)
	if err != nil {
		t.Fatalf("ImportJSON(out) error = %v", err)
	}
	if again.Label() != "root" {
		t.Errorf("label = %q, want %q", again.Label(), "root")
	}
}

func TestImportJSON_MissingFile(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ImportJSON() error = nil, want open error")
	}
}
