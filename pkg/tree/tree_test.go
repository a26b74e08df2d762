package tree

import "testing"

func TestNew_SingleLine(t *testing.T) {
	n := New("hello")

	if got := n.Lines(); len(got) != 1 || got[0] != "hello" {
		t.Errorf("Lines() = %v, want [hello]", got)
	}
	if n.HasChildren() {
		t.Error("HasChildren() = true, want false")
	}
}

func TestNew_SplitsEmbeddedNewlines(t *testing.T) {
	n := New("first\nsecond\nthird")

	got := n.Lines()
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNew_EmptyLabel(t *testing.T) {
	n := New("")

	if got := n.Lines(); len(got) != 1 || got[0] != "" {
		t.Errorf("Lines() = %v, want one empty line", got)
	}
}

func TestNew_WithChildren(t *testing.T) {
	n := New("parent", New("a"), New("b"))

	children := n.Children()
	if len(children) != 2 {
		t.Fatalf("Children() has %d entries, want 2", len(children))
	}
	if got := children[0].Lines()[0]; got != "a" {
		t.Errorf("first child label = %q, want %q", got, "a")
	}
	if got := children[1].Lines()[0]; got != "b" {
		t.Errorf("second child label = %q, want %q", got, "b")
	}
}

func TestStringNode_Add(t *testing.T) {
	root := New("root")
	child := root.Add("child")
	child.Add("grandchild")

	if !root.HasChildren() {
		t.Fatal("HasChildren() = false after Add")
	}
	got := root.Children()[0].Children()
	if len(got) != 1 || got[0].Lines()[0] != "grandchild" {
		t.Errorf("grandchild not attached, got %v", got)
	}
}

func TestStringNode_Extend(t *testing.T) {
	root := New("root")
	root.Extend("a", "b", "c")

	children := root.Children()
	if len(children) != 3 {
		t.Fatalf("Children() has %d entries, want 3", len(children))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := children[i].Lines()[0]; got != want {
			t.Errorf("child %d = %q, want %q", i, got, want)
		}
	}
}

func TestStringNode_Label(t *testing.T) {
	n := New("one\ntwo")
	if got := n.Label(); got != "one\ntwo" {
		t.Errorf("Label() = %q, want %q", got, "one\ntwo")
	}
}

type version struct {
	name string
	tag  string
}

func (v version) String() string { return v.name + "@" + v.tag }

func TestTyped_StringerPayload(t *testing.T) {
	n := NewTyped(version{name: "lib", tag: "v1.2.3"})

	if got := n.Lines(); len(got) != 1 || got[0] != "lib@v1.2.3" {
		t.Errorf("Lines() = %v, want [lib@v1.2.3]", got)
	}
	if got := n.Value().tag; got != "v1.2.3" {
		t.Errorf("Value().tag = %q, want %q", got, "v1.2.3")
	}
}

func TestTyped_Add(t *testing.T) {
	root := NewTyped(1)
	root.Add(2)
	root.AddNode(NewTyped(3))

	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("Children() has %d entries, want 2", len(children))
	}
	if got := children[1].Lines()[0]; got != "3" {
		t.Errorf("second child label = %q, want %q", got, "3")
	}
}
