package text_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/texttree/pkg/render/text"
	"github.com/matzehuels/texttree/pkg/tree"
)

func ExampleRenderString() {
	root := tree.New("root",
		tree.New("Uncle"),
		tree.New("Parent",
			tree.New("Child 1"),
			tree.New("Child 2")),
		tree.New("Aunt"),
	)

	fmt.Print(text.RenderString(root, text.DefaultFormatting()))
	// Output:
	// root
	// +-- Uncle
	// +-- Parent
	// |  +-- Child 1
	// |  '-- Child 2
	// '-- Aunt
}

func ExampleWriteTree() {
	root := tree.New("services",
		tree.New("api"),
		tree.New("worker"),
	)
	f, _ := text.DirectoryTree(text.UnicodeGlyphs())

	if _, err := text.WriteTree(os.Stdout, root, f); err != nil {
		fmt.Println(err)
	}
	// Output:
	// services
	// ├── api
	// └── worker
}

func ExampleWithMaxLines() {
	root := tree.New("root",
		tree.New("a"),
		tree.New("b"),
		tree.New("c"),
	)

	res := text.Render(root, text.DefaultFormatting(), text.WithMaxLines(2))
	for _, line := range res.Lines {
		fmt.Println(line)
	}
	fmt.Println("truncated:", res.Truncated)
	// Output:
	// root
	// +-- a
	// truncated: true
}
