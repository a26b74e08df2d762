// Package render groups the output backends for labeled trees.
//
// The [text] subpackage produces monospace directory-style listings and
// is the core of the library. The [dot] subpackage emits Graphviz DOT
// source and rasterizes it to SVG or PNG through the embedded engine.
package render
