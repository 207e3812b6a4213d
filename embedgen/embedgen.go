// Package embedgen packages a tree of Orus source files into generated Go
// artifacts: a declarations file with the registry types and a definitions
// file holding the static module table together with its lookup and
// materialize operations.
package embedgen

// Module is one source file selected for embedding.
type Module struct {
	Name   string // slash-separated path under the logical namespace, e.g. "std/math.orus"
	Source string // raw file content, never escaped
}
