// internal/buffer/buffer.go
package buffer

import "iter"

// Buffer is the read-only view of a text buffer used by windows and the
// renderer.
type Buffer interface {
	FilePath() string
	IsScratch() bool
	LineCount() int
	Line(index int) (string, error)
	Lines() iter.Seq[string]
	// LineChunks yields the text of one line as it is stored, one piece per
	// storage chunk. Concatenated, the pieces equal Line(index).
	LineChunks(index int) iter.Seq[string]
	Bytes() []byte
}

// Ensure TextBuffer satisfies the Buffer interface
var _ Buffer = (*TextBuffer)(nil)
