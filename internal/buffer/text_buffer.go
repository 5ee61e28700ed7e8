// internal/buffer/text_buffer.go
package buffer

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/glance/internal/logger"
	"github.com/bethropolis/glance/internal/rope"
	"github.com/dimchansky/utfbom"
)

const utf8BOM = "\xef\xbb\xbf"

// LineEnding is the line terminator convention of a buffer.
type LineEnding int

const (
	LF   LineEnding = iota // "\n"
	CRLF                   // "\r\n"
)

// Terminator returns the byte sequence that ends a line.
func (le LineEnding) Terminator() string {
	if le == CRLF {
		return "\r\n"
	}
	return "\n"
}

func (le LineEnding) String() string {
	if le == CRLF {
		return "CRLF"
	}
	return "LF"
}

// TextBuffer holds the content of one file, or of a scratch buffer with no
// file, in a rope.
//
// A line terminator ends the line before it and never starts a new one:
// "hello\nworld\n" holds the two lines "hello" and "world", "abc" holds one
// line, and "" holds none. Joining Lines() with the terminator, and
// appending one more terminator when HasTrailingTerminator reports true,
// reproduces the loaded text.
type TextBuffer struct {
	text     rope.Rope
	filePath string
	ending   LineEnding
	trailing bool // content ends with a terminator
	bom      bool // a UTF-8 byte-order mark preceded the content
}

// NewScratch creates an empty buffer with no associated file.
func NewScratch() *TextBuffer {
	return &TextBuffer{}
}

// Open loads the file at filePath. On failure it returns a *LoadError and
// no buffer.
func Open(filePath string) (*TextBuffer, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, &LoadError{Op: "open", Path: filePath, Err: classify(err), Cause: err}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &LoadError{Op: "read", Path: filePath, Err: classify(err), Cause: err}
	}

	buf, err := FromBytes(filePath, data)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Buffer: loaded '%s' (%d bytes, %d lines, %s)", filePath, len(data), buf.LineCount(), buf.ending)
	return buf, nil
}

// FromBytes builds a buffer from raw file content. A UTF-8 byte-order mark is
// stripped and remembered; any other byte-order mark, or content that is not
// valid UTF-8, fails with ErrInvalidEncoding.
func FromBytes(filePath string, data []byte) (*TextBuffer, error) {
	sr, enc := utfbom.Skip(bytes.NewReader(data))
	switch enc {
	case utfbom.Unknown, utfbom.UTF8:
	default:
		return nil, &LoadError{
			Op:    "decode",
			Path:  filePath,
			Err:   ErrInvalidEncoding,
			Cause: fmt.Errorf("unsupported byte-order mark %v", enc),
		}
	}

	content, err := io.ReadAll(sr)
	if err != nil {
		return nil, &LoadError{Op: "read", Path: filePath, Err: ErrUnreadable, Cause: err}
	}
	if !utf8.Valid(content) {
		return nil, &LoadError{Op: "decode", Path: filePath, Err: ErrInvalidEncoding}
	}

	s := string(content)
	return &TextBuffer{
		text:     rope.FromString(s),
		filePath: filePath,
		ending:   detectLineEnding(s),
		trailing: strings.HasSuffix(s, "\n"),
		bom:      enc == utfbom.UTF8,
	}, nil
}

// detectLineEnding picks CRLF only when every '\n' is part of a "\r\n".
func detectLineEnding(s string) LineEnding {
	lf := strings.Count(s, "\n")
	if lf > 0 && strings.Count(s, "\r\n") == lf {
		return CRLF
	}
	return LF
}

// FilePath returns the associated path, or "" for a scratch buffer.
func (b *TextBuffer) FilePath() string {
	return b.filePath
}

// IsScratch reports whether the buffer has no associated file.
func (b *TextBuffer) IsScratch() bool {
	return b.filePath == ""
}

// LineEnding returns the detected terminator convention.
func (b *TextBuffer) LineEnding() LineEnding {
	return b.ending
}

// HasTrailingTerminator reports whether the content ends with a terminator.
func (b *TextBuffer) HasTrailingTerminator() bool {
	return b.trailing
}

// Len returns the content length in bytes, excluding any byte-order mark.
func (b *TextBuffer) Len() int {
	return b.text.Len()
}

// LineCount returns the number of lines.
func (b *TextBuffer) LineCount() int {
	if b.text.IsEmpty() {
		return 0
	}
	if b.trailing {
		return b.text.Newlines()
	}
	return b.text.Newlines() + 1
}

// lineBounds returns the byte range of line index, terminator excluded.
func (b *TextBuffer) lineBounds(index int) (int, int, error) {
	if index < 0 || index >= b.LineCount() {
		return 0, 0, fmt.Errorf("line index %d out of bounds (0-%d)", index, b.LineCount()-1)
	}
	start, _ := b.text.LineStart(index)
	if index == b.text.Newlines() {
		return start, b.text.Len(), nil
	}
	next, _ := b.text.LineStart(index + 1)
	return start, next - len(b.ending.Terminator()), nil
}

// Line returns the text of one line without its terminator.
func (b *TextBuffer) Line(index int) (string, error) {
	start, end, err := b.lineBounds(index)
	if err != nil {
		return "", err
	}
	return b.text.Slice(start, end), nil
}

// LineChunks yields the text of one line piece by piece. An out-of-range
// index yields nothing.
func (b *TextBuffer) LineChunks(index int) iter.Seq[string] {
	start, end, err := b.lineBounds(index)
	if err != nil {
		return func(func(string) bool) {}
	}
	return b.text.Chunks(start, end)
}

// Lines yields every line in document order. Each line is looked up when the
// iteration reaches it, and every call starts over from the first line.
func (b *TextBuffer) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		count := b.LineCount()
		for i := 0; i < count; i++ {
			line, err := b.Line(i)
			if err != nil || !yield(line) {
				return
			}
		}
	}
}

// Bytes returns the content exactly as it was loaded, byte-order mark
// included.
func (b *TextBuffer) Bytes() []byte {
	var out bytes.Buffer
	out.Grow(b.text.Len() + len(utf8BOM))
	if b.bom {
		out.WriteString(utf8BOM)
	}
	for chunk := range b.text.Chunks(0, b.text.Len()) {
		out.WriteString(chunk)
	}
	return out.Bytes()
}
