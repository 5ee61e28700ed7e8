// Package rope provides an immutable rope for text storage.
//
// A rope is a binary tree whose leaves hold chunks of UTF-8 text and whose
// internal nodes cache the byte and newline counts of their subtree. Line
// lookup, slicing, splitting and concatenation all run in O(log n).
//
// Operations never modify a rope; they return a new one that shares
// unchanged subtrees with the original:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")  // "hello, world"
//	r = r.Delete(0, 7)    // "world"
//
// Offsets are byte offsets and must fall on rune boundaries.
package rope

import (
	"io"
	"iter"
	"math/bits"
	"strings"
	"unicode/utf8"
)

// MaxChunkSize is the maximum number of bytes held by a single leaf.
const MaxChunkSize = 512

// node is either a leaf (left == nil, text set) or a branch with two
// non-nil children. Leaves are never empty.
type node struct {
	left, right *node
	text        string

	length   int // bytes in subtree
	newlines int // '\n' bytes in subtree
	height   int // 0 for leaves
	leaves   int // leaf count in subtree
}

func newLeaf(s string) *node {
	return &node{
		text:     s,
		length:   len(s),
		newlines: strings.Count(s, "\n"),
		leaves:   1,
	}
}

func newBranch(l, r *node) *node {
	return &node{
		left:     l,
		right:    r,
		length:   l.length + r.length,
		newlines: l.newlines + r.newlines,
		height:   max(l.height, r.height) + 1,
		leaves:   l.leaves + r.leaves,
	}
}

func (n *node) isLeaf() bool {
	return n.left == nil
}

// Rope is an immutable sequence of text. The zero value is an empty rope.
type Rope struct {
	root *node
}

// New returns an empty rope.
func New() Rope {
	return Rope{}
}

// FromString builds a balanced rope holding s.
func FromString(s string) Rope {
	return Rope{root: build(chunkLeaves(s))}
}

// FromReader reads r to EOF and builds a rope from its content.
func FromReader(r io.Reader) (Rope, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return Rope{}, err
	}
	return FromString(sb.String()), nil
}

// chunkLeaves cuts s into leaves of at most MaxChunkSize bytes without
// splitting a UTF-8 sequence.
func chunkLeaves(s string) []*node {
	leaves := make([]*node, 0, len(s)/MaxChunkSize+1)
	for len(s) > 0 {
		n := len(s)
		if n > MaxChunkSize {
			n = MaxChunkSize
			for n > 0 && !utf8.RuneStart(s[n]) {
				n--
			}
			if n == 0 {
				n = MaxChunkSize
			}
		}
		leaves = append(leaves, newLeaf(s[:n]))
		s = s[n:]
	}
	return leaves
}

// build joins leaves into a tree of minimal height.
func build(leaves []*node) *node {
	switch len(leaves) {
	case 0:
		return nil
	case 1:
		return leaves[0]
	}
	mid := len(leaves) / 2
	return newBranch(build(leaves[:mid]), build(leaves[mid:]))
}

// Len returns the length of the rope in bytes.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.length
}

// IsEmpty reports whether the rope holds no text.
func (r Rope) IsEmpty() bool {
	return r.root == nil
}

// Newlines returns the number of '\n' bytes in the rope.
func (r Rope) Newlines() int {
	if r.root == nil {
		return 0
	}
	return r.root.newlines
}

// Height returns the height of the tree; 0 for an empty or single-leaf rope.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return r.root.height
}

// String returns the full text. Use sparingly on large ropes.
func (r Rope) String() string {
	return r.Slice(0, r.Len())
}

// Slice returns the text in the byte range [start, end), clamped to the rope.
func (r Rope) Slice(start, end int) string {
	start, end = r.clamp(start, end)
	if start >= end {
		return ""
	}
	var sb strings.Builder
	sb.Grow(end - start)
	for chunk := range r.Chunks(start, end) {
		sb.WriteString(chunk)
	}
	return sb.String()
}

// Chunks yields the leaf texts covering the byte range [start, end) in
// order, trimmed to the range.
func (r Rope) Chunks(start, end int) iter.Seq[string] {
	root := r.root
	start, end = r.clamp(start, end)
	return func(yield func(string) bool) {
		if root == nil || start >= end {
			return
		}
		walk(root, start, end, yield)
	}
}

func walk(n *node, start, end int, yield func(string) bool) bool {
	if n.isLeaf() {
		return yield(n.text[start:end])
	}
	ll := n.left.length
	if start < ll {
		if !walk(n.left, start, min(end, ll), yield) {
			return false
		}
	}
	if end > ll {
		return walk(n.right, max(start-ll, 0), end-ll, yield)
	}
	return true
}

func (r Rope) clamp(start, end int) (int, int) {
	size := r.Len()
	start = min(max(start, 0), size)
	end = min(max(end, 0), size)
	return start, end
}

// LineStart returns the byte offset at which line begins, counting lines
// from 0 and treating each '\n' as the end of a line. Line n starts just past
// the n-th newline, so valid lines are 0 through Newlines().
func (r Rope) LineStart(line int) (int, bool) {
	if line < 0 || line > r.Newlines() {
		return 0, false
	}
	if line == 0 {
		return 0, true
	}

	n := r.root
	k := line
	base := 0
	for !n.isLeaf() {
		if k <= n.left.newlines {
			n = n.left
			continue
		}
		k -= n.left.newlines
		base += n.left.length
		n = n.right
	}

	off := 0
	for ; k > 0; k-- {
		off += strings.IndexByte(n.text[off:], '\n') + 1
	}
	return base + off, true
}

// Split returns the ropes holding [0, offset) and [offset, Len()).
func (r Rope) Split(offset int) (Rope, Rope) {
	left, right := split(r.root, offset)
	return Rope{root: left}, Rope{root: right}
}

// Concat returns r followed by other.
func (r Rope) Concat(other Rope) Rope {
	return Rope{root: rebalance(join(r.root, other.root))}
}

// Insert returns a rope with text inserted at offset.
func (r Rope) Insert(offset int, text string) Rope {
	if text == "" {
		return r
	}
	left, right := split(r.root, offset)
	mid := build(chunkLeaves(text))
	return Rope{root: rebalance(join(join(left, mid), right))}
}

// Delete returns a rope without the byte range [start, end).
func (r Rope) Delete(start, end int) Rope {
	start, end = r.clamp(start, end)
	if start >= end {
		return r
	}
	left, rest := split(r.root, start)
	_, right := split(rest, end-start)
	return Rope{root: rebalance(join(left, right))}
}

func split(n *node, offset int) (*node, *node) {
	switch {
	case n == nil:
		return nil, nil
	case offset <= 0:
		return nil, n
	case offset >= n.length:
		return n, nil
	case n.isLeaf():
		return newLeaf(n.text[:offset]), newLeaf(n.text[offset:])
	}

	ll := n.left.length
	switch {
	case offset == ll:
		return n.left, n.right
	case offset < ll:
		a, b := split(n.left, offset)
		return a, join(b, n.right)
	default:
		a, b := split(n.right, offset-ll)
		return join(n.left, a), b
	}
}

// join concatenates two subtrees, merging small adjacent leaves.
func join(a, b *node) *node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.isLeaf() && b.isLeaf() && a.length+b.length <= MaxChunkSize {
		return newLeaf(a.text + b.text)
	}
	return newBranch(a, b)
}

// maxHeight bounds the tree height for a given leaf count. Edits that push
// the tree past it trigger a rebuild, which keeps edits amortized O(log n).
func maxHeight(leaves int) int {
	return 2*bits.Len(uint(leaves)) + 2
}

func rebalance(n *node) *node {
	if n == nil || n.height <= maxHeight(n.leaves) {
		return n
	}
	leaves := make([]*node, 0, n.leaves)
	return build(collectLeaves(n, leaves))
}

func collectLeaves(n *node, out []*node) []*node {
	if n.isLeaf() {
		return append(out, n)
	}
	out = collectLeaves(n.left, out)
	return collectLeaves(n.right, out)
}
