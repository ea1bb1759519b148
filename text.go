package text

import (
	"fmt"
	"io"
	"strings"
)

// Text is an immutable document value. The zero value is the empty document.
// All operations return new Text values and never modify the receiver, so
// documents may be shared freely between goroutines. Edited documents share
// unchanged subtrees with the values they were derived from.
type Text struct {
	root *node
}

// New returns the empty document: a single empty line, length 0.
func New() Text {
	return Text{root: emptyLeaf}
}

// Of builds a document from a non-empty list of line strings. The lines must
// not contain line separators; Of returns ErrLineSeparator if one does, and
// ErrNoLines for an empty list.
func Of(lines []string) (Text, error) {
	if len(lines) == 0 {
		return Text{}, ErrNoLines
	}
	for i, line := range lines {
		if strings.IndexByte(line, '\n') >= 0 {
			return Text{}, fmt.Errorf("line %d: %w", i+1, ErrLineSeparator)
		}
	}
	if len(lines) == 1 && lines[0] == "" {
		return New(), nil
	}
	return Text{root: nodeFrom(splitLines(lines, nil), textLength(lines))}, nil
}

// FromString builds a document from a string, splitting it on '\n'.
func FromString(s string) Text {
	doc, _ := Of(strings.Split(s, "\n"))
	return doc
}

// FromReader builds a document from the contents of r.
func FromReader(r io.Reader) (Text, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Text{}, err
	}
	return FromString(string(data)), nil
}

// node returns the root, substituting the empty document for the zero value.
func (t Text) node() *node {
	if t.root == nil {
		return emptyLeaf
	}
	return t.root
}

// Len returns the document length in bytes, counting internal separators.
func (t Text) Len() int {
	return t.node().length
}

// LineCount returns the number of logical lines; it is always at least 1.
func (t Text) LineCount() int {
	return t.node().lineCount()
}

// String returns the whole document as a string, joining lines with '\n'.
// Use sparingly for large documents; prefer iterators or WriteTo.
func (t Text) String() string {
	s, _ := t.SliceString(0, t.Len())
	return s
}

// WriteTo writes the whole document to w, implementing io.WriterTo.
func (t Text) WriteTo(w io.Writer) (int64, error) {
	return t.node().writeTo(w)
}

func (n *node) writeTo(w io.Writer) (int64, error) {
	var total int64
	sep := []byte{'\n'}
	if n.isLeaf() {
		for i, line := range n.text {
			if i > 0 {
				m, err := w.Write(sep)
				total += int64(m)
				if err != nil {
					return total, err
				}
			}
			m, err := io.WriteString(w, line)
			total += int64(m)
			if err != nil {
				return total, err
			}
		}
		return total, nil
	}
	for i, child := range n.children {
		if i > 0 {
			m, err := w.Write(sep)
			total += int64(m)
			if err != nil {
				return total, err
			}
		}
		m, err := child.writeTo(w)
		total += m
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Replace returns a new document with the [from, to) range substituted by
// insert. The unchanged prefix and suffix are shared by reference with the
// receiver. When the edit boundaries fall inside lines, the boundary lines
// are spliced with the insert's first and last lines; replacing a range with
// the empty document joins the two boundary lines into one.
func (t Text) Replace(from, to int, insert Text) (Text, error) {
	if err := t.checkRange(from, to); err != nil {
		return Text{}, err
	}
	return Text{root: t.node().replace(from, to, insert.node())}, nil
}

// Append returns the concatenation of the two documents. The receiver's last
// line and other's first line are joined into a single line.
func (t Text) Append(other Text) Text {
	return Text{root: t.node().replace(t.Len(), t.Len(), other.node())}
}

// Slice returns the [from, to) range as a new document, reusing covered
// subtrees where possible.
func (t Text) Slice(from, to int) (Text, error) {
	if err := t.checkRange(from, to); err != nil {
		return Text{}, err
	}
	var parts []*node
	t.node().decompose(from, to, &parts, 0)
	return Text{root: nodeFrom(parts, to - from)}, nil
}

// SliceString returns the [from, to) range materialized as a string.
func (t Text) SliceString(from, to int) (string, error) {
	if err := t.checkRange(from, to); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(to - from)
	t.node().appendRange(&sb, from, to)
	return sb.String(), nil
}

func (t Text) checkRange(from, to int) error {
	if from < 0 || from > to || to > t.Len() {
		return fmt.Errorf("range [%d, %d) in document of length %d: %w", from, to, t.Len(), ErrOffsetOutOfRange)
	}
	return nil
}

// Height returns the node-count height of the document tree: 1 for a single
// leaf. Useful for inspecting balance.
func (t Text) Height() int {
	return t.node().height()
}

// Eq reports whether the two documents have the same content. Tree shape is
// ignored: documents partitioned differently compare equal when their
// logical content matches.
func (t Text) Eq(other Text) bool {
	a, b := t.node(), other.node()
	if a == b {
		return true
	}
	if a.length != b.length || a.lineCount() != b.lineCount() {
		return false
	}
	start := a.scanIdentical(b, 1)
	end := a.length - a.scanIdentical(b, -1)
	ia := newRawIter(a, 1)
	ib := newRawIter(b, 1)
	for skip, pos := start, start; ; {
		ia.next(skip)
		ib.next(skip)
		skip = 0
		if ia.lineBreak != ib.lineBreak || ia.done != ib.done || ia.value != ib.value {
			return false
		}
		pos += len(ia.value)
		if ia.done || pos >= end {
			return true
		}
	}
}
