package text

// Cursor is the interface shared by the document iterators. Next advances
// past skip bytes (line breaks count 1) and produces the next token,
// reporting false once the iteration is done. A negative skip moves against
// the iteration direction; skips are clamped to the iterated range. Each
// non-done token is either a chunk of text without separators (Value) or a
// single line break (LineBreak). Done is terminal: further Next calls keep
// reporting false.
//
// A Cursor owns a mutable descent stack and must not be shared between
// goroutines; independent cursors over the same document are fine.
type Cursor interface {
	Next(skip int) bool
	Value() string
	LineBreak() bool
	Done() bool
}

var (
	_ Cursor = (*Iter)(nil)
	_ Cursor = (*RangeIter)(nil)
	_ Cursor = (*LineIter)(nil)
)

// Iter iterates a whole document in one direction, yielding text chunks
// interleaved with line-break tokens.
type Iter struct {
	dir       int
	nodes     []*node
	offsets   []int
	value     string
	lineBreak bool
	done      bool
}

// Iter returns an iterator over the whole document. dir is +1 for forward
// iteration and -1 for reverse; the reverse token sequence is the exact
// mirror of the forward one.
func (t Text) Iter(dir int) *Iter {
	if dir < 0 {
		dir = -1
	} else {
		dir = 1
	}
	return newRawIter(t.node(), dir)
}

func newRawIter(root *node, dir int) *Iter {
	return &Iter{
		dir:     dir,
		nodes:   []*node{root},
		offsets: []int{startOffset(root, dir)},
	}
}

// The descent stack encodes each level's position as index*2 + parity, where
// the parity bit distinguishes entry positions from the break positions
// between entries. This lets one walk switch direction without unwinding.
func startOffset(n *node, dir int) int {
	if dir > 0 {
		return 1
	}
	return n.size() << 1
}

// Next advances the iterator. See Cursor.
func (it *Iter) Next(skip int) bool {
	it.next(skip)
	return !it.done
}

// Value returns the current chunk, or "" on line-break and done tokens.
func (it *Iter) Value() string {
	if it.lineBreak {
		return ""
	}
	return it.value
}

// LineBreak reports whether the current token is a line break.
func (it *Iter) LineBreak() bool { return it.lineBreak }

// Done reports whether the iteration has ended.
func (it *Iter) Done() bool { return it.done }

func (it *Iter) next(skip int) {
	if skip < 0 {
		// Walk against the direction first, then re-emit the token at the
		// new position in iteration order.
		it.nextInner(-skip, -it.dir)
		skip = len(it.value)
	}
	it.nextInner(skip, it.dir)
}

func (it *Iter) nextInner(skip, dir int) {
	it.done, it.lineBreak = false, false
	for {
		last := len(it.nodes) - 1
		top := it.nodes[last]
		offsetValue := it.offsets[last]
		offset := offsetValue >> 1
		size := top.size()

		boundary := 0
		if dir > 0 {
			boundary = size
		}
		breakParity := 1
		if dir > 0 {
			breakParity = 0
		}

		switch {
		case offset == boundary:
			if last == 0 {
				it.done = true
				it.value = ""
				return
			}
			if dir > 0 {
				it.offsets[last-1]++
			}
			it.nodes = it.nodes[:last]
			it.offsets = it.offsets[:last]

		case offsetValue&1 == breakParity:
			it.offsets[last] += dir
			if skip == 0 {
				it.lineBreak = true
				it.value = "\n"
				return
			}
			skip--

		case top.isLeaf():
			idx := offset
			if dir < 0 {
				idx--
			}
			next := top.text[idx]
			it.offsets[last] += dir
			if len(next) > max(skip, 0) {
				switch {
				case skip == 0:
					it.value = next
				case dir > 0:
					it.value = next[skip:]
				default:
					it.value = next[:len(next)-skip]
				}
				return
			}
			skip -= len(next)

		default:
			idx := offset
			if dir < 0 {
				idx--
			}
			next := top.children[idx]
			if skip > next.length {
				skip -= next.length
				it.offsets[last] += dir
			} else {
				if dir < 0 {
					it.offsets[last]--
				}
				it.nodes = append(it.nodes, next)
				it.offsets = append(it.offsets, startOffset(next, dir))
			}
		}
	}
}

// RangeIter iterates a clipped range of a document. Chunks straddling a
// range boundary are sliced so no byte outside the range is produced.
type RangeIter struct {
	cursor    *Iter
	pos       int
	from, to  int
	value     string
	lineBreak bool
	done      bool
}

// IterRange returns an iterator over [min(from, to), max(from, to)),
// clamped to the document. When from > to the iteration runs in reverse.
func (t Text) IterRange(from, to int) *RangeIter {
	n := t.node()
	from = min(max(from, 0), n.length)
	to = min(max(to, 0), n.length)
	dir, pos := 1, 0
	if from > to {
		dir, pos = -1, n.length
		from, to = to, from
	}
	return &RangeIter{cursor: newRawIter(n, dir), pos: pos, from: from, to: to}
}

// Next advances the iterator. See Cursor.
func (it *RangeIter) Next(skip int) bool {
	it.next(skip)
	return !it.done
}

// Value returns the current chunk, or "" on line-break and done tokens.
func (it *RangeIter) Value() string {
	if it.lineBreak {
		return ""
	}
	return it.value
}

// LineBreak reports whether the current token is a line break.
func (it *RangeIter) LineBreak() bool { return it.lineBreak }

// Done reports whether the iteration has ended.
func (it *RangeIter) Done() bool { return it.done }

func (it *RangeIter) next(skip int) {
	dir := it.cursor.dir
	if skip != 0 {
		// Clamp the skip against the logical position, which sits at the
		// range edge before the first token is produced.
		pos := it.pos
		if dir > 0 {
			pos = max(pos, it.from)
			skip = min(max(skip, it.from-pos), it.to-pos)
		} else {
			pos = min(pos, it.to)
			skip = min(max(skip, pos-it.to), pos-it.from)
		}
	}
	it.nextInner(skip, dir)
}

func (it *RangeIter) nextInner(skip, dir int) {
	if dir < 0 && it.pos <= it.from || dir > 0 && it.pos >= it.to {
		it.value, it.lineBreak, it.done = "", false, true
		return
	}
	// The underlying cursor starts at a document end; fold the distance to
	// the range edge into the skip.
	if dir < 0 {
		skip += max(0, it.pos-it.to)
	} else {
		skip += max(0, it.from-it.pos)
	}
	limit := it.to - it.pos
	if dir < 0 {
		limit = it.pos - it.from
	}
	if skip > limit {
		skip = limit
	}
	limit -= skip

	it.cursor.next(skip)
	value := it.cursor.value
	it.pos += (len(value) + skip) * dir
	it.lineBreak = it.cursor.lineBreak
	if len(value) > limit {
		if dir < 0 {
			value = value[len(value)-limit:]
		} else {
			value = value[:limit]
		}
	}
	it.value = value
	it.done = value == ""
	if it.done {
		it.lineBreak = false
	}
}

// stepper lets LineIter wrap either a whole-document or a range cursor.
type stepper interface {
	step(skip int) (value string, lineBreak, done bool)
}

func (it *Iter) step(skip int) (string, bool, bool) {
	it.next(skip)
	return it.value, it.lineBreak, it.done
}

func (it *RangeIter) step(skip int) (string, bool, bool) {
	it.next(skip)
	return it.value, it.lineBreak, it.done
}

// LineIter iterates logical lines, yielding one value per line and no
// line-break tokens. Blank lines are produced as empty values.
type LineIter struct {
	inner      stepper
	afterBreak bool
	value      string
	done       bool
}

// IterLines returns an iterator over all of the document's lines.
func (t Text) IterLines() *LineIter {
	return &LineIter{inner: t.Iter(1), afterBreak: true}
}

// IterLinesRange returns an iterator over lines [startLine, endLine), both
// 1-based. Out-of-range or inverted bounds produce an immediately-done
// iterator.
func (t Text) IterLinesRange(startLine, endLine int) *LineIter {
	lines := t.LineCount()
	if startLine < 1 || startLine > lines || endLine <= startLine {
		return &LineIter{done: true}
	}
	if endLine > lines+1 {
		endLine = lines + 1
	}
	n := t.node()
	start := n.lineInner(startLine, true, 1, 0).From
	end := n.length
	if endLine <= lines {
		end = n.lineInner(endLine-1, true, 1, 0).To
	}
	if end < start {
		end = start
	}
	return &LineIter{inner: t.IterRange(start, end), afterBreak: true}
}

// Next advances to the next line. See Cursor.
func (it *LineIter) Next(skip int) bool {
	if it.done {
		it.value = ""
		return false
	}
	for {
		value, lineBreak, done := it.inner.step(skip)
		skip = 0
		switch {
		case done && it.afterBreak:
			// The range ended right after a break: one final empty line.
			it.afterBreak = false
			it.value = ""
			return true
		case done:
			it.done = true
			it.value = ""
			return false
		case lineBreak:
			if it.afterBreak {
				it.value = ""
				return true
			}
			it.afterBreak = true
			// Swallow the break and emit whatever follows it.
		default:
			it.value = value
			it.afterBreak = false
			return true
		}
	}
}

// Value returns the current line, without separators.
func (it *LineIter) Value() string { return it.value }

// LineBreak always reports false: lines are yielded as whole values.
func (it *LineIter) LineBreak() bool { return false }

// Done reports whether the iteration has ended.
func (it *LineIter) Done() bool { return it.done }
