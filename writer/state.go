package writer

import (
	"strconv"
	"strings"
)

// frame is an open collection.
type frame struct {
	mapping bool
	flow    bool
	// indent is the column of block entries.
	indent int
	// inline is set when the first block entry continues the line of
	// the parent's "- ".
	inline bool
	// n counts complete entries: pairs for mappings.
	n int
	// value is set in a mapping once the key of the current pair is
	// written.
	value bool
	key   string
	// props holds the anchor and tag of a block collection until its
	// first entry, or its end when empty.
	props  string
	opened bool
}

func (w *Writer) top() *frame {
	return &w.stack[len(w.stack)-1]
}

// Depth returns the number of open collections.
func (w *Writer) Depth() int {
	return len(w.stack)
}

// Path returns the location of the node being written, e.g. "a.b[2]".
func (w *Writer) Path() string {
	var b strings.Builder
	for i := range w.stack {
		f := &w.stack[i]
		if !f.mapping {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(f.n))
			b.WriteByte(']')
			continue
		}
		if !f.value {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(f.key)
	}
	return b.String()
}

func (w *Writer) inFlow() bool {
	if w.opts.format.IsJSON() {
		return true
	}
	return len(w.stack) > 0 && w.top().flow
}

// childIndent returns the indentation of a block node nested in the
// current position.
func (w *Writer) childIndent() (int, bool) {
	if len(w.stack) == 0 {
		return 0, false
	}
	f := w.top()
	if f.mapping {
		return f.indent + w.opts.indent, false
	}
	return f.indent + 2, true
}
