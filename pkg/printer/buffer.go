package printer

import (
	"bytes"
	"strings"
)

// DefaultIndent is the indentation unit used when Options.Indent is empty.
const DefaultIndent = "    "

// Buffer accumulates printed source. Indentation is applied lazily: the
// first Write after a Newline emits the current indentation once.
type Buffer struct {
	buf      bytes.Buffer
	unit     string
	depth    int
	indented bool
}

// NewBuffer returns a buffer indenting by unit per level.
func NewBuffer(unit string) *Buffer {
	if unit == "" {
		unit = DefaultIndent
	}
	return &Buffer{unit: unit}
}

func (b *Buffer) Write(s string) {
	if s == "" {
		return
	}
	if !b.indented {
		b.buf.WriteString(strings.Repeat(b.unit, max(b.depth, 0)))
		b.indented = true
	}
	b.buf.WriteString(s)
}

// Newline ends the current line.
func (b *Buffer) Newline() {
	b.buf.WriteByte('\n')
	b.indented = false
}

// WriteLine writes s and ends the line.
func (b *Buffer) WriteLine(s string) {
	b.Write(s)
	b.Newline()
}

func (b *Buffer) Indent() {
	b.depth++
}

func (b *Buffer) Unindent() {
	b.depth--
}

// Indented runs fn one level deeper.
func (b *Buffer) Indented(fn func()) {
	b.Indent()
	defer b.Unindent()
	fn()
}

// Depth is the current indentation level.
func (b *Buffer) Depth() int {
	return b.depth
}

func (b *Buffer) String() string {
	return b.buf.String()
}
