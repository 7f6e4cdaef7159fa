// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jbourne

import "fmt"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // column offset in line, 0-based; a tab counts as 4 columns
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

func (loc Location) String() string {
	if loc.First.Line == loc.Last.Line {
		return fmt.Sprintf("%d:%d-%d", loc.First.Line, loc.First.Column, loc.Last.Column)
	}
	return fmt.Sprintf("%s-%s", loc.First, loc.Last)
}

// LineSpan reports the number of lines covered by loc, at least 1.
func (loc Location) LineSpan() int { return loc.Last.Line - loc.First.Line + 1 }

// ColSpan reports the column extent of loc. If loc covers a single line, this
// is the number of columns between its ends; otherwise it is the column of
// its end on the last line.
func (loc Location) ColSpan() int {
	if loc.Last.Line > loc.First.Line {
		return loc.Last.Column
	}
	return loc.Last.Column - loc.First.Column
}

// A cursor tracks the absolute position of a reader within its input. One
// cursor is shared by every reader working on the same stream.
type cursor struct {
	pos  int // byte offset
	line int // 0-based
	col  int
}

// step advances c past the byte b.
func (c *cursor) step(b byte) {
	c.pos++
	switch {
	case b == '\n':
		c.line++
		c.col = 0
	case b == '\t':
		c.col += tabWidth
	case b == '\r':
		// CR is only expected as part of CRLF, and takes no column.
	case b&0xc0 == 0x80:
		// UTF-8 continuation byte; the lead byte took the column.
	default:
		c.col++
	}
}

// skip advances c past each byte of buf.
func (c *cursor) skip(buf []byte) {
	for _, b := range buf {
		c.step(b)
	}
}

func (c cursor) lineCol() LineCol { return LineCol{Line: c.line + 1, Column: c.col} }

// locate returns the location from start to c.
func (c cursor) locate(start cursor) Location {
	return Location{
		Span:  Span{Pos: start.pos, End: c.pos},
		First: start.lineCol(),
		Last:  c.lineCol(),
	}
}

const tabWidth = 4
