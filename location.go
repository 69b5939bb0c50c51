package nxjson

import (
	"fmt"

	"go4.org/mem"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
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
	return loc.First.String() + "-" + loc.Last.String()
}

// lineColAt returns the line and column of offset pos in src.
func lineColAt(src mem.RO, pos int) LineCol {
	pos = min(max(pos, 0), src.Len())
	head := src.SliceTo(pos)
	line := 1
	for {
		i := mem.IndexByte(head, '\n')
		if i < 0 {
			break
		}
		line++
		head = head.SliceFrom(i + 1)
	}
	return LineCol{Line: line, Column: head.Len()}
}

func locationOf(src mem.RO, pos, end int) Location {
	return Location{
		Span:  Span{Pos: pos, End: end},
		First: lineColAt(src, pos),
		Last:  lineColAt(src, end),
	}
}
