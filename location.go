package jtok

// A Span describes a contiguous byte range of the input buffer.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the length in bytes of the span.
func (s Span) Len() int { return s.End - s.Pos }

// A LineCol describes the line and column of a byte offset in source text.
// Both are 1-based, matching the file:line:column convention used by the
// diagnostics in Error.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column within the line, 1-based
}

// A Location describes the complete location of a range of source text,
// including line and column offsets of its endpoints.
type Location struct {
	Span
	First, Last LineCol
}

// Location computes t's full source location: its byte span plus the
// line/column of its first and last byte. Unlike the O(1) navigation
// methods, Location is O(n) in t's offset, since it counts newlines from
// the start of the input; callers that need many locations in one pass
// should walk the buffer once themselves rather than calling Location
// per token.
func (t *Token) Location() Location {
	span := Span{Pos: t.Offset(), End: t.Offset() + t.data.Len()}
	fl, fc := locate(t.owner.buf, span.Pos)
	ll, lc := locate(t.owner.buf, span.End-1)
	return Location{
		Span:  span,
		First: LineCol{Line: fl, Column: fc},
		Last:  LineCol{Line: ll, Column: lc},
	}
}
