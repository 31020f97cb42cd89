// Package docnav implements the byte-offset-addressed document navigation
// engine: a sparse, line-aligned chunk cache over a seekable byte stream.
package docnav

import "bytes"

// Chunk is a contiguous, line-aligned slice of a file held in memory,
// together with the byte range it covers.
//
// Invariant: for any offset o with OffsetBegin <= o < OffsetEnd, exactly
// one row contains o; row i starts at OffsetBegin + sum(len(Rows[j])+1)
// for j < i.
type Chunk struct {
	OffsetBegin int64
	OffsetEnd   int64
	Rows        []string
}

// BuildChunk splits content on '\n' into line-aligned rows.
//
// If dropFirst, the prefix up to and including the first '\n' is
// discarded and OffsetBegin is adjusted past it. A non-empty trailing
// span after the last '\n' is kept as a final row unless dropLast is
// true, in which case it is discarded. contentOffset is the absolute
// file offset of content[0].
func BuildChunk(content []byte, contentOffset int64, dropFirst, dropLast bool) Chunk {
	start := 0
	offsetBegin := contentOffset
	if dropFirst {
		idx := bytes.IndexByte(content, '\n')
		if idx == -1 {
			end := contentOffset + int64(len(content))
			return Chunk{OffsetBegin: end, OffsetEnd: end}
		}
		start = idx + 1
		offsetBegin = contentOffset + int64(start)
	}

	var rows []string
	pos := start
	for {
		idx := bytes.IndexByte(content[pos:], '\n')
		if idx == -1 {
			break
		}
		rows = append(rows, string(content[pos:pos+idx]))
		pos += idx + 1
	}

	offsetEnd := contentOffset + int64(pos)
	if pos < len(content) && !dropLast {
		rows = append(rows, string(content[pos:]))
		offsetEnd = contentOffset + int64(len(content))
	}

	return Chunk{OffsetBegin: offsetBegin, OffsetEnd: offsetEnd, Rows: rows}
}

// QueryLineIndex returns the index of the row containing offset.
//
// Precondition: OffsetBegin <= offset < OffsetEnd. Violating it is a
// contract error, not a runtime error, and panics.
func (c Chunk) QueryLineIndex(offset int64) int {
	cur := c.OffsetBegin
	for i, row := range c.Rows {
		end := cur + int64(len(row))
		if offset <= end {
			return i
		}
		cur = end + 1
	}
	panic("docnav: offset out of chunk range")
}

// QueryLineIndexExactly is QueryLineIndex but requires offset to equal a
// row's start exactly; used to enforce the line-start invariant.
func (c Chunk) QueryLineIndexExactly(offset int64) int {
	cur := c.OffsetBegin
	for i, row := range c.Rows {
		if offset == cur {
			return i
		}
		cur += int64(len(row)) + 1
	}
	panic("docnav: offset is not a line start")
}

// QueryLineStartOffset returns the start offset of row i, where i may
// equal len(Rows): OffsetBegin plus len(row)+1 for every row before i.
// For i == len(Rows) that equals OffsetEnd when the last row ends in a
// newline, and OffsetEnd+1 when the last row is un-terminated.
func (c Chunk) QueryLineStartOffset(i int) int64 {
	offset := c.OffsetBegin
	for j := 0; j < i; j++ {
		offset += int64(len(c.Rows[j])) + 1
	}
	return offset
}
