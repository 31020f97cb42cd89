package docnav

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// Option configures a Document at construction time, mirroring the
// functional-options shape goripgrep's api.go uses for its Find/search
// configuration.
type Option func(*Document)

// WithChunkSize overrides DefaultChunkSize for this document.
func WithChunkSize(size int64) Option {
	return func(d *Document) { d.chunkSize = size }
}

// WithMaxChunks overrides the bounded-LRU chunk limit (MaxChunks).
func WithMaxChunks(max int) Option {
	return func(d *Document) { d.maxChunks = max }
}

// Document owns the byte stream, the sparse ordered set of loaded
// chunks, the sentinel last line, and a lazily-detected log-timestamp
// format. It serves all line, distance, search, and timestamp queries a
// pager viewport needs without holding the whole file in memory.
type Document struct {
	reader io.ReadSeeker

	chunks []Chunk // sorted, non-overlapping, by OffsetBegin
	lru    *chunkLRU

	documentSize int64
	lastLine     string

	logTimestampFormat LogTimestampFormat
	logDefaultDate     time.Time

	chunkSize int64
	maxChunks int
}

// NewDocument opens a document over reader, sized via Stat-like
// seek-to-end, and primes the tail chunk so LastLine is always
// available.
func NewDocument(reader io.ReadSeeker, opts ...Option) (*Document, error) {
	d := &Document{
		reader:    reader,
		chunkSize: DefaultChunkSize,
		maxChunks: MaxChunks,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.lru = newChunkLRU(d.maxChunks)

	size, err := reader.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("docnav: seek to end: %w", err)
	}
	d.documentSize = size
	if err := d.primeTail(size); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) primeTail(size int64) error {
	if size == 0 {
		return nil
	}
	begin := size - adaptiveChunkSize(d.chunkSize)
	if begin < 0 {
		begin = 0
	}
	_, err := d.loadChunkInternal(begin, size)
	return err
}

// Refresh re-detects end-of-file size growth: it re-seeks to the end of
// the underlying reader and, if the file has grown, extends LastLine
// to cover the new tail. This is the only tailing semantic in scope —
// existing chunks and the last-seen size are left untouched when the
// file hasn't grown. Used by follow mode.
func (d *Document) Refresh() (grew bool, err error) {
	size, err := d.reader.Seek(0, io.SeekEnd)
	if err != nil {
		return false, fmt.Errorf("docnav: seek to end: %w", err)
	}
	if size <= d.documentSize {
		return false, nil
	}
	oldSize := d.documentSize
	d.documentSize = size
	if err := d.primeTail(size); err != nil {
		d.documentSize = oldSize
		return false, err
	}
	return true, nil
}

// DocumentSize returns the last known file length in bytes.
func (d *Document) DocumentSize() int64 { return d.documentSize }

// LastLine returns the final logical line of the file, including its
// trailing newline if the file ends in one.
func (d *Document) LastLine() string { return d.lastLine }

// LastLineStartOffset is documentSize - len(lastLine).
func (d *Document) LastLineStartOffset() int64 {
	return d.documentSize - int64(len(d.lastLine))
}

// findChunkContaining returns the index of the chunk whose
// [OffsetBegin, OffsetEnd) contains offset.
func (d *Document) findChunkContaining(offset int64) (int, bool) {
	for i, c := range d.chunks {
		if c.OffsetBegin <= offset && offset < c.OffsetEnd {
			return i, true
		}
	}
	return 0, false
}

// GetChunkIndexByOffset returns the chunk index covering offset, if
// loaded.
func (d *Document) GetChunkIndexByOffset(offset int64) (int, bool) {
	return d.findChunkContaining(offset)
}

// GetOrLoadChunkByOffset returns the chunk covering offset, loading a
// fresh window around it if necessary.
func (d *Document) GetOrLoadChunkByOffset(offset int64) (Chunk, bool) {
	if idx, ok := d.findChunkContaining(offset); ok {
		d.lru.touch(d.chunks[idx].OffsetBegin)
		return d.chunks[idx], true
	}
	idx, ok := d.loadChunkAround(offset)
	if !ok {
		return Chunk{}, false
	}
	d.lru.touch(d.chunks[idx].OffsetBegin)
	return d.chunks[idx], true
}

// loadChunkAround loads a window of chunkSize centered on offset.
func (d *Document) loadChunkAround(offset int64) (int, bool) {
	half := adaptiveChunkSize(d.chunkSize) / 2
	begin := offset - half
	if begin < 0 {
		begin = 0
	}
	end := offset + half
	idx, err := d.loadChunkInternal(begin, end)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// LoadChunk loads a fresh chunk covering as much of [begin, end) as
// isn't already covered by a resident chunk, line-aligning both edges.
// Returns the index of the resulting chunk, or ok=false if nothing new
// needed loading.
func (d *Document) LoadChunk(begin, end int64) (int, bool, error) {
	idx, err := d.loadChunkInternal(begin, end)
	if err != nil {
		return 0, false, err
	}
	if idx < 0 {
		return 0, false, nil
	}
	return idx, true, nil
}

func (d *Document) loadChunkInternal(begin, end int64) (int, error) {
	if end > d.documentSize {
		end = d.documentSize
	}
	if begin >= end {
		return -1, nil
	}

	// Avoid overlap with existing chunks: slide begin forward through
	// any chunk (and its right-adjacent neighbors) that already covers
	// it, and slide end backward symmetrically.
	for {
		idx, ok := d.findChunkContaining(begin)
		if !ok {
			break
		}
		begin = d.chunks[idx].OffsetEnd
	}
	for end > begin {
		idx, ok := d.findChunkContaining(end - 1)
		if !ok {
			break
		}
		end = d.chunks[idx].OffsetBegin
	}
	if begin >= end {
		return -1, nil
	}

	readBegin := begin
	dropFirst := false
	if begin > 0 {
		readBegin = begin - 1
		dropFirst = true
	}

	if _, err := d.reader.Seek(readBegin, io.SeekStart); err != nil {
		return -1, fmt.Errorf("docnav: seek: %w", err)
	}
	buf := make([]byte, end-readBegin)
	if _, err := io.ReadFull(d.reader, buf); err != nil {
		return -1, fmt.Errorf("docnav: read chunk [%d,%d): %w", readBegin, end, err)
	}

	dropLast := end < d.documentSize
	chunk := BuildChunk(buf, readBegin, dropFirst, dropLast)

	if end >= d.documentSize {
		endsInNewline := len(buf) > 0 && buf[len(buf)-1] == '\n'
		if len(chunk.Rows) > 0 {
			last := chunk.Rows[len(chunk.Rows)-1]
			chunk.Rows = chunk.Rows[:len(chunk.Rows)-1]
			if endsInNewline {
				last += "\n"
			}
			chunk.OffsetEnd -= int64(len(last))
			d.lastLine = last
		} else {
			d.lastLine = ""
		}
	}

	if len(chunk.Rows) == 0 {
		return -1, nil
	}

	if d.logTimestampFormat == FormatNone {
		if format, date, ok := detectLogTimestampFormat(chunk.Rows); ok {
			d.logTimestampFormat = format
			d.logDefaultDate = date
		}
	}

	d.insertChunk(chunk)
	d.lru.touch(chunk.OffsetBegin)
	d.evictIfNeeded()
	// Eviction may have removed chunks before the new one, so look its
	// index up again rather than reusing insertChunk's.
	idx, _ := d.findChunkContaining(chunk.OffsetBegin)
	return idx, nil
}

// insertChunk finds the position where chunk belongs, removes any
// chunks it fully subsumes, inserts it, and returns its new index.
func (d *Document) insertChunk(chunk Chunk) int {
	pos := sort.Search(len(d.chunks), func(i int) bool {
		return d.chunks[i].OffsetBegin >= chunk.OffsetBegin
	})
	end := pos
	for end < len(d.chunks) && d.chunks[end].OffsetEnd <= chunk.OffsetEnd {
		d.lru.forget(d.chunks[end].OffsetBegin)
		end++
	}
	d.chunks = append(d.chunks[:pos], append([]Chunk{chunk}, d.chunks[end:]...)...)
	return pos
}

func (d *Document) evictIfNeeded() {
	for d.lru.len() > d.maxChunks {
		offset, ok := d.lru.evictionCandidate()
		if !ok {
			return
		}
		idx, found := d.findChunkContaining(offset)
		if found && d.chunks[idx].OffsetBegin == offset {
			d.chunks = append(d.chunks[:idx], d.chunks[idx+1:]...)
		}
		d.lru.forget(offset)
	}
}

// lineContaining locates the row containing byte offset, loading a
// covering chunk on demand. offset need not be a line start.
func (d *Document) lineContaining(offset int64) (Chunk, int, bool) {
	chunk, ok := d.GetOrLoadChunkByOffset(offset)
	if !ok {
		return Chunk{}, 0, false
	}
	return chunk, chunk.QueryLineIndex(offset), true
}

// QueryLines walks forward from offset (a line start) collecting up to
// n line bodies, appending the trimmed last line if the walk reaches
// the end of the file before n is satisfied.
func (d *Document) QueryLines(offset int64, n int) []string {
	var lines []string
	cur := offset
	lastStart := d.LastLineStartOffset()
	for len(lines) < n && cur < lastStart {
		chunk, ok := d.GetOrLoadChunkByOffset(cur)
		if !ok {
			break
		}
		rowIdx := chunk.QueryLineIndexExactly(cur)
		for rowIdx < len(chunk.Rows) && len(lines) < n {
			lines = append(lines, chunk.Rows[rowIdx])
			cur = chunk.QueryLineStartOffset(rowIdx + 1)
			rowIdx++
			if cur >= lastStart {
				break
			}
		}
	}
	if len(lines) < n {
		lines = append(lines, strings.TrimSuffix(d.lastLine, "\n"))
	}
	return lines
}

// QueryDistanceToBelowNLines sums len(line)+1 for up to n lines
// starting at offset, stopping at the last-line boundary.
func (d *Document) QueryDistanceToBelowNLines(offset int64, n int) int64 {
	var sum int64
	cur := offset
	lastStart := d.LastLineStartOffset()
	for i := 0; i < n; i++ {
		if cur >= lastStart {
			break
		}
		chunk, ok := d.GetOrLoadChunkByOffset(cur)
		if !ok {
			break
		}
		rowIdx := chunk.QueryLineIndexExactly(cur)
		sum += int64(len(chunk.Rows[rowIdx])) + 1
		cur = chunk.QueryLineStartOffset(rowIdx + 1)
	}
	return sum
}

// QueryDistanceToAboveNLines sums len(line)+1 for up to n lines
// immediately above offset. offset is always either a line start or
// LastLineStartOffset(), so offset-1 always lands on the boundary byte
// (the newline, or the position just before it) of the line above;
// this is behaviorally equivalent to the spec's described
// QueryLineIndexExactly-then-QueryLineIndex+1 bookkeeping, without
// needing to special-case the last-line boundary.
func (d *Document) QueryDistanceToAboveNLines(offset int64, n int) int64 {
	if offset == 0 {
		return 0
	}
	var sum int64
	probe := offset - 1
	for i := 0; i < n; i++ {
		chunk, rowIdx, ok := d.lineContaining(probe)
		if !ok {
			break
		}
		sum += int64(len(chunk.Rows[rowIdx])) + 1
		lineStart := chunk.QueryLineStartOffset(rowIdx)
		if lineStart == 0 {
			break
		}
		probe = lineStart - 1
	}
	return sum
}

// QueryDistanceToNextMatch scans forward from offset, returning the
// byte distance to the start of the first line satisfying predicate,
// and true. Returns false if no line up to and including LastLine
// matches.
func (d *Document) QueryDistanceToNextMatch(offset int64, predicate func(string) bool) (int64, bool) {
	var dist int64
	cur := offset
	lastStart := d.LastLineStartOffset()
	for cur < lastStart {
		chunk, ok := d.GetOrLoadChunkByOffset(cur)
		if !ok {
			break
		}
		rowIdx := chunk.QueryLineIndexExactly(cur)
		line := chunk.Rows[rowIdx]
		if predicate(line) {
			return dist, true
		}
		dist += int64(len(line)) + 1
		cur = chunk.QueryLineStartOffset(rowIdx + 1)
	}
	if predicate(strings.TrimSuffix(d.lastLine, "\n")) {
		return dist, true
	}
	return 0, false
}

// QueryDistanceToPrevMatch scans backward from offset, never
// inspecting offset's own line; returns the byte distance back to the
// start of the first matching line found, and true.
func (d *Document) QueryDistanceToPrevMatch(offset int64, predicate func(string) bool) (int64, bool) {
	if offset == 0 {
		return 0, false
	}
	var dist int64
	probe := offset - 1
	for {
		chunk, rowIdx, ok := d.lineContaining(probe)
		if !ok {
			return 0, false
		}
		line := chunk.Rows[rowIdx]
		lineStart := chunk.QueryLineStartOffset(rowIdx)
		dist += int64(len(line)) + 1
		if predicate(line) {
			return dist, true
		}
		if lineStart == 0 {
			return 0, false
		}
		probe = lineStart - 1
	}
}

// QueryOffsetByTimestamp binary-searches [0, LastLineStartOffset()] for
// the first line whose timestamp is >= the target built from dateStr
// (optional, falls back to the detected default date) and timeStr
// (required). Returns false if no timestamp format has been detected or
// the target cannot be parsed.
func (d *Document) QueryOffsetByTimestamp(dateStr, timeStr string) (int64, bool) {
	if d.documentSize == 0 || d.LastLineStartOffset() == 0 {
		return 0, true
	}
	if d.logTimestampFormat == FormatNone {
		chunk, _ := d.GetOrLoadChunkByOffset(0)
		if format, date, ok := detectLogTimestampFormat(chunk.Rows); ok {
			d.logTimestampFormat = format
			d.logDefaultDate = date
		} else {
			return 0, false
		}
	}

	target, ok := ParseJumpTarget(dateStr+" "+timeStr, d.logDefaultDate)
	if dateStr == "" {
		target, ok = ParseJumpTarget(timeStr, d.logDefaultDate)
	}
	if !ok {
		return 0, false
	}

	begin, end := int64(0), d.LastLineStartOffset()
	for end-begin > DefaultChunkSize {
		mid := begin + (end-begin)/2
		lineStart, ts, found := d.nearestParsedTimestampAtOrAfter(mid, end)
		if !found {
			return 0, false
		}
		if !ts.Before(target) {
			end = lineStart
		} else {
			begin = lineStart + 1
		}
	}

	return d.linearScanForTimestamp(begin, end, target)
}

// nearestParsedTimestampAtOrAfter locates the line containing mid (or
// the first line at/after it within limit) and tries to parse its
// timestamp, advancing line by line until one parses or limit is
// exceeded.
func (d *Document) nearestParsedTimestampAtOrAfter(mid, limit int64) (int64, time.Time, bool) {
	chunk, rowIdx, ok := d.lineContaining(mid)
	if !ok {
		return 0, time.Time{}, false
	}
	lineStart := chunk.QueryLineStartOffset(rowIdx)
	for {
		if lineStart >= limit {
			return 0, time.Time{}, false
		}
		if ts, ok := parseLogLine(chunk.Rows[rowIdx], d.logTimestampFormat); ok {
			return lineStart, ts, true
		}
		rowIdx++
		if rowIdx >= len(chunk.Rows) {
			lineStart = chunk.QueryLineStartOffset(rowIdx)
			chunk, ok = d.GetOrLoadChunkByOffset(lineStart)
			if !ok {
				return 0, time.Time{}, false
			}
			rowIdx = chunk.QueryLineIndexExactly(lineStart)
			continue
		}
		lineStart = chunk.QueryLineStartOffset(rowIdx)
	}
}

func (d *Document) linearScanForTimestamp(begin, end int64, target time.Time) (int64, bool) {
	cur := begin
	// The binary search can leave begin inside a line; start the scan at
	// the next line start.
	if cur < end {
		if chunk, rowIdx, ok := d.lineContaining(cur); ok && chunk.QueryLineStartOffset(rowIdx) != cur {
			cur = chunk.QueryLineStartOffset(rowIdx + 1)
		}
	}
	for cur < end {
		chunk, ok := d.GetOrLoadChunkByOffset(cur)
		if !ok {
			break
		}
		rowIdx := chunk.QueryLineIndexExactly(cur)
		if ts, ok := parseLogLine(chunk.Rows[rowIdx], d.logTimestampFormat); ok {
			if !ts.Before(target) {
				return cur, true
			}
		}
		cur = chunk.QueryLineStartOffset(rowIdx + 1)
	}
	return end, true
}
