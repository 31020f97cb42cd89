package docnav

import "container/list"

// chunkLRU tracks chunk recency by OffsetBegin, independent of the
// chunks slice itself (which is reordered by insertion/removal as
// LoadChunk runs). This mirrors the eviction posture of goripgrep's
// dfa_cache.go (bounded map with an eviction policy keyed by usage),
// applied here to bound the total number of resident chunks instead of
// compiled regexes, per the bounded-chunk-cache redesign flag.
type chunkLRU struct {
	max     int
	order   *list.List
	entries map[int64]*list.Element
}

func newChunkLRU(max int) *chunkLRU {
	return &chunkLRU{
		max:     max,
		order:   list.New(),
		entries: make(map[int64]*list.Element),
	}
}

// touch marks offsetBegin as most recently used.
func (l *chunkLRU) touch(offsetBegin int64) {
	if el, ok := l.entries[offsetBegin]; ok {
		l.order.MoveToFront(el)
		return
	}
	l.entries[offsetBegin] = l.order.PushFront(offsetBegin)
}

// forget removes offsetBegin from tracking, used when a chunk is
// replaced or dropped by LoadChunk's insertion/replacement step.
func (l *chunkLRU) forget(offsetBegin int64) {
	if el, ok := l.entries[offsetBegin]; ok {
		l.order.Remove(el)
		delete(l.entries, offsetBegin)
	}
}

// evictionCandidate returns the least-recently-used offsetBegin still
// tracked, or false if nothing is tracked.
func (l *chunkLRU) evictionCandidate() (int64, bool) {
	back := l.order.Back()
	if back == nil {
		return 0, false
	}
	return back.Value.(int64), true
}

func (l *chunkLRU) len() int {
	return l.order.Len()
}
