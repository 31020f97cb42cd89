package docnav

import (
	"reflect"
	"testing"
)

func TestBuildChunk(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		offset      int64
		dropFirst   bool
		dropLast    bool
		wantBegin   int64
		wantEnd     int64
		wantRows    []string
	}{
		{
			name:      "scenario 1: no drop",
			content:   "123456\n12345\n12\n\n123456",
			offset:    2,
			wantBegin: 2,
			wantEnd:   25,
			wantRows:  []string{"123456", "12345", "12", "", "123456"},
		},
		{
			name:      "drop first",
			content:   "abc\ndef\nghi",
			offset:    0,
			dropFirst: true,
			wantBegin: 4,
			wantEnd:   11,
			wantRows:  []string{"def", "ghi"},
		},
		{
			name:      "drop last",
			content:   "abc\ndef\nghi",
			offset:    0,
			dropLast:  true,
			wantBegin: 0,
			wantEnd:   8,
			wantRows:  []string{"abc", "def"},
		},
		{
			name:      "drop first and last",
			content:   "abc\ndef\nghi",
			offset:    0,
			dropFirst: true,
			dropLast:  true,
			wantBegin: 4,
			wantEnd:   8,
			wantRows:  []string{"def"},
		},
		{
			name:      "leading newline and empty rows",
			content:   "\nabc\n12\n\n\n12345\n",
			offset:    0,
			wantBegin: 0,
			wantEnd:   16,
			wantRows:  []string{"", "abc", "12", "", "", "12345"},
		},
		{
			name:      "drop first with no newline discards everything",
			content:   "nonewlinehere",
			offset:    5,
			dropFirst: true,
			wantBegin: 18,
			wantEnd:   18,
			wantRows:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := BuildChunk([]byte(tt.content), tt.offset, tt.dropFirst, tt.dropLast)
			if c.OffsetBegin != tt.wantBegin {
				t.Errorf("OffsetBegin = %d, want %d", c.OffsetBegin, tt.wantBegin)
			}
			if c.OffsetEnd != tt.wantEnd {
				t.Errorf("OffsetEnd = %d, want %d", c.OffsetEnd, tt.wantEnd)
			}
			if !reflect.DeepEqual(c.Rows, tt.wantRows) {
				t.Errorf("Rows = %#v, want %#v", c.Rows, tt.wantRows)
			}
		})
	}
}

func scenarioOneChunk() Chunk {
	return BuildChunk([]byte("123456\n12345\n12\n\n123456"), 2, false, false)
}

func TestQueryLineIndex(t *testing.T) {
	c := scenarioOneChunk()
	tests := []struct {
		offset int64
		want   int
	}{
		{2, 0},
		{8, 0},
		{9, 1},
		{14, 1},
		{15, 2},
		{18, 3},
		{19, 4},
		{24, 4},
	}
	for _, tt := range tests {
		if got := c.QueryLineIndex(tt.offset); got != tt.want {
			t.Errorf("QueryLineIndex(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestQueryLineIndexExactly(t *testing.T) {
	c := scenarioOneChunk()
	tests := []struct {
		offset int64
		want   int
	}{
		{2, 0},
		{9, 1},
		{15, 2},
		{18, 3},
		{19, 4},
	}
	for _, tt := range tests {
		if got := c.QueryLineIndexExactly(tt.offset); got != tt.want {
			t.Errorf("QueryLineIndexExactly(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestQueryLineIndexExactlyPanicsOnNonLineStart(t *testing.T) {
	c := scenarioOneChunk()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-line-start offset")
		}
	}()
	c.QueryLineIndexExactly(3)
}

func TestQueryLineStartOffset(t *testing.T) {
	c := scenarioOneChunk()
	tests := []struct {
		i    int
		want int64
	}{
		{0, 2},
		{1, 9},
		{2, 15},
		{3, 18},
		{4, 19},
		{5, 25},
	}
	for _, tt := range tests {
		if got := c.QueryLineStartOffset(tt.i); got != tt.want {
			t.Errorf("QueryLineStartOffset(%d) = %d, want %d", tt.i, got, tt.want)
		}
	}
}
