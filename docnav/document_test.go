package docnav

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"
)

func newTestDocument(t *testing.T, content string, chunkSize int64) *Document {
	t.Helper()
	d, err := NewDocument(bytes.NewReader([]byte(content)), WithChunkSize(chunkSize))
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	return d
}

func TestQueryLinesOnDemandLoading(t *testing.T) {
	content := "1234\nabcd\n1234\nabcd\n1234\nabcd\n1234\nabcd\nremain"
	d := newTestDocument(t, content, 10)

	if got := d.QueryLines(0, 2); !reflect.DeepEqual(got, []string{"1234", "abcd"}) {
		t.Errorf("QueryLines(0,2) = %#v", got)
	}

	d2 := newTestDocument(t, content, 10)
	if got := d2.QueryLines(35, 2); !reflect.DeepEqual(got, []string{"abcd", "remain"}) {
		t.Errorf("QueryLines(35,2) = %#v", got)
	}
}

func aboveTestContent() string {
	return "1234\nabcd\n1234\nabcd\n1234\nabcd\n1234\nabcd\n\n\n1234\nremain"
}

func TestQueryDistanceToAboveNLines(t *testing.T) {
	d := newTestDocument(t, aboveTestContent(), 4096)

	if got := d.QueryDistanceToAboveNLines(47, 1); got != 5 {
		t.Errorf("above(47,1) = %d, want 5", got)
	}

	d2 := newTestDocument(t, aboveTestContent(), 4096)
	if got := d2.QueryDistanceToAboveNLines(47, 4); got != 12 {
		t.Errorf("above(47,4) = %d, want 12", got)
	}
}

func containsPredicate(sub string) func(string) bool {
	return func(line string) bool { return strings.Contains(line, sub) }
}

func TestQueryDistanceToNextMatch(t *testing.T) {
	content := aboveTestContent()

	d := newTestDocument(t, content, 4096)
	dist, ok := d.QueryDistanceToNextMatch(35, containsPredicate("main"))
	if !ok || dist != 12 {
		t.Errorf("next_match(35,main) = (%d,%v), want (12,true)", dist, ok)
	}

	d2 := newTestDocument(t, content, 4096)
	dist2, ok2 := d2.QueryDistanceToNextMatch(47, containsPredicate("main"))
	if !ok2 || dist2 != 0 {
		t.Errorf("next_match(47,main) = (%d,%v), want (0,true)", dist2, ok2)
	}
}

func TestQueryDistanceToPrevMatch(t *testing.T) {
	content := aboveTestContent()

	d := newTestDocument(t, content, 4096)
	dist, ok := d.QueryDistanceToPrevMatch(47, containsPredicate("bc"))
	if !ok || dist != 12 {
		t.Errorf("prev_match(47,bc) = (%d,%v), want (12,true)", dist, ok)
	}

	d2 := newTestDocument(t, content, 4096)
	if _, ok := d2.QueryDistanceToPrevMatch(0, containsPredicate("123")); ok {
		t.Errorf("prev_match(0,123) should be none")
	}
}

func TestQueryOffsetByTimestamp(t *testing.T) {
	content := "2024-01-01 12:00:00.000 A\n" +
		"2024-01-01 12:00:05.000 B\n" +
		"2024-01-01 12:00:10.000 C\n"
	d := newTestDocument(t, content, 4096)

	offset, ok := d.QueryOffsetByTimestamp("", "12:00:05")
	if !ok {
		t.Fatal("expected a timestamp match")
	}
	if offset != 26 {
		t.Errorf("offset = %d, want 26", offset)
	}
}

// growableReader is an io.ReadSeeker over a slice that the test can grow
// between reads, to exercise Document.Refresh's end-of-file size
// re-detection without needing a real file on disk.
type growableReader struct {
	data *[]byte
	pos  int64
}

func (g *growableReader) Read(p []byte) (int, error) {
	if g.pos >= int64(len(*g.data)) {
		return 0, io.EOF
	}
	n := copy(p, (*g.data)[g.pos:])
	g.pos += int64(n)
	return n, nil
}

func (g *growableReader) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = g.pos
	case io.SeekEnd:
		base = int64(len(*g.data))
	}
	g.pos = base + offset
	return g.pos, nil
}

func TestDocumentRefreshDetectsGrowth(t *testing.T) {
	data := []byte("a\nb\n")
	r := &growableReader{data: &data}
	d, err := NewDocument(r)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	if d.LastLine() != "b\n" {
		t.Fatalf("LastLine() = %q, want %q", d.LastLine(), "b\n")
	}

	if grew, err := d.Refresh(); err != nil || grew {
		t.Fatalf("Refresh() on unchanged file = (%v, %v), want (false, nil)", grew, err)
	}

	data = append(data, []byte("c\n")...)
	grew, err := d.Refresh()
	if err != nil || !grew {
		t.Fatalf("Refresh() after growth = (%v, %v), want (true, nil)", grew, err)
	}
	if d.LastLine() != "c\n" {
		t.Fatalf("LastLine() after growth = %q, want %q", d.LastLine(), "c\n")
	}
	if d.DocumentSize() != 6 {
		t.Fatalf("DocumentSize() = %d, want 6", d.DocumentSize())
	}
}

func TestDocumentEmptyFile(t *testing.T) {
	d := newTestDocument(t, "", 4096)
	if d.LastLine() != "" {
		t.Errorf("LastLine() = %q, want empty", d.LastLine())
	}
	if d.LastLineStartOffset() != 0 {
		t.Errorf("LastLineStartOffset() = %d, want 0", d.LastLineStartOffset())
	}
	if got := d.QueryLines(0, 3); !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("QueryLines on empty file = %#v", got)
	}
}
