package controller

import (
	"strings"
	"testing"
)

func TestRatioString(t *testing.T) {
	tests := []struct {
		offset, size int64
		want         string
	}{
		{0, 100, "0%"},
		{50, 100, "50%"},
		{100, 100, "100%"},
		{0, 0, "0%"},
	}
	for _, tt := range tests {
		if got := ratioString(tt.offset, tt.size); got != tt.want {
			t.Errorf("ratioString(%d,%d) = %q, want %q", tt.offset, tt.size, got, tt.want)
		}
	}
}

func TestRenderStatusBarShowsRatioWhenThereIsRoom(t *testing.T) {
	m := newTestModel(t, strings.Repeat("line\n", 20))
	m.win.SetOffset(m.doc.LastLineStartOffset())
	want := ratioString(m.win.Offset(), m.doc.DocumentSize())
	bar := m.renderStatusBar()
	if !strings.Contains(bar, want) {
		t.Fatalf("renderStatusBar() = %q, want it to contain the ratio %q", bar, want)
	}
}

func TestRenderStatusBarOmitsRatioWhenTextTooWide(t *testing.T) {
	m := newTestModel(t, "line\n")
	m.win.Resize(20, 24) // narrow enough that text+6 >= width
	m.status = "a rather long status message that eats the whole bar"
	bar := m.renderStatusBar()
	if strings.Contains(bar, "%") {
		t.Fatalf("renderStatusBar() = %q, want no ratio when there's no room", bar)
	}
}
