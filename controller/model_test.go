package controller

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/loss-pager/loss/docnav"
	"github.com/loss-pager/loss/finder"
	"github.com/loss-pager/loss/render"
	"github.com/loss-pager/loss/window"
)

func newTestModel(t *testing.T, content string) *Model {
	t.Helper()
	doc, err := docnav.NewDocument(bytes.NewReader([]byte(content)))
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	m := New(doc, "test.log")
	m.win.Resize(80, 24)
	return m
}

func TestSubmitJumpLinesMovesDown(t *testing.T) {
	m := newTestModel(t, "a\nb\nc\nd\ne\n")
	m.jumpLinesDirection = window.Down
	m.submitJumpLines("2")
	if m.win.Offset() != 4 { // "a\n"+"b\n" = 2+2 = 4
		t.Fatalf("Offset() = %d, want 4", m.win.Offset())
	}
}

func TestSubmitJumpLinesInvalidInputSetsStatus(t *testing.T) {
	m := newTestModel(t, "a\nb\nc\n")
	m.submitJumpLines("not-a-number")
	if m.status == "" {
		t.Fatal("expected a status message for an invalid line count")
	}
	if m.win.Offset() != 0 {
		t.Fatal("expected offset to stay put on invalid input")
	}
}

func TestSubmitBookmarkNameStoresCurrentLine(t *testing.T) {
	m := newTestModel(t, "first\nsecond\nthird\n")
	m.win.SetOffset(6) // "second"
	m.submitBookmarkName("mark")

	b, ok := m.bookmarks.Get("mark")
	if !ok {
		t.Fatal("expected bookmark to be stored")
	}
	if b.Offset != 6 || b.Line != "second" {
		t.Fatalf("bookmark = %+v", b)
	}
}

func TestSubmitSearchMovesToMatch(t *testing.T) {
	m := newTestModel(t, "alpha\nbeta\ngamma\nneedle\nzeta\n")
	m.submitSearch("needle", true)
	if m.status != "" {
		t.Fatalf("unexpected status: %q", m.status)
	}
	lines := m.doc.QueryLines(m.win.Offset(), 1)
	if len(lines) != 1 || lines[0] != "needle" {
		t.Fatalf("landed on %q, want %q", lines, "needle")
	}

	l := render.New(lines[0])
	m.find.AttachRenderScheme(&l)
	if len(l.Schemes) == 0 {
		t.Fatal("expected submitSearch's matched slot to be highlighted by default")
	}
}

func TestSubmitSearchNotFoundSetsStatus(t *testing.T) {
	m := newTestModel(t, "alpha\nbeta\n")
	m.submitSearch("missing", true)
	if m.status != "not found" {
		t.Fatalf("status = %q, want %q", m.status, "not found")
	}
}

func TestApplyFinderEventSwitchAndAdd(t *testing.T) {
	m := newTestModel(t, "line\n")
	m.applyFinderEvent(finder.Event{Action: finder.ActionSwitchSlot, Slot: 3})
	if !m.find.IsActive(3) || m.find.IsActive(1) {
		t.Fatal("expected only slot 3 active after a switch event")
	}
	m.applyFinderEvent(finder.Event{Action: finder.ActionAddSlot, Slot: 5})
	if !m.find.IsActive(3) || !m.find.IsActive(5) {
		t.Fatal("expected slots 3 and 5 active after an add event")
	}
}

func TestHandleNormalKeyDownMovesOffset(t *testing.T) {
	m := newTestModel(t, "a\nb\nc\n")
	m.handleNormalKey(tea.KeyMsg{Type: tea.KeyDown})
	if m.win.Offset() != 2 {
		t.Fatalf("Offset() = %d, want 2", m.win.Offset())
	}
}

func TestHandleNormalKeyFinderMenuOpensMenu(t *testing.T) {
	m := newTestModel(t, "a\n")
	m.handleNormalKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	if !m.find.MenuActive {
		t.Fatal("expected 'm' to activate the finder menu")
	}
}

func TestHandleNormalKeyQuitReturnsQuitCmd(t *testing.T) {
	m := newTestModel(t, "a\n")
	_, cmd := m.handleNormalKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected 'q' to return a quit command")
	}
}

func TestHandleNormalKeyCtrlCCancelsFollowInsteadOfQuitting(t *testing.T) {
	m := newTestModel(t, "a\n")
	m.follow = true
	_, cmd := m.handleNormalKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd != nil {
		t.Fatal("expected Ctrl-C to cancel follow mode, not quit, while following")
	}
	if m.follow {
		t.Fatal("expected follow mode to be disabled")
	}
}

func TestHandleNormalKeyCtrlCQuitsWhenNotFollowing(t *testing.T) {
	m := newTestModel(t, "a\n")
	_, cmd := m.handleNormalKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected Ctrl-C to quit when not following")
	}
}
