package window

import "testing"

func TestOffsetHistoryPushTruncatesForward(t *testing.T) {
	h := NewOffsetHistory(0)
	h.Push(10)
	h.Push(20)
	h.Push(30)

	if got := h.PreviousOne(); got != 20 {
		t.Fatalf("PreviousOne() = %d, want 20", got)
	}
	if got := h.PreviousOne(); got != 10 {
		t.Fatalf("PreviousOne() = %d, want 10", got)
	}

	h.Push(99) // truncates the forward history (20, 30)
	if got := h.NextOne(); got != 99 {
		t.Fatalf("NextOne() after truncating push = %d, want 99 (no forward history left)", got)
	}
}

func TestOffsetHistorySaturatesAtBounds(t *testing.T) {
	h := NewOffsetHistory(5)
	if got := h.PreviousOne(); got != 5 {
		t.Fatalf("PreviousOne() at start = %d, want 5", got)
	}
	if got := h.NextOne(); got != 5 {
		t.Fatalf("NextOne() at start = %d, want 5", got)
	}
}

func TestWindowMoveOffsetBy(t *testing.T) {
	w := New(80, 24)
	w.SetLastLineStartMax(1000)
	w.SetOffset(50)

	w.MoveOffsetBy(20, Down)
	if w.Offset() != 70 {
		t.Fatalf("Offset() = %d, want 70", w.Offset())
	}

	w.MoveOffsetBy(100, Up)
	if w.Offset() != 0 {
		t.Fatalf("Offset() = %d, want 0 (saturating subtract)", w.Offset())
	}
}

func TestWindowMoveOffsetByPanicsOnHorizontalDirection(t *testing.T) {
	w := New(80, 24)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-vertical direction")
		}
	}()
	w.MoveOffsetBy(1, Direction(99))
}

func TestWindowUndoRedo(t *testing.T) {
	w := New(80, 24)
	w.SetLastLineStartMax(1000)
	w.SetOffset(10)
	w.SetOffset(20)
	w.SetOffset(30)

	w.GotoPreviousOffset()
	if w.Offset() != 20 {
		t.Fatalf("Offset() after undo = %d, want 20", w.Offset())
	}
	w.GotoPreviousOffset()
	if w.Offset() != 10 {
		t.Fatalf("Offset() after second undo = %d, want 10", w.Offset())
	}
	w.GotoNextOffset()
	if w.Offset() != 20 {
		t.Fatalf("Offset() after redo = %d, want 20", w.Offset())
	}
}
