package bookmark

import "testing"

func TestStoreAddAndGet(t *testing.T) {
	s := NewStore()
	if err := s.Add("start", 42, "hello"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	b, ok := s.Get("start")
	if !ok || b.Offset != 42 || b.Line != "hello" {
		t.Fatalf("Get(start) = %+v, %v", b, ok)
	}
}

func TestStoreAddRejectsEmptyOrTooLongName(t *testing.T) {
	s := NewStore()
	if err := s.Add("", 0, ""); err != ErrEmptyName {
		t.Fatalf("Add(\"\") err = %v, want ErrEmptyName", err)
	}
	long := make([]byte, NameMaxLen+1)
	for i := range long {
		long[i] = 'a'
	}
	if err := s.Add(string(long), 0, ""); err != ErrNameTooLong {
		t.Fatalf("Add(too long) err = %v, want ErrNameTooLong", err)
	}
}

func TestStoreNamesSorted(t *testing.T) {
	s := NewStore()
	s.Add("zeta", 1, "")
	s.Add("alpha", 2, "")
	s.Add("mid", 3, "")
	names := s.Names()
	want := []string{"alpha", "mid", "zeta"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStore()
	s.Add("a", 1, "")
	s.Remove("a")
	if _, ok := s.Get("a"); ok {
		t.Fatal("expected bookmark to be removed")
	}
}

func TestMenuFilterAndWraparound(t *testing.T) {
	s := NewStore()
	s.Add("alpha", 1, "first")
	s.Add("alert", 2, "second")
	s.Add("beta", 3, "third")

	m := NewMenu(s)
	m.SetFilter("al")
	names := m.filteredNames()
	if len(names) != 2 {
		t.Fatalf("filteredNames() = %v, want 2 entries", names)
	}

	m.MoveUp() // wraps from 0 to last
	if m.cursor != len(names)-1 {
		t.Fatalf("cursor = %d, want %d after wraparound MoveUp", m.cursor, len(names)-1)
	}
	m.MoveDown() // wraps back to 0
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0 after wraparound MoveDown", m.cursor)
	}
}

func TestMenuSelected(t *testing.T) {
	s := NewStore()
	s.Add("only", 7, "line text")
	m := NewMenu(s)
	b, ok := m.Selected()
	if !ok || b.Name != "only" || b.Offset != 7 {
		t.Fatalf("Selected() = %+v, %v", b, ok)
	}
}

func TestMenuSelectedEmptyStore(t *testing.T) {
	m := NewMenu(NewStore())
	if _, ok := m.Selected(); ok {
		t.Fatal("expected Selected() to report false on an empty store")
	}
}
