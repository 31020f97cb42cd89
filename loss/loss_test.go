package loss

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestNewOpensPlainFile(t *testing.T) {
	path := writeTempFile(t, "alpha\nbeta\ngamma\n")
	pager, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer pager.Close()

	if pager.Model == nil {
		t.Fatal("expected a non-nil controller.Model")
	}
}

func TestNewAppliesFollowOption(t *testing.T) {
	path := writeTempFile(t, "alpha\n")
	pager, err := New(path, WithFollow(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer pager.Close()

	if pager.Model.Init() == nil {
		t.Fatal("expected Init() to return a follow-tick command when WithFollow(true)")
	}
}

func TestNewMissingFileErrors(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "does-not-exist.log"))
	if err == nil {
		t.Fatal("expected an error opening a missing file")
	}
}
