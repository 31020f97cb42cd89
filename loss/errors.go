// Package loss wires docnav, finder, render, window, bookmark, prompt,
// and controller into a runnable pager: loss.New opens a file (through
// optional decompression/encoding conversion) and returns a
// tea.Model-compatible Program root.
package loss

import "errors"

// Sentinel errors, per spec.md §7's taxonomy. IoError and Utf8Error
// have no sentinels of their own: they are propagated as wrapped
// os/utf8 errors, following goripgrep's own fmt.Errorf("...: %w", err)
// style.
var (
	// ErrNotFound covers search-not-found, timestamp-not-locatable, and
	// bookmark-name-too-long conditions: one-off, no state mutation.
	ErrNotFound = errors.New("loss: not found")

	// ErrInvalidInput covers a malformed timestamp or line-count prompt.
	ErrInvalidInput = errors.New("loss: invalid input")
)
