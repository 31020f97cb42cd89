package finder

import "errors"

// ErrMultipleActiveSlots is returned by SetActivePattern when more than
// one slot is active; a free-text search pattern can only be written to
// a single slot at a time.
var ErrMultipleActiveSlots = errors.New("finder: cannot set pattern with multiple active slots")
