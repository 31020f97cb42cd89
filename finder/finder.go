// Package finder implements the ten-slot, priority-ordered pattern
// bank: per-slot highlight/fold/exclusive flags, an active-slot set,
// and the render-scheme/status-bar/menu rendering hooks that compose
// with package render.
//
// Pattern matching uses Go's stdlib regexp (RE2 semantics: no
// backreferences, no lookaround) for regex slots and plain substring
// search for raw slots, the same split goripgrep's own regex.go makes
// between literal and compiled-regex search paths.
package finder

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/loss-pager/loss/render"
)

// HighlightFlag toggles whether a slot's matches are rendered.
type HighlightFlag int

const (
	HighlightOff HighlightFlag = iota
	HighlightOn
)

func (f HighlightFlag) Toggle() HighlightFlag {
	if f == HighlightOn {
		return HighlightOff
	}
	return HighlightOn
}

// PatternType selects raw substring matching or regex matching.
type PatternType int

const (
	PatternRaw PatternType = iota
	PatternRegex
)

func (p PatternType) Toggle() PatternType {
	if p == PatternRaw {
		return PatternRegex
	}
	return PatternRaw
}

// AdvancedAction is a slot's line-level filter: none, fold (hide
// matches), or exclusive (keep only matches).
type AdvancedAction int

const (
	ActionNothing AdvancedAction = iota
	ActionFold
	ActionExclusive
)

// ToggleFold: toggling to Fold from Fold reverts to Nothing; toggling
// from Exclusive switches to Fold.
func (a AdvancedAction) ToggleFold() AdvancedAction {
	if a == ActionFold {
		return ActionNothing
	}
	return ActionFold
}

// ToggleExclusive: symmetric to ToggleFold.
func (a AdvancedAction) ToggleExclusive() AdvancedAction {
	if a == ActionExclusive {
		return ActionNothing
	}
	return ActionExclusive
}

// Slot is one of the Finder's ten pattern configurations.
type Slot struct {
	Highlight   HighlightFlag
	Advanced    AdvancedAction
	PatternType PatternType
	Pattern     string
	Color       lipgloss.Style

	compiledPattern string
	compiledRegex   *regexp.Regexp
}

func (s *Slot) compile() (*regexp.Regexp, error) {
	if s.compiledRegex != nil && s.compiledPattern == s.Pattern {
		return s.compiledRegex, nil
	}
	re, err := regexp.Compile(s.Pattern)
	if err != nil {
		return nil, err
	}
	s.compiledRegex = re
	s.compiledPattern = s.Pattern
	return re, nil
}

// matches reports whether the slot's pattern matches anywhere in line.
// Regex compile errors degrade the slot to "no matches" for this frame,
// per spec.md §7's local-recovery rule.
func (s *Slot) matches(line string) bool {
	if s.Pattern == "" {
		return false
	}
	switch s.PatternType {
	case PatternRaw:
		return strings.Contains(line, s.Pattern)
	case PatternRegex:
		re, err := s.compile()
		if err != nil {
			return false
		}
		return re.MatchString(line)
	}
	return false
}

// matchRanges finds all non-overlapping matches in content, scanning
// left to right and advancing past each match.
func (s *Slot) matchRanges(content string) [][2]int {
	if s.Pattern == "" {
		return nil
	}
	switch s.PatternType {
	case PatternRaw:
		var ranges [][2]int
		pos := 0
		for pos <= len(content) {
			idx := strings.Index(content[pos:], s.Pattern)
			if idx == -1 {
				break
			}
			start := pos + idx
			end := start + len(s.Pattern)
			ranges = append(ranges, [2]int{start, end})
			pos = end
			if len(s.Pattern) == 0 {
				break
			}
		}
		return ranges
	case PatternRegex:
		re, err := s.compile()
		if err != nil {
			return nil
		}
		return re.FindAllStringIndex(content, -1)
	}
	return nil
}

// colorForSlot returns the default style for user-visible slot number
// slotNum (0-9), per spec.md §4.3's table.
func colorForSlot(slotNum int) lipgloss.Style {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	fgbg := func(fg, bg string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Background(lipgloss.Color(bg))
	}
	switch slotNum {
	case 1:
		return fgbg("0", "7") // Black / Grey
	case 2:
		return fgbg("0", "4") // Black / Blue
	case 3:
		return fgbg("0", "6") // Black / Cyan
	case 4:
		return fgbg("0", "2") // Black / Green
	case 5:
		return fgbg("0", "3") // Black / Yellow
	case 6:
		return fg("5") // Magenta / default
	case 7:
		return fg("4") // Blue / default
	case 8:
		return fg("6") // Cyan / default
	case 9:
		return fg("2") // Green / default
	case 0:
		return fg("3") // Yellow / default
	}
	return lipgloss.NewStyle()
}

// arrayIndexToSlotNumber maps the internal 0..9 storage index to the
// user-visible slot number, giving the sequence 1,2,...,9,0.
func arrayIndexToSlotNumber(i int) int { return (i + 1) % 10 }

// slotNumberToArrayIndex is the inverse of arrayIndexToSlotNumber.
func slotNumberToArrayIndex(slot int) int { return (slot + 9) % 10 }

// Finder is the fixed-size bank of ten pattern slots.
type Finder struct {
	slots       [10]Slot // indexed by internal array index 0..9
	activeSlots map[int]struct{}
	MenuActive  bool
}

// New creates a Finder with slot 1 active, default colors assigned, and
// every slot's Highlight flag on, per
// original_source/src/finder.rs:129-139's
// FinderSlot::from_slot_array_index (highlight_flag: HighlightFlag::On).
func New() *Finder {
	f := &Finder{activeSlots: map[int]struct{}{1: {}}}
	for i := range f.slots {
		f.slots[i].Color = colorForSlot(arrayIndexToSlotNumber(i))
		f.slots[i].Highlight = HighlightOn
	}
	return f
}

// Slot returns a copy of the slot for user-visible slot number slotNum
// (0-9), for menu/status-bar rendering.
func (f *Finder) Slot(slotNum int) Slot {
	return f.slots[slotNumberToArrayIndex(slotNum)]
}

// ActiveSlots returns the set of active slot numbers.
func (f *Finder) ActiveSlots() map[int]struct{} {
	out := make(map[int]struct{}, len(f.activeSlots))
	for k := range f.activeSlots {
		out[k] = struct{}{}
	}
	return out
}

// IsActive reports whether slotNum is in the active set.
func (f *Finder) IsActive(slotNum int) bool {
	_, ok := f.activeSlots[slotNum]
	return ok
}

// SwitchActiveSlot replaces the active set with exactly {slotNum}.
func (f *Finder) SwitchActiveSlot(slotNum int) {
	f.activeSlots = map[int]struct{}{slotNum: {}}
}

// AddActiveSlot inserts slotNum into the active set.
func (f *Finder) AddActiveSlot(slotNum int) {
	f.activeSlots[slotNum] = struct{}{}
}

// RemoveActiveSlot removes slotNum from the active set, refusing (and
// returning false) when that would empty the set — the active set must
// always have at least one member.
func (f *Finder) RemoveActiveSlot(slotNum int) bool {
	if len(f.activeSlots) <= 1 {
		return false
	}
	delete(f.activeSlots, slotNum)
	if len(f.activeSlots) == 0 {
		// defensive: never happens given the guard above, but keeps the
		// invariant airtight if activeSlots somehow didn't contain slotNum.
		f.activeSlots[slotNum] = struct{}{}
		return false
	}
	return true
}

// ResetActiveSlots clears every currently-active slot's pattern/flags
// back to their construction-time defaults, leaving the active set and
// every inactive slot's configuration untouched, mirroring
// original_source/src/finder.rs:271-275's reset_active_slots (which
// only resets slots in active_slots) and finder.rs:141-146's
// FinderSlot::reset (Highlight::On, Advanced::Nothing, raw, empty
// pattern).
func (f *Finder) ResetActiveSlots() {
	f.forEachActive(func(s *Slot) {
		s.Pattern = ""
		s.Highlight = HighlightOn
		s.Advanced = ActionNothing
		s.PatternType = PatternRaw
		s.compiledRegex = nil
	})
}

// SetActivePattern updates the pattern of the Finder's sole active
// slot. Returns an error (ErrMultipleActiveSlots) if more than one slot
// is active, mirroring update_search_pattern's single-active-slot
// assertion.
func (f *Finder) SetActivePattern(pattern string) error {
	if len(f.activeSlots) != 1 {
		return ErrMultipleActiveSlots
	}
	for slot := range f.activeSlots {
		idx := slotNumberToArrayIndex(slot)
		f.slots[idx].Pattern = pattern
		f.slots[idx].compiledRegex = nil
	}
	return nil
}

// ToggleHighlightFlag, ToggleFoldAction, ToggleExclusiveAction, and
// TogglePatternType apply to every active slot.
func (f *Finder) ToggleHighlightFlag() {
	f.forEachActive(func(s *Slot) { s.Highlight = s.Highlight.Toggle() })
}

func (f *Finder) ToggleFoldAction() {
	f.forEachActive(func(s *Slot) { s.Advanced = s.Advanced.ToggleFold() })
}

func (f *Finder) ToggleExclusiveAction() {
	f.forEachActive(func(s *Slot) { s.Advanced = s.Advanced.ToggleExclusive() })
}

func (f *Finder) TogglePatternType() {
	f.forEachActive(func(s *Slot) {
		s.PatternType = s.PatternType.Toggle()
		s.compiledRegex = nil
	})
}

func (f *Finder) forEachActive(fn func(*Slot)) {
	for slot := range f.activeSlots {
		fn(&f.slots[slotNumberToArrayIndex(slot)])
	}
}

// MatchesAnyActive is the search predicate handed to
// Document.QueryDistanceToNextMatch/PrevMatch: true if any active
// slot's pattern matches line.
func (f *Finder) MatchesAnyActive(line string) bool {
	for slot := range f.activeSlots {
		if f.slots[slotNumberToArrayIndex(slot)].matches(line) {
			return true
		}
	}
	return false
}

// CanPassAdvanceAction applies the fold/exclusive filter across ALL ten
// slots (not just the active ones — fold/exclusive is a per-slot
// configuration independent of search-active status).
func (f *Finder) CanPassAdvanceAction(line string) bool {
	hasExclusive := false
	exclusiveMatched := false
	for i := range f.slots {
		s := &f.slots[i]
		if s.Pattern == "" {
			continue
		}
		switch s.Advanced {
		case ActionFold:
			if s.matches(line) {
				return false
			}
		case ActionExclusive:
			hasExclusive = true
			if s.matches(line) {
				exclusiveMatched = true
			}
		}
	}
	if hasExclusive && !exclusiveMatched {
		return false
	}
	return true
}

// priorityOrder returns internal array indices ordered active-first
// (preserving array order within each partition), per spec.md §4.3's
// highlight-composition priority rule.
func (f *Finder) priorityOrder() []int {
	order := make([]int, 0, 10)
	var inactive []int
	for i := 0; i < 10; i++ {
		slotNum := arrayIndexToSlotNumber(i)
		if _, ok := f.activeSlots[slotNum]; ok {
			order = append(order, i)
		} else {
			inactive = append(inactive, i)
		}
	}
	return append(order, inactive...)
}

// AttachRenderScheme scans line's content with every highlight-on slot
// in priority order, adding each non-overlapping match range found.
// Lower-priority matches that overlap an already-accepted range are
// silently skipped.
func (f *Finder) AttachRenderScheme(line *render.Line) {
	for _, idx := range f.priorityOrder() {
		s := &f.slots[idx]
		if s.Highlight != HighlightOn || s.Pattern == "" {
			continue
		}
		for _, r := range s.matchRanges(line.Content) {
			line.AddSchemeIfNotOverlap(render.Range{Start: r[0], End: r[1]}, s.Color)
		}
	}
}

// RenderStatusBarStrip renders the 32-byte " *1 *2 ... *0 |" panel
// shown in the status bar when there is room for it.
func (f *Finder) RenderStatusBarStrip() string {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		slotNum := arrayIndexToSlotNumber(i)
		cursor := byte(' ')
		if _, ok := f.activeSlots[slotNum]; ok {
			cursor = '*'
		}
		b.WriteByte(' ')
		b.WriteByte(cursor)
		b.WriteString(fmt.Sprintf("%d", slotNum))
	}
	b.WriteString(" |")
	return b.String()
}
