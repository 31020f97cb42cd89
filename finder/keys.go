package finder

// ParserState is the FinderEventParser's two-keystroke state machine
// state: most keys act immediately, but `+` and `-` each consume one
// more keystroke (the target slot digit) before producing an event.
type ParserState int

const (
	StateNormal ParserState = iota
	StateParsedAdd
	StateParsedRemove
)

// Action identifies what a parsed finder keystroke should do.
type Action int

const (
	ActionNone Action = iota
	ActionSwitchSlot
	ActionAddSlot
	ActionRemoveSlot
	ActionToggleHighlight
	ActionToggleFold
	ActionToggleExclusive
	ActionTogglePatternType
	ActionReset
	ActionToggleMenu
	ActionClose
)

// Event is a fully parsed finder keystroke, ready to apply to a Finder.
type Event struct {
	Action Action
	Slot   int // meaningful for ActionSwitchSlot/AddSlot/RemoveSlot
}

// EventParser turns single-key inputs into Events, per spec.md §6's
// finder key table: `+<digit>` add slot; `-<digit>` remove slot;
// `<digit>` switch; `o` toggle highlight; `f` toggle fold; `e` toggle
// exclusive; `r` toggle raw/regex; `x` reset; `m` toggle menu; `Esc`
// close.
type EventParser struct {
	state ParserState
}

// NewEventParser returns a parser in StateNormal.
func NewEventParser() *EventParser {
	return &EventParser{}
}

// Reset returns the parser to StateNormal, discarding a pending `+`/`-`
// prefix. The controller calls this whenever the finder menu closes.
func (p *EventParser) Reset() {
	p.state = StateNormal
}

// State returns the parser's current state, for status-bar prompts
// like "finder: +_" while a two-keystroke sequence is pending.
func (p *EventParser) State() ParserState {
	return p.state
}

// Parse consumes one key (a single character, or "esc") and returns the
// Event it completes, if any. Returns ok=false both for keys that start
// a pending sequence and for keys not recognized at all.
func (p *EventParser) Parse(key string) (Event, bool) {
	switch p.state {
	case StateParsedAdd:
		p.state = StateNormal
		if d, ok := digitValue(key); ok {
			return Event{Action: ActionAddSlot, Slot: d}, true
		}
		return Event{}, false
	case StateParsedRemove:
		p.state = StateNormal
		if d, ok := digitValue(key); ok {
			return Event{Action: ActionRemoveSlot, Slot: d}, true
		}
		return Event{}, false
	}

	switch key {
	case "+":
		p.state = StateParsedAdd
		return Event{}, false
	case "-":
		p.state = StateParsedRemove
		return Event{}, false
	case "o":
		return Event{Action: ActionToggleHighlight}, true
	case "f":
		return Event{Action: ActionToggleFold}, true
	case "e":
		return Event{Action: ActionToggleExclusive}, true
	case "r":
		return Event{Action: ActionTogglePatternType}, true
	case "x":
		return Event{Action: ActionReset}, true
	case "m":
		return Event{Action: ActionToggleMenu}, true
	case "esc":
		return Event{Action: ActionClose}, true
	default:
		if d, ok := digitValue(key); ok {
			return Event{Action: ActionSwitchSlot, Slot: d}, true
		}
		return Event{}, false
	}
}

func digitValue(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	c := key[0]
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}
