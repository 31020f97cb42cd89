package controller

import "github.com/charmbracelet/bubbles/key"

// keyMap is the normal-mode binding table from spec.md §6, following
// praetorian-inc-titus/pkg/explore/keys.go's keyMap/key.NewBinding
// pattern. Finder-menu and bookmark-menu keys are handled separately
// (handleFinderKey, handleBookmarkMenuKey) since they consume raw
// keystrokes rather than discrete bound actions.
type keyMap struct {
	Quit       key.Binding
	ForceQuit  key.Binding
	ToggleWrap key.Binding

	Up, Down, Left, Right       key.Binding
	PageUp, PageDown            key.Binding
	JumpUp, JumpDown            key.Binding // Ctrl-arrows: 5-line jump
	SuperJumpUp, SuperJumpDown  key.Binding // Ctrl-PgUp/PgDn: 20-line jump
	Home, End                   key.Binding

	SearchForward  key.Binding
	SearchBackward key.Binding
	NextMatch      key.Binding
	PrevMatch      key.Binding

	JumpToTimestamp key.Binding
	JumpDownNLines  key.Binding
	JumpUpNLines    key.Binding

	AddBookmark  key.Binding
	BookmarkMenu key.Binding

	Undo key.Binding
	Redo key.Binding

	ToggleFollow key.Binding
	FinderMenu   key.Binding
}

var defaultKeys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("C-c", "quit")),
	ToggleWrap: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "toggle wrap")),

	Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up one line")),
	Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down one line")),
	Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "scroll left")),
	Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "scroll right")),

	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("PgUp", "up 5 lines")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("PgDn", "down 5 lines")),

	JumpUp:   key.NewBinding(key.WithKeys("ctrl+up"), key.WithHelp("C-↑", "up 5 lines")),
	JumpDown: key.NewBinding(key.WithKeys("ctrl+down"), key.WithHelp("C-↓", "down 5 lines")),

	SuperJumpUp:   key.NewBinding(key.WithKeys("ctrl+pgup"), key.WithHelp("C-PgUp", "up 20 lines")),
	SuperJumpDown: key.NewBinding(key.WithKeys("ctrl+pgdown"), key.WithHelp("C-PgDn", "down 20 lines")),

	Home: key.NewBinding(key.WithKeys("home"), key.WithHelp("Home", "top")),
	End:  key.NewBinding(key.WithKeys("end"), key.WithHelp("End", "bottom")),

	SearchForward:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search forward")),
	SearchBackward: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "search backward")),
	NextMatch:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
	PrevMatch:      key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "previous match")),

	JumpToTimestamp: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "jump to timestamp")),
	JumpDownNLines:  key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "jump down N lines")),
	JumpUpNLines:    key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "jump up N lines")),

	AddBookmark:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "add bookmark")),
	BookmarkMenu: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "bookmark menu")),

	Undo: key.NewBinding(key.WithKeys(","), key.WithHelp(",", "undo offset")),
	Redo: key.NewBinding(key.WithKeys("."), key.WithHelp(".", "redo offset")),

	ToggleFollow: key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "toggle follow")),
	FinderMenu:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "finder menu")),
}
