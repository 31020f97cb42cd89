package controller

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loss-pager/loss/window"
)

const (
	pageLines  = 5
	superLines = 20
)

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeNormal:
		return m.handleNormalKey(msg)
	case modeFinderMenu:
		return m.handleFinderKey(msg)
	case modeBookmarkMenu:
		return m.handleBookmarkMenuKey(msg)
	default:
		return m.handlePromptKey(msg)
	}
}

// handleNormalKey dispatches one keystroke against defaultKeys via
// key.Matches, in spec.md §6's order (prompts/menus are routed before
// this is ever reached; see handleKey).
func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.clearStatus()
	k := defaultKeys
	switch {
	case key.Matches(msg, k.ForceQuit) && m.follow:
		// spec.md §5: only follow mode is cancellable via Ctrl-C; it
		// drops back to normal mode instead of quitting the program.
		m.follow = false
	case key.Matches(msg, k.Quit), key.Matches(msg, k.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, k.ToggleWrap):
		m.win.WrapLines = !m.win.WrapLines
	case key.Matches(msg, k.Up):
		m.refreshCeiling()
		m.win.MoveOffsetBy(m.doc.QueryDistanceToAboveNLines(m.win.Offset(), 1), window.Up)
	case key.Matches(msg, k.Down):
		m.refreshCeiling()
		m.win.MoveOffsetBy(m.doc.QueryDistanceToBelowNLines(m.win.Offset(), 1), window.Down)
	case key.Matches(msg, k.Left):
		if !m.win.WrapLines && m.win.HorizontalShift > 0 {
			m.win.HorizontalShift--
		}
	case key.Matches(msg, k.Right):
		if !m.win.WrapLines {
			m.win.HorizontalShift++
		}
	case key.Matches(msg, k.PageUp):
		m.refreshCeiling()
		m.win.MoveOffsetBy(m.doc.QueryDistanceToAboveNLines(m.win.Offset(), pageLines), window.Up)
	case key.Matches(msg, k.PageDown):
		m.refreshCeiling()
		m.win.MoveOffsetBy(m.doc.QueryDistanceToBelowNLines(m.win.Offset(), pageLines), window.Down)
	case key.Matches(msg, k.JumpUp):
		m.refreshCeiling()
		m.win.MoveOffsetBy(m.doc.QueryDistanceToAboveNLines(m.win.Offset(), pageLines), window.Up)
	case key.Matches(msg, k.JumpDown):
		m.refreshCeiling()
		m.win.MoveOffsetBy(m.doc.QueryDistanceToBelowNLines(m.win.Offset(), pageLines), window.Down)
	case key.Matches(msg, k.SuperJumpUp):
		m.refreshCeiling()
		m.win.MoveOffsetBy(m.doc.QueryDistanceToAboveNLines(m.win.Offset(), superLines), window.Up)
	case key.Matches(msg, k.SuperJumpDown):
		m.refreshCeiling()
		m.win.MoveOffsetBy(m.doc.QueryDistanceToBelowNLines(m.win.Offset(), superLines), window.Down)
	case key.Matches(msg, k.Home):
		m.refreshCeiling()
		m.win.SetOffset(0)
	case key.Matches(msg, k.End):
		m.refreshCeiling()
		m.win.SetOffset(m.doc.LastLineStartOffset())
	case key.Matches(msg, k.SearchForward):
		m.enterPrompt(modePromptSearchForward, "/")
	case key.Matches(msg, k.SearchBackward):
		m.enterPrompt(modePromptSearchBackward, "?")
	case key.Matches(msg, k.NextMatch):
		m.advanceMatch(1)
	case key.Matches(msg, k.PrevMatch):
		m.advanceMatch(-1)
	case key.Matches(msg, k.JumpToTimestamp):
		m.enterPrompt(modePromptJump, "jump to: ")
	case key.Matches(msg, k.JumpDownNLines):
		m.jumpLinesDirection = window.Down
		m.enterPrompt(modePromptJumpLines, "down N lines: ")
	case key.Matches(msg, k.JumpUpNLines):
		m.jumpLinesDirection = window.Up
		m.enterPrompt(modePromptJumpLines, "up N lines: ")
	case key.Matches(msg, k.AddBookmark):
		m.enterPrompt(modePromptBookmarkName, "bookmark name: ")
	case key.Matches(msg, k.BookmarkMenu):
		m.mode = modeBookmarkMenu
		m.bookmarkMenu.SetFilter("")
	case key.Matches(msg, k.Undo):
		m.win.GotoPreviousOffset()
	case key.Matches(msg, k.Redo):
		m.win.GotoNextOffset()
	case key.Matches(msg, k.ToggleFollow):
		m.follow = !m.follow
		if m.follow {
			return m, followTick()
		}
	case key.Matches(msg, k.FinderMenu):
		m.mode = modeFinderMenu
		m.find.MenuActive = true
	}
	return m, nil
}

func (m *Model) refreshCeiling() {
	m.win.SetLastLineStartMax(m.doc.LastLineStartOffset())
}

// advanceMatch repeats the last search in dir (1 forward, -1 backward)
// using the Finder's active patterns as the predicate.
func (m *Model) advanceMatch(dir int) {
	var (
		dist int64
		ok   bool
	)
	if dir > 0 {
		dist, ok = m.doc.QueryDistanceToNextMatch(m.win.Offset(), m.find.MatchesAnyActive)
	} else {
		dist, ok = m.doc.QueryDistanceToPrevMatch(m.win.Offset(), m.find.MatchesAnyActive)
	}
	if !ok {
		m.setStatus("not found")
		return
	}
	m.refreshCeiling()
	if dir > 0 {
		m.win.MoveOffsetBy(dist, window.Down)
	} else {
		m.win.MoveOffsetBy(dist, window.Up)
	}
}

func (m *Model) enterPrompt(target mode, label string) {
	m.mode = target
	m.promptLabel = label
	m.prompt.Reset()
	m.prompt.Focus()
}

func (m *Model) handleFinderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "esc" {
		m.mode = modeNormal
		m.find.MenuActive = false
		m.finderEvents.Reset()
		return m, nil
	}
	ev, ok := m.finderEvents.Parse(key)
	if !ok {
		return m, nil
	}
	m.applyFinderEvent(ev)
	return m, nil
}

func (m *Model) handleBookmarkMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.bookmarkFilter = ""
	case "up":
		m.bookmarkMenu.MoveUp()
	case "down":
		m.bookmarkMenu.MoveDown()
	case "enter":
		if b, ok := m.bookmarkMenu.Selected(); ok {
			m.refreshCeiling()
			m.win.SetOffset(b.Offset)
		}
		m.mode = modeNormal
		m.bookmarkFilter = ""
	case "backspace":
		if n := len(m.bookmarkFilter); n > 0 {
			m.bookmarkFilter = m.bookmarkFilter[:n-1]
		}
		m.bookmarkMenu.SetFilter(m.bookmarkFilter)
	default:
		if len(msg.Runes) == 1 {
			m.bookmarkFilter += string(msg.Runes)
			m.bookmarkMenu.SetFilter(m.bookmarkFilter)
		}
	}
	return m, nil
}
