package controller

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/loss-pager/loss/finder"
	"github.com/loss-pager/loss/window"
)

// applyFinderEvent dispatches one parsed finder.Event onto m.find.
func (m *Model) applyFinderEvent(ev finder.Event) {
	switch ev.Action {
	case finder.ActionSwitchSlot:
		m.find.SwitchActiveSlot(ev.Slot)
	case finder.ActionAddSlot:
		m.find.AddActiveSlot(ev.Slot)
	case finder.ActionRemoveSlot:
		if !m.find.RemoveActiveSlot(ev.Slot) {
			m.setStatus("cannot remove the last active slot")
		}
	case finder.ActionToggleHighlight:
		m.find.ToggleHighlightFlag()
	case finder.ActionToggleFold:
		m.find.ToggleFoldAction()
	case finder.ActionToggleExclusive:
		m.find.ToggleExclusiveAction()
	case finder.ActionTogglePatternType:
		m.find.TogglePatternType()
	case finder.ActionReset:
		m.find.ResetActiveSlots()
	case finder.ActionToggleMenu:
		m.find.MenuActive = !m.find.MenuActive
		if !m.find.MenuActive {
			m.mode = modeNormal
		}
	case finder.ActionClose:
		m.find.MenuActive = false
		m.mode = modeNormal
	}
}

// handlePromptKey drives every free-text prompt (jump, jump-lines,
// search forward/backward, bookmark name) through the shared
// prompt.Prompt, dispatching to the right submit handler on Enter.
func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompt.Reset()
		m.mode = modeNormal
		return m, nil
	case "enter":
		value := m.prompt.Value()
		m.prompt.PushHistory(value)
		m.submitPrompt(value)
		m.prompt.Reset()
		return m, nil
	case "up":
		m.prompt.PreviousOne()
		return m, nil
	case "down":
		m.prompt.NextOne()
		return m, nil
	}
	cmd := m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) submitPrompt(value string) {
	switch m.mode {
	case modePromptJump:
		m.submitJump(value)
	case modePromptJumpLines:
		m.submitJumpLines(value)
	case modePromptSearchForward:
		m.submitSearch(value, true)
	case modePromptSearchBackward:
		m.submitSearch(value, false)
	case modePromptBookmarkName:
		m.submitBookmarkName(value)
	}
	m.mode = modeNormal
}

func (m *Model) submitJump(value string) {
	offset, ok := m.doc.QueryOffsetByTimestamp("", value)
	if !ok {
		m.setStatus("no timestamp format detected or unparsable target")
		return
	}
	m.refreshCeiling()
	m.win.SetOffset(offset)
}

func (m *Model) submitJumpLines(value string) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		m.setStatus("invalid line count: %q", value)
		return
	}
	m.refreshCeiling()
	if m.jumpLinesDirection == window.Up {
		m.win.MoveOffsetBy(m.doc.QueryDistanceToAboveNLines(m.win.Offset(), n), window.Up)
	} else {
		m.win.MoveOffsetBy(m.doc.QueryDistanceToBelowNLines(m.win.Offset(), n), window.Down)
	}
}

func (m *Model) submitSearch(value string, forward bool) {
	if value == "" {
		return
	}
	if err := m.find.SetActivePattern(value); err != nil {
		m.setStatus("%v", err)
		return
	}
	if forward {
		m.advanceMatch(1)
	} else {
		m.advanceMatch(-1)
	}
}

func (m *Model) submitBookmarkName(value string) {
	lines := m.doc.QueryLines(m.win.Offset(), 1)
	line := ""
	if len(lines) > 0 {
		line = lines[0]
	}
	if err := m.bookmarks.Add(value, m.win.Offset(), line); err != nil {
		m.setStatus("%v", err)
	}
}
