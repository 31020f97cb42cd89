// Package prompt wraps bubbles/textinput with the pager's
// dedup-adjacent-only command history: jump target, line count, search
// pattern, and bookmark-name prompts all push their accepted value here, and
// previous_one/next_one walk the stack without ever repeating an
// immediately-preceding duplicate entry.
package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Prompt is a single-line text input with history navigation.
type Prompt struct {
	Input   textinput.Model
	history []string
	histIdx int // -1 means "not browsing history"; otherwise an index into history
	draft   string
}

// New returns an unfocused prompt with empty history.
func New() *Prompt {
	ti := textinput.New()
	ti.CharLimit = 0
	return &Prompt{Input: ti, histIdx: -1}
}

// PushHistory appends value unless it is empty or equal to the most
// recently pushed entry (dedup-adjacent-only).
func (p *Prompt) PushHistory(value string) {
	if value == "" {
		return
	}
	if n := len(p.history); n > 0 && p.history[n-1] == value {
		return
	}
	p.history = append(p.history, value)
	p.histIdx = -1
}

// PreviousOne moves one step back in history, saving the in-progress
// input as the draft on first entry so NextOne can restore it.
func (p *Prompt) PreviousOne() {
	if len(p.history) == 0 {
		return
	}
	if p.histIdx == -1 {
		p.draft = p.Input.Value()
		p.histIdx = len(p.history) - 1
	} else if p.histIdx > 0 {
		p.histIdx--
	}
	p.Input.SetValue(p.history[p.histIdx])
	p.Input.CursorEnd()
}

// NextOne moves one step forward in history, restoring the saved draft
// once the walk passes the most recent entry.
func (p *Prompt) NextOne() {
	if p.histIdx == -1 {
		return
	}
	if p.histIdx < len(p.history)-1 {
		p.histIdx++
		p.Input.SetValue(p.history[p.histIdx])
	} else {
		p.histIdx = -1
		p.Input.SetValue(p.draft)
	}
	p.Input.CursorEnd()
}

// Reset clears the input and ends any history walk.
func (p *Prompt) Reset() {
	p.Input.SetValue("")
	p.histIdx = -1
	p.draft = ""
}

// Value returns the current input text.
func (p *Prompt) Value() string {
	return p.Input.Value()
}

// Focus focuses the underlying textinput.Model.
func (p *Prompt) Focus() tea.Cmd {
	return p.Input.Focus()
}

// Blur unfocuses the underlying textinput.Model.
func (p *Prompt) Blur() {
	p.Input.Blur()
}

// Update forwards msg to the underlying textinput.Model.
func (p *Prompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.Input, cmd = p.Input.Update(msg)
	return cmd
}

// View renders the input line.
func (p *Prompt) View() string {
	return p.Input.View()
}
