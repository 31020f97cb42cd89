package controller

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var statusBarStyle = lipgloss.NewStyle().Reverse(true)

// renderStatusBar shows, left to right: the open filename, the current
// offset/size, follow-mode and wrap-mode flags, the active prompt line
// (if any) or the last one-off status message, and — right-justified
// when there's room — the percentage-through-file ratio followed by
// the finder's 32-byte slot strip.
func (m *Model) renderStatusBar() string {
	left := fmt.Sprintf(" %s  %d/%d", m.filename, m.win.Offset(), m.doc.DocumentSize())
	if m.follow {
		left += "  [follow]"
	}
	if m.win.WrapLines {
		left += "  [wrap]"
	}

	middle := m.status
	if m.promptLabel != "" && isPromptMode(m.mode) {
		middle = m.promptLabel + m.prompt.View()
	}

	text := fmt.Sprintf("%s  %s", left, middle)

	// original_source/src/status_bar.rs::render: the "{ratio}%" marker
	// only appears when there's room (text length + 6 < window width);
	// otherwise the bar is just truncated to width with no ratio.
	right := m.find.RenderStatusBarStrip()
	if len(text)+6 < m.win.Width {
		right = ratioString(m.win.Offset(), m.doc.DocumentSize()) + " " + right
	}

	pad := m.win.Width - len(text) - len(right)
	if pad > 0 {
		text += spaces(pad) + right
	}
	if len(text) > m.win.Width && m.win.Width > 0 {
		text = text[:m.win.Width]
	}
	return statusBarStyle.Width(m.win.Width).Render(text)
}

// ratioString formats offset's percentage through size as "{n}%", per
// original_source/src/status_bar.rs::render's ratio_str (asserted
// len() <= 4, i.e. up to "100%").
func ratioString(offset, size int64) string {
	ratio := 0
	if size > 0 {
		ratio = int(offset * 100 / size)
	}
	return fmt.Sprintf("%d%%", ratio)
}

func isPromptMode(mo mode) bool {
	switch mo {
	case modePromptJump, modePromptJumpLines, modePromptSearchForward,
		modePromptSearchBackward, modePromptBookmarkName:
		return true
	}
	return false
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
