package controller

import (
	"strings"

	"github.com/loss-pager/loss/render"
)

// View assembles the full-screen canvas: the body area (one rendered
// line per viewport row, fold/exclusive filtered and highlighted),
// optionally overlaid by the finder or bookmark popup, with the status
// bar always pinned to the last row.
func (m *Model) View() string {
	body := m.renderBody()
	var popup string
	switch m.mode {
	case modeFinderMenu:
		popup = m.find.RenderMenu(m.win.Width)
	case modeBookmarkMenu:
		popup = m.bookmarkMenu.Render(m.win.Width)
	}
	if popup != "" {
		body = overlay(body, popup)
	}
	return body + "\n" + m.renderStatusBar()
}

// renderBody walks Window.Height lines forward from Window.Offset,
// applying the fold/exclusive filter and the highlight render scheme
// to each, per spec.md §2's per-frame data flow.
func (m *Model) renderBody() string {
	raw := m.doc.QueryLines(m.win.Offset(), m.win.Height*4) // over-fetch to survive folded lines
	rows := make([]string, 0, m.win.Height)
	for _, line := range raw {
		if len(rows) >= m.win.Height {
			break
		}
		if !m.find.CanPassAdvanceAction(line) {
			continue
		}
		l := render.New(line)
		m.find.AttachRenderScheme(&l)
		visible := l.Substr(render.Range{Start: m.win.HorizontalShift, End: m.win.HorizontalShift + m.win.Width})
		rows = append(rows, visible.Render())
	}
	for len(rows) < m.win.Height {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

// overlay stamps popup (already bordered) over the center of body,
// replacing whichever body lines it covers.
func overlay(body, popup string) string {
	bodyLines := strings.Split(body, "\n")
	popupLines := strings.Split(popup, "\n")

	startRow := (len(bodyLines) - len(popupLines)) / 2
	if startRow < 0 {
		startRow = 0
	}
	for i, pl := range popupLines {
		row := startRow + i
		if row >= 0 && row < len(bodyLines) {
			bodyLines[row] = pl
		}
	}
	return strings.Join(bodyLines, "\n")
}
