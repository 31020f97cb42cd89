package finder

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	menuActiveStyle   = lipgloss.NewStyle().Bold(true)
	menuInactiveStyle = lipgloss.NewStyle().Faint(true)
	menuBorderStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
)

// RenderMenu renders the eleven-line finder popup: a centered title row
// followed by one row per slot (in display order 1,2,...,9,0), each
// showing the active marker, the slot's flags, and its pattern. Slots
// outside the active set are dimmed.
func (f *Finder) RenderMenu(width int) string {
	lines := make([]string, 0, 11)
	lines = append(lines, menuTitleStyle.Width(width).Render("Finder"))

	for i := 0; i < 10; i++ {
		slotNum := arrayIndexToSlotNumber(i)
		s := f.slots[i]
		lines = append(lines, f.renderMenuRow(slotNum, s))
	}
	return menuBorderStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (f *Finder) renderMenuRow(slotNum int, s Slot) string {
	marker := " "
	style := menuInactiveStyle
	if f.IsActive(slotNum) {
		marker = "*"
		style = menuActiveStyle
	}

	highlight := "off"
	if s.Highlight == HighlightOn {
		highlight = "on"
	}
	advanced := "-"
	switch s.Advanced {
	case ActionFold:
		advanced = "fold"
	case ActionExclusive:
		advanced = "excl"
	}
	kind := "raw"
	if s.PatternType == PatternRegex {
		kind = "regex"
	}
	pattern := s.Pattern
	if pattern == "" {
		pattern = "(empty)"
	}

	row := fmt.Sprintf("%s%d [%-3s %-4s %-5s] %s", marker, slotNum, highlight, advanced, kind, pattern)
	return s.Color.Render(marker) + style.Render(row[1:])
}
