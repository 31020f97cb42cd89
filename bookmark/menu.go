package bookmark

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	menuFilterStyle   = lipgloss.NewStyle().Faint(true)
	menuBorderStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
)

// visibleRows is the number of bookmark rows shown between the title
// and the filter line, fixing the popup at ten total lines.
const visibleRows = 8

// Menu is a filterable, wraparound cursor over a Store's bookmarks.
type Menu struct {
	store  *Store
	filter string
	cursor int
}

// NewMenu returns a menu browsing store, unfiltered, cursor on the
// first entry.
func NewMenu(store *Store) *Menu {
	return &Menu{store: store}
}

// SetFilter replaces the name substring filter and resets the cursor.
func (m *Menu) SetFilter(filter string) {
	m.filter = filter
	m.cursor = 0
}

func (m *Menu) filteredNames() []string {
	all := m.store.Names()
	if m.filter == "" {
		return all
	}
	needle := strings.ToLower(m.filter)
	out := make([]string, 0, len(all))
	for _, n := range all {
		if strings.Contains(strings.ToLower(n), needle) {
			out = append(out, n)
		}
	}
	return out
}

// MoveDown advances the cursor, wrapping to the first entry past the
// last.
func (m *Menu) MoveDown() {
	names := m.filteredNames()
	if len(names) == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(names)
}

// MoveUp retreats the cursor, wrapping to the last entry before the
// first.
func (m *Menu) MoveUp() {
	names := m.filteredNames()
	if len(names) == 0 {
		return
	}
	m.cursor = (m.cursor - 1 + len(names)) % len(names)
}

// Selected returns the bookmark currently under the cursor.
func (m *Menu) Selected() (Bookmark, bool) {
	names := m.filteredNames()
	if m.cursor < 0 || m.cursor >= len(names) {
		return Bookmark{}, false
	}
	return m.store.Get(names[m.cursor])
}

// Render draws the ten-line popup: a centered title, up to eight
// bookmark rows (name + line preview, cursor row reversed), and a
// filter-text footer.
func (m *Menu) Render(width int) string {
	lines := make([]string, 0, visibleRows+2)
	lines = append(lines, menuTitleStyle.Width(width).Render("Bookmarks"))

	names := m.filteredNames()
	for i := 0; i < visibleRows; i++ {
		if i >= len(names) {
			lines = append(lines, "")
			continue
		}
		b, _ := m.store.Get(names[i])
		row := fmt.Sprintf("%-20s %s", b.Name, b.Line)
		if i == m.cursor {
			row = menuSelectedStyle.Render(row)
		}
		lines = append(lines, row)
	}

	filterLine := menuFilterStyle.Render("filter: " + m.filter)
	lines = append(lines, filterLine)

	return menuBorderStyle.Width(width).Render(strings.Join(lines, "\n"))
}
