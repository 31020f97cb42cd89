// Package controller is the Bubble Tea glue: a tea.Model that maps key
// events onto docnav.Document, finder.Finder, and window.Window calls
// and assembles the rendered Canvas, per spec.md §4.4/§6.
package controller

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/loss-pager/loss/bookmark"
	"github.com/loss-pager/loss/docnav"
	"github.com/loss-pager/loss/finder"
	"github.com/loss-pager/loss/prompt"
	"github.com/loss-pager/loss/window"
)

// mode tracks which input surface is receiving keystrokes.
type mode int

const (
	modeNormal mode = iota
	modeFinderMenu
	modeBookmarkMenu
	modePromptJump
	modePromptJumpLines
	modePromptSearchForward
	modePromptSearchBackward
	modePromptBookmarkName
)

// Model is the pager's top-level Elm-architecture state.
type Model struct {
	doc          *docnav.Document
	find         *finder.Finder
	finderEvents *finder.EventParser
	win          *window.Window
	bookmarks    *bookmark.Store
	bookmarkMenu *bookmark.Menu
	prompt       *prompt.Prompt

	filename       string
	mode           mode
	status         string
	follow         bool
	promptLabel    string
	bookmarkFilter string

	termHeight int
	termWidth  int

	jumpLinesDirection window.Direction
}

// New builds a Model over an already-open Document. The initial
// viewport is sized from the controlling terminal via terminalSize,
// ahead of Bubble Tea's first tea.WindowSizeMsg.
func New(doc *docnav.Document, filename string) *Model {
	width, height := terminalSize(int(os.Stdout.Fd()))
	m := &Model{
		doc:          doc,
		find:         finder.New(),
		finderEvents: finder.NewEventParser(),
		win:          window.New(width, height-1),
		bookmarks:    bookmark.NewStore(),
		prompt:       prompt.New(),
		filename:     filename,
	}
	m.bookmarkMenu = bookmark.NewMenu(m.bookmarks)
	m.win.SetLastLineStartMax(doc.LastLineStartOffset())
	return m
}

// Init starts in normal mode, kicking off the follow-mode tick loop if
// follow was enabled at construction time.
func (m *Model) Init() tea.Cmd {
	if m.follow {
		return followTick()
	}
	return nil
}

// SetFollow sets the initial follow-mode state; used by loss.New's
// WithFollow option before the Program starts.
func (m *Model) SetFollow(enabled bool) {
	m.follow = enabled
}

// followTickMsg drives follow mode's periodic re-check of file size.
type followTickMsg time.Time

func followTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return followTickMsg(t)
	})
}

// Update applies one event and returns the (possibly) updated model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		m.win.Resize(msg.Width, msg.Height-1) // last row reserved for the status bar
		return m, nil

	case followTickMsg:
		if !m.follow {
			return m, nil
		}
		m.checkFollow()
		return m, followTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
}

func (m *Model) clearStatus() {
	m.status = ""
}
