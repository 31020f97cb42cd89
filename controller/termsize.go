package controller

import "golang.org/x/sys/unix"

// terminalSize reads fd's current size via TIOCGWINSZ, the same
// golang.org/x/sys dependency goripgrep carries (there for
// golang.org/x/sys/cpu's SIMD feature checks; repurposed here for
// unix.IoctlGetWinsize since line-granularity matching has no use for
// SIMD prefiltering, see DESIGN.md). Used to seed Window's dimensions
// before Bubble Tea's first tea.WindowSizeMsg arrives; falls back to
// (80, 24) when fd isn't a terminal (piped output, tests).
func terminalSize(fd int) (width, height int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}
