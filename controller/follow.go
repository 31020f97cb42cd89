package controller

// checkFollow re-detects end-of-file growth and, if the file grew,
// snaps the viewport to the new last line. Cancellation back to normal
// mode on Ctrl-C is handled in handleNormalKey; this only ever runs
// forward.
func (m *Model) checkFollow() {
	grew, err := m.doc.Refresh()
	if err != nil {
		m.follow = false
		m.setStatus("follow: %v", err)
		return
	}
	if !grew {
		return
	}
	m.win.SetLastLineStartMax(m.doc.LastLineStartOffset())
	m.win.SetOffset(m.doc.LastLineStartOffset())
}
