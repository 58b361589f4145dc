package session

// ToggleCell flips the cell at (x, y). It only acts on a paused board and
// silently ignores coordinates outside the grid.
func (s *Session) ToggleCell(x, y int) bool {
	if s.phase != PhaseRunning || s.playback.Running() {
		return false
	}
	if !s.grid.InBounds(x, y) {
		return false
	}
	s.grid.Toggle(x, y)
	s.stable = false
	return true
}
