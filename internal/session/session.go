// Package session owns the interactive state of a Game of Life run: the board
// size menu, the active grid, and playback. Frontends feed it commands and
// frame deltas and read it back for drawing.
package session

import (
	"time"

	"golife/internal/core"
	"golife/internal/life"
)

// Options configures a Session.
type Options struct {
	// MaxDimension caps either side of a board typed into the menu.
	MaxDimension int
	// Width and Height pre-fill the menu when positive.
	Width, Height int

	Playback PlaybackConfig

	// Seed and Density drive CmdRandomize.
	Seed    int64
	Density float64
}

// DefaultOptions returns the standard session options.
func DefaultOptions() Options {
	return Options{
		MaxDimension: DefaultMaxDimension,
		Playback:     DefaultPlaybackConfig(),
		Seed:         42,
		Density:      0.25,
	}
}

// Stats summarizes the current board.
type Stats struct {
	Generation int
	Population int
	// Stable is set when the latest generation equals the one before it.
	Stable bool
}

// Session is the single owner of all mutable game state. Only one of menu and
// grid is live at a time.
type Session struct {
	opts  Options
	phase Phase

	menu *SizeInput

	grid     *core.Grid
	spare    *core.Grid
	playback *Playback

	rng        *core.RNG
	generation int
	stable     bool
}

// New returns a session in the menu phase.
func New(opts Options) *Session {
	s := &Session{opts: opts, rng: core.NewRNG(opts.Seed)}
	s.enterMenu(opts.Width, opts.Height)
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Menu returns the size input, or nil outside the menu phase.
func (s *Session) Menu() *SizeInput { return s.menu }

// Grid returns the current generation, or nil in the menu phase.
func (s *Session) Grid() *core.Grid { return s.grid }

// Playback returns the playback controller, or nil in the menu phase.
func (s *Session) Playback() *Playback { return s.playback }

// Stats reports generation and population of the active board.
func (s *Session) Stats() Stats {
	if s.grid == nil {
		return Stats{}
	}
	return Stats{Generation: s.generation, Population: s.grid.Population(), Stable: s.stable}
}

// Running reports whether a board is active and advancing.
func (s *Session) Running() bool {
	return s.playback != nil && s.playback.Running()
}

// HandleKey translates a key press for the current phase and applies it.
func (s *Session) HandleKey(k Key) bool {
	cmd, ok := Translate(s.phase, k)
	if !ok {
		return false
	}
	return s.Apply(cmd)
}

// Apply executes a command and reports whether it changed any state.
// Commands that do not belong to the current phase are ignored.
func (s *Session) Apply(cmd Command) bool {
	if s.phase == PhaseMenu {
		return s.applyMenu(cmd)
	}
	return s.applyRunning(cmd)
}

func (s *Session) applyMenu(cmd Command) bool {
	switch cmd.Kind {
	case CmdFocusWidth:
		return s.menu.SetFocus(FieldWidth)
	case CmdFocusHeight:
		return s.menu.SetFocus(FieldHeight)
	case CmdAppendDigit:
		return s.menu.AppendDigit(cmd.Digit)
	case CmdDeleteDigit:
		return s.menu.DeleteDigit()
	case CmdConfirmSize:
		s.start(s.menu.Confirm())
		return true
	}
	return false
}

func (s *Session) applyRunning(cmd Command) bool {
	switch cmd.Kind {
	case CmdToggleRunning:
		s.playback.Toggle()
		return true
	case CmdFaster:
		return s.playback.Faster()
	case CmdSlower:
		return s.playback.Slower()
	case CmdToggleCell:
		return s.ToggleCell(cmd.X, cmd.Y)
	case CmdStepOnce:
		if s.playback.Running() {
			return false
		}
		s.advance()
		return true
	case CmdClear:
		// An empty board has nothing to run; pause so cells can be drawn.
		s.playback.Pause()
		s.grid.Clear()
		s.generation = 0
		s.stable = false
		return true
	case CmdRandomize:
		if s.playback.Running() {
			return false
		}
		s.rng.Randomize(s.grid, s.opts.Density)
		s.generation = 0
		s.stable = false
		return true
	case CmdNewBoard:
		size := s.grid.Size()
		s.enterMenu(size.W, size.H)
		return true
	}
	return false
}

// Update advances the simulation by one frame of dt and returns the number
// of generations applied.
func (s *Session) Update(dt time.Duration) int {
	if s.phase != PhaseRunning {
		return 0
	}
	steps := s.playback.Advance(dt)
	for i := 0; i < steps; i++ {
		s.advance()
	}
	return steps
}

// advance computes the next generation into the spare buffer and then swaps
// it in, so readers never see a half-written grid.
func (s *Session) advance() {
	life.StepInto(s.spare, s.grid)
	s.stable = s.spare.Equal(s.grid)
	s.grid, s.spare = s.spare, s.grid
	s.generation++
}

func (s *Session) start(size core.Size) {
	s.grid = core.NewGrid(size.W, size.H)
	s.spare = core.NewGrid(size.W, size.H)
	s.playback = NewPlayback(s.opts.Playback)
	s.generation = 0
	s.stable = false
	s.menu = nil
	s.phase = PhaseRunning
}

func (s *Session) enterMenu(w, h int) {
	s.menu = NewSizeInput(s.opts.MaxDimension)
	s.menu.Prefill(w, h)
	s.grid = nil
	s.spare = nil
	s.playback = nil
	s.generation = 0
	s.stable = false
	s.phase = PhaseMenu
}
