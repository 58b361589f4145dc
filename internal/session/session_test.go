package session

import (
	"testing"
	"time"

	"golife/internal/core"
)

func newRunningSession(t *testing.T, w, h int) *Session {
	t.Helper()
	opts := DefaultOptions()
	opts.Playback = testPlaybackConfig()
	opts.Width, opts.Height = w, h
	s := New(opts)
	if !s.Apply(Do(CmdConfirmSize)) {
		t.Fatal("confirm must succeed")
	}
	if s.Phase() != PhaseRunning {
		t.Fatalf("expected running phase, got %v", s.Phase())
	}
	return s
}

func typeKeys(s *Session, keys ...Key) {
	for _, k := range keys {
		s.HandleKey(k)
	}
}

func TestMenuConfirmAllocatesDeadGrid(t *testing.T) {
	s := New(DefaultOptions())
	if s.Phase() != PhaseMenu || s.Grid() != nil || s.Playback() != nil {
		t.Fatal("a new session must start in the menu without a board")
	}
	typeKeys(s, KeyDigit1, KeyDigit2, KeyRight, KeyDigit8, KeyEnter)

	if s.Phase() != PhaseRunning {
		t.Fatalf("enter must start the session, phase %v", s.Phase())
	}
	if s.Menu() != nil {
		t.Fatal("the menu must be discarded once the session starts")
	}
	g := s.Grid()
	if g.Width() != 12 || g.Height() != 8 {
		t.Fatalf("expected 12x8 board, got %dx%d", g.Width(), g.Height())
	}
	if g.Population() != 0 {
		t.Fatal("a new board must be all dead")
	}
	if s.Running() {
		t.Fatal("a new board must start paused")
	}
}

func TestMenuConfirmEmptyClampsToOne(t *testing.T) {
	s := New(DefaultOptions())
	typeKeys(s, KeyDigit0, KeyEnter)
	if got := s.Grid().Size(); got != (core.Size{W: 1, H: 1}) {
		t.Fatalf("expected 1x1 board, got %+v", got)
	}
}

func TestMenuMinusDeletes(t *testing.T) {
	s := New(DefaultOptions())
	typeKeys(s, KeyDigit1, KeyDigit2, KeyMinus)
	if got := s.Menu().Value(FieldWidth); got != 1 {
		t.Fatalf("expected width 1, got %d", got)
	}
}

func TestMenuIgnoresRunningCommands(t *testing.T) {
	s := New(DefaultOptions())
	for _, cmd := range []Command{Do(CmdToggleRunning), Do(CmdFaster), ToggleCell(0, 0), Do(CmdStepOnce)} {
		if s.Apply(cmd) {
			t.Fatalf("%v must be ignored in the menu", cmd.Kind)
		}
	}
	if s.Update(time.Second) != 0 {
		t.Fatal("Update in the menu must not step")
	}
}

func TestToggleIdempotentWhilePaused(t *testing.T) {
	s := newRunningSession(t, 5, 5)
	before := s.Grid().Clone()
	if !s.Apply(ToggleCell(2, 3)) {
		t.Fatal("toggle while paused must apply")
	}
	if s.Grid().At(2, 3) != core.Alive {
		t.Fatal("toggle must revive a dead cell")
	}
	s.Apply(ToggleCell(2, 3))
	if !s.Grid().Equal(before) {
		t.Fatal("toggling twice must restore the board")
	}
}

func TestToggleRejectedWhileRunning(t *testing.T) {
	s := newRunningSession(t, 5, 5)
	s.HandleKey(KeySpace)
	if !s.Running() {
		t.Fatal("space must start playback")
	}
	before := s.Grid().Clone()
	if s.Apply(ToggleCell(1, 1)) {
		t.Fatal("toggle while running must be rejected")
	}
	if !s.Grid().Equal(before) {
		t.Fatal("rejected toggle changed the board")
	}
}

func TestToggleOutOfBoundsIgnored(t *testing.T) {
	s := newRunningSession(t, 4, 4)
	for _, pt := range [][2]int{{-1, 0}, {4, 0}, {0, 4}, {0, -1}} {
		if s.ToggleCell(pt[0], pt[1]) {
			t.Fatalf("click at (%d,%d) outside the board must be ignored", pt[0], pt[1])
		}
	}
	if s.Grid().Population() != 0 {
		t.Fatal("out-of-bounds clicks changed the board")
	}
}

func TestUpdateStepsBlinker(t *testing.T) {
	s := newRunningSession(t, 5, 5)
	for x := 1; x <= 3; x++ {
		s.ToggleCell(x, 2)
	}
	horizontal := s.Grid().Clone()
	first := s.Grid()

	s.HandleKey(KeySpace)
	if n := s.Update(50 * time.Millisecond); n != 0 {
		t.Fatalf("no generation due after half an interval, got %d", n)
	}
	if n := s.Update(50 * time.Millisecond); n != 1 {
		t.Fatalf("expected one generation, got %d", n)
	}
	if s.Grid() == first {
		t.Fatal("step must swap in a new buffer rather than mutate in place")
	}
	g := s.Grid()
	for y := 1; y <= 3; y++ {
		if g.At(2, y) != core.Alive {
			t.Fatalf("expected vertical blinker, (2,%d) dead", y)
		}
	}
	if g.Population() != 3 {
		t.Fatalf("expected population 3, got %d", g.Population())
	}

	s.Update(100 * time.Millisecond)
	if !s.Grid().Equal(horizontal) {
		t.Fatal("blinker must return to horizontal after two generations")
	}
	if got := s.Stats().Generation; got != 2 {
		t.Fatalf("expected generation 2, got %d", got)
	}
}

func TestStatsStableOnStillLife(t *testing.T) {
	s := newRunningSession(t, 6, 6)
	for _, pt := range [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		s.ToggleCell(pt[0], pt[1])
	}
	s.Apply(Do(CmdStepOnce))
	st := s.Stats()
	if !st.Stable || st.Population != 4 || st.Generation != 1 {
		t.Fatalf("block must be reported stable, got %+v", st)
	}
	s.ToggleCell(0, 0)
	if s.Stats().Stable {
		t.Fatal("editing the board must clear the stable flag")
	}
}

func TestStepOnceOnlyWhilePaused(t *testing.T) {
	s := newRunningSession(t, 3, 3)
	if !s.HandleKey(KeyStep) {
		t.Fatal("step-once while paused must apply")
	}
	s.HandleKey(KeySpace)
	if s.HandleKey(KeyStep) {
		t.Fatal("step-once while running must be ignored")
	}
	if s.Stats().Generation != 1 {
		t.Fatalf("expected generation 1, got %d", s.Stats().Generation)
	}
}

func TestSpeedKeysInRunningPhase(t *testing.T) {
	s := newRunningSession(t, 3, 3)
	for i := 0; i < 20; i++ {
		s.HandleKey(KeyRight)
	}
	if got := s.Playback().Interval(); got != 40*time.Millisecond {
		t.Fatalf("expected min interval, got %v", got)
	}
	for i := 0; i < 20; i++ {
		s.HandleKey(KeyLeft)
	}
	if got := s.Playback().Interval(); got != 160*time.Millisecond {
		t.Fatalf("expected max interval, got %v", got)
	}
}

func TestClearResetsBoardAndGeneration(t *testing.T) {
	s := newRunningSession(t, 4, 4)
	s.ToggleCell(1, 1)
	s.Apply(Do(CmdStepOnce))
	s.ToggleCell(2, 2)
	s.HandleKey(KeyClear)
	st := s.Stats()
	if st.Population != 0 || st.Generation != 0 {
		t.Fatalf("clear must empty the board and reset generation, got %+v", st)
	}
}

func TestClearPausesPlayback(t *testing.T) {
	s := newRunningSession(t, 4, 4)
	s.HandleKey(KeySpace)
	if !s.Running() {
		t.Fatal("space must start playback")
	}
	s.HandleKey(KeyClear)
	if s.Running() {
		t.Fatal("clear must pause playback")
	}
	if !s.ToggleCell(1, 1) {
		t.Fatal("cells must be editable right after clear")
	}
}

func TestRandomizeDeterministicPerSeed(t *testing.T) {
	a := newRunningSession(t, 16, 16)
	b := newRunningSession(t, 16, 16)
	a.HandleKey(KeyRandomize)
	b.HandleKey(KeyRandomize)
	if !a.Grid().Equal(b.Grid()) {
		t.Fatal("sessions with the same seed must randomize identically")
	}
	if a.Grid().Population() == 0 {
		t.Fatal("randomize produced an empty board")
	}

	a.HandleKey(KeySpace)
	before := a.Grid().Clone()
	if a.HandleKey(KeyRandomize) {
		t.Fatal("randomize while running must be ignored")
	}
	if !a.Grid().Equal(before) {
		t.Fatal("ignored randomize changed the board")
	}
}

func TestNewBoardReturnsToPrefilledMenu(t *testing.T) {
	s := newRunningSession(t, 30, 20)
	s.HandleKey(KeyMenu)
	if s.Phase() != PhaseMenu || s.Grid() != nil || s.Playback() != nil {
		t.Fatal("new board must discard the session state")
	}
	if s.Menu().Digits(FieldWidth) != "30" || s.Menu().Digits(FieldHeight) != "20" {
		t.Fatalf("menu must be pre-filled with the old size, got %q x %q",
			s.Menu().Digits(FieldWidth), s.Menu().Digits(FieldHeight))
	}
}

func TestSetIntParameterInterval(t *testing.T) {
	s := newRunningSession(t, 3, 3)
	if !s.SetIntParameter(ParamInterval, 60) {
		t.Fatal("interval parameter must be adjustable")
	}
	if got := s.Playback().Interval(); got != 60*time.Millisecond {
		t.Fatalf("expected 60ms, got %v", got)
	}
	s.SetIntParameter(ParamInterval, 1)
	if got := s.Playback().Interval(); got != 40*time.Millisecond {
		t.Fatalf("expected clamp to 40ms, got %v", got)
	}
	if s.SetIntParameter("unknown", 3) {
		t.Fatal("unknown parameters must be rejected")
	}

	p, ok := s.Parameters().Lookup(ParamInterval)
	if !ok || p.Value != "40" {
		t.Fatalf("snapshot must report interval 40, got %+v", p)
	}
	ctrls := s.ParameterControls()
	if len(ctrls) != 1 || ctrls[0].Min != 40 || ctrls[0].Max != 160 || ctrls[0].Step != 25 {
		t.Fatalf("unexpected controls %+v", ctrls)
	}
}

func TestMenuParameters(t *testing.T) {
	s := New(DefaultOptions())
	typeKeys(s, KeyDigit7, KeyRight)
	snap := s.Parameters()
	if p, _ := snap.Lookup("w"); p.Value != "7" {
		t.Fatalf("expected width digits 7, got %q", p.Value)
	}
	if p, _ := snap.Lookup("focus"); p.Value != "height" {
		t.Fatalf("expected focus height, got %q", p.Value)
	}
	if s.SetIntParameter(ParamInterval, 100) {
		t.Fatal("no parameter is adjustable in the menu")
	}
}
