package session

// Phase identifies which part of the program receives input.
type Phase int

const (
	// PhaseMenu is the board size entry screen.
	PhaseMenu Phase = iota
	// PhaseRunning is an active simulation, paused or not.
	PhaseRunning
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// CommandKind enumerates the operations a frontend can request.
type CommandKind int

const (
	CmdNone CommandKind = iota

	// Menu phase.
	CmdFocusWidth
	CmdFocusHeight
	CmdAppendDigit
	CmdDeleteDigit
	CmdConfirmSize

	// Running phase.
	CmdToggleRunning
	CmdFaster
	CmdSlower
	CmdToggleCell
	CmdStepOnce
	CmdClear
	CmdRandomize
	CmdNewBoard
)

var commandNames = map[CommandKind]string{
	CmdNone:          "none",
	CmdFocusWidth:    "focus-width",
	CmdFocusHeight:   "focus-height",
	CmdAppendDigit:   "append-digit",
	CmdDeleteDigit:   "delete-digit",
	CmdConfirmSize:   "confirm-size",
	CmdToggleRunning: "toggle-running",
	CmdFaster:        "faster",
	CmdSlower:        "slower",
	CmdToggleCell:    "toggle-cell",
	CmdStepOnce:      "step-once",
	CmdClear:         "clear",
	CmdRandomize:     "randomize",
	CmdNewBoard:      "new-board",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is a single request from the input collaborator. Digit is used by
// CmdAppendDigit; X and Y by CmdToggleCell.
type Command struct {
	Kind  CommandKind
	Digit int
	X, Y  int
}

// Do returns a command without payload.
func Do(kind CommandKind) Command { return Command{Kind: kind} }

// AppendDigit returns a command appending d to the focused size field.
func AppendDigit(d int) Command { return Command{Kind: CmdAppendDigit, Digit: d} }

// ToggleCell returns a command flipping the cell at grid coordinates (x, y).
func ToggleCell(x, y int) Command { return Command{Kind: CmdToggleCell, X: x, Y: y} }

// Key is a device-independent key press.
type Key int

const (
	KeyNone Key = iota
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
	KeyMinus
	KeyLeft
	KeyRight
	KeyEnter
	KeySpace
	KeyStep
	KeyClear
	KeyRandomize
	KeyMenu
)

// KeyDigit returns the key for digit d, or KeyNone when d is not in 0-9.
func KeyDigit(d int) Key {
	if d < 0 || d > 9 {
		return KeyNone
	}
	return KeyDigit0 + Key(d)
}

// Digit reports the digit a key stands for.
func (k Key) Digit() (int, bool) {
	if k < KeyDigit0 || k > KeyDigit9 {
		return 0, false
	}
	return int(k - KeyDigit0), true
}

// Translate maps a key press to the command it means in the given phase.
// Keys without a meaning in that phase yield false.
func Translate(phase Phase, key Key) (Command, bool) {
	switch phase {
	case PhaseMenu:
		if d, ok := key.Digit(); ok {
			return AppendDigit(d), true
		}
		switch key {
		case KeyMinus:
			return Do(CmdDeleteDigit), true
		case KeyLeft:
			return Do(CmdFocusWidth), true
		case KeyRight:
			return Do(CmdFocusHeight), true
		case KeyEnter:
			return Do(CmdConfirmSize), true
		}
	case PhaseRunning:
		switch key {
		case KeySpace:
			return Do(CmdToggleRunning), true
		case KeyLeft:
			return Do(CmdSlower), true
		case KeyRight:
			return Do(CmdFaster), true
		case KeyStep:
			return Do(CmdStepOnce), true
		case KeyClear:
			return Do(CmdClear), true
		case KeyRandomize:
			return Do(CmdRandomize), true
		case KeyMenu:
			return Do(CmdNewBoard), true
		}
	}
	return Command{}, false
}
