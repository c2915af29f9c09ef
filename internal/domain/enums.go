package domain

// Cell is the tri-state value of one board position.
type Cell uint8

const (
	Unknown Cell = iota
	Empty
	Filled
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	default:
		return "unknown"
	}
}

// Outcome classifies how a solve ended.
type Outcome int

const (
	Solved        Outcome = iota // complete, clue-consistent board
	Unsatisfiable                // a line admits no arrangement at all
	TimedOut                     // wall-clock budget expired mid-search
	Exhausted                    // full search finished with no solution
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Unsatisfiable:
		return "unsatisfiable"
	case TimedOut:
		return "timed-out"
	default:
		return "exhausted"
	}
}

// Mode selects the degrade policy for structurally impossible lines.
type Mode int

const (
	// ModePermissive goes straight into the search; an impossible line
	// fails wherever it is first reached.
	ModePermissive Mode = iota
	// ModeStrict fails upfront, with zero nodes explored, if any line has
	// no precomputed possibilities.
	ModeStrict
)

func (m Mode) String() string {
	if m == ModeStrict {
		return "strict"
	}
	return "permissive"
}
