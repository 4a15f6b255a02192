package game

type BoardState int
type UncoverResult int

const (
	DefaultWidth    = 5
	DefaultHeight   = 5
	DefaultNumMines = 5
)

// A board starts out MinesPending and becomes InPlay once the first uncover
// has placed the mines. Won and Lost are terminal.
const (
	MinesPending BoardState = iota
	InPlay
	Won
	Lost
)

var boardStateNames = map[BoardState]string{
	MinesPending: "mines pending",
	InPlay:       "in play",
	Won:          "won",
	Lost:         "lost",
}

func (state BoardState) String() string {
	if name, ok := boardStateNames[state]; ok {
		return name
	}
	return "unknown"
}

// IsOver reports whether no further uncover calls are meaningful
func (state BoardState) IsOver() bool {
	return state == Won || state == Lost
}

const (
	Revealed UncoverResult = iota
	AlreadyRevealed
	HitMine
)

func (result UncoverResult) String() string {
	switch result {
	case Revealed:
		return "revealed"
	case AlreadyRevealed:
		return "already revealed"
	case HitMine:
		return "hit mine"
	default:
		return "unknown"
	}
}

// Glyphs used by the console renderer and the snapshot format
const (
	glyphHidden = '?'
	glyphEmpty  = ' '
	glyphMine   = '*'
)
