package entity

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

// Mark is both the symbol placed on the board and the identity of the player placing it.
type Mark string

func (that Mark) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) String() string {
	return string(that)
}

// EmptyCell is the zero Cell.
var EmptyCell = Cell{}

// Cell is either empty or occupied by a single mark.
type Cell struct {
	mark Mark
}

func Occupied(mark Mark) Cell {
	return Cell{mark: mark}
}

func (that Cell) IsEmpty() bool {
	return that.mark == ""
}

// Mark returns the occupying mark, or false for an empty cell.
func (that Cell) Mark() (Mark, bool) {
	if that.IsEmpty() {
		return "", false
	}
	return that.mark, true
}

func (that Cell) String() string {
	if that.IsEmpty() {
		return " "
	}
	return string(that.mark)
}

// Coords addresses a cell with 1-based row and column.
type Coords struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
