package entity

import (
	"fmt"
	"strings"
)

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	MarkX
	MarkO
)

const BoardSize = 3

func (that Cell) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// Board is a 3x3 grid indexed [row][col]. It is a value type: assigning it copies every cell.
type Board [BoardSize][BoardSize]Cell

func (that Board) String() string {
	rows := make([]string, 0, BoardSize)
	for _, row := range that {
		rows = append(rows, fmt.Sprintf("%s|%s|%s", row[0], row[1], row[2]))
	}

	return strings.Join(rows, "\n")
}

// Move targets the cell at (Row, Col).
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

type Outcome uint8

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// IsFinished reports whether the outcome is final.
func (that Outcome) IsFinished() bool {
	return that != InProgress
}
