package entity

// Match is the history of one game: every board from the initial one to the current one,
// and the moves that connected them.
type Match struct {
	ID      string  `json:"id"`
	History []Board `json:"history"`
	Moves   []Move  `json:"moves,omitempty"`
	Outcome Outcome `json:"outcome"`
}

func NewMatch(id string) *Match {
	return &Match{
		ID:      id,
		History: []Board{{}},
		Outcome: InProgress,
	}
}

// Current returns the latest board of the match.
func (that *Match) Current() Board {
	if len(that.History) == 0 {
		return Board{}
	}

	return that.History[len(that.History)-1]
}

// Record appends a played move and the board it produced.
func (that *Match) Record(move Move, board Board, outcome Outcome) {
	that.Moves = append(that.Moves, move)
	that.History = append(that.History, board)
	that.Outcome = outcome
}

func (that *Match) IsFinished() bool {
	return that.Outcome.IsFinished()
}
