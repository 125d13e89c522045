package mines

import (
	"fmt"
	"strconv"
)

// Visibility is what the player currently sees at a cell. A cell starts
// Hidden and only ever becomes Revealed once; Flagged and Questioned are
// player annotations that may be overwritten (see Board.Apply).
type Visibility int8

const (
	Hidden Visibility = iota
	Revealed
	Flagged
	Questioned
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	case Questioned:
		return "questioned"
	default:
		return strconv.Itoa(int(v))
	}
}

// Action is a move the player can make on a cell.
type Action int8

const (
	Clear Action = iota
	Flag
	Question
)

func (a Action) String() string {
	switch a {
	case Clear:
		return "clear"
	case Flag:
		return "flag"
	case Question:
		return "question"
	default:
		return strconv.Itoa(int(a))
	}
}

// ParseAction maps the lowercase command tokens to an Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "clear":
		return Clear, nil
	case "flag":
		return Flag, nil
	case "question":
		return Question, nil
	default:
		return Clear, fmt.Errorf("unknown action %q", s)
	}
}

// Result is the outcome of a single Board.Apply call.
type Result int8

const (
	Ok Result = iota
	Win
	Lose
	NeedsConfirmation
	RejectOutOfBounds
	RejectAlreadyRevealed
)

func (r Result) String() string {
	switch r {
	case Ok:
		return "ok"
	case Win:
		return "win"
	case Lose:
		return "lose"
	case NeedsConfirmation:
		return "confirm"
	case RejectOutOfBounds:
		return "reject_invalid"
	case RejectAlreadyRevealed:
		return "reject_already_done"
	default:
		return strconv.Itoa(int(r))
	}
}

// Status is the lifecycle state of a whole game.
type Status int8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return strconv.Itoa(int(s))
	}
}

// Cell is one grid position. Mine placement and neighbor counts are fixed at
// board construction; only visibility changes afterwards.
type Cell struct {
	mine          bool
	neighborMines int
	vis           Visibility
}

func (c Cell) Mine() bool { return c.mine }

func (c Cell) NeighborMines() int { return c.neighborMines }

func (c Cell) Visibility() Visibility { return c.vis }
