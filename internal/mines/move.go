package mines

import "github.com/sirupsen/logrus"

// Apply resolves one move against the board and reports the outcome. Gates
// run in a fixed order: bounds, already-revealed, confirmation. A Flagged or
// Questioned cell is only overwritten when confirmed is true; callers that
// get NeedsConfirmation back must ask the player and re-invoke with
// confirmed set.
//
// Flagging a mine decrements the flaggable-mine display counter. The
// decrement is deliberately one-way: un-flagging (or re-questioning) a mine
// does not restore it, so flag/unflag cycles drift the displayed count.
// That matches the historical behavior of the game; the counter reads as
// "moves spent flagging mines", not "mines currently flagged".
//
// Apply must not be called once Status is Won or Lost.
func (b *Board) Apply(x, y int, action Action, confirmed bool) Result {
	if !b.InBounds(x, y) {
		return RejectOutOfBounds
	}

	c := &b.cells[y*b.width+x]
	if c.vis == Revealed {
		return RejectAlreadyRevealed
	}
	if !confirmed && (c.vis == Flagged || c.vis == Questioned) {
		return NeedsConfirmation
	}

	switch action {
	case Clear:
		c.vis = Revealed
	case Flag:
		c.vis = Flagged
	case Question:
		c.vis = Questioned
	}

	Log.WithFields(logrus.Fields{
		"x": x, "y": y, "action": action.String(),
	}).Debug("move applied")

	if c.mine {
		if action == Clear {
			b.status = Lost
			return Lose
		}
		if action == Flag {
			b.remainingFlaggableMines--
		}
		return Ok
	}

	if action == Clear {
		b.remainingSafeCells--
		if c.neighborMines == 0 {
			b.floodReveal(x, y)
		}
		if b.remainingSafeCells == 0 {
			b.status = Won
			return Win
		}
	}

	return Ok
}

type point struct{ x, y int }

// floodReveal opens the connected zero-neighbor region around an already
// revealed origin plus its border of numbered cells. An explicit worklist
// keeps the depth independent of board size. Each cell is revealed (and the
// safe-cell counter decremented) at most once; a zero-neighbor cell has no
// mined neighbors, so the flood can never open a mine. Flagged and
// Questioned neighbors are swept open like any other.
func (b *Board) floodReveal(x, y int) {
	stack := []point{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				xx, yy := p.x+dx, p.y+dy
				if !b.InBounds(xx, yy) {
					continue
				}
				n := &b.cells[yy*b.width+xx]
				if n.vis == Revealed {
					continue
				}
				n.vis = Revealed
				b.remainingSafeCells--
				if n.neighborMines == 0 {
					stack = append(stack, point{xx, yy})
				}
			}
		}
	}
}

// Cheat force-finishes the game in the won state: mines become Flagged,
// everything else Revealed, both counters drop to zero. Display-only
// operation; no moves may follow it.
func (b *Board) Cheat() {
	for i := range b.cells {
		if b.cells[i].mine {
			b.cells[i].vis = Flagged
		} else {
			b.cells[i].vis = Revealed
		}
	}
	b.remainingFlaggableMines = 0
	b.remainingSafeCells = 0
	b.status = Won
}
