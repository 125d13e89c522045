package mines

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

var (
	ErrBadDimensions = errors.New("width and height must be positive")
	ErrTooManyMines  = errors.New("mine count must be less than the cell count")
)

// Board owns the full game state: the cell grid, the two display/win
// counters and the terminal status. It is not safe for concurrent use; one
// session owns one board.
type Board struct {
	width, height int
	mineCount     int
	cells         []Cell // indexed y*width+x

	remainingFlaggableMines int
	remainingSafeCells      int
	status                  Status
}

// NewBoard allocates a width x height grid and places mineCount mines
// uniformly at random using r, by rejection sampling. Density close to 100%
// makes the sampling degenerate, which is why mineCount == width*height is
// rejected outright.
func NewBoard(width, height, mineCount int, r *rand.Rand) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrBadDimensions, width, height)
	}
	if mineCount < 0 || mineCount >= width*height {
		return nil, fmt.Errorf("%w (got %d mines on %dx%d)", ErrTooManyMines, mineCount, width, height)
	}

	b := newEmptyBoard(width, height, mineCount)
	for placed := 0; placed < mineCount; {
		x, y := r.IntN(width), r.IntN(height)
		if !b.cells[y*width+x].mine {
			b.cells[y*width+x].mine = true
			placed++
		}
	}
	b.countNeighbors()

	Log.WithFields(logrus.Fields{
		"width":      width,
		"height":     height,
		"mine_count": mineCount,
	}).Debug("board created")

	return b, nil
}

// NewBoardFromMines builds a board with an explicit mine layout, one bool
// per cell indexed y*width+x. Deterministic counterpart of NewBoard for
// tests and replays.
func NewBoardFromMines(width, height int, mineAt []bool) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrBadDimensions, width, height)
	}
	if len(mineAt) != width*height {
		return nil, fmt.Errorf("mine layout has %d cells, want %d", len(mineAt), width*height)
	}
	mineCount := 0
	for _, m := range mineAt {
		if m {
			mineCount++
		}
	}
	if mineCount >= width*height {
		return nil, fmt.Errorf("%w (got %d mines on %dx%d)", ErrTooManyMines, mineCount, width, height)
	}

	b := newEmptyBoard(width, height, mineCount)
	for i, m := range mineAt {
		b.cells[i].mine = m
	}
	b.countNeighbors()
	return b, nil
}

func newEmptyBoard(width, height, mineCount int) *Board {
	return &Board{
		width:                   width,
		height:                  height,
		mineCount:               mineCount,
		cells:                   make([]Cell, width*height),
		remainingFlaggableMines: mineCount,
		remainingSafeCells:      width*height - mineCount,
		status:                  InProgress,
	}
}

func (b *Board) countNeighbors() {
	for y := range b.height {
		for x := range b.width {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					xx, yy := x+dx, y+dy
					if b.InBounds(xx, yy) && b.cells[yy*b.width+xx].mine {
						n++
					}
				}
			}
			b.cells[y*b.width+x].neighborMines = n
		}
	}
}

func (b *Board) Width() int { return b.width }

func (b *Board) Height() int { return b.height }

func (b *Board) MineCount() int { return b.mineCount }

// RemainingFlaggableMines is a display counter only. It may go negative and
// is never restored on unflag (see Apply).
func (b *Board) RemainingFlaggableMines() int { return b.remainingFlaggableMines }

// RemainingSafeCells is the number of non-mine cells not yet revealed; the
// game is won when it reaches zero.
func (b *Board) RemainingSafeCells() int { return b.remainingSafeCells }

func (b *Board) Status() Status { return b.status }

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// CellAt returns a copy of the cell at (x, y); callers get a read-only
// snapshot and cannot mutate board state through it. (x, y) must be in
// bounds.
func (b *Board) CellAt(x, y int) Cell {
	return b.cells[y*b.width+x]
}

// Fields describes the board for log records.
func (b *Board) Fields() logrus.Fields {
	return logrus.Fields{
		"width":      b.width,
		"height":     b.height,
		"mine_count": b.mineCount,
		"status":     b.status.String(),
	}
}
