package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velikov/sweeper/internal/mines"
	"github.com/velikov/sweeper/internal/render"
)

// plain returns a renderer with an Ascii color profile so rendered output
// contains no escape sequences.
func plain() *render.Renderer {
	return render.New(&bytes.Buffer{})
}

func TestSymbolTaxonomy(t *testing.T) {
	r := plain()

	b, err := mines.NewBoardFromMines(3, 1, []bool{true, false, false})
	if err != nil {
		t.Fatal(err)
	}

	// Hidden cells first.
	assert.Equal(t, "·", r.Symbol(b.CellAt(0, 0)))
	assert.Equal(t, "·", r.Symbol(b.CellAt(2, 0)))

	// Numbered and blank reveals.
	assert.Equal(t, mines.Ok, b.Apply(1, 0, mines.Clear, false))
	assert.Equal(t, "1", r.Symbol(b.CellAt(1, 0)))
	assert.Equal(t, mines.Win, b.Apply(2, 0, mines.Clear, false))
	assert.Equal(t, " ", r.Symbol(b.CellAt(2, 0)))

	// Annotations.
	b2, err := mines.NewBoardFromMines(2, 1, []bool{true, false})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, mines.Ok, b2.Apply(0, 0, mines.Flag, false))
	assert.Equal(t, "M", r.Symbol(b2.CellAt(0, 0)))
	assert.Equal(t, mines.Ok, b2.Apply(0, 0, mines.Question, true))
	assert.Equal(t, "?", r.Symbol(b2.CellAt(0, 0)))

	// A revealed mine trumps everything.
	assert.Equal(t, mines.Lose, b2.Apply(0, 0, mines.Clear, true))
	assert.Equal(t, "X", r.Symbol(b2.CellAt(0, 0)))
}

func TestRenderFrame(t *testing.T) {
	r := plain()
	b, err := mines.NewBoardFromMines(2, 2, []bool{
		true, false,
		false, false,
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, mines.Ok, b.Apply(0, 0, mines.Flag, false))
	assert.Equal(t, mines.Ok, b.Apply(1, 1, mines.Clear, false))

	lines := strings.Split(r.Render(b), "\n")
	if assert.Len(t, lines, 5) { // banner, header, two rows, trailing newline
		assert.Equal(t, "Mines: 0", strings.TrimSpace(lines[0]))
		assert.Equal(t, []string{"0", "1"}, strings.Fields(lines[1]))
		assert.Equal(t, []string{"0", "M", "·"}, strings.Fields(lines[2]))
		assert.Equal(t, []string{"1", "·", "1"}, strings.Fields(lines[3]))
		assert.Equal(t, "", lines[4])
	}
}

func TestRenderBannerTracksCounter(t *testing.T) {
	r := plain()
	b, err := mines.NewBoardFromMines(2, 1, []bool{true, false})
	if err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, r.Render(b), "Mines: 1")
	assert.Equal(t, mines.Ok, b.Apply(0, 0, mines.Flag, false))
	assert.Equal(t, mines.Ok, b.Apply(0, 0, mines.Flag, true))
	assert.Contains(t, r.Render(b), "Mines: -1")
}

func TestRenderWideBoardLabels(t *testing.T) {
	r := plain()
	b, err := mines.NewBoardFromMines(12, 3, make([]bool, 12*3))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(r.Render(b), "\n")
	assert.Equal(t,
		[]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"},
		strings.Fields(lines[1]))
}
