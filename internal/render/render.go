// Package render turns a board snapshot into the text frame shown after
// every move. It is a stateless transform: nothing here mutates the board,
// and the same board always renders to the same string.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/velikov/sweeper/internal/mines"
)

const (
	mineHitSymbol    = "X"
	flagSymbol       = "M"
	questionSymbol   = "?"
	clearedSymbol    = " "
	unrevealedSymbol = "·"
)

type Renderer struct {
	mineHit  lipgloss.Style
	flag     lipgloss.Style
	question lipgloss.Style
	hidden   lipgloss.Style
	digit    lipgloss.Style
	label    lipgloss.Style
}

// New builds a renderer whose color profile is detected from w: a terminal
// gets colored symbols, anything else (pipes, test buffers) gets plain
// text.
func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		mineHit:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		flag:     r.NewStyle().Foreground(lipgloss.Color("11")),
		question: r.NewStyle().Foreground(lipgloss.Color("14")),
		hidden:   r.NewStyle().Faint(true),
		digit:    r.NewStyle(),
		label:    r.NewStyle().Faint(true),
	}
}

// Symbol maps a cell to its display symbol, styled but unpadded. Revealed
// mines take precedence over everything else; annotations over hiddenness.
func (r *Renderer) Symbol(c mines.Cell) string {
	if c.Mine() && c.Visibility() == mines.Revealed {
		return r.mineHit.Render(mineHitSymbol)
	}
	switch c.Visibility() {
	case mines.Flagged:
		return r.flag.Render(flagSymbol)
	case mines.Questioned:
		return r.question.Render(questionSymbol)
	case mines.Revealed:
		if c.NeighborMines() == 0 {
			return clearedSymbol
		}
		return r.digit.Render(strconv.Itoa(c.NeighborMines()))
	default:
		return r.hidden.Render(unrevealedSymbol)
	}
}

// Render produces the full frame: a centered mine-counter banner, a column
// header row, then one line per row with its numeric label. Every cell is
// centered in a column wide enough for the largest row/column index.
func (r *Renderer) Render(b *mines.Board) string {
	gridSize := max(
		len(strconv.Itoa(b.Width()-1)),
		len(strconv.Itoa(b.Height()-1)),
	) + 2
	banner := fmt.Sprintf("Mines: %d", b.RemainingFlaggableMines())
	boardWidth := max(gridSize*(b.Width()+1), len(banner))

	var sb strings.Builder
	sb.WriteString(strings.TrimRight(center(banner, boardWidth), " "))
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat(" ", gridSize))
	for x := range b.Width() {
		sb.WriteString(center(r.label.Render(strconv.Itoa(x)), gridSize))
	}
	sb.WriteString("\n")

	for y := range b.Height() {
		sb.WriteString(center(r.label.Render(strconv.Itoa(y)), gridSize))
		for x := range b.Width() {
			sb.WriteString(center(r.Symbol(b.CellAt(x, y)), gridSize))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// center pads s to width with the narrower pad on the left. Measures with
// lipgloss so styled symbols count as one column.
func center(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
