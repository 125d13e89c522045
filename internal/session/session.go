// Package session runs the line-based game loop: it prompts, parses move
// commands, drives the board through the move API and prints outcomes. All
// gameplay rules live in the mines package; this layer only translates
// lines to moves and results to messages.
package session

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/velikov/sweeper/internal/mines"
	"github.com/velikov/sweeper/internal/render"
)

const (
	welcomeText = "Welcome To minesweeper"
	movePrompt  = "Please enter a move: x y [action], or h to print out valid actions"
	helpText    = "flag: mark a space as mined.\n" +
		"clear: clear a space, if no action is provided this is the default action.\n" +
		"question: mark a space as maybe mined."
	confirmPrompt = "You marked this tile, are you sure you want to change its marking? y/n"
	wonText       = "Congratulations you won!"
	lostText      = "Unfortunately you lost."
	outOfBounds   = "Please enter an in bounds move"
	alreadyDone   = "This tile has already been clicked"
	goodbyeText   = "The game couldn't be started because you closed the input stream"

	dimensionsPrompt  = "Please enter game dimensions: width height number_of_mines"
	dimensionsBad     = "Width and height must be positive"
	mineCountTooLarge = "Mine count too large, please enter a smaller number of mines"
	mineCountPrompt   = "Please enter the desired number of mines"
)

type Session struct {
	scanner  *bufio.Scanner
	out      io.Writer
	rng      *rand.Rand
	board    *mines.Board
	renderer *render.Renderer
	log      *logrus.Entry
}

func New(in io.Reader, out io.Writer, rng *rand.Rand, log *logrus.Entry) *Session {
	return &Session{
		scanner:  bufio.NewScanner(in),
		out:      out,
		rng:      rng,
		renderer: render.New(out),
		log:      log,
	}
}

// SetBoard installs a pre-built board, skipping the startup dimensions
// prompt (used when the host got dimensions from flags).
func (s *Session) SetBoard(b *mines.Board) {
	s.board = b
}

// Run drives the session until the game ends or input runs out. End of
// input is a graceful exit, never an error; parse failures on move lines
// are silently re-prompted.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, welcomeText)

	if s.board == nil {
		if !s.promptBoard() {
			return s.goodbye()
		}
	}
	s.log.WithFields(s.board.Fields()).Debug("session started")

	for {
		fmt.Fprint(s.out, s.renderer.Render(s.board))
		fmt.Fprintln(s.out, movePrompt)

		line, ok := s.readLine()
		if !ok {
			return s.goodbye()
		}

		switch strings.TrimSpace(line) {
		case "h":
			fmt.Fprintln(s.out, helpText)
		case "cheat":
			fmt.Fprintln(s.out, wonText)
			s.board.Cheat()
			fmt.Fprint(s.out, s.renderer.Render(s.board))
			s.log.Debug("session ended by cheat")
			return nil
		default:
			x, y, action, err := parseMove(line)
			if err != nil {
				continue
			}

			res := s.board.Apply(x, y, action, false)
			if res == mines.NeedsConfirmation {
				var retried bool
				res, retried, ok = s.confirm(x, y, action)
				if !ok {
					return s.goodbye()
				}
				if !retried {
					continue
				}
			}

			s.log.WithFields(logrus.Fields{
				"x": x, "y": y,
				"action": action.String(),
				"result": res.String(),
			}).Debug("move resolved")

			switch res {
			case mines.Win:
				fmt.Fprintln(s.out, wonText)
				s.board.Cheat()
				fmt.Fprint(s.out, s.renderer.Render(s.board))
				s.log.Debug("session won")
				return nil
			case mines.Lose:
				fmt.Fprintln(s.out, lostText)
				fmt.Fprint(s.out, s.renderer.Render(s.board))
				s.log.Debug("session lost")
				return nil
			case mines.RejectOutOfBounds:
				fmt.Fprintln(s.out, outOfBounds)
			case mines.RejectAlreadyRevealed:
				fmt.Fprintln(s.out, alreadyDone)
			}
		}
	}
}

// confirm runs the overwrite sub-dialog. It reads tokens until a decisive
// y or n; y re-applies the move confirmed, n abandons the turn. ok reports
// whether input survived the dialog.
func (s *Session) confirm(x, y int, action mines.Action) (res mines.Result, retried, ok bool) {
	fmt.Fprintln(s.out, confirmPrompt)
	for {
		line, alive := s.readLine()
		if !alive {
			return 0, false, false
		}
		for _, token := range strings.Fields(line) {
			switch token {
			case "y":
				return s.board.Apply(x, y, action, true), true, true
			case "n":
				return 0, false, true
			}
		}
	}
}

// promptBoard walks the startup dialog: dimensions plus mine count, then a
// dedicated re-prompt loop while the mine count does not fit the board.
// Returns false on end of input.
func (s *Session) promptBoard() bool {
	var width, height, mineCount int
	for {
		fmt.Fprintln(s.out, dimensionsPrompt)
		line, ok := s.readLine()
		if !ok {
			return false
		}
		w, h, m, err := parseDimensions(line)
		if err != nil {
			continue
		}
		if w <= 0 || h <= 0 {
			fmt.Fprintln(s.out, dimensionsBad)
			continue
		}
		if m < 0 {
			continue
		}
		width, height, mineCount = w, h, m
		break
	}

	for mineCount >= width*height {
		fmt.Fprintln(s.out, mineCountTooLarge)
		m, ok := s.promptInt(mineCountPrompt)
		if !ok {
			return false
		}
		if m < 0 {
			continue
		}
		mineCount = m
	}

	board, err := mines.NewBoard(width, height, mineCount, s.rng)
	if err != nil {
		// Unreachable given the loops above; treat like malformed input.
		s.log.WithError(err).Warn("board construction failed")
		return s.promptBoard()
	}
	s.board = board
	return true
}

func (s *Session) promptInt(prompt string) (int, bool) {
	for {
		fmt.Fprintln(s.out, prompt)
		line, ok := s.readLine()
		if !ok {
			return 0, false
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if n, err := parseInt(fields[0]); err == nil {
			return n, true
		}
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *Session) goodbye() error {
	fmt.Fprintln(s.out, goodbyeText)
	s.log.Debug("input stream closed")
	return nil
}
