package session

import (
	"errors"
	"strconv"
	"strings"

	"github.com/velikov/sweeper/internal/mines"
)

var errMalformed = errors.New("malformed command")

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errMalformed
	}
	return n, nil
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = parseInt(twoStrings[0]); err != nil {
		return
	}
	y, err = parseInt(twoStrings[1])
	return
}

// parseMove parses a `x y [action]` move line. The action token defaults to
// clear when omitted; anything else about the line being off (token count,
// non-integer coordinates, unknown action) is an error the caller ignores
// silently.
func parseMove(line string) (x, y int, action mines.Action, err error) {
	parts := strings.Fields(line)
	if len(parts) != 2 && len(parts) != 3 {
		err = errMalformed
		return
	}
	if x, y, err = parseXY(parts[:2]); err != nil {
		return
	}
	if len(parts) == 3 {
		action, err = mines.ParseAction(parts[2])
		return
	}
	return x, y, mines.Clear, nil
}

// parseDimensions parses the startup `width height number_of_mines` line.
func parseDimensions(line string) (width, height, mineCount int, err error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		err = errMalformed
		return
	}
	if width, height, err = parseXY(parts[:2]); err != nil {
		return
	}
	mineCount, err = parseInt(parts[2])
	return
}
