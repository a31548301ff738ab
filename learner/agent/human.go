package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tictactoe/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidInput    = errors.New("invalid move input")
	ErrInputClosed     = errors.New("input closed")
	ErrTooManyAttempts = errors.New("too many invalid moves")
)

type HumanOption func(h *humanAgent)

// WithMaxAttempts bounds the number of prompts per turn. Zero keeps asking
// until the input ends.
func WithMaxAttempts(attempts int) HumanOption {
	return func(h *humanAgent) {
		if attempts >= 0 {
			h.maxAttempts = attempts
		}
	}
}

type humanAgent struct {
	marker      game.Marker
	scanner     *bufio.Scanner
	out         io.Writer
	maxAttempts int
}

// NewHumanAgent returns an agent that reads its moves from in, one "i,j" per
// line, prompting on out. It keeps no table, so Record and Update do nothing.
func NewHumanAgent(marker game.Marker, in io.Reader, out io.Writer, options ...HumanOption) Agent {
	if !marker.Valid() {
		panic("human must play X or O")
	}
	h := &humanAgent{
		marker:  marker,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

func (h *humanAgent) TakeAction(board *game.Board) error {
	for attempt := 1; h.maxAttempts == 0 || attempt <= h.maxAttempts; attempt++ {
		fmt.Fprintf(h.out, "Player %s. Enter your move (i,j): ", h.marker)
		if !h.scanner.Scan() {
			err := h.scanner.Err()
			if err == nil {
				err = io.EOF
			}
			return errors.Wrapf(ErrInputClosed, "%s to move: %v", h.marker, err)
		}

		cell, err := ParseMove(h.scanner.Text())
		if err == nil && !board.IsClear(cell.Row, cell.Col) {
			err = errors.Errorf("cell (%d,%d) is taken", cell.Row, cell.Col)
		}
		if err != nil {
			log.Debug().Err(err).Msgf("rejected move for %s", h.marker)
			fmt.Fprintln(h.out, err)
			continue
		}
		return board.AddMove(h.marker, cell)
	}
	return errors.Wrapf(ErrTooManyAttempts, "%s gave %d invalid moves", h.marker, h.maxAttempts)
}

func (h *humanAgent) Record(game.State)  {}
func (h *humanAgent) Update(*game.Board) {}

// ParseMove reads "i,j" with both coordinates in [0, game.Length).
func ParseMove(input string) (game.Cell, error) {
	parts := strings.Split(strings.TrimSpace(input), ",")
	if len(parts) != 2 {
		return game.Cell{}, errors.Wrapf(ErrInvalidInput, "%q: want two comma-separated numbers", input)
	}
	var coords [2]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return game.Cell{}, errors.Wrapf(ErrInvalidInput, "%q: %q is not a number", input, part)
		}
		coords[i] = n
	}
	cell := game.Cell{Row: coords[0], Col: coords[1]}
	if !cell.InBounds() {
		return game.Cell{}, errors.Wrapf(ErrInvalidInput, "%q: coordinates must be in [0,%d]", input, game.Length-1)
	}
	return cell, nil
}
