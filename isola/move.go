package isola

import (
	"errors"
	"strconv"
	"strings"
)

// Direction names the 8 compass directions by their numeric-keypad
// digit. 5 is the keypad's center and is not a direction.
type Direction byte

const (
	DownLeft  Direction = 1
	Down      Direction = 2
	DownRight Direction = 3
	Left      Direction = 4
	Right     Direction = 6
	UpLeft    Direction = 7
	Up        Direction = 8
	UpRight   Direction = 9
)

var (
	ErrBadDirection = errors.New("direction must be 1-9, excluding 5")
	ErrCellBurned   = errors.New("cell is burned")
	ErrCellOccupied = errors.New("cell is occupied")
	ErrCellNotEmpty = errors.New("cell is not empty")
)

// Deltas enumerates the (row, col) offsets of all 8 directions. Row 0
// is the top line of the rendered board, so Up decreases the row.
var Deltas = [8]struct {
	Dir    Direction
	Dr, Dc int
}{
	{DownLeft, 1, -1},
	{Down, 1, 0},
	{DownRight, 1, 1},
	{Left, 0, -1},
	{Right, 0, 1},
	{UpLeft, -1, -1},
	{Up, -1, 0},
	{UpRight, -1, 1},
}

func (d Direction) Delta() (dr int, dc int) {
	for _, e := range Deltas {
		if e.Dir == d {
			return e.Dr, e.Dc
		}
	}
	panic("bad direction")
}

// ParseDirection parses a line of user input as a keypad direction.
func ParseDirection(s string) (Direction, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrBadDirection
	}
	if n < 1 || n > 9 || n == 5 {
		return 0, ErrBadDirection
	}
	return Direction(n), nil
}

// Move steps the active player one cell in direction d. The vacated
// cell burns; the destination becomes occupied by the mover. On
// rejection the board and both players are untouched and the same
// player remains to move.
func (g *Game) Move(d Direction) error {
	dr, dc := d.Delta()
	from := g.pos[g.active]
	row, col := from.Row+dr, from.Col+dc

	if !g.board.InBounds(row, col) {
		return ErrOutOfBounds
	}
	switch c := g.board.at(row, col); {
	case c == Burned:
		return ErrCellBurned
	case c.Occupied():
		return ErrCellOccupied
	}

	g.board.Set(from.Row, from.Col, Burned)
	g.board.Set(row, col, MakeCell(g.ToMove()))
	g.pos[g.active] = Loc{Row: row, Col: col}
	return nil
}

// PlaceArrow burns the cell at (row, col), 0-based. Only an empty cell
// may be burned; in particular burning an already-burned cell fails.
func (g *Game) PlaceArrow(row, col int) error {
	if !g.board.InBounds(row, col) {
		return ErrOutOfBounds
	}
	if g.board.at(row, col) != Empty {
		return ErrCellNotEmpty
	}
	g.board.Set(row, col, Burned)
	return nil
}

// EndTurn hands the move to the other player. Callers invoke it only
// after a successful Move and PlaceArrow pair; rejections never
// alternate the turn.
func (g *Game) EndTurn() {
	g.active = 1 - g.active
	g.turn++
}
