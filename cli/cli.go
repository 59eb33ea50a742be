package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nbdavies/isola/isola"
)

type Glyphs struct {
	Empty   string
	Burned  string
	Player1 string
	Player2 string
}

var DefaultGlyphs = Glyphs{
	Empty:   "+",
	Burned:  "A",
	Player1: "B",
	Player2: "W",
}

var UnicodeGlyphs = Glyphs{
	Empty:   "·",
	Burned:  "▓",
	Player1: "●",
	Player2: "○",
}

const rules = `********** Isola Game **********
Each player has one piece.
The Board has 7 by 7 positions, which initially contain
free spaces ('+') except for the initial positions
of the players. A Move consists of two subsequent actions:

1. Moving one's piece to a neighboring (horizontally, vertically,
diagonally) field that contains a '+' but not the opponents piece.

2. Removing any '+' with no piece on it (Replacing it with an 'A').

If a player cannot move at the beginning of their turn, that player loses the game.`

const keypadLegend = "\n7-8-9\n4---6\n1-2-3\n"

const clearScreen = "\x1b[2J\x1b[H"

type CLI struct {
	g *isola.Game

	// Game, if set, is played instead of a fresh one. Tests use it
	// to start from a prepared position.
	Game   *isola.Game
	Glyphs *Glyphs
	Out    io.Writer
	In     *bufio.Reader
}

// Play runs one full game: rules banner, then alternating move and
// arrow steps until the active player cannot move at the start of
// their turn. It returns the finished game and the winner.
func (c *CLI) Play() (*isola.Game, isola.Player) {
	c.g = c.Game
	if c.g == nil {
		c.g = isola.New()
	}
	fmt.Fprintln(c.Out, rules)
	c.pause("Press enter to start...")
	c.render()
	for {
		if over, winner := c.g.GameOver(); over {
			loser := c.g.ToMove()
			fmt.Fprintf(c.Out, "%s is no longer able to move.\n", loser)
			fmt.Fprintf(c.Out, "%s is the winner!\n", winner)
			c.pause("Press enter to continue...")
			return c.g, winner
		}
		c.moveStep()
		c.arrowStep()
		c.g.EndTurn()
	}
}

// moveStep prompts the active player for a direction until one parses
// and applies legally. Rejections re-prompt; they never consume the
// turn.
func (c *CLI) moveStep() {
	for {
		d := c.readDirection(c.g.ToMove())
		err := c.g.Move(d)
		switch err {
		case nil:
			fmt.Fprintln(c.Out, "Valid move")
			c.render()
			return
		case isola.ErrOutOfBounds:
			fmt.Fprintln(c.Out, "Invalid move, please try again:")
		case isola.ErrCellBurned:
			fmt.Fprintln(c.Out, "That space is dead, please try again:")
		case isola.ErrCellOccupied:
			fmt.Fprintln(c.Out, "That space is occupied by the opponent, please try again:")
		default:
			panic(fmt.Sprintf("unexpected move error: %v", err))
		}
	}
}

// arrowStep prompts for a target cell until an empty one is named,
// then burns it. Row and column are read 1-based and re-prompted
// independently until in range.
func (c *CLI) arrowStep() {
	fmt.Fprintf(c.Out, "%s time to fire an arrow!\n", c.g.ToMove())
	size := c.g.Board().Size()
	for {
		row := c.readCoordinate("Please select a row: ", size)
		col := c.readCoordinate("Please select a column: ", size)
		if err := c.g.PlaceArrow(row-1, col-1); err != nil {
			fmt.Fprintln(c.Out, "That location cannot be destroyed.")
			continue
		}
		c.render()
		return
	}
}

func (c *CLI) render() {
	fmt.Fprint(c.Out, clearScreen)
	RenderBoard(c.Glyphs, c.Out, c.g.Board())
	fmt.Fprint(c.Out, keypadLegend+"\n")
}

// RenderBoard writes the grid with a 1-based column header row and
// 1-based row labels.
func RenderBoard(g *Glyphs, out io.Writer, b *isola.Board) {
	if g == nil {
		g = &DefaultGlyphs
	}
	fmt.Fprint(out, "  ")
	for col := 0; col < b.Size(); col++ {
		fmt.Fprintf(out, "%d", col+1)
	}
	fmt.Fprintln(out)
	for row := 0; row < b.Size(); row++ {
		fmt.Fprintf(out, "%d ", row+1)
		for col := 0; col < b.Size(); col++ {
			cell, err := b.At(row, col)
			if err != nil {
				panic(err)
			}
			fmt.Fprint(out, glyph(g, cell))
		}
		fmt.Fprintln(out)
	}
}

func glyph(g *Glyphs, c isola.Cell) string {
	switch {
	case c == isola.Empty:
		return g.Empty
	case c == isola.Burned:
		return g.Burned
	case c.Player() == isola.Player1:
		return g.Player1
	default:
		return g.Player2
	}
}
