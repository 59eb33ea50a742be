package isolatest

import (
	"fmt"
	"strings"

	"github.com/nbdavies/isola/isola"
)

// Game parses a board diagram into a playable position. Each line is
// one row of glyphs: '+' empty, 'A' burned, 'B' player 1, 'W' player
// 2. Blank lines and leading/trailing space are ignored. The diagram
// must be square and contain each player exactly once.
func Game(diagram string, toMove isola.Player) *isola.Game {
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	b := isola.NewBoard(len(rows))
	for r, line := range rows {
		if len(line) != len(rows) {
			panic(fmt.Sprintf("row %d: board is not square: %q", r+1, line))
		}
		for c, glyph := range line {
			var cell isola.Cell
			switch glyph {
			case '+':
				cell = isola.Empty
			case 'A':
				cell = isola.Burned
			case 'B':
				cell = isola.MakeCell(isola.Player1)
			case 'W':
				cell = isola.MakeCell(isola.Player2)
			default:
				panic(fmt.Sprintf("bad glyph %q at (%d,%d)", glyph, r+1, c+1))
			}
			if err := b.Set(r, c, cell); err != nil {
				panic(err)
			}
		}
	}
	g, err := isola.FromBoard(b, toMove)
	if err != nil {
		panic(err)
	}
	return g
}

// Turn applies one full move+arrow cycle and alternates the turn,
// panicking on any rejection. Arrow coordinates are 0-based.
func Turn(g *isola.Game, d isola.Direction, arrowRow, arrowCol int) {
	if err := g.Move(d); err != nil {
		panic(err)
	}
	if err := g.PlaceArrow(arrowRow, arrowCol); err != nil {
		panic(err)
	}
	g.EndTurn()
}
