package isola

import "fmt"

// Loc is a 0-based board coordinate.
type Loc struct {
	Row, Col int
}

// Game owns the board and both players and enforces the rules. The
// active player is tracked as an index into pos, never as a pointer.
type Game struct {
	board  *Board
	pos    [2]Loc
	active int
	turn   int
}

var startingLocs = [2]Loc{
	{Row: 0, Col: 3},
	{Row: 6, Col: 3},
}

func New() *Game {
	g := &Game{
		board: NewBoard(Size),
		pos:   startingLocs,
	}
	for i, l := range g.pos {
		g.board.Set(l.Row, l.Col, MakeCell(playerAt(i)))
	}
	return g
}

// FromBoard builds a game from an arbitrary board. The board must
// contain exactly one cell occupied by each player; toMove names the
// active player. Used by tests and diagram helpers.
func FromBoard(b *Board, toMove Player) (*Game, error) {
	g := &Game{board: b}
	found := [2]bool{}
	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			c := b.at(row, col)
			if !c.Occupied() {
				continue
			}
			i := index(c.Player())
			if found[i] {
				return nil, fmt.Errorf("player %s occupies two cells", c.Player())
			}
			found[i] = true
			g.pos[i] = Loc{Row: row, Col: col}
		}
	}
	for i, ok := range found {
		if !ok {
			return nil, fmt.Errorf("player %s is not on the board", playerAt(i))
		}
	}
	g.active = index(toMove)
	return g, nil
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) ToMove() Player {
	return playerAt(g.active)
}

func (g *Game) Position(p Player) Loc {
	return g.pos[index(p)]
}

// TurnNumber counts completed move+arrow cycles.
func (g *Game) TurnNumber() int {
	return g.turn
}

// HasLegalMove reports whether p has at least one empty neighbor. It
// is recomputed from the board every call; the board changes every
// turn, so the result is never cached.
func (g *Game) HasLegalMove(p Player) bool {
	l := g.pos[index(p)]
	for _, d := range Deltas {
		row, col := l.Row+d.Dr, l.Col+d.Dc
		if g.board.InBounds(row, col) && g.board.at(row, col) == Empty {
			return true
		}
	}
	return false
}

// GameOver reports whether the game has ended, and the winner if so.
// The game ends the moment the active player has no legal move at the
// start of their turn; that player loses.
func (g *Game) GameOver() (over bool, winner Player) {
	if g.HasLegalMove(g.ToMove()) {
		return false, NoPlayer
	}
	return true, g.ToMove().Flip()
}

// BurnedCells counts the burned cells on the board.
func (g *Game) BurnedCells() int {
	n := 0
	for _, c := range g.board.cells {
		if c == Burned {
			n++
		}
	}
	return n
}

func playerAt(i int) Player {
	if i == 0 {
		return Player1
	}
	return Player2
}

func index(p Player) int {
	if p == Player1 {
		return 0
	}
	return 1
}
