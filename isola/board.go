package isola

import "errors"

// Size is the edge length of the playing grid. The game is always
// played on a square board.
const Size = 7

var ErrOutOfBounds = errors.New("coordinates out of bounds")

// Board is a dumb store of cell state. It knows nothing about the
// rules of the game; all legality checks live on Game.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b *Board) At(row, col int) (Cell, error) {
	if !b.InBounds(row, col) {
		return Empty, ErrOutOfBounds
	}
	return b.at(row, col), nil
}

func (b *Board) Set(row, col int, c Cell) error {
	if !b.InBounds(row, col) {
		return ErrOutOfBounds
	}
	b.cells[row*b.size+col] = c
	return nil
}

func (b *Board) at(row, col int) Cell {
	return b.cells[row*b.size+col]
}
