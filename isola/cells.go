package isola

import "fmt"

type Player byte
type Cell byte

const (
	NoPlayer Player = 0
	Player1  Player = 1 << 6
	Player2  Player = 1 << 7

	playerMask byte = 3 << 6

	Empty  Cell = 0
	Burned Cell = 1
)

// MakeCell returns a cell occupied by the given player.
func MakeCell(p Player) Cell {
	return Cell(p)
}

func (c Cell) Occupied() bool {
	return byte(c)&playerMask != 0
}

func (c Cell) Player() Player {
	return Player(byte(c) & playerMask)
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "B"
	case Player2:
		return "W"
	case NoPlayer:
		return "nobody"
	default:
		panic(fmt.Sprintf("bad player: %x", int(p)))
	}
}

func (p Player) Flip() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	case NoPlayer:
		return NoPlayer
	default:
		panic(fmt.Sprintf("bad player: %x", int(p)))
	}
}
