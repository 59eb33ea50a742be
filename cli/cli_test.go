package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbdavies/isola/isola"
	"github.com/nbdavies/isola/isolatest"
)

func run(t *testing.T, g *isola.Game, input string) (*isola.Game, isola.Player, string) {
	t.Helper()
	var out bytes.Buffer
	c := &CLI{
		Game: g,
		Out:  &out,
		In:   bufio.NewReader(strings.NewReader(input)),
	}
	got, winner := c.Play()
	return got, winner, out.String()
}

func TestPlaySurroundedAtStart(t *testing.T) {
	// Given: player 2 to move with every neighbor burned
	g := isolatest.Game(`
		+++B+++
		+++++++
		+++++++
		+++++++
		+++++++
		++AAA++
		++AWA++
	`, isola.Player2)

	// When: the game is played with only the two acknowledgments
	_, winner, output := run(t, g, "\n\n")

	// Then: player 2 loses immediately, player 1 wins
	require.Equal(t, isola.Player1, winner)
	assert.Contains(t, output, "W is no longer able to move.")
	assert.Contains(t, output, "B is the winner!")
	assert.Contains(t, output, "********** Isola Game **********")
}

func TestPlayFullTurnThenLoss(t *testing.T) {
	// Given: player 2 cornered with one escape cell left at (7,2)
	g := isolatest.Game(`
		+++B+++
		+++++++
		+++++++
		+++++++
		+++++++
		AA+++++
		W++++++
	`, isola.Player1)

	// When: player 1 moves down, then burns the escape cell
	got, winner, output := run(t, g, "\n2\n7\n2\n\n")

	// Then: player 2 cannot move and player 1 wins
	require.Equal(t, isola.Player1, winner)
	assert.Contains(t, output, "Valid move")
	assert.Contains(t, output, "B time to fire an arrow!")
	assert.Contains(t, output, "W is no longer able to move.")

	// Then: the move burned the vacated cell and the arrow burned one more
	require.Equal(t, 4, got.BurnedCells())
	require.Equal(t, isola.Loc{Row: 1, Col: 3}, got.Position(isola.Player1))
	require.Equal(t, 1, got.TurnNumber())
}

func TestPlayRetriesRejectedSteps(t *testing.T) {
	g := isolatest.Game(`
		+++B+++
		+++++++
		+++++++
		+++++++
		+++++++
		AA+++++
		W++++++
	`, isola.Player1)

	// Move up (off-grid) then down; arrow onto player 2, then onto the
	// escape cell.
	_, winner, output := run(t, g, "\n8\n2\n7\n1\n7\n2\n\n")

	require.Equal(t, isola.Player1, winner)
	assert.Contains(t, output, "Invalid move, please try again:")
	assert.Contains(t, output, "That location cannot be destroyed.")
}

func TestReadDirectionRejectsBadInput(t *testing.T) {
	var out bytes.Buffer
	c := &CLI{
		Out: &out,
		In:  bufio.NewReader(strings.NewReader("5\n0\n10\nabc\n2\n")),
	}

	d := c.readDirection(isola.Player1)

	require.Equal(t, isola.Down, d)
	assert.Equal(t, 4, strings.Count(out.String(), "Invalid Input!"))
}

func TestReadCoordinateRejectsOutOfRange(t *testing.T) {
	var out bytes.Buffer
	c := &CLI{
		Out: &out,
		In:  bufio.NewReader(strings.NewReader("0\n8\nx\n3\n")),
	}

	n := c.readCoordinate("Please select a row: ", 7)

	require.Equal(t, 3, n)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid coordinate!"))
}

func TestRenderBoard(t *testing.T) {
	var out bytes.Buffer
	RenderBoard(nil, &out, isola.New().Board())

	want := strings.Join([]string{
		"  1234567",
		"1 +++B+++",
		"2 +++++++",
		"3 +++++++",
		"4 +++++++",
		"5 +++++++",
		"6 +++++++",
		"7 +++W+++",
		"",
	}, "\n")
	require.Equal(t, want, out.String())
}

func TestRenderBoardUnicode(t *testing.T) {
	var out bytes.Buffer
	g := isola.New()
	require.NoError(t, g.Move(isola.Down))
	RenderBoard(&UnicodeGlyphs, &out, g.Board())

	assert.Contains(t, out.String(), "▓")
	assert.Contains(t, out.String(), "●")
	assert.Contains(t, out.String(), "○")
	assert.NotContains(t, out.String(), "+")
}
