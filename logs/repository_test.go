package logs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	repo, err := Open(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	first := &Game{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Winner:    "B",
		Loser:     "W",
		Turns:     14,
		Burned:    29,
	}
	second := &Game{
		Timestamp: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		Winner:    "W",
		Loser:     "B",
		Turns:     9,
		Burned:    19,
	}
	require.NoError(t, repo.InsertGame(first))
	require.NoError(t, repo.InsertGame(second))

	games, err := repo.RecentGames(10)
	require.NoError(t, err)
	require.Len(t, games, 2)

	// Newest first.
	assert.Equal(t, "W", games[0].Winner)
	assert.Equal(t, "B", games[0].Loser)
	assert.Equal(t, 9, games[0].Turns)
	assert.Equal(t, 19, games[0].Burned)
	assert.True(t, games[0].Timestamp.Equal(second.Timestamp))

	assert.Equal(t, "B", games[1].Winner)
	assert.True(t, games[1].Timestamp.Equal(first.Timestamp))
}

func TestRecentGamesLimit(t *testing.T) {
	repo, err := Open(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.InsertGame(&Game{
			Timestamp: base.Add(time.Duration(i) * time.Hour),
			Winner:    "B",
			Loser:     "W",
			Turns:     i,
		}))
	}

	games, err := repo.RecentGames(2)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, 4, games[0].Turns)
	assert.Equal(t, 3, games[1].Turns)
}

func TestOpenBadPath(t *testing.T) {
	_, err := Open("/nonexistent-dir/games.db")
	require.Error(t, err)
}
