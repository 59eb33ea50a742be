package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

type Repository struct {
	db *sqlx.DB

	insert *sqlx.Stmt
}

// Game is one finished game's result row.
type Game struct {
	ID        int64     `db:"id"`
	Timestamp time.Time `db:"time"`
	Winner    string    `db:"winner"`
	Loser     string    `db:"loser"`
	Turns     int       `db:"turns"`
	Burned    int       `db:"burned"`
}

func Open(db string) (*Repository, error) {
	sql, err := sqlx.Open("sqlite3", db)
	if err != nil {
		return nil, err
	}
	// sqlite allows one writer; a single connection also keeps every
	// statement on the same database when db is ":memory:".
	sql.SetMaxOpenConns(1)
	_, err = sql.Exec(createGameTable)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create game table: %v", err)
	}

	repo := &Repository{db: sql}
	repo.insert, err = sql.Preparex(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %v", err)
	}
	return repo, nil
}

func (r *Repository) InsertGame(g *Game) error {
	_, err := r.insert.Exec(
		g.Timestamp, g.Winner, g.Loser,
		g.Turns, g.Burned,
	)
	return err
}

// RecentGames returns up to limit results, newest first.
func (r *Repository) RecentGames(limit int) ([]Game, error) {
	cur, err := r.db.Queryx(selectRecent, limit)
	if err != nil {
		return nil, err
	}
	defer cur.Close()
	var games []Game
	for cur.Next() {
		var g Game
		if err := cur.StructScan(&g); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, cur.Err()
}

func (r *Repository) Close() {
	r.db.Close()
}
