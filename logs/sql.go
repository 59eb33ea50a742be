package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id integer primary key autoincrement,
  time datetime,
  winner varchar,
  loser varchar,
  turns int,
  burned int
)`

const insertStmt = `
INSERT INTO games (time, winner, loser, turns, burned)
VALUES (?,?,?,?,?)
`

const selectRecent = `
SELECT id, time, winner, loser, turns, burned
FROM games
ORDER BY time DESC, id DESC
LIMIT ?
`
