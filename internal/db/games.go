package db

import (
	"context"
	"time"
)

const gameColumns = `date, red_name, red_score, red_skill_change, red_rank_change, red_new_rank, blue_name, blue_score, blue_skill_change, blue_rank_change, blue_new_rank, position_swap, deleted, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGame(row rowScanner) (Game, error) {
	var i Game
	err := row.Scan(
		&i.Date,
		&i.RedName,
		&i.RedScore,
		&i.RedSkillChange,
		&i.RedRankChange,
		&i.RedNewRank,
		&i.BlueName,
		&i.BlueScore,
		&i.BlueSkillChange,
		&i.BlueRankChange,
		&i.BlueNewRank,
		&i.PositionSwap,
		&i.Deleted,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getGame = `-- name: GetGame :one
SELECT ` + gameColumns + ` FROM games
WHERE date = ?
`

func (q *Queries) GetGame(ctx context.Context, date int64) (Game, error) {
	return scanGame(q.db.QueryRowContext(ctx, getGame, date))
}

const listGamesByPlayer = `-- name: ListGamesByPlayer :many
SELECT ` + gameColumns + ` FROM games
WHERE (red_name = ? OR blue_name = ?) AND deleted = FALSE
ORDER BY date ASC
`

func (q *Queries) ListGamesByPlayer(ctx context.Context, name string) ([]Game, error) {
	rows, err := q.db.QueryContext(ctx, listGamesByPlayer, name, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Game
	for rows.Next() {
		i, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listGames = `-- name: ListGames :many
SELECT ` + gameColumns + ` FROM games
ORDER BY date ASC
`

func (q *Queries) ListGames(ctx context.Context) ([]Game, error) {
	rows, err := q.db.QueryContext(ctx, listGames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Game
	for rows.Next() {
		i, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countGamesByPlayer = `-- name: CountGamesByPlayer :one
SELECT COUNT(*) FROM games
WHERE (red_name = ? OR blue_name = ?) AND deleted = FALSE
`

func (q *Queries) CountGamesByPlayer(ctx context.Context, name string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countGamesByPlayer, name, name)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const upsertGame = `-- name: UpsertGame :exec
INSERT INTO games (
    date, red_name, red_score, red_skill_change, red_rank_change, red_new_rank,
    blue_name, blue_score, blue_skill_change, blue_rank_change, blue_new_rank,
    position_swap, deleted, created_at, updated_at
) VALUES (
    ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
)
ON CONFLICT (date) DO UPDATE SET
    red_name = excluded.red_name,
    red_score = excluded.red_score,
    red_skill_change = excluded.red_skill_change,
    red_rank_change = excluded.red_rank_change,
    red_new_rank = excluded.red_new_rank,
    blue_name = excluded.blue_name,
    blue_score = excluded.blue_score,
    blue_skill_change = excluded.blue_skill_change,
    blue_rank_change = excluded.blue_rank_change,
    blue_new_rank = excluded.blue_new_rank,
    position_swap = excluded.position_swap,
    deleted = excluded.deleted,
    updated_at = excluded.updated_at
`

type UpsertGameParams struct {
	Date            int64
	RedName         string
	RedScore        int64
	RedSkillChange  float64
	RedRankChange   int64
	RedNewRank      int64
	BlueName        string
	BlueScore       int64
	BlueSkillChange float64
	BlueRankChange  int64
	BlueNewRank     int64
	PositionSwap    bool
	Deleted         bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (q *Queries) UpsertGame(ctx context.Context, arg UpsertGameParams) error {
	_, err := q.db.ExecContext(ctx, upsertGame,
		arg.Date,
		arg.RedName,
		arg.RedScore,
		arg.RedSkillChange,
		arg.RedRankChange,
		arg.RedNewRank,
		arg.BlueName,
		arg.BlueScore,
		arg.BlueSkillChange,
		arg.BlueRankChange,
		arg.BlueNewRank,
		arg.PositionSwap,
		arg.Deleted,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}
