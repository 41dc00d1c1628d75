package db

import (
	"context"
	"time"
)

const getPlayer = `-- name: GetPlayer :one
SELECT name, rank, skill, active, games, wins, losses, goals_for, goals_against, games_today, games_as_red, last_fetch_at, created_at, updated_at FROM players
WHERE name = ?
`

func (q *Queries) GetPlayer(ctx context.Context, name string) (Player, error) {
	row := q.db.QueryRowContext(ctx, getPlayer, name)
	var i Player
	err := row.Scan(
		&i.Name,
		&i.Rank,
		&i.Skill,
		&i.Active,
		&i.Games,
		&i.Wins,
		&i.Losses,
		&i.GoalsFor,
		&i.GoalsAgainst,
		&i.GamesToday,
		&i.GamesAsRed,
		&i.LastFetchAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getPlayerLastFetchAt = `-- name: GetPlayerLastFetchAt :one
SELECT last_fetch_at FROM players
WHERE name = ?
`

func (q *Queries) GetPlayerLastFetchAt(ctx context.Context, name string) (time.Time, error) {
	row := q.db.QueryRowContext(ctx, getPlayerLastFetchAt, name)
	var last_fetch_at time.Time
	err := row.Scan(&last_fetch_at)
	return last_fetch_at, err
}

const upsertPlayer = `-- name: UpsertPlayer :exec
INSERT INTO players (
    name, rank, skill, active, games, wins, losses, goals_for, goals_against,
    games_today, games_as_red, last_fetch_at, created_at, updated_at
) VALUES (
    ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
)
ON CONFLICT (name) DO UPDATE SET
    rank = excluded.rank,
    skill = excluded.skill,
    active = excluded.active,
    games = excluded.games,
    wins = excluded.wins,
    losses = excluded.losses,
    goals_for = excluded.goals_for,
    goals_against = excluded.goals_against,
    games_today = excluded.games_today,
    games_as_red = excluded.games_as_red,
    last_fetch_at = excluded.last_fetch_at,
    updated_at = excluded.updated_at
`

type UpsertPlayerParams struct {
	Name         string
	Rank         int64
	Skill        float64
	Active       bool
	Games        int64
	Wins         int64
	Losses       int64
	GoalsFor     int64
	GoalsAgainst int64
	GamesToday   int64
	GamesAsRed   int64
	LastFetchAt  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (q *Queries) UpsertPlayer(ctx context.Context, arg UpsertPlayerParams) error {
	_, err := q.db.ExecContext(ctx, upsertPlayer,
		arg.Name,
		arg.Rank,
		arg.Skill,
		arg.Active,
		arg.Games,
		arg.Wins,
		arg.Losses,
		arg.GoalsFor,
		arg.GoalsAgainst,
		arg.GamesToday,
		arg.GamesAsRed,
		arg.LastFetchAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}
