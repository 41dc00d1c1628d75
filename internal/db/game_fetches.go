package db

import (
	"context"
	"time"
)

const getGamesFetchedAt = `-- name: GetGamesFetchedAt :one
SELECT fetched_at FROM game_fetches
WHERE player_name = ?
`

func (q *Queries) GetGamesFetchedAt(ctx context.Context, playerName string) (time.Time, error) {
	row := q.db.QueryRowContext(ctx, getGamesFetchedAt, playerName)
	var fetched_at time.Time
	err := row.Scan(&fetched_at)
	return fetched_at, err
}

const upsertGamesFetchedAt = `-- name: UpsertGamesFetchedAt :exec
INSERT INTO game_fetches (player_name, fetched_at)
VALUES (?, ?)
ON CONFLICT (player_name) DO UPDATE SET
    fetched_at = excluded.fetched_at
`

type UpsertGamesFetchedAtParams struct {
	PlayerName string
	FetchedAt  time.Time
}

func (q *Queries) UpsertGamesFetchedAt(ctx context.Context, arg UpsertGamesFetchedAtParams) error {
	_, err := q.db.ExecContext(ctx, upsertGamesFetchedAt, arg.PlayerName, arg.FetchedAt)
	return err
}
