package db

import (
	"context"
	"time"
)

const deleteSkillHistoryByPlayer = `-- name: DeleteSkillHistoryByPlayer :exec
DELETE FROM skill_history
WHERE player_name = ?
`

func (q *Queries) DeleteSkillHistoryByPlayer(ctx context.Context, playerName string) error {
	_, err := q.db.ExecContext(ctx, deleteSkillHistoryByPlayer, playerName)
	return err
}

const insertSkillHistory = `-- name: InsertSkillHistory :exec
INSERT INTO skill_history (id, player_name, game_date, skill, skill_change, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`

type InsertSkillHistoryParams struct {
	ID          string
	PlayerName  string
	GameDate    int64
	Skill       float64
	SkillChange float64
	CreatedAt   time.Time
}

func (q *Queries) InsertSkillHistory(ctx context.Context, arg InsertSkillHistoryParams) error {
	_, err := q.db.ExecContext(ctx, insertSkillHistory,
		arg.ID,
		arg.PlayerName,
		arg.GameDate,
		arg.Skill,
		arg.SkillChange,
		arg.CreatedAt,
	)
	return err
}

const getSkillHistoryByPlayer = `-- name: GetSkillHistoryByPlayer :many
SELECT id, player_name, game_date, skill, skill_change, created_at FROM skill_history
WHERE player_name = ?
ORDER BY game_date ASC
`

func (q *Queries) GetSkillHistoryByPlayer(ctx context.Context, playerName string) ([]SkillHistory, error) {
	rows, err := q.db.QueryContext(ctx, getSkillHistoryByPlayer, playerName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SkillHistory
	for rows.Next() {
		var i SkillHistory
		if err := rows.Scan(
			&i.ID,
			&i.PlayerName,
			&i.GameDate,
			&i.Skill,
			&i.SkillChange,
			&i.CreatedAt,
		); err != nil {
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
