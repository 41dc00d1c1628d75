package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"tntfl-ladder/internal/db"
	"tntfl-ladder/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type SkillHistoryRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewSkillHistoryRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *SkillHistoryRepository {
	return &SkillHistoryRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// ReplaceForPlayer swaps the player's stored skill line for records in one
// transaction. The {0, 0} baseline is not stored.
func (r *SkillHistoryRepository) ReplaceForPlayer(ctx context.Context, name string, records []domain.SkillHistory) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	if err := qtx.DeleteSkillHistoryByPlayer(ctx, name); err != nil {
		return fmt.Errorf("failed to clear skill history: %w", err)
	}

	now := time.Now()
	for _, record := range records {
		id := record.ID
		if id == "" {
			id, err = gonanoid.New()
			if err != nil {
				return fmt.Errorf("failed to generate nanoid: %w", err)
			}
		}
		createdAt := record.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}

		err := qtx.InsertSkillHistory(ctx, db.InsertSkillHistoryParams{
			ID:          id,
			PlayerName:  name,
			GameDate:    record.GameDate,
			Skill:       record.Skill,
			SkillChange: record.SkillChange,
			CreatedAt:   createdAt,
		})
		if err != nil {
			return fmt.Errorf("failed to insert skill history: %w", err)
		}
	}

	return tx.Commit()
}

func (r *SkillHistoryRepository) GetByPlayer(ctx context.Context, name string) ([]domain.SkillHistory, error) {
	records, err := r.queries.GetSkillHistoryByPlayer(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get skill history for %q: %w", name, err)
	}

	result := make([]domain.SkillHistory, len(records))
	for i, rec := range records {
		result[i] = domain.SkillHistory{
			ID:          rec.ID,
			PlayerName:  rec.PlayerName,
			GameDate:    rec.GameDate,
			Skill:       rec.Skill,
			SkillChange: rec.SkillChange,
			CreatedAt:   rec.CreatedAt,
		}
	}
	return result, nil
}
