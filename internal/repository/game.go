package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"tntfl-ladder/internal/constants"
	"tntfl-ladder/internal/db"
	"tntfl-ladder/internal/domain"

	"github.com/rs/zerolog"
)

type GameRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewGameRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *GameRepository {
	return &GameRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func toDomainGame(row db.Game) domain.Game {
	return domain.Game{
		Date: row.Date,
		Red: domain.Side{
			Name:        row.RedName,
			Score:       int(row.RedScore),
			SkillChange: row.RedSkillChange,
			RankChange:  int(row.RedRankChange),
			NewRank:     int(row.RedNewRank),
		},
		Blue: domain.Side{
			Name:        row.BlueName,
			Score:       int(row.BlueScore),
			SkillChange: row.BlueSkillChange,
			RankChange:  int(row.BlueRankChange),
			NewRank:     int(row.BlueNewRank),
		},
		PositionSwap: row.PositionSwap,
		Deleted:      row.Deleted,
	}
}

func toDomainGames(rows []db.Game) []domain.Game {
	games := make([]domain.Game, len(rows))
	for i, row := range rows {
		games[i] = toDomainGame(row)
	}
	return games
}

func (r *GameRepository) Get(ctx context.Context, date int64) (*domain.Game, error) {
	row, err := r.queries.GetGame(ctx, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("game %d: %w", date, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game %d: %w", date, err)
	}
	g := toDomainGame(row)
	return &g, nil
}

// ListByPlayer returns the player's non-deleted games, oldest first.
func (r *GameRepository) ListByPlayer(ctx context.Context, name string) ([]domain.Game, error) {
	rows, err := r.queries.ListGamesByPlayer(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to list games for %q: %w", name, err)
	}
	return toDomainGames(rows), nil
}

// ListAll returns every stored game including deleted ones, oldest first.
func (r *GameRepository) ListAll(ctx context.Context) ([]domain.Game, error) {
	rows, err := r.queries.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return toDomainGames(rows), nil
}

func (r *GameRepository) HasGames(ctx context.Context, name string) (bool, error) {
	count, err := r.queries.CountGamesByPlayer(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to count games for %q: %w", name, err)
	}
	return count > 0, nil
}

// ShouldRefresh reports whether the player's games were never fetched or
// were fetched longer than ttl ago.
func (r *GameRepository) ShouldRefresh(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	fetchedAt, err := r.queries.GetGamesFetchedAt(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug().Str("player", name).Msg("games never fetched, should refresh")
		return true, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Str("player", name).Msg("failed to get games fetch time")
		return false, err
	}

	timeSince := time.Since(fetchedAt)
	shouldRefresh := timeSince > ttl
	r.logger.Debug().
		Str("player", name).
		Time("fetched_at", fetchedAt).
		Dur("time_since", timeSince).
		Bool("should_refresh", shouldRefresh).
		Msg("checking if games should refresh")
	return shouldRefresh, nil
}

func (r *GameRepository) SetFetchedAt(ctx context.Context, name string, fetchedAt time.Time) error {
	err := r.queries.UpsertGamesFetchedAt(ctx, db.UpsertGamesFetchedAtParams{
		PlayerName: name,
		FetchedAt:  fetchedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to record games fetch for %q: %w", name, err)
	}
	return nil
}

func (r *GameRepository) Upsert(ctx context.Context, game *domain.Game) error {
	return r.queries.UpsertGame(ctx, upsertParams(game, time.Now()))
}

func (r *GameRepository) UpsertBatch(ctx context.Context, games []domain.Game) error {
	if len(games) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now()

	for i := 0; i < len(games); i += constants.DBBatchSize {
		end := min(i+constants.DBBatchSize, len(games))
		for j := range games[i:end] {
			g := &games[i+j]
			if err := qtx.UpsertGame(ctx, upsertParams(g, now)); err != nil {
				return fmt.Errorf("failed to upsert game %d: %w", g.Date, err)
			}
		}
		r.logger.Debug().Int("from", i).Int("to", end).Msg("upserted game batch")
	}

	return tx.Commit()
}

func upsertParams(g *domain.Game, now time.Time) db.UpsertGameParams {
	return db.UpsertGameParams{
		Date:            g.Date,
		RedName:         g.Red.Name,
		RedScore:        int64(g.Red.Score),
		RedSkillChange:  g.Red.SkillChange,
		RedRankChange:   int64(g.Red.RankChange),
		RedNewRank:      int64(g.Red.NewRank),
		BlueName:        g.Blue.Name,
		BlueScore:       int64(g.Blue.Score),
		BlueSkillChange: g.Blue.SkillChange,
		BlueRankChange:  int64(g.Blue.RankChange),
		BlueNewRank:     int64(g.Blue.NewRank),
		PositionSwap:    g.PositionSwap,
		Deleted:         g.Deleted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
