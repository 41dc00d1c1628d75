package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"tntfl-ladder/internal/db"
	"tntfl-ladder/internal/domain"

	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("not found")

type PlayerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *PlayerRepository) Get(ctx context.Context, name string) (*domain.Player, error) {
	player, err := r.queries.GetPlayer(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("player %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player %q: %w", name, err)
	}

	return &domain.Player{
		Name:   player.Name,
		Rank:   int(player.Rank),
		Skill:  player.Skill,
		Active: player.Active,
		Total: domain.Totals{
			Games:      int(player.Games),
			Wins:       int(player.Wins),
			Losses:     int(player.Losses),
			For:        int(player.GoalsFor),
			Against:    int(player.GoalsAgainst),
			GamesToday: int(player.GamesToday),
			GamesAsRed: int(player.GamesAsRed),
		},
		LastFetchAt: player.LastFetchAt,
		CreatedAt:   player.CreatedAt,
		UpdatedAt:   player.UpdatedAt,
	}, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, player *domain.Player) error {
	now := time.Now()
	createdAt := player.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	lastFetchAt := player.LastFetchAt
	if lastFetchAt.IsZero() {
		lastFetchAt = now
	}
	err := r.queries.UpsertPlayer(ctx, db.UpsertPlayerParams{
		Name:         player.Name,
		Rank:         int64(player.Rank),
		Skill:        player.Skill,
		Active:       player.Active,
		Games:        int64(player.Total.Games),
		Wins:         int64(player.Total.Wins),
		Losses:       int64(player.Total.Losses),
		GoalsFor:     int64(player.Total.For),
		GoalsAgainst: int64(player.Total.Against),
		GamesToday:   int64(player.Total.GamesToday),
		GamesAsRed:   int64(player.Total.GamesAsRed),
		LastFetchAt:  lastFetchAt,
		CreatedAt:    createdAt,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert player %q: %w", player.Name, err)
	}
	return nil
}

// ShouldRefresh reports whether the cached player is missing or older than ttl.
func (r *PlayerRepository) ShouldRefresh(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	lastFetchAt, err := r.queries.GetPlayerLastFetchAt(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug().Str("player", name).Msg("player not found, should refresh")
		return true, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Str("player", name).Msg("failed to get player")
		return false, err
	}

	timeSince := time.Since(lastFetchAt)
	shouldRefresh := timeSince > ttl
	r.logger.Debug().
		Str("player", name).
		Time("last_fetch_at", lastFetchAt).
		Dur("time_since", timeSince).
		Dur("ttl", ttl).
		Bool("should_refresh", shouldRefresh).
		Msg("checking if player should refresh")

	return shouldRefresh, nil
}
