package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	"tntfl-ladder/internal/cache"
	"tntfl-ladder/internal/config"
	"tntfl-ladder/internal/constants"
	"tntfl-ladder/internal/domain"
	"tntfl-ladder/internal/stats"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type StatsService struct {
	players  *PlayerService
	ladder   *LadderService
	cache    cache.Cache
	cacheTTL time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

func NewStatsService(players *PlayerService, ladder *LadderService, c cache.Cache, cfg *config.Config, logger zerolog.Logger) *StatsService {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = constants.StatsCacheTTL
	}
	return &StatsService{
		players:  players,
		ladder:   ladder,
		cache:    c,
		cacheTTL: ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// PlayerStats builds the player page summary. Cached summaries are served
// unless refresh is set.
func (s *StatsService) PlayerStats(ctx context.Context, name string, refresh bool) (*stats.Summary, error) {
	key := cache.StatsKey(name)
	if !refresh {
		if summary, ok := s.cached(ctx, key); ok {
			return summary, nil
		}
	}

	var (
		player *domain.Player
		games  []domain.Game
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		player, err = s.players.GetPlayer(gctx, name, refresh)
		return err
	})
	g.Go(func() error {
		var err error
		games, err = s.players.GetGames(gctx, name, refresh)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	numActive, err := s.ladder.ActivePlayerCount(ctx, now)
	if err != nil {
		return nil, err
	}

	summary := stats.Summarize(*player, games, numActive, now)

	if data, err := json.Marshal(summary); err != nil {
		s.logger.Warn().Err(err).Str("player", name).Msg("failed to encode summary for cache")
	} else if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to cache summary")
	}

	s.logger.Info().
		Str("player", name).
		Int("game_count", len(games)).
		Int("active_players", numActive).
		Msg("player stats computed")
	return &summary, nil
}

func (s *StatsService) cached(ctx context.Context, key string) (*stats.Summary, bool) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return nil, false
	}
	var summary stats.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("dropping undecodable cache entry")
		_ = s.cache.Delete(ctx, key)
		return nil, false
	}
	s.logger.Debug().Str("key", key).Msg("stats cache hit")
	return &summary, true
}

// HeadToHead sums up the games a player shared with one opponent.
type HeadToHead struct {
	Player       string        `json:"player"`
	Opponent     string        `json:"opponent"`
	Games        int           `json:"games"`
	Wins         int           `json:"wins"`
	Losses       int           `json:"losses"`
	Draws        int           `json:"draws"`
	GoalsFor     int           `json:"goalsFor"`
	GoalsAgainst int           `json:"goalsAgainst"`
	SkillChange  float64       `json:"skillChange"`
	History      []domain.Game `json:"history"`
}

func (s *StatsService) HeadToHead(ctx context.Context, name, opponent string, refresh bool) (*HeadToHead, error) {
	games, err := s.players.GetGames(ctx, name, refresh)
	if err != nil {
		return nil, err
	}
	shared := stats.SharedGames(opponent, games)

	h := &HeadToHead{Player: name, Opponent: opponent, Games: len(shared), History: shared}
	for _, g := range shared {
		own, opp := g.SideOf(name)
		h.GoalsFor += own.Score
		h.GoalsAgainst += opp.Score
		h.SkillChange += own.SkillChange
		switch stats.OutcomeFor(name, g) {
		case stats.Win:
			h.Wins++
		case stats.Loss:
			h.Losses++
		default:
			h.Draws++
		}
	}
	return h, nil
}
