package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tntfl-ladder/internal/api"
	"tntfl-ladder/internal/constants"
	"tntfl-ladder/internal/domain"
	"tntfl-ladder/internal/repository"
	"tntfl-ladder/internal/stats"

	"github.com/rs/zerolog"
)

type PlayerService struct {
	ladder      *api.LadderClient
	playerRepo  *repository.PlayerRepository
	gameRepo    *repository.GameRepository
	historyRepo *repository.SkillHistoryRepository
	logger      zerolog.Logger
}

func NewPlayerService(ladder *api.LadderClient, playerRepo *repository.PlayerRepository, gameRepo *repository.GameRepository, historyRepo *repository.SkillHistoryRepository, logger zerolog.Logger) *PlayerService {
	return &PlayerService{ladder: ladder, playerRepo: playerRepo, gameRepo: gameRepo, historyRepo: historyRepo, logger: logger}
}

func (s *PlayerService) GetPlayer(ctx context.Context, name string, refresh bool) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Str("player", name).Bool("refresh", refresh).Msg("getting player")

	if !refresh {
		stale, err := s.playerRepo.ShouldRefresh(ctx, name, constants.PlayerRefreshTTL)
		if err != nil {
			return nil, err
		}
		if !stale {
			player, err := s.playerRepo.Get(ctx, name)
			if err == nil {
				s.logger.Debug().Str("player", name).Msg("returning cached player")
				return player, nil
			}
			s.logger.Warn().Err(err).Str("player", name).Msg("cached player unreadable, fetching")
		}
	}

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	player, err := s.ladder.GetPlayer(apiCtx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("player", name).Msg("failed to fetch player")
		if cached, cacheErr := s.playerRepo.Get(ctx, name); cacheErr == nil {
			s.logger.Warn().Str("player", name).Msg("serving stale player after fetch failure")
			return cached, nil
		}
		return nil, fmt.Errorf("failed to fetch player: %w", err)
	}

	player.LastFetchAt = time.Now()
	if err := s.playerRepo.Upsert(ctx, player); err != nil {
		s.logger.Error().Err(err).Str("player", name).Msg("failed to upsert player")
		return nil, err
	}

	s.logger.Info().Str("player", name).Int("rank", player.Rank).Msg("player fetched successfully")
	return player, nil
}

// GetGames returns the player's games oldest first, from the store when it
// is fresh and from the ladder otherwise.
func (s *PlayerService) GetGames(ctx context.Context, name string, refresh bool) ([]domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if !refresh {
		hasGames, err := s.gameRepo.HasGames(ctx, name)
		if err != nil {
			return nil, err
		}
		stale, err := s.gameRepo.ShouldRefresh(ctx, name, constants.GamesRefreshTTL)
		if err != nil {
			return nil, err
		}
		s.logger.Debug().
			Str("player", name).
			Bool("has_games", hasGames).
			Bool("stale", stale).
			Msg("refresh decision for games")
		if hasGames && !stale {
			return s.gameRepo.ListByPlayer(ctx, name)
		}
	}

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	games, err := s.ladder.GetPlayerGames(apiCtx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("player", name).Msg("failed to fetch games")
		return nil, fmt.Errorf("failed to fetch games: %w", err)
	}

	if err := s.gameRepo.UpsertBatch(ctx, games); err != nil {
		s.logger.Error().Err(err).Str("player", name).Msg("failed to store games")
		return nil, err
	}
	if err := s.gameRepo.SetFetchedAt(ctx, name, time.Now()); err != nil {
		s.logger.Warn().Err(err).Str("player", name).Msg("failed to record games fetch")
	}

	stored, err := s.gameRepo.ListByPlayer(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.rebuildSkillHistory(ctx, name, stored); err != nil {
		s.logger.Warn().Err(err).Str("player", name).Msg("failed to rebuild skill history")
	}

	s.logger.Info().Str("player", name).Int("game_count", len(stored)).Msg("games fetched successfully")
	return stored, nil
}

func (s *PlayerService) rebuildSkillHistory(ctx context.Context, name string, games []domain.Game) error {
	line := stats.SkillLine(name, games)[1:]
	records := make([]domain.SkillHistory, len(line))
	for i, rec := range line {
		records[i] = domain.SkillHistory{
			PlayerName:  name,
			GameDate:    rec.Date,
			Skill:       rec.Skill,
			SkillChange: stats.SkillChange(name, games[i]),
		}
	}
	return s.historyRepo.ReplaceForPlayer(ctx, name, records)
}

func (s *PlayerService) SkillHistory(ctx context.Context, name string, refresh bool) ([]domain.SkillHistory, error) {
	if _, err := s.GetGames(ctx, name, refresh); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.historyRepo.GetByPlayer(ctx, name)
}

// IsNotFound reports whether err means the player or game does not exist,
// either locally or on the ladder.
func IsNotFound(err error) bool {
	if errors.Is(err, repository.ErrNotFound) {
		return true
	}
	var statusErr *api.StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == 404
}
