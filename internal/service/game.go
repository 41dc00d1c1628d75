package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
	"tntfl-ladder/internal/api"
	"tntfl-ladder/internal/constants"
	"tntfl-ladder/internal/domain"
	"tntfl-ladder/internal/repository"
	"tntfl-ladder/internal/stats"

	"github.com/rs/zerolog"
)

var ErrInvalidGameID = errors.New("invalid game id")

type GameService struct {
	ladder   *api.LadderClient
	gameRepo *repository.GameRepository
	logger   zerolog.Logger
}

func NewGameService(ladder *api.LadderClient, gameRepo *repository.GameRepository, logger zerolog.Logger) *GameService {
	return &GameService{ladder: ladder, gameRepo: gameRepo, logger: logger}
}

// GetGame looks a game up by id, which on the ladder is the game's date.
func (s *GameService) GetGame(ctx context.Context, id string, refresh bool) (*domain.Game, error) {
	date, err := strconv.ParseInt(id, 10, 64)
	if err != nil || date <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGameID, id)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if !refresh {
		game, err := s.gameRepo.Get(ctx, date)
		if err == nil {
			s.logger.Debug().Int64("game", date).Msg("returning cached game")
			return game, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	game, err := s.ladder.GetGame(apiCtx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("game", date).Msg("failed to fetch game")
		return nil, fmt.Errorf("failed to fetch game: %w", err)
	}
	if err := s.gameRepo.Upsert(ctx, game); err != nil {
		s.logger.Error().Err(err).Int64("game", date).Msg("failed to store game")
		return nil, err
	}
	return game, nil
}

type LadderService struct {
	gameRepo *repository.GameRepository
	logger   zerolog.Logger
}

func NewLadderService(gameRepo *repository.GameRepository, logger zerolog.Logger) *LadderService {
	return &LadderService{gameRepo: gameRepo, logger: logger}
}

// Standings replays every stored game and returns the active players at the
// given instant, best first.
func (s *LadderService) Standings(ctx context.Context, at time.Time) ([]stats.Standing, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	games, err := s.gameRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	ladder := stats.NewLadder()
	ladder.Apply(games)
	standings := ladder.Standings(at.Unix())

	s.logger.Debug().
		Int("game_count", len(games)).
		Int("active_players", len(standings)).
		Msg("ladder replayed")
	return standings, nil
}

func (s *LadderService) ActivePlayerCount(ctx context.Context, at time.Time) (int, error) {
	standings, err := s.Standings(ctx, at)
	if err != nil {
		return 0, err
	}
	return len(standings), nil
}
