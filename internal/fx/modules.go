package fx

import (
	"database/sql"
	"tntfl-ladder/internal/api"
	"tntfl-ladder/internal/cache"
	"tntfl-ladder/internal/config"
	"tntfl-ladder/internal/database"
	"tntfl-ladder/internal/db"
	"tntfl-ladder/internal/logger"
	"tntfl-ladder/internal/repository"
	"tntfl-ladder/internal/server"
	"tntfl-ladder/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	logger.Module,
	config.Module,
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewGameRepository),
	fx.Provide(repository.NewSkillHistoryRepository),
	// api client
	fx.Provide(api.NewLadderClient),
	// cache
	fx.Provide(cache.New),
	// svc
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewGameService),
	fx.Provide(service.NewLadderService),
	fx.Provide(service.NewStatsService),
	// server
	fx.Provide(server.NewServer),
)
