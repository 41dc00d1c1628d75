package server

import (
	"net/http"
	"tntfl-ladder/internal/config"
	"tntfl-ladder/internal/middleware"
	"tntfl-ladder/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type Server struct {
	handler *Handler
	logger  zerolog.Logger
}

func NewServer(cfg *config.Config, logger zerolog.Logger, playerSvc *service.PlayerService, statsSvc *service.StatsService, gameSvc *service.GameService, ladderSvc *service.LadderService) *Server {
	return &Server{
		handler: NewHandler(playerSvc, statsSvc, gameSvc, ladderSvc, cfg.BasePath),
		logger:  logger,
	}
}

// Router wires every route. It carries panic recovery but no request
// logging or CORS; Handler adds those.
func (s *Server) Router() *mux.Router {
	return NewRouter(s.handler)
}

func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return middleware.RequestID(s.logger)(c.Handler(s.Router()))
}

func NewRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Recovery)

	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	// Pages
	router.HandleFunc("/player/{name}", h.PlayerPage).Methods(http.MethodGet)
	router.HandleFunc("/game/{id}", h.GamePage).Methods(http.MethodGet)
	router.HandleFunc("/game", h.GamePage).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Players
	api.HandleFunc("/players/{name}", h.GetPlayer).Methods(http.MethodGet)
	api.HandleFunc("/players/{name}/games", h.GetPlayerGames).Methods(http.MethodGet)
	api.HandleFunc("/players/{name}/stats", h.GetPlayerStats).Methods(http.MethodGet)
	api.HandleFunc("/players/{name}/skill-history", h.GetSkillHistory).Methods(http.MethodGet)
	api.HandleFunc("/players/{name}/versus/{opponent}", h.GetHeadToHead).Methods(http.MethodGet)

	// Games
	api.HandleFunc("/games/{id}", h.GetGame).Methods(http.MethodGet)

	// Ladder
	api.HandleFunc("/ladder", h.GetLadder).Methods(http.MethodGet)

	return router
}
