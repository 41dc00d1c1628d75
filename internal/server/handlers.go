package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"
	"tntfl-ladder/internal/domain"
	"tntfl-ladder/internal/middleware"
	"tntfl-ladder/internal/render"
	"tntfl-ladder/internal/service"
	"tntfl-ladder/internal/stats"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type PlayerProvider interface {
	GetPlayer(ctx context.Context, name string, refresh bool) (*domain.Player, error)
	GetGames(ctx context.Context, name string, refresh bool) ([]domain.Game, error)
	SkillHistory(ctx context.Context, name string, refresh bool) ([]domain.SkillHistory, error)
}

type StatsProvider interface {
	PlayerStats(ctx context.Context, name string, refresh bool) (*stats.Summary, error)
	HeadToHead(ctx context.Context, name, opponent string, refresh bool) (*service.HeadToHead, error)
}

type GameProvider interface {
	GetGame(ctx context.Context, id string, refresh bool) (*domain.Game, error)
}

type StandingsProvider interface {
	Standings(ctx context.Context, at time.Time) ([]stats.Standing, error)
}

type Handler struct {
	players PlayerProvider
	stats   StatsProvider
	games   GameProvider
	ladder  StandingsProvider
	base    string
}

func NewHandler(players PlayerProvider, statsSvc StatsProvider, games GameProvider, ladder StandingsProvider, base string) *Handler {
	if base == "" {
		base = "/"
	}
	return &Handler{players: players, stats: statsSvc, games: games, ladder: ladder, base: base}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := h.players.GetPlayer(r.Context(), mux.Vars(r)["name"], wantsRefresh(r))
	if err != nil {
		respondServiceError(w, r, "Failed to fetch player", err)
		return
	}
	respondJSON(w, http.StatusOK, player)
}

func (h *Handler) GetPlayerGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.players.GetGames(r.Context(), mux.Vars(r)["name"], wantsRefresh(r))
	if err != nil {
		respondServiceError(w, r, "Failed to fetch games", err)
		return
	}
	respondJSON(w, http.StatusOK, games)
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.PlayerStats(r.Context(), mux.Vars(r)["name"], wantsRefresh(r))
	if err != nil {
		respondServiceError(w, r, "Failed to compute player stats", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) GetSkillHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.players.SkillHistory(r.Context(), mux.Vars(r)["name"], wantsRefresh(r))
	if err != nil {
		respondServiceError(w, r, "Failed to fetch skill history", err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}

func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	record, err := h.stats.HeadToHead(r.Context(), vars["name"], vars["opponent"], wantsRefresh(r))
	if err != nil {
		respondServiceError(w, r, "Failed to fetch head to head", err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.games.GetGame(r.Context(), mux.Vars(r)["id"], wantsRefresh(r))
	if err != nil {
		respondServiceError(w, r, "Failed to fetch game", err)
		return
	}
	respondJSON(w, http.StatusOK, game)
}

// GetLadder replays stored games; ?at=<unix seconds> picks the instant.
func (h *Handler) GetLadder(w http.ResponseWriter, r *http.Request) {
	at := time.Now()
	if raw := r.URL.Query().Get("at"); raw != "" {
		secs, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, "Invalid 'at' parameter", err)
			return
		}
		at = time.Unix(secs, 0)
	}
	standings, err := h.ladder.Standings(r.Context(), at)
	if err != nil {
		respondServiceError(w, r, "Failed to build ladder", err)
		return
	}
	respondJSON(w, http.StatusOK, standings)
}

func (h *Handler) PlayerPage(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.PlayerStats(r.Context(), mux.Vars(r)["name"], wantsRefresh(r))
	if err != nil {
		respondServiceError(w, r, "Failed to compute player stats", err)
		return
	}
	h.writePage(w, r, render.PlayerPage(*summary, h.base))
}

// GamePage serves both /game/{id} and /game?game={id}.
func (h *Handler) GamePage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		id = r.URL.Query().Get("game")
	}
	if id == "" {
		respondError(w, r, http.StatusBadRequest, "Missing query parameter 'game'", nil)
		return
	}
	game, err := h.games.GetGame(r.Context(), id, wantsRefresh(r))
	if err != nil {
		respondServiceError(w, r, "Failed to fetch game", err)
		return
	}
	h.writePage(w, r, render.GamePage(*game, h.base))
}

func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, page render.Page) {
	var err error
	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		err = render.WriteText(w, page)
	} else {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = render.WriteHTML(w, page)
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("page", page.Title).Msg("failed to render page")
	}
}

func wantsRefresh(r *http.Request) bool {
	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))
	return refresh
}

func respondServiceError(w http.ResponseWriter, r *http.Request, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidGameID):
		status = http.StatusBadRequest
	case service.IsNotFound(err):
		status = http.StatusNotFound
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Int("status", status).Msg(message)
	respondError(w, r, status, message, err)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	if id := middleware.GetRequestID(r.Context()); id != "" {
		response["request_id"] = id
	}
	respondJSON(w, status, response)
}
