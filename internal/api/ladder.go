package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
	"tntfl-ladder/internal/config"
	"tntfl-ladder/internal/domain"

	"github.com/valyala/fasthttp"
)

// StatusError is returned when the ladder answers with anything but 200.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ladder API error: %d from %s", e.StatusCode, e.URL)
}

// LadderClient reads games and players from the ladder's JSON views.
type LadderClient struct {
	root   string
	client *fasthttp.Client
}

func NewLadderClient(cfg *config.Config) *LadderClient {
	return &LadderClient{
		root: cfg.LadderURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *LadderClient) GameURL(gameID string) string {
	return fmt.Sprintf("%sgame.cgi?method=view&view=json&game=%s", c.root, url.QueryEscape(gameID))
}

func (c *LadderClient) PlayerURL(name string) string {
	return fmt.Sprintf("%splayer.cgi?method=view&view=json&player=%s", c.root, url.QueryEscape(name))
}

func (c *LadderClient) PlayerGamesURL(name string) string {
	return fmt.Sprintf("%splayer.cgi?method=games&view=json&player=%s", c.root, url.QueryEscape(name))
}

func (c *LadderClient) GetGame(ctx context.Context, gameID string) (*domain.Game, error) {
	return doRequest[domain.Game](ctx, c, c.GameURL(gameID))
}

func (c *LadderClient) GetPlayer(ctx context.Context, name string) (*domain.Player, error) {
	return doRequest[domain.Player](ctx, c, c.PlayerURL(name))
}

// GetPlayerGames returns the player's games in the order the ladder lists
// them, which is oldest first.
func (c *LadderClient) GetPlayerGames(ctx context.Context, name string) ([]domain.Game, error) {
	games, err := doRequest[[]domain.Game](ctx, c, c.PlayerGamesURL(name))
	if err != nil {
		return nil, err
	}
	return *games, nil
}

func doRequest[T any](ctx context.Context, client *LadderClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("request %s: %w", url, err)
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, fmt.Errorf("request %s: %w", url, err)
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode()}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return &result, nil
}
