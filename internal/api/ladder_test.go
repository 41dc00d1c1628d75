package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tntfl-ladder/internal/config"
)

const gameJSON = `{"date":1500000000,"red":{"name":"alice","score":10,"skillChange":3.25,"rankChange":1,"newRank":4},"blue":{"name":"bob","score":4,"skillChange":-3.25,"rankChange":-2,"newRank":7},"positionSwap":false}`

const playerJSON = `{"name":"alice","rank":4,"active":true,"skill":21.125,"total":{"games":30,"wins":18,"losses":10,"for":240,"against":200,"gamesToday":1,"gamesAsRed":17}}`

const gamesJSON = `[` + gameJSON + `,{"date":1500000100,"red":{"name":"carol","score":10,"skillChange":1},"blue":{"name":"alice","score":10,"skillChange":-1}}]`

func newFakeLadder(t *testing.T) (*LadderClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("view") != "json" {
			http.Error(w, "json only", http.StatusBadRequest)
			return
		}
		switch {
		case r.URL.Path == "/game.cgi" && q.Get("game") == "1500000000":
			w.Write([]byte(gameJSON))
		case r.URL.Path == "/player.cgi" && q.Get("method") == "view" && q.Get("player") == "alice":
			w.Write([]byte(playerJSON))
		case r.URL.Path == "/player.cgi" && q.Get("method") == "games" && q.Get("player") == "alice":
			w.Write([]byte(gamesJSON))
		case r.URL.Path == "/player.cgi" && q.Get("player") == "broken":
			w.Write([]byte(`{"name":`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return NewLadderClient(&config.Config{LadderURL: srv.URL + "/"}), srv
}

func TestGetGame(t *testing.T) {
	client, _ := newFakeLadder(t)
	g, err := client.GetGame(context.Background(), "1500000000")
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if g.Date != 1500000000 || g.Red.Name != "alice" || g.Red.SkillChange != 3.25 || g.Blue.NewRank != 7 {
		t.Fatalf("unexpected game %+v", g)
	}
}

func TestGetPlayerAndGames(t *testing.T) {
	client, _ := newFakeLadder(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, err := client.GetPlayer(ctx, "alice")
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if p.Rank != 4 || p.Skill != 21.125 || p.Total.For != 240 || p.Total.GamesAsRed != 17 {
		t.Fatalf("unexpected player %+v", p)
	}

	games, err := client.GetPlayerGames(ctx, "alice")
	if err != nil {
		t.Fatalf("get games: %v", err)
	}
	if len(games) != 2 || games[1].Blue.Name != "alice" {
		t.Fatalf("unexpected games %+v", games)
	}
}

func TestStatusError(t *testing.T) {
	client, _ := newFakeLadder(t)
	_, err := client.GetPlayer(context.Background(), "nobody")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", statusErr.StatusCode)
	}
}

func TestDecodeError(t *testing.T) {
	client, _ := newFakeLadder(t)
	if _, err := client.GetPlayer(context.Background(), "broken"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestURLsEscapeNames(t *testing.T) {
	client := NewLadderClient(&config.Config{LadderURL: "http://www/~tlr/tntfl/"})
	want := "http://www/~tlr/tntfl/player.cgi?method=view&view=json&player=a+b%26c"
	if got := client.PlayerURL("a b&c"); got != want {
		t.Fatalf("PlayerURL = %q, want %q", got, want)
	}
}
