package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"tntfl-ladder/internal/database"
	"tntfl-ladder/internal/db"
	"tntfl-ladder/internal/domain"

	"github.com/rs/zerolog"
)

func openTestDB(t *testing.T) (*sql.DB, *db.Queries) {
	t.Helper()
	sqlDB, err := database.Open(filepath.Join(t.TempDir(), "tntfl.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return sqlDB, db.New(sqlDB)
}

func TestPlayerRepository(t *testing.T) {
	sqlDB, queries := openTestDB(t)
	repo := NewPlayerRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	if _, err := repo.Get(ctx, "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	refresh, err := repo.ShouldRefresh(ctx, "alice", time.Hour)
	if err != nil {
		t.Fatalf("should refresh: %v", err)
	}
	if !refresh {
		t.Fatalf("missing player must be refreshed")
	}

	player := &domain.Player{
		Name:   "alice",
		Rank:   3,
		Skill:  12.5,
		Active: true,
		Total:  domain.Totals{Games: 20, Wins: 12, Losses: 7, For: 150, Against: 120, GamesToday: 2, GamesAsRed: 11},
	}
	if err := repo.Upsert(ctx, player); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Rank != 3 || got.Skill != 12.5 || !got.Active || got.Total != player.Total {
		t.Fatalf("unexpected player %+v", got)
	}

	refresh, err = repo.ShouldRefresh(ctx, "alice", time.Hour)
	if err != nil {
		t.Fatalf("should refresh: %v", err)
	}
	if refresh {
		t.Fatalf("freshly stored player must not be refreshed")
	}

	player.LastFetchAt = time.Now().Add(-2 * time.Hour)
	if err := repo.Upsert(ctx, player); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	refresh, err = repo.ShouldRefresh(ctx, "alice", time.Hour)
	if err != nil {
		t.Fatalf("should refresh: %v", err)
	}
	if !refresh {
		t.Fatalf("stale player must be refreshed")
	}
}

func TestGameRepository(t *testing.T) {
	sqlDB, queries := openTestDB(t)
	repo := NewGameRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	games := []domain.Game{
		{Date: 300, Red: domain.Side{Name: "alice", Score: 10, SkillChange: 2}, Blue: domain.Side{Name: "bob", Score: 4, SkillChange: -2}},
		{Date: 100, Red: domain.Side{Name: "bob", Score: 6, SkillChange: 1.25, RankChange: 1, NewRank: 2}, Blue: domain.Side{Name: "alice", Score: 10, SkillChange: -1.25, RankChange: -1, NewRank: 3}},
		{Date: 200, Red: domain.Side{Name: "carol", Score: 10}, Blue: domain.Side{Name: "bob", Score: 10}},
		{Date: 250, Red: domain.Side{Name: "alice", Score: 0}, Blue: domain.Side{Name: "carol", Score: 10}, Deleted: true},
	}
	if err := repo.UpsertBatch(ctx, games); err != nil {
		t.Fatalf("upsert batch: %v", err)
	}

	alice, err := repo.ListByPlayer(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(alice) != 2 || alice[0].Date != 100 || alice[1].Date != 300 {
		t.Fatalf("expected alice's live games oldest first, got %+v", alice)
	}
	if alice[0] != games[1] {
		t.Fatalf("round trip mismatch: %+v vs %+v", alice[0], games[1])
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 4 || !all[2].Deleted {
		t.Fatalf("expected all games including deleted, got %+v", all)
	}

	if _, err := repo.Get(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	g, err := repo.Get(ctx, 200)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if g.Red.Name != "carol" {
		t.Fatalf("unexpected game %+v", g)
	}

	has, err := repo.HasGames(ctx, "dave")
	if err != nil || has {
		t.Fatalf("expected no games for dave, got %v %v", has, err)
	}
	if err := repo.Upsert(ctx, &domain.Game{Date: 500, Red: domain.Side{Name: "erin"}, Blue: domain.Side{Name: "frank"}, Deleted: true}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	has, err = repo.HasGames(ctx, "erin")
	if err != nil || has {
		t.Fatalf("deleted games must not count, got %v %v", has, err)
	}

	updated := games[0]
	updated.Red.Score = 9
	if err := repo.Upsert(ctx, &updated); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	g, err = repo.Get(ctx, 300)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if g.Red.Score != 9 {
		t.Fatalf("expected upsert to overwrite the score, got %d", g.Red.Score)
	}
}

func TestSkillHistoryRepository(t *testing.T) {
	sqlDB, queries := openTestDB(t)
	repo := NewSkillHistoryRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	first := []domain.SkillHistory{
		{GameDate: 10, Skill: 1, SkillChange: 1},
		{GameDate: 20, Skill: 3, SkillChange: 2},
	}
	if err := repo.ReplaceForPlayer(ctx, "alice", first); err != nil {
		t.Fatalf("replace: %v", err)
	}
	second := []domain.SkillHistory{
		{GameDate: 10, Skill: 1, SkillChange: 1},
		{GameDate: 20, Skill: 3, SkillChange: 2},
		{GameDate: 30, Skill: 2.5, SkillChange: -0.5},
	}
	if err := repo.ReplaceForPlayer(ctx, "alice", second); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.GetByPlayer(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	seen := make(map[string]bool)
	for i, rec := range got {
		if rec.ID == "" || seen[rec.ID] {
			t.Fatalf("record %d has missing or duplicate id %q", i, rec.ID)
		}
		seen[rec.ID] = true
		if rec.GameDate != second[i].GameDate || rec.Skill != second[i].Skill {
			t.Fatalf("record %d = %+v, want %+v", i, rec, second[i])
		}
	}

	other, err := repo.GetByPlayer(ctx, "bob")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no history for bob, got %d", len(other))
	}
}

func TestGameFetchTracking(t *testing.T) {
	sqlDB, queries := openTestDB(t)
	repo := NewGameRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	refresh, err := repo.ShouldRefresh(ctx, "alice", time.Hour)
	if err != nil || !refresh {
		t.Fatalf("never fetched games must be refreshed, got %v %v", refresh, err)
	}

	if err := repo.SetFetchedAt(ctx, "alice", time.Now()); err != nil {
		t.Fatalf("set fetched at: %v", err)
	}
	refresh, err = repo.ShouldRefresh(ctx, "alice", time.Hour)
	if err != nil || refresh {
		t.Fatalf("just fetched games must not be refreshed, got %v %v", refresh, err)
	}

	if err := repo.SetFetchedAt(ctx, "alice", time.Now().Add(-2*time.Hour)); err != nil {
		t.Fatalf("set fetched at: %v", err)
	}
	refresh, err = repo.ShouldRefresh(ctx, "alice", time.Hour)
	if err != nil || !refresh {
		t.Fatalf("old fetch must be refreshed, got %v %v", refresh, err)
	}
}
