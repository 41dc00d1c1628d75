package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"tntfl-ladder/internal/config"

	"github.com/rs/zerolog"
)

func TestNewWithoutRedisIsNop(t *testing.T) {
	c, err := New(&config.Config{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()
	if err := c.Set(ctx, StatsKey("alice"), []byte("{}"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := c.Get(ctx, StatsKey("alice")); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNewRedisCacheRejectsBadURL(t *testing.T) {
	if _, err := NewRedisCache("not a url"); err == nil {
		t.Fatalf("expected error for invalid url")
	}
}

func TestStatsKey(t *testing.T) {
	if got := StatsKey("alice"); got != "tntfl:stats:alice" {
		t.Fatalf("unexpected key %q", got)
	}
}
