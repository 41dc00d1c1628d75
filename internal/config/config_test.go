package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"LADDER_URL", "DB_PATH", "SERVER_PORT", "LOG_LEVEL", "REDIS_URL", "CACHE_TTL", "BASE_PATH"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LadderURL != DefaultLadderURL {
		t.Fatalf("expected default ladder url, got %q", cfg.LadderURL)
	}
	if cfg.DBPath != "tntfl.db" || cfg.ServerPort != "8080" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("expected 5m cache ttl, got %v", cfg.CacheTTL)
	}
	if cfg.RedisURL != "" {
		t.Fatalf("expected redis disabled by default")
	}
	if cfg.BasePath != "/" {
		t.Fatalf("expected base path /, got %q", cfg.BasePath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LADDER_URL", "https://ladder.example.com/tntfl")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("BASE_PATH", "/tntfl")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LadderURL != "https://ladder.example.com/tntfl/" {
		t.Fatalf("expected trailing slash, got %q", cfg.LadderURL)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Fatalf("expected 30s, got %v", cfg.CacheTTL)
	}
	if cfg.BasePath != "/tntfl/" {
		t.Fatalf("expected /tntfl/, got %q", cfg.BasePath)
	}
}

func TestLoadInvalidCacheTTL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CACHE_TTL", "soon")
	if _, err := Load(zerolog.Nop()); err == nil {
		t.Fatalf("expected error for invalid CACHE_TTL")
	}
}

func TestNormalizeLadderURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://www/~tlr/tntfl/", want: "http://www/~tlr/tntfl/"},
		{in: "http://localhost:8000", want: "http://localhost:8000/"},
		{in: "", wantErr: true},
		{in: "ftp://ladder/", wantErr: true},
		{in: "/relative/path/", wantErr: true},
	}
	for _, tt := range tests {
		got, err := NormalizeLadderURL(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeLadderURL(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeLadderURL(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeLadderURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
