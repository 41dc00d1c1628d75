// Package main provides a command line view of ladder stats, fetched
// straight from the ladder backend.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"tntfl-ladder/internal/api"
	"tntfl-ladder/internal/config"
	"tntfl-ladder/internal/constants"
	"tntfl-ladder/internal/domain"
	"tntfl-ladder/internal/render"
	"tntfl-ladder/internal/stats"
)

const defaultWidth = 100

var (
	ladderURL string
	plain     bool
	width     int
	active    int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "tntfl",
		Short:        "Table football ladder stats",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&ladderURL, "ladder-url", "", "ladder backend root (default: LADDER_URL)")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "print plain text instead of cards")
	rootCmd.PersistentFlags().IntVar(&width, "width", defaultWidth, "terminal width for card layout")

	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newGameCmd())

	return rootCmd
}

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player NAME",
		Short: "Show a player's stats",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlayerCmd,
	}
	cmd.Flags().IntVar(&active, "active", 0, "number of active players (default: replayed from the player's games)")
	return cmd
}

func newGameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "game ID",
		Short: "Show a single game",
		Args:  cobra.ExactArgs(1),
		RunE:  runGameCmd,
	}
}

func newClient() (*api.LadderClient, *config.Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel)
	cfg, err := config.Load(logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if ladderURL != "" {
		cfg.LadderURL, err = config.NormalizeLadderURL(ladderURL)
		if err != nil {
			return nil, nil, err
		}
	}
	return api.NewLadderClient(cfg), cfg, nil
}

func runPlayerCmd(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}
	name := args[0]

	ctx, cancel := context.WithTimeout(cmd.Context(), constants.ExternalAPITimeout)
	defer cancel()

	var (
		player *domain.Player
		games  []domain.Game
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		player, err = client.GetPlayer(gctx, name)
		return err
	})
	g.Go(func() error {
		var err error
		games, err = client.GetPlayerGames(gctx, name)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	sort.SliceStable(games, func(i, j int) bool { return games[i].Date < games[j].Date })

	now := time.Now()
	numActive := active
	if numActive <= 0 {
		ladder := stats.NewLadder()
		ladder.Apply(games)
		numActive = len(ladder.Standings(now.Unix()))
	}

	summary := stats.Summarize(*player, games, numActive, now)
	return printPage(cmd.OutOrStdout(), render.PlayerPage(summary, cfg.BasePath))
}

func runGameCmd(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), constants.ExternalAPITimeout)
	defer cancel()

	game, err := client.GetGame(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch game %s: %w", args[0], err)
	}
	return printPage(cmd.OutOrStdout(), render.GamePage(*game, cfg.BasePath))
}

func printPage(w io.Writer, page render.Page) error {
	if plain {
		return render.WriteText(w, page)
	}
	_, err := fmt.Fprintln(w, render.Terminal(page, width))
	return err
}
