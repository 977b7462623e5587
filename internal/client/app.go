// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akarpov/memstats/internal/logger"
	"github.com/akarpov/memstats/internal/service"
	"github.com/akarpov/memstats/internal/workers"
	"github.com/akarpov/memstats/models"
)

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	logger   *logger.Logger
	out      io.Writer
}

func NewApp(services *service.ClientServices, workers *workers.Workers, logger *logger.Logger) *App {
	return &App{
		services: services,
		workers:  workers,
		logger:   logger,
		out:      os.Stdout,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	ctx = a.logger.WithContext(ctx)

	if len(args) == 0 {
		a.usage()
		return errors.New("missing command")
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "record":
		return a.runRecord(ctx, rest)
	case "leaderboard":
		return a.runLeaderboard(ctx, rest)
	case "player":
		return a.runPlayer(ctx, rest)
	case "count":
		return a.runCount(ctx)
	case "refresh":
		return a.runRefresh(ctx)
	case "reset-cache":
		return a.runResetCache(ctx, rest)
	case "watch":
		return a.runWatch(ctx)
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) usage() {
	fmt.Fprint(a.out, `Usage: memstats <command> [flags]

Commands:
  record       save a finished game session
  leaderboard  show the best results
  player       show one player's sessions
  count        compare local and server record counts
  refresh      rebuild the cached server rows
  reset-cache  clear the local cache (requires -force)
  watch        keep the cache fresh until interrupted
`)
}

func (a *App) runRecord(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("record", flag.ContinueOnError)
	player := fs.String("player", models.DefaultPlayerName, "player name")
	difficulty := fs.String("difficulty", models.DifficultyEasy, "difficulty label")
	duration := fs.Float64("duration", 0, "game duration in seconds")
	moves := fs.Int("moves", 0, "total card flips")
	matches := fs.Int("matches", 0, "matched pairs")
	completed := fs.Bool("completed", true, "whether the game was finished")
	if err := fs.Parse(args); err != nil {
		return err
	}

	endTime := float64(time.Now().UnixMilli()) / 1000
	record := models.NewGameRecord(*player, *difficulty, endTime-*duration, endTime, *moves, *matches, *completed)

	localID, err := a.services.Stats.RecordGameEnd(ctx, record)
	if err != nil {
		return fmt.Errorf("record game: %w", err)
	}

	fmt.Fprintf(a.out, "saved game #%d for %s (%s, %s, %d errors)\n",
		localID, record.PlayerName, record.Difficulty,
		formatDuration(record.DurationSeconds), record.Errors)

	return nil
}

func (a *App) runLeaderboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("leaderboard", flag.ContinueOnError)
	difficulty := fs.String("difficulty", "", "difficulty label, empty for all")
	limit := fs.Int("limit", 10, "number of rows")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := a.services.Stats.GetLeaderboard(ctx, *difficulty, *limit)
	if err != nil {
		return fmt.Errorf("get leaderboard: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(a.out, "no results yet")
		return nil
	}

	if records[0].Cached {
		fmt.Fprintf(a.out, "showing cached results (%s)\n", records[0].CachedReason)
	}
	for i, record := range records {
		fmt.Fprintf(a.out, "%2d. %-20s %-8s %10s %3d errors\n",
			i+1, record.PlayerName, record.Difficulty,
			formatDuration(record.DurationSeconds), record.Errors)
	}

	return nil
}

func (a *App) runPlayer(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("player", flag.ContinueOnError)
	name := fs.String("name", models.DefaultPlayerName, "player name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.services.Stats.GetPlayerStats(ctx, *name)
	if err != nil {
		return fmt.Errorf("get player stats: %w", err)
	}

	if result.UsingCached {
		fmt.Fprintf(a.out, "showing cached results (%s)\n", result.Error)
	}

	fmt.Fprintf(a.out, "%s: %d games\n", result.Player, len(result.Stats))
	for _, record := range result.Stats {
		marker := " "
		if record.Synthesized {
			marker = "~"
		}
		fmt.Fprintf(a.out, "  %s%-8s %10s %3d errors completed=%t\n",
			marker, record.Difficulty, formatDuration(record.DurationSeconds),
			record.Errors, record.Completed)
	}
	if len(result.LocalOnlyStats) > 0 {
		fmt.Fprintf(a.out, "%d games not confirmed by the server yet\n", len(result.LocalOnlyStats))
	}

	a.printAggregates(result.Stats)

	return nil
}

// printAggregates summarises a player's sessions per difficulty: games
// played, completed, best and average completed time.
func (a *App) printAggregates(records []models.GameRecord) {
	type bucket struct {
		played    int
		completed int
		best      float64
		total     float64
	}

	buckets := make(map[string]*bucket)
	for _, record := range records {
		b, ok := buckets[record.Difficulty]
		if !ok {
			b = &bucket{}
			buckets[record.Difficulty] = b
		}
		b.played++
		if record.Completed {
			b.completed++
			b.total += record.DurationSeconds
			if b.best == 0 || record.DurationSeconds < b.best {
				b.best = record.DurationSeconds
			}
		}
	}

	for _, difficulty := range models.Difficulties() {
		b, ok := buckets[difficulty]
		if !ok {
			continue
		}
		line := fmt.Sprintf("%-8s %d played, %d completed", difficulty, b.played, b.completed)
		if b.completed > 0 {
			line += fmt.Sprintf(", best %s, avg %s",
				formatDuration(b.best), formatDuration(b.total/float64(b.completed)))
		}
		fmt.Fprintln(a.out, line)
	}
}

func (a *App) runCount(ctx context.Context) error {
	localCount, serverCount, err := a.services.Stats.Counts(ctx)
	if err != nil {
		return fmt.Errorf("get counts: %w", err)
	}

	fmt.Fprintf(a.out, "local cache: %d records, server: %d records\n", localCount, serverCount)

	reset, err := a.services.Stats.DetectServerReset(ctx)
	if err == nil && reset {
		fmt.Fprintln(a.out, "the server appears to have been reset; run reset-cache -force to discard stale local data")
	}

	return nil
}

func (a *App) runRefresh(ctx context.Context) error {
	if err := a.services.Stats.RefreshAll(ctx); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}

	fmt.Fprintln(a.out, "cache refreshed from server")
	return nil
}

func (a *App) runResetCache(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset-cache", flag.ContinueOnError)
	force := fs.Bool("force", false, "confirm destructive cache reset")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// the cache is never cleared implicitly; the flag is the confirmation
	if !*force {
		fmt.Fprintln(a.out, "reset-cache deletes every locally stored game; re-run with -force to confirm")
		return nil
	}

	if err := a.services.Stats.ResetLocalCache(ctx); err != nil {
		return fmt.Errorf("reset cache: %w", err)
	}

	fmt.Fprintln(a.out, "local cache cleared")
	return nil
}

// runWatch performs the startup reconciliation and then keeps the cache
// fresh in the background until the process is interrupted.
func (a *App) runWatch(ctx context.Context) error {
	if reset, err := a.services.Stats.DetectServerReset(ctx); err != nil {
		if !errors.Is(err, service.ErrServerOffline) {
			return fmt.Errorf("reset check: %w", err)
		}
		fmt.Fprintln(a.out, "server offline, serving cached data")
	} else if reset {
		fmt.Fprintln(a.out, "the server appears to have been reset; run reset-cache -force to discard stale local data")
	}

	if err := a.services.Stats.RefreshAll(ctx); err != nil && !errors.Is(err, service.ErrServerOffline) {
		a.logger.Warn().Err(err).Msg("initial cache refresh incomplete")
	}

	a.workers.Run()
	defer a.workers.Stop()

	stop, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	fmt.Fprintln(a.out, "shutting down")
	return nil
}

// formatDuration renders seconds as MM:SS.ss for display.
func formatDuration(seconds float64) string {
	minutes := int(seconds) / 60
	return fmt.Sprintf("%02d:%05.2f", minutes, seconds-float64(minutes*60))
}
