// Command stats runs aggregation views over the pitch database and
// prints the result as JSON.
//
// With no -view it computes the pitcher and hitter leaderboards
// concurrently; player-centric views (arsenal, usage, splits, contact)
// need a -pitcher/-batter reference.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"pitchstats/internal/config"
	"pitchstats/internal/identity"
	"pitchstats/internal/schema"
	"pitchstats/internal/stats"
	"pitchstats/internal/storage"

	_ "pitchstats/internal/storage/postgres"
	_ "pitchstats/internal/storage/sqlite"
)

func main() {
	var (
		driver      string
		dsn         string
		view        string
		team        string
		gameID      string
		fromStr     string
		toStr       string
		pitcherID   int64
		pitcherName string
		batterID    int64
		batterName  string
	)
	flag.StringVar(&driver, "driver", "", "storage backend (sqlite, postgres); overrides config")
	flag.StringVar(&dsn, "dsn", "", "database DSN; overrides config")
	flag.StringVar(&view, "view", "leaderboards", "view: leaderboards, pitchers, hitters, arsenal, usage, splits, contact")
	flag.StringVar(&team, "team", "", "filter by team code")
	flag.StringVar(&gameID, "game", "", "filter by game id")
	flag.StringVar(&fromStr, "from", "", "filter: earliest date (YYYY-MM-DD)")
	flag.StringVar(&toStr, "to", "", "filter: latest date (YYYY-MM-DD)")
	flag.Int64Var(&pitcherID, "pitcher-id", 0, "pitcher id for arsenal/usage views")
	flag.StringVar(&pitcherName, "pitcher", "", "pitcher name for arsenal/usage views (players without an id)")
	flag.Int64Var(&batterID, "batter-id", 0, "batter id for splits/contact views")
	flag.StringVar(&batterName, "batter", "", "batter name for splits/contact views (players without an id)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatalf("load config: %v", err)
	}
	if driver != "" {
		cfg.Driver = driver
	}
	if dsn != "" {
		cfg.DSN = dsn
	}

	filters, err := buildFilters(team, gameID, fromStr, toStr)
	if err != nil {
		fatalf("%v", err)
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, storage.Config{Driver: cfg.Driver, DSN: cfg.DSN})
	if err != nil {
		fatalf("open storage: %v", err)
	}
	defer store.Close()

	engine := stats.NewEngine(store)

	out, err := runView(ctx, engine, view, filters,
		playerKey(pitcherID, pitcherName), playerKey(batterID, batterName))
	if err != nil {
		fatalf("%s: %v", view, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fatalf("encode output: %v", err)
	}
}

func runView(ctx context.Context, engine *stats.Engine, view string, f stats.Filters, pitcher, batter identity.Key) (any, error) {
	switch view {
	case "leaderboards":
		// both boards read independently; run them concurrently
		var (
			pitchers []stats.PitcherLine
			hitters  []stats.HitterLine
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			pitchers, err = engine.PitcherLeaderboard(gctx, f)
			return err
		})
		g.Go(func() error {
			var err error
			hitters, err = engine.HitterLeaderboard(gctx, f)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return map[string]any{"pitchers": pitchers, "hitters": hitters}, nil

	case "pitchers":
		return engine.PitcherLeaderboard(ctx, f)
	case "hitters":
		return engine.HitterLeaderboard(ctx, f)

	case "arsenal":
		if pitcher.Zero() {
			return nil, fmt.Errorf("-pitcher-id or -pitcher required")
		}
		return engine.PitcherArsenal(ctx, pitcher, f)
	case "usage":
		if pitcher.Zero() {
			return nil, fmt.Errorf("-pitcher-id or -pitcher required")
		}
		return engine.PitcherUsageByHand(ctx, pitcher, f)

	case "splits":
		if batter.Zero() {
			return nil, fmt.Errorf("-batter-id or -batter required")
		}
		return engine.BatterSplits(ctx, batter, f)
	case "contact":
		if batter.Zero() {
			return nil, fmt.Errorf("-batter-id or -batter required")
		}
		return engine.BatterContactQuality(ctx, batter, f)

	default:
		return nil, fmt.Errorf("unknown view %q", view)
	}
}

func playerKey(id int64, name string) identity.Key {
	switch {
	case id != 0:
		return identity.Key{ID: id, HasID: true}
	case name != "":
		return identity.Key{Name: name}
	default:
		return identity.Key{}
	}
}

func buildFilters(team, gameID, fromStr, toStr string) (stats.Filters, error) {
	var f stats.Filters
	if team != "" {
		f.Team = &team
	}
	if gameID != "" {
		f.GameID = &gameID
	}
	if fromStr != "" {
		t, err := time.Parse(schema.DateLayout, fromStr)
		if err != nil {
			return f, fmt.Errorf("bad -from date %q: %w", fromStr, err)
		}
		f.StartDate = &t
	}
	if toStr != "" {
		t, err := time.Parse(schema.DateLayout, toStr)
		if err != nil {
			return f, fmt.Errorf("bad -to date %q: %w", toStr, err)
		}
		f.EndDate = &t
	}
	return f, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
