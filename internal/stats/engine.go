package stats

import (
	"context"
	"time"

	"pitchstats/internal/identity"
	"pitchstats/internal/schema"
	"pitchstats/internal/storage"
)

// Filters narrow an aggregation query. All fields are optional and
// combine conjunctively. Team means the pitcher's team for
// pitcher-centric views and the batter's team for hitter-centric ones.
type Filters struct {
	Team      *string
	StartDate *time.Time
	EndDate   *time.Time
	GameID    *string
}

func (f Filters) pitcherFilter() storage.Filter {
	return storage.Filter{
		PitcherTeam: f.Team,
		DateFrom:    f.StartDate,
		DateTo:      f.EndDate,
		GameID:      f.GameID,
	}
}

func (f Filters) batterFilter() storage.Filter {
	return storage.Filter{
		BatterTeam: f.Team,
		DateFrom:   f.StartDate,
		DateTo:     f.EndDate,
		GameID:     f.GameID,
	}
}

// playerFilter drops the team dimension for single-player views.
func (f Filters) playerFilter() storage.Filter {
	return storage.Filter{
		DateFrom: f.StartDate,
		DateTo:   f.EndDate,
		GameID:   f.GameID,
	}
}

// PitchSource is the read side of storage.Store, all the Engine needs.
type PitchSource interface {
	ListPitches(ctx context.Context, f storage.Filter) ([]*schema.Pitch, error)
}

// Engine computes derived statistics over stored pitches. It only
// reads, so it is safe to run concurrently with imports and with
// itself.
type Engine struct {
	src PitchSource
}

// NewEngine builds an Engine over the given source, typically a
// storage.Store.
func NewEngine(src PitchSource) *Engine {
	return &Engine{src: src}
}

// matchesPitcher reports whether the pitch belongs to the referenced
// pitcher. An id-based key matches on id alone; a name-based key only
// matches rows that carry no id, so id-less persons stay one group.
func matchesPitcher(key identity.Key, p *schema.Pitch) bool {
	return key == identity.PersonKey(p.PitcherID, p.Pitcher)
}

func matchesBatter(key identity.Key, p *schema.Pitch) bool {
	return key == identity.PersonKey(p.BatterID, p.Batter)
}

func (e *Engine) listFor(ctx context.Context, f storage.Filter) ([]*schema.Pitch, error) {
	return e.src.ListPitches(ctx, f)
}

// strSet counts distinct string values, used for distinct-game counting.
type strSet map[string]struct{}

func (s strSet) add(v *string) {
	if v != nil {
		s[*v] = struct{}{}
	}
}

// intSet counts distinct numeric values, used for the plate-appearance
// proxy on pitcher lines.
type intSet map[int64]struct{}

func (s intSet) add(v *int64) {
	if v != nil {
		s[*v] = struct{}{}
	}
}
