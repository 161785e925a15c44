package main

import (
	"context"
	"testing"

	"pitchstats/internal/schema"
	"pitchstats/internal/stats"
	"pitchstats/internal/storage"
)

func TestBuildFilters(t *testing.T) {
	f, err := buildFilters("MEX", "", "2026-04-01", "")
	if err != nil {
		t.Fatalf("buildFilters: %v", err)
	}
	if f.Team == nil || *f.Team != "MEX" {
		t.Errorf("team = %v", f.Team)
	}
	if f.StartDate == nil || f.StartDate.Format(schema.DateLayout) != "2026-04-01" {
		t.Errorf("start date = %v", f.StartDate)
	}
	if f.GameID != nil || f.EndDate != nil {
		t.Error("unset filters must stay nil")
	}

	if _, err := buildFilters("", "", "04/01/2026", ""); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestPlayerKey(t *testing.T) {
	if k := playerKey(0, ""); !k.Zero() {
		t.Errorf("empty ref should be zero key, got %+v", k)
	}
	if k := playerKey(7, "ignored"); !k.HasID || k.ID != 7 || k.Name != "" {
		t.Errorf("id ref = %+v", k)
	}
	if k := playerKey(0, "Jane Doe"); k.HasID || k.Name != "Jane Doe" {
		t.Errorf("name ref = %+v", k)
	}
}

type stubSource struct{ pitches []*schema.Pitch }

func (s *stubSource) ListPitches(context.Context, storage.Filter) ([]*schema.Pitch, error) {
	return s.pitches, nil
}

func TestRunViewValidation(t *testing.T) {
	engine := stats.NewEngine(&stubSource{})

	if _, err := runView(context.Background(), engine, "arsenal", stats.Filters{}, playerKey(0, ""), playerKey(0, "")); err == nil {
		t.Error("arsenal without a pitcher ref should fail")
	}
	if _, err := runView(context.Background(), engine, "nope", stats.Filters{}, playerKey(0, ""), playerKey(0, "")); err == nil {
		t.Error("unknown view should fail")
	}

	out, err := runView(context.Background(), engine, "leaderboards", stats.Filters{}, playerKey(0, ""), playerKey(0, ""))
	if err != nil {
		t.Fatalf("leaderboards: %v", err)
	}
	m, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("output type %T", out)
	}
	if _, ok := m["pitchers"]; !ok {
		t.Error("missing pitchers key")
	}
	if _, ok := m["hitters"]; !ok {
		t.Error("missing hitters key")
	}
}
