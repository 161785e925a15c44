package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"pitchstats/internal/schema"
	"pitchstats/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(s.Close)
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return s
}

func strp(s string) *string     { return &s }
func intp(i int64) *int64       { return &i }
func floatp(f float64) *float64 { return &f }

func datep(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func testPitch(uid string) *schema.Pitch {
	return &schema.Pitch{
		BatchID:     "b1",
		PitchUID:    strp(uid),
		GameID:      strp("G-1"),
		Date:        datep(2026, 4, 1),
		PitchNo:     intp(1),
		Pitcher:     strp("Doe, Jane"),
		PitcherID:   intp(1001),
		PitcherTeam: strp("MEX"),
		Batter:      strp("Roe, Rich"),
		BatterTeam:  strp("OPP"),
		RelSpeed:    floatp(94.3),
		PitchCall:   strp("StrikeCalled"),
	}
}

func TestBatchLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	b := &storage.ImportBatch{
		ID:          "batch-1",
		Filename:    "game.csv",
		ContentHash: "abc123",
		Status:      storage.StatusProcessing,
		StartedAt:   time.Now().UTC(),
	}
	if err := s.CreateBatch(ctx, b); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	if _, err := s.FindDoneBatchByHash(ctx, "abc123"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("processing batch should not match done lookup, err = %v", err)
	}

	now := time.Now().UTC()
	b.Status = storage.StatusDone
	b.GameID = strp("G-1")
	b.RowsTotal = 45
	b.RowsImported = 42
	b.FinishedAt = &now
	if err := s.FinalizeBatch(ctx, b); err != nil {
		t.Fatalf("FinalizeBatch: %v", err)
	}

	got, err := s.FindDoneBatchByHash(ctx, "abc123")
	if err != nil {
		t.Fatalf("FindDoneBatchByHash: %v", err)
	}
	if got.ID != "batch-1" || got.Status != storage.StatusDone || got.RowsImported != 42 {
		t.Errorf("batch = %+v", got)
	}
	if got.RowsTotal != 45 {
		t.Errorf("rows total = %d, want 45", got.RowsTotal)
	}
	if got.GameID == nil || *got.GameID != "G-1" {
		t.Errorf("game id = %v, want G-1", got.GameID)
	}
	if got.FinishedAt == nil {
		t.Error("finished_at not persisted")
	}
}

func TestFinalizeUnknownBatch(t *testing.T) {
	s := newTestStore(t)
	err := s.FinalizeBatch(context.Background(), &storage.ImportBatch{ID: "nope", Status: storage.StatusError})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestInsertAndListPitches(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n, err := s.InsertPitches(ctx, []*schema.Pitch{testPitch("u1"), testPitch("u2")})
	if err != nil {
		t.Fatalf("InsertPitches: %v", err)
	}
	if n != 2 {
		t.Fatalf("inserted %d, want 2", n)
	}

	ok, err := s.HasPitch(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("HasPitch(u1) = %v, %v", ok, err)
	}
	ok, err = s.HasPitch(ctx, "u3")
	if err != nil || ok {
		t.Fatalf("HasPitch(u3) = %v, %v", ok, err)
	}

	got, err := s.ListPitches(ctx, storage.Filter{PitcherTeam: strp("MEX")})
	if err != nil {
		t.Fatalf("ListPitches: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d pitches, want 2", len(got))
	}
	p := got[0]
	if p.RelSpeed == nil || *p.RelSpeed != 94.3 {
		t.Errorf("rel_speed = %v", p.RelSpeed)
	}
	if p.Date == nil || !p.Date.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v, text date did not round-trip", p.Date)
	}
	if p.Balls != nil {
		t.Errorf("balls should be nil, got %v", *p.Balls)
	}

	if got, err = s.ListPitches(ctx, storage.Filter{BatterTeam: strp("MEX")}); err != nil || len(got) != 0 {
		t.Errorf("batter team filter matched %d pitches, err %v", len(got), err)
	}

	count, err := s.CountGamePitches(ctx, "G-1")
	if err != nil || count != 2 {
		t.Errorf("CountGamePitches = %d, %v", count, err)
	}
}

func TestInsertChunkIsAtomic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.InsertPitches(ctx, []*schema.Pitch{testPitch("dup")}); err != nil {
		t.Fatalf("seed insert: %v", err)
	}
	// second chunk collides on pitch_uid and must roll back entirely
	if _, err := s.InsertPitches(ctx, []*schema.Pitch{testPitch("fresh"), testPitch("dup")}); err == nil {
		t.Fatal("expected primary key violation")
	}
	if ok, _ := s.HasPitch(ctx, "fresh"); ok {
		t.Error("failed chunk left a row behind")
	}
}

func TestUpsertPlayerPatchesFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.UpsertPlayer(ctx, storage.Player{ID: 1001, Name: strp("Doe, Jane"), Team: strp("MEX"), Throws: strp("Right")}); err != nil {
		t.Fatalf("UpsertPlayer: %v", err)
	}
	if err := s.UpsertPlayer(ctx, storage.Player{ID: 1001, Name: strp("Jane Doe")}); err != nil {
		t.Fatalf("UpsertPlayer update: %v", err)
	}

	got, err := s.GetPlayer(ctx, 1001)
	if err != nil {
		t.Fatalf("GetPlayer: %v", err)
	}
	if got.Name == nil || *got.Name != "Jane Doe" {
		t.Errorf("name = %v, later name should win", got.Name)
	}
	if got.Team == nil || *got.Team != "MEX" {
		t.Errorf("team = %v, nil update should not clear it", got.Team)
	}
	if got.Throws == nil || *got.Throws != "Right" {
		t.Errorf("throws = %v, nil update should not clear it", got.Throws)
	}

	if err := s.UpsertPlayer(ctx, storage.Player{ID: 1001}); err != nil {
		t.Fatalf("UpsertPlayer blank: %v", err)
	}
	got, err = s.GetPlayer(ctx, 1001)
	if err != nil {
		t.Fatalf("GetPlayer after blank: %v", err)
	}
	if got.Name == nil || *got.Name != "Jane Doe" {
		t.Errorf("name = %v, blank upsert should keep the stored name", got.Name)
	}
}

func TestUpsertPlayerUnknownFallback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.UpsertPlayer(ctx, storage.Player{ID: 2002}); err != nil {
		t.Fatalf("UpsertPlayer: %v", err)
	}
	got, err := s.GetPlayer(ctx, 2002)
	if err != nil {
		t.Fatalf("GetPlayer: %v", err)
	}
	if got.Name == nil || *got.Name != "Unknown (2002)" {
		t.Errorf("name = %v, want fallback", got.Name)
	}

	if err := s.UpsertPlayer(ctx, storage.Player{ID: 2002, Name: strp("Roe, Rich")}); err != nil {
		t.Fatalf("UpsertPlayer update: %v", err)
	}
	got, err = s.GetPlayer(ctx, 2002)
	if err != nil {
		t.Fatalf("GetPlayer after update: %v", err)
	}
	if got.Name == nil || *got.Name != "Roe, Rich" {
		t.Errorf("name = %v, real name should replace fallback", got.Name)
	}

	if _, err := s.GetPlayer(ctx, 9999); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("unknown player err = %v, want ErrNotFound", err)
	}
}

func TestUpsertGameAndImportStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	g := storage.Game{ID: "G-1", Date: datep(2026, 4, 1), Level: strp("D1"), HomeTeam: strp("MEX"), AwayTeam: strp("OPP")}
	if err := s.UpsertGame(ctx, g); err != nil {
		t.Fatalf("UpsertGame: %v", err)
	}
	if err := s.UpsertGame(ctx, g); err != nil {
		t.Fatalf("UpsertGame again: %v", err)
	}
	if err := s.SetGameImportStats(ctx, "G-1", 250, false); err != nil {
		t.Fatalf("SetGameImportStats: %v", err)
	}

	got, err := s.GetGame(ctx, "G-1")
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if got.TotalPitches != 250 || got.IsVerified {
		t.Errorf("game stats = %d/%v", got.TotalPitches, got.IsVerified)
	}
	if got.Level == nil || *got.Level != "D1" {
		t.Errorf("level = %v", got.Level)
	}
	if got.Date == nil || got.Date.Format("2006-01-02") != "2026-04-01" {
		t.Errorf("date = %v", got.Date)
	}

	if _, err := s.GetGame(ctx, "G-404"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("unknown game err = %v, want ErrNotFound", err)
	}
}
