package importer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"pitchstats/internal/storage"
	"pitchstats/internal/storage/sqlite"
)

const header = "PitchNo,Date,Pitcher,PitcherId,PitcherThrows,PitcherTeam," +
	"Batter,BatterId,BatterSide,BatterTeam,Inning,Top/Bottom,Outs,Balls,Strikes," +
	"PitchCall,GameID,PitchUID,HomeTeam,AwayTeam"

// rowFor renders one CSV row. An empty uid leaves PitchUID blank.
func rowFor(n int, uid string) string {
	return fmt.Sprintf(
		"%d,2026-04-01,\"Doe, Jane\",1001,Right,MEX,\"Roe, Rich\",2002,Left,OPP,"+
			"1,Top,0,0,0,StrikeCalled,G-1,%s,MEX,OPP", n, uid)
}

func fileOf(rows ...string) []byte {
	return []byte(header + "\n" + strings.Join(rows, "\n") + "\n")
}

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	s, err := sqlite.New(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("sqlite.New: %v", err)
	}
	t.Cleanup(s.Close)
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return s
}

// recorder collects notifications in order.
type recorder struct {
	got []Notification
}

func (r *recorder) Notify(n Notification) { r.got = append(r.got, n) }

func (r *recorder) last(t *testing.T) Notification {
	t.Helper()
	if len(r.got) == 0 {
		t.Fatal("no notifications")
	}
	return r.got[len(r.got)-1]
}

func TestImportCountsRowErrors(t *testing.T) {
	s := newTestStore(t)
	imp := New(s, Options{})
	rec := &recorder{}

	data := fileOf(rowFor(1, "u1"), rowFor(2, ""), rowFor(3, "u3"))
	res, err := imp.ImportFile(context.Background(), "game.csv", data, rec)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}

	b := res.Batch
	if b.Status != storage.StatusDone {
		t.Fatalf("status = %s", b.Status)
	}
	if b.RowsImported != 2 || b.RowsSkipped != 0 || b.RowsErrored != 1 {
		t.Fatalf("counts = %d/%d/%d, want 2/0/1", b.RowsImported, b.RowsSkipped, b.RowsErrored)
	}
	if b.RowsTotal != 3 {
		t.Errorf("rows total = %d, want 3", b.RowsTotal)
	}
	if b.GameID == nil || *b.GameID != "G-1" {
		t.Errorf("batch game id = %v, want G-1", b.GameID)
	}

	fin := rec.last(t)
	if fin.Step != StepDone || fin.Imported != 2 || fin.Errors != 1 {
		t.Errorf("terminal notification = %+v", fin)
	}
	if rec.got[0].Step != StepParsing || rec.got[1].Step != StepValidating {
		t.Errorf("leading steps = %s, %s", rec.got[0].Step, rec.got[1].Step)
	}
}

func TestReimportIdenticalFileIsSkipped(t *testing.T) {
	s := newTestStore(t)
	imp := New(s, Options{})
	data := fileOf(rowFor(1, "u1"))
	ctx := context.Background()

	first, err := imp.ImportFile(ctx, "game.csv", data, Discard)
	if err != nil {
		t.Fatalf("first import: %v", err)
	}

	rec := &recorder{}
	second, err := imp.ImportFile(ctx, "game.csv", data, rec)
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if second.Batch.Status != storage.StatusSkipped {
		t.Fatalf("status = %s, want skipped", second.Batch.Status)
	}
	if second.DuplicateOf != first.Batch.ID {
		t.Errorf("DuplicateOf = %q, want %q", second.DuplicateOf, first.Batch.ID)
	}
	if len(rec.got) != 1 || rec.got[0].Step != StepError {
		t.Errorf("notifications = %+v, want single terminal error step", rec.got)
	}
	if second.Batch.RowsImported != 0 {
		t.Errorf("skipped batch imported %d rows", second.Batch.RowsImported)
	}
}

func TestDuplicatePitchRowsAreSkipped(t *testing.T) {
	s := newTestStore(t)
	imp := New(s, Options{})
	ctx := context.Background()

	if _, err := imp.ImportFile(ctx, "a.csv", fileOf(rowFor(1, "u1")), Discard); err != nil {
		t.Fatalf("seed import: %v", err)
	}
	// different bytes, same natural key plus one fresh row and one
	// in-file duplicate
	res, err := imp.ImportFile(ctx, "b.csv",
		fileOf(rowFor(9, "u1"), rowFor(2, "u2"), rowFor(3, "u2")), Discard)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	b := res.Batch
	if b.RowsImported != 1 || b.RowsSkipped != 2 || b.RowsErrored != 0 {
		t.Fatalf("counts = %d/%d/%d, want 1/2/0", b.RowsImported, b.RowsSkipped, b.RowsErrored)
	}
}

func TestStructuralErrorFailsBatch(t *testing.T) {
	s := newTestStore(t)
	imp := New(s, Options{})
	rec := &recorder{}

	data := []byte("PitchNo,Date\n1,2026-04-01\n")
	res, err := imp.ImportFile(context.Background(), "bad.csv", data, rec)
	if err == nil {
		t.Fatal("expected structural error")
	}
	if res.Batch.Status != storage.StatusError {
		t.Fatalf("status = %s, want error", res.Batch.Status)
	}
	if res.Batch.Error == nil || !strings.Contains(*res.Batch.Error, "missing required columns") {
		t.Errorf("batch error = %v", res.Batch.Error)
	}
	if fin := rec.last(t); fin.Step != StepError || fin.Message == "" {
		t.Errorf("terminal notification = %+v", fin)
	}
	if n, _ := s.CountGamePitches(context.Background(), "G-1"); n != 0 {
		t.Errorf("structural failure wrote %d rows", n)
	}
}

func TestChunkingEmitsProgressPerChunk(t *testing.T) {
	s := newTestStore(t)
	imp := New(s, Options{ChunkSize: 2})
	rec := &recorder{}

	data := fileOf(rowFor(1, "u1"), rowFor(2, "u2"), rowFor(3, "u3"), rowFor(4, "u4"), rowFor(5, "u5"))
	if _, err := imp.ImportFile(context.Background(), "game.csv", data, rec); err != nil {
		t.Fatalf("ImportFile: %v", err)
	}

	var importing []Notification
	for _, n := range rec.got {
		if n.Step == StepImporting {
			importing = append(importing, n)
		}
	}
	if len(importing) != 4 {
		t.Fatalf("got %d importing notifications, want 4 (leading + 2+2+1 rows)", len(importing))
	}
	if first := importing[0]; first.Current != 0 || first.Total != 5 {
		t.Errorf("leading importing notification = %+v, want current 0 of total 5", first)
	}
	last := importing[len(importing)-1]
	if last.Current != 5 || last.Total != 5 || last.Imported != 5 {
		t.Errorf("final importing notification = %+v", last)
	}
	for i := 1; i < len(importing); i++ {
		if importing[i].Imported <= importing[i-1].Imported {
			t.Errorf("imported counts not increasing: %+v", importing)
		}
	}
}

func TestAllDuplicateRowsStillAnnounceProgress(t *testing.T) {
	s := newTestStore(t)
	imp := New(s, Options{})
	ctx := context.Background()

	if _, err := imp.ImportFile(ctx, "a.csv", fileOf(rowFor(1, "u1")), Discard); err != nil {
		t.Fatalf("seed import: %v", err)
	}

	rec := &recorder{}
	res, err := imp.ImportFile(ctx, "b.csv", fileOf(rowFor(9, "u1")), rec)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if res.Batch.RowsImported != 0 || res.Batch.RowsSkipped != 1 {
		t.Fatalf("counts = %d/%d, want 0/1", res.Batch.RowsImported, res.Batch.RowsSkipped)
	}

	var importing []Notification
	for _, n := range rec.got {
		if n.Step == StepImporting {
			importing = append(importing, n)
		}
	}
	if len(importing) == 0 {
		t.Fatal("no importing notification before done")
	}
	if importing[0].Total != 1 {
		t.Errorf("leading importing notification = %+v, want total 1", importing[0])
	}
}

func TestBlankCellsDoNotErasePlayerFields(t *testing.T) {
	s := newTestStore(t)
	imp := New(s, Options{})
	ctx := context.Background()

	if _, err := imp.ImportFile(ctx, "a.csv", fileOf(rowFor(1, "u1")), Discard); err != nil {
		t.Fatalf("seed import: %v", err)
	}

	// same pitcher id, blank name/throws/team cells
	blank := "2,2026-04-01,,1001,,,\"Roe, Rich\",2002,Left,OPP," +
		"1,Top,0,0,0,StrikeCalled,G-1,u2,MEX,OPP"
	if _, err := imp.ImportFile(ctx, "b.csv", fileOf(blank), Discard); err != nil {
		t.Fatalf("second import: %v", err)
	}

	got, err := s.GetPlayer(ctx, 1001)
	if err != nil {
		t.Fatalf("GetPlayer: %v", err)
	}
	if got.Name == nil || *got.Name != "Doe, Jane" {
		t.Errorf("name = %v, blank cell should not erase it", got.Name)
	}
	if got.Team == nil || *got.Team != "MEX" {
		t.Errorf("team = %v, blank cell should not erase it", got.Team)
	}
	if got.Throws == nil || *got.Throws != "Right" {
		t.Errorf("throws = %v, blank cell should not erase it", got.Throws)
	}
}

func TestGameVerificationFromFilename(t *testing.T) {
	s := newTestStore(t)
	imp := New(s, Options{})
	ctx := context.Background()

	if _, err := imp.ImportFile(ctx, "20260401-MEX-Unverified.csv", fileOf(rowFor(1, "u1")), Discard); err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	g, err := s.GetGame(ctx, "G-1")
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if g.IsVerified {
		t.Error("unverified filename left the game verified")
	}
	if g.TotalPitches != 1 {
		t.Errorf("total pitches = %d, want 1", g.TotalPitches)
	}

	// the verified flag lives on the game row; a second verified file
	// for the same game flips it back
	if _, err := imp.ImportFile(ctx, "20260401-MEX.csv", fileOf(rowFor(2, "u2")), Discard); err != nil {
		t.Fatalf("second import: %v", err)
	}
	if g, err = s.GetGame(ctx, "G-1"); err != nil {
		t.Fatalf("GetGame after reimport: %v", err)
	}
	if !g.IsVerified {
		t.Error("verified filename left the game unverified")
	}
	if g.TotalPitches != 2 {
		t.Errorf("total pitches = %d, want 2", g.TotalPitches)
	}
}
