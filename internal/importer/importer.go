// Package importer runs one file from raw CSV bytes to committed pitch
// rows: hash dedup, parse, coerce, entity upserts, chunked transactional
// loading, batch bookkeeping and progress notifications.
package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"pitchstats/internal/metrics"
	"pitchstats/internal/parser/csv"
	"pitchstats/internal/schema"
	"pitchstats/internal/storage"
	"pitchstats/internal/transform"
)

// DefaultChunkSize is how many pitch rows one transaction carries.
const DefaultChunkSize = 500

// Options tunes an Importer.
type Options struct {
	ChunkSize int    // rows per transaction; DefaultChunkSize when <= 0
	Job       string // metrics job label; "import" when empty
}

// Importer loads pitch files into a Store. It is synchronous and
// chunk-sequential; run at most one import per file at a time.
type Importer struct {
	store  storage.Store
	parser *csv.Parser
	chunk  int
	job    string
}

// New builds an Importer over the given store.
func New(store storage.Store, opts Options) *Importer {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.Job == "" {
		opts.Job = "import"
	}
	return &Importer{
		store:  store,
		parser: csv.NewParser(csv.Options{}),
		chunk:  opts.ChunkSize,
		job:    opts.Job,
	}
}

// Result summarizes one import attempt. The batch inside reflects its
// final persisted state.
type Result struct {
	Batch *storage.ImportBatch
	// DuplicateOf is set when the file's hash matched a prior done
	// batch and nothing was read.
	DuplicateOf string
}

// ContentHash returns the hex xxh3-128 digest used for file dedup.
func ContentHash(data []byte) string {
	h := xxh3.Hash128(data)
	return fmt.Sprintf("%016x%016x", h.Hi, h.Lo)
}

// ImportFile runs the whole pipeline for one uploaded file. Row-level
// problems are counted and never fail the batch; structural and
// unexpected failures finalize the batch as error and are returned.
// Chunks committed before a failure stay committed.
func (imp *Importer) ImportFile(ctx context.Context, filename string, data []byte, sink Sink) (*Result, error) {
	if sink == nil {
		sink = Discard
	}

	now := time.Now().UTC()
	batch := &storage.ImportBatch{
		ID:          uuid.NewString(),
		Filename:    filename,
		ContentHash: ContentHash(data),
		Status:      storage.StatusProcessing,
		StartedAt:   now,
	}

	// Duplicate file short-circuit: an identical file that already
	// reached done is recorded as skipped without reading a row.
	prior, err := imp.store.FindDoneBatchByHash(ctx, batch.ContentHash)
	switch {
	case err == nil:
		batch.Status = storage.StatusSkipped
		batch.DuplicateOf = &prior.ID
		batch.FinishedAt = &now
		if err := imp.store.CreateBatch(ctx, batch); err != nil {
			return nil, fmt.Errorf("record skipped batch: %w", err)
		}
		log.Printf("import %s: identical to batch %s, skipping", filename, prior.ID)
		sink.Notify(Notification{
			Step:    StepError,
			Message: fmt.Sprintf("file already imported as batch %s", prior.ID),
		})
		return &Result{Batch: batch, DuplicateOf: prior.ID}, nil
	case !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("look up content hash: %w", err)
	}

	if err := imp.store.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("create batch: %w", err)
	}

	res := &Result{Batch: batch}
	if err := imp.run(ctx, filename, data, batch, sink); err != nil {
		imp.fail(ctx, batch, err, sink)
		return res, err
	}

	finished := time.Now().UTC()
	batch.Status = storage.StatusDone
	batch.FinishedAt = &finished
	if err := imp.store.FinalizeBatch(ctx, batch); err != nil {
		return res, fmt.Errorf("finalize batch: %w", err)
	}
	sink.Notify(Notification{
		Step:     StepDone,
		Imported: batch.RowsImported,
		Skipped:  batch.RowsSkipped,
		Errors:   batch.RowsErrored,
	})
	log.Printf("import %s: done imported=%d skipped=%d errors=%d",
		filename, batch.RowsImported, batch.RowsSkipped, batch.RowsErrored)
	return res, nil
}

// run executes parse through game stats, mutating the batch counts.
func (imp *Importer) run(ctx context.Context, filename string, data []byte, batch *storage.ImportBatch, sink Sink) error {
	sink.Notify(Notification{Step: StepParsing})
	start := time.Now()
	rows, err := imp.parser.Parse(bytes.NewReader(data))
	metrics.RecordStep(imp.job, string(StepParsing), err, time.Since(start))
	if err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}
	batch.RowsTotal = int64(len(rows))

	sink.Notify(Notification{Step: StepValidating})
	start = time.Now()
	pitches := make([]*schema.Pitch, len(rows))
	for i, row := range rows {
		pitches[i] = transform.Coerce(row)
		pitches[i].BatchID = batch.ID
	}
	metrics.RecordStep(imp.job, string(StepValidating), nil, time.Since(start))

	gameID, err := imp.upsertEntities(ctx, pitches)
	if err != nil {
		return err
	}
	if gameID != "" {
		batch.GameID = &gameID
	}

	if err := imp.loadChunks(ctx, pitches, batch, sink); err != nil {
		return err
	}

	if gameID != "" {
		total, err := imp.store.CountGamePitches(ctx, gameID)
		if err != nil {
			return fmt.Errorf("count game pitches: %w", err)
		}
		verified := !strings.Contains(strings.ToLower(filename), "unverified")
		if err := imp.store.SetGameImportStats(ctx, gameID, total, verified); err != nil {
			return fmt.Errorf("set game stats: %w", err)
		}
	}
	return nil
}

// upsertEntities writes the game and every player referenced by the
// file. Later rows patch name, team and throwing hand; a blank cell
// never erases a value an earlier row carried.
func (imp *Importer) upsertEntities(ctx context.Context, pitches []*schema.Pitch) (gameID string, err error) {
	if len(pitches) == 0 {
		return "", nil
	}

	if first := pitches[0]; first.GameID != nil {
		gameID = *first.GameID
		g := storage.Game{
			ID:       gameID,
			GameUID:  first.GameUID,
			Date:     first.Date,
			Level:    first.Level,
			League:   first.League,
			HomeTeam: first.HomeTeam,
			AwayTeam: first.AwayTeam,
			Stadium:  first.Stadium,
		}
		if err := imp.store.UpsertGame(ctx, g); err != nil {
			return "", err
		}
	}

	type seen struct {
		name   *string
		team   *string
		throws *string
	}
	players := map[int64]seen{}
	var order []int64
	note := func(id *int64, name, team, throws *string) {
		if id == nil {
			return
		}
		if _, ok := players[*id]; !ok {
			order = append(order, *id)
		}
		s := seen{name: name, team: team, throws: throws}
		prev := players[*id]
		if s.name == nil {
			s.name = prev.name
		}
		if s.team == nil {
			s.team = prev.team
		}
		if s.throws == nil {
			s.throws = prev.throws
		}
		players[*id] = s
	}
	for _, p := range pitches {
		note(p.PitcherID, p.Pitcher, p.PitcherTeam, p.PitcherThrows)
		note(p.BatterID, p.Batter, p.BatterTeam, nil)
		note(p.CatcherID, p.Catcher, p.CatcherTeam, p.CatcherThrows)
	}

	for _, id := range order {
		s := players[id]
		p := storage.Player{ID: id, Name: s.name, Team: s.team, Throws: s.throws}
		if err := imp.store.UpsertPlayer(ctx, p); err != nil {
			return "", err
		}
	}
	return gameID, nil
}

// loadChunks walks the coerced rows in fixed-size chunks of processed
// rows, committing the staged inserts of each chunk in one transaction.
// The sink hears an importing notification up front carrying the total,
// then one more at every chunk boundary, whether or not the chunk had
// anything left to insert.
func (imp *Importer) loadChunks(ctx context.Context, pitches []*schema.Pitch, batch *storage.ImportBatch, sink Sink) error {
	var (
		total     = int64(len(pitches))
		chunk     = int64(imp.chunk)
		processed int64
		staged    = make([]*schema.Pitch, 0, imp.chunk)
		seenUID   = make(map[string]struct{}, len(pitches))
		start     = time.Now()
	)

	notify := func() {
		sink.Notify(Notification{
			Step:     StepImporting,
			Current:  processed,
			Total:    total,
			Imported: batch.RowsImported,
			Skipped:  batch.RowsSkipped,
		})
	}
	notify()

	flush := func() error {
		if len(staged) > 0 {
			n, err := imp.store.InsertPitches(ctx, staged)
			batch.RowsImported += n
			staged = staged[:0]
			if err != nil {
				return fmt.Errorf("insert chunk: %w", err)
			}
			metrics.RecordChunks(imp.job, 1)
			elapsed := time.Since(start).Truncate(time.Millisecond)
			log.Printf("chunk committed: inserted=%d total_inserted=%d/%d elapsed=%s",
				n, batch.RowsImported, total, elapsed)
		}
		notify()
		return nil
	}

	var loadErr error
	for _, p := range pitches {
		processed++
		switch {
		case p.PitchUID == nil:
			batch.RowsErrored++
		case alreadyStored(ctx, imp, seenUID, *p.PitchUID):
			batch.RowsSkipped++
		default:
			seenUID[*p.PitchUID] = struct{}{}
			staged = append(staged, p)
		}
		if processed%chunk == 0 {
			if loadErr = flush(); loadErr != nil {
				break
			}
		}
	}
	if loadErr == nil && processed%chunk != 0 {
		loadErr = flush()
	}
	metrics.RecordStep(imp.job, string(StepImporting), loadErr, time.Since(start))
	metrics.RecordRows(imp.job, "imported", batch.RowsImported)
	metrics.RecordRows(imp.job, "skipped", batch.RowsSkipped)
	metrics.RecordRows(imp.job, "errored", batch.RowsErrored)
	return loadErr
}

// alreadyStored checks the natural key against rows staged earlier in
// this file and against storage. A lookup failure is treated as not
// stored; the insert will surface any real storage problem.
func alreadyStored(ctx context.Context, imp *Importer, seen map[string]struct{}, uid string) bool {
	if _, ok := seen[uid]; ok {
		return true
	}
	ok, err := imp.store.HasPitch(ctx, uid)
	if err != nil {
		log.Printf("pitch lookup %s: %v", uid, err)
		return false
	}
	return ok
}

// fail finalizes the batch as error and emits the terminal message.
// Chunks committed before the failure stay committed.
func (imp *Importer) fail(ctx context.Context, batch *storage.ImportBatch, cause error, sink Sink) {
	msg := cause.Error()
	finished := time.Now().UTC()
	batch.Status = storage.StatusError
	batch.Error = &msg
	batch.FinishedAt = &finished
	if err := imp.store.FinalizeBatch(ctx, batch); err != nil {
		log.Printf("finalize failed batch %s: %v", batch.ID, err)
	}
	sink.Notify(Notification{Step: StepError, Message: msg})
	log.Printf("import %s: failed: %v", batch.Filename, cause)
}
