// Package sqlite implements a SQLite-backed storage.Store using
// database/sql. Chunk inserts run inside a transaction with a prepared
// statement; SQLite has no bulk-load API like Postgres COPY, but
// transactions keep performance acceptable for single-game files.
//
// Dates are stored as "2006-01-02" TEXT and timestamps as RFC 3339
// TEXT, so every comparison the query layer does is a plain string
// comparison.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // alternative: github.com/mattn/go-sqlite3

	"pitchstats/internal/schema"
	"pitchstats/internal/storage"
)

func init() {
	storage.Register("sqlite", func(ctx context.Context, cfg storage.Config) (storage.Store, error) {
		return New(ctx, cfg.DSN)
	})
}

// Store is the SQLite-backed implementation of storage.Store.
type Store struct {
	db *sql.DB
}

var _ storage.Store = (*Store)(nil)

// New opens a SQLite database. The DSN is passed straight to
// database/sql; ":memory:" and "file:pitch.db?cache=shared" both work.
func New(ctx context.Context, dsn string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("sqlite: DSN must not be empty")
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent and
	// sidesteps SQLITE_BUSY under concurrent writers.
	db.SetMaxOpenConns(1)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	_, _ = db.ExecContext(ctx, "PRAGMA foreign_keys = ON;")
	return &Store{db: db}, nil
}

// Init creates all tables if they do not exist.
func (s *Store) Init(ctx context.Context) error {
	for _, t := range storage.Tables(storage.SQLite) {
		if _, err := s.db.ExecContext(ctx, storage.CreateTableSQL(t)); err != nil {
			return fmt.Errorf("sqlite: create %s: %w", t.Name, err)
		}
	}
	return nil
}

func (s *Store) CreateBatch(ctx context.Context, b *storage.ImportBatch) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO import_batches
			(id, filename, content_hash, game_id, status, error, duplicate_of,
			 rows_total, rows_imported, rows_skipped, rows_errored,
			 started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Filename, b.ContentHash, b.GameID, string(b.Status), b.Error, b.DuplicateOf,
		b.RowsTotal, b.RowsImported, b.RowsSkipped, b.RowsErrored,
		b.StartedAt.UTC().Format(time.RFC3339Nano), fmtTime(b.FinishedAt),
	)
	if err != nil {
		return fmt.Errorf("sqlite: create batch: %w", err)
	}
	return nil
}

func (s *Store) FinalizeBatch(ctx context.Context, b *storage.ImportBatch) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE import_batches
		SET status = ?, error = ?, game_id = ?, rows_total = ?,
		    rows_imported = ?, rows_skipped = ?, rows_errored = ?,
		    finished_at = ?
		WHERE id = ?`,
		string(b.Status), b.Error, b.GameID, b.RowsTotal, b.RowsImported,
		b.RowsSkipped, b.RowsErrored, fmtTime(b.FinishedAt), b.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: finalize batch: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) FindDoneBatchByHash(ctx context.Context, hash string) (*storage.ImportBatch, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, filename, content_hash, game_id, status, error, duplicate_of,
		       rows_total, rows_imported, rows_skipped, rows_errored,
		       started_at, finished_at
		FROM import_batches
		WHERE content_hash = ? AND status = 'done'
		ORDER BY started_at
		LIMIT 1`, hash)
	return scanBatch(row)
}

func scanBatch(row *sql.Row) (*storage.ImportBatch, error) {
	var (
		b        storage.ImportBatch
		status   string
		started  string
		finished sql.NullString
	)
	err := row.Scan(&b.ID, &b.Filename, &b.ContentHash, &b.GameID, &status,
		&b.Error, &b.DuplicateOf, &b.RowsTotal, &b.RowsImported,
		&b.RowsSkipped, &b.RowsErrored, &started, &finished)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: scan batch: %w", err)
	}
	b.Status = storage.BatchStatus(status)
	if b.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return nil, fmt.Errorf("sqlite: batch started_at: %w", err)
	}
	if finished.Valid {
		t, err := time.Parse(time.RFC3339Nano, finished.String)
		if err != nil {
			return nil, fmt.Errorf("sqlite: batch finished_at: %w", err)
		}
		b.FinishedAt = &t
	}
	return &b, nil
}

func (s *Store) HasPitch(ctx context.Context, pitchUID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM pitches WHERE pitch_uid = ?`, pitchUID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("sqlite: has pitch: %w", err)
	}
	return true, nil
}

// InsertPitches writes one chunk in a single transaction. Either every
// row in the chunk lands or none do.
func (s *Store) InsertPitches(ctx context.Context, pitches []*schema.Pitch) (int64, error) {
	if len(pitches) == 0 {
		return 0, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlite: begin tx: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, storage.PitchInsertSQL(storage.SQLite))
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("sqlite: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range pitches {
		if _, err := stmt.ExecContext(ctx, storage.PitchArgs(storage.SQLite, p)...); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("sqlite: insert pitch: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlite: commit: %w", err)
	}
	return int64(len(pitches)), nil
}

// UpsertPlayer inserts or patches a player. Nil fields keep the stored
// values; a first sighting without a name stores the unknown fallback.
func (s *Store) UpsertPlayer(ctx context.Context, p storage.Player) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO players (id, name, team, throws) VALUES (?, COALESCE(?, ?), ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = COALESCE(?, players.name),
			team = COALESCE(?, players.team),
			throws = COALESCE(?, players.throws)`,
		p.ID, p.Name, storage.UnknownName(p.ID), p.Team, p.Throws,
		p.Name, p.Team, p.Throws,
	)
	if err != nil {
		return fmt.Errorf("sqlite: upsert player %d: %w", p.ID, err)
	}
	return nil
}

func (s *Store) GetPlayer(ctx context.Context, id int64) (*storage.Player, error) {
	p := storage.Player{ID: id}
	err := s.db.QueryRowContext(ctx,
		`SELECT name, team, throws FROM players WHERE id = ?`, id).
		Scan(&p.Name, &p.Team, &p.Throws)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get player %d: %w", id, err)
	}
	return &p, nil
}

func (s *Store) UpsertGame(ctx context.Context, g storage.Game) error {
	var date *string
	if g.Date != nil {
		d := g.Date.Format(schema.DateLayout)
		date = &d
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO games (id, game_uid, date, level, league, home_team, away_team, stadium)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			game_uid = excluded.game_uid,
			date = excluded.date,
			level = excluded.level,
			league = excluded.league,
			home_team = excluded.home_team,
			away_team = excluded.away_team,
			stadium = excluded.stadium`,
		g.ID, g.GameUID, date, g.Level, g.League, g.HomeTeam, g.AwayTeam, g.Stadium,
	)
	if err != nil {
		return fmt.Errorf("sqlite: upsert game %s: %w", g.ID, err)
	}
	return nil
}

func (s *Store) GetGame(ctx context.Context, id string) (*storage.Game, error) {
	g := storage.Game{ID: id}
	var date sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT game_uid, date, level, league, home_team, away_team, stadium,
		       is_verified, total_pitches
		FROM games WHERE id = ?`, id).
		Scan(&g.GameUID, &date, &g.Level, &g.League, &g.HomeTeam, &g.AwayTeam,
			&g.Stadium, &g.IsVerified, &g.TotalPitches)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get game %s: %w", id, err)
	}
	if date.Valid {
		t, err := time.Parse(schema.DateLayout, date.String)
		if err != nil {
			return nil, fmt.Errorf("sqlite: game date: %w", err)
		}
		g.Date = &t
	}
	return &g, nil
}

func (s *Store) SetGameImportStats(ctx context.Context, gameID string, totalPitches int64, verified bool) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE games SET total_pitches = ?, is_verified = ? WHERE id = ?`,
		totalPitches, verified, gameID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: set game stats %s: %w", gameID, err)
	}
	return nil
}

func (s *Store) CountGamePitches(ctx context.Context, gameID string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pitches WHERE game_id = ?`, gameID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("sqlite: count game pitches: %w", err)
	}
	return n, nil
}

func (s *Store) ListPitches(ctx context.Context, f storage.Filter) ([]*schema.Pitch, error) {
	q, args := storage.ListPitchesSQL(storage.SQLite, f)
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list pitches: %w", err)
	}
	defer rows.Close()

	var out []*schema.Pitch
	for rows.Next() {
		p := &schema.Pitch{}
		dests, finish := storage.PitchScanDests(storage.SQLite, p)
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("sqlite: scan pitch: %w", err)
		}
		if err := finish(); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list pitches: %w", err)
	}
	return out, nil
}

func (s *Store) Close() { s.db.Close() }

func fmtTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}
