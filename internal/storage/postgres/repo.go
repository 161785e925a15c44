// Package postgres implements a Postgres-backed storage.Store using
// pgx v5. Chunk inserts go through COPY, which is the fast path for
// the 160-odd column pitch table.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"pitchstats/internal/schema"
	"pitchstats/internal/storage"
)

func init() {
	storage.Register("postgres", func(ctx context.Context, cfg storage.Config) (storage.Store, error) {
		return New(ctx, cfg.DSN)
	})
}

// Store is the Postgres-backed implementation of storage.Store.
type Store struct {
	pool *pgxpool.Pool
}

var _ storage.Store = (*Store)(nil)

// New connects a pgx pool using the provided DSN.
func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: pgxpool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Init creates all tables if they do not exist.
func (s *Store) Init(ctx context.Context) error {
	for _, t := range storage.Tables(storage.Postgres) {
		if _, err := s.pool.Exec(ctx, storage.CreateTableSQL(t)); err != nil {
			return fmt.Errorf("postgres: create %s: %w", t.Name, err)
		}
	}
	return nil
}

func (s *Store) CreateBatch(ctx context.Context, b *storage.ImportBatch) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO import_batches
			(id, filename, content_hash, game_id, status, error, duplicate_of,
			 rows_total, rows_imported, rows_skipped, rows_errored,
			 started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		b.ID, b.Filename, b.ContentHash, b.GameID, string(b.Status), b.Error, b.DuplicateOf,
		b.RowsTotal, b.RowsImported, b.RowsSkipped, b.RowsErrored, b.StartedAt, b.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: create batch: %w", err)
	}
	return nil
}

func (s *Store) FinalizeBatch(ctx context.Context, b *storage.ImportBatch) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE import_batches
		SET status = $1, error = $2, game_id = $3, rows_total = $4,
		    rows_imported = $5, rows_skipped = $6, rows_errored = $7,
		    finished_at = $8
		WHERE id = $9`,
		string(b.Status), b.Error, b.GameID, b.RowsTotal, b.RowsImported,
		b.RowsSkipped, b.RowsErrored, b.FinishedAt, b.ID,
	)
	if err != nil {
		return fmt.Errorf("postgres: finalize batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) FindDoneBatchByHash(ctx context.Context, hash string) (*storage.ImportBatch, error) {
	var (
		b      storage.ImportBatch
		status string
	)
	err := s.pool.QueryRow(ctx, `
		SELECT id, filename, content_hash, game_id, status, error, duplicate_of,
		       rows_total, rows_imported, rows_skipped, rows_errored,
		       started_at, finished_at
		FROM import_batches
		WHERE content_hash = $1 AND status = 'done'
		ORDER BY started_at
		LIMIT 1`, hash,
	).Scan(&b.ID, &b.Filename, &b.ContentHash, &b.GameID, &status, &b.Error,
		&b.DuplicateOf, &b.RowsTotal, &b.RowsImported, &b.RowsSkipped,
		&b.RowsErrored, &b.StartedAt, &b.FinishedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: find batch by hash: %w", err)
	}
	b.Status = storage.BatchStatus(status)
	return &b, nil
}

func (s *Store) HasPitch(ctx context.Context, pitchUID string) (bool, error) {
	var one int
	err := s.pool.QueryRow(ctx,
		`SELECT 1 FROM pitches WHERE pitch_uid = $1`, pitchUID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("postgres: has pitch: %w", err)
	}
	return true, nil
}

// InsertPitches copies one chunk inside a transaction so a failed COPY
// leaves nothing behind.
func (s *Store) InsertPitches(ctx context.Context, pitches []*schema.Pitch) (int64, error) {
	if len(pitches) == 0 {
		return 0, nil
	}
	cols := append([]string{"batch_id"}, schema.Columns...)
	rows := make([][]any, len(pitches))
	for i, p := range pitches {
		rows[i] = storage.PitchArgs(storage.Postgres, p)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("postgres: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"pitches"}, cols, pgx.CopyFromRows(rows))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Detail != "" {
			return 0, fmt.Errorf("postgres: copy pitches: %s (%s)", pgErr.Detail, pgErr.SQLState())
		}
		return 0, fmt.Errorf("postgres: copy pitches: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("postgres: commit: %w", err)
	}
	return n, nil
}

// UpsertPlayer inserts or patches a player. Nil fields keep the stored
// values; a first sighting without a name stores the unknown fallback.
func (s *Store) UpsertPlayer(ctx context.Context, p storage.Player) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO players (id, name, team, throws) VALUES ($1, COALESCE($2, $5), $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = COALESCE($2, players.name),
			team = COALESCE($3, players.team),
			throws = COALESCE($4, players.throws)`,
		p.ID, p.Name, p.Team, p.Throws, storage.UnknownName(p.ID),
	)
	if err != nil {
		return fmt.Errorf("postgres: upsert player %d: %w", p.ID, err)
	}
	return nil
}

func (s *Store) GetPlayer(ctx context.Context, id int64) (*storage.Player, error) {
	p := storage.Player{ID: id}
	err := s.pool.QueryRow(ctx,
		`SELECT name, team, throws FROM players WHERE id = $1`, id).
		Scan(&p.Name, &p.Team, &p.Throws)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: get player %d: %w", id, err)
	}
	return &p, nil
}

func (s *Store) UpsertGame(ctx context.Context, g storage.Game) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO games (id, game_uid, date, level, league, home_team, away_team, stadium)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			game_uid = EXCLUDED.game_uid,
			date = EXCLUDED.date,
			level = EXCLUDED.level,
			league = EXCLUDED.league,
			home_team = EXCLUDED.home_team,
			away_team = EXCLUDED.away_team,
			stadium = EXCLUDED.stadium`,
		g.ID, g.GameUID, g.Date, g.Level, g.League, g.HomeTeam, g.AwayTeam, g.Stadium,
	)
	if err != nil {
		return fmt.Errorf("postgres: upsert game %s: %w", g.ID, err)
	}
	return nil
}

func (s *Store) GetGame(ctx context.Context, id string) (*storage.Game, error) {
	g := storage.Game{ID: id}
	err := s.pool.QueryRow(ctx, `
		SELECT game_uid, date, level, league, home_team, away_team, stadium,
		       is_verified, total_pitches
		FROM games WHERE id = $1`, id).
		Scan(&g.GameUID, &g.Date, &g.Level, &g.League, &g.HomeTeam, &g.AwayTeam,
			&g.Stadium, &g.IsVerified, &g.TotalPitches)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: get game %s: %w", id, err)
	}
	return &g, nil
}

func (s *Store) SetGameImportStats(ctx context.Context, gameID string, totalPitches int64, verified bool) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE games SET total_pitches = $1, is_verified = $2 WHERE id = $3`,
		totalPitches, verified, gameID,
	)
	if err != nil {
		return fmt.Errorf("postgres: set game stats %s: %w", gameID, err)
	}
	return nil
}

func (s *Store) CountGamePitches(ctx context.Context, gameID string) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM pitches WHERE game_id = $1`, gameID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("postgres: count game pitches: %w", err)
	}
	return n, nil
}

func (s *Store) ListPitches(ctx context.Context, f storage.Filter) ([]*schema.Pitch, error) {
	q, args := storage.ListPitchesSQL(storage.Postgres, f)
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: list pitches: %w", err)
	}
	defer rows.Close()

	var out []*schema.Pitch
	for rows.Next() {
		p := &schema.Pitch{}
		dests, finish := storage.PitchScanDests(storage.Postgres, p)
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("postgres: scan pitch: %w", err)
		}
		if err := finish(); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: list pitches: %w", err)
	}
	return out, nil
}

func (s *Store) Close() { s.pool.Close() }

// DSNRedacted hides the password portion of a DSN for log lines.
func DSNRedacted(dsn string) string {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil || cfg.ConnConfig.Password == "" {
		return dsn
	}
	return strings.Replace(dsn, cfg.ConnConfig.Password, "***", 1)
}
