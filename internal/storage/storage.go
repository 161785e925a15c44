// Package storage contains backend-agnostic contracts for the pitch
// database. Concrete backends register themselves via Register at init
// time; callers obtain a Store through Open without importing a backend
// directly.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"pitchstats/internal/schema"
)

// ErrNotFound is returned by lookups that matched nothing.
var ErrNotFound = errors.New("storage: not found")

// BatchStatus tracks an import batch through its lifecycle. A batch is
// created as processing and finalized exactly once as done, skipped or
// error.
type BatchStatus string

const (
	StatusProcessing BatchStatus = "processing"
	StatusDone       BatchStatus = "done"
	StatusSkipped    BatchStatus = "skipped"
	StatusError      BatchStatus = "error"
)

// ImportBatch is the durable record of one file upload.
type ImportBatch struct {
	ID           string // uuid
	Filename     string
	ContentHash  string // xxh3 of the raw file bytes, hex
	GameID       *string
	Status       BatchStatus
	Error        *string
	DuplicateOf  *string // id of the prior done batch with the same hash
	RowsTotal    int64   // data rows read from the file
	RowsImported int64
	RowsSkipped  int64
	RowsErrored  int64
	StartedAt    time.Time
	FinishedAt   *time.Time
}

// Player is the upsert target for pitchers, batters and catchers seen
// in a file. Nil fields patch nothing: a later sighting with a blank
// cell never erases a stored value.
type Player struct {
	ID     int64
	Name   *string
	Team   *string
	Throws *string
}

// UnknownName is the display name stored for a player first seen
// without one.
func UnknownName(id int64) string { return fmt.Sprintf("Unknown (%d)", id) }

// Game is the upsert target for the game a file describes. IsVerified
// and TotalPitches are managed through SetGameImportStats and ignored
// by UpsertGame.
type Game struct {
	ID           string
	GameUID      *string
	Date         *time.Time
	Level        *string
	League       *string
	HomeTeam     *string
	AwayTeam     *string
	Stadium      *string
	IsVerified   bool
	TotalPitches int64
}

// Filter narrows ListPitches. Nil fields match everything. Team fields
// are separate because pitching views filter on the pitcher's team and
// hitting views on the batter's.
type Filter struct {
	GameID      *string
	PitcherTeam *string
	BatterTeam  *string
	DateFrom    *time.Time
	DateTo      *time.Time
}

// Store is the contract every backend implements.
type Store interface {
	// Init creates the schema if it does not exist.
	Init(ctx context.Context) error

	CreateBatch(ctx context.Context, b *ImportBatch) error
	FinalizeBatch(ctx context.Context, b *ImportBatch) error
	// FindDoneBatchByHash returns the earlier successful batch with the
	// same content hash, or ErrNotFound.
	FindDoneBatchByHash(ctx context.Context, hash string) (*ImportBatch, error)

	HasPitch(ctx context.Context, pitchUID string) (bool, error)
	// InsertPitches writes one chunk in a single transaction and
	// returns the number of rows inserted.
	InsertPitches(ctx context.Context, pitches []*schema.Pitch) (int64, error)

	UpsertPlayer(ctx context.Context, p Player) error
	GetPlayer(ctx context.Context, id int64) (*Player, error)
	UpsertGame(ctx context.Context, g Game) error
	GetGame(ctx context.Context, id string) (*Game, error)
	SetGameImportStats(ctx context.Context, gameID string, totalPitches int64, verified bool) error
	CountGamePitches(ctx context.Context, gameID string) (int64, error)

	ListPitches(ctx context.Context, f Filter) ([]*schema.Pitch, error)

	Close()
}

// Config selects and parameterizes a backend.
type Config struct {
	Driver string // "sqlite" or "postgres"
	DSN    string
}

// Constructor builds a Store for a driver.
type Constructor func(ctx context.Context, cfg Config) (Store, error)

var (
	regMu    sync.RWMutex
	registry = map[string]Constructor{}
)

// Register makes a backend available under the given driver name.
// Backends call this from init.
func Register(driver string, ctor Constructor) {
	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := registry[driver]; dup {
		panic("storage: duplicate driver " + driver)
	}
	registry[driver] = ctor
}

// Open constructs the Store for cfg.Driver.
func Open(ctx context.Context, cfg Config) (Store, error) {
	regMu.RLock()
	ctor, ok := registry[cfg.Driver]
	regMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: unknown driver %q (have %v)", cfg.Driver, Drivers())
	}
	return ctor(ctx, cfg)
}

// Drivers lists registered backends, sorted.
func Drivers() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(registry))
	for d := range registry {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
