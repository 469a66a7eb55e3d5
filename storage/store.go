package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coachdesk/dashboard/coaching"
)

// BlobStore keeps the whole dashboard as one opaque value under one key.
type BlobStore interface {
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, blob []byte) error
	Close() error
}

// Repository loads and saves the state through a BlobStore. Every save
// rewrites the full blob.
type Repository struct {
	store BlobStore
}

func NewRepository(store BlobStore) *Repository {
	return &Repository{store: store}
}

// Load returns the saved state, or an empty one when nothing has been saved
// yet. Collections and settings missing from the blob are not filled in
// here; callers normalize.
func (r *Repository) Load(ctx context.Context) (coaching.State, error) {
	raw, err := r.store.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		return coaching.NewState(), nil
	}
	if err != nil {
		return coaching.State{}, fmt.Errorf("failed to load state: %w", err)
	}

	return Decode(raw)
}

func (r *Repository) Save(ctx context.Context, state coaching.State) error {
	raw, err := Encode(state, false)
	if err != nil {
		return err
	}

	if err := r.store.Put(ctx, raw); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// ExportFileName names an export taken on now's date.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("coaching-data-%s.json", coaching.DateOf(now))
}

type Driver string

const (
	DriverFile     Driver = "file"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

type Options struct {
	Driver      Driver
	DataPath    string
	SQLitePath  string
	DatabaseURL string
	Key         string
}

// Open returns the BlobStore selected by opts.Driver.
func Open(ctx context.Context, opts Options) (BlobStore, error) {
	switch opts.Driver {
	case DriverFile, "":
		return NewFileStore(opts.DataPath)
	case DriverSQLite:
		return OpenSQLite(ctx, opts.SQLitePath, opts.Key)
	case DriverPostgres:
		return ConnectPostgres(ctx, opts.DatabaseURL, opts.Key)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
}
