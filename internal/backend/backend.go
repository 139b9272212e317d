// Package backend owns the lazily constructed, process-wide handles to the
// document store, the blob store and the identity gateway. A *Backends is
// built once at startup from config and passed by reference; every handle
// is memoized on first access, including a failed construction, so a bad
// credential surfaces on the first call and is not retried automatically.
package backend

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veldwerk/backend/internal/auth"
	"github.com/veldwerk/backend/internal/config"
	"github.com/veldwerk/backend/internal/repository"
	"github.com/veldwerk/backend/internal/storage"
)

// ErrNotConfigured is returned by every accessor when the minimal
// connection parameters are absent. It marks a deliberate unconfigured
// state, not a network fault, and callers must fail fast on it before any
// I/O is attempted.
var ErrNotConfigured = errors.New("backend: not configured")

// Backends is the connection manager.
type Backends struct {
	cfg *config.Config

	storeOnce sync.Once
	store     *pgxpool.Pool
	storeErr  error

	blobsOnce sync.Once
	blobs     *storage.Gateway

	identityOnce sync.Once
	identity     *auth.Gateway
	identityErr  error
}

// New creates the connection manager. No handle is constructed until its
// first access.
func New(cfg *config.Config) *Backends {
	return &Backends{cfg: cfg}
}

// IsConfigured reports whether the minimal connection parameters are
// present. Safe to call first and never fails.
func (b *Backends) IsConfigured() bool {
	return b.cfg.IsConfigured()
}

// Store returns the memoized document-store pool, dialing it on first call.
func (b *Backends) Store(ctx context.Context) (*pgxpool.Pool, error) {
	if !b.cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}
	b.storeOnce.Do(func() {
		b.store, b.storeErr = repository.NewPool(ctx, b.cfg.DatabaseURL)
	})
	return b.store, b.storeErr
}

// Blobs returns the memoized blob-store gateway.
func (b *Backends) Blobs() (*storage.Gateway, error) {
	if !b.cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}
	b.blobsOnce.Do(func() {
		b.blobs = storage.NewGateway(storage.NewLocalStorage(b.cfg.StorageDir, b.cfg.StorageBaseURL))
	})
	return b.blobs, nil
}

// Identity returns the memoized identity gateway. It depends on the store
// handle, so a store construction failure propagates from here too.
func (b *Backends) Identity(ctx context.Context) (*auth.Gateway, error) {
	if !b.cfg.IsConfigured() {
		return nil, ErrNotConfigured
	}
	b.identityOnce.Do(func() {
		pool, err := b.Store(ctx)
		if err != nil {
			b.identityErr = err
			return
		}
		b.identity = auth.NewGateway(
			repository.NewPgAdminRepository(pool),
			auth.SessionSecretBytes(b.cfg.SessionSecret),
		)
	})
	return b.identity, b.identityErr
}

// Close releases the store pool if it was ever constructed. The empty Do
// synchronizes with an in-flight first Store call, so reading b.store
// afterwards is safe.
func (b *Backends) Close() {
	b.storeOnce.Do(func() {})
	if b.store != nil {
		b.store.Close()
	}
}
