package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
	"golang.org/x/sync/semaphore"
)

// Store is the persistent store adapter: one bbolt file holding every
// branch's tables plus the repository-wide external/internal hash maps.
type Store struct {
	db   *bbolt.DB
	cfg  *config
	lock *semaphore.Weighted
}

// Open opens (creating if necessary) the store file at path.
func Open(path string, opts ...Option) (*Store, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{
		Timeout:  cfg.boltTimeout,
		ReadOnly: cfg.readOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	s := &Store{db: db, cfg: cfg, lock: semaphore.NewWeighted(1)}

	if !cfg.readOnly {
		if err := db.Update(func(tx *bbolt.Tx) error {
			_, err := tx.CreateBucketIfNotExists([]byte(bucketBranches))
			if err != nil {
				return err
			}
			if _, err := tx.CreateBucketIfNotExists([]byte(bucketExternal)); err != nil {
				return err
			}
			_, err = tx.CreateBucketIfNotExists([]byte(bucketInternal))
			return err
		}); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: initialize buckets: %w", err)
		}
	}

	cfg.log.WithField("path", path).Debug("store: opened")
	return s, nil
}

// Close releases the underlying file. A Store must not be used after Close.
func (s *Store) Close() error {
	return s.db.Close()
}

// View runs fn in a read-only transaction. Multiple Views may run
// concurrently with each other and with a single in-flight Update.
func (s *Store) View(fn func(*ReadTx) error) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		return fn(&ReadTx{tx: tx, store: s})
	})
}

// Update runs fn in the store's single write transaction, serialized
// both by bbolt itself and by this package's advisory semaphore token
// (acquired under ctx, so a caller can be cancelled while waiting for the
// lock — the one blocking point spec §5 allows).
//
// If fn's edits would grow the database past the store's InitialSize
// quota, the transaction is rolled back and ErrNotEnoughSpace is
// returned; none of fn's edits are visible afterward (spec §7's
// all-or-nothing propagation policy).
func (s *Store) Update(ctx context.Context, fn func(*WriteTx) error) error {
	if s.cfg.readOnly {
		return ErrReadOnly
	}
	session := uuid.NewString()
	log := s.cfg.log.WithField("lock_session", session)

	if err := s.lock.Acquire(ctx, 1); err != nil {
		log.WithError(err).Debug("store: write lock acquisition aborted")
		return ErrLockTimeout
	}
	log.Trace("store: write lock acquired")
	defer func() {
		s.lock.Release(1)
		log.Trace("store: write lock released")
	}()

	return s.db.Update(func(tx *bbolt.Tx) error {
		wtx := &WriteTx{ReadTx: ReadTx{tx: tx, store: s}}
		if err := fn(wtx); err != nil {
			return err
		}
		if s.cfg.initialSize > 0 && uint64(tx.Size()) > s.cfg.initialSize {
			log.WithField("size", tx.Size()).Warn("store: transaction exceeds initial size quota")
			return ErrNotEnoughSpace
		}
		return nil
	})
}

// TryUpdate behaves like Update but never blocks: if the advisory write
// lock is already held, it returns ErrLockTimeout immediately.
func (s *Store) TryUpdate(fn func(*WriteTx) error) error {
	if s.cfg.readOnly {
		return ErrReadOnly
	}
	if !s.lock.TryAcquire(1) {
		return ErrLockTimeout
	}
	defer s.lock.Release(1)

	return s.db.Update(func(tx *bbolt.Tx) error {
		wtx := &WriteTx{ReadTx: ReadTx{tx: tx, store: s}}
		if err := fn(wtx); err != nil {
			return err
		}
		if s.cfg.initialSize > 0 && uint64(tx.Size()) > s.cfg.initialSize {
			return ErrNotEnoughSpace
		}
		return nil
	})
}
