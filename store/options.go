package store

import (
	"time"

	"github.com/sirupsen/logrus"
)

// defaultInitialSize is the quota used when WithInitialSize is not given.
const defaultInitialSize = 64 << 20 // 64 MiB

// Option configures a Store at Open time, in the functional-options
// shape.
type Option func(*config)

type config struct {
	initialSize uint64
	readOnly    bool
	log         *logrus.Logger
	boltTimeout time.Duration
}

func defaultConfig() *config {
	return &config{
		initialSize: defaultInitialSize,
		log:         logrus.New(),
		boltTimeout: 1 * time.Second,
	}
}

// WithInitialSize sets the byte quota a write transaction's net table
// growth is checked against. Exceeding it fails the transaction with
// ErrNotEnoughSpace (spec §5, §9); it never causes bbolt itself to grow
// the underlying mmap past what the transaction committed.
func WithInitialSize(bytes uint64) Option {
	return func(c *config) { c.initialSize = bytes }
}

// WithReadOnly opens the store such that Update always returns
// ErrReadOnly without touching the file.
func WithReadOnly() Option {
	return func(c *config) { c.readOnly = true }
}

// WithLogger sets the logger used for debug/trace tracing of store
// operations. The zero value (no option given) uses a fresh, independent
// *logrus.Logger rather than the shared global logger.
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithBoltTimeout bounds how long opening the underlying bbolt file may
// block waiting for the OS file lock held by another process.
func WithBoltTimeout(d time.Duration) Option {
	return func(c *config) { c.boltTimeout = d }
}
