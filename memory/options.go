package memory

import (
	"log/slog"
	"os"
)

const (
	// DefaultChunkSize is the default chunk capacity in bytes (1 MiB).
	DefaultChunkSize = 1024 * 1024

	// DefaultInitialChunks is the default number of chunks pre-created at
	// pool construction.
	DefaultInitialChunks = 20

	// DefaultInitialBudget is the default byte budget pre-created at pool
	// construction (20 chunks of the default chunk size). Pools whose chunks
	// are larger than DefaultChunkSize pre-create fewer chunks to stay
	// within this budget.
	DefaultInitialBudget = DefaultInitialChunks * DefaultChunkSize

	// MaxChunks limits the chunk count per pool. With the default chunk
	// size this caps addressable pool memory at 64 GiB.
	MaxChunks = 65536
)

type options struct {
	chunkSize     int
	initialChunks int
	checks        bool
	logger        *slog.Logger
}

// Option configures a Pool at construction.
type Option func(*options)

// WithChunkSize sets the byte capacity of each chunk. Values smaller than
// the slot size are raised to one slot. The chunk size is per-pool
// configuration; there is no process-wide default to mutate.
func WithChunkSize(bytes int) Option {
	return func(o *options) {
		if bytes > 0 {
			o.chunkSize = bytes
		}
	}
}

// WithInitialChunks sets how many chunks are pre-created by New.
// The default derives from DefaultInitialBudget and the chunk size.
func WithInitialChunks(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialChunks = n
		}
	}
}

// WithChecks enables misuse checking: Free and Bytes validate slots against
// a live-slot set, and double frees, foreign frees and stale slots become
// logged no-ops instead of undefined behavior. Checking costs time and a
// little memory per chunk; the default is off.
func WithChecks(enabled bool) Option {
	return func(o *options) {
		o.checks = enabled
	}
}

// WithLogger sets the logger used for diagnostics.
// If nil is passed, the default text logger is kept.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func defaultOptions() options {
	return options{
		chunkSize: DefaultChunkSize,
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	}
}
