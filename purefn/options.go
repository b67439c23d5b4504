package purefn

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/underbar/internal/logging"

	"go.uber.org/zap"
)

const defaultShards = 16

var ErrZeroShards = errors.New("number of shards should be greater than 0")

// Option configures a memoized function.
type Option func(*config)

type config struct {
	capacity uint32
	shards   int
	logger   *zap.Logger
}

func newConfig(opts []Option) config {
	cfg := config{shards: defaultShards}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.logger = logging.OrNop(cfg.logger)
	return cfg
}

// WithCapacity bounds the table to roughly two generations of n entries.
// Zero means unbounded, which is the default.
func WithCapacity(n uint32) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithShards sets the number of lock stripes of the table.
func WithShards(n int) Option {
	if n <= 0 {
		panic(fmt.Errorf("%w: %d", ErrZeroShards, n))
	}
	return func(c *config) {
		c.shards = n
	}
}

// WithLogger logs table misses and generation rotations at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
