package purefn

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// table is a lock-striped key/value store behind Memoize.
// Each shard holds two generations; lookups consult the current one first.
type table[O any] struct {
	shards []*shard[O]
	logger *zap.Logger
}

type shard[O any] struct {
	mu      sync.RWMutex
	gens    [2]map[string]O
	headIdx int
	size    uint32
	maxSize uint32 // 0: unbounded
}

func newTable[O any](cfg config) *table[O] {
	var perShard uint32
	if cfg.capacity > 0 {
		n := uint32(cfg.shards)
		perShard = max((cfg.capacity+n-1)/n, 1)
	}
	shards := make([]*shard[O], cfg.shards)
	for i := range shards {
		shards[i] = &shard[O]{
			gens:    [2]map[string]O{{}, {}},
			maxSize: perShard,
		}
	}
	return &table[O]{
		shards: shards,
		logger: cfg.logger,
	}
}

func (t *table[O]) shardOf(key string) *shard[O] {
	if len(t.shards) == 1 {
		return t.shards[0]
	}
	return t.shards[xxhash.Sum64String(key)%uint64(len(t.shards))]
}

func (t *table[O]) Load(key string) (O, bool) {
	s := t.shardOf(key)
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.gens[s.headIdx][key]; ok {
		return v, true
	}
	v, ok := s.gens[1-s.headIdx][key]
	return v, ok
}

func (t *table[O]) Store(key string, value O) {
	s := t.shardOf(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	head := s.gens[s.headIdx]
	if _, exists := head[key]; exists {
		head[key] = value
		return
	}
	if s.maxSize > 0 && s.size >= s.maxSize {
		dropped := len(s.gens[1-s.headIdx])
		s.headIdx = 1 - s.headIdx
		s.gens[s.headIdx] = map[string]O{}
		s.size = 0
		head = s.gens[s.headIdx]
		t.logger.Debug("memo generation rotated", zap.Int("dropped", dropped))
	}
	head[key] = value
	s.size++
}

// Len counts distinct resident keys.
func (t *table[O]) Len() int {
	n := 0
	for _, s := range t.shards {
		s.mu.RLock()
		n += len(s.gens[s.headIdx])
		for k := range s.gens[1-s.headIdx] {
			if _, dup := s.gens[s.headIdx][k]; !dup {
				n++
			}
		}
		s.mu.RUnlock()
	}
	return n
}
