package form

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/leapstack-labs/musbsite/internal/metrics"
)

// Registry defaults.
const (
	DefaultRegistrySize = 4096
	DefaultRegistryTTL  = 30 * time.Minute
)

// Registry holds the machines of every visitor's forms. Entries are bounded
// in number and expire after TTL without use.
type Registry struct {
	mu      sync.Mutex
	cache   *expirable.LRU[string, *Machine]
	forms   map[string]Options
	metrics *metrics.Metrics
}

// NewRegistry creates a registry for at most size machines. Non-positive
// size or ttl select the defaults.
func NewRegistry(size int, ttl time.Duration, m *metrics.Metrics) *Registry {
	if size <= 0 {
		size = DefaultRegistrySize
	}
	if ttl <= 0 {
		ttl = DefaultRegistryTTL
	}
	return &Registry{
		cache:   expirable.NewLRU[string, *Machine](size, nil, ttl),
		forms:   make(map[string]Options),
		metrics: m,
	}
}

// Define sets the options for a form name. Machines created afterwards use them.
func (r *Registry) Define(name string, opts Options) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms[name] = opts
}

// Machine returns the machine for the visitor's form, creating an idle one
// on first use.
func (r *Registry) Machine(visitor, name string) *Machine {
	key := visitor + "\x00" + name

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.cache.Get(key); ok {
		r.cache.Add(key, m) // refresh expiry
		return m
	}
	m := NewMachine(name, r.forms[name], r.metrics)
	r.cache.Add(key, m)
	return m
}

// Len returns the number of live machines.
func (r *Registry) Len() int { return r.cache.Len() }
