// Package slab implements the managed allocator backing plorth's value
// model (spec section 4.2): a pool that hands out handles for composite
// values and tracks live allocations so that
// unreleased objects can be reported in debug builds.
//
// This is adapted from gothird/internal/mem's paged bookkeeping (bases,
// sizes, page growth) but generalized from addressable integer memory to
// opaque per-kind allocation counters, since plorth values are ordinary
// Go heap objects rather than cells in a linear memory. Per the design
// note in spec.md section 9 ("if a target language offers tracing GC,
// use it directly and delete the refcount scheme"), actual memory is
// reclaimed by the Go garbage collector; the pool rides on top of it
// using runtime.SetFinalizer so that LiveCount/Report reflect real
// collection pressure instead of a parallel, fake accounting scheme.
package slab

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
)

// Handle identifies one tracked allocation.
type Handle uint64

// Pool hands out Handles for composite value allocations (arrays,
// objects) and tracks how many of each kind are still live.
type Pool struct {
	mu     sync.Mutex
	nextID uint64
	live   map[Handle]string
	limit  uint
}

// NewPool builds an empty pool. limit, if non-zero, caps the number of
// simultaneously live allocations the pool will hand out (mirroring the
// runtime's configurable memory limit); 0 means unlimited.
func NewPool(limit uint) *Pool {
	return &Pool{live: make(map[Handle]string), limit: limit}
}

// LimitError indicates Alloc would exceed the pool's configured limit.
type LimitError struct{ Limit uint }

func (e LimitError) Error() string {
	return fmt.Sprintf("memory limit of %d live allocations exceeded", e.Limit)
}

// Track registers obj (kind labels it for Report) and arranges for the
// pool to learn when obj is garbage collected. It returns the handle;
// callers don't need to do anything else; release happens automatically
// via finalizer. Returns an error if the pool's limit would be exceeded.
func (p *Pool) Track(kind string, obj interface{}) (Handle, error) {
	p.mu.Lock()
	if p.limit != 0 && uint(len(p.live)) >= p.limit {
		p.mu.Unlock()
		return 0, LimitError{p.limit}
	}
	p.nextID++
	h := Handle(p.nextID)
	p.live[h] = kind
	p.mu.Unlock()

	runtime.SetFinalizer(obj, func(interface{}) {
		p.release(h)
	})
	return h, nil
}

func (p *Pool) release(h Handle) {
	p.mu.Lock()
	delete(p.live, h)
	p.mu.Unlock()
}

// LiveCount returns the number of allocations the pool believes are
// still live (not yet garbage collected).
func (p *Pool) LiveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.live)
}

// Report summarizes live allocations by kind, for debug-build shutdown
// diagnostics; empty when nothing is outstanding.
func (p *Pool) Report() map[string]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	counts := make(map[string]int, len(p.live))
	for _, kind := range p.live {
		counts[kind]++
	}
	return counts
}

// ReportLines renders Report as sorted, human-readable lines, for
// inclusion in a debug-mode shutdown log.
func (p *Pool) ReportLines() []string {
	counts := p.Report()
	lines := make([]string, 0, len(counts))
	for kind, n := range counts {
		lines = append(lines, fmt.Sprintf("%d live %s allocation(s)", n, kind))
	}
	sort.Strings(lines)
	return lines
}
