// Package pool recycles short-lived simulation entities (lasers, particles,
// shards, shock waves) so a busy frame does not allocate.
package pool

// Pool hands out *T values from a free list and tracks which are live.
// A handle is either live (in Active) or free, never both.
// Pool is not safe for concurrent use; the simulation runs on one goroutine.
type Pool[T any] struct {
	active []*T
	free   []*T
	live   map[*T]struct{}
	limit  int
}

// New creates a pool with capacity entities preallocated.
// A positive limit caps the number of live entities; Acquire returns nil
// beyond it.
func New[T any](capacity, limit int) *Pool[T] {
	p := &Pool[T]{
		active: make([]*T, 0, capacity),
		free:   make([]*T, 0, capacity),
		live:   make(map[*T]struct{}, capacity),
		limit:  limit,
	}
	for i := 0; i < capacity; i++ {
		p.free = append(p.free, new(T))
	}
	return p
}

// Acquire takes a free entity (allocating only when none is free), resets it
// to the zero value and runs init on it before making it live.
func (p *Pool[T]) Acquire(init func(*T)) *T {
	if p.limit > 0 && len(p.active) >= p.limit {
		return nil
	}

	var item *T
	if n := len(p.free); n > 0 {
		item = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	} else {
		item = new(T)
	}

	var zero T
	*item = zero
	if init != nil {
		init(item)
	}

	p.active = append(p.active, item)
	p.live[item] = struct{}{}
	return item
}

// Release returns a live entity to the free list.
// Releasing a handle that is not live is refused and reports false.
func (p *Pool[T]) Release(item *T) bool {
	if _, ok := p.live[item]; !ok {
		return false
	}
	for i, a := range p.active {
		if a == item {
			copy(p.active[i:], p.active[i+1:])
			p.active[len(p.active)-1] = nil
			p.active = p.active[:len(p.active)-1]
			break
		}
	}
	delete(p.live, item)
	p.free = append(p.free, item)
	return true
}

// Sweep keeps the live entities for which keep returns true and releases the
// rest, preserving the order of the survivors. It returns the number released.
func (p *Pool[T]) Sweep(keep func(*T) bool) int {
	kept := p.active[:0]
	released := 0
	for _, item := range p.active {
		if keep(item) {
			kept = append(kept, item)
			continue
		}
		delete(p.live, item)
		p.free = append(p.free, item)
		released++
	}
	for i := len(kept); i < len(p.active); i++ {
		p.active[i] = nil
	}
	p.active = kept
	return released
}

// Each calls fn for every live entity in acquisition order.
// fn must not acquire or release; mark entities and Sweep afterwards.
func (p *Pool[T]) Each(fn func(*T)) {
	for _, item := range p.active {
		fn(item)
	}
}

// Active returns the live entities. The slice is only valid until the next
// Acquire, Release, Sweep or Reset.
func (p *Pool[T]) Active() []*T {
	return p.active
}

// Live reports whether item is currently handed out.
func (p *Pool[T]) Live(item *T) bool {
	_, ok := p.live[item]
	return ok
}

// Len returns the number of live entities.
func (p *Pool[T]) Len() int {
	return len(p.active)
}

// Free returns the number of entities waiting for reuse.
func (p *Pool[T]) Free() int {
	return len(p.free)
}

// Reset releases every live entity.
func (p *Pool[T]) Reset() {
	p.Sweep(func(*T) bool { return false })
}
