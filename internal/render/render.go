// Package render materializes a filtered entry list into view elements a
// batch at a time, on demand.
package render

import "github.com/nikbrunner/emj/internal/model"

// DefaultBatchSize is the number of elements materialized per batch.
const DefaultBatchSize = 60

// State is the renderer's scheduling state.
type State int

const (
	Idle State = iota
	BatchPending
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case BatchPending:
		return "batch-pending"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// BuildFunc materializes the entry at index of the current list.
type BuildFunc[T any] func(index int, e model.Entry) T

// Renderer keeps a cursor into the current list. Elements with index below
// the cursor are exactly the materialized ones.
type Renderer[T any] struct {
	batchSize int
	build     BuildFunc[T]

	items    []model.Entry
	elements []T
	cursor   int
	state    State
	epoch    uint64
}

// New creates a Renderer. A batchSize below 1 uses DefaultBatchSize.
func New[T any](batchSize int, build BuildFunc[T]) *Renderer[T] {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &Renderer[T]{
		batchSize: batchSize,
		build:     build,
	}
}

// Reset replaces the list. The cursor returns to 0 and all elements from the
// previous list are discarded before anything new is materialized.
func (r *Renderer[T]) Reset(items []model.Entry) {
	r.items = items
	r.elements = nil
	r.cursor = 0
	r.state = Idle
	r.epoch++
}

// LoadNextBatch materializes [cursor, min(len, cursor+batchSize)) and
// advances the cursor. An empty range is a no-op. Returns the number of
// elements added.
func (r *Renderer[T]) LoadNextBatch() int {
	from := r.cursor
	to := min(len(r.items), r.cursor+r.batchSize)
	if from >= to {
		return 0
	}

	r.state = BatchPending
	for i := from; i < to; i++ {
		r.elements = append(r.elements, r.build(i, r.items[i]))
	}
	r.cursor = to

	if r.cursor == len(r.items) {
		r.state = Exhausted
	} else {
		r.state = Idle
	}
	return to - from
}

// NearEnd reports whether position is within margin rows of the last
// materialized element while more remain to load. It is the demand signal
// that triggers LoadNextBatch.
func (r *Renderer[T]) NearEnd(position, margin int) bool {
	if r.state == Exhausted || r.cursor >= len(r.items) {
		return false
	}
	return position >= r.cursor-1-margin
}

// Cursor returns the number of materialized elements.
func (r *Renderer[T]) Cursor() int {
	return r.cursor
}

// Len returns the length of the current list.
func (r *Renderer[T]) Len() int {
	return len(r.items)
}

// State returns the current scheduling state.
func (r *Renderer[T]) State() State {
	return r.state
}

// Epoch identifies the current list; it changes on every Reset.
func (r *Renderer[T]) Epoch() uint64 {
	return r.epoch
}

// BatchSize returns the configured batch size.
func (r *Renderer[T]) BatchSize() int {
	return r.batchSize
}

// Elements returns a copy of the materialized elements.
func (r *Renderer[T]) Elements() []T {
	out := make([]T, len(r.elements))
	copy(out, r.elements)
	return out
}

// Element returns the materialized element at i.
func (r *Renderer[T]) Element(i int) (T, bool) {
	if i < 0 || i >= len(r.elements) {
		var zero T
		return zero, false
	}
	return r.elements[i], true
}

// Update applies fn to the materialized element at i in place.
func (r *Renderer[T]) Update(i int, fn func(*T)) bool {
	if i < 0 || i >= len(r.elements) {
		return false
	}
	fn(&r.elements[i])
	return true
}
