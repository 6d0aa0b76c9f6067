package vec

// RawBlock owns storage for a fixed number of slots of T and nothing
// else. It never constructs, copies, or disposes elements; which slots
// hold live values is tracked entirely by the owner. Ownership is
// exclusive: a RawBlock must not be copied, only swapped.
type RawBlock[T any] struct {
	slots []T
}

// NewRawBlock allocates storage for exactly capacity slots. A capacity of
// zero yields the null block, which owns no storage. Negative capacity
// panics.
//
// The storage is typed so that pointer-bearing elements stay visible to
// the garbage collector, but the block treats every slot as raw: the
// zeroed contents carry no meaning until the owner places a value there.
func NewRawBlock[T any](capacity int) RawBlock[T] {
	if capacity < 0 {
		panic("vec: negative RawBlock capacity")
	}
	if capacity == 0 {
		return RawBlock[T]{}
	}
	return RawBlock[T]{slots: make([]T, capacity)}
}

// Capacity returns the number of slots the block owns.
func (b *RawBlock[T]) Capacity() int {
	return len(b.slots)
}

// At returns a pointer to slot i. The slot may be raw; interpreting its
// contents is the owner's responsibility. Panics if i is out of range.
func (b *RawBlock[T]) At(i int) *T {
	if i < 0 || i >= len(b.slots) {
		panic("vec: RawBlock slot out of range")
	}
	return &b.slots[i]
}

// Swap exchanges ownership of storage between two blocks in constant
// time. It never allocates and never fails.
func (b *RawBlock[T]) Swap(other *RawBlock[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Release drops the owned storage, returning the block to the null
// state. Idempotent. The owner must have disposed any live elements
// first; Release itself never touches element state.
func (b *RawBlock[T]) Release() {
	b.slots = nil
}
