package vec

import "iter"

// Vector is a resizable sequence container. It owns one RawBlock and
// tracks how many of its slots hold live elements: slots [0, Len()) are
// live, slots [Len(), Cap()) are raw. Not goroutine-safe.
type Vector[T any] struct {
	data RawBlock[T]
	size int
	lc   Lifecycle[T]
}

// New returns an empty vector with no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWith returns an empty vector using lc for element lifetime.
func NewWith[T any](lc Lifecycle[T]) *Vector[T] {
	return &Vector[T]{lc: lc}
}

// NewSized returns a vector of n zero-valued elements with capacity
// exactly n. Panics if n is negative.
func NewSized[T any](n int) *Vector[T] {
	return &Vector[T]{data: NewRawBlock[T](n), size: n}
}

// NewSizedWith returns a vector of n elements constructed via lc.Init
// with capacity exactly n. If a construction fails, the elements built
// so far are disposed and the block released before the error returns;
// nothing leaks.
func NewSizedWith[T any](lc Lifecycle[T], n int) (*Vector[T], error) {
	v := &Vector[T]{data: NewRawBlock[T](n), lc: lc}
	if err := lc.constructRange(v.data.slots); err != nil {
		v.data.Release()
		return nil, err
	}
	v.size = n
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots in the current block.
func (v *Vector[T]) Cap() int {
	return v.data.Capacity()
}

// At returns a pointer to element i, valid until the next operation that
// relocates or shifts elements. Panics if i >= Len(); callers must
// enforce the bound themselves.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	return &v.data.slots[i]
}

// live returns the live portion of the block.
func (v *Vector[T]) live() []T {
	return v.data.slots[:v.size]
}

// All returns a forward iterator over index/element pairs, in order.
// The vector must not be mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.slots[i]) {
				return
			}
		}
	}
}

// Swap exchanges the entire state of two vectors in constant time. It
// never allocates and never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.lc, other.lc = other.lc, v.lc
}

// Clone returns a deep copy with capacity exactly Len(). The copy shares
// no state with the original. If a Clone hook fails partway, the copies
// made so far are disposed and the error returns with nothing leaked.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.lc.requireCopyable()
	dst := &Vector[T]{data: NewRawBlock[T](v.size), lc: v.lc}
	if err := v.lc.cloneRange(dst.data.slots, v.live()); err != nil {
		dst.data.Release()
		return nil, err
	}
	dst.size = v.size
	return dst, nil
}

// CopyFrom replaces the receiver's contents with a deep copy of src.
// Copying from itself is a no-op.
//
// When element assignment can fail (a Clone hook is set) or src does not
// fit in the current block, the copy is staged in full and swapped in,
// so a failure leaves the receiver untouched. Otherwise existing
// capacity is reused in place; no step of that path can fail.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	v.lc.requireCopyable()
	if v.lc.Clone != nil || src.size > v.Cap() {
		tmp, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}
	n := copy(v.live(), src.live())
	if src.size < v.size {
		tail := v.data.slots[src.size:v.size]
		v.lc.disposeRange(tail)
		vacate(tail)
	} else {
		copy(v.data.slots[n:src.size], src.data.slots[n:src.size])
	}
	v.size = src.size
	return nil
}

// Take moves src's contents into a new vector in constant time. src is
// left valid and empty with its lifecycle intact; its capacity is gone
// with the block. No element is cloned.
func Take[T any](src *Vector[T]) *Vector[T] {
	dst := &Vector[T]{lc: src.lc}
	dst.data.Swap(&src.data)
	dst.size, src.size = src.size, 0
	return dst
}

// MoveFrom swaps state with src in constant time; moving from itself is
// a no-op. Afterwards src holds the receiver's previous contents, so a
// caller that is done with them should Release src.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Swap(src)
}

// Release disposes all live elements and frees the block. The vector
// becomes a valid empty container and may be reused. Idempotent.
func (v *Vector[T]) Release() {
	v.lc.disposeRange(v.live())
	v.data.Release()
	v.size = 0
}
