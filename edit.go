package vec

import "fmt"

// PushBack appends x, taking ownership of the value; a caller that wants
// to keep its own copy clones first. The in-capacity path cannot fail;
// the growth path can fail only under clone transfer, in which case the
// vector is untouched.
func (v *Vector[T]) PushBack(x T) error {
	if v.size == v.Cap() {
		if err := v.relocate(growCapacity(v.Cap())); err != nil {
			return err
		}
	}
	v.data.slots[v.size] = x
	v.size++
	return nil
}

// EmplaceBack appends an element produced by ctor and returns a pointer
// to it. If ctor fails the vector is left exactly as it was.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	return v.Emplace(v.size, ctor)
}

// PopBack disposes the last element and shortens the vector by one.
// A no-op on an empty vector; never fails.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.lc.dispose(&v.data.slots[v.size])
	vacate(v.data.slots[v.size : v.size+1])
}

// Insert places x at index i, shifting [i, Len()) one slot right. The
// index may equal Len(), which appends. Ownership of x passes to the
// vector.
func (v *Vector[T]) Insert(i int, x T) error {
	_, err := v.Emplace(i, func() (T, error) { return x, nil })
	return err
}

// Emplace constructs an element via ctor at index i, shifting subsequent
// elements one slot right, and returns a pointer to it. The index may
// equal Len(), which appends.
//
// ctor runs before any slot is touched, so a ctor failure leaves the
// vector exactly as it was. When capacity is exhausted the new element
// is constructed at its final offset in a fresh block before the old
// elements transfer around it, and the blocks swap only after every step
// has succeeded.
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (*T, error) {
	if ctor == nil {
		panic("vec: nil constructor")
	}
	if i < 0 || i > v.size {
		panic("vec: insert index out of range")
	}
	if v.size == v.Cap() {
		return v.emplaceGrow(i, ctor)
	}
	x, err := ctor()
	if err != nil {
		return nil, fmt.Errorf("vec: emplace element: %w", err)
	}
	if i < v.size {
		copy(v.data.slots[i+1:v.size+1], v.data.slots[i:v.size])
	}
	v.data.slots[i] = x
	v.size++
	return &v.data.slots[i], nil
}

// emplaceGrow is the reallocating Emplace path: stage the new element
// and both halves of the old contents in a new block, then commit by
// swap. Any failure disposes whatever was staged and leaves the vector
// untouched.
func (v *Vector[T]) emplaceGrow(i int, ctor func() (T, error)) (*T, error) {
	nb := NewRawBlock[T](growCapacity(v.Cap()))
	x, err := ctor()
	if err != nil {
		nb.Release()
		return nil, fmt.Errorf("vec: emplace element: %w", err)
	}
	nb.slots[i] = x
	if v.lc.cloneOnRelocate() {
		if err := v.lc.cloneRange(nb.slots[:i], v.data.slots[:i]); err != nil {
			v.lc.dispose(&nb.slots[i])
			nb.Release()
			return nil, err
		}
		if err := v.lc.cloneRange(nb.slots[i+1:v.size+1], v.data.slots[i:v.size]); err != nil {
			v.lc.disposeRange(nb.slots[:i])
			v.lc.dispose(&nb.slots[i])
			nb.Release()
			return nil, err
		}
		v.lc.disposeRange(v.live())
	} else {
		copy(nb.slots[:i], v.data.slots[:i])
		copy(nb.slots[i+1:v.size+1], v.data.slots[i:v.size])
	}
	vacate(v.live())
	v.data.Swap(&nb)
	nb.Release()
	v.size++
	return &v.data.slots[i], nil
}

// Erase disposes element i and shifts (i, Len()) one slot left. It
// returns i, which now addresses the former successor, or Len() when the
// last element was removed. Panics if i >= Len().
func (v *Vector[T]) Erase(i int) int {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	v.lc.dispose(&v.data.slots[i])
	copy(v.data.slots[i:v.size-1], v.data.slots[i+1:v.size])
	v.size--
	vacate(v.data.slots[v.size : v.size+1])
	return i
}
