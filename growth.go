package vec

// growCapacity returns the block size for implicit growth: doubling,
// from a floor of one slot.
func growCapacity(oldCap int) int {
	if oldCap == 0 {
		return 1
	}
	return 2 * oldCap
}

// relocate transfers all live elements into a block of exactly newCap
// slots and swaps it in. Under clone transfer a failed copy releases the
// new block and leaves the vector untouched; under move transfer no step
// can fail.
func (v *Vector[T]) relocate(newCap int) error {
	nb := NewRawBlock[T](newCap)
	if v.lc.cloneOnRelocate() {
		if err := v.lc.cloneRange(nb.slots[:v.size], v.live()); err != nil {
			nb.Release()
			return err
		}
		v.lc.disposeRange(v.live())
	} else {
		copy(nb.slots, v.live())
	}
	vacate(v.live())
	v.data.Swap(&nb)
	nb.Release()
	return nil
}

// Reserve grows capacity to exactly n slots, relocating the live
// elements. A no-op when n <= Cap(); capacity never shrinks here. The
// returned error is always nil under move transfer.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	return v.relocate(n)
}

// Resize changes the live count to n. Shrinking disposes the excess
// tail. Growing reserves capacity, then value-constructs the new tail
// via Init; if a construction fails the partial tail is disposed and the
// length is unchanged, though capacity reserved beforehand is kept.
// Panics if n is negative.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		panic("vec: negative size")
	case n == v.size:
		return nil
	case n < v.size:
		tail := v.data.slots[n:v.size]
		v.lc.disposeRange(tail)
		vacate(tail)
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	if err := v.lc.constructRange(v.data.slots[v.size:n]); err != nil {
		return err
	}
	v.size = n
	return nil
}
