package vec

import "fmt"

// TransferMode selects how live elements relocate into a freshly
// allocated block when capacity grows.
type TransferMode int

const (
	// TransferMove relocates elements by value. A value move cannot
	// fail, so relocation under TransferMove always succeeds once the
	// new block exists. The old slots are vacated without Dispose;
	// ownership of any resources travels with the value.
	TransferMove TransferMode = iota

	// TransferClone deep-copies elements via Clone during relocation
	// and disposes the originals only after every clone has succeeded.
	// A failed clone rolls the relocation back completely, leaving the
	// vector untouched. Use this when two blocks must never reference
	// the same resource, even transiently. Requires a Clone hook;
	// without one the mode degrades to TransferMove.
	TransferClone
)

// Lifecycle configures how a Vector constructs, copies, and destroys its
// elements. The zero value describes a plain value type: zero-value
// construction, assignment copies, no cleanup, none of which can fail.
//
// A type whose elements own resources (Dispose != nil) must also supply
// Clone for copy operations to be meaningful; Clone and CopyFrom panic
// otherwise, since a plain assignment would leave two owners of one
// resource.
type Lifecycle[T any] struct {
	// Init produces a value for value-constructed slots (NewSizedWith,
	// Resize growth). nil means the zero value, which cannot fail.
	Init func() (T, error)

	// Clone produces a deep copy for copy construction, copy
	// assignment, and TransferClone relocation. nil means plain
	// assignment suffices and cannot fail.
	Clone func(T) (T, error)

	// Dispose releases resources held by an element before its slot is
	// vacated or its block freed. nil means elements hold nothing.
	// Dispose must not fail.
	Dispose func(*T)

	// Transfer selects the relocation strategy for growth.
	Transfer TransferMode
}

func (lc Lifecycle[T]) init() (T, error) {
	if lc.Init == nil {
		var zero T
		return zero, nil
	}
	return lc.Init()
}

func (lc Lifecycle[T]) clone(x T) (T, error) {
	if lc.Clone == nil {
		return x, nil
	}
	return lc.Clone(x)
}

func (lc Lifecycle[T]) dispose(p *T) {
	if lc.Dispose != nil {
		lc.Dispose(p)
	}
}

// cloneOnRelocate reports whether relocation must deep-copy. TransferClone
// without a Clone hook is a plain copy anyway, so it moves.
func (lc Lifecycle[T]) cloneOnRelocate() bool {
	return lc.Transfer == TransferClone && lc.Clone != nil
}

func (lc Lifecycle[T]) requireCopyable() {
	if lc.Dispose != nil && lc.Clone == nil {
		panic("vec: element type with Dispose requires Clone for copy operations")
	}
}

// constructRange value-constructs every slot in slots. On failure the
// partially constructed batch is disposed and vacated before the error
// returns, leaving the range raw.
func (lc Lifecycle[T]) constructRange(slots []T) error {
	for i := range slots {
		v, err := lc.init()
		if err != nil {
			lc.disposeRange(slots[:i])
			vacate(slots[:i])
			return fmt.Errorf("vec: construct element %d: %w", i, err)
		}
		slots[i] = v
	}
	return nil
}

// cloneRange copies src into dst slot by slot. On failure the clones made
// so far are disposed and their slots vacated before the error returns.
// dst must have at least len(src) raw slots.
func (lc Lifecycle[T]) cloneRange(dst, src []T) error {
	for i := range src {
		v, err := lc.clone(src[i])
		if err != nil {
			lc.disposeRange(dst[:i])
			vacate(dst[:i])
			return fmt.Errorf("vec: clone element %d: %w", i, err)
		}
		dst[i] = v
	}
	return nil
}

// disposeRange runs Dispose over every slot in slots. The slots still
// hold their stale values afterwards; callers vacate as needed.
func (lc Lifecycle[T]) disposeRange(slots []T) {
	if lc.Dispose == nil {
		return
	}
	for i := range slots {
		lc.Dispose(&slots[i])
	}
}

// vacate returns slots to the raw state so stale values do not pin
// memory through the garbage collector.
func vacate[T any](slots []T) {
	clear(slots)
}
