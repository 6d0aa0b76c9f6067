// Package vec implements a generic resizable sequence container with
// explicit element lifetime management.
//
// # Overview
//
// A Vector owns a single contiguous block of slots and a count of live
// elements within it. Unlike a plain slice, a Vector separates storage
// from element lifetime: slots beyond Len() are raw, and the container
// alone decides when an element comes into existence, when it is copied,
// and when its resources are released. This is useful for:
//
//   - Element types that own external resources (handles, buffers,
//     connections) and need deterministic cleanup
//   - Element types whose construction or copy can fail, where a bulk
//     operation must either complete fully or leave no trace
//   - Code that needs precise control over when and how storage grows
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release()
//
//	for i := 0; i < 10; i++ {
//		v.PushBack(i)
//	}
//	v.Insert(0, -1)
//	v.Erase(3)
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Element Lifecycle
//
// A Lifecycle value customizes construction (Init), deep copy (Clone),
// and cleanup (Dispose) for the element type, plus how elements relocate
// to a new block when capacity grows (Transfer). The zero Lifecycle
// describes a plain value type: zero-value construction, assignment
// copies, no cleanup, none of which can fail.
//
//	v := vec.NewWith(vec.Lifecycle[*os.File]{
//		Dispose: func(f **os.File) { (*f).Close() },
//	})
//
// # Growth
//
// Capacity grows by doubling: an insertion into a full vector allocates a
// block of max(1, 2*cap) slots, giving amortized O(1) appends. Reserve
// and Resize allocate exactly the requested slot count. Capacity never
// shrinks except through Swap, MoveFrom, or Release.
//
// # Failure Semantics
//
// Operations that can run a fallible hook (Init, Clone, or an emplace
// constructor) return an error. A failed operation disposes anything it
// partially built and leaves the vector's length, capacity, and contents
// exactly as they were before the call. Relocation stages all fallible
// work in a fresh block and commits it with a constant-time swap only
// after every step has succeeded.
//
// Out-of-range indexes and other contract violations panic; they are
// caller bugs, not recoverable conditions. Allocation failure surfaces as
// a runtime panic, as with any Go allocation.
//
// # Thread Safety
//
// A Vector is not goroutine-safe. It is a single-writer data structure;
// callers coordinating concurrent access must provide their own
// synchronization.
package vec
