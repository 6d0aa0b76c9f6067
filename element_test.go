package vec

import "errors"

var errBoom = errors.New("boom")

// counters tallies lifecycle events so tests can check rollback and leak
// behavior. Setting failInitAt or failCloneAt makes the Nth call of that
// hook fail; a failed call constructs nothing.
type counters struct {
	inits    int
	clones   int
	disposes int

	failInitAt  int
	failCloneAt int
}

func (c *counters) lifecycle() Lifecycle[int] {
	return Lifecycle[int]{
		Init: func() (int, error) {
			c.inits++
			if c.failInitAt != 0 && c.inits == c.failInitAt {
				return 0, errBoom
			}
			return 0, nil
		},
		Clone: func(x int) (int, error) {
			c.clones++
			if c.failCloneAt != 0 && c.clones == c.failCloneAt {
				return 0, errBoom
			}
			return x, nil
		},
		Dispose: func(p *int) { c.disposes++ },
	}
}

// cloneTransferLifecycle is the same as lifecycle but relocates by
// deep copy instead of by move.
func (c *counters) cloneTransferLifecycle() Lifecycle[int] {
	lc := c.lifecycle()
	lc.Transfer = TransferClone
	return lc
}

func contents(v *Vector[int]) []int {
	out := make([]int, 0, v.Len())
	for _, x := range v.All() {
		out = append(out, x)
	}
	return out
}
