package tables

import "sync"

// Cache hands out shared read-only tables keyed by transform size.
type Cache struct {
	radix4 sync.Map // map[int]*Radix4
	real   sync.Map // map[int][]complex128
}

// Shared is the process-wide table cache.
var Shared Cache

// Radix4 returns the tables for size n, building them on first use.
// hit reports whether the tables were already cached.
func (c *Cache) Radix4(n int) (t *Radix4, hit bool, err error) {
	if v, ok := c.radix4.Load(n); ok {
		return v.(*Radix4), true, nil
	}

	t, err = NewRadix4(n)
	if err != nil {
		return nil, false, err
	}

	actual, loaded := c.radix4.LoadOrStore(n, t)

	return actual.(*Radix4), loaded, nil
}

// RealRoots returns the real-unpack roots for size n.
func (c *Cache) RealRoots(n int) []complex128 {
	if v, ok := c.real.Load(n); ok {
		return v.([]complex128)
	}

	actual, _ := c.real.LoadOrStore(n, RealRoots(n))

	return actual.([]complex128)
}
