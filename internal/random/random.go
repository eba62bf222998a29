// Package random holds the shuffle and sampling helpers used by quiz generation.
package random

import "math/rand"

// Source returns uniformly distributed values in [0, 1).
type Source func() float64

// Default is backed by the process-wide generator.
var Default Source = rand.Float64

// Intn draws an index in [0, n). n must be positive.
func (s Source) Intn(n int) int {
	i := int(s() * float64(n))
	// guard against sources that return exactly 1.0
	if i >= n {
		i = n - 1
	}
	return i
}

// Shuffle returns a permuted copy of items using Fisher-Yates. The input is not modified.
func Shuffle[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// PickOne returns a uniformly chosen element. items must not be empty.
func PickOne[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}

// PickN returns min(n, len(items)) distinct elements in random order.
func PickN[T any](src Source, items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	shuffled := Shuffle(src, items)
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Sequence cycles through values forever. It lets tests pin shuffle and pick results.
func Sequence(values ...float64) Source {
	i := 0
	return func() float64 {
		if len(values) == 0 {
			return 0
		}
		v := values[i%len(values)]
		i++
		return v
	}
}
