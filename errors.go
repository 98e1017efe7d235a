package fenwick

import "fmt"

// RangeError is the panic value raised by tree operations when an index
// argument falls outside the structure's valid range. The reference
// operations treat out-of-range indices as undefined behavior; here they
// are surfaced as a distinct, recoverable kind instead.
type RangeError struct {
	// Op is the operation that rejected the argument, e.g. "PrefixSum".
	Op string
	// Index is the offending value.
	Index int
	// Min and Max delimit the valid range, inclusive.
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("fenwick: %s: index %d out of range [%d, %d]", e.Op, e.Index, e.Min, e.Max)
}

func checkIndex(op string, idx, n int) {
	if idx < 1 || idx > n {
		panic(&RangeError{Op: op, Index: idx, Min: 1, Max: n})
	}
}

func checkRange(op string, l, r, n int) {
	checkIndex(op, l, n)
	checkIndex(op, r, n)
	if l > r {
		panic(&RangeError{Op: op, Index: l, Min: 1, Max: r})
	}
}
