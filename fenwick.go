// Package fenwick implements the Fenwick (binary-indexed) tree family
// for the Dynamic Partial Sums problem and its variations.
//
// A Fenwick tree maintains a fictive array a[1..n] under updates while
// answering prefix-sum, range-sum and order-statistic queries in
// O(log n) time. The array itself is never stored: each tree slot T[i]
// holds the sum of a[j] for j in the half-open interval
// (i - lowBit(i), i], where lowBit(i) is the value of the lowest set
// bit of i. Walking i upward by i += i & -i visits exactly the slots
// whose interval contains i; walking downward by i -= i & -i peels off
// one binary block of the prefix per step.
//
// The package provides four structures:
//
//   - Tree: the base point-update prefix-sum tree, with optimized
//     variants of element access, range sum and order-statistic search,
//     plus the range-update point-query encoding.
//   - RangeTree: two coupled Trees solving range-update range-query.
//   - Tree2D: the two-dimensional generalization over a square grid.
//   - RMQ: an independent dual-tree structure solving dynamic
//     range-minimum queries.
//
// None of the structures are safe for concurrent use.
package fenwick

import "fmt"

// Tree is a Fenwick tree over a fictive array a[1..n] with
// n = 2^order - 1. The zero value is not usable; create instances
// with New.
//
// All indices are 1-based. Operations panic with *RangeError when an
// index argument falls outside [1, n].
type Tree struct {
	// n is the size of the fictive array.
	n int
	// highBit is the largest power of two not exceeding n, used as the
	// initial step of the binary-lifting search.
	highBit int
	// t[i] accumulates a[j] over (i - lowBit(i), i]; t[0] is unused.
	t []int64
}

// New creates a tree of size n = 2^order - 1 with every element zero.
func New(order int) (*Tree, error) {
	if order < 1 || order > 62 {
		return nil, fmt.Errorf("fenwick: order must be in [1, 62], got %d", order)
	}
	n := 1<<order - 1
	return &Tree{
		n:       n,
		highBit: 1 << (order - 1),
		t:       make([]int64, n+1),
	}, nil
}

// Size returns n, the size of the fictive array.
func (t *Tree) Size() int {
	return t.n
}

// Clear sets every array element back to zero.
func (t *Tree) Clear() {
	for i := range t.t {
		t.t[i] = 0
	}
}

// Update adds delta to a[idx]. O(log n).
func (t *Tree) Update(idx int, delta int64) {
	checkIndex("Update", idx, t.n)
	for ; idx <= t.n; idx += idx & -idx {
		t.t[idx] += delta
	}
}

// PrefixSum returns a[1] + ... + a[idx]. O(log n).
func (t *Tree) PrefixSum(idx int) int64 {
	checkIndex("PrefixSum", idx, t.n)
	var sum int64
	for ; idx >= 1; idx -= idx & -idx {
		sum += t.t[idx]
	}
	return sum
}

// RangeSum returns a[l] + ... + a[r]. O(log n).
func (t *Tree) RangeSum(l, r int) int64 {
	checkRange("RangeSum", l, r, t.n)
	sum := t.PrefixSum(r)
	if l > 1 {
		sum -= t.PrefixSum(l - 1)
	}
	return sum
}

// FastRangeSum returns a[l] + ... + a[r], like RangeSum, but converges
// two cursors toward the common ancestor of r and l-1 instead of
// computing two full prefix sums. Still O(log n), roughly half the
// slot reads.
func (t *Tree) FastRangeSum(l, r int) int64 {
	checkRange("FastRangeSum", l, r, t.n)
	sum := t.t[r]
	i := r - r&-r
	j := l - 1
	for i != j {
		if i > j {
			sum += t.t[i]
			i -= i & -i
		} else {
			sum -= t.t[j]
			j -= j & -j
		}
	}
	return sum
}

// Access returns a[idx]. O(log n).
func (t *Tree) Access(idx int) int64 {
	checkIndex("Access", idx, t.n)
	if idx == 1 {
		return t.t[1]
	}
	return t.PrefixSum(idx) - t.PrefixSum(idx-1)
}

// FastAccess returns a[idx]. Starting from t[idx], it climbs the
// cursors idx-lowBit(idx) and idx-1 toward their common ancestor,
// adding and subtracting the slots in between. O(1) on average,
// O(log n) worst case.
func (t *Tree) FastAccess(idx int) int64 {
	checkIndex("FastAccess", idx, t.n)
	sum := t.t[idx]
	i := idx - idx&-idx
	j := idx - 1
	for i != j {
		if i > j {
			sum += t.t[i]
			i -= i & -i
		} else {
			sum -= t.t[j]
			j -= j & -j
		}
	}
	return sum
}

// Search returns the smallest k such that a[1] + ... + a[k] >= val,
// or n+1 when the total sum falls short. Linear scan, O(n log n);
// kept as the reference baseline for FastSearch.
func (t *Tree) Search(val int64) int {
	for i := 1; i <= t.n; i++ {
		if t.PrefixSum(i) >= val {
			return i
		}
	}
	return t.n + 1
}

// FastSearch returns the smallest k such that a[1] + ... + a[k] >= val,
// or n+1 when the total sum falls short. Binary-lifting descent,
// O(log n).
//
// FastSearch requires the prefix sums to be nondecreasing, i.e. every
// element non-negative. The precondition is not validated; violating
// it silently yields a wrong answer.
func (t *Tree) FastSearch(val int64) int {
	val--
	i := 0
	for mask := t.highBit; mask != 0; mask >>= 1 {
		ii := i + mask
		if ii > t.n {
			continue
		}
		if t.t[ii] <= val {
			val -= t.t[ii]
			i = ii
		}
	}
	return i + 1
}

// Construct rebuilds the tree from a, which must have length n+1 with
// slot 0 unused: afterwards Access(i) == a[i] for every i. The input
// is left untouched. O(n log n).
func (t *Tree) Construct(a []int64) {
	if len(a) != t.n+1 {
		panic(&RangeError{Op: "Construct", Index: len(a), Min: t.n + 1, Max: t.n + 1})
	}
	for i := t.n; i >= 1; i-- {
		t.t[i] = 0
		t.Update(i, a[i])
	}
}

// FastConstruct rebuilds the tree from a, which must have length n+1
// with slot 0 unused, in O(n). The input is turned into its running
// cumulative-sum form in the process; callers that still need the
// original values must copy first.
func (t *Tree) FastConstruct(a []int64) {
	if len(a) != t.n+1 {
		panic(&RangeError{Op: "FastConstruct", Index: len(a), Min: t.n + 1, Max: t.n + 1})
	}
	a[0] = 0
	for i := 1; i <= t.n; i++ {
		a[i] += a[i-1]
	}
	for i := 1; i <= t.n; i++ {
		ii := i - i&-i
		if ii == 0 {
			t.t[i] = a[i]
		} else {
			t.t[i] = a[i] - a[ii]
		}
	}
}

// RangeUpdate adds delta to every a[x] with l <= x <= r, encoding the
// range as difference-array point updates at its boundaries. O(log n).
//
// RangeUpdate and PointQuery form the range-update point-query family.
// A tree instance is committed to one family for its lifetime: mixing
// them with Update/PrefixSum/RangeSum on the same instance yields
// meaningless results.
func (t *Tree) RangeUpdate(l, r int, delta int64) {
	checkRange("RangeUpdate", l, r, t.n)
	t.Update(l, delta)
	if r < t.n {
		t.Update(r+1, -delta)
	}
}

// PointQuery returns a[idx] under the range-update point-query family.
// O(log n).
func (t *Tree) PointQuery(idx int) int64 {
	checkIndex("PointQuery", idx, t.n)
	return t.PrefixSum(idx)
}
