package fenwick

// RangeTree solves the range-update range-query variation of the
// Dynamic Partial Sums problem by coupling two Trees over the same
// fictive array a[1..n].
//
// The first tree accumulates the raw range deltas as boundary point
// updates; the second weighs each boundary by the indices it excludes,
// so that t1.PrefixSum(idx)*idx - t2.PrefixSum(idx) telescopes into the
// true prefix sum. The underlying array is reachable only through the
// derived prefix and range sums.
type RangeTree struct {
	n  int
	t1 *Tree
	t2 *Tree
}

// NewRangeTree creates a range-update range-query structure of size
// n = 2^order - 1 with every element zero.
func NewRangeTree(order int) (*RangeTree, error) {
	t1, err := New(order)
	if err != nil {
		return nil, err
	}
	t2, err := New(order)
	if err != nil {
		return nil, err
	}
	return &RangeTree{n: t1.Size(), t1: t1, t2: t2}, nil
}

// Size returns n, the size of the fictive array.
func (t *RangeTree) Size() int {
	return t.n
}

// Update adds delta to every a[x] with l <= x <= r. O(log n).
func (t *RangeTree) Update(l, r int, delta int64) {
	checkRange("Update", l, r, t.n)
	t.t1.Update(l, delta)
	t.t2.Update(l, delta*int64(l-1))
	if r < t.n {
		t.t1.Update(r+1, -delta)
		t.t2.Update(r+1, delta*int64(r))
	}
}

// PrefixSum returns a[1] + ... + a[idx]. O(log n).
func (t *RangeTree) PrefixSum(idx int) int64 {
	checkIndex("PrefixSum", idx, t.n)
	return t.t1.PrefixSum(idx)*int64(idx) - t.t2.PrefixSum(idx)
}

// RangeSum returns a[l] + ... + a[r]. O(log n).
func (t *RangeTree) RangeSum(l, r int) int64 {
	checkRange("RangeSum", l, r, t.n)
	sum := t.PrefixSum(r)
	if l > 1 {
		sum -= t.PrefixSum(l - 1)
	}
	return sum
}
