package fenwick

import (
	"fmt"
	"math"
)

// Inf is the sentinel returned by RMQ.Query for empty or out-of-range
// queries, and the value of every slot that has never been set. It is
// not a valid element value.
const Inf int64 = math.MaxInt64

// RMQ solves the dynamic range-minimum query problem over an array
// a[1..n]: point updates and arbitrary range-minimum queries, both in
// O(log n). Unlike Tree it is not built on prefix sums; minimum has no
// inverse, so a single Fenwick tree cannot answer arbitrary ranges.
// Instead the array is kept live alongside two mirrored trees:
//
//	lbit[i] = min of a[j] for j in (i - lowBit(i), i]  (left-looking)
//	rbit[i] = min of a[j] for j in [i, i + lowBit(i))  (right-looking)
//
// Any query range is then covered by climbing rbit blocks up from the
// left end and lbit blocks down from the right end.
type RMQ struct {
	n int
	// a holds the current element values, unset slots at Inf.
	a    []int64
	lbit []int64
	rbit []int64
}

// NewRMQ creates an RMQ structure over a[1..n] with every slot unset.
func NewRMQ(n int) (*RMQ, error) {
	if n < 1 {
		return nil, fmt.Errorf("fenwick: RMQ size must be positive, got %d", n)
	}
	q := &RMQ{
		n:    n,
		a:    make([]int64, n+1),
		lbit: make([]int64, n+1),
		rbit: make([]int64, n+1),
	}
	for i := 0; i <= n; i++ {
		q.a[i] = Inf
		q.lbit[i] = Inf
		q.rbit[i] = Inf
	}
	return q, nil
}

// Size returns n, the size of the array.
func (q *RMQ) Size() int {
	return q.n
}

// Query returns the minimum of a[from..to], or Inf when the range is
// empty or extends outside [1, n]. O(log n).
func (q *RMQ) Query(from, to int) int64 {
	if from < 1 || to > q.n || from > to {
		return Inf
	}

	res := Inf

	// Climb right-looking blocks up from the left end while the next
	// block still fits inside [from, to].
	i := from
	for ii := i + i&-i; i <= q.n && ii-1 <= to; ii = i + i&-i {
		res = min(res, q.rbit[i])
		i = ii
	}
	if i <= to {
		res = min(res, q.a[i])
	}

	// Climb left-looking blocks down from the right end for the rest.
	i = to
	for ii := i - i&-i; i >= 1 && ii+1 >= from; ii = i - i&-i {
		res = min(res, q.lbit[i])
		i = ii
	}
	if i >= from {
		res = min(res, q.a[i])
	}

	return res
}

// sides accumulates the minimum over a widening subrange around a
// changed slot, excluding the slot itself. The left cursor walks
// lbit blocks down from idx-1 and the right cursor walks rbit blocks
// up from idx+1; state persists across calls, so successive calls
// with wider bounds only pay for the newly covered blocks. That
// incremental reuse is what keeps RMQ.Update at O(log n) overall.
type sides struct {
	q *RMQ
	// Covered so far: (ll, idx-1] on the left, lr is the cursor.
	ll, lr int
	// Covered so far: [idx+1, rr) on the right, rl is the cursor.
	rl, rr int
	lmin   int64
	rmin   int64
}

func (q *RMQ) sidesAt(idx int) sides {
	lr := idx - 1
	rl := idx + 1
	return sides{
		q:    q,
		lr:   lr,
		ll:   lr - lr&-lr,
		rl:   rl,
		rr:   rl + rl&-rl,
		lmin: Inf,
		rmin: Inf,
	}
}

// extend widens the covered subrange to [l, r] (always containing the
// changed slot) and returns the minimum over it, the slot excluded.
func (s *sides) extend(l, r int) int64 {
	for s.lr >= 1 && s.ll+1 >= l {
		s.lmin = min(s.lmin, s.q.lbit[s.lr])
		s.lr = s.ll
		s.ll = s.lr - s.lr&-s.lr
	}
	if s.lr >= l {
		s.lmin = min(s.lmin, s.q.a[s.lr])
	}
	for s.rl <= s.q.n && s.rr-1 <= r {
		s.rmin = min(s.rmin, s.q.rbit[s.rl])
		s.rl = s.rr
		s.rr = s.rl + s.rl&-s.rl
	}
	if s.rl <= min(s.q.n, r) {
		s.rmin = min(s.rmin, s.q.a[s.rl])
	}
	return min(s.lmin, s.rmin)
}

// Update sets a[idx] to val. O(log n) amortized.
//
// Both trees are repaired lazily along the chains covering idx. A node
// whose aggregate is >= val is simply lowered: the new value alone now
// dominates its subrange. A node whose aggregate equals the old value
// may have depended on this slot and must be recomputed over its full
// subrange (minus the slot) via sides. Any other node's minimum cannot
// reference the slot and is left untouched.
func (q *RMQ) Update(idx int, val int64) {
	checkIndex("Update", idx, q.n)
	old := q.a[idx]
	if old == val {
		return
	}

	// Repair lbit along the ascending chain; node r covers
	// [r - lowBit(r) + 1, r].
	s := q.sidesAt(idx)
	for r := idx; r <= q.n; r += r & -r {
		switch {
		case val <= q.lbit[r]:
			q.lbit[r] = val
		case q.lbit[r] == old:
			q.lbit[r] = min(val, s.extend(r-r&-r+1, r))
		}
	}

	// Repair rbit along the descending chain; node l covers
	// [l, l + lowBit(l) - 1], clipped to n.
	s = q.sidesAt(idx)
	for l := idx; l >= 1; l -= l & -l {
		switch {
		case val <= q.rbit[l]:
			q.rbit[l] = val
		case q.rbit[l] == old:
			q.rbit[l] = min(val, s.extend(l, l+l&-l-1))
		}
	}

	q.a[idx] = val
}
