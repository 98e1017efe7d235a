package fenwick

import "fmt"

// Tree2D is a two-dimensional Fenwick tree over a fictive grid
// a[1..n][1..n] with n = 2^order - 1. The low-bit interval invariant
// of Tree holds independently along both axes: the cell (x, y) sums
// the rectangle (x - lowBit(x), x] x (y - lowBit(y), y].
type Tree2D struct {
	n int
	// t is the flattened (n+1) x (n+1) grid; cell (x, y) lives at
	// (n+1)*y + x. Row 0 and column 0 are unused.
	t []int64
}

// New2D creates an n x n grid tree, n = 2^order - 1, with every cell
// zero. Storage grows as the square of 2^order, hence the tighter
// order bound.
func New2D(order int) (*Tree2D, error) {
	if order < 1 || order > 15 {
		return nil, fmt.Errorf("fenwick: 2D order must be in [1, 15], got %d", order)
	}
	n := 1<<order - 1
	return &Tree2D{
		n: n,
		t: make([]int64, (n+1)*(n+1)),
	}, nil
}

// Size returns n; the grid is n x n.
func (t *Tree2D) Size() int {
	return t.n
}

// Clear sets every grid element back to zero. O(n^2).
func (t *Tree2D) Clear() {
	for i := range t.t {
		t.t[i] = 0
	}
}

// Update adds delta to a[x][y]. O(log^2 n).
func (t *Tree2D) Update(x, y int, delta int64) {
	checkIndex("Update", x, t.n)
	checkIndex("Update", y, t.n)
	for ; x <= t.n; x += x & -x {
		for yy := y; yy <= t.n; yy += yy & -yy {
			t.t[(t.n+1)*yy+x] += delta
		}
	}
}

// PrefixSum returns the sum over the rectangle a[1:x][1:y]. O(log^2 n).
func (t *Tree2D) PrefixSum(x, y int) int64 {
	checkIndex("PrefixSum", x, t.n)
	checkIndex("PrefixSum", y, t.n)
	var sum int64
	for ; x >= 1; x -= x & -x {
		for yy := y; yy >= 1; yy -= yy & -yy {
			sum += t.t[(t.n+1)*yy+x]
		}
	}
	return sum
}

// RangeSum returns the sum over the rectangle a[x1:x2][y1:y2] by
// inclusion-exclusion over four prefix sums. O(log^2 n).
func (t *Tree2D) RangeSum(x1, y1, x2, y2 int) int64 {
	checkRange("RangeSum", x1, x2, t.n)
	checkRange("RangeSum", y1, y2, t.n)
	sum := t.PrefixSum(x2, y2)
	if x1 > 1 {
		sum -= t.PrefixSum(x1-1, y2)
	}
	if y1 > 1 {
		sum -= t.PrefixSum(x2, y1-1)
	}
	if x1 > 1 && y1 > 1 {
		sum += t.PrefixSum(x1-1, y1-1)
	}
	return sum
}
