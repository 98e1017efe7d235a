package fenwick

import (
	"math/rand"
	"testing"
)

const benchOrder = 16

func newBenchTree(b *testing.B) (*Tree, []int) {
	b.Helper()
	r := rand.New(rand.NewSource(0xDEADBEEF))
	ft, err := New(benchOrder)
	if err != nil {
		b.Fatal(err)
	}
	n := ft.Size()
	for i := 1; i <= n; i++ {
		ft.Update(i, r.Int63n(1000))
	}
	idxs := make([]int, b.N)
	for i := range idxs {
		idxs[i] = 1 + r.Intn(n)
	}
	b.ResetTimer()
	return ft, idxs
}

func BenchmarkUpdate(b *testing.B) {
	ft, idxs := newBenchTree(b)
	for i := 0; i < b.N; i++ {
		ft.Update(idxs[i], 1)
	}
}

func BenchmarkPrefixSum(b *testing.B) {
	ft, idxs := newBenchTree(b)
	for i := 0; i < b.N; i++ {
		ft.PrefixSum(idxs[i])
	}
}

func BenchmarkAccess(b *testing.B) {
	ft, idxs := newBenchTree(b)
	for i := 0; i < b.N; i++ {
		ft.Access(idxs[i])
	}
}

func BenchmarkFastAccess(b *testing.B) {
	ft, idxs := newBenchTree(b)
	for i := 0; i < b.N; i++ {
		ft.FastAccess(idxs[i])
	}
}

func BenchmarkRangeSum(b *testing.B) {
	ft, idxs := newBenchTree(b)
	for i := 1; i < b.N; i++ {
		l, r := idxs[i-1], idxs[i]
		if l > r {
			l, r = r, l
		}
		ft.RangeSum(l, r)
	}
}

func BenchmarkFastRangeSum(b *testing.B) {
	ft, idxs := newBenchTree(b)
	for i := 1; i < b.N; i++ {
		l, r := idxs[i-1], idxs[i]
		if l > r {
			l, r = r, l
		}
		ft.FastRangeSum(l, r)
	}
}

func BenchmarkFastSearch(b *testing.B) {
	ft, idxs := newBenchTree(b)
	total := ft.PrefixSum(ft.Size())
	for i := 0; i < b.N; i++ {
		ft.FastSearch(int64(idxs[i]) % total)
	}
}

func BenchmarkConstruct(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	ft, _ := New(benchOrder)
	a := make([]int64, ft.Size()+1)
	for i := range a {
		a[i] = r.Int63n(1000)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ft.Construct(a)
	}
}

func BenchmarkFastConstruct(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	ft, _ := New(benchOrder)
	a := make([]int64, ft.Size()+1)
	for i := range a {
		a[i] = r.Int63n(1000)
	}
	scratch := make([]int64, len(a))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(scratch, a)
		b.StartTimer()
		ft.FastConstruct(scratch)
	}
}

func BenchmarkRangeTreeUpdate(b *testing.B) {
	r := rand.New(rand.NewSource(2))
	rt, _ := NewRangeTree(benchOrder)
	n := rt.Size()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := 1 + r.Intn(n)
		rr := l + r.Intn(n-l+1)
		rt.Update(l, rr, 1)
	}
}

func BenchmarkTree2DUpdate(b *testing.B) {
	r := rand.New(rand.NewSource(3))
	g, _ := New2D(10)
	n := g.Size()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Update(1+r.Intn(n), 1+r.Intn(n), 1)
	}
}

func BenchmarkRMQQuery(b *testing.B) {
	r := rand.New(rand.NewSource(4))
	q, _ := NewRMQ(1 << benchOrder)
	n := q.Size()
	for i := 1; i <= n; i++ {
		q.Update(i, r.Int63n(1000))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := 1 + r.Intn(n)
		rr := l + r.Intn(n-l+1)
		q.Query(l, rr)
	}
}

func BenchmarkRMQUpdate(b *testing.B) {
	r := rand.New(rand.NewSource(5))
	q, _ := NewRMQ(1 << benchOrder)
	n := q.Size()
	for i := 1; i <= n; i++ {
		q.Update(i, r.Int63n(1000))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Update(1+r.Intn(n), r.Int63n(1000))
	}
}
