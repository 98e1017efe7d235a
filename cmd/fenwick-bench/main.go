// fenwick-bench times the fenwick package's operations across a range
// of size orders and reports per-operation latencies, one tab-separated
// row per (order, operation), suitable for eyeballing or plotting.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	rng "github.com/leesper/go_rng"
	"gonum.org/v1/gonum/stat"

	"github.com/ViktorSlavkovic/Fenwick"
)

var (
	structure = flag.String("structure", "tree", "structure to benchmark: tree, rurq, grid, rmq")
	minOrder  = flag.Int("min-order", 4, "smallest size order, n = 2^order - 1")
	maxOrder  = flag.Int("max-order", 20, "largest size order")
	batchOps  = flag.Int("batch", 10000, "operations per batch")
	batches   = flag.Int("batches", 5, "batches per operation")
	seed      = flag.Int64("seed", 0xDEADBEEF, "rng seed")
)

var (
	gen  *rng.UniformGenerator
	tabw = tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
)

func main() {
	flag.Parse()
	gen = rng.NewUniformGenerator(*seed)

	fmt.Fprintln(tabw, "order\top\tns/op\tstddev\tp50\tp99\tmax")

	for order := *minOrder; order <= *maxOrder; order++ {
		switch *structure {
		case "tree":
			benchTree(order)
		case "rurq":
			benchRangeTree(order)
		case "grid":
			if order > 13 {
				continue
			}
			benchGrid(order)
		case "rmq":
			benchRMQ(order)
		default:
			log.Fatalf("unknown structure %q", *structure)
		}
	}

	if err := tabw.Flush(); err != nil {
		log.Fatal(err)
	}
}

// measure runs batches of op, recording per-call latency. Each row
// reports the gonum mean and standard deviation of the batch means
// next to the histogram percentiles of individual calls.
func measure(order int, name string, op func()) {
	hist := hdrhistogram.New(1, 10_000_000, 3)
	means := make([]float64, 0, *batches)

	for b := 0; b < *batches; b++ {
		start := time.Now()
		for i := 0; i < *batchOps; i++ {
			s := time.Now()
			op()
			_ = hist.RecordValue(time.Since(s).Nanoseconds())
		}
		elapsed := time.Since(start)
		means = append(means, float64(elapsed.Nanoseconds())/float64(*batchOps))
	}

	fmt.Fprintf(tabw, "%d\t%s\t%.1f\t%.1f\t%d\t%d\t%d\n",
		order, name,
		stat.Mean(means, nil), stat.StdDev(means, nil),
		hist.ValueAtPercentile(50.0),
		hist.ValueAtPercentile(99.0),
		hist.Max())
}

func index(n int) int {
	return int(gen.Int64Range(1, int64(n)+1))
}

func span(n int) (int, int) {
	l, r := index(n), index(n)
	if l > r {
		l, r = r, l
	}
	return l, r
}

func benchTree(order int) {
	ft, err := fenwick.New(order)
	if err != nil {
		log.Fatal(err)
	}
	n := ft.Size()
	var total int64
	for i := 1; i <= n; i++ {
		v := gen.Int64Range(0, 1000)
		ft.Update(i, v)
		total += v
	}

	measure(order, "update", func() { ft.Update(index(n), gen.Int64Range(-1000, 1000)) })
	measure(order, "prefix_sum", func() { ft.PrefixSum(index(n)) })
	measure(order, "access", func() { ft.Access(index(n)) })
	measure(order, "fast_access", func() { ft.FastAccess(index(n)) })
	measure(order, "range_sum", func() {
		l, r := span(n)
		ft.RangeSum(l, r)
	})
	measure(order, "fast_range_sum", func() {
		l, r := span(n)
		ft.FastRangeSum(l, r)
	})
	// fast_search needs nondecreasing prefix sums; rebuild with the
	// non-negative prefill only.
	a := make([]int64, n+1)
	total = 0
	for i := 1; i <= n; i++ {
		a[i] = gen.Int64Range(0, 1000)
		total += a[i]
	}
	ft.Construct(a)
	measure(order, "fast_search", func() { ft.FastSearch(gen.Int64Range(1, total+1)) })
}

func benchRangeTree(order int) {
	rt, err := fenwick.NewRangeTree(order)
	if err != nil {
		log.Fatal(err)
	}
	n := rt.Size()
	for i := 0; i < n; i++ {
		l, r := span(n)
		rt.Update(l, r, gen.Int64Range(-1000, 1000))
	}

	measure(order, "update", func() {
		l, r := span(n)
		rt.Update(l, r, gen.Int64Range(-1000, 1000))
	})
	measure(order, "prefix_sum", func() { rt.PrefixSum(index(n)) })
	measure(order, "range_sum", func() {
		l, r := span(n)
		rt.RangeSum(l, r)
	})
}

func benchGrid(order int) {
	g, err := fenwick.New2D(order)
	if err != nil {
		log.Fatal(err)
	}
	n := g.Size()
	for i := 0; i < n; i++ {
		g.Update(index(n), index(n), gen.Int64Range(-1000, 1000))
	}

	measure(order, "update", func() { g.Update(index(n), index(n), gen.Int64Range(-1000, 1000)) })
	measure(order, "prefix_sum", func() { g.PrefixSum(index(n), index(n)) })
	measure(order, "range_sum", func() {
		x1, x2 := span(n)
		y1, y2 := span(n)
		g.RangeSum(x1, y1, x2, y2)
	})
}

func benchRMQ(order int) {
	n := 1<<order - 1
	q, err := fenwick.NewRMQ(n)
	if err != nil {
		log.Fatal(err)
	}
	for i := 1; i <= n; i++ {
		q.Update(i, gen.Int64Range(0, 1000))
	}

	measure(order, "update", func() { q.Update(index(n), gen.Int64Range(0, 1000)) })
	measure(order, "query", func() {
		l, r := span(n)
		q.Query(l, r)
	})
}
