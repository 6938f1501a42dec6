package tableau_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/exactlcp/lemke/tableau"
)

// benchSizes are the tableau dimensions to benchmark.
var benchSizes = []int{10, 100, 1000}

func BenchmarkPivot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		n := n
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			// Stage 2 (Prepare): build an n x (n+2) tableau with a
			// guaranteed-nonzero pivot element.
			a, err := tableau.New(n)
			if err != nil {
				b.Fatalf("failed to build tableau: %v", err)
			}
			for i := 0; i < n; i++ {
				for j := 0; j < n+2; j++ {
					if err := a.Set(i, j, big.NewInt(int64((i+1)+j*10))); err != nil {
						b.Fatalf("failed to set entry: %v", err)
					}
				}
			}

			b.ResetTimer()
			// Stage 3 (Execute): pivot on (0,0) repeatedly, cloning fresh
			// state each time since Pivot mutates in place.
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				clone := a.Clone()
				b.StartTimer()
				if err := clone.Pivot(0, 0); err != nil {
					b.Fatalf("pivot failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkRatioTest(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		n := n
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a, err := tableau.New(n)
			if err != nil {
				b.Fatalf("failed to build tableau: %v", err)
			}
			for i := 0; i < n; i++ {
				for j := 0; j < n+2; j++ {
					if err := a.Set(i, j, big.NewInt(int64((i+1)+j*10))); err != nil {
						b.Fatalf("failed to set entry: %v", err)
					}
				}
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = a.RatioTest(0, n-1, 0, 1)
			}
		})
	}
}
