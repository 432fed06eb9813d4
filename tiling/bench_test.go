package tiling_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/hyperdisc/mobius"
	"github.com/katalvlaran/hyperdisc/region"
	"github.com/katalvlaran/hyperdisc/tiling"
)

func benchmarkDiscover(b *testing.B, p, q int) {
	seed := seedFace(b, p, q)
	scratch := tiling.NewScratch(0)
	tu := tiling.DefaultTuning()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tiling.Discover(seed, tu, tiling.WithScratch(scratch), tiling.WithBudget(time.Minute)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDiscover_5_5(b *testing.B) { benchmarkDiscover(b, 5, 5) }
func BenchmarkDiscover_7_3(b *testing.B) { benchmarkDiscover(b, 7, 3) }
func BenchmarkDiscover_4_6(b *testing.B) { benchmarkDiscover(b, 4, 6) }

func BenchmarkFrame(b *testing.B) {
	rg, err := region.New(5, 5)
	if err != nil {
		b.Fatal(err)
	}
	disc, err := tiling.NewDisc(rg, tiling.WithBudget(time.Minute))
	if err != nil {
		b.Fatal(err)
	}
	step := mobius.DiscTranslation(0, 0.02)
	tu := tiling.DefaultTuning()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := disc.Frame(step, tu); err != nil {
			b.Fatal(err)
		}
	}
}
