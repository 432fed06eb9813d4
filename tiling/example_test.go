package tiling_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/hyperdisc/mobius"
	"github.com/katalvlaran/hyperdisc/region"
	"github.com/katalvlaran/hyperdisc/tiling"
)

// ExampleDisc_Frame runs two frames of a {5,4} session and feeds the
// measured time back into the tuning.
func ExampleDisc_Frame() {
	rg, err := region.New(5, 4)
	if err != nil {
		fmt.Println(err)
		return
	}
	disc, err := tiling.NewDisc(rg, tiling.WithBudget(time.Minute))
	if err != nil {
		fmt.Println(err)
		return
	}

	tuning := tiling.DefaultTuning()
	for _, m := range []mobius.Mobius{mobius.Identity(), mobius.DiscTranslation(0, 0.1)} {
		fr, err := disc.Frame(m, tuning)
		if err != nil {
			fmt.Println(err)
			return
		}
		tuning = tuning.Adjust(fr.Elapsed)
		fmt.Println(len(fr.Current.Edges()), len(fr.Faces) > 1, fr.Truncated)
	}
	fmt.Println(tuning.Frames)
	// Output:
	// 5 true false
	// 5 true false
	// 2
}

// ExampleTuning_Adjust shows a slow frame shrinking the visible radius.
func ExampleTuning_Adjust() {
	t := tiling.DefaultTuning().Adjust(100 * time.Millisecond)
	fmt.Printf("%.5f %.5f\n", t.CircleLimit, t.AlphaBand)
	// Output:
	// 0.95545 0.45545
}
