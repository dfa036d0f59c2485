package rolling_test

import (
	"fmt"

	"github.com/cwbudde/algo-fluo/rolling"
)

func ExampleMean() {
	out := rolling.Mean([]float64{1, 2, 3, 4}, 2)
	fmt.Printf("%.1f %.1f %.1f\n", out[1], out[2], out[3])

	// Output:
	// 1.5 2.5 3.5
}

func ExampleMin() {
	out := rolling.Min([]float64{3, 1, 4, 1, 5}, 3, 1)
	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", out[0], out[1], out[2], out[3], out[4])

	// Output:
	// 3 1 1 1 1
}

func ExampleExpMean() {
	out := rolling.ExpMean([]float64{1, 0, 0}, 1, 1)
	fmt.Printf("%.4f %.4f %.4f\n", out[0], out[1], out[2])

	// Output:
	// 1.0000 0.3333 0.1429
}
