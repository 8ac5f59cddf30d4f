package levmarq_test

import (
	"fmt"

	"github.com/curvelab/curvefit/levmarq"
)

// ExampleFit fits a straight line. The model is any closure of shape
// params → (x → y); here params are the intercept and the slope.
func ExampleFit() {
	data := levmarq.Dataset{
		X: []float64{0, 1, 2, 3, 4, 5, 6, 7},
		Y: []float64{1, 3, 5, 7, 9, 11, 13, 15}, // y = 1 + 2x
	}
	line := func(p []float64) func(float64) float64 {
		return func(x float64) float64 { return p[0] + p[1]*x }
	}

	opts := levmarq.DefaultOptions()
	opts.InitialValues = []float64{0, 0}

	res, err := levmarq.Fit(data, line, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("intercept=%.2f slope=%.2f\n", res.ParameterValues[0], res.ParameterValues[1])
	// Output:
	// intercept=1.00 slope=2.00
}

// ExampleFit_bounded keeps parameters inside a box: components of every
// candidate are clipped into [MinValues[k], MaxValues[k]] each iteration.
func ExampleFit_bounded() {
	data := levmarq.Dataset{
		X: []float64{0, 1, 2, 3, 4, 5, 6, 7},
		Y: []float64{1, 3, 5, 7, 9, 11, 13, 15},
	}
	line := func(p []float64) func(float64) float64 {
		return func(x float64) float64 { return p[0] + p[1]*x }
	}

	opts := levmarq.DefaultOptions()
	opts.InitialValues = []float64{0, 0}
	opts.MinValues = []float64{0, 0}
	opts.MaxValues = []float64{10, 1.5} // slope capped below the true value

	res, err := levmarq.Fit(data, line, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("slope=%.2f\n", res.ParameterValues[1])
	// Output:
	// slope=1.50
}
