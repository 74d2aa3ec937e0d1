package conv2d_test

import (
	"fmt"

	"github.com/cwbudde/algo-conv2d/conv2d"
)

func ExampleSerial() {
	// 3x3 all-ones feature map against a 3x3 box-average kernel.
	// Boundary cells see fewer valid taps, so the averages shrink
	// toward the corners.
	ones := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1}
	feature, _ := conv2d.FromSlice(3, 3, ones)

	box := make([]float64, 9)
	for i := range box {
		box[i] = 1.0 / 9.0
	}
	kernel, _ := conv2d.FromSlice(3, 3, box)

	out, _ := conv2d.Serial(feature, kernel)
	for row := 0; row < out.Height(); row++ {
		for col := 0; col < out.Width(); col++ {
			if col > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%.3f", out.At(row, col))
		}
		fmt.Println()
	}

	// Output:
	// 0.444 0.667 0.444
	// 0.667 1.000 0.667
	// 0.444 0.667 0.444
}

func ExampleConvolve() {
	feature, _ := conv2d.FromSlice(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	kernel, _ := conv2d.FromSlice(1, 1, []float64{2})

	// A 1x1 kernel is an exact elementwise scale.
	out, _ := conv2d.Convolve(feature, kernel)
	fmt.Printf("%dx%d\n", out.Height(), out.Width())
	fmt.Printf("%.0f %.0f %.0f\n", out.At(0, 0), out.At(0, 1), out.At(0, 2))
	fmt.Printf("%.0f %.0f %.0f\n", out.At(1, 0), out.At(1, 1), out.At(1, 2))

	// Output:
	// 2x3
	// 2 4 6
	// 8 10 12
}

func ExampleParallel() {
	feature, _ := conv2d.FromSlice(2, 2, []float64{1, 1, 1, 1})
	kernel, _ := conv2d.FromSlice(3, 3, []float64{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	})

	// The kernel overhangs the feature map; out-of-range taps read as
	// zero, so every cell sums its 4 valid taps.
	out, _ := conv2d.Parallel(feature, kernel, conv2d.WithWorkers(2))
	fmt.Printf("%.0f %.0f\n", out.At(0, 0), out.At(0, 1))
	fmt.Printf("%.0f %.0f\n", out.At(1, 0), out.At(1, 1))

	// Output:
	// 4 4
	// 4 4
}
