package testutil

import "math/rand"

// UniformGrid returns a height*width row-major grid of uniform [0,1) values
// from a fixed seed, for reproducible tests.
func UniformGrid(seed int64, height, width int) []float64 {
	out := make([]float64, height*width)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

// ConstantGrid returns a height*width grid filled with value.
func ConstantGrid(value float64, height, width int) []float64 {
	out := make([]float64, height*width)
	for i := range out {
		out[i] = value
	}
	return out
}

// ImpulseGrid returns a height*width grid that is zero everywhere except a
// single 1.0 at (row, col). Out-of-range positions leave the grid all-zero.
func ImpulseGrid(height, width, row, col int) []float64 {
	out := make([]float64, height*width)
	if row >= 0 && row < height && col >= 0 && col < width {
		out[row*width+col] = 1
	}
	return out
}
