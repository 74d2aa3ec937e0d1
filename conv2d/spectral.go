package conv2d

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Spectral computes the convolution through 2D FFTs.
//
// The kernel is reversed along both axes so that a linear convolution in
// the frequency domain yields the correlation this package computes, and
// both inputs are zero-padded to power-of-two grid sizes large enough for
// the full linear result, which also supplies the zero-padding boundary
// semantics. The output window is re-centered to honor asymmetric centering
// for even kernel axes.
//
// Worthwhile for large kernels; Convolve selects this path automatically
// above its spectral threshold. Equivalent to Serial within floating-point
// tolerance.
func Spectral(feature, kernel *Matrix) (*Matrix, error) {
	if err := checkInputs(feature, kernel); err != nil {
		return nil, err
	}

	// A 1x1 kernel is an exact elementwise scale; no transforms needed.
	if kernel.height == 1 && kernel.width == 1 {
		return Serial(feature, kernel)
	}

	geo, err := NewGeometry(kernel.height, kernel.width)
	if err != nil {
		return nil, err
	}

	h, w := feature.height, feature.width
	kh, kw := kernel.height, kernel.width

	// Grid sizes hold the full linear convolution without wrap-around.
	rows := nextPowerOf2(h + kh - 1)
	cols := nextPowerOf2(w + kw - 1)

	rowPlan, err := algofft.NewPlan64(cols)
	if err != nil {
		return nil, fmt.Errorf("conv2d: failed to create row FFT plan: %w", err)
	}
	colPlan, err := algofft.NewPlan64(rows)
	if err != nil {
		return nil, fmt.Errorf("conv2d: failed to create column FFT plan: %w", err)
	}

	fGrid := make([]complex128, rows*cols)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			fGrid[r*cols+c] = complex(feature.data[r*w+c], 0)
		}
	}

	// Kernel reversed along both axes: correlation as convolution.
	gGrid := make([]complex128, rows*cols)
	for a := 0; a < kh; a++ {
		for b := 0; b < kw; b++ {
			gGrid[a*cols+b] = complex(kernel.data[(kh-1-a)*kw+(kw-1-b)], 0)
		}
	}

	scratch := make([]complex128, rows)
	if err := fft2D(fGrid, rows, cols, rowPlan, colPlan, scratch, false); err != nil {
		return nil, err
	}
	if err := fft2D(gGrid, rows, cols, rowPlan, colPlan, scratch, false); err != nil {
		return nil, err
	}

	for i := range fGrid {
		fGrid[i] *= gGrid[i]
	}

	if err := fft2D(fGrid, rows, cols, rowPlan, colPlan, scratch, true); err != nil {
		return nil, err
	}

	out, err := New(h, w)
	if err != nil {
		return nil, err
	}

	// Window of the full result matching the direct paths' centering.
	rowShift := geo.HalfHeight - geo.HeightOffset
	colShift := geo.HalfWidth - geo.WidthOffset
	for n := 0; n < h; n++ {
		for k := 0; k < w; k++ {
			out.data[n*w+k] = real(fGrid[(n+rowShift)*cols+(k+colShift)])
		}
	}
	return out, nil
}

// fft2D transforms grid in-place: rows first, then columns through scratch.
// scratch must have length rows.
func fft2D(grid []complex128, rows, cols int, rowPlan, colPlan *algofft.Plan[complex128], scratch []complex128, inverse bool) error {
	for r := 0; r < rows; r++ {
		seg := grid[r*cols : (r+1)*cols]
		if err := transform(rowPlan, seg, inverse); err != nil {
			return err
		}
	}

	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			scratch[r] = grid[r*cols+c]
		}
		if err := transform(colPlan, scratch, inverse); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			grid[r*cols+c] = scratch[r]
		}
	}
	return nil
}

func transform(plan *algofft.Plan[complex128], buf []complex128, inverse bool) error {
	if inverse {
		if err := plan.Inverse(buf, buf); err != nil {
			return fmt.Errorf("conv2d: inverse FFT failed: %w", err)
		}
		return nil
	}
	if err := plan.Forward(buf, buf); err != nil {
		return fmt.Errorf("conv2d: forward FFT failed: %w", err)
	}
	return nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
