package conv2d

import vecmath "github.com/cwbudde/algo-vecmath"

// Serial computes the convolution on a single thread.
//
// The tap accumulation runs in a fixed left-to-right order (row offsets
// outer, column offsets inner), so the result is reproducible bit-for-bit
// across runs. This path is the correctness oracle for Parallel and
// Spectral. Coordinates outside the feature map read as 0 (logical zero
// padding); no padded copy is materialized.
func Serial(feature, kernel *Matrix) (*Matrix, error) {
	if err := checkInputs(feature, kernel); err != nil {
		return nil, err
	}

	geo, err := NewGeometry(kernel.height, kernel.width)
	if err != nil {
		return nil, err
	}

	out, err := New(feature.height, feature.width)
	if err != nil {
		return nil, err
	}

	// 1x1 kernel degenerates to an exact elementwise scale.
	if kernel.height == 1 && kernel.width == 1 {
		vecmath.ScaleBlock(out.data, feature.data, kernel.data[0])
		return out, nil
	}

	h, w := feature.height, feature.width
	kw := kernel.width
	f, g := feature.data, kernel.data
	rowLo, rowHi := geo.RowSpan()
	colLo, colHi := geo.ColSpan()

	for n := 0; n < h; n++ {
		for k := 0; k < w; k++ {
			sum := 0.0
			for i := rowLo; i <= rowHi; i++ {
				row := n + i
				rowValid := row >= 0 && row < h
				gBase := geo.KernelRow(i) * kw
				for j := colLo; j <= colHi; j++ {
					col := k + j
					v := 0.0
					if rowValid && col >= 0 && col < w {
						v = f[row*w+col]
					}
					sum += v * g[gBase+geo.KernelCol(j)]
				}
			}
			out.data[n*w+k] = sum
		}
	}
	return out, nil
}
