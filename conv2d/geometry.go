package conv2d

// Geometry describes the tap-offset window derived from kernel dimensions.
//
// Row tap offsets span [-HalfHeight, HalfHeight-HeightOffset] and column tap
// offsets span [-HalfWidth, HalfWidth-WidthOffset], both inclusive, yielding
// exactly kernelHeight x kernelWidth taps. For even kernel axes the offset
// is 1, which places the extra tap on the negative side (asymmetric
// centering); for odd axes the window is symmetric.
type Geometry struct {
	HalfHeight int
	HalfWidth  int

	// HeightOffset and WidthOffset are 1 for even kernel axes, 0 for odd.
	HeightOffset int
	WidthOffset  int
}

// NewGeometry derives the tap window for a kernelHeight x kernelWidth
// kernel. Dimensions must be at least 1.
func NewGeometry(kernelHeight, kernelWidth int) (Geometry, error) {
	if kernelHeight < 1 || kernelWidth < 1 {
		return Geometry{}, ErrInvalidDimension
	}

	g := Geometry{
		HalfHeight: kernelHeight / 2,
		HalfWidth:  kernelWidth / 2,
	}
	if kernelHeight%2 == 0 {
		g.HeightOffset = 1
	}
	if kernelWidth%2 == 0 {
		g.WidthOffset = 1
	}
	return g, nil
}

// RowSpan returns the inclusive range of row tap offsets.
func (g Geometry) RowSpan() (lo, hi int) {
	return -g.HalfHeight, g.HalfHeight - g.HeightOffset
}

// ColSpan returns the inclusive range of column tap offsets.
func (g Geometry) ColSpan() (lo, hi int) {
	return -g.HalfWidth, g.HalfWidth - g.WidthOffset
}

// KernelRow maps a row tap offset to its kernel row index.
func (g Geometry) KernelRow(i int) int {
	return i + g.HalfHeight
}

// KernelCol maps a column tap offset to its kernel column index.
func (g Geometry) KernelCol(j int) int {
	return j + g.HalfWidth
}
