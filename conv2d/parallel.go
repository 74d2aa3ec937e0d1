package conv2d

import (
	"sync"
	"sync/atomic"

	archregistry "github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	dotAccImpl     archregistry.DotAccFn
	dotAccInitOnce sync.Once
)

func initDotAccKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("conv2d: no DotAcc kernel registered (missing generic fallback?)")
	}

	if entry.DotAcc == nil {
		panic("conv2d: selected kernel missing DotAcc")
	}

	dotAccImpl = entry.DotAcc
}

// Parallel computes the convolution on a fixed-size worker pool.
//
// The H*W output cells are partitioned into rows; workers claim unclaimed
// rows dynamically through an atomic counter, so workers finishing cheap
// rows (near boundaries, fewer valid taps) pick up more work. Each row is
// written by exactly one worker and the feature and kernel buffers are
// read-only for the whole call, so no locking is needed.
//
// The output buffer comes from NewAligned: cache-line aligned base and
// tail rounded to a whole cache line, so its last line is never shared
// with unrelated heap data written by other goroutines.
//
// The inner tap reduction is reassociation-tolerant; results match Serial
// within floating-point tolerance, not bit-for-bit.
func Parallel(feature, kernel *Matrix, opts ...Option) (*Matrix, error) {
	cfg := applyOptions(opts...)

	if err := checkInputs(feature, kernel); err != nil {
		return nil, err
	}

	geo, err := NewGeometry(kernel.height, kernel.width)
	if err != nil {
		return nil, err
	}

	out, err := NewAligned(feature.height, feature.width)
	if err != nil {
		return nil, err
	}

	// 1x1 kernel degenerates to an exact elementwise scale.
	if kernel.height == 1 && kernel.width == 1 {
		vecmath.ScaleBlock(out.data, feature.data, kernel.data[0])
		return out, nil
	}

	dotAccInitOnce.Do(initDotAccKernel)
	dotAcc := dotAccImpl

	h, w := feature.height, feature.width
	workers := cfg.workers
	if workers < 1 {
		workers = 1
	}
	if workers > h {
		workers = h
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for worker := 0; worker < workers; worker++ {
		go func() {
			defer wg.Done()

			for {
				n := int(next.Add(1)) - 1
				if n >= h {
					return
				}
				convolveRow(out.data[n*w:(n+1)*w], feature, kernel, geo, n, dotAcc)
			}
		}()
	}

	wg.Wait()
	return out, nil
}

// convolveRow fills one output row. Out-of-range taps contribute exactly
// zero, so the tap ranges are clipped to the valid feature region instead
// of branching per tap; the remaining window is contiguous in both the
// feature row and the kernel row, which keeps the reduction vector-friendly.
func convolveRow(dst []float64, feature, kernel *Matrix, geo Geometry, n int, dotAcc archregistry.DotAccFn) {
	h, w := feature.height, feature.width
	kw := kernel.width
	f, g := feature.data, kernel.data

	rowLo, rowHi := geo.RowSpan()
	colLo, colHi := geo.ColSpan()

	// Clip row tap offsets once per output row.
	iLo, iHi := rowLo, rowHi
	if -n > iLo {
		iLo = -n
	}
	if h-1-n < iHi {
		iHi = h - 1 - n
	}

	for k := 0; k < w; k++ {
		jLo, jHi := colLo, colHi
		if -k > jLo {
			jLo = -k
		}
		if w-1-k < jHi {
			jHi = w - 1 - k
		}
		width := jHi - jLo + 1

		sum := 0.0
		for i := iLo; i <= iHi; i++ {
			fOff := (n+i)*w + (k + jLo)
			gOff := geo.KernelRow(i)*kw + geo.KernelCol(jLo)
			sum += dotAcc(f[fOff:fOff+width], g[gOff:gOff+width])
		}
		dst[k] = sum
	}
}
