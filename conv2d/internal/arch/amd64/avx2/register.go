//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		DotAcc:    dotAcc,
	})
}

// dotAcc is a 4x-unrolled multiply-accumulate with four independent partial
// sums, matching the four float64 lanes of an AVX2 register. The unrolled
// form keeps the loop free of cross-iteration dependencies so the compiler
// can schedule the multiplies in parallel.
// TODO: replace with an explicit AVX2 asm kernel.
func dotAcc(f, g []float64) float64 {
	n := len(f)
	if len(g) < n {
		n = len(g)
	}

	var s0, s1, s2, s3 float64

	i := 0
	for ; i+3 < n; i += 4 {
		s0 += f[i] * g[i]
		s1 += f[i+1] * g[i+1]
		s2 += f[i+2] * g[i+2]
		s3 += f[i+3] * g[i+3]
	}
	for ; i < n; i++ {
		s0 += f[i] * g[i]
	}

	return (s0 + s1) + (s2 + s3)
}
