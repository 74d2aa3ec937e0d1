//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		DotAcc:    dotAcc,
	})
}

// dotAcc is a 2x-unrolled multiply-accumulate with two independent partial
// sums, matching the two float64 lanes of an SSE2 register.
func dotAcc(f, g []float64) float64 {
	n := len(f)
	if len(g) < n {
		n = len(g)
	}

	var s0, s1 float64

	i := 0
	for ; i+1 < n; i += 2 {
		s0 += f[i] * g[i]
		s1 += f[i+1] * g[i+1]
	}
	if i < n {
		s0 += f[i] * g[i]
	}

	return s0 + s1
}
