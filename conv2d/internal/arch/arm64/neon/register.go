//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		DotAcc:    dotAcc,
	})
}

// dotAcc is a 4x-unrolled multiply-accumulate with four independent partial
// sums (two NEON registers of two float64 lanes each).
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
