package generic

import (
	"github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		DotAcc:    DotAcc,
	})
}

// DotAcc is the scalar baseline: a plain ordered multiply-accumulate.
func DotAcc(f, g []float64) float64 {
	n := len(f)
	if len(g) < n {
		n = len(g)
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += f[i] * g[i]
	}
	return sum
}
