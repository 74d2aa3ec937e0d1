//go:build amd64 && !purego

package conv2d

import (
	_ "github.com/cwbudde/algo-conv2d/conv2d/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-conv2d/conv2d/internal/arch/amd64/sse2" // register SSE2 backend
	_ "github.com/cwbudde/algo-conv2d/conv2d/internal/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"   // initialize backend registry
)
