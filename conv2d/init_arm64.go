//go:build arm64 && !purego

package conv2d

import (
	_ "github.com/cwbudde/algo-conv2d/conv2d/internal/arch/arm64/neon" // register NEON backend
	_ "github.com/cwbudde/algo-conv2d/conv2d/internal/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry"   // initialize backend registry
)
