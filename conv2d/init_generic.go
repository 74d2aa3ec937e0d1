//go:build (!amd64 && !arm64) || purego

package conv2d

import (
	_ "github.com/cwbudde/algo-conv2d/conv2d/internal/arch/generic"  // register generic backend
	_ "github.com/cwbudde/algo-conv2d/conv2d/internal/arch/registry" // initialize backend registry
)
