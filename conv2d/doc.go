// Package conv2d computes the 2D discrete convolution of a feature map
// against a kernel under zero-padding boundary semantics, producing an
// output with the same dimensions as the feature map.
//
// The package performs correlation: kernels are assumed to be pre-flipped
// by the caller, and no flip is applied internally. Even-sized kernel axes
// use asymmetric centering, with the extra tap on the negative-offset side,
// so the window placement is deterministic for every kernel shape.
//
// Three execution strategies share one mathematical contract:
//
//   - Serial: single-threaded reference path with a fixed, reproducible
//     summation order. Serves as the correctness oracle.
//   - Parallel: fixed worker pool with dynamic per-row work claiming and a
//     vectorization-friendly inner reduction. Equivalent to Serial within
//     floating-point reassociation tolerance.
//   - Spectral: FFT-based convolution for large kernels, built on row and
//     column transforms.
//
// # Usage
//
// For one-shot convolution with automatic strategy selection:
//
//	out, err := conv2d.Convolve(feature, kernel)
//
// To pin a strategy:
//
//	out, err := conv2d.Serial(feature, kernel)
//	out, err := conv2d.Parallel(feature, kernel, conv2d.WithWorkers(8))
//	out, err := conv2d.Spectral(feature, kernel)
//
// Feature and kernel buffers are treated as immutable for the duration of a
// call and may be shared across concurrent calls. Every call writes into a
// freshly allocated output Matrix.
package conv2d
