package conv2d

import "errors"

// Errors returned by convolution functions and Matrix constructors.
var (
	ErrNilMatrix        = errors.New("conv2d: nil matrix")
	ErrInvalidDimension = errors.New("conv2d: invalid dimension")
	ErrSizeOverflow     = errors.New("conv2d: element count overflows int")
	ErrLengthMismatch   = errors.New("conv2d: data length mismatch")
)

// defaultSpectralThreshold is the kernel tap count at and above which
// Convolve switches from direct to FFT-based convolution.
const defaultSpectralThreshold = 64

// Convolve computes the convolution with automatic strategy selection.
//
// Kernels with at least WithSpectralThreshold taps (default 64) use the
// FFT-based Spectral path. Smaller kernels use Parallel when more than one
// worker is configured, and Serial otherwise.
func Convolve(feature, kernel *Matrix, opts ...Option) (*Matrix, error) {
	cfg := applyOptions(opts...)

	if err := checkInputs(feature, kernel); err != nil {
		return nil, err
	}

	if cfg.serialOnly {
		return Serial(feature, kernel)
	}

	taps := kernel.height * kernel.width
	if cfg.spectralThreshold > 0 && taps >= cfg.spectralThreshold {
		return Spectral(feature, kernel)
	}

	if cfg.workers > 1 {
		return Parallel(feature, kernel, opts...)
	}
	return Serial(feature, kernel)
}

// checkInputs validates the shared preconditions of all strategies.
func checkInputs(feature, kernel *Matrix) error {
	if feature == nil || kernel == nil {
		return ErrNilMatrix
	}
	if feature.height < 1 || feature.width < 1 ||
		kernel.height < 1 || kernel.width < 1 {
		return ErrInvalidDimension
	}
	return nil
}
