// Command conv2d performs one 2D convolution of a feature map against a
// pre-flipped kernel under zero-padding boundary semantics.
//
// Usage:
//
//	conv2d [flags]
//
// Inputs are either synthesized (-H/-W for the feature map, -kH/-kW for the
// kernel; a single dimension may be given, the other is clamped to 1) or
// loaded from text matrix files (-f, -g). Synthesized inputs are saved when
// a size and a path are both given.
//
// Examples:
//
//	conv2d -H 512 -W 512 -kH 3 -kW 3 -o out.txt
//	conv2d -f feature.txt -g kernel.txt -p -workers 8 -o out.txt
//	conv2d -H 1024 -W 1024 -kH 31 -kW 31 -spectral -b
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cwbudde/algo-conv2d/conv2d"
	"github.com/cwbudde/algo-conv2d/gen"
	"github.com/cwbudde/algo-conv2d/matio"
)

// executionMode selects the convolution strategy.
type executionMode int

const (
	modeSerial executionMode = iota
	modeParallel
	modeSpectral
)

func (m executionMode) String() string {
	switch m {
	case modeSerial:
		return "serial"
	case modeParallel:
		return "parallel"
	case modeSpectral:
		return "spectral"
	default:
		return "unknown"
	}
}

// runConfig is the explicit per-invocation configuration; the program keeps
// no global mode state.
type runConfig struct {
	mode         executionMode
	workers      int
	reportTiming bool
}

func main() {
	var (
		featH = flag.Int("H", 0, "synthesized feature map height (0 = load from -f)")
		featW = flag.Int("W", 0, "synthesized feature map width")
		kernH = flag.Int("kH", 0, "synthesized kernel height (0 = load from -g)")
		kernW = flag.Int("kW", 0, "synthesized kernel width")

		featurePath = flag.String("f", "", "feature map file (input, or output when synthesizing)")
		kernelPath  = flag.String("g", "", "kernel file (input, or output when synthesizing)")
		outputPath  = flag.String("o", "", "output file (omit to skip persisting)")

		parallel = flag.Bool("p", false, "use the parallel convolver")
		spectral = flag.Bool("spectral", false, "use the FFT-based convolver")
		workers  = flag.Int("workers", 0, "worker count for -p (0 = number of CPUs)")
		timing   = flag.Bool("b", false, "print elapsed convolution time")
		seed     = flag.Int64("seed", 0, "seed for synthesized inputs (0 = time-based)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: conv2d [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Convolves a feature map with a pre-flipped kernel (zero padding,\n")
		fmt.Fprintf(os.Stderr, "output dimensions equal the feature map's).\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *parallel && *spectral {
		fmt.Fprintln(os.Stderr, "conv2d: -p and -spectral are mutually exclusive")
		flag.Usage()
		os.Exit(2)
	}
	if *featH <= 0 && *featW <= 0 && *featurePath == "" {
		fmt.Fprintln(os.Stderr, "conv2d: no feature map: give -H/-W or -f")
		flag.Usage()
		os.Exit(2)
	}
	if *kernH <= 0 && *kernW <= 0 && *kernelPath == "" {
		fmt.Fprintln(os.Stderr, "conv2d: no kernel: give -kH/-kW or -g")
		flag.Usage()
		os.Exit(2)
	}

	cfg := runConfig{mode: modeSerial, workers: *workers, reportTiming: *timing}
	if *parallel {
		cfg.mode = modeParallel
	}
	if *spectral {
		cfg.mode = modeSpectral
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	g := gen.NewGenerator(gen.WithSeed(*seed))

	kernel, err := loadOrSynthesize(g, *kernH, *kernW, *kernelPath)
	if err != nil {
		fatalf("kernel: %v", err)
	}
	feature, err := loadOrSynthesize(g, *featH, *featW, *featurePath)
	if err != nil {
		fatalf("feature map: %v", err)
	}

	start := time.Now()
	out, err := convolve(feature, kernel, cfg)
	elapsed := time.Since(start)
	if err != nil {
		fatalf("%v", err)
	}

	if cfg.reportTiming {
		fmt.Printf("%s time: %s\n", cfg.mode, elapsed)
	}

	if *outputPath != "" {
		if err := matio.WriteFile(*outputPath, out); err != nil {
			fatalf("%v", err)
		}
	}
}

// loadOrSynthesize returns a synthesized height x width matrix when a size
// is requested (saving it to path if one is given), and otherwise loads the
// matrix from path.
func loadOrSynthesize(g *gen.Generator, height, width int, path string) (*conv2d.Matrix, error) {
	if height > 0 || width > 0 {
		m, err := g.Uniform(height, width)
		if err != nil {
			return nil, err
		}
		if path != "" {
			if err := matio.WriteFile(path, m); err != nil {
				return nil, err
			}
		}
		return m, nil
	}
	return matio.ReadFile(path)
}

func convolve(feature, kernel *conv2d.Matrix, cfg runConfig) (*conv2d.Matrix, error) {
	switch cfg.mode {
	case modeParallel:
		if cfg.workers > 0 {
			return conv2d.Parallel(feature, kernel, conv2d.WithWorkers(cfg.workers))
		}
		return conv2d.Parallel(feature, kernel)
	case modeSpectral:
		return conv2d.Spectral(feature, kernel)
	default:
		return conv2d.Serial(feature, kernel)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "conv2d: "+format+"\n", args...)
	os.Exit(1)
}
