// Package gen synthesizes random input matrices for the conv2d command.
package gen

import (
	"math/rand"

	"github.com/cwbudde/algo-conv2d/conv2d"
)

// Generator produces deterministic random matrices from a seeded stream.
// Successive calls continue the same stream, so a feature map and a kernel
// generated back to back differ even with equal dimensions.
type Generator struct {
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// NewGenerator creates a configured generator. The default seed is 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Uniform returns a height x width matrix of uniform values in [0, 1).
// Dimensions are clamped to a minimum of 1, so callers may pass a single
// requested dimension and zero for the other.
func (g *Generator) Uniform(height, width int) (*conv2d.Matrix, error) {
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}

	m, err := conv2d.New(height, width)
	if err != nil {
		return nil, err
	}

	data := m.Data()
	for i := range data {
		data[i] = g.rng.Float64()
	}
	return m, nil
}
