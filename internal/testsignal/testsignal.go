// Package testsignal generates the deterministic signals used across
// the package tests: smooth oscillations, reproducible noise, and
// peaks-on-background fixtures for baseline estimation.
package testsignal

import (
	"math"
	"math/rand"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Sine generates a sine wave with the given angular step per sample.
func (g *Generator) Sine(step, amplitude float64, samples int) []float64 {
	out := make([]float64, samples)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Noise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) Noise(amplitude float64, samples int) []float64 {
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Peaks generates a slowly varying background with narrow Gaussian
// peaks added on top, the typical shape baseline estimation is run on.
// centers and heights must have equal length; width is the Gaussian
// sigma in samples.
func (g *Generator) Peaks(samples int, background float64, centers []int, heights []float64, width float64) []float64 {
	out := make([]float64, samples)
	for i := range out {
		out[i] = background * (1 + 0.2*math.Cos(0.003*float64(i)))
		for k, c := range centers {
			d := float64(i - c)
			out[i] += heights[k] * math.Exp(-d*d/(2*width*width))
		}
	}
	return out
}
