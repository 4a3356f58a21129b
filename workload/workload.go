// Package workload supplies the deterministic random inputs consumed by the
// benchmark kernels. A single Generator is seeded once per run and handed
// to every kernel that needs variates, so the stream is consumed
// sequentially in benchmark order.
package workload

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Config controls generator construction.
type Config struct {
	Seed uint64
}

// Generator produces uniform [0,1) and standard-normal variates from one
// seeded source. It is not safe for concurrent use.
type Generator struct {
	cfg     Config
	uniform distuv.Uniform
	normal  distuv.Normal
	drawn   uint64
}

// NewGenerator creates a Generator from the given Config.
func NewGenerator(cfg Config) *Generator {
	src := rand.NewPCG(cfg.Seed, cfg.Seed)

	return &Generator{
		cfg:     cfg,
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: src},
		normal:  distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() uint64 {
	return g.cfg.Seed
}

// Drawn reports how many variates have been produced so far.
func (g *Generator) Drawn() uint64 {
	return g.drawn
}

// FillUniform overwrites dst with uniform [0,1) variates.
func (g *Generator) FillUniform(dst []float64) {
	for i := range dst {
		dst[i] = g.uniform.Rand()
	}

	g.drawn += uint64(len(dst))
}

// FillNormal overwrites dst with standard-normal variates.
func (g *Generator) FillNormal(dst []float64) {
	for i := range dst {
		dst[i] = g.normal.Rand()
	}

	g.drawn += uint64(len(dst))
}

// Uniform returns n fresh uniform [0,1) variates.
func (g *Generator) Uniform(n int) []float64 {
	buf := make([]float64, n)
	g.FillUniform(buf)

	return buf
}

// Normal returns n fresh standard-normal variates.
func (g *Generator) Normal(n int) []float64 {
	buf := make([]float64, n)
	g.FillNormal(buf)

	return buf
}
