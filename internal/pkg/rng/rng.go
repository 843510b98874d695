// Package rng provides an injectable random source so combat outcomes,
// weighted selections, and crit bonuses are deterministic under test.
package rng

import (
	"math/rand/v2"
)

// Roller is the random source used by the combat and reward engines
type Roller interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64

	// IntN returns a uniform value in [0, n); n must be > 0
	IntN(n int) int
}

type pcgRoller struct {
	r *rand.Rand
}

// New returns a roller backed by math/rand/v2 with a random seed
func New() Roller {
	return &pcgRoller{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a roller with a fixed seed for reproducible runs
func NewSeeded(seed uint64) Roller {
	return &pcgRoller{r: rand.New(rand.NewPCG(seed, 0))}
}

func (p *pcgRoller) Float64() float64 {
	return p.r.Float64()
}

func (p *pcgRoller) IntN(n int) int {
	return p.r.IntN(n)
}

// Scripted replays a fixed sequence of values and is intended for tests.
// Float64 values are consumed from Floats, IntN values from Ints; both wrap
// around when exhausted.
type Scripted struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

// Float64 returns the next scripted float, or 0 if none were provided
func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}

// IntN returns the next scripted int clamped into [0, n)
func (s *Scripted) IntN(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	if v < 0 || v >= n {
		v = v % n
		if v < 0 {
			v += n
		}
	}
	return v
}
