package engine

import (
	"fmt"
	"math/rand"
)

// RandomSource produces values in [0, n). Implementations are deterministic
// for a given seed.
type RandomSource interface {
	Intn(n int) int
	Seed(seed uint64)
}

// GrayRand is the 8-bit counter generator: each draw mixes the counter with
// a shifted copy of itself, then advances it. The sequence repeats every 256
// draws and every byte value appears exactly once per period.
type GrayRand struct {
	seed uint8
}

// NewGrayRand creates a GrayRand with the given seed.
func NewGrayRand(seed uint64) *GrayRand {
	return &GrayRand{seed: uint8(seed)}
}

// Seed resets the counter. Only the low 8 bits are used.
func (g *GrayRand) Seed(seed uint64) {
	g.seed = uint8(seed & 0xff)
}

// Intn returns a value in [0, n).
func (g *GrayRand) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("engine: GrayRand.Intn range %d", n))
	}
	return int(g.next()) % n
}

func (g *GrayRand) next() uint8 {
	r := g.seed ^ (g.seed << 6)
	g.seed++
	return r
}

// StdRand adapts math/rand to RandomSource.
type StdRand struct {
	r *rand.Rand
}

// NewStdRand creates a StdRand with the given seed.
func NewStdRand(seed uint64) *StdRand {
	return &StdRand{r: rand.New(rand.NewSource(int64(seed & 0xffff)))}
}

// Seed reseeds the generator. Only the low 16 bits are used.
func (s *StdRand) Seed(seed uint64) {
	s.r.Seed(int64(seed & 0xffff))
}

// Intn returns a value in [0, n).
func (s *StdRand) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("engine: StdRand.Intn range %d", n))
	}
	return s.r.Intn(n)
}

// Reseed mixes one draw from the current sequence with a time-derived value
// so that consecutive games never replay the same spawn sequence.
func Reseed(src RandomSource, entropy uint64) {
	src.Seed(uint64(src.Intn(256)) + (entropy & 0xffff))
}

// NewRandomSource returns the source registered under name ("gray" or "std").
func NewRandomSource(name string, seed uint64) (RandomSource, error) {
	switch name {
	case "", "gray":
		return NewGrayRand(seed), nil
	case "std":
		return NewStdRand(seed), nil
	default:
		return nil, fmt.Errorf("engine: unknown random source %q", name)
	}
}
