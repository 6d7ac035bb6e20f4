package random

import "math/rand/v2"

// Source yields uniform integers in [0, n). Selection code depends on it so
// tests can pin exact picks.
type Source interface {
	IntN(n int) int
}

type SystemSource struct{}

func (SystemSource) IntN(n int) int {
	return rand.IntN(n)
}

// Seeded is a reproducible source, used by the --seed flag.
type Seeded struct {
	r *rand.Rand
}

func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Seeded) IntN(n int) int {
	return s.r.IntN(n)
}
