package collector

import "math/rand/v2"

// Roller produces uniform die rolls in [1, faces].
type Roller interface {
	Roll(faces int) int
}

type pcgRoller struct {
	r *rand.Rand
}

// NewRoller returns a deterministic Roller seeded from seed.
// Two rollers built from the same seed produce identical roll sequences.
func NewRoller(seed uint64) Roller {
	return &pcgRoller{r: rand.New(rand.NewPCG(seed, 0))}
}

// NewRollerStream returns a Roller on an independent PCG stream. Parallel
// batch workers each derive their own stream from a shared base seed so a
// run stays reproducible regardless of scheduling order.
func NewRollerStream(seed, stream uint64) Roller {
	return &pcgRoller{r: rand.New(rand.NewPCG(seed, stream))}
}

func (p *pcgRoller) Roll(faces int) int {
	return p.r.IntN(faces) + 1
}
