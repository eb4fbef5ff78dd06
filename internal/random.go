package internal

import (
	"math/rand"
	"time"
)

// RandomSource supplies the bytes consumed by RND Vx, kk
type RandomSource interface {
	Byte() uint8
}

// mathRandom is the default RandomSource backed by math/rand
type mathRandom struct {
	rng *rand.Rand
}

// NewRandomSource returns a RandomSource seeded with seed. A seed of zero
// uses the current time.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathRandom{rng: rand.New(rand.NewSource(seed))}
}

func (r *mathRandom) Byte() uint8 {
	return uint8(r.rng.Intn(256))
}
