package Go_Utils

import "math/bits"

// Rand is the wyrand generator the runtime uses for cheaprand, held as an
// explicit value so every owner can seed and replay its own stream. The zero
// value is usable and equivalent to NewRand(0). Not safe for concurrent use.
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	return &Rand{seed}
}

// Seed resets the stream.
func (u *Rand) Seed(seed uint64) {
	u.s = seed
}

func (u *Rand) Uint64() uint64 {
	u.s += 0xa0761d6478bd642f
	hi, lo := bits.Mul64(u.s, u.s^0xe7037ed1a0b428db)
	return hi ^ lo
}

func (u *Rand) Uint32() uint32 {
	return uint32(u.Uint64())
}

// Uint32N returns a value in [0, n) using Lemire's multiply-shift; n must be > 0.
func (u *Rand) Uint32N(n uint32) uint32 {
	return uint32((uint64(u.Uint32()) * uint64(n)) >> 32)
}
