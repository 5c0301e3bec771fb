package rng

const (
	cmwcSize       = 4096
	cmwcMultiplier = 18782
	cmwcCarryLimit = 809430660
)

// CMWC is a complementary-multiply-with-carry generator (Marsaglia's
// CMWC4096). It is deterministic for a given seed and not safe for
// concurrent use.
type CMWC struct {
	q [cmwcSize]uint32
	c uint32
	i int
}

// NewCMWC creates a generator seeded with seed.
func NewCMWC(seed uint32) *CMWC {
	r := &CMWC{}
	r.Seed(seed)
	return r
}

// Seed resets the generator state from seed.
func (r *CMWC) Seed(seed uint32) {
	s := seed
	for i := range r.q {
		s = s*1103515245 + 12345
		r.q[i] = s
	}
	s = s*1103515245 + 12345
	r.c = s % cmwcCarryLimit
	r.i = cmwcSize - 1
}

func (r *CMWC) next() uint32 {
	r.i = (r.i + 1) & (cmwcSize - 1)
	t := uint64(cmwcMultiplier)*uint64(r.q[r.i]) + uint64(r.c)
	r.c = uint32(t >> 32)
	x := uint32(t) + r.c
	if x < r.c {
		x++
		r.c++
	}
	r.q[r.i] = 0xfffffffe - x
	return r.q[r.i]
}

// Number returns an integer in [min, max]. Draws that would make the
// modulo uneven are rejected, so every value is equally likely.
func (r *CMWC) Number(min, max int) int {
	if min >= max {
		return max
	}
	span := uint64(max-min) + 1
	if span == 0 || span > 1<<32 {
		return min + int(r.uniform64(span))
	}

	threshold := (1<<32 - span) % span
	for {
		if v := uint64(r.next()); v >= threshold {
			return min + int(v%span)
		}
	}
}

// uniform64 draws from [0, span) for spans wider than one output. A zero
// span stands for the full 64-bit range.
func (r *CMWC) uniform64(span uint64) uint64 {
	if span == 0 {
		return uint64(r.next())<<32 | uint64(r.next())
	}
	threshold := -span % span
	for {
		if v := uint64(r.next())<<32 | uint64(r.next()); v >= threshold {
			return v % span
		}
	}
}
