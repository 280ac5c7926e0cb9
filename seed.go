package ledgerdocs

import (
	"crypto/sha256"
	"math/big"
	"math/rand"
)

// seedRange bounds derived seeds to 8 digits.
const seedRange = 100_000_000

// Seed derives a reproducible numeric seed from a business key. It is a
// pure function: the SHA-256 digest of the key reduced modulo a fixed
// range, so the same key yields the same seed on every run and machine.
func Seed(key string) int64 {
	sum := sha256.Sum256([]byte(key))
	n := new(big.Int).SetBytes(sum[:])
	return n.Mod(n, big.NewInt(seedRange)).Int64()
}

// Synth synthesizes plausible supporting details for a single record:
// offsets, addresses, phone and confirmation numbers.
//
// A Synth is scoped to the processing of one record. Callers construct a
// fresh instance per record with NewSynth; there is no shared generator to
// reseed, which keeps output independent of record order and makes
// per-record processing safe to parallelize.
type Synth struct {
	rng *rand.Rand
}

// NewSynth returns a record-scoped generator seeded from the record's
// business key. Identical keys produce identical synthetic sequences.
func NewSynth(key string) *Synth {
	return &Synth{rng: rand.New(rand.NewSource(Seed(key)))}
}

// IntBetween returns a uniform integer in [lo, hi] inclusive.
func (s *Synth) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// FloatBetween returns a uniform float in [lo, hi).
func (s *Synth) FloatBetween(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Synth) pick(list []string) string {
	return list[s.rng.Intn(len(list))]
}

// Digits returns a string of n random decimal digits, first digit never zero.
func (s *Synth) Digits(n int) string {
	b := make([]byte, n)
	for i := range b {
		lo := 0
		if i == 0 {
			lo = 1
		}
		b[i] = byte('0' + s.IntBetween(lo, 9))
	}
	return string(b)
}
