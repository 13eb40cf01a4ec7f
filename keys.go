package flatmapstats

import (
	"golang.org/x/exp/rand"
)

// KeyStream yields uniformly distributed synthetic keys. Streams built from
// the same seed produce the same sequence, which the driver relies on to
// replay the inserted key set during the successful-lookup pass.
type KeyStream struct {
	rng *rand.Rand
}

func NewKeyStream(seed uint64) *KeyStream {
	return &KeyStream{rng: rand.New(rand.NewSource(seed))}
}

// Next draws the next key.
func (ks *KeyStream) Next() uint64 {
	return ks.rng.Uint64()
}

// Reset rewinds the stream to the beginning of the sequence for the given
// seed.
func (ks *KeyStream) Reset(seed uint64) {
	ks.rng.Seed(seed)
}
