// Package random provides sources of randomness for the simulation engine.
package random

import (
	"math/rand/v2"
	"sync/atomic"

	"github.com/custodia-labs/whatif-cli/internal/core/ports/driven"
)

// Entropy returns a factory that seeds every source from the runtime's
// entropy pool.
func Entropy() driven.RandomFactory {
	return func() driven.Random {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
}

// Seeded returns a factory whose n-th source is derived from seed and n.
// Two factories built from the same seed replay the same sequence of
// simulations.
func Seeded(seed uint64) driven.RandomFactory {
	var n atomic.Uint64
	return func() driven.Random {
		i := n.Add(1) - 1
		return rand.New(rand.NewPCG(seed, seed^(i*0x9e3779b97f4a7c15)))
	}
}

// FromSeed returns Seeded(seed) for non-zero seeds and Entropy otherwise.
func FromSeed(seed uint64) driven.RandomFactory {
	if seed == 0 {
		return Entropy()
	}
	return Seeded(seed)
}
