package services

import (
	"math/rand/v2"

	"github.com/custodia-labs/whatif-cli/internal/core/domain"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driven"
)

// scriptedRandom replays fixed draws in order, cycling when exhausted.
type scriptedRandom struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedRandom) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedRandom) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)] % n
	s.ii++
	return v
}

func seeded(seed uint64) driven.Random {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func seededFactory(seed uint64) driven.RandomFactory {
	return func() driven.Random { return seeded(seed) }
}

var seedCounter uint64

func freshFactory() driven.RandomFactory {
	return func() driven.Random {
		seedCounter++
		return seeded(seedCounter * 7919)
	}
}

func testDecision() domain.Decision {
	return domain.Decision{
		Question:        "Should I have moved to a new city?",
		ActualChoice:    "I moved to Boston",
		AlternateChoice: "I stayed in my hometown",
	}
}

func pinkHairDecision() domain.Decision {
	return domain.Decision{
		Question:        "Should I have dyed my hair?",
		ActualChoice:    "I dyed my hair pink",
		AlternateChoice: "I kept my natural hair",
	}
}
