package driven

// Random is the pseudo-random source consumed by the generator.
// *math/rand/v2.Rand satisfies it.
type Random interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int

	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64
}

// RandomFactory returns a new source for one simulation.
// Sources are never shared between concurrent simulations.
type RandomFactory func() Random
