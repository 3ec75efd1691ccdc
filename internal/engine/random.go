package engine

// Random is the randomness the engine consumes. *math/rand.Rand satisfies it,
// so seeding a rand.New(rand.NewSource(seed)) makes a session reproducible.
type Random interface {
	Float64() float64
	Intn(n int) int
}
