package hillclimb

import (
	"errors"
	"math/rand"
	"time"
)

// Random is the source of randomness threaded through parent generation and
// default mutation. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// NewRandom returns a seeded source. If seed is 0, the current time is used
// (non-deterministic). A non-zero seed gives reproducible results.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NoAgeLimit disables the age limit of a search.
const NoAgeLimit = 0

var (
	// ErrGeneSetTooSmall is returned by default mutation when fewer than two
	// symbols can be sampled from the gene set.
	ErrGeneSetTooSmall = errors.New("gene set must contain at least 2 symbols")

	// ErrInvalidConfig classifies search options that can never run.
	ErrInvalidConfig = errors.New("invalid search config")

	// ErrExhausted signals that an improvement stream has no more values.
	ErrExhausted = errors.New("improvement stream exhausted")
)
