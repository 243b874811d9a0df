package scoring

import (
	"math/rand"
	"time"
)

// Source supplies the randomness behind the soft compatibility factors.
// Injecting it lets tests fix the sequence; production uses math/rand.
type Source interface {
	Intn(n int) int
}

// NewSource returns a time-seeded uniform source.
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
