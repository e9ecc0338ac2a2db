package timeline

import (
	"fmt"

	"github.com/alexanderramin/lineup/internal/domain"
	"github.com/google/uuid"
)

// Rand is the randomness used to seed fresh markers. *rand.Rand satisfies
// it.
type Rand interface {
	Intn(n int) int
}

// NewID returns a fresh opaque id with a readable prefix.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// NewBuild returns an empty build named after its 1-based position.
func NewBuild(index int) domain.CardBuild {
	return domain.CardBuild{
		ID:   NewID("build"),
		Name: fmt.Sprintf("Plan %d", index),
	}
}
