package genetics

import "github.com/google/uuid"

// Identity is the opaque, process-unique handle a Chromosome carries
// for its entire lifetime. Equality and hashing over chromosomes are
// always defined in terms of Identity, never genes or fitness.
type Identity = uuid.UUID

// NewIdentity returns a fresh, unique Identity. Domain chromosome
// constructors and DeepCopy implementations call this once per new
// chromosome; DeepCopy must never reuse the identity of its source.
func NewIdentity() Identity {
	return uuid.New()
}
