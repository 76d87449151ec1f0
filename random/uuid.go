package random

import "github.com/gofrs/uuid"

// UUID returns a version 4 UUID built from r. The result is only as
// unpredictable as the underlying source, so seeded generators produce
// repeatable identifiers.
func (r *Rand) UUID() uuid.UUID {
	var u uuid.UUID
	_, _ = r.Read(u[:])
	u.SetVersion(uuid.V4)
	u.SetVariant(uuid.VariantRFC4122)
	return u
}
