package utils

import "github.com/google/uuid"

// UUIDGenerator mints identifiers for new vault items. It prefers version 7
// UUIDs, whose time-ordered layout keeps the primary key index roughly
// insertion-ordered.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a v7 UUID string, falling back to v4 on the rare entropy
// failure.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
