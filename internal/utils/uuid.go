package utils

import "github.com/google/uuid"

// UUIDGenerator produces the identifiers minted at runtime: derived device
// IDs for machines registering without a configured DEVICE_ID, and trace IDs
// for inbound requests that arrive without one.
type UUIDGenerator struct {
}

// NewUUIDGenerator returns a ready-to-use generator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string so generated identifiers sort roughly by
// creation time, falling back to a random v4 when the clock-based generator
// fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
