// Package utils provides small general-purpose helpers used across
// different parts of the application.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces public identifiers for stored entities. It
// prefers UUIDv7 so that identifiers sort roughly by creation time, which
// keeps index pages warm, and falls back to v4 when v7 generation fails.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns the next identifier as a canonical UUID string.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
