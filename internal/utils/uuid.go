package utils

import "github.com/google/uuid"

// UUIDGenerator produces random version 4 UUID strings. It is used for
// access tokens and request trace identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
