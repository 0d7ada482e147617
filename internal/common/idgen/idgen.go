// Package idgen supplies unique entity identifiers.
//
// Identifiers are UUIDv4 strings, optionally namespaced with an entity-kind
// prefix so a raw id is recognizable in logs and wire payloads. Uniqueness is
// guaranteed for the process lifetime; ids are never reused.
package idgen

import "github.com/google/uuid"

// Entity-kind prefixes.
const (
	KindList    = "list"
	KindCard    = "card"
	KindComment = "comment"
)

// Generator mints unique identifiers.
type Generator struct{}

// New creates a new Generator.
func New() *Generator {
	return &Generator{}
}

// Generate returns a fresh identifier. When prefix is non-empty the id is
// returned as "<prefix>-<uuid>".
func (g *Generator) Generate(prefix string) string {
	id := uuid.New().String()
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}
