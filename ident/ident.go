// Package ident mints unique opaque identifiers for geometry entities and
// constraints.
//
// IDs are textual, monotonically increasing within a single Source, and
// carry a short kind prefix ("pt", "ln", "ci", "ck") purely for human
// debuggability — callers must never parse an ID to recover its kind; the
// prefix is not part of the contract, only the uniqueness is.
//
// A Source is not safe for concurrent use by multiple goroutines without
// external synchronization, mirroring the rest of this module: a single
// sketch (and therefore its Source) is owned by one goroutine at a time.
package ident

import "strconv"

// Kind labels the category of entity an ID is minted for. It only affects
// the human-readable prefix; it has no semantic weight elsewhere.
type Kind string

// Entity kinds recognized by the identifier service.
const (
	KindPoint      Kind = "pt"
	KindLine       Kind = "ln"
	KindCircle     Kind = "ci"
	KindConstraint Kind = "ck"
)

// Source generates unique, textual IDs for a single geometry's lifetime.
//
// The zero value is a ready-to-use Source starting its counters at zero,
// as is the Source NewSource returns; use Clone when a counter pre-seeded
// from an existing Source is required (for example, to keep IDs from
// colliding after cloning a geometry, the way core.Graph.Clone carries its
// nextEdgeID forward).
type Source struct {
	next map[Kind]uint64
}

// NewSource returns a ready-to-use Source with all counters at zero.
func NewSource() *Source {
	return &Source{next: make(map[Kind]uint64)}
}

// Next returns the next unused ID for the given kind and advances the
// Source's internal counter for that kind.
//
// Complexity: O(1).
func (s *Source) Next(kind Kind) string {
	if s.next == nil {
		s.next = make(map[Kind]uint64)
	}
	s.next[kind]++
	return string(kind) + strconv.FormatUint(s.next[kind], 10)
}

// Clone returns a Source whose per-kind counters start where s's left off,
// so IDs minted afterward on the clone never collide with IDs already
// minted on s. This is the identifier-service analogue of
// core.Graph.Clone carrying nextEdgeID forward.
func (s *Source) Clone() *Source {
	clone := NewSource()
	for k, v := range s.next {
		clone.next[k] = v
	}
	return clone
}
