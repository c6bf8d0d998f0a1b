// Package: lvlath-decision/entity
//
// errors.go — sentinel errors for the entity package.
//
// Error policy (same as the rest of this module):
//   - Only sentinel variables are exposed; callers use errors.Is.
//   - Sentinels are never wrapped with a formatted string at the
//     definition site; call sites may wrap with %w for positional
//     context.
package entity

import "errors"

// ErrEmptyLabel indicates a named or indexed entity was constructed
// with an empty label.
var ErrEmptyLabel = errors.New("entity: label is empty")

// ErrUnknownEntity indicates Remove or GetByHash referenced a hash not
// present in the table.
var ErrUnknownEntity = errors.New("entity: unknown entity")

// ErrDuplicateHash indicates Add was called with an entity whose hash
// already exists in the table.
var ErrDuplicateHash = errors.New("entity: duplicate hash")

// ErrTableSealed indicates Add was called after the table was sealed
// (solving has begun; tables are read-only from that point on).
var ErrTableSealed = errors.New("entity: table is sealed")

// ErrEmptyJoint indicates a joint entity was constructed with zero
// sub-entities.
var ErrEmptyJoint = errors.New("entity: joint entity requires at least one sub-entity")
