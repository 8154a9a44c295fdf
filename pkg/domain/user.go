package domain

import "github.com/google/uuid"

// UserID identifies a user. Users are issued JWTs by the jwt command and are
// otherwise not persisted.
type UserID uuid.UUID

// String returns the canonical UUID form of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes an ID from any form accepted by uuid.Parse.
func (id *UserID) UnmarshalText(text []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(text)
}
