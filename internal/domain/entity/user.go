// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record of the system. The email doubles as the
// login identifier and is immutable after creation.
type User struct {
	ID           int64     // Numeric identifier assigned by the store on insert.
	Email        string    // Unique, case-sensitive login identifier.
	PasswordHash string    // Opaque bcrypt hash. The plaintext is never persisted.
	CreatedAt    time.Time // Set once by the store at insert time.
}
