package entity

import "time"

// Post is a piece of content published by exactly one user. Ownership
// is fixed at creation and checked again at the store boundary on
// deletion, so a caller skipping the service-level check gains nothing.
type Post struct {
	ID        int64     // Numeric identifier assigned by the store on insert.
	Text      string    // UTF-8 content, 1..1,000,000 bytes (validated at the transport).
	UserID    int64     // Owning user; references an existing User at creation time.
	CreatedAt time.Time // Set once by the store at insert time.
}
