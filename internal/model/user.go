package model

import "github.com/google/uuid"

// User is a credential record. Seeded here, read elsewhere in the system.
type User struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Name     string    `db:"name" json:"name"`
	Email    string    `db:"email" json:"email"`
	Password string    `db:"password" json:"-"`
}
