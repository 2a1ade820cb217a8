package models

import (
	"time"
)

// UserDB represents a user record in the database.
type UserDB struct {
	ID        int64      `json:"id" db:"id"`                 // Primary key
	Login     string     `json:"login" db:"login"`           // Unique login
	Email     string     `json:"email" db:"email"`           // Unique email
	Password  string     `json:"-" db:"password"`            // Bcrypt hash, never plaintext
	FirstName string     `json:"firstName" db:"first_name"`  // First name
	LastName  string     `json:"lastName" db:"last_name"`    // Last name
	Birthday  *time.Time `json:"birthday" db:"birthday"`     // Date of birth
	Phone     string     `json:"phone" db:"phone"`           // Phone number
	CreatedAt time.Time  `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// UserWithCars bundles a user with the cars the user owns.
type UserWithCars struct {
	User UserDB
	Cars []CarDB
}
