package models

import "time"

// CarDB represents a car record in the database. UserID is nil while the
// car is unowned ("available").
type CarDB struct {
	ID           int64     `json:"id" db:"id"`                        // Primary key
	LicensePlate string    `json:"licensePlate" db:"license_plate"`   // Unique license plate
	Model        string    `json:"model" db:"model"`                  // Car model
	Color        string    `json:"color" db:"color"`                  // Car color
	Year         int       `json:"year" db:"year"`                    // Manufacturing year, positive
	UserID       *int64    `json:"userId,omitempty" db:"user_id"`     // Owning user, nullable
	CreatedAt    time.Time `json:"created_at" db:"created_at"`        // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`        // Last update timestamp
}
