package models

import "time"

// Teacher is a reference entity with a stable code and the display name used
// for fuzzy matching during roster imports.
type Teacher struct {
	ID         int64     `json:"id" db:"id"`
	Code       string    `json:"code" db:"code"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email,omitempty" db:"email"`
	Department string    `json:"department,omitempty" db:"department"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
