package models

import "time"

// Student is a reference entity keyed by its stable code. Owned by the CRUD
// flows; the roster import only links codes.
type Student struct {
	ID        int64      `json:"id" db:"id"`
	Code      string     `json:"code" db:"code"`
	Name      string     `json:"name" db:"name"`
	Email     string     `json:"email,omitempty" db:"email"`
	Phone     string     `json:"phone,omitempty" db:"phone"`
	Class     string     `json:"class,omitempty" db:"class"`
	BirthDate *time.Time `json:"birthDate,omitempty" db:"birth_date"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}
