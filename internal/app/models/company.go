package models

import "time"

// Company is a reference entity. StudentCount is derived by the aggregate
// recalculation, every other field is owned by the CRUD flows.
type Company struct {
	ID           int64     `json:"id" db:"id"`
	Code         string    `json:"code" db:"code"`
	Name         string    `json:"name" db:"name"`
	Address      string    `json:"address,omitempty" db:"address"`
	Contact      string    `json:"contact,omitempty" db:"contact"`
	StudentCount int       `json:"studentCount" db:"student_count"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
