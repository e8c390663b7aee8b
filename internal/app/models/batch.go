package models

import "time"

// BatchStatus enumerates the lifecycle of an internship batch
type BatchStatus string

const (
	BatchStatusUpcoming   BatchStatus = "UPCOMING"
	BatchStatusOpen       BatchStatus = "OPEN"
	BatchStatusInProgress BatchStatus = "IN_PROGRESS"
	BatchStatusClosed     BatchStatus = "CLOSED"
)

// Batch represents one internship cohort/period. The cached participant
// counts are the only fields the roster reconciliation engine mutates.
type Batch struct {
	ID           int64       `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	StartDate    time.Time   `json:"startDate" db:"start_date"`
	EndDate      time.Time   `json:"endDate" db:"end_date"`
	Status       BatchStatus `json:"status" db:"status"`
	StudentCount int         `json:"studentCount" db:"student_count"`
	TeacherCount int         `json:"teacherCount" db:"teacher_count"`
	CompanyCount int         `json:"companyCount" db:"company_count"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
}
