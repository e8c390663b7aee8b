package models

import "time"

// AssignmentStatus enumerates the lifecycle of a formal assignment
type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "PENDING"
	AssignmentStatusActive    AssignmentStatus = "ACTIVE"
	AssignmentStatusCompleted AssignmentStatus = "COMPLETED"
	AssignmentStatusCancelled AssignmentStatus = "CANCELLED"
)

// Assignment is the authoritative record binding one student to one company
// within a batch, optionally with a supervising teacher. When assignments
// exist for a batch their distinct-student counts supersede import-observed
// company counts.
type Assignment struct {
	ID          int64            `json:"id" db:"id"`
	StudentCode string           `json:"studentCode" db:"student_code"`
	CompanyCode string           `json:"companyCode" db:"company_code"`
	BatchID     int64            `json:"batchId" db:"batch_id"`
	TeacherCode *string          `json:"teacherCode,omitempty" db:"teacher_code"`
	Position    string           `json:"position,omitempty" db:"position"`
	StartDate   *time.Time       `json:"startDate,omitempty" db:"start_date"`
	EndDate     *time.Time       `json:"endDate,omitempty" db:"end_date"`
	Grade       *float64         `json:"grade,omitempty" db:"grade"`
	Status      AssignmentStatus `json:"status" db:"status"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time        `json:"updatedAt" db:"updated_at"`
}
