package models

import "time"

// ReportStatus enumerates review states of a submitted report
type ReportStatus string

const (
	ReportStatusSubmitted ReportStatus = "SUBMITTED"
	ReportStatusApproved  ReportStatus = "APPROVED"
	ReportStatusRejected  ReportStatus = "REJECTED"
)

// Report is an internship report submitted against a formal assignment
type Report struct {
	ID           int64        `json:"id" db:"id"`
	AssignmentID int64        `json:"assignmentId" db:"assignment_id"`
	Title        string       `json:"title" db:"title"`
	FilePath     string       `json:"filePath" db:"file_path"`
	FileURL      string       `json:"fileUrl,omitempty" db:"-"`
	Status       ReportStatus `json:"status" db:"status"`
	SubmittedAt  time.Time    `json:"submittedAt" db:"submitted_at"`
}
