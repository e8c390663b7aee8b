package dto

// SubmitReportRequest submits a report against an assignment. The report file
// itself arrives as multipart form data alongside these fields.
type SubmitReportRequest struct {
	AssignmentID int64  `form:"assignmentId" binding:"required,gt=0"`
	Title        string `form:"title" binding:"required,min=2,max=200"`
}

// UpdateReportStatusRequest moves a report through review
type UpdateReportStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=SUBMITTED APPROVED REJECTED"`
}
