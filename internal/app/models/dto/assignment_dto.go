package dto

// CreateAssignmentRequest binds one student to one company within a batch
type CreateAssignmentRequest struct {
	StudentCode string  `json:"studentCode" binding:"required,max=20"`
	CompanyCode string  `json:"companyCode" binding:"required,max=20"`
	BatchID     int64   `json:"batchId" binding:"required,gt=0"`
	TeacherCode *string `json:"teacherCode" binding:"omitempty,max=20"`
	Position    string  `json:"position" binding:"omitempty,max=150"`
	StartDate   string  `json:"startDate" binding:"omitempty"`
	EndDate     string  `json:"endDate" binding:"omitempty"`
}

// UpdateAssignmentRequest updates lifecycle fields of an assignment
type UpdateAssignmentRequest struct {
	TeacherCode *string  `json:"teacherCode" binding:"omitempty,max=20"`
	Position    string   `json:"position" binding:"omitempty,max=150"`
	StartDate   string   `json:"startDate" binding:"omitempty"`
	EndDate     string   `json:"endDate" binding:"omitempty"`
	Grade       *float64 `json:"grade" binding:"omitempty,gte=0,lte=10"`
	Status      string   `json:"status" binding:"omitempty,oneof=PENDING ACTIVE COMPLETED CANCELLED"`
}
