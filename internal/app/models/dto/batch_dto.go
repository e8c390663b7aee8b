package dto

// CreateBatchRequest creates a new internship batch
type CreateBatchRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=200" example:"Đợt thực tập HK1 2026-2027"`
	StartDate string `json:"startDate" binding:"required" example:"2026-09-01"`
	EndDate   string `json:"endDate" binding:"required" example:"2026-12-15"`
	Status    string `json:"status" binding:"omitempty,oneof=UPCOMING OPEN IN_PROGRESS CLOSED"`
}

// BatchParticipants lists the entity codes linked to one batch
type BatchParticipants struct {
	StudentCodes []string `json:"studentCodes"`
	TeacherCodes []string `json:"teacherCodes"`
	CompanyCodes []string `json:"companyCodes"`
}

// UpdateBatchRequest updates an existing batch; zero fields are left unchanged
type UpdateBatchRequest struct {
	Name      string `json:"name" binding:"omitempty,min=2,max=200"`
	StartDate string `json:"startDate" binding:"omitempty"`
	EndDate   string `json:"endDate" binding:"omitempty"`
	Status    string `json:"status" binding:"omitempty,oneof=UPCOMING OPEN IN_PROGRESS CLOSED"`
}
