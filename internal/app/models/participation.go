package models

// Participation links are join rows with a uniqueness invariant: at most one
// link per (entity code, batch). They are inserted-if-absent, never updated,
// and removed only by batch deletion cascade.

// BatchStudent links a student to a batch
type BatchStudent struct {
	StudentCode string `json:"studentCode" db:"student_code"`
	BatchID     int64  `json:"batchId" db:"batch_id"`
}

// BatchTeacher links a supervising teacher to a batch
type BatchTeacher struct {
	TeacherCode string `json:"teacherCode" db:"teacher_code"`
	BatchID     int64  `json:"batchId" db:"batch_id"`
}

// BatchCompany links a receiving company to a batch. StudentCount is the
// batch-scoped "students received" figure written by the recalculation.
type BatchCompany struct {
	CompanyCode  string `json:"companyCode" db:"company_code"`
	BatchID      int64  `json:"batchId" db:"batch_id"`
	StudentCount int    `json:"studentCount" db:"student_count"`
}
