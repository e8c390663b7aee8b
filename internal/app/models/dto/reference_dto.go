package dto

// Reference-entity requests. Students, teachers and companies share the same
// create/update shape around a stable code and a display name.

// CreateStudentRequest creates a student reference record
type CreateStudentRequest struct {
	Code      string `json:"code" binding:"required,max=20" example:"SV001"`
	Name      string `json:"name" binding:"required,min=2,max=150"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
	Class     string `json:"class" binding:"omitempty,max=50"`
	BirthDate string `json:"birthDate" binding:"omitempty"`
}

// UpdateStudentRequest updates a student; the code is immutable
type UpdateStudentRequest struct {
	Name      string `json:"name" binding:"omitempty,min=2,max=150"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
	Class     string `json:"class" binding:"omitempty,max=50"`
	BirthDate string `json:"birthDate" binding:"omitempty"`
}

// CreateTeacherRequest creates a teacher reference record
type CreateTeacherRequest struct {
	Code       string `json:"code" binding:"required,max=20" example:"GV001"`
	Name       string `json:"name" binding:"required,min=2,max=150" example:"TS. Trần Bình"`
	Email      string `json:"email" binding:"omitempty,email"`
	Department string `json:"department" binding:"omitempty,max=150"`
}

// UpdateTeacherRequest updates a teacher; the code is immutable
type UpdateTeacherRequest struct {
	Name       string `json:"name" binding:"omitempty,min=2,max=150"`
	Email      string `json:"email" binding:"omitempty,email"`
	Department string `json:"department" binding:"omitempty,max=150"`
}

// CreateCompanyRequest creates a company reference record
type CreateCompanyRequest struct {
	Code    string `json:"code" binding:"required,max=20" example:"DN001"`
	Name    string `json:"name" binding:"required,min=2,max=200" example:"Công ty TNHH ABC"`
	Address string `json:"address" binding:"omitempty,max=300"`
	Contact string `json:"contact" binding:"omitempty,max=150"`
}

// UpdateCompanyRequest updates a company; the code is immutable
type UpdateCompanyRequest struct {
	Name    string `json:"name" binding:"omitempty,min=2,max=200"`
	Address string `json:"address" binding:"omitempty,max=300"`
	Contact string `json:"contact" binding:"omitempty,max=150"`
}
