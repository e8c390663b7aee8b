package controllers

import (
	"github.com/minhvu/internhub/internal/app/services"
)

// Controllers holds all controller instances
type Controllers struct {
	AuthController       *AuthController
	BatchController      *BatchController
	StudentController    *StudentController
	TeacherController    *TeacherController
	CompanyController    *CompanyController
	AssignmentController *AssignmentController
	ReportController     *ReportController
}

// NewControllers wires all controllers over the shared services
func NewControllers(svcs *services.Services, maxImportFileSize int64) *Controllers {
	return &Controllers{
		AuthController:       NewAuthController(svcs.AuthService),
		BatchController:      NewBatchController(svcs.BatchService, svcs.RosterImportService, maxImportFileSize),
		StudentController:    NewStudentController(svcs.StudentService),
		TeacherController:    NewTeacherController(svcs.TeacherService),
		CompanyController:    NewCompanyController(svcs.CompanyService),
		AssignmentController: NewAssignmentController(svcs.AssignmentService),
		ReportController:     NewReportController(svcs.ReportService),
	}
}
