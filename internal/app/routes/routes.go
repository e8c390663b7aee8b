// Package routes wires HTTP endpoints to controllers with role protection.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/minhvu/internhub/internal/app/controllers"
	"github.com/minhvu/internhub/internal/app/models"
	"github.com/minhvu/internhub/internal/middleware"
	"github.com/minhvu/internhub/internal/pkg/auth"
)

const (
	roleAdmin   = string(models.RoleAdmin)
	roleTeacher = string(models.RoleTeacher)
	roleStudent = string(models.RoleStudent)
)

// Register mounts the full API surface under /api/v1
func Register(router *gin.Engine, ctrls *controllers.Controllers, jwtService *auth.JWTService) {
	api := router.Group("/api/v1")

	// public auth endpoints
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", ctrls.AuthController.Login)
		authGroup.POST("/refresh", ctrls.AuthController.RefreshToken)
		authGroup.POST("/logout", ctrls.AuthController.Logout)
	}

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService))

	protected.GET("/auth/me", ctrls.AuthController.GetProfile)
	protected.POST("/auth/users", middleware.RoleRequired(roleAdmin), ctrls.AuthController.CreateUser)

	staff := middleware.RoleRequired(roleAdmin, roleTeacher)
	admin := middleware.RoleRequired(roleAdmin)

	batches := protected.Group("/batches")
	{
		batches.GET("", ctrls.BatchController.ListBatches)
		batches.GET("/:id", ctrls.BatchController.GetBatch)
		batches.GET("/:id/participants", ctrls.BatchController.ListParticipants)
		batches.GET("/:id/imports", staff, ctrls.BatchController.ListImportRuns)
		batches.POST("", admin, ctrls.BatchController.CreateBatch)
		batches.PUT("/:id", admin, ctrls.BatchController.UpdateBatch)
		batches.DELETE("/:id", admin, ctrls.BatchController.DeleteBatch)
		batches.POST("/:id/import", admin, ctrls.BatchController.ImportRoster)
	}

	students := protected.Group("/students")
	{
		students.GET("", ctrls.StudentController.ListStudents)
		students.GET("/:code", ctrls.StudentController.GetStudent)
		students.POST("", staff, ctrls.StudentController.CreateStudent)
		students.PUT("/:code", staff, ctrls.StudentController.UpdateStudent)
		students.DELETE("/:code", admin, ctrls.StudentController.DeleteStudent)
	}

	teachers := protected.Group("/teachers")
	{
		teachers.GET("", ctrls.TeacherController.ListTeachers)
		teachers.GET("/:code", ctrls.TeacherController.GetTeacher)
		teachers.POST("", staff, ctrls.TeacherController.CreateTeacher)
		teachers.PUT("/:code", staff, ctrls.TeacherController.UpdateTeacher)
		teachers.DELETE("/:code", admin, ctrls.TeacherController.DeleteTeacher)
	}

	companies := protected.Group("/companies")
	{
		companies.GET("", ctrls.CompanyController.ListCompanies)
		companies.GET("/:code", ctrls.CompanyController.GetCompany)
		companies.POST("", staff, ctrls.CompanyController.CreateCompany)
		companies.PUT("/:code", staff, ctrls.CompanyController.UpdateCompany)
		companies.DELETE("/:code", admin, ctrls.CompanyController.DeleteCompany)
	}

	assignments := protected.Group("/assignments")
	{
		assignments.GET("", ctrls.AssignmentController.ListAssignments)
		assignments.GET("/:id", ctrls.AssignmentController.GetAssignment)
		assignments.POST("", staff, ctrls.AssignmentController.CreateAssignment)
		assignments.PUT("/:id", staff, ctrls.AssignmentController.UpdateAssignment)
		assignments.DELETE("/:id", staff, ctrls.AssignmentController.DeleteAssignment)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("", ctrls.ReportController.ListReports)
		reports.GET("/:id", ctrls.ReportController.GetReport)
		reports.POST("", middleware.RoleRequired(roleAdmin, roleTeacher, roleStudent), ctrls.ReportController.SubmitReport)
		reports.PUT("/:id/status", staff, ctrls.ReportController.UpdateReportStatus)
		reports.DELETE("/:id", staff, ctrls.ReportController.DeleteReport)
	}
}
