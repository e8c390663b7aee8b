package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhvu/internhub/internal/app/models/dto"
	"github.com/minhvu/internhub/internal/app/services"
	"github.com/minhvu/internhub/internal/middleware"
	"github.com/minhvu/internhub/internal/pkg/helpers"
)

// StudentController handles student reference endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// CreateStudent godoc
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student details"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 409 {object} dto.ErrorResponse
// @Router /students [post]
func (ct *StudentController) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	student, err := ct.studentService.CreateStudent(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(student, "Student created"))
}

// GetStudent godoc
// @Summary Get a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param code path string true "Student code"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{code} [get]
func (ct *StudentController) GetStudent(c *gin.Context) {
	student, err := ct.studentService.GetStudent(c.Request.Context(), c.Param("code"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(student, "Student retrieved"))
}

// ListStudents godoc
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by name or code"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PagedData}
// @Router /students [get]
func (ct *StudentController) ListStudents(c *gin.Context) {
	page, size := helpers.ParsePaginationParams(c)

	students, pagination, err := ct.studentService.ListStudents(c.Request.Context(), c.Query("search"), page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	paged := dto.PagedData{Items: students, Pagination: pagination}
	c.JSON(http.StatusOK, dto.NewAPIResponse(paged, "Students retrieved"))
}

// UpdateStudent godoc
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Student code"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{code} [put]
func (ct *StudentController) UpdateStudent(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	student, err := ct.studentService.UpdateStudent(c.Request.Context(), c.Param("code"), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(student, "Student updated"))
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param code path string true "Student code"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{code} [delete]
func (ct *StudentController) DeleteStudent(c *gin.Context) {
	if err := ct.studentService.DeleteStudent(c.Request.Context(), c.Param("code")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Student deleted"))
}
