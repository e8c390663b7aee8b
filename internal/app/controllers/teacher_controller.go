package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhvu/internhub/internal/app/models/dto"
	"github.com/minhvu/internhub/internal/app/services"
	"github.com/minhvu/internhub/internal/middleware"
)

// TeacherController handles teacher reference endpoints
type TeacherController struct {
	teacherService *services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService *services.TeacherService) *TeacherController {
	return &TeacherController{teacherService: teacherService}
}

// CreateTeacher godoc
// @Summary Create a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeacherRequest true "Teacher details"
// @Success 201 {object} dto.APIResponse{data=models.Teacher}
// @Failure 409 {object} dto.ErrorResponse
// @Router /teachers [post]
func (ct *TeacherController) CreateTeacher(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	teacher, err := ct.teacherService.CreateTeacher(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(teacher, "Teacher created"))
}

// GetTeacher godoc
// @Summary Get a teacher
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param code path string true "Teacher code"
// @Success 200 {object} dto.APIResponse{data=models.Teacher}
// @Failure 404 {object} dto.ErrorResponse
// @Router /teachers/{code} [get]
func (ct *TeacherController) GetTeacher(c *gin.Context) {
	teacher, err := ct.teacherService.GetTeacher(c.Request.Context(), c.Param("code"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(teacher, "Teacher retrieved"))
}

// ListTeachers godoc
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by name or code"
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher}
// @Router /teachers [get]
func (ct *TeacherController) ListTeachers(c *gin.Context) {
	teachers, err := ct.teacherService.ListTeachers(c.Request.Context(), c.Query("search"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(teachers, "Teachers retrieved"))
}

// UpdateTeacher godoc
// @Summary Update a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Teacher code"
// @Param request body dto.UpdateTeacherRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Teacher}
// @Failure 404 {object} dto.ErrorResponse
// @Router /teachers/{code} [put]
func (ct *TeacherController) UpdateTeacher(c *gin.Context) {
	var req dto.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	teacher, err := ct.teacherService.UpdateTeacher(c.Request.Context(), c.Param("code"), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(teacher, "Teacher updated"))
}

// DeleteTeacher godoc
// @Summary Delete a teacher
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param code path string true "Teacher code"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teachers/{code} [delete]
func (ct *TeacherController) DeleteTeacher(c *gin.Context) {
	if err := ct.teacherService.DeleteTeacher(c.Request.Context(), c.Param("code")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Teacher deleted"))
}
