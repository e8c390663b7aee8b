package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhvu/internhub/internal/app/models/dto"
	"github.com/minhvu/internhub/internal/app/services"
	"github.com/minhvu/internhub/internal/middleware"
)

// AssignmentController handles formal assignment endpoints
type AssignmentController struct {
	assignmentService *services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService *services.AssignmentService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// CreateAssignment godoc
// @Summary Create an assignment
// @Description Binds a student to a company within a batch and recalculates aggregates
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAssignmentRequest true "Assignment details"
// @Success 201 {object} dto.APIResponse{data=models.Assignment}
// @Failure 409 {object} dto.ErrorResponse
// @Router /assignments [post]
func (ct *AssignmentController) CreateAssignment(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	assignment, err := ct.assignmentService.CreateAssignment(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(assignment, "Assignment created"))
}

// GetAssignment godoc
// @Summary Get an assignment
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=models.Assignment}
// @Failure 404 {object} dto.ErrorResponse
// @Router /assignments/{id} [get]
func (ct *AssignmentController) GetAssignment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	assignment, err := ct.assignmentService.GetAssignment(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(assignment, "Assignment retrieved"))
}

// ListAssignments godoc
// @Summary List assignments
// @Description Lists assignments filtered by batch or by student
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param batchId query int false "Batch ID"
// @Param studentCode query string false "Student code"
// @Success 200 {object} dto.APIResponse{data=[]models.Assignment}
// @Router /assignments [get]
func (ct *AssignmentController) ListAssignments(c *gin.Context) {
	if studentCode := c.Query("studentCode"); studentCode != "" {
		assignments, err := ct.assignmentService.ListAssignmentsByStudent(c.Request.Context(), studentCode)
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewAPIResponse(assignments, "Assignments retrieved"))
		return
	}

	batchID, ok := parseQueryID(c, "batchId")
	if !ok {
		return
	}

	assignments, err := ct.assignmentService.ListAssignmentsByBatch(c.Request.Context(), batchID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(assignments, "Assignments retrieved"))
}

// UpdateAssignment godoc
// @Summary Update an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body dto.UpdateAssignmentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Assignment}
// @Failure 404 {object} dto.ErrorResponse
// @Router /assignments/{id} [put]
func (ct *AssignmentController) UpdateAssignment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	assignment, err := ct.assignmentService.UpdateAssignment(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(assignment, "Assignment updated"))
}

// DeleteAssignment godoc
// @Summary Delete an assignment
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assignments/{id} [delete]
func (ct *AssignmentController) DeleteAssignment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ct.assignmentService.DeleteAssignment(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Assignment deleted"))
}
