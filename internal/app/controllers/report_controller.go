package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhvu/internhub/internal/app/models/dto"
	"github.com/minhvu/internhub/internal/app/services"
	"github.com/minhvu/internhub/internal/middleware"
	"github.com/minhvu/internhub/internal/pkg/apperrors"
)

// ReportController handles internship report endpoints
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// SubmitReport godoc
// @Summary Submit a report
// @Description Uploads a report file against an assignment
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param assignmentId formData int true "Assignment ID"
// @Param title formData string true "Report title"
// @Param file formData file true "Report document (.pdf, .doc, .docx)"
// @Success 201 {object} dto.APIResponse{data=models.Report}
// @Failure 400 {object} dto.ErrorResponse
// @Router /reports [post]
func (ct *ReportController) SubmitReport(c *gin.Context) {
	var req dto.SubmitReportRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(c, apperrors.ErrImportFileMissing)
		return
	}

	report, err := ct.reportService.SubmitReport(c.Request.Context(), &req, fileHeader)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(report, "Report submitted"))
}

// GetReport godoc
// @Summary Get a report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} dto.APIResponse{data=models.Report}
// @Failure 404 {object} dto.ErrorResponse
// @Router /reports/{id} [get]
func (ct *ReportController) GetReport(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	report, err := ct.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(report, "Report retrieved"))
}

// ListReports godoc
// @Summary List reports of an assignment
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param assignmentId query int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Report}
// @Router /reports [get]
func (ct *ReportController) ListReports(c *gin.Context) {
	assignmentID, ok := parseQueryID(c, "assignmentId")
	if !ok {
		return
	}

	reports, err := ct.reportService.ListReportsByAssignment(c.Request.Context(), assignmentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(reports, "Reports retrieved"))
}

// UpdateReportStatus godoc
// @Summary Review a report
// @Description Moves a report through its review lifecycle
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Param request body dto.UpdateReportStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Report}
// @Failure 404 {object} dto.ErrorResponse
// @Router /reports/{id}/status [put]
func (ct *ReportController) UpdateReportStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	report, err := ct.reportService.UpdateReportStatus(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(report, "Report status updated"))
}

// DeleteReport godoc
// @Summary Delete a report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /reports/{id} [delete]
func (ct *ReportController) DeleteReport(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ct.reportService.DeleteReport(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Report deleted"))
}
