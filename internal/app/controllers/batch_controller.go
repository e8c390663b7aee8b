package controllers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/minhvu/internhub/internal/app/models/dto"
	"github.com/minhvu/internhub/internal/app/services"
	"github.com/minhvu/internhub/internal/middleware"
	"github.com/minhvu/internhub/internal/pkg/apperrors"
)

var allowedRosterMimeTypes = map[string]bool{
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

// Browsers routinely send a generic content type for spreadsheet uploads, so
// the extension is accepted as a fallback signal.
var allowedRosterExtensions = map[string]bool{
	".xls":  true,
	".xlsx": true,
}

// BatchController handles batch endpoints including the roster import
type BatchController struct {
	batchService        *services.BatchService
	rosterImportService *services.RosterImportService
	maxImportFileSize   int64
}

// NewBatchController creates a new BatchController
func NewBatchController(batchService *services.BatchService, rosterImportService *services.RosterImportService, maxImportFileSize int64) *BatchController {
	return &BatchController{
		batchService:        batchService,
		rosterImportService: rosterImportService,
		maxImportFileSize:   maxImportFileSize,
	}
}

// CreateBatch godoc
// @Summary Create a batch
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBatchRequest true "Batch details"
// @Success 201 {object} dto.APIResponse{data=models.Batch}
// @Failure 409 {object} dto.ErrorResponse
// @Router /batches [post]
func (ct *BatchController) CreateBatch(c *gin.Context) {
	var req dto.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	batch, err := ct.batchService.CreateBatch(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(batch, "Batch created"))
}

// GetBatch godoc
// @Summary Get a batch
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} dto.APIResponse{data=models.Batch}
// @Failure 404 {object} dto.ErrorResponse
// @Router /batches/{id} [get]
func (ct *BatchController) GetBatch(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	batch, err := ct.batchService.GetBatch(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(batch, "Batch retrieved"))
}

// ListBatches godoc
// @Summary List batches
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.APIResponse{data=[]models.Batch}
// @Router /batches [get]
func (ct *BatchController) ListBatches(c *gin.Context) {
	batches, err := ct.batchService.ListBatches(c.Request.Context(), c.Query("status"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(batches, "Batches retrieved"))
}

// UpdateBatch godoc
// @Summary Update a batch
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Param request body dto.UpdateBatchRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Batch}
// @Failure 404 {object} dto.ErrorResponse
// @Router /batches/{id} [put]
func (ct *BatchController) UpdateBatch(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	batch, err := ct.batchService.UpdateBatch(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(batch, "Batch updated"))
}

// DeleteBatch godoc
// @Summary Delete a batch
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /batches/{id} [delete]
func (ct *BatchController) DeleteBatch(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ct.batchService.DeleteBatch(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Batch deleted"))
}

// ListParticipants godoc
// @Summary List batch participants
// @Description Returns the student, teacher and company codes linked to the batch
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} dto.APIResponse{data=dto.BatchParticipants}
// @Failure 404 {object} dto.ErrorResponse
// @Router /batches/{id}/participants [get]
func (ct *BatchController) ListParticipants(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	participants, err := ct.batchService.ListParticipants(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(participants, "Participants retrieved"))
}

// ListImportRuns godoc
// @Summary List import history
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ImportRun}
// @Failure 404 {object} dto.ErrorResponse
// @Router /batches/{id}/imports [get]
func (ct *BatchController) ListImportRuns(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	runs, err := ct.batchService.ListImportRuns(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(runs, "Import runs retrieved"))
}

// ImportRoster godoc
// @Summary Import a roster spreadsheet
// @Description Ingests an .xlsx roster into the batch and recalculates aggregates
// @Tags batches
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Param file formData file true "Roster spreadsheet (.xlsx)"
// @Success 200 {object} dto.APIResponse{data=dto.ImportResult}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /batches/{id}/import [post]
func (ct *BatchController) ImportRoster(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(c, apperrors.ErrImportFileMissing)
		return
	}
	if fileHeader.Size > ct.maxImportFileSize {
		middleware.HandleAPIError(c, apperrors.ErrFileTooLarge)
		return
	}
	mimeType := fileHeader.Header.Get("Content-Type")
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedRosterMimeTypes[mimeType] && !allowedRosterExtensions[ext] {
		middleware.HandleAPIError(c, apperrors.ErrUnsupportedFile)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(c, apperrors.ErrUnreadableFile)
		return
	}
	defer file.Close()

	result, err := ct.rosterImportService.Import(c.Request.Context(), id, fileHeader.Filename, file)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(result, services.ImportMessage(result)))
}

// parseIDParam reads the numeric :id path parameter, writing the error
// response itself on failure.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "id must be a positive integer").WithField("id")))
		return 0, false
	}
	return id, true
}

// parseQueryID reads a numeric query parameter, writing the error response
// itself on failure.
func parseQueryID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, name+" must be a positive integer").WithField(name)))
		return 0, false
	}
	return id, true
}
