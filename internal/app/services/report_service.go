package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/minhvu/internhub/internal/app/models"
	"github.com/minhvu/internhub/internal/app/models/dto"
	"github.com/minhvu/internhub/internal/app/repositories"
	"github.com/minhvu/internhub/internal/pkg/apperrors"
	"github.com/minhvu/internhub/internal/pkg/filestorage"
	"github.com/minhvu/internhub/internal/pkg/logger"
)

var allowedReportExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ReportService handles internship report submission and review
type ReportService struct {
	reportRepo     *repositories.ReportRepository
	assignmentRepo *repositories.AssignmentRepository
	storage        *filestorage.LocalStorage
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo *repositories.ReportRepository, assignmentRepo *repositories.AssignmentRepository, storage *filestorage.LocalStorage) *ReportService {
	return &ReportService{
		reportRepo:     reportRepo,
		assignmentRepo: assignmentRepo,
		storage:        storage,
	}
}

// SubmitReport stores the uploaded report file and records the submission
func (s *ReportService) SubmitReport(ctx context.Context, req *dto.SubmitReportRequest, file *multipart.FileHeader) (*models.Report, error) {
	if _, err := s.assignmentRepo.GetByID(ctx, req.AssignmentID); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedReportExtensions[ext] {
		return nil, apperrors.ErrUnsupportedFile
	}

	filePath, err := s.storage.Save(file, "reports")
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		AssignmentID: req.AssignmentID,
		Title:        req.Title,
		FilePath:     filePath,
		Status:       models.ReportStatusSubmitted,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		if delErr := s.storage.Delete(filePath); delErr != nil {
			logger.Warn().Err(delErr).Str("path", filePath).Msg("Failed to remove orphaned report file")
		}
		return nil, err
	}

	report.FileURL = s.storage.URLFor(report.FilePath)
	return report, nil
}

// GetReport retrieves a report by ID
func (s *ReportService) GetReport(ctx context.Context, id int64) (*models.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	report.FileURL = s.storage.URLFor(report.FilePath)
	return report, nil
}

// ListReportsByAssignment lists the reports of an assignment
func (s *ReportService) ListReportsByAssignment(ctx context.Context, assignmentID int64) ([]*models.Report, error) {
	if _, err := s.assignmentRepo.GetByID(ctx, assignmentID); err != nil {
		return nil, err
	}
	reports, err := s.reportRepo.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	for _, report := range reports {
		report.FileURL = s.storage.URLFor(report.FilePath)
	}
	return reports, nil
}

// UpdateReportStatus moves a report through its review lifecycle
func (s *ReportService) UpdateReportStatus(ctx context.Context, id int64, req *dto.UpdateReportStatusRequest) (*models.Report, error) {
	if err := s.reportRepo.UpdateStatus(ctx, id, models.ReportStatus(req.Status)); err != nil {
		return nil, err
	}
	return s.GetReport(ctx, id)
}

// DeleteReport removes a report record and its stored file
func (s *ReportService) DeleteReport(ctx context.Context, id int64) error {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.reportRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Delete(report.FilePath); err != nil {
		logger.Warn().Err(err).Str("path", report.FilePath).Msg("Failed to remove stored report file")
	}
	return nil
}
