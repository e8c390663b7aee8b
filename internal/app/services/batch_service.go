package services

import (
	"context"
	"time"

	"github.com/minhvu/internhub/internal/app/models"
	"github.com/minhvu/internhub/internal/app/models/dto"
	"github.com/minhvu/internhub/internal/app/repositories"
	"github.com/minhvu/internhub/internal/pkg/apperrors"
)

const batchDateLayout = "2006-01-02"

// BatchService handles internship batch lifecycle
type BatchService struct {
	batchRepo         *repositories.BatchRepository
	participationRepo *repositories.ParticipationRepository
	importRunRepo     *repositories.ImportRunRepository
}

// NewBatchService creates a new BatchService
func NewBatchService(batchRepo *repositories.BatchRepository, participationRepo *repositories.ParticipationRepository, importRunRepo *repositories.ImportRunRepository) *BatchService {
	return &BatchService{
		batchRepo:         batchRepo,
		participationRepo: participationRepo,
		importRunRepo:     importRunRepo,
	}
}

// CreateBatch creates a new batch
func (s *BatchService) CreateBatch(ctx context.Context, req *dto.CreateBatchRequest) (*models.Batch, error) {
	startDate, err := time.Parse(batchDateLayout, req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("startDate must be formatted as YYYY-MM-DD")
	}
	endDate, err := time.Parse(batchDateLayout, req.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("endDate must be formatted as YYYY-MM-DD")
	}
	if endDate.Before(startDate) {
		return nil, apperrors.NewValidationError("endDate must not precede startDate")
	}

	status := models.BatchStatus(req.Status)
	if status == "" {
		status = models.BatchStatusUpcoming
	}

	batch := &models.Batch{
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
	}
	if err := s.batchRepo.Create(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// GetBatch retrieves a batch by ID
func (s *BatchService) GetBatch(ctx context.Context, id int64) (*models.Batch, error) {
	return s.batchRepo.GetByID(ctx, id)
}

// ListBatches lists batches, optionally filtered by status
func (s *BatchService) ListBatches(ctx context.Context, status string) ([]*models.Batch, error) {
	return s.batchRepo.List(ctx, status)
}

// UpdateBatch applies a partial update to a batch
func (s *BatchService) UpdateBatch(ctx context.Context, id int64, req *dto.UpdateBatchRequest) (*models.Batch, error) {
	batch, err := s.batchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		batch.Name = req.Name
	}
	if req.StartDate != "" {
		startDate, err := time.Parse(batchDateLayout, req.StartDate)
		if err != nil {
			return nil, apperrors.NewValidationError("startDate must be formatted as YYYY-MM-DD")
		}
		batch.StartDate = startDate
	}
	if req.EndDate != "" {
		endDate, err := time.Parse(batchDateLayout, req.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationError("endDate must be formatted as YYYY-MM-DD")
		}
		batch.EndDate = endDate
	}
	if batch.EndDate.Before(batch.StartDate) {
		return nil, apperrors.NewValidationError("endDate must not precede startDate")
	}
	if req.Status != "" {
		batch.Status = models.BatchStatus(req.Status)
	}

	if err := s.batchRepo.Update(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// DeleteBatch removes a batch and, by cascade, its links and import history
func (s *BatchService) DeleteBatch(ctx context.Context, id int64) error {
	return s.batchRepo.Delete(ctx, id)
}

// ListParticipants returns the linked codes of a batch grouped by kind
func (s *BatchService) ListParticipants(ctx context.Context, batchID int64) (*dto.BatchParticipants, error) {
	if _, err := s.batchRepo.GetByID(ctx, batchID); err != nil {
		return nil, err
	}

	students, err := s.participationRepo.ListStudentCodes(ctx, batchID)
	if err != nil {
		return nil, err
	}
	teachers, err := s.participationRepo.ListTeacherCodes(ctx, batchID)
	if err != nil {
		return nil, err
	}
	companies, err := s.participationRepo.ListCompanyCodes(ctx, batchID)
	if err != nil {
		return nil, err
	}

	return &dto.BatchParticipants{
		StudentCodes: students,
		TeacherCodes: teachers,
		CompanyCodes: companies,
	}, nil
}

// ListImportRuns returns the import history of a batch
func (s *BatchService) ListImportRuns(ctx context.Context, batchID int64) ([]*models.ImportRun, error) {
	if _, err := s.batchRepo.GetByID(ctx, batchID); err != nil {
		return nil, err
	}
	return s.importRunRepo.ListByBatch(ctx, batchID)
}
