package services

import (
	"context"

	"github.com/minhvu/internhub/internal/app/models"
	"github.com/minhvu/internhub/internal/app/models/dto"
	"github.com/minhvu/internhub/internal/app/repositories"
	"github.com/minhvu/internhub/internal/pkg/logger"
)

// BatchRecalculator rebuilds batch aggregates after assignment changes. The
// roster import service provides the implementation.
type BatchRecalculator interface {
	Recalculate(ctx context.Context, batchID int64, observations *Observations) (models.CountSource, error)
}

// AssignmentService handles formal assignments. Every mutation triggers an
// aggregate recalculation because assignments, once present, become the
// authoritative source for per-company student counts.
type AssignmentService struct {
	assignmentRepo *repositories.AssignmentRepository
	studentRepo    *repositories.StudentRepository
	companyRepo    *repositories.CompanyRepository
	batchRepo      *repositories.BatchRepository
	recalculator   BatchRecalculator
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	assignmentRepo *repositories.AssignmentRepository,
	studentRepo *repositories.StudentRepository,
	companyRepo *repositories.CompanyRepository,
	batchRepo *repositories.BatchRepository,
	recalculator BatchRecalculator,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		studentRepo:    studentRepo,
		companyRepo:    companyRepo,
		batchRepo:      batchRepo,
		recalculator:   recalculator,
	}
}

// CreateAssignment creates a formal assignment and recalculates the batch
func (s *AssignmentService) CreateAssignment(ctx context.Context, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	if _, err := s.batchRepo.GetByID(ctx, req.BatchID); err != nil {
		return nil, err
	}
	if _, err := s.studentRepo.GetByCode(ctx, req.StudentCode); err != nil {
		return nil, err
	}
	if _, err := s.companyRepo.GetByCode(ctx, req.CompanyCode); err != nil {
		return nil, err
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		StudentCode: req.StudentCode,
		CompanyCode: req.CompanyCode,
		BatchID:     req.BatchID,
		TeacherCode: req.TeacherCode,
		Position:    req.Position,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      models.AssignmentStatusPending,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	s.recalculate(ctx, req.BatchID)
	return assignment, nil
}

// GetAssignment retrieves an assignment by ID
func (s *AssignmentService) GetAssignment(ctx context.Context, id int64) (*models.Assignment, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

// ListAssignmentsByBatch lists the assignments of a batch
func (s *AssignmentService) ListAssignmentsByBatch(ctx context.Context, batchID int64) ([]*models.Assignment, error) {
	if _, err := s.batchRepo.GetByID(ctx, batchID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.ListByBatch(ctx, batchID)
}

// ListAssignmentsByStudent lists a student's assignments across batches
func (s *AssignmentService) ListAssignmentsByStudent(ctx context.Context, studentCode string) ([]*models.Assignment, error) {
	if _, err := s.studentRepo.GetByCode(ctx, studentCode); err != nil {
		return nil, err
	}
	return s.assignmentRepo.ListByStudent(ctx, studentCode)
}

// UpdateAssignment applies a partial update and recalculates the batch
func (s *AssignmentService) UpdateAssignment(ctx context.Context, id int64, req *dto.UpdateAssignmentRequest) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TeacherCode != nil {
		assignment.TeacherCode = req.TeacherCode
	}
	if req.Position != "" {
		assignment.Position = req.Position
	}
	if req.StartDate != "" {
		startDate, err := parseOptionalDate(req.StartDate)
		if err != nil {
			return nil, err
		}
		assignment.StartDate = startDate
	}
	if req.EndDate != "" {
		endDate, err := parseOptionalDate(req.EndDate)
		if err != nil {
			return nil, err
		}
		assignment.EndDate = endDate
	}
	if req.Grade != nil {
		assignment.Grade = req.Grade
	}
	if req.Status != "" {
		assignment.Status = models.AssignmentStatus(req.Status)
	}

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, err
	}

	s.recalculate(ctx, assignment.BatchID)
	return assignment, nil
}

// DeleteAssignment removes an assignment and recalculates the batch
func (s *AssignmentService) DeleteAssignment(ctx context.Context, id int64) error {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recalculate(ctx, assignment.BatchID)
	return nil
}

// recalculate refreshes the batch aggregates. The assignment mutation itself
// already succeeded, so a recalculation failure is logged rather than
// surfaced; the next import or mutation repairs the counts.
func (s *AssignmentService) recalculate(ctx context.Context, batchID int64) {
	if _, err := s.recalculator.Recalculate(ctx, batchID, nil); err != nil {
		logger.Error().Err(err).Int64("batchID", batchID).
			Msg("Aggregate recalculation after assignment change failed")
	}
}
