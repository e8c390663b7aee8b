package services

import (
	"context"
	"time"

	"github.com/minhvu/internhub/internal/app/models"
	"github.com/minhvu/internhub/internal/app/models/dto"
	"github.com/minhvu/internhub/internal/app/repositories"
	"github.com/minhvu/internhub/internal/pkg/apperrors"
	"github.com/minhvu/internhub/internal/pkg/helpers"
)

// StudentService handles student reference records
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// CreateStudent creates a student record
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		Code:      req.Code,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Class:     req.Class,
		BirthDate: birthDate,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// GetStudent retrieves a student by code
func (s *StudentService) GetStudent(ctx context.Context, code string) (*models.Student, error) {
	return s.studentRepo.GetByCode(ctx, code)
}

// ListStudents lists students matching an optional name/code search
func (s *StudentService) ListStudents(ctx context.Context, search string, page, pageSize int) ([]*models.Student, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	students, total, err := s.studentRepo.List(ctx, search, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return students, helpers.NewPaginationInfo(total, page, limit), nil
}

// UpdateStudent applies a partial update to a student
func (s *StudentService) UpdateStudent(ctx context.Context, code string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		student.Name = req.Name
	}
	if req.Email != "" {
		student.Email = req.Email
	}
	if req.Phone != "" {
		student.Phone = req.Phone
	}
	if req.Class != "" {
		student.Class = req.Class
	}
	if req.BirthDate != "" {
		birthDate, err := parseOptionalDate(req.BirthDate)
		if err != nil {
			return nil, err
		}
		student.BirthDate = birthDate
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteStudent removes a student record
func (s *StudentService) DeleteStudent(ctx context.Context, code string) error {
	return s.studentRepo.Delete(ctx, code)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, apperrors.NewValidationError("date must be formatted as YYYY-MM-DD")
	}
	return &parsed, nil
}
