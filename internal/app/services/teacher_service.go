package services

import (
	"context"

	"github.com/minhvu/internhub/internal/app/models"
	"github.com/minhvu/internhub/internal/app/models/dto"
	"github.com/minhvu/internhub/internal/app/repositories"
	"github.com/minhvu/internhub/internal/pkg/vntext"
)

// TeacherService handles teacher reference records
type TeacherService struct {
	teacherRepo *repositories.TeacherRepository
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(teacherRepo *repositories.TeacherRepository) *TeacherService {
	return &TeacherService{teacherRepo: teacherRepo}
}

// CreateTeacher creates a teacher record
func (s *TeacherService) CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error) {
	teacher := &models.Teacher{
		Code:       req.Code,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

// GetTeacher retrieves a teacher by code
func (s *TeacherService) GetTeacher(ctx context.Context, code string) (*models.Teacher, error) {
	return s.teacherRepo.GetByCode(ctx, code)
}

// ListTeachers lists teachers in table order, optionally filtered by a
// diacritic-insensitive name/code search.
func (s *TeacherService) ListTeachers(ctx context.Context, search string) ([]*models.Teacher, error) {
	teachers, err := s.teacherRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return teachers, nil
	}

	filtered := make([]*models.Teacher, 0, len(teachers))
	for _, t := range teachers {
		if vntext.ContainsNormalized(t.Name, search) || vntext.ContainsNormalized(t.Code, search) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// UpdateTeacher applies a partial update to a teacher
func (s *TeacherService) UpdateTeacher(ctx context.Context, code string, req *dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		teacher.Name = req.Name
	}
	if req.Email != "" {
		teacher.Email = req.Email
	}
	if req.Department != "" {
		teacher.Department = req.Department
	}

	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

// DeleteTeacher removes a teacher record
func (s *TeacherService) DeleteTeacher(ctx context.Context, code string) error {
	return s.teacherRepo.Delete(ctx, code)
}
