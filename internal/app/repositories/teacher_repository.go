package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minhvu/internhub/internal/app/models"
	"github.com/minhvu/internhub/internal/pkg/apperrors"
	"github.com/minhvu/internhub/internal/pkg/dberrors"
	"github.com/minhvu/internhub/internal/pkg/helpers"
	"github.com/minhvu/internhub/internal/pkg/logger"
)

const teacherColumns = "id, code, name, email, department, created_at"

// TeacherRepository handles teacher reference-table operations
type TeacherRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new teacher
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := r.sb.Insert("teachers").
		Columns("code", "name", "email", "department").
		Values(teacher.Code, teacher.Name,
			helpers.GetContentNullString(teacher.Email),
			helpers.GetContentNullString(teacher.Department)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create teacher query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&teacher.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "teachers_code_key") {
			return apperrors.ErrTeacherCodeExists
		}
		logger.Error().Err(err).Str("code", teacher.Code).Msg("Error executing create teacher query")
		return fmt.Errorf("error creating teacher: %w", err)
	}
	return nil
}

// GetByCode retrieves a teacher by its stable code
func (r *TeacherRepository) GetByCode(ctx context.Context, code string) (*models.Teacher, error) {
	sql, args, err := r.sb.Select(teacherColumns).
		From("teachers").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	teacher, err := scanTeacher(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		logger.Error().Err(err).Str("code", code).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return teacher, nil
}

// ListAll returns every teacher in table order. The roster import uses it to
// build the fuzzy name resolver.
func (r *TeacherRepository) ListAll(ctx context.Context) ([]*models.Teacher, error) {
	sql, _, err := r.sb.Select(teacherColumns).From("teachers").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list teachers query")
		return nil, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning teacher: %w", err)
		}
		teachers = append(teachers, teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teachers: %w", err)
	}
	return teachers, nil
}

// Update updates mutable fields of a teacher
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := r.sb.Update("teachers").
		Set("name", teacher.Name).
		Set("email", helpers.GetContentNullString(teacher.Email)).
		Set("department", helpers.GetContentNullString(teacher.Department)).
		Where(squirrel.Eq{"code": teacher.Code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update teacher query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("code", teacher.Code).Msg("Error executing update teacher query")
		return fmt.Errorf("error updating teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

// Delete removes a teacher by code
func (r *TeacherRepository) Delete(ctx context.Context, code string) error {
	sql, args, err := r.sb.Delete("teachers").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete teacher query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("code", code).Msg("Error executing delete teacher query")
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

func scanTeacher(row rowScanner) (*models.Teacher, error) {
	var (
		teacher    models.Teacher
		email      sql.NullString
		department sql.NullString
	)
	err := row.Scan(&teacher.ID, &teacher.Code, &teacher.Name,
		&email, &department, &teacher.CreatedAt)
	if err != nil {
		return nil, err
	}
	teacher.Email = email.String
	teacher.Department = department.String
	return &teacher, nil
}
