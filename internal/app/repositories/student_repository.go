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

const studentColumns = "id, code, name, email, phone, class, birth_date, created_at"

// StudentRepository handles student reference-table operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("code", "name", "email", "phone", "class", "birth_date").
		Values(student.Code, student.Name,
			helpers.GetContentNullString(student.Email),
			helpers.GetContentNullString(student.Phone),
			helpers.GetContentNullString(student.Class),
			helpers.GetNullTime(student.BirthDate)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&student.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_code_key") {
			return apperrors.ErrStudentCodeExists
		}
		logger.Error().Err(err).Str("code", student.Code).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByCode retrieves a student by its stable code
func (r *StudentRepository) GetByCode(ctx context.Context, code string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("code", code).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// List retrieves students with optional name/code search, newest first
func (r *StudentRepository) List(ctx context.Context, search string, offset uint64, limit int) ([]*models.Student, int64, error) {
	base := r.sb.Select(studentColumns).From("students")
	countQ := r.sb.Select("COUNT(*)").From("students")
	if search != "" {
		like := "%" + search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"name": like},
			squirrel.ILike{"code": like},
		}
		base = base.Where(cond)
		countQ = countQ.Where(cond)
	}

	sql, args, err := base.OrderBy("id DESC").Offset(offset).Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, 0, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating students: %w", err)
	}

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	return students, total, nil
}

// ListCodes returns the set of all known student codes. The roster import
// uses it to validate codes without a round trip per row.
func (r *StudentRepository) ListCodes(ctx context.Context) (map[string]bool, error) {
	sql, _, err := r.sb.Select("code").From("students").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list student codes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list student codes query")
		return nil, fmt.Errorf("error querying student codes: %w", err)
	}
	defer rows.Close()

	codes := make(map[string]bool)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("error scanning student code: %w", err)
		}
		codes[code] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student codes: %w", err)
	}
	return codes, nil
}

// Update updates mutable fields of a student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("name", student.Name).
		Set("email", helpers.GetContentNullString(student.Email)).
		Set("phone", helpers.GetContentNullString(student.Phone)).
		Set("class", helpers.GetContentNullString(student.Class)).
		Set("birth_date", helpers.GetNullTime(student.BirthDate)).
		Where(squirrel.Eq{"code": student.Code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("code", student.Code).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student by code
func (r *StudentRepository) Delete(ctx context.Context, code string) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("code", code).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(row rowScanner) (*models.Student, error) {
	var (
		student models.Student
		email   sql.NullString
		phone   sql.NullString
		class   sql.NullString
	)
	err := row.Scan(&student.ID, &student.Code, &student.Name,
		&email, &phone, &class, &student.BirthDate, &student.CreatedAt)
	if err != nil {
		return nil, err
	}
	student.Email = email.String
	student.Phone = phone.String
	student.Class = class.String
	return &student, nil
}
