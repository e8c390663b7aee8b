package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minhvu/internhub/internal/app/models"
	"github.com/minhvu/internhub/internal/pkg/apperrors"
	"github.com/minhvu/internhub/internal/pkg/dberrors"
	"github.com/minhvu/internhub/internal/pkg/logger"
)

const assignmentColumns = "id, student_code, company_code, batch_id, teacher_code, position, start_date, end_date, grade, status, created_at, updated_at"

// AssignmentRepository handles formal assignment operations
type AssignmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new assignment
func (r *AssignmentRepository) Create(ctx context.Context, a *models.Assignment) error {
	sql, args, err := r.sb.Insert("assignments").
		Columns("student_code", "company_code", "batch_id", "teacher_code", "position", "start_date", "end_date", "status").
		Values(a.StudentCode, a.CompanyCode, a.BatchID, a.TeacherCode, a.Position, a.StartDate, a.EndDate, a.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create assignment query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "assignments_batch_student_key") {
			return apperrors.ErrAssignmentExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Str("studentCode", a.StudentCode).Int64("batchID", a.BatchID).
			Msg("Error executing create assignment query")
		return fmt.Errorf("error creating assignment: %w", err)
	}

	logger.Info().Int64("assignmentID", a.ID).Str("studentCode", a.StudentCode).
		Str("companyCode", a.CompanyCode).Int64("batchID", a.BatchID).Msg("Assignment created")
	return nil
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	sql, args, err := r.sb.Select(assignmentColumns).
		From("assignments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get assignment query: %w", err)
	}

	a, err := scanAssignment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		logger.Error().Err(err).Int64("assignmentID", id).Msg("Error scanning assignment row")
		return nil, fmt.Errorf("error retrieving assignment: %w", err)
	}
	return a, nil
}

// ListByBatch retrieves the assignments of a batch
func (r *AssignmentRepository) ListByBatch(ctx context.Context, batchID int64) ([]*models.Assignment, error) {
	sql, args, err := r.sb.Select(assignmentColumns).
		From("assignments").
		Where(squirrel.Eq{"batch_id": batchID}).
		OrderBy("student_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list assignments query: %w", err)
	}
	return r.queryAssignments(ctx, sql, args)
}

// ListByStudent retrieves the assignments of a student across batches
func (r *AssignmentRepository) ListByStudent(ctx context.Context, studentCode string) ([]*models.Assignment, error) {
	sql, args, err := r.sb.Select(assignmentColumns).
		From("assignments").
		Where(squirrel.Eq{"student_code": studentCode}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list assignments query: %w", err)
	}
	return r.queryAssignments(ctx, sql, args)
}

func (r *AssignmentRepository) queryAssignments(ctx context.Context, sql string, args []interface{}) ([]*models.Assignment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list assignments query")
		return nil, fmt.Errorf("error querying assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}
	return assignments, nil
}

// HasForBatch reports whether at least one assignment exists for the batch.
// This is the switch between the two company-count sources.
func (r *AssignmentRepository) HasForBatch(ctx context.Context, batchID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("assignments").
		Where(squirrel.Eq{"batch_id": batchID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build assignment existence query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		logger.Error().Err(err).Int64("batchID", batchID).Msg("Error checking assignment existence")
		return false, fmt.Errorf("error checking assignments for batch: %w", err)
	}
	return true, nil
}

// DistinctStudentCountsByCompany returns, per company, how many distinct
// students hold an assignment with it in the batch.
func (r *AssignmentRepository) DistinctStudentCountsByCompany(ctx context.Context, batchID int64) (map[string]int, error) {
	sql, args, err := r.sb.Select("company_code", "COUNT(DISTINCT student_code)").
		From("assignments").
		Where(squirrel.Eq{"batch_id": batchID}).
		GroupBy("company_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build distinct student counts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("batchID", batchID).Msg("Error querying distinct student counts")
		return nil, fmt.Errorf("error querying distinct student counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var companyCode string
		var count int
		if err := rows.Scan(&companyCode, &count); err != nil {
			return nil, fmt.Errorf("error scanning distinct student count: %w", err)
		}
		counts[companyCode] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating distinct student counts: %w", err)
	}
	return counts, nil
}

// GlobalDistinctStudentCountsByCompany returns, per company, how many distinct
// students hold an assignment with it across all batches.
func (r *AssignmentRepository) GlobalDistinctStudentCountsByCompany(ctx context.Context) (map[string]int, error) {
	sql, args, err := r.sb.Select("company_code", "COUNT(DISTINCT student_code)").
		From("assignments").
		GroupBy("company_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build global distinct student counts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying global distinct student counts")
		return nil, fmt.Errorf("error querying global distinct student counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var companyCode string
		var count int
		if err := rows.Scan(&companyCode, &count); err != nil {
			return nil, fmt.Errorf("error scanning global distinct student count: %w", err)
		}
		counts[companyCode] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating global distinct student counts: %w", err)
	}
	return counts, nil
}

// Update updates mutable assignment fields
func (r *AssignmentRepository) Update(ctx context.Context, a *models.Assignment) error {
	sql, args, err := r.sb.Update("assignments").
		Set("teacher_code", a.TeacherCode).
		Set("position", a.Position).
		Set("start_date", a.StartDate).
		Set("end_date", a.EndDate).
		Set("grade", a.Grade).
		Set("status", a.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update assignment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assignmentID", a.ID).Msg("Error executing update assignment query")
		return fmt.Errorf("error updating assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}

// Delete removes an assignment
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("assignments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete assignment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assignmentID", id).Msg("Error executing delete assignment query")
		return fmt.Errorf("error deleting assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	logger.Info().Int64("assignmentID", id).Msg("Assignment deleted")
	return nil
}

func scanAssignment(row rowScanner) (*models.Assignment, error) {
	var a models.Assignment
	err := row.Scan(
		&a.ID, &a.StudentCode, &a.CompanyCode, &a.BatchID, &a.TeacherCode,
		&a.Position, &a.StartDate, &a.EndDate, &a.Grade, &a.Status,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
