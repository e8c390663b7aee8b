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

const batchColumns = "id, name, start_date, end_date, status, student_count, teacher_count, company_count, created_at, updated_at"

// BatchRepository handles internship batch operations
type BatchRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBatchRepository creates a new BatchRepository
func NewBatchRepository(db *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new batch
func (r *BatchRepository) Create(ctx context.Context, batch *models.Batch) error {
	sql, args, err := r.sb.Insert("batches").
		Columns("name", "start_date", "end_date", "status").
		Values(batch.Name, batch.StartDate, batch.EndDate, batch.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create batch query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&batch.ID, &batch.CreatedAt, &batch.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "batches_name_key") {
			return apperrors.ErrBatchAlreadyExists
		}
		logger.Error().Err(err).Str("name", batch.Name).Msg("Error executing create batch query")
		return fmt.Errorf("error creating batch: %w", err)
	}

	logger.Info().Int64("batchID", batch.ID).Str("name", batch.Name).Msg("Batch created")
	return nil
}

// GetByID retrieves a batch by ID
func (r *BatchRepository) GetByID(ctx context.Context, id int64) (*models.Batch, error) {
	sql, args, err := r.sb.Select(batchColumns).
		From("batches").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get batch query: %w", err)
	}

	var batch models.Batch
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&batch.ID, &batch.Name, &batch.StartDate, &batch.EndDate, &batch.Status,
		&batch.StudentCount, &batch.TeacherCount, &batch.CompanyCount,
		&batch.CreatedAt, &batch.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBatchNotFound
		}
		logger.Error().Err(err).Int64("batchID", id).Msg("Error scanning batch row")
		return nil, fmt.Errorf("error retrieving batch: %w", err)
	}
	return &batch, nil
}

// List retrieves batches, optionally filtered by status, newest first
func (r *BatchRepository) List(ctx context.Context, status string) ([]*models.Batch, error) {
	base := r.sb.Select(batchColumns).From("batches")
	if status != "" {
		base = base.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := base.OrderBy("start_date DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list batches query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list batches query")
		return nil, fmt.Errorf("error querying batches: %w", err)
	}
	defer rows.Close()

	var batches []*models.Batch
	for rows.Next() {
		var batch models.Batch
		err := rows.Scan(
			&batch.ID, &batch.Name, &batch.StartDate, &batch.EndDate, &batch.Status,
			&batch.StudentCount, &batch.TeacherCount, &batch.CompanyCount,
			&batch.CreatedAt, &batch.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning batch: %w", err)
		}
		batches = append(batches, &batch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating batches: %w", err)
	}
	return batches, nil
}

// Update updates mutable batch fields
func (r *BatchRepository) Update(ctx context.Context, batch *models.Batch) error {
	sql, args, err := r.sb.Update("batches").
		Set("name", batch.Name).
		Set("start_date", batch.StartDate).
		Set("end_date", batch.EndDate).
		Set("status", batch.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": batch.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update batch query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("batchID", batch.ID).Msg("Error executing update batch query")
		return fmt.Errorf("error updating batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBatchNotFound
	}
	return nil
}

// UpdateParticipantCounts writes the cached batch-level counts
func (r *BatchRepository) UpdateParticipantCounts(ctx context.Context, batchID int64, students, teachers, companies int) error {
	sql, args, err := r.sb.Update("batches").
		Set("student_count", students).
		Set("teacher_count", teachers).
		Set("company_count", companies).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": batchID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update batch counts query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("batchID", batchID).Msg("Error updating batch participant counts")
		return fmt.Errorf("error updating batch counts: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBatchNotFound
	}

	logger.Info().Int64("batchID", batchID).
		Int("students", students).Int("teachers", teachers).Int("companies", companies).
		Msg("Batch participant counts updated")
	return nil
}

// Delete removes a batch; participation links go with it by cascade
func (r *BatchRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("batches").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete batch query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("batchID", id).Msg("Error executing delete batch query")
		return fmt.Errorf("error deleting batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBatchNotFound
	}
	logger.Info().Int64("batchID", id).Msg("Batch deleted")
	return nil
}
