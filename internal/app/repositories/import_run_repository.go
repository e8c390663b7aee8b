package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minhvu/internhub/internal/app/models"
	"github.com/minhvu/internhub/internal/pkg/logger"
)

// ImportRunRepository records roster import invocations
type ImportRunRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewImportRunRepository creates a new ImportRunRepository
func NewImportRunRepository(db *pgxpool.Pool) *ImportRunRepository {
	return &ImportRunRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new import run record
func (r *ImportRunRepository) Create(ctx context.Context, run *models.ImportRun) error {
	sql, args, err := r.sb.Insert("import_runs").
		Columns("batch_id", "file_name", "imported", "errors", "count_source").
		Values(run.BatchID, run.FileName, run.Imported, run.Errors, run.CountSource).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create import run query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("batchID", run.BatchID).Msg("Error recording import run")
		return fmt.Errorf("error recording import run: %w", err)
	}
	return nil
}

// ListByBatch retrieves the import history of a batch, newest first
func (r *ImportRunRepository) ListByBatch(ctx context.Context, batchID int64) ([]*models.ImportRun, error) {
	sql, args, err := r.sb.Select("id", "batch_id", "file_name", "imported", "errors", "count_source", "created_at").
		From("import_runs").
		Where(squirrel.Eq{"batch_id": batchID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list import runs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("batchID", batchID).Msg("Error executing list import runs query")
		return nil, fmt.Errorf("error querying import runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.ImportRun
	for rows.Next() {
		var run models.ImportRun
		err := rows.Scan(&run.ID, &run.BatchID, &run.FileName, &run.Imported,
			&run.Errors, &run.CountSource, &run.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning import run: %w", err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating import runs: %w", err)
	}
	return runs, nil
}
