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

const reportColumns = "id, assignment_id, title, file_path, status, submitted_at"

// ReportRepository handles internship report operations
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new report
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	sql, args, err := r.sb.Insert("reports").
		Columns("assignment_id", "title", "file_path", "status").
		Values(report.AssignmentID, report.Title, report.FilePath, report.Status).
		Suffix("RETURNING id, submitted_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create report query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&report.ID, &report.SubmittedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAssignmentNotFound
		}
		logger.Error().Err(err).Int64("assignmentID", report.AssignmentID).
			Msg("Error executing create report query")
		return fmt.Errorf("error creating report: %w", err)
	}

	logger.Info().Int64("reportID", report.ID).Int64("assignmentID", report.AssignmentID).
		Msg("Report created")
	return nil
}

// GetByID retrieves a report by ID
func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	sql, args, err := r.sb.Select(reportColumns).
		From("reports").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get report query: %w", err)
	}

	var report models.Report
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&report.ID, &report.AssignmentID, &report.Title, &report.FilePath,
		&report.Status, &report.SubmittedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReportNotFound
		}
		logger.Error().Err(err).Int64("reportID", id).Msg("Error scanning report row")
		return nil, fmt.Errorf("error retrieving report: %w", err)
	}
	return &report, nil
}

// ListByAssignment retrieves the reports submitted against an assignment
func (r *ReportRepository) ListByAssignment(ctx context.Context, assignmentID int64) ([]*models.Report, error) {
	sql, args, err := r.sb.Select(reportColumns).
		From("reports").
		Where(squirrel.Eq{"assignment_id": assignmentID}).
		OrderBy("submitted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list reports query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("assignmentID", assignmentID).
			Msg("Error executing list reports query")
		return nil, fmt.Errorf("error querying reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.Report
	for rows.Next() {
		var report models.Report
		err := rows.Scan(
			&report.ID, &report.AssignmentID, &report.Title, &report.FilePath,
			&report.Status, &report.SubmittedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning report: %w", err)
		}
		reports = append(reports, &report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}
	return reports, nil
}

// UpdateStatus moves a report through its review lifecycle
func (r *ReportRepository) UpdateStatus(ctx context.Context, id int64, status models.ReportStatus) error {
	sql, args, err := r.sb.Update("reports").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update report status query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("reportID", id).Msg("Error updating report status")
		return fmt.Errorf("error updating report status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReportNotFound
	}
	return nil
}

// Delete removes a report
func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("reports").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete report query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("reportID", id).Msg("Error executing delete report query")
		return fmt.Errorf("error deleting report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReportNotFound
	}
	logger.Info().Int64("reportID", id).Msg("Report deleted")
	return nil
}
