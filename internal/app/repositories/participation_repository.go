package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minhvu/internhub/internal/pkg/logger"
)

// ParticipationRepository persists the batch membership links. Link inserts
// rely on ON CONFLICT DO NOTHING so that re-imports never duplicate rows.
type ParticipationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewParticipationRepository creates a new ParticipationRepository
func NewParticipationRepository(db *pgxpool.Pool) *ParticipationRepository {
	return &ParticipationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// LinkStudent inserts a student-batch link if it does not already exist.
// Returns true when a new row was actually inserted.
func (r *ParticipationRepository) LinkStudent(ctx context.Context, batchID int64, studentCode string) (bool, error) {
	sql, args, err := r.sb.Insert("batch_students").
		Columns("batch_id", "student_code").
		Values(batchID, studentCode).
		Suffix("ON CONFLICT (batch_id, student_code) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build link student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("batchID", batchID).Str("studentCode", studentCode).
			Msg("Error linking student to batch")
		return false, fmt.Errorf("error linking student to batch: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// LinkTeacher inserts a teacher-batch link if it does not already exist
func (r *ParticipationRepository) LinkTeacher(ctx context.Context, batchID int64, teacherCode string) (bool, error) {
	sql, args, err := r.sb.Insert("batch_teachers").
		Columns("batch_id", "teacher_code").
		Values(batchID, teacherCode).
		Suffix("ON CONFLICT (batch_id, teacher_code) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build link teacher query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("batchID", batchID).Str("teacherCode", teacherCode).
			Msg("Error linking teacher to batch")
		return false, fmt.Errorf("error linking teacher to batch: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// LinkCompany inserts a company-batch link if it does not already exist.
// New links start with a zero student count; recalculation fills it in.
func (r *ParticipationRepository) LinkCompany(ctx context.Context, batchID int64, companyCode string) (bool, error) {
	sql, args, err := r.sb.Insert("batch_companies").
		Columns("batch_id", "company_code", "student_count").
		Values(batchID, companyCode, 0).
		Suffix("ON CONFLICT (batch_id, company_code) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build link company query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("batchID", batchID).Str("companyCode", companyCode).
			Msg("Error linking company to batch")
		return false, fmt.Errorf("error linking company to batch: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountStudents counts student links for a batch
func (r *ParticipationRepository) CountStudents(ctx context.Context, batchID int64) (int, error) {
	return r.countLinks(ctx, "batch_students", batchID)
}

// CountTeachers counts teacher links for a batch
func (r *ParticipationRepository) CountTeachers(ctx context.Context, batchID int64) (int, error) {
	return r.countLinks(ctx, "batch_teachers", batchID)
}

// CountCompanies counts company links for a batch
func (r *ParticipationRepository) CountCompanies(ctx context.Context, batchID int64) (int, error) {
	return r.countLinks(ctx, "batch_companies", batchID)
}

func (r *ParticipationRepository) countLinks(ctx context.Context, table string, batchID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"batch_id": batchID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query for %s: %w", table, err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("batchID", batchID).Str("table", table).
			Msg("Error counting participation links")
		return 0, fmt.Errorf("error counting %s links: %w", table, err)
	}
	return count, nil
}

// ListStudentCodes returns the codes of all students linked to a batch
func (r *ParticipationRepository) ListStudentCodes(ctx context.Context, batchID int64) ([]string, error) {
	return r.listCodes(ctx, "batch_students", "student_code", batchID)
}

// ListTeacherCodes returns the codes of all teachers linked to a batch
func (r *ParticipationRepository) ListTeacherCodes(ctx context.Context, batchID int64) ([]string, error) {
	return r.listCodes(ctx, "batch_teachers", "teacher_code", batchID)
}

// ListCompanyCodes returns the codes of all companies linked to a batch
func (r *ParticipationRepository) ListCompanyCodes(ctx context.Context, batchID int64) ([]string, error) {
	return r.listCodes(ctx, "batch_companies", "company_code", batchID)
}

func (r *ParticipationRepository) listCodes(ctx context.Context, table, column string, batchID int64) ([]string, error) {
	sql, args, err := r.sb.Select(column).
		From(table).
		Where(squirrel.Eq{"batch_id": batchID}).
		OrderBy(column).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list codes query for %s: %w", table, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("batchID", batchID).Str("table", table).
			Msg("Error listing participation codes")
		return nil, fmt.Errorf("error listing %s codes: %w", table, err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("error scanning code: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating codes: %w", err)
	}
	return codes, nil
}

// ReplaceCompanyStudentCounts zeroes every per-company count for the batch and
// then writes the supplied counts, inside one transaction so a concurrent
// reader never sees a partially updated set.
func (r *ParticipationRepository) ReplaceCompanyStudentCounts(ctx context.Context, batchID int64, counts map[string]int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting count replacement transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	zeroSQL, zeroArgs, err := r.sb.Update("batch_companies").
		Set("student_count", 0).
		Where(squirrel.Eq{"batch_id": batchID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build zero counts query: %w", err)
	}
	if _, err := tx.Exec(ctx, zeroSQL, zeroArgs...); err != nil {
		logger.Error().Err(err).Int64("batchID", batchID).Msg("Error zeroing company student counts")
		return fmt.Errorf("error zeroing company student counts: %w", err)
	}

	for companyCode, count := range counts {
		setSQL, setArgs, err := r.sb.Update("batch_companies").
			Set("student_count", count).
			Where(squirrel.Eq{"batch_id": batchID, "company_code": companyCode}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build set count query: %w", err)
		}
		if _, err := tx.Exec(ctx, setSQL, setArgs...); err != nil {
			logger.Error().Err(err).Int64("batchID", batchID).Str("companyCode", companyCode).
				Msg("Error setting company student count")
			return fmt.Errorf("error setting company student count: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing count replacement: %w", err)
	}

	logger.Info().Int64("batchID", batchID).Int("companies", len(counts)).
		Msg("Company student counts replaced")
	return nil
}
