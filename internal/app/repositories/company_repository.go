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

const companyColumns = "id, code, name, address, contact, student_count, created_at"

// CompanyRepository handles company reference-table operations
type CompanyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new company
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	sql, args, err := r.sb.Insert("companies").
		Columns("code", "name", "address", "contact").
		Values(company.Code, company.Name,
			helpers.GetContentNullString(company.Address),
			helpers.GetContentNullString(company.Contact)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create company query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&company.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "companies_code_key") {
			return apperrors.ErrCompanyCodeExists
		}
		logger.Error().Err(err).Str("code", company.Code).Msg("Error executing create company query")
		return fmt.Errorf("error creating company: %w", err)
	}
	return nil
}

// GetByCode retrieves a company by its stable code
func (r *CompanyRepository) GetByCode(ctx context.Context, code string) (*models.Company, error) {
	sql, args, err := r.sb.Select(companyColumns).
		From("companies").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get company query: %w", err)
	}

	company, err := scanCompany(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		logger.Error().Err(err).Str("code", code).Msg("Error scanning company row")
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}
	return company, nil
}

// ListAll returns every company in table order for the fuzzy name resolver
func (r *CompanyRepository) ListAll(ctx context.Context) ([]*models.Company, error) {
	sql, _, err := r.sb.Select(companyColumns).From("companies").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list companies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list companies query")
		return nil, fmt.Errorf("error querying companies: %w", err)
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning company: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companies: %w", err)
	}
	return companies, nil
}

// SetStudentCount writes the derived global student count of a company
func (r *CompanyRepository) SetStudentCount(ctx context.Context, code string, count int) error {
	sql, args, err := r.sb.Update("companies").
		Set("student_count", count).
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set company student count query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("code", code).Msg("Error setting company student count")
		return fmt.Errorf("error setting company student count: %w", err)
	}
	return nil
}

// Update updates mutable fields of a company
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	sql, args, err := r.sb.Update("companies").
		Set("name", company.Name).
		Set("address", helpers.GetContentNullString(company.Address)).
		Set("contact", helpers.GetContentNullString(company.Contact)).
		Where(squirrel.Eq{"code": company.Code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update company query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("code", company.Code).Msg("Error executing update company query")
		return fmt.Errorf("error updating company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}
	return nil
}

// Delete removes a company by code
func (r *CompanyRepository) Delete(ctx context.Context, code string) error {
	sql, args, err := r.sb.Delete("companies").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete company query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("code", code).Msg("Error executing delete company query")
		return fmt.Errorf("error deleting company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}
	return nil
}

func scanCompany(row rowScanner) (*models.Company, error) {
	var (
		company models.Company
		address sql.NullString
		contact sql.NullString
	)
	err := row.Scan(&company.ID, &company.Code, &company.Name,
		&address, &contact, &company.StudentCount, &company.CreatedAt)
	if err != nil {
		return nil, err
	}
	company.Address = address.String
	company.Contact = contact.String
	return &company, nil
}
