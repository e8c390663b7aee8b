package services

import (
	"context"

	"github.com/minhvu/internhub/internal/app/models"
	"github.com/minhvu/internhub/internal/app/models/dto"
	"github.com/minhvu/internhub/internal/app/repositories"
	"github.com/minhvu/internhub/internal/pkg/vntext"
)

// CompanyService handles company reference records
type CompanyService struct {
	companyRepo *repositories.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo *repositories.CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// CreateCompany creates a company record
func (s *CompanyService) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Code:    req.Code,
		Name:    req.Name,
		Address: req.Address,
		Contact: req.Contact,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetCompany retrieves a company by code
func (s *CompanyService) GetCompany(ctx context.Context, code string) (*models.Company, error) {
	return s.companyRepo.GetByCode(ctx, code)
}

// ListCompanies lists companies in table order, optionally filtered by a
// diacritic-insensitive name/code search.
func (s *CompanyService) ListCompanies(ctx context.Context, search string) ([]*models.Company, error) {
	companies, err := s.companyRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return companies, nil
	}

	filtered := make([]*models.Company, 0, len(companies))
	for _, c := range companies {
		if vntext.ContainsNormalized(c.Name, search) || vntext.ContainsNormalized(c.Code, search) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// UpdateCompany applies a partial update to a company
func (s *CompanyService) UpdateCompany(ctx context.Context, code string, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.companyRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Address != "" {
		company.Address = req.Address
	}
	if req.Contact != "" {
		company.Contact = req.Contact
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany removes a company record
func (s *CompanyService) DeleteCompany(ctx context.Context, code string) error {
	return s.companyRepo.Delete(ctx, code)
}
