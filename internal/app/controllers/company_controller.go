package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhvu/internhub/internal/app/models/dto"
	"github.com/minhvu/internhub/internal/app/services"
	"github.com/minhvu/internhub/internal/middleware"
)

// CompanyController handles company reference endpoints
type CompanyController struct {
	companyService *services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService *services.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// CreateCompany godoc
// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.APIResponse{data=models.Company}
// @Failure 409 {object} dto.ErrorResponse
// @Router /companies [post]
func (ct *CompanyController) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	company, err := ct.companyService.CreateCompany(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(company, "Company created"))
}

// GetCompany godoc
// @Summary Get a company
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param code path string true "Company code"
// @Success 200 {object} dto.APIResponse{data=models.Company}
// @Failure 404 {object} dto.ErrorResponse
// @Router /companies/{code} [get]
func (ct *CompanyController) GetCompany(c *gin.Context) {
	company, err := ct.companyService.GetCompany(c.Request.Context(), c.Param("code"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(company, "Company retrieved"))
}

// ListCompanies godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by name or code"
// @Success 200 {object} dto.APIResponse{data=[]models.Company}
// @Router /companies [get]
func (ct *CompanyController) ListCompanies(c *gin.Context) {
	companies, err := ct.companyService.ListCompanies(c.Request.Context(), c.Query("search"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(companies, "Companies retrieved"))
}

// UpdateCompany godoc
// @Summary Update a company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Company code"
// @Param request body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Company}
// @Failure 404 {object} dto.ErrorResponse
// @Router /companies/{code} [put]
func (ct *CompanyController) UpdateCompany(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	company, err := ct.companyService.UpdateCompany(c.Request.Context(), c.Param("code"), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(company, "Company updated"))
}

// DeleteCompany godoc
// @Summary Delete a company
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param code path string true "Company code"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /companies/{code} [delete]
func (ct *CompanyController) DeleteCompany(c *gin.Context) {
	if err := ct.companyService.DeleteCompany(c.Request.Context(), c.Param("code")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Company deleted"))
}
