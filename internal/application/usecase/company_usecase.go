package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/printagehq/printage-api/internal/application/dto"
	"github.com/printagehq/printage-api/internal/domain"
	"github.com/printagehq/printage-api/internal/domain/entity"
	"github.com/printagehq/printage-api/internal/domain/repository"
)

// CompanyUseCase business rules for client companies.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case with the persistence port.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List returns all companies in creation order.
func (uc *CompanyUseCase) List() ([]dto.CompanyResponse, error) {
	companies, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, toCompanyResponse(c))
	}
	return out, nil
}

// Create registers a new company. The name is unique.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.CompanyName == "" {
		return nil, domain.Invalid("Company name is required")
	}
	existing, err := uc.repo.GetByName(in.CompanyName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("Company already exists")
	}
	company := &entity.Company{
		ID:          uuid.New().String(),
		CompanyName: in.CompanyName,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	resp := toCompanyResponse(company)
	return &resp, nil
}

// Update renames a company.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.CompanyName == "" {
		return nil, domain.Invalid("Company name is required")
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFound("Company not found")
	}
	company.CompanyName = in.CompanyName
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	resp := toCompanyResponse(company)
	return &resp, nil
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		CreatedAt:   c.CreatedAt,
	}
}
