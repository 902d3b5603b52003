package repository

import "github.com/printagehq/printage-api/internal/domain/entity"

// CompanyRepository is the persistence port for Company (DIP).
// The implementation lives in infrastructure. No Delete: companies are
// never removed in the current scope.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
	Update(company *entity.Company) error
	// List returns all companies in creation order.
	List() ([]*entity.Company, error)
}
