package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/printagehq/printage-api/internal/domain"
	"github.com/printagehq/printage-api/internal/domain/entity"
	"github.com/printagehq/printage-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements the CompanyRepository port on PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository builds the company persistence adapter.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persists a new company.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `INSERT INTO companies (id, company_name, created_at) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.CompanyName, company.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "companies_company_name_key") {
			return domain.Duplicate("Company already exists")
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID fetches a company by ID, nil when missing.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByName fetches a company by name, nil when missing.
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	return r.getOne(`WHERE company_name = $1`, name)
}

func (r *CompanyRepo) getOne(where string, arg any) (*entity.Company, error) {
	query := `SELECT id, company_name, created_at FROM companies ` + where
	var c entity.Company
	err := r.pool.QueryRow(context.Background(), query, arg).
		Scan(&c.ID, &c.CompanyName, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update renames a company.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `UPDATE companies SET company_name = $2 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, company.ID, company.CompanyName)
	if err != nil {
		if isUniqueViolation(err, "companies_company_name_key") {
			return domain.Duplicate("Company already exists")
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List returns all companies in creation order.
func (r *CompanyRepo) List() ([]*entity.Company, error) {
	query := `SELECT id, company_name, created_at FROM companies ORDER BY created_at ASC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
