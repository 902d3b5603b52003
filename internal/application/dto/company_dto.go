package dto

import "time"

// CreateCompanyRequest input for a new client company.
type CreateCompanyRequest struct {
	CompanyName string `json:"companyName" validate:"required,min=1,max=200"`
}

// UpdateCompanyRequest rename input.
type UpdateCompanyRequest struct {
	CompanyName string `json:"companyName" validate:"required,min=1,max=200"`
}

// CompanyResponse a company in responses.
type CompanyResponse struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	CreatedAt   time.Time `json:"createdAt"`
}
