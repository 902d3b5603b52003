package repository

import "github.com/printagehq/printage-api/internal/domain/entity"

// OrderFilter narrows an order listing. Zero values mean "no restriction".
// Status and CompanyName are mutually exclusive by construction: a search
// term is either one of the status keywords or a company-name substring.
type OrderFilter struct {
	JobNumber   *float64 // exact match; a fractional value matches no order
	Status      string   // case-insensitive equality
	CompanyName string   // case-insensitive substring
	JobName     string   // case-insensitive substring
}

// OrderRepository is the persistence port for Order (DIP).
type OrderRepository interface {
	// Create persists the order and allocates its job number, writing it
	// back into order.JobNumber.
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// List returns one page of matching orders, newest first, along with
	// the total match count.
	List(filter OrderFilter, limit, offset int) ([]*entity.Order, int, error)
	Update(order *entity.Order) error
	// Delete removes an order and reports whether it existed.
	Delete(id string) (bool, error)
}
