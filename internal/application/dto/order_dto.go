package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest input for a new job order. The job number is never
// client-supplied; the allocator assigns it.
type CreateOrderRequest struct {
	JobType     string          `json:"jobType"`
	CompanyName string          `json:"companyName"`
	JobName     string          `json:"jobName"`
	JobQuantity string          `json:"jobQuantity"`
	Size        string          `json:"size"`
	Rate        decimal.Decimal `json:"rate"`

	PapersAndColorsOfPapers       string `json:"papersAndColorsOfPapers"`
	QuantityAndSizeToRunOnMachine string `json:"quantityAndSizeToRunOnMachine"`
	ColorOfInk                    string `json:"colorOfInk"`
	Numbering                     string `json:"numbering"`
	Punching                      string `json:"punching"`
	Perforation                   string `json:"perforation"`
	Lamination                    string `json:"lamination"`
	FixedCopy                     string `json:"fixedCopy"`
	TypeOfBinding                 string `json:"typeOfBinding"`
	SpecialNote                   string `json:"specialNote"`

	Status string `json:"status" validate:"omitempty,oneof=Pending Completed"`
}

// UpdateOrderRequest partial patch for an order. Nil fields are left
// untouched.
type UpdateOrderRequest struct {
	JobType     *string          `json:"jobType"`
	CompanyName *string          `json:"companyName"`
	JobName     *string          `json:"jobName"`
	JobQuantity *string          `json:"jobQuantity"`
	Size        *string          `json:"size"`
	Rate        *decimal.Decimal `json:"rate"`

	PapersAndColorsOfPapers       *string `json:"papersAndColorsOfPapers"`
	QuantityAndSizeToRunOnMachine *string `json:"quantityAndSizeToRunOnMachine"`
	ColorOfInk                    *string `json:"colorOfInk"`
	Numbering                     *string `json:"numbering"`
	Punching                      *string `json:"punching"`
	Perforation                   *string `json:"perforation"`
	Lamination                    *string `json:"lamination"`
	FixedCopy                     *string `json:"fixedCopy"`
	TypeOfBinding                 *string `json:"typeOfBinding"`
	SpecialNote                   *string `json:"specialNote"`

	Status *string `json:"status" validate:"omitempty,oneof=Pending Completed"`
}

// OrderResponse full order in responses.
type OrderResponse struct {
	ID          string          `json:"id"`
	JobNumber   int             `json:"jobNumber"`
	JobType     string          `json:"jobType"`
	CompanyName string          `json:"companyName"`
	JobName     string          `json:"jobName"`
	JobQuantity string          `json:"jobQuantity"`
	Size        string          `json:"size"`
	Rate        decimal.Decimal `json:"rate"`

	PapersAndColorsOfPapers       string `json:"papersAndColorsOfPapers"`
	QuantityAndSizeToRunOnMachine string `json:"quantityAndSizeToRunOnMachine"`
	ColorOfInk                    string `json:"colorOfInk"`
	Numbering                     string `json:"numbering"`
	Punching                      string `json:"punching"`
	Perforation                   string `json:"perforation"`
	Lamination                    string `json:"lamination"`
	FixedCopy                     string `json:"fixedCopy"`
	TypeOfBinding                 string `json:"typeOfBinding"`
	SpecialNote                   string `json:"specialNote"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderListResponse one page of orders plus pagination metadata.
type OrderListResponse struct {
	Orders      []OrderResponse `json:"orders"`
	TotalOrders int             `json:"totalOrders"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

// CreateOrderResponse confirmation for a created order.
type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

// CopyOrderResponse confirmation for a copied order.
type CopyOrderResponse struct {
	Message    string `json:"message"`
	NewOrderID string `json:"newOrderId"`
}

// UpdateOrderResponse confirmation plus the updated order.
type UpdateOrderResponse struct {
	Message      string        `json:"message"`
	UpdatedOrder OrderResponse `json:"updatedOrder"`
}
