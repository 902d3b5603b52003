package usecase

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/printagehq/printage-api/internal/application/dto"
	"github.com/printagehq/printage-api/internal/domain"
	"github.com/printagehq/printage-api/internal/domain/entity"
	"github.com/printagehq/printage-api/internal/domain/repository"
)

// Listing defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 15
)

// OrderUseCase business rules for job orders.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase builds the use case with the persistence port.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// ListParams raw query values as received from the transport.
type ListParams struct {
	Page      string
	Limit     string
	Search    string
	JobNumber string
	JobName   string
}

// ParsePage returns (page, limit) with defaults applied for absent or
// non-numeric values.
func ParsePage(page, limit string) (int, int) {
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		p = DefaultPage
	}
	l, err := strconv.Atoi(limit)
	if err != nil || l < 1 {
		l = DefaultLimit
	}
	return p, l
}

// BuildFilter classifies the raw search inputs. A jobNumber param filters
// whenever it parses as a number; a fractional value keeps the exact-match
// filter active and matches nothing. A search term equal to a status
// keyword filters status; anything else is a company-name substring.
func BuildFilter(jobNumber, search, jobName string) repository.OrderFilter {
	var f repository.OrderFilter
	if s := strings.TrimSpace(jobNumber); s != "" {
		if n, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
			f.JobNumber = &n
		}
	}
	if search != "" {
		switch strings.ToLower(search) {
		case "pending":
			f.Status = entity.StatusPending
		case "completed":
			f.Status = entity.StatusCompleted
		default:
			f.CompanyName = search
		}
	}
	f.JobName = jobName
	return f
}

// List returns one page of orders, newest first, with pagination metadata.
func (uc *OrderUseCase) List(params ListParams) (*dto.OrderListResponse, error) {
	page, limit := ParsePage(params.Page, params.Limit)
	filter := BuildFilter(params.JobNumber, params.Search, params.JobName)

	orders, total, err := uc.repo.List(filter, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Orders:      items,
		TotalOrders: total,
		TotalPages:  (total + limit - 1) / limit,
		CurrentPage: page,
	}, nil
}

// GetByID fetches one order.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFound("Order not found")
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

// Create persists a new order; the repository allocates its job number.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*entity.Order, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusPending
	}
	if !entity.ValidStatus(status) {
		return nil, domain.Invalid("Invalid order status")
	}
	now := time.Now()
	order := &entity.Order{
		ID:          uuid.New().String(),
		JobType:     in.JobType,
		CompanyName: in.CompanyName,
		JobName:     in.JobName,
		JobQuantity: in.JobQuantity,
		Size:        in.Size,
		Rate:        in.Rate,

		PapersAndColorsOfPapers:       in.PapersAndColorsOfPapers,
		QuantityAndSizeToRunOnMachine: in.QuantityAndSizeToRunOnMachine,
		ColorOfInk:                    in.ColorOfInk,
		Numbering:                     in.Numbering,
		Punching:                      in.Punching,
		Perforation:                   in.Perforation,
		Lamination:                    in.Lamination,
		FixedCopy:                     in.FixedCopy,
		TypeOfBinding:                 in.TypeOfBinding,
		SpecialNote:                   in.SpecialNote,

		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Copy clones every specification field of the source order into a new one
// with a fresh identity, fresh timestamps and a freshly allocated job
// number.
func (uc *OrderUseCase) Copy(sourceID string) (*entity.Order, error) {
	source, err := uc.repo.GetByID(sourceID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, domain.NotFound("Order not found")
	}
	now := time.Now()
	clone := *source
	clone.ID = uuid.New().String()
	clone.JobNumber = 0 // reallocated on insert
	clone.CreatedAt = now
	clone.UpdatedAt = now
	if err := uc.repo.Create(&clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

// Update applies a partial patch: nil fields keep their stored value.
func (uc *OrderUseCase) Update(id string, patch dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFound("Order not found")
	}
	if patch.Status != nil && !entity.ValidStatus(*patch.Status) {
		return nil, domain.Invalid("Invalid order status")
	}
	applyOrderPatch(order, patch)
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

// Delete removes an order.
func (uc *OrderUseCase) Delete(id string) error {
	deleted, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFound("Order not found")
	}
	return nil
}

func applyOrderPatch(o *entity.Order, p dto.UpdateOrderRequest) {
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&o.JobType, p.JobType)
	setStr(&o.CompanyName, p.CompanyName)
	setStr(&o.JobName, p.JobName)
	setStr(&o.JobQuantity, p.JobQuantity)
	setStr(&o.Size, p.Size)
	if p.Rate != nil {
		o.Rate = *p.Rate
	}
	setStr(&o.PapersAndColorsOfPapers, p.PapersAndColorsOfPapers)
	setStr(&o.QuantityAndSizeToRunOnMachine, p.QuantityAndSizeToRunOnMachine)
	setStr(&o.ColorOfInk, p.ColorOfInk)
	setStr(&o.Numbering, p.Numbering)
	setStr(&o.Punching, p.Punching)
	setStr(&o.Perforation, p.Perforation)
	setStr(&o.Lamination, p.Lamination)
	setStr(&o.FixedCopy, p.FixedCopy)
	setStr(&o.TypeOfBinding, p.TypeOfBinding)
	setStr(&o.SpecialNote, p.SpecialNote)
	setStr(&o.Status, p.Status)
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          o.ID,
		JobNumber:   o.JobNumber,
		JobType:     o.JobType,
		CompanyName: o.CompanyName,
		JobName:     o.JobName,
		JobQuantity: o.JobQuantity,
		Size:        o.Size,
		Rate:        o.Rate,

		PapersAndColorsOfPapers:       o.PapersAndColorsOfPapers,
		QuantityAndSizeToRunOnMachine: o.QuantityAndSizeToRunOnMachine,
		ColorOfInk:                    o.ColorOfInk,
		Numbering:                     o.Numbering,
		Punching:                      o.Punching,
		Perforation:                   o.Perforation,
		Lamination:                    o.Lamination,
		FixedCopy:                     o.FixedCopy,
		TypeOfBinding:                 o.TypeOfBinding,
		SpecialNote:                   o.SpecialNote,

		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
