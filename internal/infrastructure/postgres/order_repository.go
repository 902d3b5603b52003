package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/printagehq/printage-api/internal/domain/entity"
	"github.com/printagehq/printage-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// Concurrent creates can collide on the job number; the unique constraint
// rejects the loser and the insert is retried with a fresh allocation.
const allocatorRetries = 3

// OrderRepo implements the OrderRepository port on PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository builds the order persistence adapter.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `
	id, job_number, job_type, company_name, job_name, job_quantity, size, rate,
	papers_and_colors_of_papers, quantity_and_size_to_run_on_machine,
	color_of_ink, numbering, punching, perforation, lamination, fixed_copy,
	type_of_binding, special_note, status, created_at, updated_at`

// Create persists the order, allocating its job number as max+1 with a
// floor of 4001 under the orders_job_number_key unique constraint.
func (r *OrderRepo) Create(order *entity.Order) error {
	ctx := context.Background()
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

	var err error
	for attempt := 0; attempt < allocatorRetries; attempt++ {
		var maxAllocated int
		if err = r.pool.QueryRow(ctx,
			`SELECT COALESCE(MAX(job_number), 0) FROM orders`).Scan(&maxAllocated); err != nil {
			return fmt.Errorf("read max job number: %w", err)
		}
		order.JobNumber = entity.NextJobNumber(maxAllocated)

		_, err = r.pool.Exec(ctx, query,
			order.ID, order.JobNumber, order.JobType, order.CompanyName,
			order.JobName, order.JobQuantity, order.Size, order.Rate,
			order.PapersAndColorsOfPapers, order.QuantityAndSizeToRunOnMachine,
			order.ColorOfInk, order.Numbering, order.Punching, order.Perforation,
			order.Lamination, order.FixedCopy, order.TypeOfBinding,
			order.SpecialNote, order.Status, order.CreatedAt, order.UpdatedAt,
		)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err, "orders_job_number_key") {
			return fmt.Errorf("insert order: %w", err)
		}
		// Lost the race for this number; allocate again.
	}
	return fmt.Errorf("allocate job number: %w", err)
}

// GetByID fetches one order, nil when missing.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	row := r.pool.QueryRow(context.Background(), query, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// List returns one page of matching orders, newest first, plus the total
// match count.
func (r *OrderRepo) List(filter repository.OrderFilter, limit, offset int) ([]*entity.Order, int, error) {
	ctx := context.Background()
	where, args := buildOrderWhere(filter)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM orders%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		orderColumns, where, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, total, rows.Err()
}

func buildOrderWhere(f repository.OrderFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.JobNumber != nil {
		add(`job_number = $%d`, *f.JobNumber)
	}
	if f.Status != "" {
		add(`LOWER(status) = LOWER($%d)`, f.Status)
	}
	if f.CompanyName != "" {
		add(`company_name ILIKE $%d`, "%"+escapeLike(f.CompanyName)+"%")
	}
	if f.JobName != "" {
		add(`job_name ILIKE $%d`, "%"+escapeLike(f.JobName)+"%")
	}
	if len(conds) == 0 {
		return "", nil
	}
	where := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		where += " AND " + c
	}
	return where, args
}

// Update rewrites every mutable column.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET
			job_type = $2, company_name = $3, job_name = $4, job_quantity = $5,
			size = $6, rate = $7, papers_and_colors_of_papers = $8,
			quantity_and_size_to_run_on_machine = $9, color_of_ink = $10,
			numbering = $11, punching = $12, perforation = $13, lamination = $14,
			fixed_copy = $15, type_of_binding = $16, special_note = $17,
			status = $18, updated_at = $19
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		order.ID, order.JobType, order.CompanyName, order.JobName,
		order.JobQuantity, order.Size, order.Rate,
		order.PapersAndColorsOfPapers, order.QuantityAndSizeToRunOnMachine,
		order.ColorOfInk, order.Numbering, order.Punching, order.Perforation,
		order.Lamination, order.FixedCopy, order.TypeOfBinding,
		order.SpecialNote, order.Status, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete removes an order by ID and reports whether a row was deleted.
func (r *OrderRepo) Delete(id string) (bool, error) {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.JobNumber, &o.JobType, &o.CompanyName, &o.JobName,
		&o.JobQuantity, &o.Size, &o.Rate,
		&o.PapersAndColorsOfPapers, &o.QuantityAndSizeToRunOnMachine,
		&o.ColorOfInk, &o.Numbering, &o.Punching, &o.Perforation,
		&o.Lamination, &o.FixedCopy, &o.TypeOfBinding, &o.SpecialNote,
		&o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// escapeLike escapes the ILIKE wildcard characters in a user-supplied term.
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
