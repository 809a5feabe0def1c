package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/andeantex/facturador/internal/order"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanOrder reads an order row from the scanner.
// Expected column order: id, buyer_id, payment_method_id, total, created_at, updated_at
func scanOrder(s scanner) (*order.Order, error) {
	var o order.Order

	if err := s.Scan(
		&o.ID, &o.BuyerID, &o.PaymentMethodID, &o.Total,
		&o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &o, nil
}

const selectOrderColumns = `
	o.id, o.buyer_id, o.payment_method_id, o.total, o.created_at, o.updated_at
`

func (s *Store) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	query := `SELECT ` + selectOrderColumns + ` FROM orders o WHERE o.id = $1`

	o, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, order.ErrNotFound
		}

		return nil, fmt.Errorf("getting order: %w", err)
	}

	lines, err := s.orderLines(ctx, id)
	if err != nil {
		return nil, err
	}

	o.Lines = lines

	return o, nil
}

func (s *Store) orderLines(ctx context.Context, orderID int64) ([]order.Line, error) {
	query := `
		SELECT l.id, l.product_id, COALESCE(p.name, ''), l.quantity, l.unit_price
		FROM order_lines l
		LEFT JOIN products p ON p.id = l.product_id
		WHERE l.order_id = $1
		ORDER BY l.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing order lines: %w", err)
	}
	defer rows.Close()

	var lines []order.Line

	for rows.Next() {
		var l order.Line
		if err := rows.Scan(&l.ID, &l.ProductID, &l.ProductName, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scanning order line: %w", err)
		}

		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order lines: %w", err)
	}

	return lines, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]*order.Order, error) {
	query := `SELECT ` + selectOrderColumns + ` FROM orders o ORDER BY o.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*order.Order

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

func (s *Store) GetBuyer(ctx context.Context, id int64) (*order.Buyer, error) {
	query := `SELECT id, email, first_name, last_name FROM buyers WHERE id = $1`

	var b order.Buyer

	err := s.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Email, &b.FirstName, &b.LastName)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, order.ErrBuyerNotFound
		}

		return nil, fmt.Errorf("getting buyer: %w", err)
	}

	return &b, nil
}

type checkoutTx struct {
	tx *sql.Tx
}

func (s *Store) BeginCheckout(ctx context.Context) (order.CheckoutTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning checkout tx: %w", err)
	}

	return &checkoutTx{tx: tx}, nil
}

func (c *checkoutTx) Commit() error   { return c.tx.Commit() }
func (c *checkoutTx) Rollback() error { return c.tx.Rollback() }

func (c *checkoutTx) CreateOrder(ctx context.Context, o *order.Order) error {
	query := `
		INSERT INTO orders (buyer_id, payment_method_id, total, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := c.tx.QueryRowContext(ctx, query,
		o.BuyerID,
		o.PaymentMethodID,
		o.Total,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating order: %w", err)
	}

	return nil
}

func (c *checkoutTx) CreateLines(ctx context.Context, orderID int64, lines []order.Line) error {
	query := `
		INSERT INTO order_lines (order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	for i := range lines {
		err := c.tx.QueryRowContext(ctx, query,
			orderID,
			lines[i].ProductID,
			lines[i].Quantity,
			lines[i].UnitPrice,
		).Scan(&lines[i].ID)
		if err != nil {
			return fmt.Errorf("creating order line: %w", err)
		}
	}

	return nil
}

func (c *checkoutTx) CreateVoucher(ctx context.Context, v *order.Voucher) error {
	query := `
		INSERT INTO vouchers (order_id, file_name, operation_ref, status, uploaded_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, uploaded_at
	`

	err := c.tx.QueryRowContext(ctx, query,
		v.OrderID,
		v.FileName,
		v.OperationRef,
		v.Status,
	).Scan(&v.ID, &v.UploadedAt)
	if err != nil {
		return fmt.Errorf("creating voucher: %w", err)
	}

	return nil
}

func (c *checkoutTx) BuyerEmail(ctx context.Context, buyerID int64) (string, error) {
	var email string

	err := c.tx.QueryRowContext(ctx, `SELECT email FROM buyers WHERE id = $1`, buyerID).Scan(&email)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}

		return "", fmt.Errorf("looking up buyer email: %w", err)
	}

	return email, nil
}
