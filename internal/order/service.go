package order

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=order
type Repository interface {
	GetOrder(ctx context.Context, id int64) (*Order, error)
	ListOrders(ctx context.Context) ([]*Order, error)
	GetBuyer(ctx context.Context, id int64) (*Buyer, error)

	BeginCheckout(ctx context.Context) (CheckoutTx, error)
}

// CheckoutTx is the single atomic unit of work that creates an order, its
// lines and (optionally) its payment voucher. Nothing is visible to other
// requests until Commit.
type CheckoutTx interface {
	CreateOrder(ctx context.Context, o *Order) error
	CreateLines(ctx context.Context, orderID int64, lines []Line) error
	CreateVoucher(ctx context.Context, v *Voucher) error
	BuyerEmail(ctx context.Context, buyerID int64) (string, error)
	Commit() error
	Rollback() error
}

// EmailSender notifies the buyer that their order was registered. Failures
// are logged and swallowed; they never fail the order.
type EmailSender interface {
	OrderCreated(ctx context.Context, email, name string, total decimal.Decimal, orderID int64) error
}

// PushSender delivers order updates to the buyer's private channel.
type PushSender interface {
	OrderUpdate(ctx context.Context, buyerID, orderID int64, status string) error
}

type Service struct {
	repo  Repository
	email EmailSender
	push  PushSender
}

func NewService(repo Repository, email EmailSender, push PushSender) *Service {
	return &Service{repo: repo, email: email, push: push}
}

type LineParams struct {
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

type CreateParams struct {
	BuyerID         int64
	PaymentMethodID int
	Total           decimal.Decimal
	Lines           []LineParams
}

type CheckoutParams struct {
	BuyerID       int64
	DeclaredTotal decimal.Decimal
	OperationRef  string
	VoucherFile   string
	Lines         []LineParams
}

type CheckoutResult struct {
	Order      *Order
	BuyerEmail string
}

// Create persists an order with its lines in one transaction and notifies
// the buyer by email.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Order, error) {
	if err := validate(params.BuyerID, params.Total, params.Lines); err != nil {
		return nil, err
	}

	paymentMethod := params.PaymentMethodID
	if paymentMethod == 0 {
		paymentMethod = PaymentMethodVoucher
	}

	ord := &Order{
		BuyerID:         params.BuyerID,
		PaymentMethodID: paymentMethod,
		Total:           params.Total,
		Lines:           paramsToLines(params.Lines),
	}

	tx, err := s.repo.BeginCheckout(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin checkout: %w", err)
	}
	defer tx.Rollback()

	if err := tx.CreateOrder(ctx, ord); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := tx.CreateLines(ctx, ord.ID, ord.Lines); err != nil {
		return nil, fmt.Errorf("create lines: %w", err)
	}

	email, err := tx.BuyerEmail(ctx, params.BuyerID)
	if err != nil {
		return nil, fmt.Errorf("look up buyer email: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit checkout: %w", err)
	}

	s.notifyCreated(ctx, ord, email)

	return ord, nil
}

// CheckoutWithVoucher runs the voucher-funded checkout: order, lines and the
// pending voucher are persisted in one transaction. The voucher artifact
// must already be in durable storage; a storage failure therefore aborts
// before any row is written.
func (s *Service) CheckoutWithVoucher(ctx context.Context, params CheckoutParams) (*CheckoutResult, error) {
	if err := validate(params.BuyerID, params.DeclaredTotal, params.Lines); err != nil {
		return nil, err
	}

	if params.VoucherFile == "" {
		return nil, ErrMissingVoucher
	}

	ord := &Order{
		BuyerID:         params.BuyerID,
		PaymentMethodID: PaymentMethodVoucher,
		Total:           params.DeclaredTotal,
		Lines:           paramsToLines(params.Lines),
	}

	tx, err := s.repo.BeginCheckout(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin checkout: %w", err)
	}
	defer tx.Rollback()

	if err := tx.CreateOrder(ctx, ord); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := tx.CreateLines(ctx, ord.ID, ord.Lines); err != nil {
		return nil, fmt.Errorf("create lines: %w", err)
	}

	voucher := &Voucher{
		OrderID:      ord.ID,
		FileName:     params.VoucherFile,
		OperationRef: params.OperationRef,
		Status:       VoucherPending,
	}

	if err := tx.CreateVoucher(ctx, voucher); err != nil {
		return nil, fmt.Errorf("create voucher: %w", err)
	}

	email, err := tx.BuyerEmail(ctx, params.BuyerID)
	if err != nil {
		return nil, fmt.Errorf("look up buyer email: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit checkout: %w", err)
	}

	s.notifyCreated(ctx, ord, email)

	return &CheckoutResult{Order: ord, BuyerEmail: email}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *Service) Buyer(ctx context.Context, id int64) (*Buyer, error) {
	return s.repo.GetBuyer(ctx, id)
}

func (s *Service) notifyCreated(ctx context.Context, ord *Order, email string) {
	if s.email != nil && email != "" {
		name := "Cliente"
		if buyer, err := s.repo.GetBuyer(ctx, ord.BuyerID); err == nil && buyer.Name() != "" {
			name = buyer.Name()
		}

		if err := s.email.OrderCreated(ctx, email, name, ord.Total, ord.ID); err != nil {
			slog.Error("failed to send order email", "error", err, "order_id", ord.ID)
		}
	}

	if s.push != nil {
		if err := s.push.OrderUpdate(ctx, ord.BuyerID, ord.ID, "registered"); err != nil {
			slog.Error("failed to push order update", "error", err, "order_id", ord.ID)
		}
	}
}

func validate(buyerID int64, total decimal.Decimal, lines []LineParams) error {
	if buyerID <= 0 {
		return ErrInvalidBuyer
	}

	if !total.IsPositive() {
		return ErrInvalidTotal
	}

	if len(lines) == 0 {
		return ErrNoLines
	}

	for _, l := range lines {
		if l.Quantity <= 0 {
			return fmt.Errorf("%w: product %d", ErrInvalidQuantity, l.ProductID)
		}

		if l.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: product %d", ErrInvalidPrice, l.ProductID)
		}
	}

	return nil
}

func paramsToLines(params []LineParams) []Line {
	lines := make([]Line, len(params))
	for i, p := range params {
		lines[i] = Line{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice,
		}
	}

	return lines
}
