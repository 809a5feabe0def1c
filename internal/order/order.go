package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethodVoucher is the payment method id recorded for orders funded
// by an uploaded payment voucher.
const PaymentMethodVoucher = 1

var (
	ErrNotFound      = errors.New("order not found")
	ErrBuyerNotFound = errors.New("buyer not found")

	ErrInvalidBuyer    = errors.New("buyer id must be positive")
	ErrInvalidTotal    = errors.New("total must be greater than zero")
	ErrNoLines         = errors.New("order must contain at least one line")
	ErrInvalidQuantity = errors.New("line quantity must be positive")
	ErrInvalidPrice    = errors.New("line unit price must not be negative")
	ErrMissingVoucher  = errors.New("voucher file is required")
)

// Order represents one customer purchase. Orders and their lines are created
// once inside a single transaction and are immutable afterwards, except for
// the total stamped when a fiscal document is emitted.
type Order struct {
	ID              int64
	BuyerID         int64
	PaymentMethodID int
	Total           decimal.Decimal
	Lines           []Line
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Line is one product/quantity/price tuple owned by exactly one order.
// UnitPrice is gross (tax inclusive).
type Line struct {
	ID          int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Description returns the line's display name for fiscal documents,
// falling back to the product id when no name is known.
func (l Line) Description() string {
	if l.ProductName != "" {
		return l.ProductName
	}

	return fmt.Sprintf("Producto %d", l.ProductID)
}

// VoucherStatus is the review lifecycle of a payment voucher. This service
// only ever creates vouchers as pending; a back-office reviewer moves them
// to verified or rejected.
type VoucherStatus string

const (
	VoucherPending  VoucherStatus = "pending"
	VoucherVerified VoucherStatus = "verified"
	VoucherRejected VoucherStatus = "rejected"
)

// Voucher is buyer-submitted evidence of payment tied 1:1 to an order.
type Voucher struct {
	ID           int64
	OrderID      int64
	FileName     string
	OperationRef string
	Status       VoucherStatus
	Note         string
	UploadedAt   time.Time
	ReviewedAt   *time.Time
}

// Buyer is the read-only customer record used for notifications.
type Buyer struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
}

func (b Buyer) Name() string {
	return strings.TrimSpace(b.FirstName + " " + b.LastName)
}
