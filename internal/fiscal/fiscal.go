// Package fiscal emits legally valid tax documents for orders through the
// external fiscal-authority gateway and records them in the ledger.
package fiscal

import (
	"errors"
	"fmt"
	"time"
)

// Kind is the fiscal document kind, using the gateway's own codes.
type Kind int

const (
	KindInvoice Kind = 1 // factura, issued to companies (RUC)
	KindReceipt Kind = 2 // boleta, issued to natural persons (DNI)
)

func (k Kind) Valid() bool {
	return k == KindInvoice || k == KindReceipt
}

var (
	ErrUnknownKind     = errors.New("document kind must be 1 (invoice) or 2 (receipt)")
	ErrMissingCompany  = errors.New("invoice requires RUC and business name")
	ErrMissingCustomer = errors.New("receipt requires customer first and last names")
	ErrNoSeries        = errors.New("no series configured for document kind")
	ErrNoLines         = errors.New("order has no lines to invoice")
	ErrAlreadyEmitted  = errors.New("order already has a fiscal document")
	ErrNumberTaken     = errors.New("fiscal document number already in use")
	ErrNoPaymentConfig = errors.New("payment configuration not found")
)

// Document is the authoritative tax document tied to exactly one order.
// (Kind, Series, Number) is globally unique; numbers within a series are
// strictly increasing and never reused.
type Document struct {
	ID        int64
	OrderID   int64
	Kind      Kind
	Series    string
	Number    int
	PDFLink   string
	Hash      string
	QRPayload string
	IssuedAt  time.Time
}

// PaymentConfig is the merchant's receivable-account singleton, exposed
// read-only to buyers.
type PaymentConfig struct {
	AccountNumber string
	CCI           string
	AccountActive bool
	QRImage       string
}

// GatewayError is a non-success response from the fiscal gateway. The raw
// upstream body is preserved so callers can tell a local defect from a
// document the authority rejected.
type GatewayError struct {
	Status int
	Body   string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("fiscal gateway returned status %d: %s", e.Status, e.Body)
}
