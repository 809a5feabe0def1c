package fiscal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andeantex/facturador/internal/metrics"
	"github.com/andeantex/facturador/internal/order"
	"github.com/andeantex/facturador/internal/tax"
)

// Gateway customer document type codes.
const (
	docTypeRUC = 6
	docTypeDNI = 1
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=fiscal
type Repository interface {
	// AllocateNumber reserves the next number for a kind in its own
	// committed unit of work. A reserved number is consumed even if the
	// emission that follows fails; it is never released for reuse.
	AllocateNumber(ctx context.Context, kind Kind) (int, error)
	NumberInUse(ctx context.Context, kind Kind, series string, number int) (bool, error)
	// ClaimEmission takes an exclusive per-order claim that the caller holds
	// across the whole emission attempt, gateway call included. The claim
	// guarantees one order can never reach the authority twice concurrently.
	ClaimEmission(ctx context.Context, orderID int64) (EmissionClaim, error)
	DocumentByOrder(ctx context.Context, orderID int64) (*Document, error)
	// SaveDocument atomically inserts the document and stamps the order's
	// computed total, serialized per order against concurrent emissions.
	SaveDocument(ctx context.Context, doc *Document, orderTotal decimal.Decimal) error
	PaymentConfig(ctx context.Context) (*PaymentConfig, error)
}

// EmissionClaim is an exclusive hold on one order's emission workflow.
type EmissionClaim interface {
	Release()
}

// Gateway is the external fiscal-authority client.
type Gateway interface {
	Emit(ctx context.Context, req EmitRequest) (*GatewayResult, error)
}

// Orders is the slice of the order service the emitter needs.
type Orders interface {
	Get(ctx context.Context, id int64) (*order.Order, error)
	Buyer(ctx context.Context, id int64) (*order.Buyer, error)
}

// EmailSender notifies the buyer that their document was issued. Failures
// are logged and swallowed.
type EmailSender interface {
	DocumentIssued(ctx context.Context, email, name string, total decimal.Decimal, orderID int64, pdfLink string) error
}

// Config is the per-kind series assignment and tax rate, resolved once at
// startup.
type Config struct {
	SeriesInvoice string
	SeriesReceipt string
	TaxPercent    decimal.Decimal
}

type Service struct {
	repo    Repository
	gateway Gateway
	orders  Orders
	email   EmailSender
	calc    tax.Calculator
	cfg     Config
	metrics *metrics.Emissions
}

func NewService(repo Repository, gateway Gateway, orders Orders, email EmailSender, cfg Config, m *metrics.Emissions) *Service {
	return &Service{
		repo:    repo,
		gateway: gateway,
		orders:  orders,
		email:   email,
		calc:    tax.NewCalculator(cfg.TaxPercent),
		cfg:     cfg,
		metrics: m,
	}
}

type EmitParams struct {
	OrderID      int64
	Kind         Kind
	ForcedNumber int

	// Receipt (boleta) identity.
	CustomerDNI string
	FirstNames  string
	LastNames   string

	// Invoice (factura) identity.
	RUC          string
	BusinessName string
}

type EmitResult struct {
	Series    string
	Number    int
	PDFLink   string
	Hash      string
	QRPayload string
}

// Emit runs the order-emission workflow: validate, claim the order, compute
// the tax breakdown, reserve a document number, call the gateway and persist
// the result. The per-order claim is held from before the existing-document
// check until after the document is saved, so concurrent attempts for the
// same order serialize and the loser fails with ErrAlreadyEmitted instead of
// reaching the authority. The number reservation still commits before the
// gateway call so a slow or failed call never holds the per-kind
// serialization point; a gateway failure leaves the order committed and
// untouched, with no document row, eligible for a later attempt.
// Cancellation is not honored once the gateway call has been dispatched.
func (s *Service) Emit(ctx context.Context, params EmitParams) (*EmitResult, error) {
	if err := s.validate(params); err != nil {
		s.metrics.Rejected()
		return nil, err
	}

	series, err := s.series(params.Kind)
	if err != nil {
		s.metrics.Rejected()
		return nil, err
	}

	ord, err := s.orders.Get(ctx, params.OrderID)
	if err != nil {
		s.metrics.Rejected()
		return nil, err
	}

	if len(ord.Lines) == 0 {
		s.metrics.Rejected()
		return nil, ErrNoLines
	}

	claim, err := s.repo.ClaimEmission(ctx, params.OrderID)
	if err != nil {
		return nil, fmt.Errorf("claiming order for emission: %w", err)
	}
	defer claim.Release()

	if existing, err := s.repo.DocumentByOrder(ctx, params.OrderID); err != nil {
		return nil, fmt.Errorf("checking existing document: %w", err)
	} else if existing != nil {
		s.metrics.Rejected()
		return nil, fmt.Errorf("%w: %s-%d", ErrAlreadyEmitted, existing.Series, existing.Number)
	}

	items := make([]EmitItem, 0, len(ord.Lines))
	lineTotals := make([]decimal.Decimal, 0, len(ord.Lines))

	for _, line := range ord.Lines {
		breakdown := s.calc.Line(line.UnitPrice, line.Quantity)
		items = append(items, EmitItem{
			Description: line.Description(),
			Quantity:    line.Quantity,
			UnitValue:   breakdown.UnitValue,
			UnitPrice:   breakdown.UnitPrice,
			Subtotal:    breakdown.Subtotal,
			Tax:         breakdown.Tax,
			Total:       breakdown.Total,
		})
		lineTotals = append(lineTotals, breakdown.Total)
	}

	totals := s.calc.OrderTotals(lineTotals)

	number, err := s.reserveNumber(ctx, params.Kind, series, params.ForcedNumber)
	if err != nil {
		s.metrics.Rejected()
		return nil, err
	}

	docType, docNumber, name := customerIdentity(params)

	result, err := s.gateway.Emit(ctx, EmitRequest{
		Kind:              params.Kind,
		Series:            series,
		Number:            number,
		CustomerDocType:   docType,
		CustomerDocNumber: docNumber,
		CustomerName:      name,
		IssueDate:         time.Now(),
		TaxPercent:        s.calc.Percent(),
		Taxable:           totals.Taxable,
		Tax:               totals.Tax,
		Total:             totals.Total,
		Items:             items,
	})
	if err != nil {
		s.metrics.GatewayFailure()
		return nil, fmt.Errorf("emitting %s-%d: %w", series, number, err)
	}

	doc := &Document{
		OrderID:   ord.ID,
		Kind:      params.Kind,
		Series:    series,
		Number:    number,
		PDFLink:   result.PDFLink,
		Hash:      result.Hash,
		QRPayload: result.QRPayload,
	}

	if err := s.repo.SaveDocument(ctx, doc, totals.Total); err != nil {
		s.metrics.Failure()
		return nil, fmt.Errorf("saving document %s-%d: %w", series, number, err)
	}

	s.metrics.Success()
	s.notifyIssued(ctx, ord, totals.Total, result.PDFLink)

	return &EmitResult{
		Series:    series,
		Number:    number,
		PDFLink:   result.PDFLink,
		Hash:      result.Hash,
		QRPayload: result.QRPayload,
	}, nil
}

// PaymentConfig returns the merchant receivable-account singleton.
func (s *Service) PaymentConfig(ctx context.Context) (*PaymentConfig, error) {
	return s.repo.PaymentConfig(ctx)
}

func (s *Service) validate(params EmitParams) error {
	if params.OrderID <= 0 {
		return order.ErrNotFound
	}

	switch params.Kind {
	case KindInvoice:
		if strings.TrimSpace(params.RUC) == "" || strings.TrimSpace(params.BusinessName) == "" {
			return ErrMissingCompany
		}
	case KindReceipt:
		if strings.TrimSpace(params.FirstNames) == "" || strings.TrimSpace(params.LastNames) == "" {
			return ErrMissingCustomer
		}
	default:
		return ErrUnknownKind
	}

	return nil
}

func (s *Service) series(kind Kind) (string, error) {
	var series string

	switch kind {
	case KindInvoice:
		series = s.cfg.SeriesInvoice
	case KindReceipt:
		series = s.cfg.SeriesReceipt
	}

	if series == "" {
		return "", fmt.Errorf("%w: kind %d", ErrNoSeries, kind)
	}

	return series, nil
}

// reserveNumber returns the forced number after verifying it is free, or
// allocates the next one for the kind. The allocation commits immediately;
// see Repository.AllocateNumber for the consumed-on-failure policy.
func (s *Service) reserveNumber(ctx context.Context, kind Kind, series string, forced int) (int, error) {
	if forced > 0 {
		taken, err := s.repo.NumberInUse(ctx, kind, series, forced)
		if err != nil {
			return 0, fmt.Errorf("checking forced number: %w", err)
		}

		if taken {
			return 0, fmt.Errorf("%w: %s-%d", ErrNumberTaken, series, forced)
		}

		return forced, nil
	}

	number, err := s.repo.AllocateNumber(ctx, kind)
	if err != nil {
		return 0, fmt.Errorf("allocating number: %w", err)
	}

	return number, nil
}

func (s *Service) notifyIssued(ctx context.Context, ord *order.Order, total decimal.Decimal, pdfLink string) {
	if s.email == nil {
		return
	}

	buyer, err := s.orders.Buyer(ctx, ord.BuyerID)
	if err != nil || buyer.Email == "" {
		return
	}

	name := buyer.Name()
	if name == "" {
		name = "Cliente"
	}

	if err := s.email.DocumentIssued(ctx, buyer.Email, name, total, ord.ID, pdfLink); err != nil {
		slog.Error("failed to send document email", "error", err, "order_id", ord.ID)
	}
}

func customerIdentity(params EmitParams) (docType int, docNumber, name string) {
	if params.Kind == KindInvoice {
		return docTypeRUC, params.RUC, params.BusinessName
	}

	return docTypeDNI, params.CustomerDNI, strings.TrimSpace(params.FirstNames + " " + params.LastNames)
}
