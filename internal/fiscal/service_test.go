package fiscal

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/andeantex/facturador/internal/order"
)

func testConfig() Config {
	return Config{
		SeriesInvoice: "FFF1",
		SeriesReceipt: "BBB1",
		TaxPercent:    decimal.NewFromInt(18),
	}
}

func orderFixture() *order.Order {
	return &order.Order{
		ID:      7,
		BuyerID: 3,
		Lines: []order.Line{
			{ProductID: 1, ProductName: "Polo de algodon", Quantity: 2, UnitPrice: decimal.RequireFromString("118.00")},
		},
	}
}

func receiptParams() EmitParams {
	return EmitParams{
		OrderID:     7,
		Kind:        KindReceipt,
		CustomerDNI: "45678912",
		FirstNames:  "Rosa",
		LastNames:   "Quispe",
	}
}

func expectClaim(ctrl *gomock.Controller, repo *MockRepository, orderID int64) {
	claim := NewMockEmissionClaim(ctrl)
	repo.EXPECT().ClaimEmission(gomock.Any(), orderID).Return(claim, nil)
	claim.EXPECT().Release()
}

func TestServiceEmit(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := NewMockRepository(ctrl)
	gateway := NewMockGateway(ctrl)
	orders := NewMockOrders(ctrl)
	email := NewMockEmailSender(ctrl)

	svc := NewService(repo, gateway, orders, email, testConfig(), nil)

	ctx := context.Background()

	orders.EXPECT().Get(ctx, int64(7)).Return(orderFixture(), nil)
	expectClaim(ctrl, repo, 7)
	repo.EXPECT().DocumentByOrder(ctx, int64(7)).Return(nil, nil)
	repo.EXPECT().AllocateNumber(ctx, KindReceipt).Return(15, nil)

	gateway.EXPECT().Emit(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req EmitRequest) (*GatewayResult, error) {
		assert.Equal(t, KindReceipt, req.Kind)
		assert.Equal(t, "BBB1", req.Series)
		assert.Equal(t, 15, req.Number)
		assert.Equal(t, 1, req.CustomerDocType)
		assert.Equal(t, "45678912", req.CustomerDocNumber)
		assert.Equal(t, "Rosa Quispe", req.CustomerName)
		assert.True(t, req.Taxable.Equal(decimal.RequireFromString("200.00")), "taxable %s", req.Taxable)
		assert.True(t, req.Tax.Equal(decimal.RequireFromString("36.00")), "tax %s", req.Tax)
		assert.True(t, req.Total.Equal(decimal.RequireFromString("236.00")), "total %s", req.Total)
		require.Len(t, req.Items, 1)
		assert.Equal(t, "Polo de algodon", req.Items[0].Description)

		return &GatewayResult{PDFLink: "https://cdn.example/doc.pdf", Hash: "abc123", QRPayload: "qr"}, nil
	})

	repo.EXPECT().SaveDocument(ctx, gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, doc *Document, total decimal.Decimal) error {
		assert.Equal(t, int64(7), doc.OrderID)
		assert.Equal(t, KindReceipt, doc.Kind)
		assert.Equal(t, "BBB1", doc.Series)
		assert.Equal(t, 15, doc.Number)
		assert.Equal(t, "https://cdn.example/doc.pdf", doc.PDFLink)
		assert.True(t, total.Equal(decimal.RequireFromString("236.00")))

		return nil
	})

	orders.EXPECT().Buyer(ctx, int64(3)).Return(&order.Buyer{ID: 3, Email: "rosa@example.com", FirstName: "Rosa", LastName: "Quispe"}, nil)
	email.EXPECT().DocumentIssued(ctx, "rosa@example.com", "Rosa Quispe", gomock.Any(), int64(7), "https://cdn.example/doc.pdf").Return(nil)

	result, err := svc.Emit(ctx, receiptParams())
	require.NoError(t, err)

	assert.Equal(t, "BBB1", result.Series)
	assert.Equal(t, 15, result.Number)
	assert.Equal(t, "https://cdn.example/doc.pdf", result.PDFLink)
	assert.Equal(t, "abc123", result.Hash)
	assert.Equal(t, "qr", result.QRPayload)
}

func TestServiceEmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		params  EmitParams
		wantErr error
	}{
		{
			name:    "missing order id",
			params:  EmitParams{Kind: KindReceipt, CustomerDNI: "1", FirstNames: "A", LastNames: "B"},
			wantErr: order.ErrNotFound,
		},
		{
			name:    "unknown kind",
			params:  EmitParams{OrderID: 7, Kind: Kind(9)},
			wantErr: ErrUnknownKind,
		},
		{
			name:    "invoice without ruc",
			params:  EmitParams{OrderID: 7, Kind: KindInvoice, BusinessName: "Textiles SA"},
			wantErr: ErrMissingCompany,
		},
		{
			name:    "invoice without business name",
			params:  EmitParams{OrderID: 7, Kind: KindInvoice, RUC: "20123456789"},
			wantErr: ErrMissingCompany,
		},
		{
			name:    "receipt without names",
			params:  EmitParams{OrderID: 7, Kind: KindReceipt, CustomerDNI: "45678912", FirstNames: "  "},
			wantErr: ErrMissingCustomer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewService(NewMockRepository(ctrl), NewMockGateway(ctrl), NewMockOrders(ctrl), nil, testConfig(), nil)

			_, err := svc.Emit(context.Background(), tt.params)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServiceEmitOrderNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := NewMockRepository(ctrl)
	orders := NewMockOrders(ctrl)
	svc := NewService(repo, NewMockGateway(ctrl), orders, nil, testConfig(), nil)

	ctx := context.Background()
	orders.EXPECT().Get(ctx, int64(7)).Return(nil, order.ErrNotFound)

	_, err := svc.Emit(ctx, receiptParams())
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestServiceEmitAlreadyEmitted(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := NewMockRepository(ctrl)
	orders := NewMockOrders(ctrl)
	svc := NewService(repo, NewMockGateway(ctrl), orders, nil, testConfig(), nil)

	ctx := context.Background()
	orders.EXPECT().Get(ctx, int64(7)).Return(orderFixture(), nil)
	expectClaim(ctrl, repo, 7)
	repo.EXPECT().DocumentByOrder(ctx, int64(7)).Return(&Document{Series: "BBB1", Number: 4}, nil)

	_, err := svc.Emit(ctx, receiptParams())
	require.ErrorIs(t, err, ErrAlreadyEmitted)
	assert.Contains(t, err.Error(), "BBB1-4")
}

func TestServiceEmitForcedNumberTaken(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := NewMockRepository(ctrl)
	orders := NewMockOrders(ctrl)
	gateway := NewMockGateway(ctrl)
	svc := NewService(repo, gateway, orders, nil, testConfig(), nil)

	ctx := context.Background()
	params := receiptParams()
	params.ForcedNumber = 9

	orders.EXPECT().Get(ctx, int64(7)).Return(orderFixture(), nil)
	expectClaim(ctrl, repo, 7)
	repo.EXPECT().DocumentByOrder(ctx, int64(7)).Return(nil, nil)
	repo.EXPECT().NumberInUse(ctx, KindReceipt, "BBB1", 9).Return(true, nil)

	_, err := svc.Emit(ctx, params)
	require.ErrorIs(t, err, ErrNumberTaken)
	assert.Contains(t, err.Error(), "BBB1-9")
}

func TestServiceEmitGatewayFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := NewMockRepository(ctrl)
	orders := NewMockOrders(ctrl)
	gateway := NewMockGateway(ctrl)
	svc := NewService(repo, gateway, orders, nil, testConfig(), nil)

	ctx := context.Background()
	orders.EXPECT().Get(ctx, int64(7)).Return(orderFixture(), nil)
	expectClaim(ctrl, repo, 7)
	repo.EXPECT().DocumentByOrder(ctx, int64(7)).Return(nil, nil)
	repo.EXPECT().AllocateNumber(ctx, KindReceipt).Return(16, nil)
	gateway.EXPECT().Emit(ctx, gomock.Any()).Return(nil, &GatewayError{Status: 500, Body: `{"error":"invalid series"}`})

	// SaveDocument must never be called on gateway failure; the mock would
	// report an unexpected call if it were.

	_, err := svc.Emit(ctx, receiptParams())
	require.Error(t, err)

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, 500, gwErr.Status)
	assert.Equal(t, `{"error":"invalid series"}`, gwErr.Body)
}

func TestServiceEmitEmptyOrder(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := NewMockRepository(ctrl)
	orders := NewMockOrders(ctrl)
	svc := NewService(repo, NewMockGateway(ctrl), orders, nil, testConfig(), nil)

	ctx := context.Background()
	orders.EXPECT().Get(ctx, int64(7)).Return(&order.Order{ID: 7, BuyerID: 3}, nil)

	_, err := svc.Emit(ctx, receiptParams())
	require.ErrorIs(t, err, ErrNoLines)
}

func TestServiceEmitEmailFailureDoesNotFailEmission(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := NewMockRepository(ctrl)
	orders := NewMockOrders(ctrl)
	gateway := NewMockGateway(ctrl)
	email := NewMockEmailSender(ctrl)
	svc := NewService(repo, gateway, orders, email, testConfig(), nil)

	ctx := context.Background()
	orders.EXPECT().Get(ctx, int64(7)).Return(orderFixture(), nil)
	expectClaim(ctrl, repo, 7)
	repo.EXPECT().DocumentByOrder(ctx, int64(7)).Return(nil, nil)
	repo.EXPECT().AllocateNumber(ctx, KindReceipt).Return(17, nil)
	gateway.EXPECT().Emit(ctx, gomock.Any()).Return(&GatewayResult{}, nil)
	repo.EXPECT().SaveDocument(ctx, gomock.Any(), gomock.Any()).Return(nil)
	orders.EXPECT().Buyer(ctx, int64(3)).Return(&order.Buyer{ID: 3, Email: "rosa@example.com"}, nil)
	email.EXPECT().DocumentIssued(ctx, "rosa@example.com", "Cliente", gomock.Any(), int64(7), "").Return(errors.New("smtp down"))

	result, err := svc.Emit(ctx, receiptParams())
	require.NoError(t, err)
	assert.Equal(t, 17, result.Number)
}

// countingRepo mirrors the store's concurrency contract in memory: numbers
// come from a counter like the SQL upsert, and ClaimEmission hands out a
// per-order mutex like the advisory lock. That lets concurrent emissions be
// checked for gaps, duplicates and double dispatch without a database.
type countingRepo struct {
	mu     sync.Mutex
	last   int
	seen   map[int]bool
	claims map[int64]*sync.Mutex
	docs   map[int64]*Document
}

func newCountingRepo() *countingRepo {
	return &countingRepo{
		seen:   make(map[int]bool),
		claims: make(map[int64]*sync.Mutex),
		docs:   make(map[int64]*Document),
	}
}

func (r *countingRepo) AllocateNumber(_ context.Context, _ Kind) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last++
	return r.last, nil
}

func (r *countingRepo) NumberInUse(_ context.Context, _ Kind, _ string, _ int) (bool, error) {
	return false, nil
}

type claimFunc func()

func (f claimFunc) Release() { f() }

func (r *countingRepo) ClaimEmission(_ context.Context, orderID int64) (EmissionClaim, error) {
	r.mu.Lock()
	m, ok := r.claims[orderID]
	if !ok {
		m = &sync.Mutex{}
		r.claims[orderID] = m
	}
	r.mu.Unlock()

	m.Lock()

	return claimFunc(m.Unlock), nil
}

func (r *countingRepo) DocumentByOrder(_ context.Context, orderID int64) (*Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.docs[orderID], nil
}

func (r *countingRepo) SaveDocument(_ context.Context, doc *Document, _ decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seen[doc.Number] {
		return fmt.Errorf("%w: %s-%d", ErrNumberTaken, doc.Series, doc.Number)
	}
	r.seen[doc.Number] = true
	r.docs[doc.OrderID] = doc
	return nil
}

func (r *countingRepo) PaymentConfig(_ context.Context) (*PaymentConfig, error) {
	return nil, ErrNoPaymentConfig
}

type staticOrders struct{}

func (staticOrders) Get(_ context.Context, id int64) (*order.Order, error) {
	o := orderFixture()
	o.ID = id
	return o, nil
}

func (staticOrders) Buyer(_ context.Context, id int64) (*order.Buyer, error) {
	return &order.Buyer{ID: id}, nil
}

type staticGateway struct{}

func (staticGateway) Emit(_ context.Context, _ EmitRequest) (*GatewayResult, error) {
	return &GatewayResult{}, nil
}

// countingGateway records every dispatch and holds each call open briefly so
// overlapping attempts would be caught in flight together.
type countingGateway struct {
	calls atomic.Int64
}

func (g *countingGateway) Emit(_ context.Context, _ EmitRequest) (*GatewayResult, error) {
	g.calls.Add(1)
	time.Sleep(10 * time.Millisecond)

	return &GatewayResult{}, nil
}

func TestServiceEmitSameOrderDispatchesGatewayOnce(t *testing.T) {
	const attempts = 4

	repo := newCountingRepo()
	gateway := &countingGateway{}
	svc := NewService(repo, gateway, staticOrders{}, nil, testConfig(), nil)

	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, attempts)
	)

	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, errs[i] = svc.Emit(context.Background(), receiptParams())
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), gateway.calls.Load(), "only one attempt may reach the gateway")

	var succeeded, duplicates int
	for i, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrAlreadyEmitted):
			duplicates++
		default:
			t.Fatalf("attempt %d: unexpected error %v", i, err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, duplicates)
}

func TestServiceEmitConcurrentNumbering(t *testing.T) {
	const workers = 20

	repo := newCountingRepo()
	svc := NewService(repo, staticGateway{}, staticOrders{}, nil, testConfig(), nil)

	var wg sync.WaitGroup
	results := make([]int, workers)
	errs := make([]error, workers)

	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			params := receiptParams()
			params.OrderID = int64(i + 1)

			result, err := svc.Emit(context.Background(), params)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = result.Number
		}()
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "worker %d", i)
	}

	sort.Ints(results)
	for i, n := range results {
		assert.Equal(t, i+1, n, "numbers must be contiguous and unique")
	}
}
