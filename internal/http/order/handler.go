package order

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"

	"github.com/andeantex/facturador/internal/order"
	"github.com/andeantex/facturador/internal/voucher"
)

type Handler struct {
	svc       *order.Service
	artifacts *voucher.ArtifactStore
}

func NewHandler(svc *order.Service, artifacts *voucher.ArtifactStore) *Handler {
	return &Handler{svc: svc, artifacts: artifacts}
}

func (h *Handler) Routes(r chi.Router) {
	r.With(middleware.AllowContentType("application/json")).Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.With(middleware.AllowContentType("multipart/form-data")).Post("/voucher", h.checkoutWithVoucher)
}

type lineRequest struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type createOrderRequest struct {
	BuyerID         int64           `json:"buyer_id"`
	PaymentMethodID int             `json:"payment_method_id"`
	Total           decimal.Decimal `json:"total"`
	Lines           []lineRequest   `json:"lines"`
}

type lineResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type orderResponse struct {
	ID              int64           `json:"id"`
	BuyerID         int64           `json:"buyer_id"`
	PaymentMethodID int             `json:"payment_method_id"`
	Total           decimal.Decimal `json:"total"`
	Lines           []lineResponse  `json:"lines"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ord, err := h.svc.Create(r.Context(), order.CreateParams{
		BuyerID:         req.BuyerID,
		PaymentMethodID: req.PaymentMethodID,
		Total:           req.Total,
		Lines:           toLineParams(req.Lines),
	})
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, toResponse(ord))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, ord := range orders {
		resp = append(resp, toResponse(ord))
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	ord, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, toResponse(ord))
}

type checkoutResponse struct {
	Order      orderResponse `json:"order"`
	BuyerEmail string        `json:"buyer_email"`
	Message    string        `json:"message"`
}

// checkoutWithVoucher accepts the storefront's multipart checkout form. The
// field names are the contract the existing frontend already sends.
func (h *Handler) checkoutWithVoucher(w http.ResponseWriter, r *http.Request) {
	// Bound the whole body, with headroom for the non-file fields, before
	// anything gets spooled to disk.
	r.Body = http.MaxBytesReader(w, r.Body, voucher.MaxArtifactSize+512*1024)

	if err := r.ParseMultipartForm(voucher.MaxArtifactSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "Voucher file exceeds the 5 MiB limit")
			return
		}

		respondError(w, http.StatusBadRequest, "failed to parse form: "+err.Error())
		return
	}

	buyerID, err := strconv.ParseInt(r.FormValue("UserId"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "UserId must be a number")
		return
	}

	total, err := decimal.NewFromString(r.FormValue("Total"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Total must be a number")
		return
	}

	lines, _, err := voucher.ParseLines(r.FormValue("Detalles"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, header, err := r.FormFile("Voucher")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Voucher file is required")
		return
	}
	defer file.Close()

	if header.Size > voucher.MaxArtifactSize {
		respondError(w, http.StatusBadRequest, "Voucher file exceeds the 5 MiB limit")
		return
	}

	saved, err := h.artifacts.Save(header.Filename, file)
	if err != nil {
		slog.Error("failed to store voucher artifact", "error", err)
		respondError(w, http.StatusInternalServerError, "could not store voucher file")
		return
	}

	result, err := h.svc.CheckoutWithVoucher(r.Context(), order.CheckoutParams{
		BuyerID:       buyerID,
		DeclaredTotal: total,
		OperationRef:  r.FormValue("NumeroOperacion"),
		VoucherFile:   saved,
		Lines:         lines,
	})
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, checkoutResponse{
		Order:      toResponse(result.Order),
		BuyerEmail: result.BuyerEmail,
		Message:    "Pedido registrado, tu voucher sera verificado",
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, order.ErrNotFound), errors.Is(err, order.ErrBuyerNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidBuyer),
		errors.Is(err, order.ErrInvalidTotal),
		errors.Is(err, order.ErrNoLines),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidPrice),
		errors.Is(err, order.ErrMissingVoucher):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func toLineParams(lines []lineRequest) []order.LineParams {
	params := make([]order.LineParams, 0, len(lines))
	for _, l := range lines {
		params = append(params, order.LineParams{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	return params
}

func toResponse(ord *order.Order) orderResponse {
	lines := make([]lineResponse, 0, len(ord.Lines))
	for _, l := range ord.Lines {
		lines = append(lines, lineResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	return orderResponse{
		ID:              ord.ID,
		BuyerID:         ord.BuyerID,
		PaymentMethodID: ord.PaymentMethodID,
		Total:           ord.Total,
		Lines:           lines,
		CreatedAt:       ord.CreatedAt,
	}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
