package fiscaldoc

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andeantex/facturador/internal/fiscal"
	"github.com/andeantex/facturador/internal/order"
)

type Handler struct {
	svc *fiscal.Service
}

func NewHandler(svc *fiscal.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/emit", h.emit)
	r.Get("/payment-config", h.paymentConfig)
}

type emitRequest struct {
	OrderID      int64  `json:"order_id"`
	Kind         int    `json:"kind"`
	ForcedNumber int    `json:"forced_number,omitempty"`
	CustomerDNI  string `json:"customer_dni,omitempty"`
	FirstNames   string `json:"first_names,omitempty"`
	LastNames    string `json:"last_names,omitempty"`
	RUC          string `json:"ruc,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
}

type emitResponse struct {
	Series    string `json:"series"`
	Number    int    `json:"number"`
	PDFLink   string `json:"pdf_link,omitempty"`
	Hash      string `json:"hash,omitempty"`
	QRPayload string `json:"qr_payload,omitempty"`
}

type gatewayErrorResponse struct {
	Error         string `json:"error"`
	GatewayStatus int    `json:"gateway_status"`
	GatewayBody   string `json:"gateway_body"`
}

func (h *Handler) emit(w http.ResponseWriter, r *http.Request) {
	var req emitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.Emit(r.Context(), fiscal.EmitParams{
		OrderID:      req.OrderID,
		Kind:         fiscal.Kind(req.Kind),
		ForcedNumber: req.ForcedNumber,
		CustomerDNI:  req.CustomerDNI,
		FirstNames:   req.FirstNames,
		LastNames:    req.LastNames,
		RUC:          req.RUC,
		BusinessName: req.BusinessName,
	})
	if err != nil {
		respondEmitError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, emitResponse{
		Series:    result.Series,
		Number:    result.Number,
		PDFLink:   result.PDFLink,
		Hash:      result.Hash,
		QRPayload: result.QRPayload,
	})
}

type paymentConfigResponse struct {
	AccountNumber string `json:"account_number"`
	CCI           string `json:"cci"`
	AccountActive bool   `json:"account_active"`
	QRImage       string `json:"qr_image,omitempty"`
}

func (h *Handler) paymentConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.PaymentConfig(r.Context())
	if err != nil {
		if errors.Is(err, fiscal.ErrNoPaymentConfig) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}

		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, paymentConfigResponse{
		AccountNumber: cfg.AccountNumber,
		CCI:           cfg.CCI,
		AccountActive: cfg.AccountActive,
		QRImage:       cfg.QRImage,
	})
}

// respondEmitError maps the emission workflow's failure classes onto HTTP
// statuses. Gateway rejections become 502 with the gateway's raw body so the
// caller can see exactly what the authority said.
func respondEmitError(w http.ResponseWriter, err error) {
	var gwErr *fiscal.GatewayError
	if errors.As(err, &gwErr) {
		respondJSON(w, http.StatusBadGateway, gatewayErrorResponse{
			Error:         err.Error(),
			GatewayStatus: gwErr.Status,
			GatewayBody:   gwErr.Body,
		})
		return
	}

	switch {
	case errors.Is(err, order.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, fiscal.ErrAlreadyEmitted):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, fiscal.ErrUnknownKind),
		errors.Is(err, fiscal.ErrMissingCompany),
		errors.Is(err, fiscal.ErrMissingCustomer),
		errors.Is(err, fiscal.ErrNoSeries),
		errors.Is(err, fiscal.ErrNoLines),
		errors.Is(err, fiscal.ErrNumberTaken):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
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
