package fiscal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const (
	operationEmit = "generar_comprobante"
	currencyPEN   = 1
	sunatDefault  = 1
	igvTypeLevied = 1
	unitCodeNIU   = "NIU"

	// The gateway requires an address field; the storefront does not
	// collect one, so the original integration pins the issuing city.
	defaultCustomerAddress = "LIMA"
)

// EmitRequest is one document-emission call to the gateway.
type EmitRequest struct {
	Kind              Kind
	Series            string
	Number            int
	CustomerDocType   int
	CustomerDocNumber string
	CustomerName      string
	IssueDate         time.Time
	TaxPercent        decimal.Decimal
	Taxable           decimal.Decimal
	Tax               decimal.Decimal
	Total             decimal.Decimal
	Items             []EmitItem
}

// EmitItem mirrors the tax calculator's per-line breakdown.
type EmitItem struct {
	Description string
	Quantity    int
	UnitValue   decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// GatewayResult carries the authority-issued artifacts. All three fields are
// optional on the wire; whatever subset arrived is exactly what gets
// persisted.
type GatewayResult struct {
	PDFLink   string
	Hash      string
	QRPayload string
}

// Client talks to the fiscal gateway. It holds its configuration for its
// whole lifetime and is constructed once at startup.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		token:   token,
	}
}

// number marshals a decimal as an unquoted JSON number, which is what the
// gateway schema expects for every monetary field.
type number struct {
	decimal.Decimal
}

func (n number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

type itemPayload struct {
	Unit        string `json:"unidad_de_medida"`
	Description string `json:"descripcion"`
	Quantity    int    `json:"cantidad"`
	UnitValue   number `json:"valor_unitario"`
	UnitPrice   number `json:"precio_unitario"`
	Subtotal    number `json:"subtotal"`
	IGVType     int    `json:"tipo_de_igv"`
	Tax         number `json:"igv"`
	Total       number `json:"total"`
}

type emitPayload struct {
	Operation         string        `json:"operacion"`
	Kind              int           `json:"tipo_de_comprobante"`
	Series            string        `json:"serie"`
	Number            int           `json:"numero"`
	SunatTransaction  int           `json:"sunat_transaction"`
	CustomerDocType   int           `json:"cliente_tipo_de_documento"`
	CustomerDocNumber string        `json:"cliente_numero_de_documento"`
	CustomerName      string        `json:"cliente_denominacion"`
	CustomerAddress   string        `json:"cliente_direccion"`
	IssueDate         string        `json:"fecha_de_emision"`
	Currency          int           `json:"moneda"`
	TaxPercent        number        `json:"porcentaje_de_igv"`
	Taxable           number        `json:"total_gravada"`
	Tax               number        `json:"total_igv"`
	Total             number        `json:"total"`
	Items             []itemPayload `json:"items"`
}

type emitResponse struct {
	PDFLink   string `json:"enlace"`
	Hash      string `json:"codigo_hash"`
	QRPayload string `json:"cadena_para_codigo_qr"`
}

// Emit serializes the document into the gateway schema and sends it as a
// single authenticated request. Success is determined solely by the HTTP
// status; any non-success response becomes a *GatewayError carrying the raw
// body. The client never retries: a retry after a genuine emission risks
// double-billing the buyer, so retry policy belongs to the caller.
func (c *Client) Emit(ctx context.Context, req EmitRequest) (*GatewayResult, error) {
	payload := emitPayload{
		Operation:         operationEmit,
		Kind:              int(req.Kind),
		Series:            req.Series,
		Number:            req.Number,
		SunatTransaction:  sunatDefault,
		CustomerDocType:   req.CustomerDocType,
		CustomerDocNumber: req.CustomerDocNumber,
		CustomerName:      req.CustomerName,
		CustomerAddress:   defaultCustomerAddress,
		IssueDate:         req.IssueDate.Format(time.DateOnly),
		Currency:          currencyPEN,
		TaxPercent:        number{req.TaxPercent},
		Taxable:           number{req.Taxable},
		Tax:               number{req.Tax},
		Total:             number{req.Total},
		Items:             make([]itemPayload, 0, len(req.Items)),
	}

	for _, item := range req.Items {
		payload.Items = append(payload.Items, itemPayload{
			Unit:        unitCodeNIU,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitValue:   number{item.UnitValue},
			UnitPrice:   number{item.UnitPrice},
			Subtotal:    number{item.Subtotal},
			IGVType:     igvTypeLevied,
			Tax:         number{item.Tax},
			Total:       number{item.Total},
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding emission payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Token "+c.token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading gateway response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &GatewayError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var parsed emitResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		// The document may have been emitted; surface the raw body so an
		// operator can reconcile instead of blindly retrying.
		return nil, &GatewayError{Status: resp.StatusCode, Body: string(respBody)}
	}

	return &GatewayResult{
		PDFLink:   parsed.PDFLink,
		Hash:      parsed.Hash,
		QRPayload: parsed.QRPayload,
	}, nil
}
