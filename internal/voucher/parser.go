// Package voucher handles buyer-submitted payment proofs: the order-line
// payload that accompanies them and the durable storage of the uploaded
// artifact.
package voucher

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/andeantex/facturador/internal/order"
)

// Format tags which wire format a Detalles payload arrived in.
type Format int

const (
	FormatStructured Format = iota + 1 // JSON array of line objects
	FormatFlat                         // legacy flat key-value token string
)

var (
	ErrEmptyLines   = errors.New(`"Detalles" must not be empty`)
	ErrInvalidLines = errors.New(`"Detalles" is neither valid JSON nor the flat legacy format`)
)

type lineDTO struct {
	ProductID   int64           `json:"ProductoId"`
	ProductName string          `json:"NombreProducto"`
	Quantity    int             `json:"Cantidad"`
	UnitPrice   decimal.Decimal `json:"PrecioUnitario"`
}

// ParseLines decodes an order-lines payload. Structured JSON is tried first;
// on failure the legacy flat format is attempted. The result is tagged with
// the format that matched so callers never select a code path by catching a
// decode failure themselves.
func ParseLines(raw string) ([]order.LineParams, Format, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, 0, ErrEmptyLines
	}

	var dtos []lineDTO
	if err := json.Unmarshal([]byte(raw), &dtos); err == nil {
		if len(dtos) == 0 {
			return nil, 0, ErrEmptyLines
		}

		return toParams(dtos), FormatStructured, nil
	}

	dto, ok := parseFlat(raw)
	if !ok {
		return nil, 0, ErrInvalidLines
	}

	return toParams([]lineDTO{dto}), FormatFlat, nil
}

// parseFlat decodes the legacy storefront format, a single comma-separated
// token string such as:
//
//	ProductoId121,NombreProductoCASACA DE CUERO,Cantidad1,PrecioUnitario118.00
//
// Field-name prefixes match case-insensitively and unknown tokens are
// ignored. The format carries exactly one line item per order; multi-line
// orders must use the structured JSON format.
func parseFlat(input string) (lineDTO, bool) {
	var (
		dto     lineDTO
		matched bool
	)

	for part := range strings.SplitSeq(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		switch {
		case hasFold(part, "ProductoId"):
			if id, err := strconv.ParseInt(part[len("ProductoId"):], 10, 64); err == nil {
				dto.ProductID = id
				matched = true
			}
		case hasFold(part, "NombreProducto"):
			dto.ProductName = part[len("NombreProducto"):]
			matched = true
		case hasFold(part, "Cantidad"):
			if qty, err := strconv.Atoi(part[len("Cantidad"):]); err == nil {
				dto.Quantity = qty
				matched = true
			}
		case hasFold(part, "PrecioUnitario"):
			if price, err := decimal.NewFromString(part[len("PrecioUnitario"):]); err == nil {
				dto.UnitPrice = price
				matched = true
			}
		}
	}

	return dto, matched
}

func hasFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func toParams(dtos []lineDTO) []order.LineParams {
	params := make([]order.LineParams, len(dtos))
	for i, dto := range dtos {
		params[i] = order.LineParams{
			ProductID:   dto.ProductID,
			ProductName: dto.ProductName,
			Quantity:    dto.Quantity,
			UnitPrice:   dto.UnitPrice,
		}
	}

	return params
}
