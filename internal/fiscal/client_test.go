package fiscal

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emitRequestFixture() EmitRequest {
	return EmitRequest{
		Kind:              KindReceipt,
		Series:            "BBB1",
		Number:            42,
		CustomerDocType:   1,
		CustomerDocNumber: "45678912",
		CustomerName:      "Rosa Quispe",
		IssueDate:         time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		TaxPercent:        decimal.NewFromInt(18),
		Taxable:           decimal.RequireFromString("200.00"),
		Tax:               decimal.RequireFromString("36.00"),
		Total:             decimal.RequireFromString("236.00"),
		Items: []EmitItem{
			{
				Description: "Polo de algodon",
				Quantity:    2,
				UnitValue:   decimal.RequireFromString("100.000000"),
				UnitPrice:   decimal.RequireFromString("118.00"),
				Subtotal:    decimal.RequireFromString("200.00"),
				Tax:         decimal.RequireFromString("36.00"),
				Total:       decimal.RequireFromString("236.00"),
			},
		},
	}
}

func TestClientEmit(t *testing.T) {
	var (
		gotAuth string
		gotBody []byte
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"enlace":"https://cdn.example/doc.pdf","codigo_hash":"abc123","cadena_para_codigo_qr":"qr-data"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token")

	result, err := client.Emit(context.Background(), emitRequestFixture())
	require.NoError(t, err)

	assert.Equal(t, "Token secret-token", gotAuth)
	assert.Equal(t, "https://cdn.example/doc.pdf", result.PDFLink)
	assert.Equal(t, "abc123", result.Hash)
	assert.Equal(t, "qr-data", result.QRPayload)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &payload))

	assert.Equal(t, "generar_comprobante", payload["operacion"])
	assert.Equal(t, float64(2), payload["tipo_de_comprobante"])
	assert.Equal(t, "BBB1", payload["serie"])
	assert.Equal(t, float64(42), payload["numero"])
	assert.Equal(t, float64(1), payload["sunat_transaction"])
	assert.Equal(t, float64(1), payload["cliente_tipo_de_documento"])
	assert.Equal(t, "45678912", payload["cliente_numero_de_documento"])
	assert.Equal(t, "Rosa Quispe", payload["cliente_denominacion"])
	assert.Equal(t, "LIMA", payload["cliente_direccion"])
	assert.Equal(t, "2026-03-15", payload["fecha_de_emision"])
	assert.Equal(t, float64(1), payload["moneda"])
	assert.Equal(t, float64(18), payload["porcentaje_de_igv"])
	assert.Equal(t, float64(200), payload["total_gravada"])
	assert.Equal(t, float64(36), payload["total_igv"])
	assert.Equal(t, float64(236), payload["total"])

	// Monetary fields must go over the wire as bare numbers, not strings.
	assert.Contains(t, string(gotBody), `"total_gravada":200`)
	assert.Contains(t, string(gotBody), `"total":236`)

	items, ok := payload["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	item, ok := items[0].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "NIU", item["unidad_de_medida"])
	assert.Equal(t, "Polo de algodon", item["descripcion"])
	assert.Equal(t, float64(2), item["cantidad"])
	assert.Equal(t, float64(100), item["valor_unitario"])
	assert.Equal(t, float64(118), item["precio_unitario"])
	assert.Equal(t, float64(1), item["tipo_de_igv"])
}

func TestClientEmitGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"invalid series"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token")

	result, err := client.Emit(context.Background(), emitRequestFixture())
	require.Error(t, err)
	assert.Nil(t, result)

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusInternalServerError, gwErr.Status)
	assert.Equal(t, `{"error":"invalid series"}`, gwErr.Body)
}

func TestClientEmitMalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway maintenance</html>`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token")

	_, err := client.Emit(context.Background(), emitRequestFixture())

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusOK, gwErr.Status)
	assert.Contains(t, gwErr.Body, "maintenance")
}

func TestClientEmitPartialResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"enlace":"https://cdn.example/doc.pdf"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token")

	result, err := client.Emit(context.Background(), emitRequestFixture())
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example/doc.pdf", result.PDFLink)
	assert.Empty(t, result.Hash)
	assert.Empty(t, result.QRPayload)
}
