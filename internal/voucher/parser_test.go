package voucher_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andeantex/facturador/internal/voucher"
)

func TestParseLines_Structured(t *testing.T) {
	raw := `[
		{"ProductoId": 121, "NombreProducto": "Casaca de cuero", "Cantidad": 2, "PrecioUnitario": 118.00},
		{"ProductoId": 7, "NombreProducto": "Polo basico", "Cantidad": 1, "PrecioUnitario": 59.90}
	]`

	lines, format, err := voucher.ParseLines(raw)
	require.NoError(t, err)
	assert.Equal(t, voucher.FormatStructured, format)
	require.Len(t, lines, 2)

	assert.Equal(t, int64(121), lines[0].ProductID)
	assert.Equal(t, "Casaca de cuero", lines[0].ProductName)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("118.00")))

	assert.Equal(t, int64(7), lines[1].ProductID)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestParseLines_Flat(t *testing.T) {
	type testCase struct {
		name      string
		raw       string
		wantID    int64
		wantName  string
		wantQty   int
		wantPrice string
	}

	tests := []testCase{
		{
			name:      "AllFields",
			raw:       "ProductoId121,NombreProductoCASACA DE CUERO,Cantidad1,PrecioUnitario123",
			wantID:    121,
			wantName:  "CASACA DE CUERO",
			wantQty:   1,
			wantPrice: "123",
		},
		{
			name:      "CaseInsensitivePrefixes",
			raw:       "productoid5,CANTIDAD3,preciounitario10.50",
			wantID:    5,
			wantQty:   3,
			wantPrice: "10.50",
		},
		{
			name:      "UnknownTokensIgnored",
			raw:       "ProductoId8,ColorRojo,Cantidad2,TallaM,PrecioUnitario45.00",
			wantID:    8,
			wantQty:   2,
			wantPrice: "45.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, format, err := voucher.ParseLines(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, voucher.FormatFlat, format)

			// The flat legacy format always yields exactly one line.
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantID, lines[0].ProductID)
			assert.Equal(t, tt.wantName, lines[0].ProductName)
			assert.Equal(t, tt.wantQty, lines[0].Quantity)
			assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString(tt.wantPrice)))
		})
	}
}

func TestParseLines_Invalid(t *testing.T) {
	type testCase struct {
		name    string
		raw     string
		wantErr error
	}

	tests := []testCase{
		{name: "Empty", raw: "", wantErr: voucher.ErrEmptyLines},
		{name: "Whitespace", raw: "   \n", wantErr: voucher.ErrEmptyLines},
		{name: "EmptyJSONArray", raw: "[]", wantErr: voucher.ErrEmptyLines},
		{name: "JSONNull", raw: "null", wantErr: voucher.ErrEmptyLines},
		{name: "Garbage", raw: "not a payload at all", wantErr: voucher.ErrInvalidLines},
		{name: "NoKnownPrefix", raw: "ColorRojo,TallaM", wantErr: voucher.ErrInvalidLines},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, _, err := voucher.ParseLines(tt.raw)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "Detalles")
			assert.Nil(t, lines)
		})
	}
}

func TestArtifactStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := voucher.NewArtifactStore(dir)

	name, err := store.Save("pago-yape.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "voucher-"))
	assert.Equal(t, ".jpg", filepath.Ext(name))

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestArtifactStore_Save_UniqueNames(t *testing.T) {
	store := voucher.NewArtifactStore(t.TempDir())

	first, err := store.Save("a.png", strings.NewReader("one"))
	require.NoError(t, err)

	second, err := store.Save("a.png", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
