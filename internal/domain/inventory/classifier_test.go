package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/seu-usuario/estoque-api/internal/domain/inventory"
)

func maxOf(v int64) *int64 { return &v }

// Limites de classificação: cada fronteira cai do lado especificado.
func TestClassify_Fronteiras(t *testing.T) {
	cases := []struct {
		name     string
		stock    int64
		minStock int64
		maxStock *int64
		want     inventory.Status
	}{
		{"estoque zero", 0, 5, maxOf(50), inventory.StatusOutOfStock},
		{"estoque negativo", -1, 5, maxOf(50), inventory.StatusOutOfStock},
		{"exatamente no mínimo", 5, 5, maxOf(50), inventory.StatusLowStock},
		{"abaixo do mínimo", 3, 5, maxOf(50), inventory.StatusLowStock},
		{"exatamente no máximo", 50, 5, maxOf(50), inventory.StatusOverstock},
		{"acima do máximo", 80, 5, maxOf(50), inventory.StatusOverstock},
		{"faixa normal", 25, 5, maxOf(50), inventory.StatusNormal},
		{"sem máximo definido nunca é overstock", 1000, 5, nil, inventory.StatusNormal},
		{"mínimo zero com estoque positivo", 1, 0, nil, inventory.StatusNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.Classify(tc.stock, tc.minStock, tc.maxStock))
		})
	}
}

// out_of_stock tem precedência sobre low_stock mesmo com mínimo zero.
func TestClassify_ZeroComMinimoZero(t *testing.T) {
	assert.Equal(t, inventory.StatusOutOfStock, inventory.Classify(0, 0, nil))
}

func TestStockValue(t *testing.T) {
	price := decimal.RequireFromString("12.50")
	assert.True(t, inventory.StockValue(4, price).Equal(decimal.RequireFromString("50.00")))
	assert.True(t, inventory.StockValue(0, price).IsZero())
}

func TestShortageEExcess(t *testing.T) {
	assert.Equal(t, int64(3), inventory.Shortage(2, 5))
	assert.Equal(t, int64(0), inventory.Shortage(7, 5), "sem falta quando acima do mínimo")

	assert.Equal(t, int64(30), inventory.Excess(80, maxOf(50)))
	assert.Equal(t, int64(0), inventory.Excess(40, maxOf(50)))
	assert.Equal(t, int64(0), inventory.Excess(9999, nil), "sem máximo não há excesso")
}
