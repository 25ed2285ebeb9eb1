package inventory

import "github.com/shopspring/decimal"

// Status derivado do estoque atual frente aos limiares do produto.
type Status string

const (
	StatusOutOfStock Status = "out_of_stock"
	StatusLowStock   Status = "low_stock"
	StatusOverstock  Status = "overstock"
	StatusNormal     Status = "normal"
)

// Classify deriva o status de estoque a partir da quantidade atual e dos
// limiares (serviço de domínio, função pura). Regras, nesta ordem:
// estoque <= 0 → out_of_stock; estoque <= mínimo → low_stock;
// máximo presente e estoque >= máximo → overstock; senão normal.
func Classify(stock, minStock int64, maxStock *int64) Status {
	switch {
	case stock <= 0:
		return StatusOutOfStock
	case stock <= minStock:
		return StatusLowStock
	case maxStock != nil && stock >= *maxStock:
		return StatusOverstock
	default:
		return StatusNormal
	}
}

// StockValue calcula o valor imobilizado: estoque * preço unitário.
func StockValue(stock int64, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(stock))
}

// Shortage devolve quantas unidades faltam para atingir o mínimo
// (zero quando o estoque já cobre o mínimo).
func Shortage(stock, minStock int64) int64 {
	if d := minStock - stock; d > 0 {
		return d
	}
	return 0
}

// Excess devolve quantas unidades excedem o máximo (zero sem máximo
// definido ou quando dentro do limite).
func Excess(stock int64, maxStock *int64) int64 {
	if maxStock == nil {
		return 0
	}
	if d := stock - *maxStock; d > 0 {
		return d
	}
	return 0
}
