package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest body para POST /api/inventory/adjustments.
// Para entrada/saida, quantity é o delta; para ajuste, o nível absoluto alvo.
type AdjustStockRequest struct {
	ProductID     string `json:"product_id"`
	Type          string `json:"type"` // entrada, saida ou ajuste
	Quantity      int64  `json:"quantity"`
	Reason        string `json:"reason"`
	ReferenceID   string `json:"reference_id,omitempty"`
	ReferenceType string `json:"reference_type,omitempty"` // default: manual
	UserID        string `json:"user_id,omitempty"`
}

// AdjustStockResponse resultado de um ajuste aplicado.
// MovementID fica vazio quando o ajuste foi um no-op (delta zero).
type AdjustStockResponse struct {
	MovementID    string `json:"movement_id,omitempty"`
	ProductID     string `json:"product_id"`
	PreviousStock int64  `json:"previous_stock"`
	NewStock      int64  `json:"new_stock"`
}

// StockCountEntryRequest item de contagem física.
type StockCountEntryRequest struct {
	ProductID       string `json:"product_id"`
	CountedQuantity int64  `json:"counted_quantity"`
}

// StockCountRequest body para POST /api/inventory/stock-count.
type StockCountRequest struct {
	Counts []StockCountEntryRequest `json:"counts"`
	Notes  string                   `json:"notes,omitempty"`
	UserID string                   `json:"user_id,omitempty"`
}

// StockCountAdjustmentDTO resumo de um produto ajustado pela contagem.
type StockCountAdjustmentDTO struct {
	ProductID     string `json:"product_id"`
	ProductCode   string `json:"product_code"`
	ProductName   string `json:"product_name"`
	PreviousStock int64  `json:"previous_stock"`
	CountedStock  int64  `json:"counted_stock"`
	Difference    int64  `json:"difference"` // com sinal: contado - anterior
}

// StockAlertDTO alerta derivado do estado atual de um produto.
type StockAlertDTO struct {
	Type           string `json:"type"`     // out_of_stock, low_stock, overstock
	Severity       string `json:"severity"` // critical, warning, info
	ProductID      string `json:"product_id"`
	ProductCode    string `json:"product_code"`
	ProductName    string `json:"product_name"`
	CurrentStock   int64  `json:"current_stock"`
	MinStock       int64  `json:"min_stock"`
	MaxStock       *int64 `json:"max_stock,omitempty"`
	ExcessQuantity int64  `json:"excess_quantity,omitempty"`
	Message        string `json:"message"`
}

// ProductInventoryDTO produto ativo com status e valor derivados.
type ProductInventoryDTO struct {
	ID               string          `json:"id"`
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	SupplierID       *string         `json:"supplier_id,omitempty"`
	SupplierName     string          `json:"supplier_name,omitempty"`
	Price            decimal.Decimal `json:"price"`
	Stock            int64           `json:"stock"`
	MinStock         int64           `json:"min_stock"`
	MaxStock         *int64          `json:"max_stock,omitempty"`
	StockStatus      string          `json:"stock_status"`
	StockValue       decimal.Decimal `json:"stock_value"`
	ShortageQuantity int64           `json:"shortage_quantity,omitempty"`
	ExcessQuantity   int64           `json:"excess_quantity,omitempty"`
}

// MovementDTO lançamento do ledger para telas de histórico.
type MovementDTO struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ProductCode   string    `json:"product_code"`
	ProductName   string    `json:"product_name"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	PreviousStock int64     `json:"previous_stock"`
	NewStock      int64     `json:"new_stock"`
	Reason        string    `json:"reason"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	ReferenceType string    `json:"reference_type"`
	UserID        string    `json:"user_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
