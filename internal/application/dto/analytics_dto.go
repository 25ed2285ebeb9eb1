package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryStatsDTO contadores agregados para o dashboard.
type InventoryStatsDTO struct {
	TotalProducts      int             `json:"total_products"`
	LowStockProducts   int             `json:"low_stock_products"`
	OutOfStockProducts int             `json:"out_of_stock_products"`
	OverstockProducts  int             `json:"overstock_products"`
	TotalValue         decimal.Decimal `json:"total_value"`
	TotalUnits         int64           `json:"total_units"`
	RecentMovements    int             `json:"recent_movements"`
}

// CategoryValuationDTO valor imobilizado por categoria.
type CategoryValuationDTO struct {
	Category     string          `json:"category"`
	TotalValue   decimal.Decimal `json:"total_value"`
	TotalUnits   int64           `json:"total_units"`
	ProductCount int             `json:"product_count"`
}

// SupplierValuationDTO valor imobilizado por fornecedor.
type SupplierValuationDTO struct {
	SupplierID   string          `json:"supplier_id,omitempty"`
	SupplierName string          `json:"supplier_name"`
	TotalValue   decimal.Decimal `json:"total_value"`
	TotalUnits   int64           `json:"total_units"`
	ProductCount int             `json:"product_count"`
}

// InventoryValuationDTO valuation completa: total + agrupamentos.
type InventoryValuationDTO struct {
	TotalValue   decimal.Decimal        `json:"total_value"`
	TotalUnits   int64                  `json:"total_units"`
	ProductCount int                    `json:"product_count"`
	ByCategory   []CategoryValuationDTO `json:"by_category"`
	BySupplier   []SupplierValuationDTO `json:"by_supplier"`
}

// TurnoverDTO giro de estoque de um produto no período consultado.
type TurnoverDTO struct {
	ProductID     string          `json:"product_id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	CurrentStock  int64           `json:"current_stock"`
	TotalIn       int64           `json:"total_in"`
	TotalOut      int64           `json:"total_out"`
	AverageStock  decimal.Decimal `json:"average_stock"`
	TurnoverRatio decimal.Decimal `json:"turnover_ratio"` // total_out / average_stock; 0 quando média <= 0
}

// SlowMovingDTO produto com estoque parado desde a data de corte.
type SlowMovingDTO struct {
	ProductID    string          `json:"product_id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Stock        int64           `json:"stock"`
	StockValue   decimal.Decimal `json:"stock_value"`
	LastMovement *time.Time      `json:"last_movement,omitempty"`
}

// FastMovingDTO produto com maior volume de saída na janela recente.
type FastMovingDTO struct {
	ProductID     string          `json:"product_id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Stock         int64           `json:"stock"`
	StockValue    decimal.Decimal `json:"stock_value"`
	TotalOut      int64           `json:"total_out"`
	MovementCount int             `json:"movement_count"`
}

// ReportPeriodDTO intervalo coberto pelo relatório (datas opcionais).
type ReportPeriodDTO struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// StockReportDTO relatório consolidado de estoque. Apenas dados; a
// renderização (PDF, planilha) fica na camada de relatórios externa.
type StockReportDTO struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Period      ReportPeriodDTO        `json:"period"`
	Summary     InventoryStatsDTO      `json:"summary"`
	ByCategory  []CategoryValuationDTO `json:"value_by_category"`
	BySupplier  []SupplierValuationDTO `json:"value_by_supplier"`
	Alerts      []StockAlertDTO        `json:"alerts"`
	Movements   []MovementDTO          `json:"movements,omitempty"` // só com período informado
	Turnover    []TurnoverDTO          `json:"turnover,omitempty"`  // idem
}
