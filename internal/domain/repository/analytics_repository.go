package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InventoryValuationResult valor total imobilizado nos produtos ativos.
type InventoryValuationResult struct {
	TotalValue   decimal.Decimal // SUM(stock * price)
	TotalUnits   int64
	ProductCount int
}

// CategoryValuationResult valuation agrupada por categoria.
type CategoryValuationResult struct {
	Category     string
	TotalValue   decimal.Decimal
	TotalUnits   int64
	ProductCount int
}

// SupplierValuationResult valuation agrupada por fornecedor.
// Produtos sem fornecedor entram com SupplierID vazio.
type SupplierValuationResult struct {
	SupplierID   string
	SupplierName string
	TotalValue   decimal.Decimal
	TotalUnits   int64
	ProductCount int
}

// TurnoverResult giro de estoque de um produto no período.
// TotalOut e TotalIn somam as magnitudes dos lançamentos saida/entrada.
type TurnoverResult struct {
	ProductID    string
	Code         string
	Name         string
	CurrentStock int64
	TotalOut     int64
	TotalIn      int64
}

// SlowMovingResult produto ativo com estoque parado: sem lançamento
// desde a data de corte, ou sem lançamento algum.
type SlowMovingResult struct {
	ProductID    string
	Code         string
	Name         string
	Stock        int64
	StockValue   decimal.Decimal
	LastMovement *time.Time // nil = nunca teve movimentação
}

// FastMovingResult produto rankeado por volume de saída na janela recente.
type FastMovingResult struct {
	ProductID     string
	Code          string
	Name          string
	Stock         int64
	StockValue    decimal.Decimal
	TotalOut      int64
	MovementCount int
}

// InventoryStatsResult contadores agregados para o dashboard.
type InventoryStatsResult struct {
	TotalProducts      int
	LowStockProducts   int
	OutOfStockProducts int
	OverstockProducts  int
	TotalValue         decimal.Decimal
	TotalUnits         int64
	RecentMovements    int // lançamentos nos últimos 7 dias
}

// AnalyticsRepository consultas de leitura sobre Product + Movement.
// As implementações são read-only (não modificam dados) e não exigem
// transação além da consistência de leitura.
type AnalyticsRepository interface {
	// GetInventoryValuation devolve o total imobilizado nos ativos.
	GetInventoryValuation(ctx context.Context) (*InventoryValuationResult, error)

	// GetValuationByCategory agrupa por categoria, maior valor primeiro.
	GetValuationByCategory(ctx context.Context) ([]CategoryValuationResult, error)

	// GetValuationBySupplier agrupa por fornecedor, maior valor primeiro.
	GetValuationBySupplier(ctx context.Context) ([]SupplierValuationResult, error)

	// GetInventoryTurnover devolve entradas/saídas por produto no período.
	GetInventoryTurnover(ctx context.Context, from, to time.Time) ([]TurnoverResult, error)

	// GetSlowMovingProducts devolve ativos com estoque > 0 cujo último
	// lançamento é anterior ao corte (ou inexistente), maior valor primeiro.
	GetSlowMovingProducts(ctx context.Context, cutoff time.Time) ([]SlowMovingResult, error)

	// GetFastMovingProducts devolve os `limit` produtos com maior volume
	// de saída desde `since`, desempate por número de lançamentos.
	GetFastMovingProducts(ctx context.Context, since time.Time, limit int) ([]FastMovingResult, error)

	// GetInventoryStats devolve os contadores agregados do dashboard.
	GetInventoryStats(ctx context.Context) (*InventoryStatsResult, error)
}
