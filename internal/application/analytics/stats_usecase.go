package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/application/inventory"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// Janelas default das consultas analíticas, em dias.
const (
	DefaultSlowMovingDays = 90
	DefaultFastMovingDays = 30
	DefaultFastMovingTop  = 20
)

// InventoryStatsUseCase consultas analíticas de leitura sobre
// Product + Movement: valuation, giro, produtos parados/rápidos e o
// relatório consolidado consumido pela camada de relatórios.
type InventoryStatsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
	movementRepo  repository.MovementRepository
}

// NewInventoryStatsUseCase constrói o caso de uso de analítica.
func NewInventoryStatsUseCase(
	analyticsRepo repository.AnalyticsRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) *InventoryStatsUseCase {
	return &InventoryStatsUseCase{
		analyticsRepo: analyticsRepo,
		productRepo:   productRepo,
		movementRepo:  movementRepo,
	}
}

// GetInventoryStats devolve os contadores agregados do dashboard.
func (uc *InventoryStatsUseCase) GetInventoryStats(ctx context.Context) (*dto.InventoryStatsDTO, error) {
	stats, err := uc.analyticsRepo.GetInventoryStats(ctx)
	if err != nil {
		return nil, err
	}
	d := toStatsDTO(stats)
	return &d, nil
}

// GetInventoryValuation compõe o valor total imobilizado com os
// agrupamentos por categoria e por fornecedor.
func (uc *InventoryStatsUseCase) GetInventoryValuation(ctx context.Context) (*dto.InventoryValuationDTO, error) {
	total, err := uc.analyticsRepo.GetInventoryValuation(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := uc.analyticsRepo.GetValuationByCategory(ctx)
	if err != nil {
		return nil, err
	}
	bySupplier, err := uc.analyticsRepo.GetValuationBySupplier(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.InventoryValuationDTO{
		TotalValue:   total.TotalValue,
		TotalUnits:   total.TotalUnits,
		ProductCount: total.ProductCount,
		ByCategory:   toCategoryDTOs(byCategory),
		BySupplier:   toSupplierDTOs(bySupplier),
	}, nil
}

// GetInventoryTurnover calcula o giro por produto no período:
// total_out / estoque médio, onde o estoque médio é a média entre o
// saldo no início do período (reconstruído pelos deltas) e o saldo
// atual. Média <= 0 resulta em giro 0 (sem divisão por zero).
func (uc *InventoryStatsUseCase) GetInventoryTurnover(ctx context.Context, from, to time.Time) ([]dto.TurnoverDTO, error) {
	rows, err := uc.analyticsRepo.GetInventoryTurnover(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TurnoverDTO, 0, len(rows))
	for _, r := range rows {
		startStock := r.CurrentStock - (r.TotalIn - r.TotalOut)
		if startStock < 0 {
			startStock = 0
		}
		avg := decimal.NewFromInt(startStock + r.CurrentStock).Div(decimal.NewFromInt(2))

		ratio := decimal.Zero
		if avg.GreaterThan(decimal.Zero) {
			ratio = decimal.NewFromInt(r.TotalOut).DivRound(avg, 4)
		}
		out = append(out, dto.TurnoverDTO{
			ProductID:     r.ProductID,
			Code:          r.Code,
			Name:          r.Name,
			CurrentStock:  r.CurrentStock,
			TotalIn:       r.TotalIn,
			TotalOut:      r.TotalOut,
			AverageStock:  avg,
			TurnoverRatio: ratio,
		})
	}
	// Maior giro primeiro; a consulta devolve em ordem indefinida de razão.
	sortTurnoverDesc(out)
	return out, nil
}

// GetSlowMovingProducts lista ativos com estoque parado há mais de `days`
// dias (ou sem movimentação alguma). days <= 0 usa o default de 90.
func (uc *InventoryStatsUseCase) GetSlowMovingProducts(ctx context.Context, days int) ([]dto.SlowMovingDTO, error) {
	if days <= 0 {
		days = DefaultSlowMovingDays
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	rows, err := uc.analyticsRepo.GetSlowMovingProducts(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SlowMovingDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SlowMovingDTO{
			ProductID:    r.ProductID,
			Code:         r.Code,
			Name:         r.Name,
			Stock:        r.Stock,
			StockValue:   r.StockValue,
			LastMovement: r.LastMovement,
		})
	}
	return out, nil
}

// GetFastMovingProducts lista os top-N produtos por volume de saída na
// janela recente. days/limit <= 0 usam os defaults (30 dias, top 20).
func (uc *InventoryStatsUseCase) GetFastMovingProducts(ctx context.Context, days, limit int) ([]dto.FastMovingDTO, error) {
	if days <= 0 {
		days = DefaultFastMovingDays
	}
	if limit <= 0 {
		limit = DefaultFastMovingTop
	}
	since := time.Now().AddDate(0, 0, -days)
	rows, err := uc.analyticsRepo.GetFastMovingProducts(ctx, since, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FastMovingDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FastMovingDTO{
			ProductID:     r.ProductID,
			Code:          r.Code,
			Name:          r.Name,
			Stock:         r.Stock,
			StockValue:    r.StockValue,
			TotalOut:      r.TotalOut,
			MovementCount: r.MovementCount,
		})
	}
	return out, nil
}

// GenerateStockReport monta o relatório consolidado: resumo, valuation
// por categoria/fornecedor e alertas; com período informado inclui
// também movimentações e giro. Devolve apenas dados — a renderização
// (PDF, planilha) pertence à camada de relatórios externa.
func (uc *InventoryStatsUseCase) GenerateStockReport(ctx context.Context, from, to *time.Time) (*dto.StockReportDTO, error) {
	stats, err := uc.analyticsRepo.GetInventoryStats(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := uc.analyticsRepo.GetValuationByCategory(ctx)
	if err != nil {
		return nil, err
	}
	bySupplier, err := uc.analyticsRepo.GetValuationBySupplier(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListActive()
	if err != nil {
		return nil, err
	}

	report := &dto.StockReportDTO{
		GeneratedAt: time.Now(),
		Period:      dto.ReportPeriodDTO{Start: from, End: to},
		Summary:     toStatsDTO(stats),
		ByCategory:  toCategoryDTOs(byCategory),
		BySupplier:  toSupplierDTOs(bySupplier),
		Alerts:      inventory.BuildAlerts(products),
	}

	if from != nil && to != nil {
		movements, err := uc.movementRepo.ListByDateRange(*from, *to, "")
		if err != nil {
			return nil, err
		}
		for _, m := range movements {
			report.Movements = append(report.Movements, dto.MovementDTO{
				ID:            m.ID,
				ProductID:     m.ProductID,
				ProductCode:   m.ProductCode,
				ProductName:   m.ProductName,
				Type:          m.Type,
				Quantity:      m.Quantity,
				PreviousStock: m.PreviousStock,
				NewStock:      m.NewStock,
				Reason:        m.Reason,
				ReferenceID:   m.ReferenceID,
				ReferenceType: m.ReferenceType,
				UserID:        m.UserID,
				CreatedAt:     m.CreatedAt,
			})
		}
		turnover, err := uc.GetInventoryTurnover(ctx, *from, *to)
		if err != nil {
			return nil, err
		}
		report.Turnover = turnover
	}
	return report, nil
}

func toStatsDTO(s *repository.InventoryStatsResult) dto.InventoryStatsDTO {
	return dto.InventoryStatsDTO{
		TotalProducts:      s.TotalProducts,
		LowStockProducts:   s.LowStockProducts,
		OutOfStockProducts: s.OutOfStockProducts,
		OverstockProducts:  s.OverstockProducts,
		TotalValue:         s.TotalValue,
		TotalUnits:         s.TotalUnits,
		RecentMovements:    s.RecentMovements,
	}
}

func toCategoryDTOs(rows []repository.CategoryValuationResult) []dto.CategoryValuationDTO {
	out := make([]dto.CategoryValuationDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategoryValuationDTO{
			Category:     r.Category,
			TotalValue:   r.TotalValue,
			TotalUnits:   r.TotalUnits,
			ProductCount: r.ProductCount,
		})
	}
	return out
}

func toSupplierDTOs(rows []repository.SupplierValuationResult) []dto.SupplierValuationDTO {
	out := make([]dto.SupplierValuationDTO, 0, len(rows))
	for _, r := range rows {
		name := r.SupplierName
		if name == "" {
			name = "Sem fornecedor"
		}
		out = append(out, dto.SupplierValuationDTO{
			SupplierID:   r.SupplierID,
			SupplierName: name,
			TotalValue:   r.TotalValue,
			TotalUnits:   r.TotalUnits,
			ProductCount: r.ProductCount,
		})
	}
	return out
}

// sortTurnoverDesc ordena por giro decrescente; empates mantêm a ordem
// devolvida pela consulta.
func sortTurnoverDesc(rows []dto.TurnoverDTO) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TurnoverRatio.GreaterThan(rows[j].TurnoverRatio)
	})
}
