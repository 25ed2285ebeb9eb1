package inventory

import (
	"fmt"
	"sort"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	invdomain "github.com/seu-usuario/estoque-api/internal/domain/inventory"
)

// Severidades de alerta, da mais grave para a menos grave.
const (
	SeverityCritical = "critical" // out_of_stock
	SeverityWarning  = "warning"  // low_stock
	SeverityInfo     = "info"     // overstock
)

var severityRank = map[string]int{
	SeverityCritical: 3,
	SeverityWarning:  2,
	SeverityInfo:     1,
}

// BuildAlerts classifica cada produto ativo e emite um alerta por status
// não-normal, ordenados por severidade decrescente (empates preservam a
// ordem de entrada). Função pura: recomputável a qualquer momento só com
// o estado atual dos produtos, sem depender do histórico de movimentações.
func BuildAlerts(products []*entity.Product) []dto.StockAlertDTO {
	alerts := []dto.StockAlertDTO{}
	for _, p := range products {
		if !p.IsActive() {
			continue
		}
		status := invdomain.Classify(p.Stock, p.MinStock, p.MaxStock)
		switch status {
		case invdomain.StatusOutOfStock:
			alerts = append(alerts, dto.StockAlertDTO{
				Type:         string(status),
				Severity:     SeverityCritical,
				ProductID:    p.ID,
				ProductCode:  p.Code,
				ProductName:  p.Name,
				CurrentStock: p.Stock,
				MinStock:     p.MinStock,
				Message:      fmt.Sprintf("Produto em falta: %s", p.Name),
			})
		case invdomain.StatusLowStock:
			alerts = append(alerts, dto.StockAlertDTO{
				Type:         string(status),
				Severity:     SeverityWarning,
				ProductID:    p.ID,
				ProductCode:  p.Code,
				ProductName:  p.Name,
				CurrentStock: p.Stock,
				MinStock:     p.MinStock,
				Message:      fmt.Sprintf("Estoque baixo: %s (%d unidades)", p.Name, p.Stock),
			})
		case invdomain.StatusOverstock:
			excess := invdomain.Excess(p.Stock, p.MaxStock)
			alerts = append(alerts, dto.StockAlertDTO{
				Type:           string(status),
				Severity:       SeverityInfo,
				ProductID:      p.ID,
				ProductCode:    p.Code,
				ProductName:    p.Name,
				CurrentStock:   p.Stock,
				MinStock:       p.MinStock,
				MaxStock:       p.MaxStock,
				ExcessQuantity: excess,
				Message:        fmt.Sprintf("Excesso de estoque: %s (%d unidades acima do máximo)", p.Name, excess),
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return severityRank[alerts[i].Severity] > severityRank[alerts[j].Severity]
	})
	return alerts
}
