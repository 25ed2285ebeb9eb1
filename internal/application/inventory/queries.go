package inventory

import (
	"context"
	"time"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	invdomain "github.com/seu-usuario/estoque-api/internal/domain/inventory"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

const defaultMovementLimit = 100

// InventoryQueryUseCase consultas de leitura sobre produtos e ledger:
// visão geral com status derivado, alertas e histórico de movimentações.
type InventoryQueryUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

// NewInventoryQueryUseCase constrói o caso de uso de consultas.
func NewInventoryQueryUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) *InventoryQueryUseCase {
	return &InventoryQueryUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// GetStockAlerts lista alertas dos produtos ativos, mais graves primeiro.
func (uc *InventoryQueryUseCase) GetStockAlerts(ctx context.Context) ([]dto.StockAlertDTO, error) {
	products, err := uc.productRepo.ListActive()
	if err != nil {
		return nil, err
	}
	return BuildAlerts(products), nil
}

// GetInventoryOverview lista os produtos ativos com status de estoque e
// valor imobilizado derivados, ordenados por nome.
func (uc *InventoryQueryUseCase) GetInventoryOverview(ctx context.Context) ([]dto.ProductInventoryDTO, error) {
	products, err := uc.productRepo.ListActiveWithSupplier()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductInventoryDTO, 0, len(products))
	for i := range products {
		out = append(out, toProductInventoryDTO(&products[i]))
	}
	return out, nil
}

// GetProductInventory devolve um produto ativo com os campos derivados,
// ou nil quando inexistente/inativo.
func (uc *InventoryQueryUseCase) GetProductInventory(ctx context.Context, id string) (*dto.ProductInventoryDTO, error) {
	product, err := uc.productRepo.GetActiveWithSupplier(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	d := toProductInventoryDTO(product)
	return &d, nil
}

// ListMovements lista o histórico do ledger, mais recente primeiro.
// productID vazio lista de todos os produtos; limit <= 0 usa o default.
func (uc *InventoryQueryUseCase) ListMovements(ctx context.Context, productID string, limit int) ([]dto.MovementDTO, error) {
	if limit <= 0 {
		limit = defaultMovementLimit
	}
	movements, err := uc.movementRepo.ListByProduct(productID, limit)
	if err != nil {
		return nil, err
	}
	return toMovementDTOs(movements), nil
}

// ListMovementsByDateRange lista o ledger num intervalo de datas.
func (uc *InventoryQueryUseCase) ListMovementsByDateRange(ctx context.Context, from, to time.Time, productID string) ([]dto.MovementDTO, error) {
	movements, err := uc.movementRepo.ListByDateRange(from, to, productID)
	if err != nil {
		return nil, err
	}
	return toMovementDTOs(movements), nil
}

func toProductInventoryDTO(p *repository.ProductWithSupplier) dto.ProductInventoryDTO {
	status := invdomain.Classify(p.Stock, p.MinStock, p.MaxStock)
	d := dto.ProductInventoryDTO{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Category:     p.Category,
		SupplierID:   p.SupplierID,
		SupplierName: p.SupplierName,
		Price:        p.Price,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		MaxStock:     p.MaxStock,
		StockStatus:  string(status),
		StockValue:   invdomain.StockValue(p.Stock, p.Price),
	}
	switch status {
	case invdomain.StatusLowStock:
		d.ShortageQuantity = invdomain.Shortage(p.Stock, p.MinStock)
	case invdomain.StatusOverstock:
		d.ExcessQuantity = invdomain.Excess(p.Stock, p.MaxStock)
	}
	return d
}

func toMovementDTOs(movements []repository.MovementWithProduct) []dto.MovementDTO {
	out := make([]dto.MovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementDTO{
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
	return out
}
