package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/application/inventory"
	"github.com/seu-usuario/estoque-api/internal/domain"
)

// InventoryHandler trata as requisições HTTP de ajustes, contagem,
// alertas e histórico de movimentações.
type InventoryHandler struct {
	adjust     *inventory.AdjustStockUseCase
	stockCount *inventory.StockCountUseCase
	queries    *inventory.InventoryQueryUseCase
}

// NewInventoryHandler constrói o handler.
func NewInventoryHandler(
	adjust *inventory.AdjustStockUseCase,
	stockCount *inventory.StockCountUseCase,
	queries *inventory.InventoryQueryUseCase,
) *InventoryHandler {
	return &InventoryHandler{adjust: adjust, stockCount: stockCount, queries: queries}
}

// mapDomainError converte erros de domínio no status HTTP e corpo padrão.
// Os erros de negócio são mensagens acionáveis: o texto vai direto para o cliente.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAdjustmentType),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrEmptyStockCount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// AdjustStock aplica um ajuste de estoque (entrada, saida ou ajuste).
// POST /api/inventory/adjustments
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	result, err := h.adjust.Adjust(c.Context(), inventory.AdjustmentInput{
		ProductID:     in.ProductID,
		Type:          in.Type,
		Quantity:      in.Quantity,
		Reason:        in.Reason,
		ReferenceID:   in.ReferenceID,
		ReferenceType: in.ReferenceType,
		UserID:        in.UserID,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AdjustStockResponse{
		MovementID:    result.MovementID,
		ProductID:     result.ProductID,
		PreviousStock: result.PreviousStock,
		NewStock:      result.NewStock,
	})
}

// StockCount reconcilia uma contagem física de estoque.
// POST /api/inventory/stock-count
func (h *InventoryHandler) StockCount(c *fiber.Ctx) error {
	var in dto.StockCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	entries := make([]inventory.StockCountEntry, 0, len(in.Counts))
	for _, e := range in.Counts {
		entries = append(entries, inventory.StockCountEntry{
			ProductID:       e.ProductID,
			CountedQuantity: e.CountedQuantity,
		})
	}
	adjustments, err := h.stockCount.ReconcileStockCount(c.Context(), inventory.StockCountInput{
		Entries: entries,
		UserID:  in.UserID,
		Notes:   in.Notes,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.StockCountAdjustmentDTO, 0, len(adjustments))
	for _, a := range adjustments {
		out = append(out, dto.StockCountAdjustmentDTO{
			ProductID:     a.ProductID,
			ProductCode:   a.ProductCode,
			ProductName:   a.ProductName,
			PreviousStock: a.PreviousStock,
			CountedStock:  a.CountedStock,
			Difference:    a.Difference,
		})
	}
	return c.JSON(fiber.Map{"total": len(out), "adjustments": out})
}

// GetAlerts lista alertas de estoque, mais graves primeiro.
// GET /api/inventory/alerts
func (h *InventoryHandler) GetAlerts(c *fiber.Ctx) error {
	alerts, err := h.queries.GetStockAlerts(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(alerts), "alerts": alerts})
}

// GetOverview lista os produtos ativos com status e valor derivados.
// GET /api/inventory
func (h *InventoryHandler) GetOverview(c *fiber.Ctx) error {
	products, err := h.queries.GetInventoryOverview(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(products), "products": products})
}

// GetProduct devolve um produto ativo com os campos derivados.
// GET /api/inventory/:id
func (h *InventoryHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.queries.GetProductInventory(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(product)
}

// GetMovements lista o histórico do ledger. Aceita product_id, limit e
// intervalo from/to (RFC 3339 ou YYYY-MM-DD).
// GET /api/inventory/movements
func (h *InventoryHandler) GetMovements(c *fiber.Ctx) error {
	productID := c.Query("product_id")

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" && toStr != "" {
		from, err := parseDate(fromStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data 'from' inválida"})
		}
		to, err := parseDate(toStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data 'to' inválida"})
		}
		movements, err := h.queries.ListMovementsByDateRange(c.Context(), from, to, productID)
		if err != nil {
			return mapDomainError(c, err)
		}
		return c.JSON(fiber.Map{"total": len(movements), "movements": movements})
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	movements, err := h.queries.ListMovements(c.Context(), productID, limit)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(movements), "movements": movements})
}

// parseDate aceita RFC 3339 completo ou só a data (YYYY-MM-DD).
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
