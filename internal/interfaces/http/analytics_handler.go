package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/analytics"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
)

// AnalyticsHandler trata as consultas de leitura para dashboard e relatórios.
type AnalyticsHandler struct {
	stats *analytics.InventoryStatsUseCase
}

// NewAnalyticsHandler constrói o handler.
func NewAnalyticsHandler(stats *analytics.InventoryStatsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{stats: stats}
}

// GetStats devolve os contadores agregados do dashboard.
// GET /api/inventory/stats
func (h *AnalyticsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.stats.GetInventoryStats(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(stats)
}

// GetValuation devolve o valor imobilizado total e por agrupamentos.
// GET /api/inventory/valuation
func (h *AnalyticsHandler) GetValuation(c *fiber.Ctx) error {
	valuation, err := h.stats.GetInventoryValuation(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(valuation)
}

// GetTurnover devolve o giro de estoque por produto no período (from/to
// obrigatórios).
// GET /api/inventory/turnover
func (h *AnalyticsHandler) GetTurnover(c *fiber.Ctx) error {
	from, err := parseDate(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data 'from' inválida"})
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data 'to' inválida"})
	}
	turnover, err := h.stats.GetInventoryTurnover(c.Context(), from, to)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(turnover), "turnover": turnover})
}

// GetSlowMoving lista produtos com estoque parado (default 90 dias).
// GET /api/inventory/slow-moving
func (h *AnalyticsHandler) GetSlowMoving(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days"))
	products, err := h.stats.GetSlowMovingProducts(c.Context(), days)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(products), "products": products})
}

// GetFastMoving lista os top-N produtos por saída (defaults: 30 dias, 20).
// GET /api/inventory/fast-moving
func (h *AnalyticsHandler) GetFastMoving(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	products, err := h.stats.GetFastMovingProducts(c.Context(), days, limit)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(products), "products": products})
}

// GetStockReport devolve o relatório consolidado; from/to opcionais.
// GET /api/inventory/report
func (h *AnalyticsHandler) GetStockReport(c *fiber.Ctx) error {
	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data 'from' inválida"})
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data 'to' inválida"})
		}
		to = &t
	}
	report, err := h.stats.GenerateStockReport(c.Context(), from, to)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(report)
}
