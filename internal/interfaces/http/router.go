package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/analytics"
	"github.com/seu-usuario/estoque-api/internal/application/inventory"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AdjustStock *inventory.AdjustStockUseCase
	StockCount  *inventory.StockCountUseCase
	Queries     *inventory.InventoryQueryUseCase
	Stats       *analytics.InventoryStatsUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustStock, deps.StockCount, deps.Queries)
	analyticsHandler := NewAnalyticsHandler(deps.Stats)

	// Escritas: motor de ajuste e contagem física
	inv.Post("/adjustments", inventoryHandler.AdjustStock)
	inv.Post("/stock-count", inventoryHandler.StockCount)

	// Leituras: ledger, alertas e analítica
	// (rotas fixas antes de /:id para o Fiber não capturá-las como id)
	inv.Get("/movements", inventoryHandler.GetMovements)
	inv.Get("/alerts", inventoryHandler.GetAlerts)
	inv.Get("/stats", analyticsHandler.GetStats)
	inv.Get("/valuation", analyticsHandler.GetValuation)
	inv.Get("/turnover", analyticsHandler.GetTurnover)
	inv.Get("/slow-moving", analyticsHandler.GetSlowMoving)
	inv.Get("/fast-moving", analyticsHandler.GetFastMoving)
	inv.Get("/report", analyticsHandler.GetStockReport)
	inv.Get("/", inventoryHandler.GetOverview)
	inv.Get("/:id", inventoryHandler.GetProduct)
}
