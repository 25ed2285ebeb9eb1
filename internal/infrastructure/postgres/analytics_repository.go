package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de leitura para valuation, giro e dashboard.
// Todas as consultas consideram só produtos ativos e nunca modificam dados.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository constrói o adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetInventoryValuation devolve o total imobilizado nos produtos ativos.
// COALESCE garante zeros quando não há produtos.
func (r *AnalyticsRepo) GetInventoryValuation(ctx context.Context) (*repository.InventoryValuationResult, error) {
	const query = `
	SELECT
	    COALESCE(SUM(stock * price), 0) AS total_value,
	    COALESCE(SUM(stock), 0)         AS total_units,
	    COUNT(*)                        AS product_count
	FROM products
	WHERE status = 'ativo'`

	var res repository.InventoryValuationResult
	err := r.pool.QueryRow(ctx, query).Scan(&res.TotalValue, &res.TotalUnits, &res.ProductCount)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetInventoryValuation: %w", err)
	}
	return &res, nil
}

// GetValuationByCategory agrupa o valor imobilizado por categoria.
func (r *AnalyticsRepo) GetValuationByCategory(ctx context.Context) ([]repository.CategoryValuationResult, error) {
	const query = `
	SELECT
	    category,
	    COALESCE(SUM(stock * price), 0) AS total_value,
	    COALESCE(SUM(stock), 0)         AS total_units,
	    COUNT(*)                        AS product_count
	FROM products
	WHERE status = 'ativo'
	GROUP BY category
	ORDER BY total_value DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetValuationByCategory: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryValuationResult
	for rows.Next() {
		var row repository.CategoryValuationResult
		if err := rows.Scan(&row.Category, &row.TotalValue, &row.TotalUnits, &row.ProductCount); err != nil {
			return nil, fmt.Errorf("analytics.GetValuationByCategory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetValuationBySupplier agrupa o valor imobilizado por fornecedor.
// Produtos sem fornecedor entram com id e nome vazios.
func (r *AnalyticsRepo) GetValuationBySupplier(ctx context.Context) ([]repository.SupplierValuationResult, error) {
	const query = `
	SELECT
	    COALESCE(s.id::TEXT, '')              AS supplier_id,
	    COALESCE(s.name, '')                  AS supplier_name,
	    COALESCE(SUM(p.stock * p.price), 0)   AS total_value,
	    COALESCE(SUM(p.stock), 0)             AS total_units,
	    COUNT(p.id)                           AS product_count
	FROM products p
	LEFT JOIN suppliers s ON s.id = p.supplier_id
	WHERE p.status = 'ativo'
	GROUP BY s.id, s.name
	ORDER BY total_value DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetValuationBySupplier: %w", err)
	}
	defer rows.Close()

	var results []repository.SupplierValuationResult
	for rows.Next() {
		var row repository.SupplierValuationResult
		if err := rows.Scan(&row.SupplierID, &row.SupplierName, &row.TotalValue, &row.TotalUnits, &row.ProductCount); err != nil {
			return nil, fmt.Errorf("analytics.GetValuationBySupplier scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetInventoryTurnover soma entradas e saídas por produto no período.
// A razão de giro é calculada no use case, que reconstrói o saldo médio.
func (r *AnalyticsRepo) GetInventoryTurnover(ctx context.Context, from, to time.Time) ([]repository.TurnoverResult, error) {
	const query = `
	SELECT
	    p.id,
	    p.code,
	    p.name,
	    p.stock,
	    COALESCE(SUM(m.quantity) FILTER (WHERE m.type = 'saida'), 0)   AS total_out,
	    COALESCE(SUM(m.quantity) FILTER (WHERE m.type = 'entrada'), 0) AS total_in
	FROM products p
	LEFT JOIN inventory_movements m
	    ON m.product_id = p.id AND m.created_at BETWEEN $1 AND $2
	WHERE p.status = 'ativo'
	GROUP BY p.id, p.code, p.name, p.stock
	ORDER BY total_out DESC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetInventoryTurnover: %w", err)
	}
	defer rows.Close()

	var results []repository.TurnoverResult
	for rows.Next() {
		var row repository.TurnoverResult
		if err := rows.Scan(&row.ProductID, &row.Code, &row.Name, &row.CurrentStock, &row.TotalOut, &row.TotalIn); err != nil {
			return nil, fmt.Errorf("analytics.GetInventoryTurnover scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetSlowMovingProducts devolve ativos com estoque > 0 cujo último
// lançamento é anterior ao corte, ou que nunca tiveram lançamento.
func (r *AnalyticsRepo) GetSlowMovingProducts(ctx context.Context, cutoff time.Time) ([]repository.SlowMovingResult, error) {
	const query = `
	SELECT
	    p.id,
	    p.code,
	    p.name,
	    p.stock,
	    p.stock * p.price      AS stock_value,
	    MAX(m.created_at)      AS last_movement
	FROM products p
	LEFT JOIN inventory_movements m ON m.product_id = p.id
	WHERE p.status = 'ativo' AND p.stock > 0
	GROUP BY p.id, p.code, p.name, p.stock, p.price
	HAVING MAX(m.created_at) IS NULL OR MAX(m.created_at) < $1
	ORDER BY stock_value DESC`

	rows, err := r.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetSlowMovingProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.SlowMovingResult
	for rows.Next() {
		var row repository.SlowMovingResult
		if err := rows.Scan(&row.ProductID, &row.Code, &row.Name, &row.Stock, &row.StockValue, &row.LastMovement); err != nil {
			return nil, fmt.Errorf("analytics.GetSlowMovingProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetFastMovingProducts devolve os `limit` produtos com maior volume de
// saída desde `since`; desempate por número de lançamentos decrescente.
func (r *AnalyticsRepo) GetFastMovingProducts(ctx context.Context, since time.Time, limit int) ([]repository.FastMovingResult, error) {
	const query = `
	SELECT
	    p.id,
	    p.code,
	    p.name,
	    p.stock,
	    p.stock * p.price          AS stock_value,
	    COALESCE(SUM(m.quantity), 0) AS total_out,
	    COUNT(m.id)                AS movement_count
	FROM products p
	JOIN inventory_movements m
	    ON m.product_id = p.id AND m.type = 'saida' AND m.created_at >= $1
	WHERE p.status = 'ativo'
	GROUP BY p.id, p.code, p.name, p.stock, p.price
	HAVING SUM(m.quantity) > 0
	ORDER BY total_out DESC, movement_count DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetFastMovingProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.FastMovingResult
	for rows.Next() {
		var row repository.FastMovingResult
		if err := rows.Scan(&row.ProductID, &row.Code, &row.Name, &row.Stock, &row.StockValue, &row.TotalOut, &row.MovementCount); err != nil {
			return nil, fmt.Errorf("analytics.GetFastMovingProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetInventoryStats devolve os contadores do dashboard em duas consultas:
// uma sobre products (contagens e totais) e uma sobre o ledger recente.
func (r *AnalyticsRepo) GetInventoryStats(ctx context.Context) (*repository.InventoryStatsResult, error) {
	const productsQuery = `
	SELECT
	    COUNT(*)                                                                   AS total_products,
	    COUNT(*) FILTER (WHERE stock > 0 AND stock <= min_stock)                   AS low_stock,
	    COUNT(*) FILTER (WHERE stock <= 0)                                         AS out_of_stock,
	    COUNT(*) FILTER (WHERE max_stock IS NOT NULL AND stock >= max_stock)       AS overstock,
	    COALESCE(SUM(stock * price), 0)                                            AS total_value,
	    COALESCE(SUM(stock), 0)                                                    AS total_units
	FROM products
	WHERE status = 'ativo'`

	var res repository.InventoryStatsResult
	err := r.pool.QueryRow(ctx, productsQuery).Scan(
		&res.TotalProducts, &res.LowStockProducts, &res.OutOfStockProducts,
		&res.OverstockProducts, &res.TotalValue, &res.TotalUnits,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetInventoryStats: %w", err)
	}

	const movementsQuery = `
	SELECT COUNT(*) FROM inventory_movements WHERE created_at >= $1`

	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	if err := r.pool.QueryRow(ctx, movementsQuery, sevenDaysAgo).Scan(&res.RecentMovements); err != nil {
		return nil, fmt.Errorf("analytics.GetInventoryStats movements: %w", err)
	}
	return &res, nil
}
