package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, code, name, description, category, supplier_id, price, stock, min_stock, max_stock, status, created_at, updated_at`

// ProductRepo implementação de ProductRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de produtos. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.Category, &p.SupplierID,
		&p.Price, &p.Stock, &p.MinStock, &p.MaxStock, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}

// GetByID devolve o produto ou nil quando não existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.q.QueryRow(context.Background(), query, id))
}

// GetActiveForUpdate devolve o produto ativo bloqueando a fila
// (SELECT FOR UPDATE): serializa ajustes concorrentes sobre o mesmo
// produto sem bloquear ajustes em produtos distintos.
func (r *ProductRepo) GetActiveForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND status = 'ativo' FOR UPDATE`
	return scanProduct(r.q.QueryRow(context.Background(), query, id))
}

// UpdateStock grava o novo saldo do produto.
func (r *ProductRepo) UpdateStock(id string, stock int64) error {
	query := `UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update stock: produto %s não encontrado", id)
	}
	return nil
}

// ListActive devolve os produtos ativos ordenados por nome.
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE status = 'ativo' ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Code, &p.Name, &p.Description, &p.Category, &p.SupplierID,
			&p.Price, &p.Stock, &p.MinStock, &p.MaxStock, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListActiveWithSupplier devolve os ativos com o nome do fornecedor
// resolvido (LEFT JOIN), ordenados por nome.
func (r *ProductRepo) ListActiveWithSupplier() ([]repository.ProductWithSupplier, error) {
	query := `
		SELECT p.id, p.code, p.name, p.description, p.category, p.supplier_id,
		       p.price, p.stock, p.min_stock, p.max_stock, p.status,
		       p.created_at, p.updated_at, COALESCE(s.name, '')
		FROM products p
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.status = 'ativo'
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products with supplier: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductWithSupplier
	for rows.Next() {
		var p repository.ProductWithSupplier
		if err := rows.Scan(
			&p.ID, &p.Code, &p.Name, &p.Description, &p.Category, &p.SupplierID,
			&p.Price, &p.Stock, &p.MinStock, &p.MaxStock, &p.Status,
			&p.CreatedAt, &p.UpdatedAt, &p.SupplierName,
		); err != nil {
			return nil, fmt.Errorf("scan product with supplier: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetActiveWithSupplier devolve um produto ativo com fornecedor, ou nil.
func (r *ProductRepo) GetActiveWithSupplier(id string) (*repository.ProductWithSupplier, error) {
	query := `
		SELECT p.id, p.code, p.name, p.description, p.category, p.supplier_id,
		       p.price, p.stock, p.min_stock, p.max_stock, p.status,
		       p.created_at, p.updated_at, COALESCE(s.name, '')
		FROM products p
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.id = $1 AND p.status = 'ativo'`
	var p repository.ProductWithSupplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.Category, &p.SupplierID,
		&p.Price, &p.Stock, &p.MinStock, &p.MaxStock, &p.Status,
		&p.CreatedAt, &p.UpdatedAt, &p.SupplierName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product with supplier: %w", err)
	}
	return &p, nil
}
