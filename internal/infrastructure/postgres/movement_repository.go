package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação do ledger sobre PostgreSQL (usável com pool
// ou tx). A tabela inventory_movements é append-only: só há INSERT e SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador do ledger. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste um lançamento. Campos opcionais vazios viram NULL.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements (id, product_id, type, quantity, previous_stock, new_stock, reason, reference_id, reference_type, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	referenceID := (*string)(nil)
	if movement.ReferenceID != "" {
		referenceID = &movement.ReferenceID
	}
	userID := (*string)(nil)
	if movement.UserID != "" {
		userID = &movement.UserID
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.PreviousStock, movement.NewStock, movement.Reason,
		referenceID, movement.ReferenceType, userID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

const movementSelect = `
	SELECT m.id, m.product_id, m.type, m.quantity, m.previous_stock, m.new_stock,
	       m.reason, m.reference_id, m.reference_type, m.user_id, m.created_at,
	       COALESCE(p.code, ''), COALESCE(p.name, '')
	FROM inventory_movements m
	LEFT JOIN products p ON p.id = m.product_id`

func scanMovements(rows pgx.Rows) ([]repository.MovementWithProduct, error) {
	defer rows.Close()
	var list []repository.MovementWithProduct
	for rows.Next() {
		var m repository.MovementWithProduct
		var referenceID, userID *string
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.PreviousStock, &m.NewStock,
			&m.Reason, &referenceID, &m.ReferenceType, &userID, &m.CreatedAt,
			&m.ProductCode, &m.ProductName,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if referenceID != nil {
			m.ReferenceID = *referenceID
		}
		if userID != nil {
			m.UserID = *userID
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListByProduct lista lançamentos, mais recentes primeiro. productID
// vazio lista de todos os produtos.
func (r *MovementRepo) ListByProduct(productID string, limit int) ([]repository.MovementWithProduct, error) {
	query := movementSelect
	args := []any{}
	pos := 1
	if productID != "" {
		query += fmt.Sprintf(" WHERE m.product_id = $%d", pos)
		args = append(args, productID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY m.created_at DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return scanMovements(rows)
}

// ListByDateRange lista lançamentos no intervalo [from, to], opcionalmente
// filtrados por produto.
func (r *MovementRepo) ListByDateRange(from, to time.Time, productID string) ([]repository.MovementWithProduct, error) {
	query := movementSelect + " WHERE m.created_at BETWEEN $1 AND $2"
	args := []any{from, to}
	if productID != "" {
		query += " AND m.product_id = $3"
		args = append(args, productID)
	}
	query += " ORDER BY m.created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements by date range: %w", err)
	}
	return scanMovements(rows)
}
