package repository

import (
	"time"

	"github.com/seu-usuario/estoque-api/internal/domain/entity"
)

// MovementWithProduct lançamento do ledger com código e nome do produto
// resolvidos por JOIN, para telas de histórico e relatórios.
type MovementWithProduct struct {
	entity.Movement
	ProductCode string
	ProductName string
}

// MovementRepository porta do ledger de movimentações (append-only).
// Não há Update nem Delete: lançamentos são imutáveis depois de gravados.
type MovementRepository interface {
	// Create persiste um novo lançamento. Gera o ID quando vazio.
	Create(movement *entity.Movement) error

	// ListByProduct lista os lançamentos de um produto, mais recentes
	// primeiro. productID vazio lista de todos os produtos.
	ListByProduct(productID string, limit int) ([]MovementWithProduct, error)

	// ListByDateRange lista lançamentos no intervalo [from, to],
	// opcionalmente filtrados por produto, mais recentes primeiro.
	ListByDateRange(from, to time.Time, productID string) ([]MovementWithProduct, error)
}
