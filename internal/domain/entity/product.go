package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de ciclo de vida do produto. Produtos inativos não participam
// de ajustes nem de classificação; nunca são removidos fisicamente
// enquanto houver movimentações referenciando-os.
const (
	ProductStatusAtivo   = "ativo"
	ProductStatusInativo = "inativo"
)

// Product representa um produto do catálogo com o saldo atual de estoque.
// Stock é a soma de todos os deltas de Movement desde a criação do produto
// e só é mutado pelo motor de ajuste, dentro de transação.
type Product struct {
	ID          string
	Code        string // código único do produto
	Name        string
	Description string
	Category    string
	SupplierID  *string // nulo quando sem fornecedor
	Price       decimal.Decimal
	Stock       int64
	MinStock    int64
	MaxStock    *int64 // nulo = sem limite superior; quando presente, >= MinStock
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive indica se o produto participa de ajustes e classificação.
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusAtivo
}
