package repository

import "github.com/seu-usuario/estoque-api/internal/domain/entity"

// ProductWithSupplier resultado cru da listagem com JOIN em suppliers.
// Produzido pela DB; o use case converte em DTO.
type ProductWithSupplier struct {
	entity.Product
	SupplierName string // vazio quando o produto não tem fornecedor
}

// ProductRepository porta de persistência de produtos.
// O saldo de estoque só é escrito por UpdateStock, sempre dentro da
// mesma transação que grava o Movement correspondente.
type ProductRepository interface {
	// GetByID devolve o produto ou nil quando não existe.
	GetByID(id string) (*entity.Product, error)

	// GetActiveForUpdate devolve o produto ativo bloqueando a fila
	// (SELECT FOR UPDATE) para serializar ajustes concorrentes sobre o
	// mesmo produto. Devolve nil quando inexistente ou inativo.
	// Só faz sentido chamado com repositório atado a uma transação.
	GetActiveForUpdate(id string) (*entity.Product, error)

	// UpdateStock grava o novo saldo do produto.
	UpdateStock(id string, stock int64) error

	// ListActive devolve os produtos ativos ordenados por nome.
	ListActive() ([]*entity.Product, error)

	// ListActiveWithSupplier idem, com o nome do fornecedor resolvido.
	ListActiveWithSupplier() ([]ProductWithSupplier, error)

	// GetActiveWithSupplier devolve um produto ativo com fornecedor, ou nil.
	GetActiveWithSupplier(id string) (*ProductWithSupplier, error)
}
