package inventory

import (
	"context"

	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa transação. Garante atomicidade para o motor
// de ajuste: ou o saldo do produto e o lançamento do ledger persistem
// juntos, ou nenhum dos dois.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
