package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// AdjustStockUseCase é o motor de ajuste de estoque: calcula o novo saldo
// de um produto a partir de uma requisição (entrada, saida ou ajuste) e
// grava saldo + lançamento do ledger como uma unidade, com bloqueio de
// fila (SELECT FOR UPDATE) e Commit/Rollback.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase constrói o motor de ajuste.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// AdjustmentInput requisição de ajuste de estoque.
// Para entrada/saida, Quantity é o delta (positivo); para ajuste, o nível
// absoluto alvo (>= 0).
type AdjustmentInput struct {
	ProductID     string
	Type          string
	Quantity      int64
	Reason        string
	ReferenceID   string
	ReferenceType string
	UserID        string
}

// AdjustmentResult resultado de um ajuste aplicado. MovementID fica vazio
// quando o ajuste foi um no-op (nível alvo igual ao saldo atual).
type AdjustmentResult struct {
	MovementID    string
	ProductID     string
	PreviousStock int64
	NewStock      int64
}

// Adjust valida a requisição e aplica o ajuste dentro de uma transação.
// Em qualquer falha (tipo/quantidade inválidos, produto inexistente ou
// inativo, saldo insuficiente, erro de storage) nada persiste.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, input AdjustmentInput) (*AdjustmentResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.ReferenceType == "" {
		input.ReferenceType = entity.ReferenceTypeManual
	}

	var result *AdjustmentResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		r, err := adjustLocked(movRepo, productRepo, input, time.Now())
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// validateInput confere tipo e quantidade antes de abrir transação.
func validateInput(input AdjustmentInput) error {
	switch input.Type {
	case entity.MovementTypeEntrada, entity.MovementTypeSaida:
		if input.Quantity <= 0 {
			return fmt.Errorf("%w: quantidade %d para %s", domain.ErrInvalidQuantity, input.Quantity, input.Type)
		}
	case entity.MovementTypeAjuste:
		// Para ajuste a quantidade é o nível alvo; zero é válido (zerar estoque).
		if input.Quantity < 0 {
			return fmt.Errorf("%w: nível alvo %d", domain.ErrInvalidQuantity, input.Quantity)
		}
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidAdjustmentType, input.Type)
	}
	return nil
}

// adjustLocked aplica um ajuste usando repositórios já atados à transação
// do chamador. É o caminho compartilhado entre Adjust e a contagem de
// estoque (StockCountUseCase), que embrulha vários ajustes numa única
// transação.
func adjustLocked(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	input AdjustmentInput,
	now time.Time,
) (*AdjustmentResult, error) {
	// Bloqueia a fila do produto: dois ajustes concorrentes sobre o mesmo
	// produto nunca leem o mesmo saldo anterior.
	product, err := productRepo.GetActiveForUpdate(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("produto %s: %w", input.ProductID, domain.ErrProductNotFound)
	}

	previousStock := product.Stock
	var newStock int64
	switch input.Type {
	case entity.MovementTypeEntrada:
		newStock = previousStock + input.Quantity
	case entity.MovementTypeSaida:
		newStock = previousStock - input.Quantity
		if newStock < 0 {
			return nil, fmt.Errorf("produto %s: saldo %d, saída %d: %w",
				input.ProductID, previousStock, input.Quantity, domain.ErrInsufficientStock)
		}
	case entity.MovementTypeAjuste:
		// O chamador informa o nível absoluto alvo, não um delta.
		newStock = input.Quantity
	}

	result := &AdjustmentResult{
		ProductID:     input.ProductID,
		PreviousStock: previousStock,
		NewStock:      newStock,
	}

	// Ajuste para o nível já vigente: nenhum delta, nenhum lançamento.
	if newStock == previousStock {
		return result, nil
	}

	// O ledger registra sempre uma mudança direcional: ajuste vira
	// entrada/saida conforme o sinal do delta efetivo.
	actualType := input.Type
	actualQuantity := input.Quantity
	if input.Type == entity.MovementTypeAjuste {
		if newStock > previousStock {
			actualType = entity.MovementTypeEntrada
			actualQuantity = newStock - previousStock
		} else {
			actualType = entity.MovementTypeSaida
			actualQuantity = previousStock - newStock
		}
	}

	if err := productRepo.UpdateStock(input.ProductID, newStock); err != nil {
		return nil, err
	}

	mov := &entity.Movement{
		ID:            uuid.New().String(),
		ProductID:     input.ProductID,
		Type:          actualType,
		Quantity:      actualQuantity,
		PreviousStock: previousStock,
		NewStock:      newStock,
		Reason:        input.Reason,
		ReferenceID:   input.ReferenceID,
		ReferenceType: input.ReferenceType,
		UserID:        input.UserID,
		CreatedAt:     now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}

	result.MovementID = mov.ID
	return result, nil
}
