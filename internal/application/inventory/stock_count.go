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

// StockCountUseCase reconcilia o estoque registrado com uma contagem
// física, convertendo cada divergência num ajuste do motor. A contagem
// inteira roda numa única transação: falha em qualquer item desfaz os
// ajustes anteriores da mesma chamada (all-or-nothing).
type StockCountUseCase struct {
	txRunner TxRunner
}

// NewStockCountUseCase constrói o caso de uso de contagem.
func NewStockCountUseCase(txRunner TxRunner) *StockCountUseCase {
	return &StockCountUseCase{txRunner: txRunner}
}

// StockCountEntry resultado da contagem física de um produto.
type StockCountEntry struct {
	ProductID       string
	CountedQuantity int64
}

// StockCountInput lote de contagem a reconciliar.
type StockCountInput struct {
	Entries []StockCountEntry
	UserID  string
	Notes   string
}

// StockCountAdjustment resumo de um produto efetivamente ajustado.
type StockCountAdjustment struct {
	ProductID     string
	ProductCode   string
	ProductName   string
	PreviousStock int64
	CountedStock  int64
	Difference    int64 // contado - anterior, com sinal
}

// ReconcileStockCount aplica a contagem na ordem dos itens. Itens cuja
// quantidade contada coincide com o saldo atual são no-ops (sem
// lançamento); os demais viram ajustes com reference_type stock_count e
// um reference_id comum ao lote. Devolve um resumo por produto ajustado.
func (uc *StockCountUseCase) ReconcileStockCount(ctx context.Context, input StockCountInput) ([]StockCountAdjustment, error) {
	if len(input.Entries) == 0 {
		return nil, domain.ErrEmptyStockCount
	}

	batchID := uuid.New().String()
	reason := "Contagem de estoque"
	if input.Notes != "" {
		reason = fmt.Sprintf("Contagem de estoque - %s", input.Notes)
	}

	var adjustments []StockCountAdjustment
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		now := time.Now()
		for _, entry := range input.Entries {
			if entry.CountedQuantity < 0 {
				return fmt.Errorf("%w: contagem %d para produto %s",
					domain.ErrInvalidQuantity, entry.CountedQuantity, entry.ProductID)
			}
			// O bloqueio de fila aqui também serializa dois itens do mesmo
			// produto dentro do lote: o segundo lê o saldo deixado pelo primeiro.
			product, err := productRepo.GetActiveForUpdate(entry.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("produto %s: %w", entry.ProductID, domain.ErrProductNotFound)
			}
			if entry.CountedQuantity == product.Stock {
				continue
			}

			result, err := adjustLocked(movRepo, productRepo, AdjustmentInput{
				ProductID:     entry.ProductID,
				Type:          entity.MovementTypeAjuste,
				Quantity:      entry.CountedQuantity,
				Reason:        reason,
				ReferenceID:   batchID,
				ReferenceType: entity.ReferenceTypeStockCount,
				UserID:        input.UserID,
			}, now)
			if err != nil {
				return err
			}

			adjustments = append(adjustments, StockCountAdjustment{
				ProductID:     product.ID,
				ProductCode:   product.Code,
				ProductName:   product.Name,
				PreviousStock: result.PreviousStock,
				CountedStock:  entry.CountedQuantity,
				Difference:    result.NewStock - result.PreviousStock,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if adjustments == nil {
		adjustments = []StockCountAdjustment{}
	}
	return adjustments, nil
}
