package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/estoque-api/internal/application/inventory"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
)

func newProduct(id string, stock int64) *entity.Product {
	return &entity.Product{
		ID:       id,
		Code:     "P-" + id,
		Name:     "Produto " + id,
		Category: "geral",
		Price:    decimal.RequireFromString("10.00"),
		Stock:    stock,
		MinStock: 10,
		Status:   entity.ProductStatusAtivo,
	}
}

func newEngine(products ...*entity.Product) (*inventory.AdjustStockUseCase, *fakeStore) {
	store := newFakeStore(products...)
	return inventory.NewAdjustStockUseCase(&fakeTxRunner{store: store}), store
}

// Caso 1: entrada soma a quantidade e grava o lançamento correspondente.
func TestAdjust_EntradaSomaSaldo(t *testing.T) {
	uc, store := newEngine(newProduct("p1", 20))

	result, err := uc.Adjust(context.Background(), inventory.AdjustmentInput{
		ProductID: "p1",
		Type:      entity.MovementTypeEntrada,
		Quantity:  15,
		Reason:    "compra",
		UserID:    "u1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(20), result.PreviousStock)
	assert.Equal(t, int64(35), result.NewStock)
	assert.NotEmpty(t, result.MovementID)
	assert.Equal(t, int64(35), store.stockOf("p1"))

	movements := store.movementsOf("p1")
	require.Len(t, movements, 1)
	m := movements[0]
	assert.Equal(t, entity.MovementTypeEntrada, m.Type)
	assert.Equal(t, int64(15), m.Quantity)
	assert.Equal(t, int64(20), m.PreviousStock)
	assert.Equal(t, int64(35), m.NewStock)
	assert.Equal(t, "compra", m.Reason)
	assert.Equal(t, "u1", m.UserID)
	assert.Equal(t, entity.ReferenceTypeManual, m.ReferenceType,
		"sem reference_type explícito assume manual")
}

// Caso 2: saida subtrai quando há saldo suficiente.
func TestAdjust_SaidaSubtraiSaldo(t *testing.T) {
	uc, store := newEngine(newProduct("p1", 20))

	result, err := uc.Adjust(context.Background(), inventory.AdjustmentInput{
		ProductID: "p1",
		Type:      entity.MovementTypeSaida,
		Quantity:  15,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.NewStock)
	assert.Equal(t, int64(5), store.stockOf("p1"))
	movements := store.movementsOf("p1")
	require.Len(t, movements, 1)
	assert.Equal(t, entity.MovementTypeSaida, movements[0].Type)
	assert.Equal(t, int64(15), movements[0].Quantity)
}

// Caso 3: saida maior que o saldo falha e nada persiste (atomicidade).
func TestAdjust_SaidaInsuficienteNaoMuda(t *testing.T) {
	uc, store := newEngine(newProduct("p1", 20))

	_, err := uc.Adjust(context.Background(), inventory.AdjustmentInput{
		ProductID: "p1",
		Type:      entity.MovementTypeSaida,
		Quantity:  25,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(20), store.stockOf("p1"), "saldo deve permanecer intacto")
	assert.Empty(t, store.movementsOf("p1"), "nenhum lançamento deve existir")
}

// Caso 4: ajuste define o nível absoluto; o ledger registra o delta
// direcional (entrada quando sobe, saida quando desce).
func TestAdjust_AjusteNormalizaDirecao(t *testing.T) {
	uc, store := newEngine(newProduct("p1", 20))

	// Para cima: 20 -> 32 vira entrada de 12
	result, err := uc.Adjust(context.Background(), inventory.AdjustmentInput{
		ProductID: "p1",
		Type:      entity.MovementTypeAjuste,
		Quantity:  32,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(32), result.NewStock)

	// Para baixo: 32 -> 7 vira saida de 25
	result, err = uc.Adjust(context.Background(), inventory.AdjustmentInput{
		ProductID: "p1",
		Type:      entity.MovementTypeAjuste,
		Quantity:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.NewStock)

	movements := store.movementsOf("p1")
	require.Len(t, movements, 2)
	assert.Equal(t, entity.MovementTypeEntrada, movements[0].Type)
	assert.Equal(t, int64(12), movements[0].Quantity)
	assert.Equal(t, entity.MovementTypeSaida, movements[1].Type)
	assert.Equal(t, int64(25), movements[1].Quantity)
}

// Caso 5: ajuste para o nível vigente é no-op: sem delta, sem lançamento.
func TestAdjust_AjusteSemDeltaNaoGravaLancamento(t *testing.T) {
	uc, store := newEngine(newProduct("p1", 20))

	result, err := uc.Adjust(context.Background(), inventory.AdjustmentInput{
		ProductID: "p1",
		Type:      entity.MovementTypeAjuste,
		Quantity:  20,
	})
	require.NoError(t, err)

	assert.Empty(t, result.MovementID)
	assert.Equal(t, result.PreviousStock, result.NewStock)
	assert.Empty(t, store.movementsOf("p1"))
}

// Caso 6: ajuste para zero é válido (zerar o estoque).
func TestAdjust_AjusteParaZero(t *testing.T) {
	uc, store := newEngine(newProduct("p1", 5))

	result, err := uc.Adjust(context.Background(), inventory.AdjustmentInput{
		ProductID: "p1",
		Type:      entity.MovementTypeAjuste,
		Quantity:  0,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.NewStock)
	movements := store.movementsOf("p1")
	require.Len(t, movements, 1)
	assert.Equal(t, entity.MovementTypeSaida, movements[0].Type)
	assert.Equal(t, int64(5), movements[0].Quantity)
}

// Casos de validação de entrada.
func TestAdjust_Validacao(t *testing.T) {
	uc, store := newEngine(newProduct("p1", 20))

	_, err := uc.Adjust(context.Background(), inventory.AdjustmentInput{
		ProductID: "p1", Type: "transferencia", Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAdjustmentType)

	_, err = uc.Adjust(context.Background(), inventory.AdjustmentInput{
		ProductID: "p1", Type: entity.MovementTypeEntrada, Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.Adjust(context.Background(), inventory.AdjustmentInput{
		ProductID: "p1", Type: entity.MovementTypeSaida, Quantity: -3,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.Adjust(context.Background(), inventory.AdjustmentInput{
		ProductID: "p1", Type: entity.MovementTypeAjuste, Quantity: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	assert.Equal(t, int64(20), store.stockOf("p1"))
	assert.Empty(t, store.movementsOf("p1"))
}

// Produto inexistente ou inativo falha sem mutação.
func TestAdjust_ProdutoInexistenteOuInativo(t *testing.T) {
	inativo := newProduct("p2", 10)
	inativo.Status = entity.ProductStatusInativo
	uc, _ := newEngine(newProduct("p1", 20), inativo)

	_, err := uc.Adjust(context.Background(), inventory.AdjustmentInput{
		ProductID: "nao-existe", Type: entity.MovementTypeEntrada, Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = uc.Adjust(context.Background(), inventory.AdjustmentInput{
		ProductID: "p2", Type: entity.MovementTypeEntrada, Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// Invariante do ledger: após uma sequência de ajustes bem-sucedidos, o
// saldo é o inicial mais a soma dos deltas com sinal dos lançamentos, e
// a corrente previous_stock/new_stock é contígua.
func TestAdjust_InvarianteDoLedger(t *testing.T) {
	const initial = int64(50)
	uc, store := newEngine(newProduct("p1", initial))
	ctx := context.Background()

	steps := []inventory.AdjustmentInput{
		{ProductID: "p1", Type: entity.MovementTypeEntrada, Quantity: 30},
		{ProductID: "p1", Type: entity.MovementTypeSaida, Quantity: 12},
		{ProductID: "p1", Type: entity.MovementTypeAjuste, Quantity: 100},
		{ProductID: "p1", Type: entity.MovementTypeSaida, Quantity: 40},
		{ProductID: "p1", Type: entity.MovementTypeAjuste, Quantity: 60},
	}
	for _, in := range steps {
		_, err := uc.Adjust(ctx, in)
		require.NoError(t, err)
	}

	movements := store.movementsOf("p1")
	var sum int64
	for i, m := range movements {
		sum += m.SignedDelta()
		if i > 0 {
			assert.Equal(t, movements[i-1].NewStock, m.PreviousStock,
				"new_stock do lançamento n deve ser previous_stock do n+1")
		}
	}
	assert.Equal(t, initial+sum, store.stockOf("p1"))
	assert.Equal(t, int64(60), store.stockOf("p1"))
}

// Serialização: duas entradas concorrentes no mesmo produto nunca se
// sobrescrevem — o resultado é S + Q1 + Q2 com exatamente dois lançamentos.
func TestAdjust_EntradasConcorrentesSerializam(t *testing.T) {
	const initial = int64(100)
	uc, store := newEngine(newProduct("p1", initial))

	quantities := []int64{7, 13}
	var wg sync.WaitGroup
	for _, q := range quantities {
		wg.Add(1)
		go func(q int64) {
			defer wg.Done()
			_, err := uc.Adjust(context.Background(), inventory.AdjustmentInput{
				ProductID: "p1",
				Type:      entity.MovementTypeEntrada,
				Quantity:  q,
			})
			assert.NoError(t, err)
		}(q)
	}
	wg.Wait()

	assert.Equal(t, initial+7+13, store.stockOf("p1"))
	movements := store.movementsOf("p1")
	require.Len(t, movements, 2)
	// A corrente deve ser contígua independentemente da ordem de chegada
	assert.Equal(t, movements[0].NewStock, movements[1].PreviousStock)
}
