package domain

import "errors"

// Erros de domínio (sem dependências externas).
// O motor de ajuste devolve sempre um destes sentinelas; contexto
// adicional (id do produto, quantidade) é anexado via fmt.Errorf("...: %w").
var (
	ErrProductNotFound       = errors.New("produto não encontrado ou inativo")
	ErrInvalidAdjustmentType = errors.New("tipo de ajuste inválido")
	ErrInvalidQuantity       = errors.New("quantidade inválida")
	ErrInsufficientStock     = errors.New("estoque insuficiente para saída")
	ErrEmptyStockCount       = errors.New("contagem de estoque sem itens")
)
