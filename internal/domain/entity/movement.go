package entity

import "time"

// Tipos de movimentação de estoque. `ajuste` só existe como tipo de
// requisição: o motor normaliza para entrada/saida antes de persistir,
// de modo que o ledger registra sempre uma mudança direcional.
const (
	MovementTypeEntrada = "entrada"
	MovementTypeSaida   = "saida"
	MovementTypeAjuste  = "ajuste"
)

// Origens de movimentação (reference_type).
const (
	ReferenceTypeManual     = "manual"
	ReferenceTypeOrder      = "order"
	ReferenceTypeStockCount = "stock_count"
)

// Movement é um lançamento imutável do ledger de estoque: registra uma
// única mudança de quantidade e sua causa. Nunca é atualizado nem
// removido; NewStock do lançamento n é igual a PreviousStock do n+1
// para o mesmo produto (garantido por construção, com bloqueio de fila).
type Movement struct {
	ID            string
	ProductID     string
	Type          string // entrada ou saida (após normalização)
	Quantity      int64  // magnitude do delta efetivo, sempre positiva
	PreviousStock int64
	NewStock      int64
	Reason        string
	ReferenceID   string // vazio = NULL; liga ao evento de negócio origem
	ReferenceType string
	UserID        string // vazio = NULL
	CreatedAt     time.Time
}

// SignedDelta devolve o delta efetivo com sinal (positivo para entrada).
func (m *Movement) SignedDelta() int64 {
	if m.Type == MovementTypeSaida {
		return -m.Quantity
	}
	return m.Quantity
}
