package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/estoque-api/internal/application/inventory"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
)

// Um alerta por status não-normal, ordenados por severidade decrescente;
// empates preservam a ordem de entrada.
func TestBuildAlerts_OrdenacaoPorSeveridade(t *testing.T) {
	max := int64(50)
	products := []*entity.Product{
		{ID: "a", Code: "A", Name: "Alfa", Stock: 30, MinStock: 5, MaxStock: nil, Status: entity.ProductStatusAtivo},  // normal
		{ID: "b", Code: "B", Name: "Beta", Stock: 80, MinStock: 5, MaxStock: &max, Status: entity.ProductStatusAtivo}, // overstock
		{ID: "c", Code: "C", Name: "Gama", Stock: 3, MinStock: 5, Status: entity.ProductStatusAtivo},                  // low
		{ID: "d", Code: "D", Name: "Delta", Stock: 0, MinStock: 5, Status: entity.ProductStatusAtivo},                 // out
		{ID: "e", Code: "E", Name: "Épsilon", Stock: 2, MinStock: 5, Status: entity.ProductStatusAtivo},               // low
		{ID: "f", Code: "F", Name: "Zeta", Stock: 0, MinStock: 5, Status: entity.ProductStatusInativo},                // inativo: ignorado
	}

	alerts := inventory.BuildAlerts(products)
	require.Len(t, alerts, 4)

	// critical primeiro, depois warnings na ordem de entrada, depois info
	assert.Equal(t, "d", alerts[0].ProductID)
	assert.Equal(t, inventory.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, "c", alerts[1].ProductID)
	assert.Equal(t, "e", alerts[2].ProductID)
	assert.Equal(t, inventory.SeverityWarning, alerts[1].Severity)
	assert.Equal(t, "b", alerts[3].ProductID)
	assert.Equal(t, inventory.SeverityInfo, alerts[3].Severity)
}

func TestBuildAlerts_ConteudoDosAlertas(t *testing.T) {
	max := int64(10)
	products := []*entity.Product{
		{ID: "x", Code: "X1", Name: "Xis", Stock: 14, MinStock: 2, MaxStock: &max, Status: entity.ProductStatusAtivo},
		{ID: "y", Code: "Y1", Name: "Ípsilon", Stock: 1, MinStock: 3, Status: entity.ProductStatusAtivo},
	}

	alerts := inventory.BuildAlerts(products)
	require.Len(t, alerts, 2)

	low := alerts[0]
	assert.Equal(t, "low_stock", low.Type)
	assert.Equal(t, int64(1), low.CurrentStock)
	assert.Equal(t, int64(3), low.MinStock)
	assert.Contains(t, low.Message, "Estoque baixo: Ípsilon")

	over := alerts[1]
	assert.Equal(t, "overstock", over.Type)
	assert.Equal(t, int64(4), over.ExcessQuantity)
	require.NotNil(t, over.MaxStock)
	assert.Equal(t, int64(10), *over.MaxStock)
	assert.Contains(t, over.Message, "Excesso de estoque: Xis")
}

// Sem produtos fora do normal, a lista é vazia (não nula).
func TestBuildAlerts_SemAlertas(t *testing.T) {
	products := []*entity.Product{
		{ID: "a", Code: "A", Name: "Alfa", Stock: 30, MinStock: 5, Status: entity.ProductStatusAtivo},
	}
	alerts := inventory.BuildAlerts(products)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}
