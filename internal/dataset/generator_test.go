package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/trendai/demand-insights-api/internal/domain"
	"github.com/trendai/demand-insights-api/pkg/utils"
)

func TestGenerate_TamanhosDoDataset(t *testing.T) {
	ds := Generate(42)

	assert.Len(t, ds.Products, 500)
	assert.Len(t, ds.Sales, 8000+2000+100)
	assert.Len(t, ds.Users, 2)
}

func TestGenerate_DeterministicoComMesmaSeed(t *testing.T) {
	a := Generate(7)
	b := Generate(7)

	require.Len(t, b.Products, len(a.Products))
	for i := range a.Products {
		assert.Equal(t, a.Products[i].ID, b.Products[i].ID)
		assert.Equal(t, a.Products[i].Price, b.Products[i].Price)
		assert.Equal(t, a.Products[i].CurrentStock, b.Products[i].CurrentStock)
	}

	require.Len(t, b.Sales, len(a.Sales))
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Sales[i].ProductID, b.Sales[i].ProductID)
		assert.Equal(t, a.Sales[i].Quantity, b.Sales[i].Quantity)
		assert.Equal(t, a.Sales[i].Revenue, b.Sales[i].Revenue)
	}
}

func TestGenerate_ProdutosGerados(t *testing.T) {
	ds := Generate(42)

	tests := []struct {
		name     string
		validate func(t *testing.T)
	}{
		{
			name: "Catálogo base preservado no início da lista",
			validate: func(t *testing.T) {
				assert.Equal(t, "ELEC001", ds.Products[0].ID)
				assert.Equal(t, "Wireless Bluetooth Headphones", ds.Products[0].Name)
				assert.Equal(t, 89.99, ds.Products[0].Price)
			},
		},
		{
			name: "Produtos gerados respeitam as faixas de preço e estoque",
			validate: func(t *testing.T) {
				for _, p := range ds.Products[25:] {
					assert.GreaterOrEqual(t, p.Price, 10.0)
					assert.LessOrEqual(t, p.Price, 210.0)
					assert.GreaterOrEqual(t, p.CurrentStock, 50)
					assert.GreaterOrEqual(t, p.ReorderPoint, 20)
					assert.GreaterOrEqual(t, p.TrendScore, 6.0)
					assert.LessOrEqual(t, p.TrendScore, 10.0)
				}
			},
		},
		{
			name: "Identificadores são únicos",
			validate: func(t *testing.T) {
				seen := make(map[string]bool, len(ds.Products))
				for _, p := range ds.Products {
					assert.False(t, seen[p.ID], "id duplicado: %s", p.ID)
					seen[p.ID] = true
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t)
		})
	}
}

func TestGenerate_VendasDeHojeSempreExistem(t *testing.T) {
	ds := Generate(42)
	today := utils.StartOfDay(time.Now().UTC())

	var todayCount int
	for _, s := range ds.Sales {
		if s.Date.Equal(today) {
			todayCount++
		}
	}

	// As 100 vendas do dia garantem janela corrente não vazia
	assert.GreaterOrEqual(t, todayCount, 100)
}

func TestGenerate_ReceitaConsistenteComPreco(t *testing.T) {
	ds := Generate(42)

	for _, s := range ds.Sales[:200] {
		product := ds.ProductByID(s.ProductID)
		require.NotNil(t, product)
		assert.Equal(t, utils.RoundWithTwoDecimalPlace(float64(s.Quantity)*product.Price), s.Revenue)
	}
}

func TestGenerate_UsuariosPadrao(t *testing.T) {
	ds := Generate(42)

	admin := ds.Users[0]
	assert.Equal(t, "admin@trendai.com", admin.Email)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	user := ds.Users[1]
	assert.Equal(t, "user@trendai.com", user.Email)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("user123")))
}
