package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendai/demand-insights-api/infrastructure/database/mongodb"
	"github.com/trendai/demand-insights-api/internal/config"
	"github.com/trendai/demand-insights-api/internal/dataset"
	"github.com/trendai/demand-insights-api/internal/domain"
)

// fallbackConnector devolve um conector que nunca abre conexão real,
// forçando todos os repositórios para o caminho em memória
func fallbackConnector() *mongodb.Connector {
	return mongodb.NewConnector(config.Database{ForceFallback: true})
}

func TestProductRepository_Fallback(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore(dataset.Generate(42))
	repo := NewProductRepository(fallbackConnector(), mem)

	t.Run("Listagem pagina e marca a origem como fallback", func(t *testing.T) {
		page, err := repo.ListProducts(ctx, domain.ProductFilters{Limit: 10})
		require.NoError(t, err)

		assert.Equal(t, domain.SourceFallback, page.Source)
		assert.Len(t, page.Products, 10)
		assert.Equal(t, 500, page.Total)
	})

	t.Run("Filtro por categoria retorna apenas a categoria pedida", func(t *testing.T) {
		page, err := repo.ListProducts(ctx, domain.ProductFilters{Category: "Electronics", Limit: 500})
		require.NoError(t, err)

		require.NotEmpty(t, page.Products)
		for _, p := range page.Products {
			assert.Equal(t, "Electronics", p.Category)
		}
	})

	t.Run("Filtro de estoque baixo usa o ponto de reposição", func(t *testing.T) {
		products, source, err := repo.LowStockProducts(ctx)
		require.NoError(t, err)

		assert.Equal(t, domain.SourceFallback, source)
		for _, p := range products {
			assert.LessOrEqual(t, p.CurrentStock, p.ReorderPoint)
		}
	})

	t.Run("Criação, atualização e remoção mutam o estado em memória", func(t *testing.T) {
		source, err := repo.CreateProduct(ctx, &domain.Product{
			ID:           "TEST001",
			Name:         "Produto de Teste",
			Category:     "Electronics",
			Price:        99.90,
			CurrentStock: 10,
			ReorderPoint: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.SourceFallback, source)

		newPrice := 149.90
		updated, _, err := repo.UpdateProduct(ctx, &domain.UpdateProductRequest{
			ID:    "TEST001",
			Price: &newPrice,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, 149.90, updated.Price)
		assert.NotNil(t, updated.UpdatedAt)

		deleted, _, err := repo.DeleteProduct(ctx, "TEST001")
		require.NoError(t, err)
		assert.True(t, deleted)

		product, _, err := repo.GetProductByID(ctx, "TEST001")
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("Produto inexistente retorna nil sem erro", func(t *testing.T) {
		product, source, err := repo.GetProductByID(ctx, "NOPE999")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceFallback, source)
		assert.Nil(t, product)
	})
}

func TestSaleRepository_Fallback(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore(dataset.Generate(42))
	repo := NewSaleRepository(fallbackConnector(), mem)

	t.Run("Listagem aplica filtros de canal e região", func(t *testing.T) {
		page, err := repo.ListSales(ctx, domain.SaleFilters{
			Channel: "online",
			Region:  "Europe",
			Limit:   100,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.SourceFallback, page.Source)
		require.NotEmpty(t, page.Sales)
		for _, s := range page.Sales {
			assert.Equal(t, domain.ChannelOnline, s.Channel)
			assert.Equal(t, "Europe", s.Region)
		}
	})

	t.Run("SalesSince respeita o recorte temporal", func(t *testing.T) {
		since := time.Now().UTC().AddDate(0, 0, -7)
		sales, source, err := repo.SalesSince(ctx, since)
		require.NoError(t, err)

		assert.Equal(t, domain.SourceFallback, source)
		require.NotEmpty(t, sales)
		for _, s := range sales {
			assert.False(t, s.Date.Before(since))
		}
	})

	t.Run("Venda criada aparece na listagem", func(t *testing.T) {
		sale := &domain.Sale{
			ID:        "SALETEST01",
			ProductID: "ELEC001",
			Quantity:  3,
			Revenue:   269.97,
			Channel:   domain.ChannelRetail,
			Region:    "Latin America",
			Date:      time.Now().UTC(),
		}

		source, err := repo.CreateSale(ctx, sale)
		require.NoError(t, err)
		assert.Equal(t, domain.SourceFallback, source)

		page, err := repo.ListSales(ctx, domain.SaleFilters{ProductID: "ELEC001", Limit: 20000})
		require.NoError(t, err)

		var found bool
		for _, s := range page.Sales {
			if s.ID == "SALETEST01" {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestUserRepository_Fallback(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore(dataset.Generate(42))
	repo := NewUserRepository(fallbackConnector(), mem)

	t.Run("Usuários padrão existem no modo fallback", func(t *testing.T) {
		user, err := repo.GetUserByEmail(ctx, "admin@trendai.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("Busca é insensível a maiúsculas", func(t *testing.T) {
		user, err := repo.GetUserByEmail(ctx, "Admin@TrendAI.com")
		require.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("Criação seguida de atualização preserva o registro", func(t *testing.T) {
		err := repo.CreateUser(ctx, &domain.User{
			Email:        "nova@trendai.com",
			Name:         "Nova Analista",
			Role:         domain.RoleUser,
			PasswordHash: "hash",
			IsActive:     true,
			CreatedAt:    time.Now().UTC(),
		})
		require.NoError(t, err)

		user, err := repo.GetUserByEmail(ctx, "nova@trendai.com")
		require.NoError(t, err)
		require.NotNil(t, user)

		user.IsActive = false
		require.NoError(t, repo.UpdateUser(ctx, user))

		updated, err := repo.GetUserByEmail(ctx, "nova@trendai.com")
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
	})

	t.Run("Listagem pagina os usuários", func(t *testing.T) {
		page, err := repo.ListUsers(ctx, 1, 0)
		require.NoError(t, err)

		assert.Len(t, page.Users, 1)
		assert.GreaterOrEqual(t, page.Total, 2)
	})
}

func TestSnapshotRepository_FallbackIndisponivel(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepository(fallbackConnector())

	err := repo.SaveSnapshot(ctx, &domain.Metrics{Period: "1h"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = repo.LatestSnapshots(ctx, 10)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
