package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trendai/demand-insights-api/infrastructure/repository/mocks"
	"github.com/trendai/demand-insights-api/internal/domain"
)

func withRouteParams(r *http.Request, params httprouter.Params) *http.Request {
	ctx := context.WithValue(r.Context(), httprouter.ParamsKey, params)
	return r.WithContext(ctx)
}

func TestListProducts(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(repo *mocks.MockProductRepository)
		wantStatus int
	}{
		{
			name:  "Listagem com filtro de categoria",
			query: "?category=Electronics&limit=10",
			setup: func(repo *mocks.MockProductRepository) {
				repo.EXPECT().
					ListProducts(gomock.Any(), domain.ProductFilters{Category: "Electronics", Limit: 10}).
					Return(&domain.ProductPage{
						Source:   domain.SourceFallback,
						Products: []*domain.Product{{ID: "ELEC001", Category: "Electronics"}},
						Total:    1,
						Limit:    10,
					}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "Filtro de estoque baixo",
			query: "?low_stock=true",
			setup: func(repo *mocks.MockProductRepository) {
				repo.EXPECT().
					ListProducts(gomock.Any(), domain.ProductFilters{LowStock: true}).
					Return(&domain.ProductPage{Source: domain.SourceLive}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Limit inválido é rejeitado",
			query:      "?limit=zero",
			setup:      func(repo *mocks.MockProductRepository) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockProductRepository(ctrl)
			tt.setup(repo)

			req := httptest.NewRequest(http.MethodGet, "/v1/products"+tt.query, nil)
			rec := httptest.NewRecorder()

			ListProducts(repo).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetProduct(t *testing.T) {
	tests := []struct {
		name       string
		productID  string
		setup      func(repo *mocks.MockProductRepository)
		wantStatus int
	}{
		{
			name:      "Produto encontrado",
			productID: "ELEC001",
			setup: func(repo *mocks.MockProductRepository) {
				repo.EXPECT().
					GetProductByID(gomock.Any(), "ELEC001").
					Return(&domain.Product{ID: "ELEC001"}, domain.SourceFallback, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "Produto inexistente retorna 404",
			productID: "NOPE999",
			setup: func(repo *mocks.MockProductRepository) {
				repo.EXPECT().
					GetProductByID(gomock.Any(), "NOPE999").
					Return(nil, domain.SourceFallback, nil)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockProductRepository(ctrl)
			tt.setup(repo)

			req := httptest.NewRequest(http.MethodGet, "/v1/products/"+tt.productID, nil)
			req = withRouteParams(req, httprouter.Params{{Key: "id", Value: tt.productID}})
			rec := httptest.NewRecorder()

			GetProduct(repo).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCreateProduct(t *testing.T) {
	valid := domain.Product{
		ID:           "TEST001",
		Name:         "Produto de Teste",
		Category:     "Electronics",
		Price:        99.90,
		CurrentStock: 100,
		ReorderPoint: 20,
		TrendScore:   7.5,
	}

	tests := []struct {
		name       string
		payload    any
		setup      func(repo *mocks.MockProductRepository)
		wantStatus int
	}{
		{
			name:    "Produto válido é criado",
			payload: valid,
			setup: func(repo *mocks.MockProductRepository) {
				repo.EXPECT().
					GetProductByID(gomock.Any(), "TEST001").
					Return(nil, domain.SourceFallback, nil)
				repo.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					Return(domain.SourceFallback, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Produto sem ID é rejeitado",
			payload:    domain.Product{Name: "Sem ID", Category: "Electronics"},
			setup:      func(repo *mocks.MockProductRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Trend score fora do intervalo é rejeitado",
			payload:    domain.Product{ID: "X", Name: "X", Category: "X", TrendScore: 11},
			setup:      func(repo *mocks.MockProductRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "ID duplicado retorna conflito",
			payload: valid,
			setup: func(repo *mocks.MockProductRepository) {
				repo.EXPECT().
					GetProductByID(gomock.Any(), "TEST001").
					Return(&domain.Product{ID: "TEST001"}, domain.SourceFallback, nil)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockProductRepository(ctrl)
			tt.setup(repo)

			body, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			CreateProduct(repo).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteProduct(t *testing.T) {
	tests := []struct {
		name       string
		productID  string
		setup      func(repo *mocks.MockProductRepository)
		wantStatus int
	}{
		{
			name:      "Produto removido",
			productID: "ELEC001",
			setup: func(repo *mocks.MockProductRepository) {
				repo.EXPECT().
					DeleteProduct(gomock.Any(), "ELEC001").
					Return(true, domain.SourceFallback, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "Produto inexistente retorna 404",
			productID: "NOPE999",
			setup: func(repo *mocks.MockProductRepository) {
				repo.EXPECT().
					DeleteProduct(gomock.Any(), "NOPE999").
					Return(false, domain.SourceFallback, nil)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockProductRepository(ctrl)
			tt.setup(repo)

			req := httptest.NewRequest(http.MethodDelete, "/v1/products/"+tt.productID, nil)
			req = withRouteParams(req, httprouter.Params{{Key: "id", Value: tt.productID}})
			rec := httptest.NewRecorder()

			DeleteProduct(repo).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCreateSale(t *testing.T) {
	tests := []struct {
		name       string
		payload    domain.Sale
		setup      func(repo *mocks.MockSaleRepository)
		wantStatus int
	}{
		{
			name:    "Venda válida recebe ID e data",
			payload: domain.Sale{ProductID: "ELEC001", Quantity: 3, Revenue: 269.97, Channel: domain.ChannelRetail},
			setup: func(repo *mocks.MockSaleRepository) {
				repo.EXPECT().
					CreateSale(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sale *domain.Sale) (domain.DataSource, error) {
						assert.NotEmpty(t, sale.ID)
						assert.False(t, sale.Date.IsZero())
						return domain.SourceFallback, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Venda sem produto é rejeitada",
			payload:    domain.Sale{Quantity: 1},
			setup:      func(repo *mocks.MockSaleRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Quantidade zero é rejeitada",
			payload:    domain.Sale{ProductID: "ELEC001", Quantity: 0},
			setup:      func(repo *mocks.MockSaleRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Canal desconhecido é rejeitado",
			payload:    domain.Sale{ProductID: "ELEC001", Quantity: 1, Channel: "carrier-pigeon"},
			setup:      func(repo *mocks.MockSaleRepository) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockSaleRepository(ctrl)
			tt.setup(repo)

			body, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/v1/sales", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			CreateSale(repo).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
