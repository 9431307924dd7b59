package analyzing

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trendai/demand-insights-api/infrastructure/repository/mocks"
	"github.com/trendai/demand-insights-api/internal/domain"
)

func newTestService(t *testing.T) (*Service, *mocks.MockProductRepository, *mocks.MockSaleRepository) {
	ctrl := gomock.NewController(t)
	productRepo := mocks.NewMockProductRepository(ctrl)
	saleRepo := mocks.NewMockSaleRepository(ctrl)

	service := NewService(productRepo, saleRepo).WithRand(rand.New(rand.NewSource(1)))
	return service, productRepo, saleRepo
}

func TestService_Metrics(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		sales    []*domain.Sale
		source   domain.DataSource
		validate func(t *testing.T, m *domain.Metrics)
	}{
		{
			name: "Duas vendas somam receita, pedidos e quantidade",
			sales: []*domain.Sale{
				{Quantity: 1, Revenue: 100},
				{Quantity: 2, Revenue: 50},
			},
			source: domain.SourceLive,
			validate: func(t *testing.T, m *domain.Metrics) {
				assert.Equal(t, 150.0, m.TotalRevenue)
				assert.Equal(t, 2, m.TotalOrders)
				assert.Equal(t, 75.0, m.AvgOrderValue)
				assert.Equal(t, 3, m.TotalQuantity)
				assert.Equal(t, domain.SourceLive, m.Source)
			},
		},
		{
			name:   "Janela vazia zera os agregados sem dividir por zero",
			sales:  nil,
			source: domain.SourceFallback,
			validate: func(t *testing.T, m *domain.Metrics) {
				assert.Equal(t, 0.0, m.TotalRevenue)
				assert.Equal(t, 0, m.TotalOrders)
				assert.Equal(t, 0.0, m.AvgOrderValue)
				assert.Equal(t, 0, m.TotalQuantity)
				assert.Equal(t, domain.SourceFallback, m.Source)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, saleRepo := newTestService(t)

			saleRepo.EXPECT().
				SalesSince(gomock.Any(), gomock.Any()).
				Return(tt.sales, tt.source, nil)

			metrics, err := service.Metrics(ctx, 24)
			require.NoError(t, err)

			tt.validate(t, metrics)
			assert.Equal(t, "24h", metrics.Period)

			// Taxa de conversão é placeholder dentro da faixa documentada
			assert.GreaterOrEqual(t, metrics.ConversionRate, 2.5)
			assert.LessOrEqual(t, metrics.ConversionRate, 4.5)
		})
	}
}

func TestService_MetricsOverview(t *testing.T) {
	ctx := context.Background()
	service, productRepo, saleRepo := newTestService(t)

	productRepo.EXPECT().
		LowStockProducts(gomock.Any()).
		Return([]*domain.Product{{ID: "A"}, {ID: "B"}, {ID: "C"}}, domain.SourceLive, nil)

	saleRepo.EXPECT().
		SalesSince(gomock.Any(), gomock.Any()).
		Return([]*domain.Sale{{Revenue: 80000}, {Revenue: 45000}}, domain.SourceLive, nil)

	overview, err := service.MetricsOverview(ctx)
	require.NoError(t, err)

	assert.Equal(t, "3 Products", overview.StockRisk)
	assert.Equal(t, "$125K", overview.RevenueImpact)
	assert.Equal(t, "87.3%", overview.ForecastAccuracy)
	assert.Equal(t, "15,420", overview.PredictedDemand)
	assert.Equal(t, domain.SourceLive, overview.Source)
}

func TestService_DemandForecast_Fallback(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name               string
		period             *domain.ForecastPeriod
		expectedHistorical int
		expectedForecast   int
	}{
		{name: "Período padrão usa 8 históricos e 6 previsões", period: nil, expectedHistorical: 8, expectedForecast: 6},
		{name: "Período 7d usa 7 e 7", period: &domain.ForecastPeriod{ID: "7d"}, expectedHistorical: 7, expectedForecast: 7},
		{name: "Período 90d usa 12 e 8", period: &domain.ForecastPeriod{ID: "90d"}, expectedHistorical: 12, expectedForecast: 8},
		{name: "Período 1y usa 16 e 12", period: &domain.ForecastPeriod{ID: "1y"}, expectedHistorical: 16, expectedForecast: 12},
		{name: "Período custom divide os dias com limites", period: &domain.ForecastPeriod{ID: "custom", Days: 200}, expectedHistorical: 20, expectedForecast: 16},
		{name: "Período custom curto respeita o mínimo", period: &domain.ForecastPeriod{ID: "custom", Days: 10}, expectedHistorical: 4, expectedForecast: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, saleRepo := newTestService(t)

			saleRepo.EXPECT().
				SalesSince(gomock.Any(), gomock.Any()).
				Return(nil, domain.SourceFallback, nil)

			series, err := service.DemandForecast(ctx, tt.period)
			require.NoError(t, err)

			assert.Equal(t, domain.SourceFallback, series.Source)
			// +1 pelo ponto de transição da semana corrente
			require.Len(t, series.Points, tt.expectedHistorical+1+tt.expectedForecast)

			for i, point := range series.Points {
				if i <= tt.expectedHistorical {
					require.NotNil(t, point.Historical, "ponto %d deveria ser histórico", i)
					assert.Nil(t, point.Forecast)
					assert.Nil(t, point.Confidence)
					assert.GreaterOrEqual(t, *point.Historical, 1500.0)
					assert.Less(t, *point.Historical, 2500.0)
				} else {
					require.NotNil(t, point.Forecast, "ponto %d deveria ser previsão", i)
					assert.Nil(t, point.Historical)
					require.NotNil(t, point.Confidence)
					assert.Equal(t, math.Round(*point.Forecast*1.25), point.Confidence.Upper)
					assert.Equal(t, math.Round(*point.Forecast*0.8), point.Confidence.Lower)
				}
			}
		})
	}
}

func TestService_DemandForecast_CurvaParametrica(t *testing.T) {
	ctx := context.Background()
	service, _, saleRepo := newTestService(t)

	// Todas as vendas numa única semana conhecida, modo live
	now := time.Now().UTC()
	sales := []*domain.Sale{
		{Quantity: 2000, Date: now.AddDate(0, 0, -8)},
	}

	saleRepo.EXPECT().
		SalesSince(gomock.Any(), gomock.Any()).
		Return(sales, domain.SourceLive, nil)

	series, err := service.DemandForecast(ctx, nil)
	require.NoError(t, err)
	require.Len(t, series.Points, 8+1+6)

	var sum float64
	for _, p := range series.Points[:9] {
		require.NotNil(t, p.Historical)
		sum += *p.Historical
	}
	avg := sum / 9

	firstForecast := series.Points[9]
	require.NotNil(t, firstForecast.Forecast)

	expected := math.Round(avg * 1.08 * (1 + 0.2*math.Sin(math.Pi/12)))
	assert.Equal(t, expected, *firstForecast.Forecast)
}

func TestService_SeasonalTrends(t *testing.T) {
	ctx := context.Background()
	service, _, saleRepo := newTestService(t)

	year := time.Now().UTC().Year()
	sales := []*domain.Sale{
		{Quantity: 100, Date: time.Date(year, time.December, 10, 0, 0, 0, 0, time.UTC)},
		{Quantity: 200, Date: time.Date(year, time.December, 12, 0, 0, 0, 0, time.UTC)},
		{Quantity: 50, Date: time.Date(year, time.March, 5, 0, 0, 0, 0, time.UTC)},
	}

	saleRepo.EXPECT().
		SalesSince(gomock.Any(), gomock.Any()).
		Return(sales, domain.SourceLive, nil)

	trends, err := service.SeasonalTrends(ctx)
	require.NoError(t, err)
	require.Len(t, trends.Months, 12)

	byMonth := make(map[string]*domain.SeasonalTrend)
	for _, m := range trends.Months {
		byMonth[m.Month] = m
	}

	// Dezembro aplica o multiplicador 2.1
	assert.Equal(t, 300, byMonth["Dec"].Demand)
	assert.Equal(t, 630, byMonth["Dec"].Forecast)

	// Março não tem multiplicador
	assert.Equal(t, 50, byMonth["Mar"].Demand)
	assert.Equal(t, 50, byMonth["Mar"].Forecast)

	// Meses sem venda aparecem zerados
	assert.Equal(t, 0, byMonth["Jul"].Demand)

	for _, m := range trends.Months {
		assert.GreaterOrEqual(t, m.Confidence, 0.85)
		assert.LessOrEqual(t, m.Confidence, 0.95)
	}
}

func TestService_CategoryPerformance(t *testing.T) {
	ctx := context.Background()
	service, productRepo, saleRepo := newTestService(t)

	products := []*domain.Product{
		{ID: "E1", Category: "Electronics"},
		{ID: "E2", Category: "Electronics"},
		{ID: "F1", Category: "Fashion"},
	}
	sales := []*domain.Sale{
		{ProductID: "E1", Revenue: 1000},
		{ProductID: "E2", Revenue: 500},
		{ProductID: "F1", Revenue: 2000},
		{ProductID: "GHOST", Revenue: 999}, // produto desconhecido é ignorado
	}

	productRepo.EXPECT().AllProducts(gomock.Any()).Return(products, domain.SourceLive, nil)
	saleRepo.EXPECT().SalesSince(gomock.Any(), gomock.Any()).Return(sales, domain.SourceLive, nil)

	perf, err := service.CategoryPerformance(ctx)
	require.NoError(t, err)
	require.Len(t, perf.Categories, 2)

	// Ordenado por receita decrescente
	assert.Equal(t, "Fashion", perf.Categories[0].Category)
	assert.Equal(t, 2000.0, perf.Categories[0].Revenue)
	assert.Equal(t, 1, perf.Categories[0].Products)

	assert.Equal(t, "Electronics", perf.Categories[1].Category)
	assert.Equal(t, 1500.0, perf.Categories[1].Revenue)
	assert.Equal(t, 2, perf.Categories[1].Products)

	for _, c := range perf.Categories {
		assert.GreaterOrEqual(t, c.Growth, -10.0)
		assert.LessOrEqual(t, c.Growth, 20.0)
	}
}

func TestService_ProductPerformance(t *testing.T) {
	ctx := context.Background()
	service, productRepo, saleRepo := newTestService(t)

	page := &domain.ProductPage{
		Source: domain.SourceFallback,
		Products: []*domain.Product{
			{ID: "P1", Name: "Alta", TrendScore: 9.0, CurrentStock: 10, ReorderPoint: 20},
			{ID: "P2", Name: "Média", TrendScore: 7.5, CurrentStock: 30, ReorderPoint: 20},
			{ID: "P3", Name: "Baixa", TrendScore: 6.0, CurrentStock: 100, ReorderPoint: 20},
		},
	}
	sales := []*domain.Sale{
		{ProductID: "P1", Quantity: 5, Revenue: 250.4},
		{ProductID: "P1", Quantity: 3, Revenue: 150.3},
	}

	productRepo.EXPECT().ListProducts(gomock.Any(), domain.ProductFilters{Limit: 3}).Return(page, nil)
	saleRepo.EXPECT().SalesSince(gomock.Any(), gomock.Any()).Return(sales, domain.SourceFallback, nil)

	perf, err := service.ProductPerformance(ctx, 3)
	require.NoError(t, err)
	require.Len(t, perf.Products, 3)

	assert.Equal(t, domain.SourceFallback, perf.Source)

	assert.Equal(t, 8, perf.Products[0].Sales)
	assert.Equal(t, 401.0, perf.Products[0].Revenue)
	assert.Equal(t, "up", perf.Products[0].Trend)
	assert.Equal(t, "low", perf.Products[0].StockStatus)

	assert.Equal(t, 0, perf.Products[1].Sales)
	assert.Equal(t, "stable", perf.Products[1].Trend)
	assert.Equal(t, "medium", perf.Products[1].StockStatus)

	assert.Equal(t, "down", perf.Products[2].Trend)
	assert.Equal(t, "high", perf.Products[2].StockStatus)
}

func TestService_ActionableInsights(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		lowStock   []*domain.Product
		topProduct *domain.Product
		validate   func(t *testing.T, insights []*domain.Insight)
	}{
		{
			name:       "Estoque baixo e produto em alta geram dois insights",
			lowStock:   []*domain.Product{{ID: "A"}, {ID: "B"}, {ID: "C"}},
			topProduct: &domain.Product{Name: "Wireless Bluetooth Headphones", TrendScore: 8.5},
			validate: func(t *testing.T, insights []*domain.Insight) {
				require.Len(t, insights, 2)
				assert.Equal(t, "alert", insights[0].Type)
				assert.Equal(t, "high", insights[0].Priority)
				assert.Equal(t, "3 products are below reorder point", insights[0].Description)
				assert.Equal(t, "opportunity", insights[1].Type)
				assert.Contains(t, insights[1].Description, "Wireless Bluetooth Headphones")
			},
		},
		{
			name:       "Sem estoque baixo e tendência fraca não geram insight",
			lowStock:   nil,
			topProduct: &domain.Product{Name: "Produto Comum", TrendScore: 7.2},
			validate: func(t *testing.T, insights []*domain.Insight) {
				assert.Empty(t, insights)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, productRepo, _ := newTestService(t)

			productRepo.EXPECT().
				LowStockProducts(gomock.Any()).
				Return(tt.lowStock, domain.SourceLive, nil)

			productRepo.EXPECT().
				ListProducts(gomock.Any(), domain.ProductFilters{Limit: 1}).
				Return(&domain.ProductPage{Products: []*domain.Product{tt.topProduct}}, nil)

			resp, err := service.ActionableInsights(ctx)
			require.NoError(t, err)

			tt.validate(t, resp.Insights)
		})
	}
}

func TestService_ExternalSignals(t *testing.T) {
	service, _, _ := newTestService(t)

	signals := service.ExternalSignals(context.Background())
	require.Len(t, signals, 5)

	types := make([]string, 0, len(signals))
	for _, s := range signals {
		types = append(types, s.Type)
	}
	assert.Equal(t, []string{"weather", "social", "economic", "competitor", "event"}, types)
}
