package analyzing

import (
	"context"

	"github.com/trendai/demand-insights-api/internal/domain"
)

// Analyzer define a interface de agregação de métricas do dashboard. Todas
// as respostas carregam a origem dos dados (live ou fallback); falha de
// conectividade com o armazenamento nunca vira erro nesta camada.
type Analyzer interface {
	// Metrics calcula receita, pedidos, ticket médio e quantidade sobre a
	// janela das últimas N horas
	Metrics(ctx context.Context, hours int) (*domain.Metrics, error)

	// MetricsOverview monta os cartões de destaque do dashboard
	MetricsOverview(ctx context.Context) (*domain.MetricsOverview, error)

	// DemandForecast produz a série histórica semanal seguida dos pontos
	// de previsão paramétrica
	DemandForecast(ctx context.Context, period *domain.ForecastPeriod) (*domain.ForecastSeries, error)

	// SeasonalTrends agrega a demanda por mês do ano corrente e aplica os
	// multiplicadores sazonais
	SeasonalTrends(ctx context.Context) (*domain.SeasonalTrendsResponse, error)

	// CategoryPerformance agrupa receita por categoria, top 8 em ordem
	// decrescente
	CategoryPerformance(ctx context.Context) (*domain.CategoryPerformanceResponse, error)

	// ProductPerformance ranqueia os produtos por trend score com vendas e
	// receita acumuladas
	ProductPerformance(ctx context.Context, limit int) (*domain.ProductPerformanceResponse, error)

	// ActionableInsights deriva recomendações do estado do catálogo
	ActionableInsights(ctx context.Context) (*domain.InsightsResponse, error)

	// ExternalSignals retorna a lista curada de sinais externos
	ExternalSignals(ctx context.Context) []*domain.ExternalSignal
}
