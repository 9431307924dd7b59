package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trendai/demand-insights-api/internal/domain"
	analyzingmocks "github.com/trendai/demand-insights-api/internal/usecases/analyzing/mocks"
)

func TestGetMetricsOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := analyzingmocks.NewMockAnalyzer(ctrl)

	service.EXPECT().MetricsOverview(gomock.Any()).Return(&domain.MetricsOverview{
		Source:    domain.SourceFallback,
		StockRisk: "3 Products",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/metrics-overview", nil)
	rec := httptest.NewRecorder()

	GetMetricsOverview(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.MetricsOverview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.SourceFallback, body.Source)
	assert.Equal(t, "3 Products", body.StockRisk)
}

func TestGetDemandForecast(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(service *analyzingmocks.MockAnalyzer)
		wantStatus int
	}{
		{
			name:  "Sem parâmetros usa o período padrão",
			query: "",
			setup: func(service *analyzingmocks.MockAnalyzer) {
				service.EXPECT().DemandForecast(gomock.Any(), nil).Return(&domain.ForecastSeries{
					Source: domain.SourceFallback,
					Period: "30d",
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "Período predefinido é repassado ao serviço",
			query: "?period=90d",
			setup: func(service *analyzingmocks.MockAnalyzer) {
				service.EXPECT().
					DemandForecast(gomock.Any(), &domain.ForecastPeriod{ID: "90d"}).
					Return(&domain.ForecastSeries{Source: domain.SourceLive, Period: "90d"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "Período custom com days válido",
			query: "?period=custom&days=45",
			setup: func(service *analyzingmocks.MockAnalyzer) {
				service.EXPECT().
					DemandForecast(gomock.Any(), &domain.ForecastPeriod{ID: "custom", Days: 45}).
					Return(&domain.ForecastSeries{Source: domain.SourceLive, Period: "custom"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Período custom sem days é rejeitado",
			query:      "?period=custom",
			setup:      func(service *analyzingmocks.MockAnalyzer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Days negativo é rejeitado",
			query:      "?period=custom&days=-5",
			setup:      func(service *analyzingmocks.MockAnalyzer) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := analyzingmocks.NewMockAnalyzer(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/demand-forecast"+tt.query, nil)
			rec := httptest.NewRecorder()

			GetDemandForecast(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetExternalSignals(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := analyzingmocks.NewMockAnalyzer(ctrl)

	service.EXPECT().ExternalSignals(gomock.Any()).Return([]*domain.ExternalSignal{
		{Date: "Jan 15", Type: "weather", Strength: 8.5},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/external-signals", nil)
	rec := httptest.NewRecorder()

	GetExternalSignals(service).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Signals []*domain.ExternalSignal `json:"signals"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Signals, 1)
	assert.Equal(t, "weather", body.Signals[0].Type)
}

func TestGetMetrics(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(service *analyzingmocks.MockAnalyzer)
		wantStatus int
	}{
		{
			name:  "Sem parâmetro usa janela de 24 horas",
			query: "",
			setup: func(service *analyzingmocks.MockAnalyzer) {
				service.EXPECT().Metrics(gomock.Any(), 24).Return(&domain.Metrics{
					Source:       domain.SourceFallback,
					Period:       "24h",
					TotalRevenue: 1500,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "Janela customizada",
			query: "?hours=168",
			setup: func(service *analyzingmocks.MockAnalyzer) {
				service.EXPECT().Metrics(gomock.Any(), 168).Return(&domain.Metrics{
					Source: domain.SourceLive,
					Period: "168h",
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Horas inválidas são rejeitadas",
			query:      "?hours=abc",
			setup:      func(service *analyzingmocks.MockAnalyzer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Horas negativas são rejeitadas",
			query:      "?hours=-1",
			setup:      func(service *analyzingmocks.MockAnalyzer) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := analyzingmocks.NewMockAnalyzer(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodGet, "/v1/metrics"+tt.query, nil)
			rec := httptest.NewRecorder()

			GetMetrics(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
