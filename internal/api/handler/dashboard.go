package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/trendai/demand-insights-api/internal/domain"
	"github.com/trendai/demand-insights-api/internal/usecases/analyzing"
	"github.com/trendai/demand-insights-api/pkg/log"
)

const defaultPerformanceLimit = 10

// GetMetricsOverview retorna os cartões de destaque do dashboard
func GetMetricsOverview(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		overview, err := service.MetricsOverview(r.Context())
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build metrics overview")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithField("source", overview.Source).Info("dashboard: metrics overview built")

		writeJSON(w, logger, overview)
	})
}

// GetDemandForecast retorna a série histórica e de previsão de demanda.
// period aceita 7d, 30d, 90d, 1y ou custom (com days obrigatório).
func GetDemandForecast(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var period *domain.ForecastPeriod
		if id := r.URL.Query().Get("period"); id != "" {
			period = &domain.ForecastPeriod{ID: id}

			if id == "custom" {
				days, err := strconv.Atoi(r.URL.Query().Get("days"))
				if err != nil || days <= 0 {
					logger.WithField("days", r.URL.Query().Get("days")).Warn("dashboard: invalid days parameter for custom period")
					http.Error(w, "invalid days parameter", http.StatusBadRequest)
					return
				}
				period.Days = days
			}
		}

		series, err := service.DemandForecast(r.Context(), period)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build demand forecast")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"source": series.Source,
			"period": series.Period,
			"points": len(series.Points),
		}).Info("dashboard: demand forecast built")

		writeJSON(w, logger, series)
	})
}

// GetSeasonalTrends retorna a visão de sazonalidade mensal
func GetSeasonalTrends(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		trends, err := service.SeasonalTrends(r.Context())
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build seasonal trends")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithField("source", trends.Source).Info("dashboard: seasonal trends built")

		writeJSON(w, logger, trends)
	})
}

// GetCategoryPerformance retorna o rollup de receita por categoria
func GetCategoryPerformance(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		performance, err := service.CategoryPerformance(r.Context())
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build category performance")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"source":     performance.Source,
			"categories": len(performance.Categories),
		}).Info("dashboard: category performance built")

		writeJSON(w, logger, performance)
	})
}

// GetProductPerformance retorna o ranking de produtos por trend score
func GetProductPerformance(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := defaultPerformanceLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				logger.WithField("limit", raw).Warn("dashboard: invalid limit parameter")
				http.Error(w, "invalid limit parameter", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		performance, err := service.ProductPerformance(r.Context(), limit)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build product performance")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"source":   performance.Source,
			"products": len(performance.Products),
		}).Info("dashboard: product performance built")

		writeJSON(w, logger, performance)
	})
}

// GetActionableInsights retorna as recomendações derivadas do catálogo
func GetActionableInsights(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		insights, err := service.ActionableInsights(r.Context())
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build actionable insights")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"source":   insights.Source,
			"insights": len(insights.Insights),
		}).Info("dashboard: actionable insights built")

		writeJSON(w, logger, insights)
	})
}

// GetExternalSignals retorna a lista curada de sinais externos
func GetExternalSignals(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		signals := service.ExternalSignals(r.Context())

		writeJSON(w, logger, map[string]any{
			"signals": signals,
		})
	})
}

// writeJSON serializa a resposta e registra falhas de encoding
func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("handler: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
