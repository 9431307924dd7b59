package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/trendai/demand-insights-api/internal/usecases/analyzing"
	"github.com/trendai/demand-insights-api/pkg/log"
)

const defaultMetricsWindowHours = 24

// GetMetrics retorna as métricas agregadas da janela das últimas N horas
func GetMetrics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		hours := defaultMetricsWindowHours
		if raw := r.URL.Query().Get("hours"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				logger.WithField("hours", raw).Warn("metrics: invalid hours parameter")
				http.Error(w, "invalid hours parameter", http.StatusBadRequest)
				return
			}
			hours = parsed
		}

		metrics, err := service.Metrics(r.Context(), hours)
		if err != nil {
			logger.WithFields(log.Fields{
				"hours": hours,
				"error": err.Error(),
			}).Error("metrics: failed to compute metrics window")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"hours":  hours,
			"source": metrics.Source,
			"orders": metrics.TotalOrders,
		}).Info("metrics: window computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("metrics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
