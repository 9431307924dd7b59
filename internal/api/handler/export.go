package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/trendai/demand-insights-api/internal/usecases/exporting"
	"github.com/trendai/demand-insights-api/pkg/apiErrors"
	"github.com/trendai/demand-insights-api/pkg/log"
)

// ExportMetrics serializa os cartões de métricas para download
func ExportMetrics(service exporting.Exporter) http.Handler {
	return exportHandler("metrics", service.ExportMetrics)
}

// ExportForecast serializa a série de previsão de demanda para download
func ExportForecast(service exporting.Exporter) http.Handler {
	return exportHandler("forecast", service.ExportForecast)
}

// ExportProducts serializa o ranking de produtos para download
func ExportProducts(service exporting.Exporter) http.Handler {
	return exportHandler("products", service.ExportProducts)
}

func exportHandler(name string, export func(ctx context.Context, format exporting.Format) (*exporting.Export, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		format, err := exporting.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			logger.WithFields(log.Fields{
				"export": name,
				"format": r.URL.Query().Get("format"),
			}).Warn("export: invalid format parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := export(r.Context(), format)
		if err != nil {
			logger.WithFields(log.Fields{
				"export": name,
				"format": format,
				"error":  err.Error(),
			}).Error("export: failed to build export")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar exportação", nil)
			return
		}

		logger.WithFields(log.Fields{
			"export":   name,
			"format":   format,
			"filename": result.Filename,
			"bytes":    len(result.Data),
		}).Info("export: file generated")

		w.Header().Set("Content-Type", result.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
		if _, err := w.Write(result.Data); err != nil {
			logger.WithError(err).Error("export: failed to write response")
		}
	})
}
