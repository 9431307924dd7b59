package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/trendai/demand-insights-api/infrastructure/database/mongodb"
	"github.com/trendai/demand-insights-api/internal/domain"
)

type DatabaseStatusResponse struct {
	Connected bool              `json:"connected"`
	Source    domain.DataSource `json:"source"`
}

// DatabaseStatus informa se a API está servindo dados do banco de
// documentos ou do dataset de fallback
func DatabaseStatus(connector *mongodb.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		connected := connector.Connected(r.Context())

		source := domain.SourceFallback
		if connected {
			source = domain.SourceLive
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(DatabaseStatusResponse{
			Connected: connected,
			Source:    source,
		}); err != nil {
			logrus.WithError(err).Error("database: failed to encode status response")
		}
	})
}
