package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/trendai/demand-insights-api/internal/scheduler"
	"github.com/trendai/demand-insights-api/pkg/apiErrors"
)

// SnapshotSyncServices contém os agendadores acionáveis manualmente
type SnapshotSyncServices struct {
	MetricsSnapshotSyncService *scheduler.MetricsSnapshotSyncService
}

// RunSnapshotSync dispara manualmente a persistência de um snapshot de métricas
func RunSnapshotSync(services SnapshotSyncServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.MetricsSnapshotSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshots não disponível", nil)
			return
		}

		logrus.Info("Disparo manual de snapshot de métricas solicitado")
		services.MetricsSnapshotSyncService.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"message": "Persistência de snapshot iniciada",
		}); err != nil {
			logrus.WithError(err).Error("sync: failed to encode response")
		}
	}
}

// GetSnapshotSyncStatus retorna o status do agendador de snapshots
func GetSnapshotSyncStatus(services SnapshotSyncServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.MetricsSnapshotSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshots não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"snapshot_sync": services.MetricsSnapshotSyncService.GetStatus(),
		}); err != nil {
			logrus.WithError(err).Error("sync: failed to encode response")
		}
	}
}
