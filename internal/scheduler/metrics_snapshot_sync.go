package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/trendai/demand-insights-api/infrastructure/repository"
	"github.com/trendai/demand-insights-api/internal/config"
	"github.com/trendai/demand-insights-api/internal/usecases/analyzing"
)

// MetricsSnapshotSyncConfig representa a configuração do agendador de snapshots de métricas
type MetricsSnapshotSyncConfig struct {
	CronSchedule string
	WindowHours  int
	SyncEnabled  bool
}

// MetricsSnapshotSyncService gerencia o agendamento e a persistência
// periódica de snapshots de métricas agregadas
type MetricsSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              MetricsSnapshotSyncConfig
	analyzer            analyzing.Analyzer
	snapshotRepo        repository.SnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMetricsSnapshotSyncService cria uma nova instância do serviço de snapshots de métricas
func NewMetricsSnapshotSyncService(
	analyzer analyzing.Analyzer,
	snapshotRepo repository.SnapshotRepository,
	appConfig *config.Config,
) *MetricsSnapshotSyncService {
	// Criar a configuração com base na config global
	syncConfig := MetricsSnapshotSyncConfig{
		CronSchedule: appConfig.SnapshotSync.CronSchedule,
		WindowHours:  appConfig.SnapshotSync.WindowHours,
		SyncEnabled:  appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"window_hours":  syncConfig.WindowHours,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de métricas carregada")

	return &MetricsSnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		analyzer:     analyzer,
		snapshotRepo: snapshotRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *MetricsSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Persistência periódica de snapshots de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMetricsSnapshot()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar persistência de snapshots de métricas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMetricsSnapshot calcula as métricas da janela configurada e as persiste
func (s *MetricsSnapshotSyncService) syncMetricsSnapshot() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Persistência de snapshot de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	metrics, err := s.analyzer.Metrics(ctx, s.config.WindowHours)
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular métricas para snapshot")
		return
	}

	if err := s.snapshotRepo.SaveSnapshot(ctx, metrics); err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			// Em modo fallback não há onde persistir; o ciclo é pulado
			// silenciosamente e volta a tentar no próximo disparo
			logrus.Info("Banco de documentos indisponível, ciclo de snapshot ignorado")
			return
		}
		logrus.WithError(err).Error("Erro ao persistir snapshot de métricas")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":      time.Since(startTime).String(),
		"window_hours":  s.config.WindowHours,
		"total_revenue": metrics.TotalRevenue,
		"total_orders":  metrics.TotalOrders,
	}).Info("Snapshot de métricas persistido com sucesso")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente a persistência de um snapshot
func (s *MetricsSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Persistência de snapshot de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando persistência manual de snapshot de métricas")
	go s.syncMetricsSnapshot()
}

// GetStatus retorna o status atual do agendador
func (s *MetricsSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_window_hours":      s.config.WindowHours,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
