package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trendai/demand-insights-api/infrastructure/database/mongodb"
	"github.com/trendai/demand-insights-api/infrastructure/repository"
	"github.com/trendai/demand-insights-api/internal/api"
	"github.com/trendai/demand-insights-api/internal/config"
	"github.com/trendai/demand-insights-api/internal/dataset"
	"github.com/trendai/demand-insights-api/internal/scheduler"
	"github.com/trendai/demand-insights-api/internal/usecases/analyzing"
	"github.com/trendai/demand-insights-api/internal/usecases/authenticating"
	"github.com/trendai/demand-insights-api/internal/usecases/exporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A conexão é tentada de forma preguiçosa; sem banco acessível a API
	// degrada para o dataset gerado em memória
	connector := mongodb.NewConnector(cfg.Database)
	defer func() {
		if err := connector.Close(context.Background()); err != nil {
			logrus.WithError(err).Warn("Erro ao encerrar conexão com o MongoDB")
		}
	}()

	memoryStore := repository.NewMemoryStore(dataset.Generate(cfg.Dataset.Seed))

	productRepo := repository.NewProductRepository(connector, memoryStore)
	saleRepo := repository.NewSaleRepository(connector, memoryStore)
	userRepo := repository.NewUserRepository(connector, memoryStore)
	snapshotRepo := repository.NewSnapshotRepository(connector)

	authenticator := authenticating.NewService(userRepo, cfg)
	analyzerService := analyzing.NewService(productRepo, saleRepo)
	exporterService := exporting.NewService(analyzerService)

	// Agendador de persistência periódica de snapshots de métricas
	snapshotSyncService := scheduler.NewMetricsSnapshotSyncService(
		analyzerService,
		snapshotRepo,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de métricas")
	} else {
		logrus.Info("Agendador de snapshots de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		connector,
		analyzerService,
		authenticator,
		exporterService,
		productRepo,
		saleRepo,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
