package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/trendai/demand-insights-api/infrastructure/database/mongodb"
	"github.com/trendai/demand-insights-api/infrastructure/repository"
	"github.com/trendai/demand-insights-api/internal/api/handler"
	"github.com/trendai/demand-insights-api/internal/api/handler/router"
	"github.com/trendai/demand-insights-api/internal/config"
	"github.com/trendai/demand-insights-api/internal/scheduler"
	"github.com/trendai/demand-insights-api/internal/usecases/analyzing"
	"github.com/trendai/demand-insights-api/internal/usecases/authenticating"
	"github.com/trendai/demand-insights-api/internal/usecases/exporting"
	"github.com/trendai/demand-insights-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	connector *mongodb.Connector,
	analyzerService analyzing.Analyzer,
	authenticator authenticating.Authenticator,
	exporterService exporting.Exporter,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	snapshotSyncService *scheduler.MetricsSnapshotSyncService,
) (*Server, error) {
	syncServices := handler.SnapshotSyncServices{
		MetricsSnapshotSyncService: snapshotSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.AdminUsers(authenticator)...),
		router.WithRoutes(handler.Metrics(analyzerService)...),
		router.WithRoutes(handler.Dashboard(analyzerService)...),
		router.WithRoutes(handler.Products(productRepo)...),
		router.WithRoutes(handler.Sales(saleRepo)...),
		router.WithRoutes(handler.Exports(exporterService)...),
		router.WithRoutes(handler.Database(connector)...),
		router.WithRoutes(handler.SnapshotSync(syncServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
