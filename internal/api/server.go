package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/domain-ranking-api/internal/api/handler"
	"github.com/vfg2006/domain-ranking-api/internal/api/handler/router"
	"github.com/vfg2006/domain-ranking-api/internal/config"
	"github.com/vfg2006/domain-ranking-api/internal/scheduler"
	"github.com/vfg2006/domain-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/domain-ranking-api/pkg/metrics"
	"github.com/vfg2006/domain-ranking-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	rankingService ranking.RankingService,
	db handler.Pinger,
	collector *metrics.Collector,
	warmupService *scheduler.RankingWarmupService,
) (*Server, error) {
	if rankingService == nil {
		return nil, fmt.Errorf("serviço de rankings não informado")
	}

	cronServices := handler.CronJobServices{
		RankingWarmupService: warmupService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Metrics(collector.Handler())...),
		router.WithRoutes(handler.Rankings(rankingService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.CorsAllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run atende até receber SIGINT/SIGTERM ou ter o contexto cancelado, depois desliga com 15s de prazo
func (s Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			return err
		}
		return nil
	case <-ctx.Done():
		logrus.Info("Sinal de interrupção recebido")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithField("timeout", "15s").Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
