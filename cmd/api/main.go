package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/domain-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/domain-ranking-api/infrastructure/integrator/tranco"
	"github.com/vfg2006/domain-ranking-api/infrastructure/integrator/tranco/trancoclient"
	"github.com/vfg2006/domain-ranking-api/infrastructure/migration"
	"github.com/vfg2006/domain-ranking-api/infrastructure/repository"
	"github.com/vfg2006/domain-ranking-api/internal/api"
	"github.com/vfg2006/domain-ranking-api/internal/config"
	"github.com/vfg2006/domain-ranking-api/internal/scheduler"
	"github.com/vfg2006/domain-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/domain-ranking-api/pkg/log"
	"github.com/vfg2006/domain-ranking-api/pkg/metrics"
)

func main() {
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Apply(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar schema de rankings")
	}

	rankingRepo := repository.NewRankingRepository(pgConn)

	trancoClient := trancoclient.NewClient(cfg)
	trancoIntegrator := tranco.New(cfg, trancoClient)

	collector := metrics.NewCollector("domain_ranking")

	rankingService := ranking.NewService(rankingRepo, trancoIntegrator, cfg.Ranking, collector)

	warmupService := scheduler.NewRankingWarmupService(rankingService, cfg)
	if err := warmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de rankings")
	}

	server, err := api.New(cfg, rankingService, pgConn, collector, warmupService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
