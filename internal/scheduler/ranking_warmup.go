// Package scheduler contém os serviços de agendamento que mantêm os rankings atualizados
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/domain-ranking-api/internal/config"
	"github.com/vfg2006/domain-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/domain-ranking-api/pkg/utils"
)

type RankingWarmupConfig struct {
	CronSchedule string
	Domains      []string
	SyncEnabled  bool
	RefreshAhead time.Duration
}

// RankingWarmupService resolve periodicamente uma lista fixa de domínios
// para que as consultas dos usuários encontrem o cache fresco
type RankingWarmupService struct {
	scheduler           *gocron.Scheduler
	rankingService      ranking.RankingService
	config              RankingWarmupConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResolved        int
	lastFailed          int
}

func NewRankingWarmupService(rankingService ranking.RankingService, cfg *config.Config) *RankingWarmupService {
	warmupConfig := RankingWarmupConfig{
		CronSchedule: cfg.RankingWarmup.CronSchedule,
		Domains:      ranking.ParseDomainList(strings.Join(cfg.RankingWarmup.Domains, ",")),
		SyncEnabled:  cfg.RankingWarmup.Enabled,
		RefreshAhead: time.Duration(cfg.RankingWarmup.RefreshAheadHours * float64(time.Hour)),
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"domains":       len(warmupConfig.Domains),
		"refresh_ahead": warmupConfig.RefreshAhead.String(),
	}).Info("Configuração do aquecimento de rankings carregada")

	return &RankingWarmupService{
		scheduler:      gocron.NewScheduler(time.Local),
		rankingService: rankingService,
		config:         warmupConfig,
	}
}

func (s *RankingWarmupService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de aquecimento de rankings desabilitada por configuração")
		return nil
	}

	if len(s.config.Domains) == 0 {
		logrus.Warn("Cron de aquecimento de rankings habilitada sem domínios configurados")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de aquecimento de rankings")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.WarmUp(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de rankings: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de aquecimento de rankings")
		s.scheduler.Stop()
	}()

	return nil
}

// WarmUp renova os domínios configurados que vencem antes de RefreshAhead;
// retorna false se já havia uma execução em andamento
func (s *RankingWarmupService) WarmUp(ctx context.Context) bool {
	runID, ok := s.tryStart()
	if !ok {
		logrus.Warn("Aquecimento de rankings já está em execução")
		return false
	}

	logger := logrus.WithField("run_id", runID)
	logger.WithField("domains", len(s.config.Domains)).Info("Iniciando aquecimento de rankings")

	resolved, failed := 0, 0
	for _, name := range s.config.Domains {
		if ctx.Err() != nil {
			logger.Warn("Aquecimento de rankings interrompido")
			break
		}

		result, err := s.rankingService.RefreshAhead(ctx, name, s.config.RefreshAhead)
		if err != nil {
			failed++
			logger.WithError(err).WithField("domain", name).Warn("Falha ao aquecer ranking do domínio")
			continue
		}

		resolved++
		logger.WithFields(logrus.Fields{
			"domain": name,
			"source": result.Source,
			"ranks":  len(result.Ranks),
		}).Debug("Ranking do domínio aquecido")
	}

	s.finish(resolved, failed)

	logger.WithFields(logrus.Fields{
		"resolved": resolved,
		"failed":   failed,
	}).Info("Aquecimento de rankings concluído")

	return true
}

func (s *RankingWarmupService) tryStart() (string, bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return "", false
	}

	runID, err := utils.GenerateID()
	if err != nil {
		runID = time.Now().Format("20060102150405")
	}

	s.syncRunning = true
	s.lastRunID = runID
	s.lastSyncStartedAt = time.Now()

	return runID, true
}

func (s *RankingWarmupService) finish(resolved, failed int) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastResolved = resolved
	s.lastFailed = failed
}

// TriggerManualSync inicia manualmente um aquecimento; retorna false se já havia um em andamento
func (s *RankingWarmupService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Aquecimento de rankings já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando aquecimento manual de rankings")
	go s.WarmUp(context.WithoutCancel(ctx))

	return true
}

// GetStatus retorna o status atual do agendador
func (s *RankingWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_domains":           s.config.Domains,
		"sync_refresh_ahead":     s.config.RefreshAhead.String(),
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_resolved":          s.lastResolved,
		"last_failed":            s.lastFailed,
	}
}
