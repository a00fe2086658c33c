package ranking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/domain-ranking-api/infrastructure/integrator/tranco"
	trancodomain "github.com/vfg2006/domain-ranking-api/infrastructure/integrator/tranco/domain"
	"github.com/vfg2006/domain-ranking-api/infrastructure/repository"
	"github.com/vfg2006/domain-ranking-api/internal/config"
	"github.com/vfg2006/domain-ranking-api/internal/domain"
	"github.com/vfg2006/domain-ranking-api/pkg/apiErrors"
	"github.com/vfg2006/domain-ranking-api/pkg/metrics"
)

type RankingService interface {
	// GetRankings resolve todos os domínios da lista, na ordem da primeira ocorrência
	GetRankings(ctx context.Context, raw string) (*domain.BatchResponse, error)
	// ResolveDomain resolve um único domínio já normalizado
	ResolveDomain(ctx context.Context, domainName string) (domain.DomainResult, error)
	// RefreshAhead resolve como ResolveDomain, mas renova também o que vence dentro de ahead
	RefreshAhead(ctx context.Context, domainName string, ahead time.Duration) (domain.DomainResult, error)
}

type Service struct {
	rankingRepository repository.RankingRepository
	trancoService     tranco.TrancoIntegrator
	cfg               config.Ranking
	metrics           *metrics.Collector
	now               func() time.Time
}

type Option func(*Service)

// WithClock troca a fonte de horário usada na avaliação de frescor e no fetched_at
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	rankingRepository repository.RankingRepository,
	trancoService tranco.TrancoIntegrator,
	cfg config.Ranking,
	collector *metrics.Collector,
	opts ...Option,
) RankingService {
	s := &Service{
		rankingRepository: rankingRepository,
		trancoService:     trancoService,
		cfg:               cfg,
		metrics:           collector,
		now:               time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.MaxConcurrent <= 0 {
		s.cfg.MaxConcurrent = 1
	}

	return s
}

func (s *Service) GetRankings(ctx context.Context, raw string) (*domain.BatchResponse, error) {
	domains := ParseDomainList(raw)

	if s.cfg.MaxDomains > 0 && len(domains) > s.cfg.MaxDomains {
		return nil, NewRankingError(ErrTooManyDomains, apiErrors.ErrTooManyDomains,
			fmt.Sprintf("%d domínios informados, máximo %d", len(domains), s.cfg.MaxDomains))
	}

	results := make([]domain.DomainResult, len(domains))
	if len(domains) == 0 {
		return &domain.BatchResponse{Domains: results}, nil
	}

	sem := make(chan struct{}, s.cfg.MaxConcurrent)
	var wg sync.WaitGroup

	for i, name := range domains {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			// Cada goroutine escreve apenas no próprio índice
			result, err := s.ResolveDomain(ctx, name)
			if err != nil {
				result = s.failedResult(name, err)
			}
			results[i] = result
		}(i, name)
	}

	wg.Wait()

	return &domain.BatchResponse{Domains: results}, nil
}

func (s *Service) ResolveDomain(ctx context.Context, domainName string) (domain.DomainResult, error) {
	return s.resolve(ctx, domainName, 0)
}

func (s *Service) RefreshAhead(ctx context.Context, domainName string, ahead time.Duration) (domain.DomainResult, error) {
	if ahead < 0 {
		ahead = 0
	}
	return s.resolve(ctx, domainName, ahead)
}

func (s *Service) resolve(ctx context.Context, domainName string, ahead time.Duration) (domain.DomainResult, error) {
	logger := logrus.WithField("domain", domainName)

	latest, err := s.rankingRepository.FindLatestFetchedAt(ctx, domainName)
	if err != nil {
		logger.WithError(err).Error("Error reading latest fetched_at from ranking store")
		return domain.DomainResult{}, NewRankingErrorWithDomain(ErrStoreUnavailable, apiErrors.ErrDatabaseOperation, domainName, "Falha ao consultar a data da última busca")
	}

	now := s.now()

	// fetched_at continua sendo now; ahead só antecipa a avaliação
	if latest != nil && IsFresh(*latest, now.Add(ahead), s.cfg.CacheHours) {
		return s.readCache(ctx, logger, domainName)
	}

	s.metrics.CacheMisses.Inc()

	started := time.Now()
	points, err := s.trancoService.GetRanks(ctx, domainName)
	s.metrics.ProviderDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		logger.WithError(err).Warn("Error fetching ranks from provider")
		return domain.DomainResult{}, providerError(domainName, err)
	}

	if points == nil {
		points = []domain.RankPoint{}
	}

	if len(points) == 0 && latest != nil && s.cfg.KeepOnEmpty {
		logger.Warn("Provider answered an empty series, keeping stored ranks")
		return s.readCache(ctx, logger, domainName)
	}

	// A escrita segue mesmo se o cliente desistir da requisição
	deleted, err := s.rankingRepository.ReplaceAll(context.WithoutCancel(ctx), domainName, points, now)
	if err != nil {
		logger.WithError(err).Error("Error replacing ranks in ranking store")
		return domain.DomainResult{}, NewRankingErrorWithDomain(ErrStoreUnavailable, apiErrors.ErrDatabaseOperation, domainName, "Falha ao gravar a nova série")
	}

	if len(points) == 0 && deleted > 0 {
		logger.WithField("deleted", deleted).Warn("Provider answered an empty series, stored ranks were cleared")
	}

	s.metrics.Refreshes.Inc()
	logger.WithFields(logrus.Fields{
		"deleted":  deleted,
		"inserted": len(points),
	}).Debug("Ranks refreshed from provider")

	return domain.DomainResult{
		Domain: domainName,
		Ranks:  points,
		Source: domain.SourceProvider,
	}, nil
}

func (s *Service) readCache(ctx context.Context, logger *logrus.Entry, domainName string) (domain.DomainResult, error) {
	points, err := s.rankingRepository.FindAllOrderedByDate(ctx, domainName)
	if err != nil {
		logger.WithError(err).Error("Error reading ranks from ranking store")
		return domain.DomainResult{}, NewRankingErrorWithDomain(ErrStoreUnavailable, apiErrors.ErrDatabaseOperation, domainName, "Falha ao ler a série armazenada")
	}

	if points == nil {
		points = []domain.RankPoint{}
	}

	s.metrics.CacheHits.Inc()

	return domain.DomainResult{
		Domain: domainName,
		Ranks:  points,
		Source: domain.SourceCache,
	}, nil
}

func (s *Service) failedResult(domainName string, err error) domain.DomainResult {
	code := apiErrors.ErrInternalServer
	message := err.Error()

	var rankingErr *RankingError
	if errors.As(err, &rankingErr) {
		code = rankingErr.Code
		message = rankingErr.Err.Error()
		if rankingErr.Details != "" {
			message = rankingErr.Details
		}
	}

	s.metrics.ResolveFailures.WithLabelValues(code).Inc()

	return domain.DomainResult{
		Domain: domainName,
		Ranks:  []domain.RankPoint{},
		Error: &domain.DomainError{
			Code:    code,
			Message: message,
		},
	}
}

func providerError(domainName string, err error) *RankingError {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return NewRankingErrorWithDomain(ErrRequestCanceled, apiErrors.ErrRequestCanceled, domainName, "Requisição cancelada antes da resposta do provedor")
	case errors.Is(err, trancodomain.ErrInvalidDomain):
		return NewRankingErrorWithDomain(ErrInvalidDomain, apiErrors.ErrInvalidFormat, domainName, "Domínio inválido")
	case errors.Is(err, trancodomain.ErrMalformedPayload):
		return NewRankingErrorWithDomain(ErrProviderMalformedResponse, apiErrors.ErrProviderMalformed, domainName, "Resposta do provedor de ranking fora do formato esperado")
	}
	return NewRankingErrorWithDomain(ErrProviderUnavailable, apiErrors.ErrProviderUnavailable, domainName, "Provedor de ranking indisponível")
}
