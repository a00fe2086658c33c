package trancoclient

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	trancodomain "github.com/vfg2006/domain-ranking-api/infrastructure/integrator/tranco/domain"
	"github.com/vfg2006/domain-ranking-api/internal/config"
)

type Client interface {
	GetRanks(ctx context.Context, params RanksParams) (RanksResponse, error)
}

type TrancoClient struct {
	httpClient *http.Client
	config     *config.Config
	breaker    *gobreaker.CircuitBreaker
}

func NewClient(cfg *config.Config) Client {
	return &TrancoClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Tranco.TimeoutSeconds) * time.Second,
		},
		config:  cfg,
		breaker: newBreaker(cfg.Tranco),
	}
}

func newBreaker(cfg config.Tranco) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "tranco",
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    time.Duration(cfg.BreakerIntervalSeconds) * time.Second,
		Timeout:     time.Duration(cfg.BreakerTimeoutSeconds) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.BreakerFailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker do Tranco mudou de estado")
		},
		// Só indisponibilidade conta como falha; payload malformado e cancelamento do chamador não
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return true
			}
			return !errors.Is(err, trancodomain.ErrUpstreamUnavailable)
		},
	})
}

// execute passa a chamada pelo circuit breaker, convertendo a rejeição em indisponibilidade
func (c *TrancoClient) execute(fn func() (RanksResponse, error)) (RanksResponse, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return RanksResponse{}, errors.Wrap(trancodomain.ErrUpstreamUnavailable, err.Error())
		}
		return RanksResponse{}, err
	}

	return result.(RanksResponse), nil
}
