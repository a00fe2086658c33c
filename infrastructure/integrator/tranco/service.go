package tranco

import (
	"context"
	"fmt"
	"sort"

	trancodomain "github.com/vfg2006/domain-ranking-api/infrastructure/integrator/tranco/domain"
	"github.com/vfg2006/domain-ranking-api/infrastructure/integrator/tranco/trancoclient"
	"github.com/vfg2006/domain-ranking-api/internal/config"
	"github.com/vfg2006/domain-ranking-api/internal/domain"
)

type TrancoIntegrator interface {
	// GetRanks retorna a série conhecida do domínio, ordenada por data e sem datas repetidas
	GetRanks(ctx context.Context, domainName string) ([]domain.RankPoint, error)
}

type TrancoService struct {
	cfg    *config.Config
	Client trancoclient.Client
}

func New(cfg *config.Config, client trancoclient.Client) TrancoIntegrator {
	return &TrancoService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *TrancoService) GetRanks(ctx context.Context, domainName string) ([]domain.RankPoint, error) {
	resp, err := s.Client.GetRanks(ctx, trancoclient.RanksParams{Domain: domainName})
	if err != nil {
		return nil, err
	}

	if resp.Ranks == nil {
		return nil, fmt.Errorf("%w: campo ranks ausente", trancodomain.ErrMalformedPayload)
	}

	return toRankPoints(*resp.Ranks)
}

func toRankPoints(entries []trancodomain.RankEntry) ([]domain.RankPoint, error) {
	points := make([]domain.RankPoint, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for i, entry := range entries {
		date, err := domain.ParseDate(entry.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: data inválida na posição %d: %q", trancodomain.ErrMalformedPayload, i, entry.Date)
		}

		if entry.Rank <= 0 {
			return nil, fmt.Errorf("%w: rank inválido na posição %d: %d", trancodomain.ErrMalformedPayload, i, entry.Rank)
		}

		// A tabela admite uma linha por (domain, date); mantém a primeira ocorrência
		key := date.String()
		if seen[key] {
			continue
		}
		seen[key] = true

		points = append(points, domain.RankPoint{Date: date, Rank: entry.Rank})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date.Time)
	})

	return points, nil
}
