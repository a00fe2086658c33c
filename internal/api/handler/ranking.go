package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/domain-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/domain-ranking-api/pkg/apiErrors"
	"github.com/vfg2006/domain-ranking-api/pkg/log"
)

// GetDomainRankings retorna a série de rankings de cada domínio da lista separada por vírgulas
func GetDomainRankings(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := log.ForContext(ctx)

		raw := httprouter.ParamsFromContext(ctx).ByName("domains")

		resp, err := service.GetRankings(ctx, raw)
		if err != nil {
			var rankingErr *ranking.RankingError
			if errors.As(err, &rankingErr) {
				logger.WithError(err).Warn("Lote de domínios rejeitado")
				apiErrors.WriteError(w, rankingErr.Code, rankingErr.Details, nil)
				return
			}

			logger.WithError(err).Error("Erro ao buscar rankings")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar rankings", nil)
			return
		}

		failed := 0
		for _, result := range resp.Domains {
			if result.Failed() {
				failed++
			}
		}
		if failed > 0 {
			logger.WithFields(log.Fields{
				"ranking_domains": len(resp.Domains),
				"ranking_failed":  failed,
			}).Warn("Lote respondido com domínios em erro")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta de rankings")
		}
	}
}
