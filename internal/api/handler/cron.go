package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/domain-ranking-api/internal/scheduler"
	"github.com/vfg2006/domain-ranking-api/pkg/apiErrors"
	"github.com/vfg2006/domain-ranking-api/pkg/log"
)

const CronJobTypeWarmup = "warmup"

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	RankingWarmupService *scheduler.RankingWarmupService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeWarmup:
			if services.RankingWarmupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de aquecimento de rankings não disponível", nil)
				return
			}

			started := services.RankingWarmupService.TriggerManualSync(r.Context())
			logger.WithField("started", started).Info("Aquecimento manual de rankings solicitado")

			message := "Cron job iniciada com sucesso"
			if !started {
				message = "Cron job já está em execução"
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusAccepted)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"message": message,
				"type":    cronType,
				"started": started,
			})
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: warmup", nil)
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.RankingWarmupService != nil {
			status[CronJobTypeWarmup] = services.RankingWarmupService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(status)
	}
}
