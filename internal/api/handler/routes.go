package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/domain-ranking-api/internal/api/handler/router"
	"github.com/vfg2006/domain-ranking-api/internal/usecases/ranking"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Rankings(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ranking/:domains",
			Method:  http.MethodGet,
			Handler: GetDomainRankings(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
