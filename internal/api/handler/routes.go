package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/creator-assistant/internal/api/handler/router"
	"github.com/vfg2006/creator-assistant/internal/usecases/assisting"
	"github.com/vfg2006/creator-assistant/internal/usecases/chatting"
	"github.com/vfg2006/creator-assistant/pkg/middleware"
)

// Rotas que decodificam MessageRequest
var messageBody = []func(http.Handler) http.Handler{middleware.LimitBody(middleware.MaxMessageBytes)}

func Healthcheck(started time.Time) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(started),
		},
	}
}

func Query(assistant assisting.Assistant) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/query",
			Method:      http.MethodPost,
			Handler:     AskAssistant(assistant),
			Middlewares: messageBody,
		},
		{
			Path:    "/v1/quick-actions",
			Method:  http.MethodGet,
			Handler: ListQuickActions(assistant),
		},
	}
}

func Sessions(manager *chatting.Manager, responseDelay time.Duration) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions",
			Method:  http.MethodPost,
			Handler: CreateSession(manager),
		},
		{
			Path:    "/v1/sessions/:id/messages",
			Method:  http.MethodGet,
			Handler: GetMessages(manager),
		},
		{
			Path:        "/v1/sessions/:id/messages",
			Method:      http.MethodPost,
			Handler:     SendMessage(manager),
			Middlewares: messageBody,
		},
		{
			Path:    "/v1/sessions/:id/messages",
			Method:  http.MethodDelete,
			Handler: ResetSession(manager),
		},
		{
			Path:        "/v1/sessions/:id/messages/stream",
			Method:      http.MethodPost,
			Handler:     StreamMessage(manager, responseDelay),
			Middlewares: messageBody,
		},
		{
			Path:    "/v1/sessions/:id/reveal/stop",
			Method:  http.MethodPost,
			Handler: StopReveal(manager),
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
