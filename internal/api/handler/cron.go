package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-assistant/internal/scheduler"
	"github.com/vfg2006/creator-assistant/pkg/apiErrors"
	"github.com/vfg2006/creator-assistant/pkg/utils"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeHistoryRetention = "history-retention"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	HistoryRetentionService *scheduler.HistoryRetentionService
}

// RunCronJob executa a limpeza de histórico na hora. O parâmetro opcional before (YYYY-MM-DD)
// substitui o corte calculado pelos dias de retenção; async=true dispara a limpeza padrão
// em segundo plano e responde 202.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeHistoryRetention:
			if services.HistoryRetentionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de histórico não disponível", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrJobNotFound, "Tipo de cron job inválido. Valores aceitos: history-retention", nil)
			return
		}

		before, err := utils.ParseDate(r.URL.Query().Get("before"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		if r.URL.Query().Get("async") == "true" {
			if !before.IsZero() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "before não pode ser combinado com async", nil)
				return
			}
			if !services.HistoryRetentionService.TriggerManualSync(r.Context()) {
				apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, "Limpeza de histórico já está em execução", nil)
				return
			}
			writeJSON(w, http.StatusAccepted, map[string]any{
				"message": "Cron job iniciada em segundo plano",
				"type":    cronType,
			})
			return
		}

		var deleted int64
		if before.IsZero() {
			deleted, err = services.HistoryRetentionService.Purge(r.Context())
		} else {
			deleted, err = services.HistoryRetentionService.PurgeBefore(r.Context(), before)
		}
		if errors.Is(err, scheduler.ErrRetentionRunning) {
			apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, "Limpeza de histórico já está em execução", nil)
			return
		}
		if err != nil {
			logrus.WithError(err).Error("handler: erro na limpeza manual de histórico")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao limpar histórico", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job executada com sucesso",
			"type":    cronType,
			"deleted": deleted,
		}
		if !before.IsZero() {
			response["before"] = before.Format(time.DateOnly)
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.HistoryRetentionService != nil {
			status[CronJobTypeHistoryRetention] = services.HistoryRetentionService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
