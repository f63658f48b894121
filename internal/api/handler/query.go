package handler

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-assistant/internal/domain"
	"github.com/vfg2006/creator-assistant/internal/usecases/assisting"
	"github.com/vfg2006/creator-assistant/pkg/apiErrors"
)

type QueryResponse struct {
	Intent   domain.Intent `json:"intent"`
	Response string        `json:"response"`
	Warning  string        `json:"warning,omitempty"` // código QRY_* quando a resposta veio de fallback
}

// AskAssistant responde a uma pergunta avulsa, sem sessão nem histórico
func AskAssistant(assistant assisting.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeMessage(w, r)
		if !ok {
			return
		}

		if strings.TrimSpace(req.Message) == "" {
			apiErrors.WriteError(w, apiErrors.ErrEmptyMessage, "A mensagem não pode ser vazia", nil)
			return
		}

		reply := assistant.Answer(req.Message)
		if reply.Err != nil {
			logrus.WithError(reply.Err).WithField("intent", reply.Intent).Debug("handler: consulta respondida com fallback")
		}

		writeJSON(w, http.StatusOK, QueryResponse{
			Intent:   reply.Intent,
			Response: reply.Text,
			Warning:  assisting.ErrorCode(reply.Err),
		})
	}
}

func ListQuickActions(assistant assisting.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"quick_actions": assistant.QuickActions(),
		})
	}
}
