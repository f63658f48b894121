package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-assistant/internal/usecases/chatting"
	"github.com/vfg2006/creator-assistant/pkg/apiErrors"
	"github.com/vfg2006/creator-assistant/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type MessageRequest struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("handler: erro ao enviar resposta")
	}
}

func decodeMessage(w http.ResponseWriter, r *http.Request) (MessageRequest, bool) {
	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return req, false
	}
	return req, true
}

// handleChatError traduz os erros da conversa para os códigos da API
func handleChatError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, chatting.ErrSessionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão não encontrada", nil)
	case errors.Is(err, chatting.ErrEmptyMessage):
		apiErrors.WriteError(w, apiErrors.ErrEmptyMessage, "A mensagem não pode ser vazia", nil)
	case errors.Is(err, chatting.ErrAlreadyAnswered):
		apiErrors.WriteError(w, apiErrors.ErrAlreadyAnswered, "A mensagem já foi respondida", nil)
	case errors.Is(err, chatting.ErrHistoryUnavailable):
		log.ForContext(r.Context()).WithError(err).Error("handler: histórico indisponível")
		apiErrors.WriteError(w, apiErrors.ErrHistoryUnavailable, "Histórico indisponível no momento", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("handler: erro inesperado na conversa")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar a mensagem", nil)
	}
}
