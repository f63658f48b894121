package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/creator-assistant/internal/domain"
	"github.com/vfg2006/creator-assistant/internal/usecases/chatting"
	"github.com/vfg2006/creator-assistant/pkg/apiErrors"
	"github.com/vfg2006/creator-assistant/pkg/log"
)

// Eventos enviados em /messages/stream
const (
	EventMessage = "message"
	EventTyping  = "typing"
	EventFrame   = "frame"
	EventDone    = "done"
	EventError   = "error"
)

type SessionResponse struct {
	SessionID string                   `json:"session_id"`
	Messages  []domain.TranscriptEntry `json:"messages"`
}

type submittedMessage struct {
	Entry  domain.TranscriptEntry `json:"entry"`
	Anchor int                    `json:"anchor"`
}

func sessionID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

func newSessionResponse(session *chatting.Session) SessionResponse {
	return SessionResponse{
		SessionID: session.ID(),
		Messages:  session.Transcript(),
	}
}

func CreateSession(manager *chatting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := manager.Create(r.Context())
		if err != nil {
			handleChatError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, newSessionResponse(session))
	}
}

func GetMessages(manager *chatting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := manager.Get(r.Context(), sessionID(r))
		if err != nil {
			handleChatError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newSessionResponse(session))
	}
}

// SendMessage responde de uma vez, sem animação
func SendMessage(manager *chatting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeMessage(w, r)
		if !ok {
			return
		}

		exchange, err := manager.Send(r.Context(), sessionID(r), req.Message)
		if err != nil {
			handleChatError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, exchange)
	}
}

// StreamMessage envia a resposta como text/event-stream: a mensagem do usuário, o indicador
// de digitação, a espera simulada e então os frames da animação até o frame final.
func StreamMessage(manager *chatting.Manager, responseDelay time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrStreamUnsupported, "Conexão não suporta streaming", nil)
			return
		}

		req, ok := decodeMessage(w, r)
		if !ok {
			return
		}

		ctx := r.Context()
		id := sessionID(r)

		entry, anchor, err := manager.Submit(ctx, id, req.Message)
		if err != nil {
			handleChatError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		stream := &eventStream{w: w, flusher: flusher}
		stream.send(EventMessage, submittedMessage{Entry: entry, Anchor: anchor})
		stream.send(EventTyping, map[string]int{"anchor": anchor})

		if responseDelay > 0 {
			timer := time.NewTimer(responseDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}

		_, frames, err := manager.RevealReply(ctx, id, anchor)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("session_id", id).Error("handler: erro ao responder mensagem")
			stream.send(EventError, apiErrors.FromError(err, apiErrors.ErrInternalServer))
			return
		}

		for frame := range frames {
			event := EventFrame
			if frame.Done {
				event = EventDone
			}
			if err := stream.send(event, frame); err != nil {
				log.ForContext(r.Context()).WithError(err).WithField("session_id", id).Debug("handler: cliente desconectou durante o stream")
				return
			}
		}
	}
}

// StopReveal revela a resposta ativa por completo
func StopReveal(manager *chatting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stopped, err := manager.Stop(r.Context(), sessionID(r))
		if err != nil {
			handleChatError(w, r, err)
			return
		}

		if !stopped {
			apiErrors.WriteError(w, apiErrors.ErrNoActiveReveal, "Nenhuma resposta sendo revelada", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"stopped": true})
	}
}

// ResetSession apaga o histórico e recomeça a conversa
func ResetSession(manager *chatting.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := manager.Reset(r.Context(), sessionID(r))
		if err != nil {
			handleChatError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newSessionResponse(session))
	}
}

type eventStream struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

func (s *eventStream) send(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("erro ao serializar evento %s: %w", event, err)
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	s.flusher.Flush()

	return nil
}
