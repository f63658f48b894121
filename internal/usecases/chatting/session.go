// Package chatting mantém o transcript de cada conversa: recebe as mensagens do usuário,
// pede a resposta ao assistente e persiste tudo no histórico a cada inclusão.
package chatting

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-assistant/infrastructure/repository"
	"github.com/vfg2006/creator-assistant/internal/domain"
	"github.com/vfg2006/creator-assistant/internal/usecases/assisting"
)

// Session é uma conversa. O transcript só cresce, exceto no Reset.
type Session struct {
	mu        sync.Mutex
	id        string
	key       string
	entries   []domain.TranscriptEntry
	answered  map[int]struct{} // posições de mensagens do usuário que já têm resposta
	history   repository.HistoryRepository
	assistant assisting.Assistant
	now       func() time.Time
}

func NewSession(id, key string, history repository.HistoryRepository, assistant assisting.Assistant) *Session {
	return &Session{
		id:        id,
		key:       key,
		answered:  make(map[int]struct{}),
		history:   history,
		assistant: assistant,
		now:       time.Now,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Key é a chave do transcript no histórico
func (s *Session) Key() string {
	return s.key
}

// Load restaura o transcript salvo. Sem histórico, a conversa começa com a mensagem de boas-vindas.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.history.Load(ctx, s.key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHistoryUnavailable, err)
	}

	s.entries = entries
	s.answered = pairReplies(entries)
	if len(s.entries) == 0 {
		s.appendLocked(ctx, domain.RoleAssistant, s.assistant.Welcome())
	}

	return nil
}

// Submit inclui a mensagem do usuário e retorna sua posição no transcript
func (s *Session) Submit(ctx context.Context, text string) (domain.TranscriptEntry, int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.TranscriptEntry{}, 0, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, index := s.appendLocked(ctx, domain.RoleUser, text)
	return entry, index, nil
}

// Respond responde à mensagem do usuário na posição anchor e inclui a resposta no transcript
func (s *Session) Respond(ctx context.Context, anchor int) (domain.ChatExchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if anchor < 0 || anchor >= len(s.entries) || s.entries[anchor].Role != domain.RoleUser {
		return domain.ChatExchange{}, ErrInvalidAnchor
	}
	if _, ok := s.answered[anchor]; ok {
		return domain.ChatExchange{}, ErrAlreadyAnswered
	}

	question := s.entries[anchor]
	reply := s.assistant.Answer(question.Text)
	if reply.Err != nil {
		logrus.WithError(reply.Err).WithFields(logrus.Fields{
			"session_id": s.id,
			"intent":     reply.Intent,
		}).Debug("chat: resposta gerada com fallback")
	}

	answer, _ := s.appendLocked(ctx, domain.RoleAssistant, reply.Text)
	s.answered[anchor] = struct{}{}

	return domain.ChatExchange{
		User:      question,
		Assistant: answer,
		Intent:    reply.Intent,
		Anchor:    anchor,
	}, nil
}

// Send envia a mensagem e já inclui a resposta
func (s *Session) Send(ctx context.Context, text string) (domain.ChatExchange, error) {
	_, anchor, err := s.Submit(ctx, text)
	if err != nil {
		return domain.ChatExchange{}, err
	}

	return s.Respond(ctx, anchor)
}

// Reset apaga o histórico e recomeça a conversa com a mensagem de boas-vindas
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.history.Clear(ctx, s.key); err != nil {
		return fmt.Errorf("%w: %w", ErrHistoryUnavailable, err)
	}

	s.entries = nil
	s.answered = make(map[int]struct{})
	s.appendLocked(ctx, domain.RoleAssistant, s.assistant.Welcome())

	return nil
}

// Transcript retorna uma cópia das mensagens
func (s *Session) Transcript() []domain.TranscriptEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.TranscriptEntry(nil), s.entries...)
}

// LastActivity é o horário da última mensagem
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return time.Time{}
	}
	return s.entries[len(s.entries)-1].Timestamp
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// appendLocked inclui uma mensagem e sobrescreve o histórico salvo.
// Falha ao salvar não interrompe a conversa: o transcript em memória continua valendo.
func (s *Session) appendLocked(ctx context.Context, role domain.Role, text string) (domain.TranscriptEntry, int) {
	entry := domain.TranscriptEntry{
		Role:      role,
		Text:      text,
		Timestamp: s.now().UTC(),
	}
	s.entries = append(s.entries, entry)

	if err := s.history.Save(ctx, s.key, s.entries); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"session_id":  s.id,
			"history_key": s.key,
		}).Warn("chat: não foi possível salvar o histórico")
	}

	return entry, len(s.entries) - 1
}

// pairReplies associa cada resposta do assistente à mensagem do usuário mais antiga ainda sem
// resposta, na ordem em que foram incluídas
func pairReplies(entries []domain.TranscriptEntry) map[int]struct{} {
	answered := make(map[int]struct{})
	var waiting []int

	for i, entry := range entries {
		switch entry.Role {
		case domain.RoleUser:
			waiting = append(waiting, i)
		case domain.RoleAssistant:
			if len(waiting) > 0 {
				answered[waiting[0]] = struct{}{}
				waiting = waiting[1:]
			}
		}
	}

	return answered
}
