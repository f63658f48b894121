package chatting

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-assistant/infrastructure/repository"
	"github.com/vfg2006/creator-assistant/internal/domain"
	"github.com/vfg2006/creator-assistant/internal/reveal"
	"github.com/vfg2006/creator-assistant/internal/usecases/assisting"
	"github.com/vfg2006/creator-assistant/pkg/utils"
)

// DefaultHistoryKey é a chave do transcript da conversa única do chat de terminal
const DefaultHistoryKey = "chatHistory"

// Quantidade de prompts sugeridos ao fim de cada resposta
const suggestionsLimit = 3

// HistoryKey compõe a chave de uma sessão; id vazio usa a chave base
func HistoryKey(base, id string) string {
	if base == "" {
		base = DefaultHistoryKey
	}
	if id == "" {
		return base
	}
	return base + ":" + id
}

type ManagerOptions struct {
	HistoryKey string
	Reveal     reveal.Options
}

// Manager guarda as sessões abertas pela API e a animação ativa de cada uma
type Manager struct {
	mu        sync.Mutex
	sessions  map[string]*managedSession
	history   repository.HistoryRepository
	assistant assisting.Assistant
	opts      ManagerOptions
	newID     func() (string, error)
}

type managedSession struct {
	session  *Session
	revealer *reveal.Controller

	// mensagens aguardando resposta (anchor -> stop pedido antes da animação começar)
	mu      sync.Mutex
	pending map[int]bool
}

// flush interrompe a animação ativa e marca as mensagens pendentes para revelação imediata.
// Retorna true quando havia algo a interromper.
func (ms *managedSession) flush() bool {
	stopped := ms.revealer.Stop()

	ms.mu.Lock()
	defer ms.mu.Unlock()

	for anchor, flushed := range ms.pending {
		if !flushed {
			ms.pending[anchor] = true
			stopped = true
		}
	}

	return stopped
}

func (ms *managedSession) track(anchor int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.pending[anchor] = false
}

// take remove anchor das pendentes e diz se um stop chegou antes da resposta
func (ms *managedSession) take(anchor int) bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	flushed := ms.pending[anchor]
	delete(ms.pending, anchor)
	return flushed
}

func NewManager(history repository.HistoryRepository, assistant assisting.Assistant, opts ManagerOptions) *Manager {
	return &Manager{
		sessions:  make(map[string]*managedSession),
		history:   history,
		assistant: assistant,
		opts:      opts,
		newID:     utils.GenerateSessionID,
	}
}

// Create abre uma sessão nova, já com a mensagem de boas-vindas salva
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	id, err := m.newID()
	if err != nil {
		return nil, err
	}

	session := NewSession(id, HistoryKey(m.opts.HistoryKey, id), m.history, m.assistant)
	if err := session.Load(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[id] = m.wrap(session)
	m.mu.Unlock()

	logrus.WithField("session_id", id).Info("chat: sessão criada")

	return session, nil
}

// Get retorna uma sessão aberta ou a restaura do histórico
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	managed, err := m.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return managed.session, nil
}

func (m *Manager) get(ctx context.Context, id string) (*managedSession, error) {
	if !utils.ValidSessionID(id) {
		return nil, ErrSessionNotFound
	}

	m.mu.Lock()
	managed, ok := m.sessions[id]
	m.mu.Unlock()
	if ok {
		return managed, nil
	}

	key := HistoryKey(m.opts.HistoryKey, id)
	stored, err := m.history.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		return nil, ErrSessionNotFound
	}

	session := NewSession(id, key, m.history, m.assistant)
	if err := session.Load(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// outra requisição pode ter restaurado a mesma sessão
	if existing, ok := m.sessions[id]; ok {
		return existing, nil
	}
	managed = m.wrap(session)
	m.sessions[id] = managed

	return managed, nil
}

func (m *Manager) wrap(session *Session) *managedSession {
	return &managedSession{
		session:  session,
		revealer: reveal.NewController(m.opts.Reveal),
		pending:  make(map[int]bool),
	}
}

// Reveal envia a mensagem e devolve os frames da animação da resposta.
// Uma animação anterior da mesma sessão é finalizada antes.
func (m *Manager) Reveal(ctx context.Context, id, text string) (domain.ChatExchange, <-chan reveal.Frame, error) {
	_, anchor, err := m.Submit(ctx, id, text)
	if err != nil {
		return domain.ChatExchange{}, nil, err
	}

	return m.RevealReply(ctx, id, anchor)
}

// Submit inclui a mensagem do usuário sem responder; a resposta vem de RevealReply.
// A animação em andamento e as respostas ainda pendentes são finalizadas antes.
func (m *Manager) Submit(ctx context.Context, id, text string) (domain.TranscriptEntry, int, error) {
	managed, err := m.get(ctx, id)
	if err != nil {
		return domain.TranscriptEntry{}, 0, err
	}

	return m.submit(ctx, managed, text)
}

func (m *Manager) submit(ctx context.Context, managed *managedSession, text string) (domain.TranscriptEntry, int, error) {
	if strings.TrimSpace(text) == "" {
		return domain.TranscriptEntry{}, 0, ErrEmptyMessage
	}

	managed.flush()

	entry, anchor, err := managed.session.Submit(ctx, text)
	if err != nil {
		return domain.TranscriptEntry{}, 0, err
	}
	managed.track(anchor)

	return entry, anchor, nil
}

// Send envia a mensagem e responde de uma vez, sem animação
func (m *Manager) Send(ctx context.Context, id, text string) (domain.ChatExchange, error) {
	managed, err := m.get(ctx, id)
	if err != nil {
		return domain.ChatExchange{}, err
	}

	_, anchor, err := m.submit(ctx, managed, text)
	if err != nil {
		return domain.ChatExchange{}, err
	}
	managed.take(anchor)

	return managed.session.Respond(ctx, anchor)
}

// RevealReply responde à mensagem na posição anchor e anima a resposta
func (m *Manager) RevealReply(ctx context.Context, id string, anchor int) (domain.ChatExchange, <-chan reveal.Frame, error) {
	managed, err := m.get(ctx, id)
	if err != nil {
		return domain.ChatExchange{}, nil, err
	}

	flushed := managed.take(anchor)

	exchange, err := managed.session.Respond(ctx, anchor)
	if err != nil {
		return domain.ChatExchange{}, nil, err
	}

	frames := managed.revealer.Start(ctx, reveal.Request{
		Text:        exchange.Assistant.Text,
		Anchor:      exchange.Anchor,
		Suggestions: assisting.FollowUps(exchange.Intent, suggestionsLimit),
		Instant:     flushed,
	})

	return exchange, frames, nil
}

// Stop interrompe a animação ativa da sessão. Durante a espera simulada, a resposta pendente
// passa a ser revelada inteira de uma vez. false quando não havia nada em andamento.
func (m *Manager) Stop(ctx context.Context, id string) (bool, error) {
	managed, err := m.get(ctx, id)
	if err != nil {
		return false, err
	}

	return managed.flush(), nil
}

// Reset interrompe a animação ativa e recomeça a conversa
func (m *Manager) Reset(ctx context.Context, id string) (*Session, error) {
	managed, err := m.get(ctx, id)
	if err != nil {
		return nil, err
	}

	managed.flush()
	if err := managed.session.Reset(ctx); err != nil {
		return nil, err
	}

	managed.mu.Lock()
	clear(managed.pending)
	managed.mu.Unlock()

	return managed.session, nil
}

// EvictIdle fecha as sessões sem atividade desde cutoff, acompanhando a limpeza do histórico
func (m *Manager) EvictIdle(cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, managed := range m.sessions {
		if managed.session.LastActivity().Before(cutoff) {
			managed.revealer.Stop()
			delete(m.sessions, id)
			evicted++
		}
	}

	return evicted
}

// Count retorna quantas sessões estão abertas
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}
