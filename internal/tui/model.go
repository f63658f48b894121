// Package tui implementa o chat de terminal: transcript rolável, campo de entrada,
// indicador de digitação e a revelação animada das respostas.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vfg2006/creator-assistant/internal/domain"
	"github.com/vfg2006/creator-assistant/internal/reveal"
	"github.com/vfg2006/creator-assistant/internal/usecases/chatting"
)

const (
	assistantName    = "AI Assistant"
	suggestionsLimit = 3

	// linhas ocupadas por cabeçalho, entrada e rodapé
	chromeHeight = 7
)

type Options struct {
	Session         *chatting.Session
	QuickActions    []domain.QuickAction
	UserDisplayName string
	ResponseDelay   time.Duration
	Reveal          reveal.Options
}

// responseDueMsg encerra a latência simulada da mensagem em anchor
type responseDueMsg struct {
	generation int
	anchor     int
}

// revealTickMsg avança um passo da animação. Ticks de uma geração antiga são descartados.
type revealTickMsg struct {
	generation int
}

type Model struct {
	ctx      context.Context
	session  *chatting.Session
	actions  []domain.QuickAction
	userName string
	delay    time.Duration
	opts     reveal.Options
	styles   Styles

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	width  int
	height int
	ready  bool

	// estado da conversa
	state       reveal.State
	waiting     bool
	generation  int
	anchor      int
	revealing   int // índice da resposta sendo revelada, -1 quando nenhuma
	plan        reveal.Plan
	step        int
	intent      domain.Intent
	suggestions []domain.QuickAction
	status      string
}

func New(ctx context.Context, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "Ask about your products, followers, earnings..."
	input.CharLimit = 500
	input.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	userName := opts.UserDisplayName
	if userName == "" {
		userName = "You"
	}

	revealOpts := opts.Reveal
	if revealOpts.LongThreshold <= 0 {
		revealOpts.LongThreshold = reveal.DefaultLongThreshold
	}
	if revealOpts.CharDelay <= 0 {
		revealOpts.CharDelay = reveal.DefaultCharDelay
	}
	if revealOpts.LineDelay <= 0 {
		revealOpts.LineDelay = reveal.DefaultLineDelay
	}

	return Model{
		ctx:       ctx,
		session:   opts.Session,
		actions:   opts.QuickActions,
		userName:  userName,
		delay:     opts.ResponseDelay,
		opts:      revealOpts,
		styles:    DefaultStyles(),
		input:     input,
		viewport:  viewport.New(80, 20),
		spinner:   sp,
		state:     reveal.StateIdle,
		anchor:    lastUserEntry(opts.Session),
		revealing: -1,
	}
}

// lastUserEntry é a posição da última mensagem do usuário de um transcript restaurado, 0 quando não há
func lastUserEntry(session *chatting.Session) int {
	if session == nil {
		return 0
	}

	transcript := session.Transcript()
	for i := len(transcript) - 1; i >= 0; i-- {
		if transcript[i].Role == domain.RoleUser {
			return i
		}
	}
	return 0
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// InputEnabled é falso durante a latência simulada e a revelação
func (m Model) InputEnabled() bool {
	return !m.waiting && m.state == reveal.StateIdle
}

// Run abre o chat em tela cheia até o usuário sair ou ctx ser cancelado
func Run(ctx context.Context, opts Options) error {
	program := tea.NewProgram(New(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
