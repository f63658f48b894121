package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-assistant/internal/reveal"
	"github.com/vfg2006/creator-assistant/internal/usecases/assisting"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case responseDueMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		return m.respond(msg.anchor)

	case revealTickMsg:
		if msg.generation != m.generation || m.state != reveal.StateTyping {
			return m, nil
		}
		return m.advance()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.waiting {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.generation++
		return m, tea.Quit

	case tea.KeyEsc:
		return m.stop()

	case tea.KeyCtrlL:
		return m.reset()

	case tea.KeyEnter:
		if !m.InputEnabled() {
			return m, nil
		}
		text := m.input.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		return m.submit(text)

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// alt+1 .. alt+6 enviam os atalhos
	if msg.Alt && len(msg.Runes) == 1 {
		if index := int(msg.Runes[0] - '1'); index >= 0 && index < len(m.actions) {
			if !m.InputEnabled() {
				return m, nil
			}
			return m.submit(m.actions[index].Prompt)
		}
	}

	if !m.InputEnabled() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit inclui a pergunta no transcript e agenda a resposta após a latência simulada
func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	_, anchor, err := m.session.Submit(m.ctx, text)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	m.input.Reset()
	m.input.Blur()
	m.waiting = true
	m.anchor = anchor
	m.suggestions = nil
	m.status = ""
	m.generation++
	m = m.refresh()

	generation := m.generation
	due := func(time.Time) tea.Msg {
		return responseDueMsg{generation: generation, anchor: anchor}
	}

	return m, tea.Batch(m.spinner.Tick, tea.Tick(m.delay, due))
}

// respond calcula a resposta e inicia a revelação
func (m Model) respond(anchor int) (tea.Model, tea.Cmd) {
	exchange, err := m.session.Respond(m.ctx, anchor)
	m.waiting = false
	if err != nil {
		logrus.WithError(err).Error("tui: erro ao responder mensagem")
		m.status = err.Error()
		m.input.Focus()
		return m.refresh(), nil
	}

	m.intent = exchange.Intent
	m.plan = reveal.NewPlan(exchange.Assistant.Text, m.opts.LongThreshold)
	m.revealing = m.session.Len() - 1
	m.step = 0
	m.state = reveal.StateTyping
	m.generation++

	if m.plan.Total() == 0 {
		return m.finish(false), nil
	}

	m = m.refresh()
	return m, m.tick()
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	m.step++
	if m.step >= m.plan.Total() {
		return m.finish(false), nil
	}

	m = m.refresh()
	return m, m.tick()
}

func (m Model) tick() tea.Cmd {
	delay := m.opts.CharDelay
	if m.plan.Mode == reveal.ModeLine {
		delay = m.opts.LineDelay
	}

	generation := m.generation
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return revealTickMsg{generation: generation}
	})
}

// stop revela a resposta inteira na hora. Durante a latência a resposta é calculada imediatamente.
func (m Model) stop() (tea.Model, tea.Cmd) {
	if m.waiting {
		model, _ := m.respond(m.anchor)
		m = model.(Model)
	}

	if m.state != reveal.StateTyping {
		return m, nil
	}

	return m.finish(true), nil
}

// finish encerra a revelação, mostra as sugestões e reabilita a entrada
func (m Model) finish(cancelled bool) Model {
	m.step = m.plan.Total()
	m.state = reveal.StateIdle
	m.revealing = -1
	m.generation++
	m.suggestions = assisting.FollowUps(m.intent, suggestionsLimit)
	if cancelled {
		m.status = "Response revealed."
	}
	m.input.Focus()

	return m.refresh()
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.generation++
	m.waiting = false
	m.state = reveal.StateIdle
	m.revealing = -1
	m.suggestions = nil
	m.anchor = 0

	if err := m.session.Reset(m.ctx); err != nil {
		m.status = err.Error()
	} else {
		m.status = "Conversation cleared."
	}

	m.input.Reset()
	m.input.Focus()

	return m.refresh(), nil
}

func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height

	contentHeight := height - chromeHeight
	if contentHeight < 1 {
		contentHeight = 1
	}
	contentWidth := width
	if contentWidth < 1 {
		contentWidth = 1
	}

	m.viewport.Width = contentWidth
	m.viewport.Height = contentHeight
	m.input.Width = max(contentWidth-6, 1)
	m.ready = true

	return m.refresh()
}

// refresh redesenha o transcript mantendo a mensagem âncora no topo
func (m Model) refresh() Model {
	content, anchorLine := m.renderTranscript()
	m.viewport.SetContent(content)
	m.viewport.SetYOffset(anchorLine)
	return m
}
