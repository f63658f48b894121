package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-assistant/infrastructure/repository"
	"github.com/vfg2006/creator-assistant/internal/dataset"
	"github.com/vfg2006/creator-assistant/internal/domain"
	"github.com/vfg2006/creator-assistant/internal/reveal"
	"github.com/vfg2006/creator-assistant/internal/usecases/assisting"
	"github.com/vfg2006/creator-assistant/internal/usecases/chatting"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	ctx := context.Background()
	assistant := assisting.NewService(dataset.Sample())
	session := chatting.NewSession("", chatting.DefaultHistoryKey, repository.NewMemoryHistoryRepository(), assistant)
	require.NoError(t, session.Load(ctx))

	m := New(ctx, Options{
		Session:         session,
		QuickActions:    assistant.QuickActions(),
		UserDisplayName: "Dave",
	})

	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	model, cmd := m.Update(msg)
	return model.(Model), cmd
}

func enter(t *testing.T, m Model, text string) Model {
	t.Helper()

	m.input.SetValue(text)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

// deliver entrega a resposta agendada, como o tea.Tick faria depois da latência
func deliver(t *testing.T, m Model) Model {
	t.Helper()

	require.True(t, m.waiting)
	m, _ = update(t, m, responseDueMsg{generation: m.generation, anchor: m.anchor})
	return m
}

func revealAll(t *testing.T, m Model) (Model, int) {
	t.Helper()

	ticks := 0
	for m.state == reveal.StateTyping {
		m, _ = update(t, m, revealTickMsg{generation: m.generation})
		ticks++
		require.Less(t, ticks, 10000, "revelação não terminou")
	}
	return m, ticks
}

func TestModel_SubmitAndReveal(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.InputEnabled())

	m = enter(t, m, "What are my earnings?")
	assert.True(t, m.waiting)
	assert.False(t, m.InputEnabled())
	assert.Equal(t, 1, m.anchor)
	assert.Equal(t, 2, m.session.Len())
	assert.Empty(t, m.input.Value())

	m = deliver(t, m)
	assert.False(t, m.waiting)
	assert.Equal(t, reveal.StateTyping, m.state)
	assert.Equal(t, 2, m.revealing)
	assert.False(t, m.InputEnabled())

	m, ticks := revealAll(t, m)
	assert.Equal(t, m.plan.Total(), ticks)
	assert.True(t, m.InputEnabled())
	assert.Equal(t, -1, m.revealing)
	assert.Len(t, m.suggestions, 3)
	for _, s := range m.suggestions {
		assert.NotEqual(t, domain.IntentEarnings, assisting.Classify(s.Prompt))
	}

	transcript := m.session.Transcript()
	require.Len(t, transcript, 3)
	assert.Contains(t, transcript[2].Text, "$6,850.58")
	assert.Contains(t, m.viewport.View()+m.View(), "Dave")
}

func TestModel_StaleTicksAreDropped(t *testing.T) {
	m := newTestModel(t)
	m = deliver(t, enter(t, m, "How am I doing this month?"))

	stale := m.generation
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, reveal.StateIdle, m.state)

	step := m.step
	m, cmd := update(t, m, revealTickMsg{generation: stale})
	assert.Nil(t, cmd)
	assert.Equal(t, step, m.step)
	assert.Equal(t, reveal.StateIdle, m.state)
}

func TestModel_Stop(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, m Model) Model
	}{
		{
			name: "durante a revelação",
			setup: func(t *testing.T, m Model) Model {
				m = deliver(t, enter(t, m, "What are my best posts?"))
				m, _ = update(t, m, revealTickMsg{generation: m.generation})
				return m
			},
		},
		{
			name: "durante a latência",
			setup: func(t *testing.T, m Model) Model {
				return enter(t, m, "What are my best posts?")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.setup(t, newTestModel(t))

			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

			assert.Equal(t, reveal.StateIdle, m.state)
			assert.False(t, m.waiting)
			assert.True(t, m.InputEnabled())
			assert.Equal(t, m.plan.Total(), m.step)
			assert.Equal(t, "Response revealed.", m.status)
			assert.Equal(t, 3, m.session.Len())
		})
	}
}

func TestModel_StopWhenIdleDoesNothing(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.Empty(t, m.status)
	assert.Equal(t, 1, m.session.Len())
}

func TestModel_InputDisabledWhileBusy(t *testing.T) {
	m := newTestModel(t)
	m = enter(t, m, "What are my earnings?")

	m = enter(t, m, "overview")
	assert.Equal(t, 2, m.session.Len())

	m = deliver(t, m)
	m = enter(t, m, "overview")
	assert.Equal(t, 3, m.session.Len())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}, Alt: true})
	assert.Equal(t, 3, m.session.Len())
}

func TestModel_QuickActionShortcut(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}, Alt: true})
	require.NotNil(t, cmd)
	assert.True(t, m.waiting)

	transcript := m.session.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, assisting.QuickActions()[3].Prompt, transcript[1].Text)
}

func TestModel_EmptyInputIgnored(t *testing.T) {
	m := newTestModel(t)

	m = enter(t, m, "   ")

	assert.False(t, m.waiting)
	assert.Equal(t, 1, m.session.Len())
}

func TestModel_Reset(t *testing.T) {
	m := newTestModel(t)
	m = deliver(t, enter(t, m, "What are my earnings?"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})

	assert.Equal(t, reveal.StateIdle, m.state)
	assert.True(t, m.InputEnabled())
	assert.Equal(t, "Conversation cleared.", m.status)
	require.Equal(t, 1, m.session.Len())
	assert.Equal(t, assisting.HelpText(), m.session.Transcript()[0].Text)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_AnchorScroll(t *testing.T) {
	m := newTestModel(t)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	m = model.(Model)

	m = deliver(t, enter(t, m, "What are my earnings?"))
	m, _ = revealAll(t, m)

	_, anchorLine := m.renderTranscript()
	assert.Greater(t, anchorLine, 0)
	assert.Equal(t, anchorLine, m.viewport.YOffset)
	assert.True(t, strings.HasPrefix(m.viewport.View(), "Dave"))
}

func TestModel_RestoredTranscriptAnchor(t *testing.T) {
	tests := []struct {
		name       string
		messages   []string
		wantAnchor int
	}{
		{name: "sem mensagens do usuário", wantAnchor: 0},
		{name: "uma troca", messages: []string{"What are my earnings?"}, wantAnchor: 1},
		{name: "várias trocas", messages: []string{"What are my best posts?", "What are my earnings?"}, wantAnchor: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			history := repository.NewMemoryHistoryRepository()
			assistant := assisting.NewService(dataset.Sample())

			previous := chatting.NewSession("", chatting.DefaultHistoryKey, history, assistant)
			require.NoError(t, previous.Load(ctx))
			for _, message := range tt.messages {
				_, err := previous.Send(ctx, message)
				require.NoError(t, err)
			}

			// nova execução do chat sobre o mesmo histórico
			session := chatting.NewSession("", chatting.DefaultHistoryKey, history, assistant)
			require.NoError(t, session.Load(ctx))

			m := New(ctx, Options{Session: session, UserDisplayName: "Dave"})
			assert.Equal(t, tt.wantAnchor, m.anchor)

			m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 12})
			_, anchorLine := m.renderTranscript()
			assert.Equal(t, anchorLine, m.viewport.YOffset)
			if tt.wantAnchor > 0 {
				assert.Greater(t, m.viewport.YOffset, 0)
				assert.True(t, strings.HasPrefix(m.viewport.View(), "Dave"))
			}
		})
	}
}

func TestRenderMarkup(t *testing.T) {
	plain := lipgloss.NewStyle()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "sem marcadores", text: "hello", want: "hello"},
		{name: "negrito fechado", text: "a **b** c", want: "a b c"},
		{name: "marcador aberto durante a revelação", text: "a **b", want: "a b"},
		{name: "marcador recém-aberto", text: "a **", want: "a "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderMarkup(tt.text, plain))
		})
	}
}
