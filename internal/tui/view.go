package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vfg2006/creator-assistant/internal/domain"
	"github.com/vfg2006/creator-assistant/internal/reveal"
)

const boldMarker = "**"

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.styles.Header.Render("Creator Assistant")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.viewport.View(),
		m.renderStatus(),
		m.styles.Input.Render(m.input.View()),
		m.renderFooter(),
	)
}

// renderTranscript retorna o transcript desenhado e a linha onde começa a mensagem âncora
func (m Model) renderTranscript() (string, int) {
	width := m.viewport.Width
	if width < 1 {
		width = 80
	}
	body := m.styles.Body.Width(width)

	var b strings.Builder
	anchorLine := 0
	lines := 0

	for i, entry := range m.session.Transcript() {
		if i == m.anchor {
			anchorLine = lines
		}

		text := entry.Text
		revealing := i == m.revealing
		if revealing {
			text = m.plan.Prefix(m.step)
		}

		var block strings.Builder
		block.WriteString(m.renderName(entry.Role))
		block.WriteString("\n")
		block.WriteString(body.Render(RenderMarkup(text, m.styles.Bold)))
		block.WriteString("\n")
		if entry.Role == domain.RoleAssistant && !revealing {
			block.WriteString(m.styles.Disclaimer.Render(reveal.Disclaimer))
			block.WriteString("\n")
		}
		block.WriteString("\n")

		rendered := block.String()
		lines += strings.Count(rendered, "\n")
		b.WriteString(rendered)
	}

	return b.String(), anchorLine
}

func (m Model) renderName(role domain.Role) string {
	if role == domain.RoleUser {
		return m.styles.UserName.Render(m.userName)
	}
	return m.styles.BotName.Render(assistantName)
}

func (m Model) renderStatus() string {
	switch {
	case m.waiting:
		return m.styles.Status.Render(fmt.Sprintf("%s %s is typing...", m.spinner.View(), assistantName))
	case m.state == reveal.StateTyping:
		return m.styles.Status.Render("esc to show the full answer")
	case len(m.suggestions) > 0:
		labels := make([]string, 0, len(m.suggestions))
		for _, s := range m.suggestions {
			labels = append(labels, m.styles.Suggestion.Render(s.Prompt))
		}
		return m.styles.Status.Render("Try: ") + strings.Join(labels, m.styles.Status.Render(" · "))
	default:
		return m.styles.Status.Render(m.status)
	}
}

func (m Model) renderFooter() string {
	shortcuts := make([]string, 0, len(m.actions))
	for i, action := range m.actions {
		shortcuts = append(shortcuts, fmt.Sprintf("alt+%d %s", i+1, action.Label))
	}

	help := "enter send · esc stop · ctrl+l clear · ctrl+c quit"
	if len(shortcuts) > 0 {
		help += "\n" + strings.Join(shortcuts, " · ")
	}

	return m.styles.Status.Render(help)
}

// RenderMarkup aplica negrito aos trechos entre marcadores **. Um marcador sem par
// deixa o restante em negrito, o que acontece durante a revelação.
func RenderMarkup(text string, bold lipgloss.Style) string {
	if !strings.Contains(text, boldMarker) {
		return text
	}

	parts := strings.Split(text, boldMarker)
	var b strings.Builder
	for i, part := range parts {
		if i%2 == 1 && part != "" {
			b.WriteString(bold.Render(part))
			continue
		}
		b.WriteString(part)
	}
	return b.String()
}
