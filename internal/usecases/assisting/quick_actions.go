package assisting

import "github.com/vfg2006/creator-assistant/internal/domain"

var quickActions = []domain.QuickAction{
	{Label: "Top products", Prompt: "How are my top products performing?"},
	{Label: "Overview", Prompt: "How am I doing this month?"},
	{Label: "Followers", Prompt: "How is my follower growth?"},
	{Label: "Earnings", Prompt: "What are my earnings?"},
	{Label: "Best posts", Prompt: "What are my best posts?"},
	{Label: "Recommendations", Prompt: "What should I focus on?"},
}

// QuickActions retorna os prompts prontos oferecidos como atalhos
func QuickActions() []domain.QuickAction {
	out := make([]domain.QuickAction, len(quickActions))
	copy(out, quickActions)
	return out
}

// FollowUps sugere próximos prompts depois de uma resposta, sem repetir o intent respondido
func FollowUps(answered domain.Intent, limit int) []domain.QuickAction {
	suggestions := make([]domain.QuickAction, 0, limit)
	for _, action := range quickActions {
		if len(suggestions) >= limit {
			break
		}
		if Classify(action.Prompt) == answered {
			continue
		}
		suggestions = append(suggestions, action)
	}
	return suggestions
}
