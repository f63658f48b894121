package assisting

import (
	"strings"

	"github.com/vfg2006/creator-assistant/internal/domain"
)

// Rule associa um predicado sobre o texto em minúsculas a um intent
type Rule struct {
	Intent domain.Intent
	Match  func(lower string) bool
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// A ordem das regras é a política de desempate: a primeira que casar vence.
var rules = []Rule{
	{
		Intent: domain.IntentTopProducts,
		Match: func(s string) bool {
			return containsAny(s, "top product", "best product", "performing product")
		},
	},
	{
		Intent: domain.IntentOverview,
		Match: func(s string) bool {
			return containsAny(s, "how am i doing", "overview", "summary")
		},
	},
	{
		Intent: domain.IntentFollowerGrowth,
		Match: func(s string) bool {
			return containsAny(s, "follower", "growing", "community")
		},
	},
	{
		Intent: domain.IntentEarnings,
		Match: func(s string) bool {
			return containsAny(s, "earning", "money", "income", "commission")
		},
	},
	{
		Intent: domain.IntentTopPosts,
		Match: func(s string) bool {
			return strings.Contains(s, "post") && containsAny(s, "top", "best")
		},
	},
	{
		Intent: domain.IntentRecommendations,
		Match: func(s string) bool {
			return containsAny(s, "what should i", "what can i", "recommendation")
		},
	},
}

// Rules retorna uma cópia da tabela de regras na ordem de avaliação
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Classify detecta o intent de uma mensagem. Sem correspondência, retorna help.
func Classify(text string) domain.Intent {
	intent, _ := classify(text)
	return intent
}

// classify também informa se alguma regra casou, para o serviço registrar ErrUnknownIntent
func classify(text string) (domain.Intent, bool) {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		if rule.Match(lower) {
			return rule.Intent, true
		}
	}
	return domain.IntentHelp, false
}
