package domain

// Intent identifica a categoria de uma pergunta e seleciona o recorte de dados e o template
type Intent string

const (
	IntentTopProducts     Intent = "top_products"
	IntentOverview        Intent = "overview"
	IntentFollowerGrowth  Intent = "follower_growth"
	IntentEarnings        Intent = "earnings"
	IntentTopPosts        Intent = "top_posts"
	IntentRecommendations Intent = "recommendations"
	IntentHelp            Intent = "help"
)

// Intents lista todos os intents conhecidos na ordem de prioridade do classificador, com help por último
var Intents = []Intent{
	IntentTopProducts,
	IntentOverview,
	IntentFollowerGrowth,
	IntentEarnings,
	IntentTopPosts,
	IntentRecommendations,
	IntentHelp,
}

func (i Intent) String() string {
	return string(i)
}

// Valid informa se o intent é um dos valores conhecidos
func (i Intent) Valid() bool {
	for _, known := range Intents {
		if i == known {
			return true
		}
	}
	return false
}

// TrendSlice é o recorte de uma série mensal usado pelos templates de crescimento
type TrendSlice struct {
	Current  float64      `json:"current"`
	Previous float64      `json:"previous"`
	Growth   float64      `json:"growth"` // Current - Previous
	Points   []TrendPoint `json:"trend"`
}

type RecommendationType string

const (
	RecommendationContent      RecommendationType = "content"
	RecommendationFrequency    RecommendationType = "frequency"
	RecommendationOptimization RecommendationType = "optimization"
)

type Recommendation struct {
	Type    RecommendationType `json:"type"`
	Message string             `json:"message"`
}

// DataSlice é o resultado da seleção de dados para um intent.
// Apenas o campo correspondente ao intent é preenchido.
type DataSlice struct {
	Intent          Intent           `json:"intent"`
	TopProducts     []Product        `json:"top_products,omitempty"`
	Overview        *Overview        `json:"overview,omitempty"`
	Trend           *TrendSlice      `json:"trend,omitempty"`
	Posts           []Post           `json:"posts,omitempty"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// QuickAction é um prompt pronto oferecido como atalho na interface
type QuickAction struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}
