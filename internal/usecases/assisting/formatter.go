package assisting

import (
	"fmt"
	"math"
	"strings"

	"github.com/vfg2006/creator-assistant/internal/domain"
	"github.com/vfg2006/creator-assistant/pkg/utils"
)

const (
	// Crescimento de seguidores acima disto é considerado bom ritmo
	followerGrowthInsightThreshold = 3.0
	// Crescimento de ganhos acima disto é considerado excelente
	earningsGrowthInsightThreshold = 5.0
	// Quantidade de meses exibidos na tendência
	trendMonths = 3
)

// Render transforma o recorte de dados no texto da resposta.
// Quando o crescimento não pode ser calculado (ErrInfiniteGrowth) o texto é produzido
// mesmo assim e o erro é devolvido junto para registro.
func Render(slice domain.DataSlice) (string, error) {
	switch slice.Intent {
	case domain.IntentTopProducts:
		if len(slice.TopProducts) == 0 {
			return "", NewQueryError(ErrEmptyDataset, slice.Intent, "nenhum produto selecionado")
		}
		return formatTopProducts(slice.TopProducts), nil

	case domain.IntentOverview:
		if slice.Overview == nil {
			return "", NewQueryError(ErrEmptyDataset, slice.Intent, "visão geral ausente")
		}
		return formatOverview(slice.Overview), nil

	case domain.IntentFollowerGrowth:
		if slice.Trend == nil {
			return "", NewQueryError(ErrInsufficientHistory, slice.Intent, "")
		}
		return formatFollowerGrowth(slice.Trend)

	case domain.IntentEarnings:
		if slice.Trend == nil {
			return "", NewQueryError(ErrInsufficientHistory, slice.Intent, "")
		}
		return formatEarnings(slice.Trend)

	case domain.IntentTopPosts:
		if len(slice.Posts) == 0 {
			return "", NewQueryError(ErrEmptyDataset, slice.Intent, "nenhum post selecionado")
		}
		return formatTopPosts(slice.Posts), nil

	case domain.IntentRecommendations:
		return formatRecommendations(slice.Recommendations), nil

	default:
		return HelpText(), nil
	}
}

// GrowthPercent calcula delta / (current - delta) * 100 com uma casa decimal.
// O divisor é o valor do período anterior; zero resulta em ErrInfiniteGrowth.
func GrowthPercent(current, delta float64) (float64, error) {
	previous := current - delta
	if previous == 0 {
		return 0, ErrInfiniteGrowth
	}

	percent := delta / previous * 100
	if math.IsInf(percent, 0) || math.IsNaN(percent) {
		return 0, ErrInfiniteGrowth
	}

	return utils.RoundWithOneDecimalPlace(percent), nil
}

func formatTopProducts(products []domain.Product) string {
	top := products[0]

	var b strings.Builder
	b.WriteString("🎯 **Your Top Performing Products**\n\n")
	fmt.Fprintf(&b, "Your best seller this month is **%s**!\n\n", top.Name)
	b.WriteString("📊 **Performance:**\n")
	fmt.Fprintf(&b, "• %s units sold\n", utils.FormatInt(top.UnitsSold))
	fmt.Fprintf(&b, "• %s in total revenue\n", utils.FormatCurrency(top.Revenue))
	fmt.Fprintf(&b, "• %s conversion rate\n", utils.FormatPercent(top.ConversionRate, 1))
	fmt.Fprintf(&b, "• Featured in %d posts\n\n", top.Posts)

	if len(products) > 1 {
		b.WriteString("**Other Top Performers:**\n")
		for i := 1; i < len(products); i++ {
			product := products[i]
			fmt.Fprintf(&b, "%d. %s - %s units (%s)\n",
				i+1, product.Name, utils.FormatInt(product.UnitsSold), utils.FormatCurrency(product.Revenue))
		}
	}

	b.WriteString("\n💡 **Insight:** This product is driving significant revenue. Consider creating more content featuring it!")

	return b.String()
}

func formatOverview(data *domain.Overview) string {
	var b strings.Builder
	b.WriteString("📈 **Your Business Overview**\n\n")
	b.WriteString("Here's how your business is doing:\n\n")
	b.WriteString("**Content & Reach:**\n")
	fmt.Fprintf(&b, "• %s total posts created\n", utils.FormatInt(data.TotalPosts))
	fmt.Fprintf(&b, "• %s total impressions\n", utils.FormatInt(data.TotalImpressions))
	fmt.Fprintf(&b, "• %s profile visits\n\n", utils.FormatInt(data.TotalVisits))

	b.WriteString("**Engagement:**\n")
	fmt.Fprintf(&b, "• %s product clicks\n", utils.FormatInt(data.TotalProductClicks))
	fmt.Fprintf(&b, "• %s items sold\n\n", utils.FormatInt(data.ItemsSold))

	b.WriteString("**Revenue:**\n")
	fmt.Fprintf(&b, "• %s in total sales\n", utils.FormatCurrency(data.TotalSales))
	fmt.Fprintf(&b, "• %s earned in commissions\n", utils.FormatCurrency(data.TotalEarnings))
	fmt.Fprintf(&b, "• %s average commission rate\n\n", utils.FormatPercent(data.AvgCommissionRate, 0))

	if data.TotalProductClicks > 0 {
		clickToSale := float64(data.ItemsSold) / float64(data.TotalProductClicks)
		fmt.Fprintf(&b, "💡 **Insight:** Your %s click-to-sale conversion rate shows your audience trusts your recommendations!",
			utils.FormatPercent(clickToSale, 1))
	} else {
		b.WriteString("💡 **Insight:** Tag products in your posts to start tracking clicks and sales!")
	}

	return b.String()
}

func recentPoints(points []domain.TrendPoint) []domain.TrendPoint {
	if len(points) <= trendMonths {
		return points
	}
	return points[len(points)-trendMonths:]
}

func formatFollowerGrowth(data *domain.TrendSlice) (string, error) {
	growthPercent, growthErr := GrowthPercent(data.Current, data.Growth)

	var b strings.Builder
	b.WriteString("👥 **Your Community Growth**\n\n")
	fmt.Fprintf(&b, "You currently have **%s followers**\n\n", utils.FormatInt(roundInt(data.Current)))
	b.WriteString("📊 **Recent Growth:**\n")
	if data.Growth >= 0 {
		fmt.Fprintf(&b, "• +%s new followers this month\n", utils.FormatInt(roundInt(data.Growth)))
	} else {
		fmt.Fprintf(&b, "• %s followers lost this month\n", utils.FormatInt(roundInt(-data.Growth)))
	}
	fmt.Fprintf(&b, "• %s growth rate\n\n", growthLabel(growthPercent, growthErr))

	b.WriteString("**3-Month Trend:**\n")
	for _, month := range recentPoints(data.Points) {
		fmt.Fprintf(&b, "• %s: %s followers\n", month.Month, utils.FormatInt(roundInt(month.Value)))
	}

	b.WriteString("\n💡 **Insight:** ")
	if growthErr == nil && growthPercent > followerGrowthInsightThreshold {
		b.WriteString("Great momentum! Your consistent posting is attracting new followers.")
	} else {
		b.WriteString("Consider posting more consistently to accelerate your growth.")
	}

	if growthErr != nil {
		return b.String(), NewQueryError(growthErr, domain.IntentFollowerGrowth, "")
	}
	return b.String(), nil
}

func formatEarnings(data *domain.TrendSlice) (string, error) {
	growthPercent, growthErr := GrowthPercent(data.Current, data.Growth)

	var b strings.Builder
	b.WriteString("💰 **Your Earnings**\n\n")
	fmt.Fprintf(&b, "You earned **%s** this month!\n\n", utils.FormatCurrency(data.Current))
	b.WriteString("📊 **Performance:**\n")
	if data.Growth >= 0 {
		fmt.Fprintf(&b, "• %s more than last month\n", utils.FormatCurrency(data.Growth))
	} else {
		fmt.Fprintf(&b, "• %s less than last month\n", utils.FormatCurrency(-data.Growth))
	}
	fmt.Fprintf(&b, "• %s growth\n\n", growthLabel(growthPercent, growthErr))

	b.WriteString("**3-Month Trend:**\n")
	for _, month := range recentPoints(data.Points) {
		fmt.Fprintf(&b, "• %s: %s\n", month.Month, utils.FormatCurrency(month.Value))
	}

	b.WriteString("\n💡 **Insight:** ")
	if growthErr == nil && growthPercent > earningsGrowthInsightThreshold {
		b.WriteString("Excellent growth! You're on track for a great year.")
	} else {
		b.WriteString("Focus on your top-performing products to boost earnings further.")
	}

	if growthErr != nil {
		return b.String(), NewQueryError(growthErr, domain.IntentEarnings, "")
	}
	return b.String(), nil
}

func growthLabel(percent float64, err error) string {
	if err != nil {
		return "n/a"
	}
	return utils.FormatPercentValue(percent, 1)
}

func formatTopPosts(posts []domain.Post) string {
	var b strings.Builder
	b.WriteString("⭐ **Your Top Performing Posts**\n\n")

	for i, post := range posts {
		fmt.Fprintf(&b, "**%d. %s**\n", i+1, post.Title)
		fmt.Fprintf(&b, "• %s impressions\n", utils.FormatInt(post.Impressions))
		fmt.Fprintf(&b, "• %s clicks (%s engagement)\n", utils.FormatInt(post.Clicks), utils.FormatPercent(post.Engagement, 1))
		fmt.Fprintf(&b, "• %s sales generated\n\n", utils.FormatInt(post.Sales))
	}

	b.WriteString("💡 **Insight:** Posts with lifestyle imagery and clear product benefits tend to perform best!")

	return b.String()
}

func formatRecommendations(recommendations []domain.Recommendation) string {
	var b strings.Builder
	b.WriteString("🎯 **Personalized Recommendations**\n\n")
	b.WriteString("Based on your performance data, here's what you can focus on:\n\n")

	for i, rec := range recommendations {
		fmt.Fprintf(&b, "**%d. %s**\n\n", i+1, rec.Message)
	}

	b.WriteString("💡 Want more specific advice? Ask me about your top products, earnings, or follower growth!")

	return b.String()
}

// HelpText é o template de ajuda, também usado como mensagem de boas-vindas
func HelpText() string {
	var b strings.Builder
	b.WriteString("👋 Hi! I'm your AI business assistant.\n\n")
	b.WriteString("I can help you understand your creator business better. Try asking me:\n\n")
	for _, action := range QuickActions() {
		fmt.Fprintf(&b, "• \"%s\"\n", action.Prompt)
	}
	b.WriteString("\nWhat would you like to know?")

	return b.String()
}

// InsufficientDataText é a resposta de fallback quando os dados do intent não estão disponíveis
func InsufficientDataText(intent domain.Intent) string {
	switch intent {
	case domain.IntentFollowerGrowth:
		return "👥 **Your Community Growth**\n\nI need at least two months of follower data to show your growth. Check back next month!"
	case domain.IntentEarnings:
		return "💰 **Your Earnings**\n\nI need at least two months of earnings data to compare your performance. Check back next month!"
	default:
		return "📭 **No data yet**\n\nI don't have enough data to answer that yet. Start tagging products in your posts and ask me again!"
	}
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
