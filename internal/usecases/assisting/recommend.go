package assisting

import (
	"fmt"

	"github.com/vfg2006/creator-assistant/internal/domain"
)

const (
	// Abaixo deste total de posts sugerimos aumentar a frequência
	postingFrequencyThreshold = 200
	// Abaixo desta conversão média sugerimos otimizar os posts
	conversionRateThreshold = 0.07
)

// categoryStats acumula receita e conversão por categoria
type categoryStats struct {
	category       string
	revenue        float64
	conversionRate float64
	count          int
}

// aggregateCategories agrupa os produtos por categoria preservando a ordem em que aparecem
func aggregateCategories(products []domain.Product) []*categoryStats {
	index := make(map[string]*categoryStats)
	ordered := make([]*categoryStats, 0)

	for _, product := range products {
		stats, exists := index[product.Category]
		if !exists {
			stats = &categoryStats{category: product.Category}
			index[product.Category] = stats
			ordered = append(ordered, stats)
		}
		stats.revenue += product.Revenue
		stats.conversionRate += product.ConversionRate
		stats.count++
	}

	return ordered
}

// TopCategory retorna a categoria de maior receita total; empates ficam com a primeira vista
func TopCategory(products []domain.Product) (string, float64, error) {
	categories := aggregateCategories(products)
	if len(categories) == 0 {
		return "", 0, ErrEmptyDataset
	}

	top := categories[0]
	for _, stats := range categories[1:] {
		if stats.revenue > top.revenue {
			top = stats
		}
	}

	return top.category, top.revenue, nil
}

// AverageConversionRate calcula a média simples da taxa de conversão dos produtos
func AverageConversionRate(products []domain.Product) float64 {
	if len(products) == 0 {
		return 0
	}

	sum := 0.0
	for _, product := range products {
		sum += product.ConversionRate
	}
	return sum / float64(len(products))
}

// GenerateRecommendations monta as recomendações a partir do desempenho do criador
func GenerateRecommendations(ds *domain.CreatorDataset) ([]domain.Recommendation, error) {
	topCategory, _, err := TopCategory(ds.Products)
	if err != nil {
		return nil, err
	}

	recommendations := []domain.Recommendation{
		{
			Type:    domain.RecommendationContent,
			Message: fmt.Sprintf("Your %s products are performing best. Consider creating more content in this category.", topCategory),
		},
	}

	if ds.Overview.TotalPosts < postingFrequencyThreshold {
		recommendations = append(recommendations, domain.Recommendation{
			Type:    domain.RecommendationFrequency,
			Message: "Increasing your posting frequency could help you reach more followers and drive more sales.",
		})
	}

	if AverageConversionRate(ds.Products) < conversionRateThreshold {
		recommendations = append(recommendations, domain.Recommendation{
			Type:    domain.RecommendationOptimization,
			Message: "Your conversion rate is good but has room to grow. Try adding more product details and lifestyle shots to your posts.",
		})
	}

	return recommendations, nil
}
