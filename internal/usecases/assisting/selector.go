package assisting

import (
	"sort"

	"github.com/vfg2006/creator-assistant/internal/domain"
)

// TopProductsLimit é a quantidade de produtos exibida no ranking
const TopProductsLimit = 3

// Select extrai do dataset o recorte de dados usado pelo template do intent
func Select(intent domain.Intent, ds *domain.CreatorDataset) (domain.DataSlice, error) {
	slice := domain.DataSlice{Intent: intent}

	if ds == nil {
		return slice, NewQueryError(ErrEmptyDataset, intent, "dataset ausente")
	}

	switch intent {
	case domain.IntentTopProducts:
		products, err := topProducts(ds.Products, TopProductsLimit)
		if err != nil {
			return slice, NewQueryError(err, intent, "")
		}
		slice.TopProducts = products

	case domain.IntentOverview:
		overview := ds.Overview
		slice.Overview = &overview

	case domain.IntentFollowerGrowth:
		trend, err := trendTail(ds.FollowerSeries)
		if err != nil {
			return slice, NewQueryError(err, intent, "série de seguidores")
		}
		slice.Trend = trend

	case domain.IntentEarnings:
		trend, err := trendTail(ds.EarningsSeries)
		if err != nil {
			return slice, NewQueryError(err, intent, "série de ganhos")
		}
		slice.Trend = trend

	case domain.IntentTopPosts:
		if len(ds.TopPosts) == 0 {
			return slice, NewQueryError(ErrEmptyDataset, intent, "nenhum post disponível")
		}
		slice.Posts = append([]domain.Post(nil), ds.TopPosts...)

	case domain.IntentRecommendations:
		recommendations, err := GenerateRecommendations(ds)
		if err != nil {
			return slice, NewQueryError(err, intent, "")
		}
		slice.Recommendations = recommendations

	case domain.IntentHelp:
		// help não precisa de dados

	default:
		return slice, NewQueryError(ErrUnknownIntent, intent, "")
	}

	return slice, nil
}

// topProducts ordena uma cópia dos produtos por receita (desc) mantendo a ordem original nos empates
func topProducts(products []domain.Product, limit int) ([]domain.Product, error) {
	if len(products) == 0 {
		return nil, ErrEmptyDataset
	}

	sorted := append([]domain.Product(nil), products...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Revenue > sorted[j].Revenue
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	return sorted, nil
}

// trendTail usa os dois últimos pontos da série para calcular valor atual e variação
func trendTail(series []domain.TrendPoint) (*domain.TrendSlice, error) {
	if len(series) < 2 {
		return nil, ErrInsufficientHistory
	}

	latest := series[len(series)-1]
	previous := series[len(series)-2]

	return &domain.TrendSlice{
		Current:  latest.Value,
		Previous: previous.Value,
		Growth:   latest.Value - previous.Value,
		Points:   append([]domain.TrendPoint(nil), series...),
	}, nil
}
