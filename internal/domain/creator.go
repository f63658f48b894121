// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// CreatorDataset agrega todas as métricas de negócio de um criador de conteúdo.
// O conjunto é carregado uma vez e nunca é alterado durante a vida do processo.
type CreatorDataset struct {
	Creator         CreatorInfo     `json:"creatorInfo" yaml:"creatorInfo"`
	Overview        Overview        `json:"overview" yaml:"overview"`
	FollowerSeries  []TrendPoint    `json:"monthlyFollowerGrowth" yaml:"monthlyFollowerGrowth"`
	EarningsSeries  []TrendPoint    `json:"monthlyEarnings" yaml:"monthlyEarnings"`
	Products        []Product       `json:"products" yaml:"products"`
	TopPosts        []Post          `json:"topPosts" yaml:"topPosts"`
	RecentAnalytics RecentAnalytics `json:"recentAnalytics" yaml:"recentAnalytics"`
	TopSearches     []SearchTerm    `json:"topSearches" yaml:"topSearches"`
}

type CreatorInfo struct {
	Name           string `json:"name" yaml:"name"`
	Username       string `json:"username" yaml:"username"`
	JoinDate       string `json:"joinDate" yaml:"joinDate"`
	TotalFollowers int    `json:"totalFollowers" yaml:"totalFollowers"`
}

type Overview struct {
	TotalPosts         int     `json:"totalPosts" yaml:"totalPosts"`
	TotalImpressions   int     `json:"totalImpressions" yaml:"totalImpressions"`
	TotalVisits        int     `json:"totalVisits" yaml:"totalVisits"`
	TotalProductClicks int     `json:"totalProductClicks" yaml:"totalProductClicks"`
	ItemsSold          int     `json:"itemsSold" yaml:"itemsSold"`
	TotalSales         float64 `json:"totalSales" yaml:"totalSales"`
	TotalEarnings      float64 `json:"totalEarnings" yaml:"totalEarnings"` // Comissão sobre as vendas
	AvgCommissionRate  float64 `json:"avgCommissionRate" yaml:"avgCommissionRate"`
}

// TrendPoint é um ponto mensal de uma série (seguidores ou ganhos)
type TrendPoint struct {
	Month string  `json:"month" yaml:"month"`
	Value float64 `json:"value" yaml:"value"`
}

type Product struct {
	ID                 int     `json:"id" yaml:"id"`
	Name               string  `json:"name" yaml:"name"`
	Brand              string  `json:"brand" yaml:"brand"`
	Category           string  `json:"category" yaml:"category"`
	Price              float64 `json:"price" yaml:"price"`
	Commission         float64 `json:"commission" yaml:"commission"`
	CommissionRate     float64 `json:"commissionRate" yaml:"commissionRate"`
	UnitsSold          int     `json:"unitsSold" yaml:"unitsSold"`
	Revenue            float64 `json:"revenue" yaml:"revenue"`
	TotalClicks        int     `json:"totalClicks" yaml:"totalClicks"`
	TotalImpressions   int     `json:"totalImpressions" yaml:"totalImpressions"`
	ConversionRate     float64 `json:"conversionRate" yaml:"conversionRate"` // 0.062 = 6.2%
	Posts              int     `json:"posts" yaml:"posts"`
	AvgPostPerformance string  `json:"avgPostPerformance" yaml:"avgPostPerformance"`
	LastPostDate       string  `json:"lastPostDate" yaml:"lastPostDate"`
}

type Post struct {
	ID             int     `json:"id" yaml:"id"`
	Title          string  `json:"title" yaml:"title"`
	Date           string  `json:"date" yaml:"date"`
	Impressions    int     `json:"impressions" yaml:"impressions"`
	Clicks         int     `json:"clicks" yaml:"clicks"`
	ProductsTagged []int   `json:"productsTagged" yaml:"productsTagged"`
	Engagement     float64 `json:"engagement" yaml:"engagement"`
	Sales          int     `json:"sales" yaml:"sales"`
}

// RecentAnalytics resume os últimos 30 dias
type RecentAnalytics struct {
	NewFollowers  int     `json:"newFollowers" yaml:"newFollowers"`
	TotalVisits   int     `json:"totalVisits" yaml:"totalVisits"`
	ProductClicks int     `json:"productClicks" yaml:"productClicks"`
	ItemsSold     int     `json:"itemsSold" yaml:"itemsSold"`
	TotalSales    float64 `json:"totalSales" yaml:"totalSales"`
}

type SearchTerm struct {
	Term  string `json:"term" yaml:"term"`
	Count int    `json:"count" yaml:"count"`
}
