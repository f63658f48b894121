// Package dataset fornece o conjunto de dados do criador: o exemplo embutido ou um arquivo JSON/YAML
package dataset

import "github.com/vfg2006/creator-assistant/internal/domain"

// Sample retorna uma nova cópia do dataset de exemplo
func Sample() *domain.CreatorDataset {
	return &domain.CreatorDataset{
		Creator: domain.CreatorInfo{
			Name:           "Sarah Johnson",
			Username:       "@sarahjstyle",
			JoinDate:       "2023-01-15",
			TotalFollowers: 45230,
		},
		Overview: domain.Overview{
			TotalPosts:         156,
			TotalImpressions:   892450,
			TotalVisits:        45678,
			TotalProductClicks: 12340,
			ItemsSold:          890,
			TotalSales:         45670.50,
			TotalEarnings:      6850.58,
			AvgCommissionRate:  0.15,
		},
		FollowerSeries: []domain.TrendPoint{
			{Month: "Apr", Value: 38200},
			{Month: "May", Value: 39850},
			{Month: "Jun", Value: 41200},
			{Month: "Jul", Value: 42900},
			{Month: "Aug", Value: 44100},
			{Month: "Sep", Value: 45230},
		},
		EarningsSeries: []domain.TrendPoint{
			{Month: "Apr", Value: 4250.30},
			{Month: "May", Value: 5120.45},
			{Month: "Jun", Value: 5890.20},
			{Month: "Jul", Value: 6340.15},
			{Month: "Aug", Value: 6125.80},
			{Month: "Sep", Value: 6850.58},
		},
		Products: []domain.Product{
			{
				ID:                 1,
				Name:               "Wireless Bluetooth Headphones",
				Brand:              "SoundPro",
				Category:           "Electronics",
				Price:              89.99,
				Commission:         13.50,
				CommissionRate:     0.15,
				UnitsSold:          145,
				Revenue:            13048.55,
				TotalClicks:        2340,
				TotalImpressions:   45670,
				ConversionRate:     0.062,
				Posts:              12,
				AvgPostPerformance: "High",
				LastPostDate:       "2025-09-28",
			},
			{
				ID:                 2,
				Name:               "Organic Face Serum with Vitamin C",
				Brand:              "GlowNaturals",
				Category:           "Beauty",
				Price:              45.00,
				Commission:         9.00,
				CommissionRate:     0.20,
				UnitsSold:          203,
				Revenue:            9135.00,
				TotalClicks:        3120,
				TotalImpressions:   67890,
				ConversionRate:     0.065,
				Posts:              18,
				AvgPostPerformance: "High",
				LastPostDate:       "2025-10-01",
			},
			{
				ID:                 3,
				Name:               "Yoga Mat with Carrying Strap",
				Brand:              "FitLife",
				Category:           "Fitness",
				Price:              35.00,
				Commission:         5.25,
				CommissionRate:     0.15,
				UnitsSold:          187,
				Revenue:            6545.00,
				TotalClicks:        2890,
				TotalImpressions:   52340,
				ConversionRate:     0.065,
				Posts:              15,
				AvgPostPerformance: "Medium",
				LastPostDate:       "2025-09-25",
			},
			{
				ID:                 4,
				Name:               "Stainless Steel Water Bottle",
				Brand:              "HydroMax",
				Category:           "Lifestyle",
				Price:              28.00,
				Commission:         4.20,
				CommissionRate:     0.15,
				UnitsSold:          234,
				Revenue:            6552.00,
				TotalClicks:        3450,
				TotalImpressions:   78900,
				ConversionRate:     0.068,
				Posts:              20,
				AvgPostPerformance: "High",
				LastPostDate:       "2025-09-30",
			},
			{
				ID:                 5,
				Name:               "Summer Floral Maxi Dress",
				Brand:              "ChicStyle",
				Category:           "Fashion",
				Price:              65.00,
				Commission:         13.00,
				CommissionRate:     0.20,
				UnitsSold:          121,
				Revenue:            7865.00,
				TotalClicks:        1980,
				TotalImpressions:   43210,
				ConversionRate:     0.061,
				Posts:              9,
				AvgPostPerformance: "Medium",
				LastPostDate:       "2025-09-15",
			},
		},
		TopPosts: []domain.Post{
			{
				ID:             101,
				Title:          "My Morning Skincare Routine 🌅",
				Date:           "2025-10-01",
				Impressions:    23450,
				Clicks:         1890,
				ProductsTagged: []int{2},
				Engagement:     0.081,
				Sales:          34,
			},
			{
				ID:             102,
				Title:          "Best Wireless Headphones Under $100 🎧",
				Date:           "2025-09-28",
				Impressions:    19870,
				Clicks:         1560,
				ProductsTagged: []int{1},
				Engagement:     0.079,
				Sales:          28,
			},
			{
				ID:             103,
				Title:          "Stay Hydrated! My Favorite Water Bottle 💧",
				Date:           "2025-09-30",
				Impressions:    18290,
				Clicks:         1450,
				ProductsTagged: []int{4},
				Engagement:     0.079,
				Sales:          42,
			},
		},
		RecentAnalytics: domain.RecentAnalytics{
			NewFollowers:  1130,
			TotalVisits:   12340,
			ProductClicks: 3890,
			ItemsSold:     234,
			TotalSales:    12456.80,
		},
		TopSearches: []domain.SearchTerm{
			{Term: "wireless headphones", Count: 8920},
			{Term: "yoga mat", Count: 7650},
			{Term: "face serum", Count: 6780},
			{Term: "water bottle", Count: 5430},
			{Term: "summer dress", Count: 4890},
		},
	}
}
