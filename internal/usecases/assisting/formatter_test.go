package assisting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-assistant/internal/domain"
)

func TestGrowthPercent(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		delta   float64
		want    float64
		wantErr error
	}{
		{name: "ganhos do exemplo", current: 6850.58, delta: 724.78, want: 11.8},
		{name: "seguidores do exemplo", current: 45230, delta: 1130, want: 2.6},
		{name: "queda", current: 900, delta: -100, want: -10},
		{name: "sem variação", current: 500, delta: 0, want: 0},
		{name: "período anterior zerado", current: 100, delta: 100, wantErr: ErrInfiniteGrowth},
		{name: "tudo zerado", current: 0, delta: 0, wantErr: ErrInfiniteGrowth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GrowthPercent(tt.current, tt.delta)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestRender_TopProducts(t *testing.T) {
	slice, err := Select(domain.IntentTopProducts, sampleDataset())
	require.NoError(t, err)

	text, err := Render(slice)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "🎯 **Your Top Performing Products**"))
	assert.Contains(t, text, "Your best seller this month is **Wireless Bluetooth Headphones**!")
	assert.Contains(t, text, "• 145 units sold")
	assert.Contains(t, text, "• $13,048.55 in total revenue")
	assert.Contains(t, text, "• 6.2% conversion rate")
	assert.Contains(t, text, "2. Organic Face Serum with Vitamin C - 203 units ($9,135.00)")
	assert.Contains(t, text, "3. Summer Floral Maxi Dress")
	assert.NotContains(t, text, "Yoga Mat")
}

func TestRender_Overview(t *testing.T) {
	slice, err := Select(domain.IntentOverview, sampleDataset())
	require.NoError(t, err)

	text, err := Render(slice)
	require.NoError(t, err)

	assert.Contains(t, text, "• 156 total posts created")
	assert.Contains(t, text, "• 892,450 total impressions")
	assert.Contains(t, text, "• 12,340 product clicks")
	assert.Contains(t, text, "• $45,670.50 in total sales")
	assert.Contains(t, text, "• $6,850.58 earned in commissions")
	assert.Contains(t, text, "• 15% average commission rate")
	assert.Contains(t, text, "Your 7.2% click-to-sale conversion rate")
}

func TestRender_OverviewWithoutClicks(t *testing.T) {
	text, err := Render(domain.DataSlice{
		Intent:   domain.IntentOverview,
		Overview: &domain.Overview{},
	})
	require.NoError(t, err)
	assert.Contains(t, text, "Tag products in your posts")
}

func TestRender_FollowerGrowth(t *testing.T) {
	slice, err := Select(domain.IntentFollowerGrowth, sampleDataset())
	require.NoError(t, err)

	text, err := Render(slice)
	require.NoError(t, err)

	assert.Contains(t, text, "You currently have **45,230 followers**")
	assert.Contains(t, text, "• +1,130 new followers this month")
	assert.Contains(t, text, "• 2.6% growth rate")
	assert.Contains(t, text, "• Jul: 42,900 followers\n• Aug: 44,100 followers\n• Sep: 45,230 followers")
	assert.NotContains(t, text, "Jun:")
	assert.Contains(t, text, "Consider posting more consistently")
}

func TestRender_FollowerGrowthAboveThreshold(t *testing.T) {
	text, err := Render(domain.DataSlice{
		Intent: domain.IntentFollowerGrowth,
		Trend: &domain.TrendSlice{
			Current:  39850,
			Previous: 38200,
			Growth:   1650,
			Points:   []domain.TrendPoint{{Month: "Apr", Value: 38200}, {Month: "May", Value: 39850}},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, text, "**39,850 followers**")
	assert.Contains(t, text, "+1,650 new followers")
	assert.Contains(t, text, "4.3% growth rate")
	assert.Contains(t, text, "• Apr: 38,200 followers\n• May: 39,850 followers")
	assert.Contains(t, text, "Great momentum!")
}

func TestRender_Earnings(t *testing.T) {
	slice, err := Select(domain.IntentEarnings, sampleDataset())
	require.NoError(t, err)

	text, err := Render(slice)
	require.NoError(t, err)

	assert.Contains(t, text, "You earned **$6,850.58** this month!")
	assert.Contains(t, text, "• $724.78 more than last month")
	assert.Contains(t, text, "• 11.8% growth")
	assert.Contains(t, text, "• Jul: $6,340.15\n• Aug: $6,125.80\n• Sep: $6,850.58")
	assert.Contains(t, text, "Excellent growth!")
}

func TestRender_EarningsDecline(t *testing.T) {
	text, err := Render(domain.DataSlice{
		Intent: domain.IntentEarnings,
		Trend: &domain.TrendSlice{
			Current:  900,
			Previous: 1000,
			Growth:   -100,
			Points:   []domain.TrendPoint{{Month: "Aug", Value: 1000}, {Month: "Sep", Value: 900}},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, text, "• $100.00 less than last month")
	assert.Contains(t, text, "• -10.0% growth")
	assert.Contains(t, text, "Focus on your top-performing products")
}

func TestRender_InfiniteGrowth(t *testing.T) {
	for _, intent := range []domain.Intent{domain.IntentFollowerGrowth, domain.IntentEarnings} {
		t.Run(intent.String(), func(t *testing.T) {
			text, err := Render(domain.DataSlice{
				Intent: intent,
				Trend: &domain.TrendSlice{
					Current:  250,
					Previous: 0,
					Growth:   250,
					Points:   []domain.TrendPoint{{Month: "Aug", Value: 0}, {Month: "Sep", Value: 250}},
				},
			})

			assert.ErrorIs(t, err, ErrInfiniteGrowth)
			assert.Equal(t, CodeInfiniteGrowth, ErrorCode(err))
			assert.NotEmpty(t, text)
			assert.Contains(t, text, "n/a")
			assert.NotContains(t, text, "Inf")
		})
	}
}

func TestRender_TopPosts(t *testing.T) {
	slice, err := Select(domain.IntentTopPosts, sampleDataset())
	require.NoError(t, err)

	text, err := Render(slice)
	require.NoError(t, err)

	assert.Contains(t, text, "**1. My Morning Skincare Routine 🌅**")
	assert.Contains(t, text, "(8.1% engagement)")
	assert.Contains(t, text, "**3. Stay Hydrated! My Favorite Water Bottle 💧**")
}

func TestRender_Recommendations(t *testing.T) {
	slice, err := Select(domain.IntentRecommendations, sampleDataset())
	require.NoError(t, err)

	text, err := Render(slice)
	require.NoError(t, err)

	assert.Contains(t, text, "**1. Your Electronics products are performing best.")
	assert.Contains(t, text, "**2. Increasing your posting frequency")
	assert.Contains(t, text, "**3. Your conversion rate is good")
}

func TestRender_MissingData(t *testing.T) {
	tests := []struct {
		name    string
		slice   domain.DataSlice
		wantErr error
	}{
		{name: "produtos vazios", slice: domain.DataSlice{Intent: domain.IntentTopProducts}, wantErr: ErrEmptyDataset},
		{name: "visão geral ausente", slice: domain.DataSlice{Intent: domain.IntentOverview}, wantErr: ErrEmptyDataset},
		{name: "tendência ausente", slice: domain.DataSlice{Intent: domain.IntentEarnings}, wantErr: ErrInsufficientHistory},
		{name: "posts vazios", slice: domain.DataSlice{Intent: domain.IntentTopPosts}, wantErr: ErrEmptyDataset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := Render(tt.slice)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, text)
		})
	}
}

func TestHelpText_ListsEveryQuickAction(t *testing.T) {
	help := HelpText()
	for _, action := range QuickActions() {
		assert.Contains(t, help, "\""+action.Prompt+"\"")
	}
	assert.True(t, strings.HasSuffix(help, "What would you like to know?"))
}
