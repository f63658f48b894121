package reveal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnits_CharMode(t *testing.T) {
	units := Units("a **b**\nç🎯", ModeChar)
	assert.Equal(t, []string{"a", " ", "**", "b", "**", "\n", "ç", "🎯"}, units)
}

func TestUnits_LineMode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "várias linhas", text: "one\n\n**two**\nthree", want: []string{"one\n", "\n", "**two**\n", "three"}},
		{name: "linha única", text: "single", want: []string{"single"}},
		{name: "termina com quebra", text: "a\nb\n", want: []string{"a\n", "b"}},
		{name: "vazio", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Units(tt.text, ModeLine))
		})
	}
}

func TestModeFor(t *testing.T) {
	short := strings.Repeat("é", 600)
	long := strings.Repeat("é", 601)

	assert.Equal(t, ModeChar, ModeFor(short, 0))
	assert.Equal(t, ModeLine, ModeFor(long, 0))
	assert.Equal(t, ModeLine, ModeFor("abcdef", 5))
	assert.Equal(t, ModeChar, ModeFor("abcde", 5))
}

func TestPlan_PrefixesNeverSplitMarkup(t *testing.T) {
	text := "🎯 **Your Top Performing Products**\n\nYour best seller is **Headphones**!"
	plan := NewPlan(text, 0)
	require.Equal(t, ModeChar, plan.Mode)

	previous := ""
	for step := 1; step <= plan.Total(); step++ {
		prefix := plan.Prefix(step)
		assert.True(t, strings.HasPrefix(text, prefix))
		assert.Greater(t, len(prefix), len(previous))
		// um marcador nunca aparece pela metade
		assert.Equal(t, 0, strings.Count(prefix, "*")%2, prefix)
		previous = prefix
	}

	assert.Equal(t, text, plan.Prefix(plan.Total()))
	assert.Equal(t, text, plan.Prefix(plan.Total()+10))
	assert.Empty(t, plan.Prefix(0))
}

func TestPlan_LineModeKeepsTrailingNewline(t *testing.T) {
	text := strings.Repeat("line of text\n", 60)
	plan := NewPlan(text, 100)

	require.Equal(t, ModeLine, plan.Mode)
	assert.Equal(t, 60, plan.Total())
	assert.Equal(t, "line of text\n", plan.Prefix(1))
	assert.Equal(t, text, plan.Prefix(plan.Total()))
}

func TestPlan_Empty(t *testing.T) {
	plan := NewPlan("", 0)
	assert.Equal(t, 0, plan.Total())
	assert.Empty(t, plan.Prefix(1))
}
