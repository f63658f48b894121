package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "ganhos do mês", value: 6850.58, want: "$6,850.58"},
		{name: "diferença com erro de ponto flutuante", value: 6850.58 - 6125.80, want: "$724.78"},
		{name: "casas decimais fixas", value: 45670.5, want: "$45,670.50"},
		{name: "valor pequeno", value: 9, want: "$9.00"},
		{name: "negativo", value: -214.35, want: "-$214.35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.value))
		})
	}
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "892,450", FormatInt(892450))
	assert.Equal(t, "156", FormatInt(156))
	assert.Equal(t, "1,650", FormatInt(1650))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "6.2%", FormatPercent(0.062, 1))
	assert.Equal(t, "15%", FormatPercent(0.15, 0))
	assert.Equal(t, "8.1%", FormatPercent(0.081, 1))
	assert.Equal(t, "11.8%", FormatPercentValue(11.83, 1))
}

func TestRoundWithOneDecimalPlace(t *testing.T) {
	assert.Equal(t, 11.8, RoundWithOneDecimalPlace(11.831))
	assert.Equal(t, 0.0, RoundWithOneDecimalPlace(0))
}
