package utils

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// RoundWithOneDecimalPlace arredonda para uma casa decimal
func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// FormatInt formata inteiros com separador de milhar (ex: 892,450)
func FormatInt(n int) string {
	return humanize.Comma(int64(n))
}

// FormatCurrency formata valores monetários em dólar com duas casas fixas (ex: $6,850.58)
func FormatCurrency(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// FormatPercent converte uma taxa (0.062) em porcentagem com casas decimais fixas (6.2%)
func FormatPercent(rate float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, rate*100)
}

// FormatPercentValue formata um valor que já está em porcentagem (11.8 -> 11.8%)
func FormatPercentValue(value float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, value)
}
