package utils

import "time"

const dateLayout = "2006-01-02"

// ParseDate interpreta datas no formato 2006-01-02 em UTC; vazio retorna o valor zero
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}

	return time.ParseInLocation(dateLayout, dateStr, time.UTC)
}

// DaysAgo retorna o instante days dias antes de now, em UTC
func DaysAgo(now time.Time, days int) time.Time {
	return now.UTC().AddDate(0, 0, -days)
}
