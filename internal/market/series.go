package market

import (
	"sort"

	"CryptoBot/internal/model"
)

// Normalize turns raw samples into a bounded daily series: points are sorted
// by time ascending, collapsed to one sample per calendar day (the last
// sample of each day wins), and trimmed oldest-first to at most max entries.
func Normalize(points []model.PricePoint, max int) []model.PricePoint {
	if len(points) == 0 {
		return nil
	}

	sorted := make([]model.PricePoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})

	// Collapse intraday samples: walking in ascending order, the last
	// sample seen for a date overwrites earlier ones.
	byDay := make(map[string]model.PricePoint, len(sorted))
	days := make([]string, 0, len(sorted))
	for _, p := range sorted {
		d := p.Date()
		if _, seen := byDay[d]; !seen {
			days = append(days, d)
		}
		byDay[d] = p
	}

	daily := make([]model.PricePoint, 0, len(days))
	for _, d := range days {
		daily = append(daily, byDay[d])
	}

	if max > 0 && len(daily) > max {
		daily = daily[len(daily)-max:]
	}
	return daily
}
