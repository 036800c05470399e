package weather

import (
	"math"
	"time"
)

const maxSummaryDays = 5

// Nearest returns the entry whose time is closest to target.
func (f Forecast) Nearest(target time.Time) (ForecastEntry, bool) {
	if len(f.Entries) == 0 {
		return ForecastEntry{}, false
	}
	best := f.Entries[0]
	bestDiff := math.Abs(float64(best.Time.Sub(target)))
	for _, entry := range f.Entries[1:] {
		diff := math.Abs(float64(entry.Time.Sub(target)))
		if diff < bestDiff {
			best = entry
			bestDiff = diff
		}
	}
	return best, true
}

// Daily groups entries by local date, keeping at most five days.
func (f Forecast) Daily() []DailySummary {
	zone := f.Zone()
	out := make([]DailySummary, 0, maxSummaryDays)
	index := make(map[string]int)
	middays := make(map[string]float64)

	for _, entry := range f.Entries {
		local := entry.Time.In(zone)
		date := local.Format("2006-01-02")
		i, ok := index[date]
		if !ok {
			if len(out) == maxSummaryDays {
				continue
			}
			out = append(out, DailySummary{
				Date:        date,
				MinTemp:     entry.Temperature,
				MaxTemp:     entry.Temperature,
				Description: entry.Description,
			})
			i = len(out) - 1
			index[date] = i
			middays[date] = math.Abs(float64(local.Hour() - 12))
			continue
		}
		day := &out[i]
		day.MinTemp = math.Min(day.MinTemp, entry.Temperature)
		day.MaxTemp = math.Max(day.MaxTemp, entry.Temperature)
		if dist := math.Abs(float64(local.Hour() - 12)); dist < middays[date] {
			middays[date] = dist
			day.Description = entry.Description
		}
	}
	return out
}
