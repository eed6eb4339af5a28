package blog

import (
	"fmt"
	"sort"
	"time"
)

type ArchiveBucket struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	Count     int    `json:"count"`
	URLParams string `json:"url_params"`
}

// BuildArchive groups publish times by UTC (year, month), newest bucket first.
func BuildArchive(published []time.Time) []ArchiveBucket {
	type key struct{ y, m int }
	counts := map[key]int{}
	for _, t := range published {
		u := t.UTC()
		counts[key{u.Year(), int(u.Month())}]++
	}

	out := make([]ArchiveBucket, 0, len(counts))
	for k, n := range counts {
		out = append(out, ArchiveBucket{
			Year:      k.y,
			Month:     k.m,
			MonthName: time.Month(k.m).String(),
			Count:     n,
			URLParams: fmt.Sprintf("?year=%d&month=%d", k.y, k.m),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out
}

// MonthRange returns the UTC [start, end) window for a year, or a single
// month of it when month is between 1 and 12.
func MonthRange(year, month int) (time.Time, time.Time) {
	if month < 1 || month > 12 {
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
