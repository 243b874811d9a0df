// Package analytics computes derived aggregate views over event log
// snapshots. All functions are pure: they never touch storage.
package analytics

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/heartwire/heartwire/internal/db"
)

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SignCount struct {
	Sign  string `json:"sign"`
	Count int    `json:"count"`
}

type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// Summary is the operator-facing aggregate over the analytics log.
type Summary struct {
	TotalCalculations     int         `json:"total_calculations"`
	TotalRegistrations    int         `json:"total_registrations"`
	CalculationsToday     int         `json:"calculations_today"`
	CalculationsThisWeek  int         `json:"calculations_this_week"`
	RegistrationsToday    int         `json:"registrations_today"`
	RegistrationsThisWeek int         `json:"registrations_this_week"`
	AverageLoveScore      int         `json:"average_love_score"`
	MostPopularNames      []NameCount `json:"most_popular_names"`
	ZodiacDistribution    []SignCount `json:"zodiac_distribution"`
	HourlyUsage           []HourCount `json:"hourly_usage"`
}

// ScoreDistribution buckets scores into five fixed ranges.
type ScoreDistribution struct {
	Excellent int `json:"excellent"` // 90-100
	Great     int `json:"great"`     // 80-89
	Good      int `json:"good"`      // 70-79
	Fair      int `json:"fair"`      // 60-69
	Low       int `json:"low"`       // <60
}

// UserSummary is the per-actor/session view over the history log.
type UserSummary struct {
	TotalCalculations int               `json:"totalCalculations"`
	AverageScore      int               `json:"averageScore"`
	HighCompatibility int               `json:"highCompatibility"`
	RecentActivity    int               `json:"recentActivity"`
	TopNames          []NameCount       `json:"topNames"`
	ScoreDistribution ScoreDistribution `json:"scoreDistribution"`
}

// Summarize computes the operator summary over snapshots of the analytics
// and registration logs.
func Summarize(calcs []db.AnalyticsCalculation, regs []db.Registration, now time.Time) Summary {
	weekAgo := now.Add(-7 * 24 * time.Hour)

	s := Summary{
		TotalCalculations:  len(calcs),
		TotalRegistrations: len(regs),
		MostPopularNames:   []NameCount{},
		ZodiacDistribution: []SignCount{},
	}

	scoreSum := 0
	hourly := [24]int{}
	for _, c := range calcs {
		scoreSum += c.Score
		if sameLocalDay(c.CreatedAt, now) {
			s.CalculationsToday++
		}
		if !c.CreatedAt.Before(weekAgo) {
			s.CalculationsThisWeek++
		}
		hourly[c.CreatedAt.Local().Hour()]++
	}
	for _, r := range regs {
		if sameLocalDay(r.CreatedAt, now) {
			s.RegistrationsToday++
		}
		if !r.CreatedAt.Before(weekAgo) {
			s.RegistrationsThisWeek++
		}
	}

	if len(calcs) > 0 {
		s.AverageLoveScore = roundedMean(scoreSum, len(calcs))
	}

	s.MostPopularNames = popularNames(calcs, 10)
	s.ZodiacDistribution = zodiacDistribution(calcs)

	s.HourlyUsage = make([]HourCount, 24)
	for h := 0; h < 24; h++ {
		s.HourlyUsage[h] = HourCount{Hour: h, Count: hourly[h]}
	}

	return s
}

// SummarizeUser computes the per-partition summary over a history log
// slice. Top names are title-cased for display.
func SummarizeUser(calcs []db.Calculation, now time.Time) UserSummary {
	s := UserSummary{TopNames: []NameCount{}}
	if len(calcs) == 0 {
		return s
	}

	weekAgo := now.Add(-7 * 24 * time.Hour)
	scoreSum := 0
	counts := map[string]int{}
	order := []string{}

	for _, c := range calcs {
		scoreSum += c.Score
		if c.Score >= 80 {
			s.HighCompatibility++
		}
		if !c.CreatedAt.Before(weekAgo) {
			s.RecentActivity++
		}
		bucketInto(&s.ScoreDistribution, c.Score)

		for _, raw := range []string{c.Name1, c.Name2} {
			name := strings.ToLower(strings.TrimSpace(raw))
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	s.TotalCalculations = len(calcs)
	s.AverageScore = roundedMean(scoreSum, len(calcs))

	titled := cases.Title(language.English)
	for _, nc := range rankCounts(counts, order, 5) {
		s.TopNames = append(s.TopNames, NameCount{Name: titled.String(nc.Name), Count: nc.Count})
	}

	return s
}

// popularNames counts both name slots of every record, lower-cased and
// trimmed, ties broken by first-seen order in the scan.
func popularNames(calcs []db.AnalyticsCalculation, topN int) []NameCount {
	counts := map[string]int{}
	order := []string{}
	for _, c := range calcs {
		for _, raw := range []string{c.Name1, c.Name2} {
			name := strings.ToLower(strings.TrimSpace(raw))
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}
	return rankCounts(counts, order, topN)
}

func zodiacDistribution(calcs []db.AnalyticsCalculation) []SignCount {
	counts := map[string]int{}
	order := []string{}
	for _, c := range calcs {
		if c.ZodiacSign1 == nil || *c.ZodiacSign1 == "" {
			continue
		}
		sign := *c.ZodiacSign1
		if _, seen := counts[sign]; !seen {
			order = append(order, sign)
		}
		counts[sign]++
	}

	out := make([]SignCount, 0, len(order))
	for _, sign := range order {
		out = append(out, SignCount{Sign: sign, Count: counts[sign]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// rankCounts orders by count descending, first-seen order on ties, and
// keeps the top N.
func rankCounts(counts map[string]int, order []string, topN int) []NameCount {
	out := make([]NameCount, 0, len(order))
	for _, name := range order {
		out = append(out, NameCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

func bucketInto(d *ScoreDistribution, score int) {
	switch {
	case score >= 90:
		d.Excellent++
	case score >= 80:
		d.Great++
	case score >= 70:
		d.Good++
	case score >= 60:
		d.Fair++
	default:
		d.Low++
	}
}

func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// roundedMean is the arithmetic mean rounded to the nearest integer.
func roundedMean(sum, n int) int {
	if n == 0 {
		return 0
	}
	return int(float64(sum)/float64(n) + 0.5)
}
