package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartwire/heartwire/internal/db"
)

func strPtr(s string) *string { return &s }

func calcAt(score int, name1, name2 string, at time.Time) db.AnalyticsCalculation {
	return db.AnalyticsCalculation{
		SessionID: "s",
		Name1:     name1,
		Name2:     name2,
		Score:     score,
		CreatedAt: at,
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil, time.Now())

	assert.Equal(t, 0, s.TotalCalculations)
	assert.Equal(t, 0, s.AverageLoveScore, "no division by zero on empty log")
	assert.Empty(t, s.MostPopularNames)
	assert.Empty(t, s.ZodiacDistribution)
	require.Len(t, s.HourlyUsage, 24, "all 24 buckets present even when empty")
	for h, hc := range s.HourlyUsage {
		assert.Equal(t, h, hc.Hour)
		assert.Equal(t, 0, hc.Count)
	}
}

func TestSummarize_AverageScoreRounded(t *testing.T) {
	now := time.Now()
	calcs := []db.AnalyticsCalculation{
		calcAt(80, "a", "b", now),
		calcAt(90, "a", "b", now),
		calcAt(70, "a", "b", now),
	}
	s := Summarize(calcs, nil, now)
	assert.Equal(t, 80, s.AverageLoveScore)
}

func TestSummarize_TimeWindows(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.Local)
	calcs := []db.AnalyticsCalculation{
		calcAt(80, "a", "b", now.Add(-1*time.Hour)),       // today + this week
		calcAt(80, "a", "b", now.Add(-48*time.Hour)),      // this week only
		calcAt(80, "a", "b", now.Add(-8*24*time.Hour)),    // neither
		calcAt(80, "a", "b", now.Add(-6*24*time.Hour)),    // this week only
	}
	regs := []db.Registration{
		{CreatedAt: now.Add(-2 * time.Hour)},
		{CreatedAt: now.Add(-3 * 24 * time.Hour)},
	}

	s := Summarize(calcs, regs, now)
	assert.Equal(t, 4, s.TotalCalculations)
	assert.Equal(t, 1, s.CalculationsToday)
	assert.Equal(t, 3, s.CalculationsThisWeek)
	assert.Equal(t, 2, s.TotalRegistrations)
	assert.Equal(t, 1, s.RegistrationsToday)
	assert.Equal(t, 2, s.RegistrationsThisWeek)
}

func TestSummarize_PopularNamesAndTies(t *testing.T) {
	now := time.Now()
	calcs := []db.AnalyticsCalculation{
		calcAt(80, "  Anna ", "Bob", now), // trimmed + lower-cased
		calcAt(80, "anna", "Carl", now),
		calcAt(80, "Dina", "Erik", now), // dina ties with bob/carl at 1
	}

	s := Summarize(calcs, nil, now)
	require.NotEmpty(t, s.MostPopularNames)
	assert.Equal(t, NameCount{Name: "anna", Count: 2}, s.MostPopularNames[0])
	// ties broken by first-seen order in the scan
	assert.Equal(t, "bob", s.MostPopularNames[1].Name)
	assert.Equal(t, "carl", s.MostPopularNames[2].Name)
	assert.Equal(t, "dina", s.MostPopularNames[3].Name)
}

func TestSummarize_PopularNamesTopTen(t *testing.T) {
	now := time.Now()
	var calcs []db.AnalyticsCalculation
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for _, n := range names {
		calcs = append(calcs, calcAt(80, n, n+"2", now))
	}

	s := Summarize(calcs, nil, now)
	assert.Len(t, s.MostPopularNames, 10)
}

func TestSummarize_ZodiacDistribution(t *testing.T) {
	now := time.Now()
	c1 := calcAt(80, "a", "b", now)
	c1.ZodiacSign1 = strPtr("leo")
	c2 := calcAt(80, "a", "b", now)
	c2.ZodiacSign1 = strPtr("leo")
	c3 := calcAt(80, "a", "b", now)
	c3.ZodiacSign1 = strPtr("aries")
	c4 := calcAt(80, "a", "b", now) // no sign, skipped

	s := Summarize([]db.AnalyticsCalculation{c1, c2, c3, c4}, nil, now)
	require.Len(t, s.ZodiacDistribution, 2)
	assert.Equal(t, SignCount{Sign: "leo", Count: 2}, s.ZodiacDistribution[0])
	assert.Equal(t, SignCount{Sign: "aries", Count: 1}, s.ZodiacDistribution[1])
}

func TestSummarize_HourlyUsage(t *testing.T) {
	base := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)
	calcs := []db.AnalyticsCalculation{
		calcAt(80, "a", "b", base.Add(9*time.Hour)),
		calcAt(80, "a", "b", base.Add(9*time.Hour+30*time.Minute)),
		calcAt(80, "a", "b", base.Add(23*time.Hour)),
	}

	s := Summarize(calcs, nil, base.Add(23*time.Hour))
	require.Len(t, s.HourlyUsage, 24)
	assert.Equal(t, 2, s.HourlyUsage[9].Count)
	assert.Equal(t, 1, s.HourlyUsage[23].Count)
	assert.Equal(t, 0, s.HourlyUsage[0].Count)
}

func TestSummarizeUser_Empty(t *testing.T) {
	s := SummarizeUser(nil, time.Now())
	assert.Equal(t, 0, s.TotalCalculations)
	assert.Equal(t, 0, s.AverageScore)
	assert.Empty(t, s.TopNames)
}

func TestSummarizeUser(t *testing.T) {
	now := time.Now()
	calcs := []db.Calculation{
		{Name1: "anna", Name2: "bob", Score: 92, CreatedAt: now},
		{Name1: "anna", Name2: "carl", Score: 85, CreatedAt: now},
		{Name1: "dina", Name2: "erik", Score: 55, CreatedAt: now.Add(-10 * 24 * time.Hour)},
	}

	s := SummarizeUser(calcs, now)
	assert.Equal(t, 3, s.TotalCalculations)
	assert.Equal(t, 77, s.AverageScore) // (92+85+55)/3 = 77.33
	assert.Equal(t, 2, s.HighCompatibility)
	assert.Equal(t, 2, s.RecentActivity)

	assert.Equal(t, 1, s.ScoreDistribution.Excellent)
	assert.Equal(t, 1, s.ScoreDistribution.Great)
	assert.Equal(t, 1, s.ScoreDistribution.Low)

	require.NotEmpty(t, s.TopNames)
	assert.Equal(t, NameCount{Name: "Anna", Count: 2}, s.TopNames[0], "display names are title-cased")
	assert.LessOrEqual(t, len(s.TopNames), 5)
}
