package scoring

import (
	"strings"
	"time"
)

// DefaultZodiacScore is used when either sign is absent or the pair is
// not covered by the table.
const DefaultZodiacScore = 75

// zodiacTable holds per-sign compatibility rows. The table is not required
// to be symmetric: row[a][b] may differ from row[b][a].
var zodiacTable = map[string]map[string]int{
	"aries": {
		"aries": 80, "taurus": 60, "gemini": 85, "cancer": 65, "leo": 95, "virgo": 70,
		"libra": 85, "scorpio": 75, "sagittarius": 90, "capricorn": 65, "aquarius": 85, "pisces": 70,
	},
	"taurus": {
		"aries": 60, "taurus": 85, "gemini": 70, "cancer": 90, "leo": 75, "virgo": 95,
		"libra": 80, "scorpio": 85, "sagittarius": 65, "capricorn": 90, "aquarius": 70, "pisces": 85,
	},
	"gemini": {
		"aries": 85, "taurus": 70, "gemini": 80, "cancer": 70, "leo": 85, "virgo": 75,
		"libra": 95, "scorpio": 70, "sagittarius": 85, "capricorn": 60, "aquarius": 90, "pisces": 75,
	},
	"cancer": {
		"aries": 65, "taurus": 90, "gemini": 70, "cancer": 85, "leo": 80, "virgo": 85,
		"libra": 75, "scorpio": 95, "sagittarius": 60, "capricorn": 80, "aquarius": 65, "pisces": 90,
	},
	"leo": {
		"aries": 95, "taurus": 75, "gemini": 85, "cancer": 80, "leo": 85, "virgo": 70,
		"libra": 90, "scorpio": 80, "sagittarius": 95, "capricorn": 70, "aquarius": 85, "pisces": 75,
	},
	"virgo": {
		"aries": 70, "taurus": 95, "gemini": 75, "cancer": 85, "leo": 70, "virgo": 80,
		"libra": 75, "scorpio": 85, "sagittarius": 65, "capricorn": 95, "aquarius": 70, "pisces": 80,
	},
	"libra": {
		"aries": 85, "taurus": 80, "gemini": 95, "cancer": 75, "leo": 90, "virgo": 75,
		"libra": 85, "scorpio": 75, "sagittarius": 80, "capricorn": 70, "aquarius": 95, "pisces": 80,
	},
	"scorpio": {
		"aries": 75, "taurus": 85, "gemini": 70, "cancer": 95, "leo": 80, "virgo": 85,
		"libra": 75, "scorpio": 90, "sagittarius": 70, "capricorn": 85, "aquarius": 75, "pisces": 95,
	},
	"sagittarius": {
		"aries": 90, "taurus": 65, "gemini": 85, "cancer": 60, "leo": 95, "virgo": 65,
		"libra": 80, "scorpio": 70, "sagittarius": 85, "capricorn": 65, "aquarius": 90, "pisces": 70,
	},
	"capricorn": {
		"aries": 65, "taurus": 90, "gemini": 60, "cancer": 80, "leo": 70, "virgo": 95,
		"libra": 70, "scorpio": 85, "sagittarius": 65, "capricorn": 85, "aquarius": 70, "pisces": 80,
	},
	"aquarius": {
		"aries": 85, "taurus": 70, "gemini": 90, "cancer": 65, "leo": 85, "virgo": 70,
		"libra": 95, "scorpio": 75, "sagittarius": 90, "capricorn": 70, "aquarius": 85, "pisces": 75,
	},
	"pisces": {
		"aries": 70, "taurus": 85, "gemini": 75, "cancer": 90, "leo": 75, "virgo": 80,
		"libra": 80, "scorpio": 95, "sagittarius": 70, "capricorn": 80, "aquarius": 75, "pisces": 85,
	},
}

// ZodiacScore looks up sign-pair compatibility. Either sign being empty,
// or a pair missing from the table, yields DefaultZodiacScore.
func ZodiacScore(sign1, sign2 string) int {
	if sign1 == "" || sign2 == "" {
		return DefaultZodiacScore
	}
	row, ok := zodiacTable[strings.ToLower(sign1)]
	if !ok {
		return DefaultZodiacScore
	}
	score, ok := row[strings.ToLower(sign2)]
	if !ok {
		return DefaultZodiacScore
	}
	return score
}

// SignForDate derives the zodiac sign from a birth date using fixed
// inclusive month/day boundaries.
func SignForDate(t time.Time) string {
	month := int(t.Month())
	day := t.Day()

	switch {
	case (month == 3 && day >= 21) || (month == 4 && day <= 19):
		return "aries"
	case (month == 4 && day >= 20) || (month == 5 && day <= 20):
		return "taurus"
	case (month == 5 && day >= 21) || (month == 6 && day <= 20):
		return "gemini"
	case (month == 6 && day >= 21) || (month == 7 && day <= 22):
		return "cancer"
	case (month == 7 && day >= 23) || (month == 8 && day <= 22):
		return "leo"
	case (month == 8 && day >= 23) || (month == 9 && day <= 22):
		return "virgo"
	case (month == 9 && day >= 23) || (month == 10 && day <= 22):
		return "libra"
	case (month == 10 && day >= 23) || (month == 11 && day <= 21):
		return "scorpio"
	case (month == 11 && day >= 22) || (month == 12 && day <= 21):
		return "sagittarius"
	case (month == 12 && day >= 22) || (month == 1 && day <= 19):
		return "capricorn"
	case (month == 1 && day >= 20) || (month == 2 && day <= 18):
		return "aquarius"
	default:
		return "pisces"
	}
}
