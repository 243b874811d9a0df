package scoring

import (
	"math"
	"strings"
)

// NameHarmonyScore compares the vowel/consonant balance of two names.
//
// Consonant counts are derived as length minus vowels, so non-letter
// characters count as consonants. The ,1 floor in the denominators guards
// the all-vowel / all-consonant cases. The result is clamped to [0, 100];
// unclamped, pathological inputs could drift outside the range.
func NameHarmonyScore(name1, name2 string) int {
	v1 := countVowels(name1)
	v2 := countVowels(name2)
	c1 := len(name1) - v1
	c2 := len(name2) - v2

	vowelRatio := math.Abs(float64(v1-v2)) / float64(max3(v1, v2, 1))
	consonantRatio := math.Abs(float64(c1-c2)) / float64(max3(c1, c2, 1))

	score := int(math.Round((1 - (vowelRatio+consonantRatio)/2) * 100))
	return clamp(score, 0, 100)
}

func countVowels(s string) int {
	n := 0
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			n++
		}
	}
	return n
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
