package scoring

import "strings"

// numerologyTable scores an ordered pair of name numbers (1-9).
// Symmetric by construction; values range 60-90.
var numerologyTable = [9][9]int{
	{85, 60, 75, 70, 80, 65, 90, 75, 70}, // 1
	{60, 85, 70, 80, 65, 90, 75, 70, 85}, // 2
	{75, 70, 85, 60, 90, 75, 80, 85, 65}, // 3
	{70, 80, 60, 85, 75, 70, 65, 90, 80}, // 4
	{80, 65, 90, 75, 85, 80, 70, 65, 75}, // 5
	{65, 90, 75, 70, 80, 85, 85, 80, 70}, // 6
	{90, 75, 80, 65, 70, 85, 85, 75, 80}, // 7
	{75, 70, 85, 90, 65, 80, 75, 85, 70}, // 8
	{70, 85, 65, 80, 75, 70, 80, 70, 85}, // 9
}

// NameNumber reduces a name to its numerological digit (1-9).
//
// Each letter a-z maps to a digit 1-9 by alphabet position mod 9 (0 -> 9),
// non-letter characters contribute nothing, and the digit sum is folded to
// its digital root. A name without letters folds to 0, which is clamped to
// 1 so the pair always lands inside the score table.
func NameNumber(name string) int {
	sum := 0
	for _, r := range strings.ToLower(name) {
		if r < 'a' || r > 'z' {
			continue
		}
		sum += int(r-'a')%9 + 1
	}

	for sum > 9 {
		sum = digitSum(sum)
	}

	if sum < 1 {
		sum = 1
	}
	return sum
}

// NumerologyScore looks up the compatibility of two names' digits.
// Deterministic; always returns a value in [60, 90].
func NumerologyScore(name1, name2 string) int {
	n1 := NameNumber(name1)
	n2 := NameNumber(name2)
	return numerologyTable[n1-1][n2-1]
}

func digitSum(n int) int {
	s := 0
	for n > 0 {
		s += n % 10
		n /= 10
	}
	return s
}
