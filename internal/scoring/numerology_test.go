package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameNumber(t *testing.T) {
	// alice: a=1 l=3 i=9 c=3 e=5 -> 21 -> 3
	assert.Equal(t, 3, NameNumber("Alice"))
	// bob: b=2 o=6 b=2 -> 10 -> 1
	assert.Equal(t, 1, NameNumber("Bob"))
	// letters wrap: j maps back to 1, z to 8
	assert.Equal(t, 1, NameNumber("j"))
	assert.Equal(t, 8, NameNumber("z"))
	// non-letters contribute nothing
	assert.Equal(t, NameNumber("Alice"), NameNumber("A-l i.c*e!"))
}

func TestNameNumber_EmptyNameClampsToOne(t *testing.T) {
	// A name without letters folds to 0; the scorer clamps to digit 1 so
	// the table lookup stays in range.
	assert.Equal(t, 1, NameNumber(""))
	assert.Equal(t, 1, NameNumber("123 !!"))
}

func TestNumerologyScore_Deterministic(t *testing.T) {
	// Alice -> 3, Bob -> 1, table[3][1] = 75
	assert.Equal(t, 75, NumerologyScore("Alice", "Bob"))
	// symmetric by construction
	assert.Equal(t, 75, NumerologyScore("Bob", "Alice"))
}

func TestNumerologyScore_Range(t *testing.T) {
	names := []string{"Anna", "Bob", "Charlotte", "Dmitri", "", "Zoë", "O'Brien"}
	for _, a := range names {
		for _, b := range names {
			s := NumerologyScore(a, b)
			assert.GreaterOrEqual(t, s, 60)
			assert.LessOrEqual(t, s, 90)
		}
	}
}
