package equity

import (
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/domino14/wordsprint/tilemapping"
)

func TestTimeBonus(t *testing.T) {
	is := is.New(t)
	is.Equal(TimeBonus(5), 50)
	is.Equal(TimeBonus(15), 0)
	is.Equal(TimeBonus(16), 0)
	is.Equal(TimeBonus(0), 75)
	is.Equal(TimeBonus(15.01), 0)
	is.Equal(TimeBonus(14.5), 3)
	is.Equal(TimeBonus(2.25), 64)
}

func TestCalculatorCustomBudget(t *testing.T) {
	is := is.New(t)
	c := NewCalculator(nil, 30*time.Second, 2)
	is.Equal(c.TimeBonus(10), 40)
	is.Equal(c.TimeBonus(30), 0)
	is.Equal(c.TimeBonus(31), 0)
}

func TestBreakdown(t *testing.T) {
	is := is.New(t)
	ld, err := tilemapping.EnglishLetterDistribution()
	is.NoErr(err)
	c := NewCalculator(ld, DefaultBudgetSeconds*time.Second, DefaultBonusPerSecond)

	bd, err := c.Breakdown("apple", 5*time.Second)
	is.NoErr(err)
	is.Equal(bd, Breakdown{Base: 9, Bonus: 50, Total: 59})

	bd, err = c.Breakdown("GRAPE", 16*time.Second)
	is.NoErr(err)
	is.Equal(bd, Breakdown{Base: 8, Bonus: 0, Total: 8})

	_, err = c.Breakdown("app1e", time.Second)
	is.True(errors.Is(err, tilemapping.ErrInvalidInput))
}
