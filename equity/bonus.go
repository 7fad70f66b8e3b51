package equity

import (
	"math"
	"time"

	"github.com/domino14/wordsprint/tilemapping"
)

const (
	DefaultBudgetSeconds  = 15
	DefaultBonusPerSecond = 5
)

// Breakdown is the score of an accepted word.
type Breakdown struct {
	Base  int
	Bonus int
	Total int
}

// Calculator turns an accepted word and the time taken into a score.
type Calculator struct {
	dist           *tilemapping.LetterDistribution
	budgetSeconds  float64
	bonusPerSecond float64
}

func NewCalculator(dist *tilemapping.LetterDistribution, budget time.Duration, bonusPerSecond int) *Calculator {
	return &Calculator{
		dist:           dist,
		budgetSeconds:  budget.Seconds(),
		bonusPerSecond: float64(bonusPerSecond),
	}
}

// TimeBonus is the speed bonus for an answer that took elapsedSeconds.
// Answers slower than the budget get nothing; otherwise every second left
// is worth bonusPerSecond points, rounded to the nearest point.
func (c *Calculator) TimeBonus(elapsedSeconds float64) int {
	if elapsedSeconds > c.budgetSeconds {
		return 0
	}
	return int(math.Round((c.budgetSeconds - elapsedSeconds) * c.bonusPerSecond))
}

// Breakdown scores word; it returns tilemapping.ErrInvalidInput for words
// that are not alphabetic.
func (c *Calculator) Breakdown(word string, elapsed time.Duration) (Breakdown, error) {
	base, err := c.dist.WordScore(word)
	if err != nil {
		return Breakdown{}, err
	}
	bonus := c.TimeBonus(elapsed.Seconds())
	return Breakdown{Base: base, Bonus: bonus, Total: base + bonus}, nil
}

// TimeBonus uses the default 15 second budget and 5 points per second.
func TimeBonus(elapsedSeconds float64) int {
	c := Calculator{budgetSeconds: DefaultBudgetSeconds, bonusPerSecond: DefaultBonusPerSecond}
	return c.TimeBonus(elapsedSeconds)
}
