package round

import (
	"time"

	"github.com/domino14/wordsprint/lexicon"
)

type Outcome int

const (
	OutcomeAccepted Outcome = iota
	OutcomeTimedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeTimedOut:
		return "timed-out"
	}
	return "unknown"
}

// Rejection is a word the player submitted that did not count.
type Rejection struct {
	Word   string
	Reason lexicon.Rejection
}

// Result is everything that happened in one round. Total is the round's
// score and is 0 for a timeout.
type Result struct {
	RequiredLength int
	Outcome        Outcome
	Word           string
	Elapsed        time.Duration
	BaseScore      int
	Bonus          int
	Total          int
	Rejections     []Rejection
}
