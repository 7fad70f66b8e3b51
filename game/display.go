package game

import (
	"fmt"
	"strings"

	"github.com/domino14/wordsprint/round"
	"github.com/domino14/wordsprint/stats"
)

// Reporter narrates a whole game: the round narration plus the round
// headers and the final tally.
type Reporter interface {
	round.Reporter
	RoundStarted(n, of int)
	GameOver(st *State)
}

type TextReporter struct {
	*round.TextReporter
}

func NewTextReporter(r *round.TextReporter) *TextReporter {
	return &TextReporter{TextReporter: r}
}

func (r *TextReporter) RoundStarted(n, of int) {
	r.ShowMessage(fmt.Sprintf("\nRound %d of %d", n, of))
}

func (r *TextReporter) GameOver(st *State) {
	r.ShowMessage(st.ToDisplayText())
}

// ToDisplayText is the end-of-game summary.
func (st *State) ToDisplayText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nYou've completed %d rounds!\n", st.RoundsPlayed)
	fmt.Fprintf(&sb, "Your total score is %d.\n", st.TotalScore)
	if st.Scores.Count() > 0 {
		lo, hi := st.Scores.ConfidenceInterval(stats.Confidence95)
		fmt.Fprintf(&sb, "Best round: %.0f, average: %.1f (95%% CI %.1f-%.1f)",
			st.Scores.Max(), st.Scores.Mean(), lo, hi)
	}
	return sb.String()
}
