package game

import (
	"io"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/wordsprint/round"
)

// RoundLog is one round as written to the round log.
type RoundLog struct {
	Round          int      `yaml:"round"`
	RequiredLength int      `yaml:"required_length"`
	Outcome        string   `yaml:"outcome"`
	Word           string   `yaml:"word,omitempty"`
	ElapsedSeconds float64  `yaml:"elapsed_seconds"`
	BaseScore      int      `yaml:"base_score"`
	Bonus          int      `yaml:"bonus"`
	Total          int      `yaml:"total"`
	Rejected       []string `yaml:"rejected,omitempty"`
}

func newRoundLog(n int, res *round.Result) RoundLog {
	return RoundLog{
		Round:          n,
		RequiredLength: res.RequiredLength,
		Outcome:        res.Outcome.String(),
		Word:           res.Word,
		ElapsedSeconds: res.Elapsed.Seconds(),
		BaseScore:      res.BaseScore,
		Bonus:          res.Bonus,
		Total:          res.Total,
		Rejected: lo.Map(res.Rejections, func(r round.Rejection, _ int) string {
			return r.Word + ": " + r.Reason.String()
		}),
	}
}

// Each round is written as a one-element YAML sequence so the whole log
// parses as a single list.
func writeRoundLog(w io.Writer, n int, res *round.Result) error {
	out, err := yaml.Marshal([]RoundLog{newRoundLog(n, res)})
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
