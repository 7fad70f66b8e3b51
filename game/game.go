package game

import (
	"context"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsprint/round"
	"github.com/domino14/wordsprint/stats"
)

const DefaultNumRounds = 10

// RoundPlayer plays one round at a time.
type RoundPlayer interface {
	PlayRound(ctx context.Context) (*round.Result, error)
}

// State is the running tally of a game. It is only updated once a round
// has finished.
type State struct {
	TotalScore   int
	RoundsPlayed int
	Results      []*round.Result
	Scores       stats.Statistic
}

func (s *State) record(res *round.Result) {
	s.TotalScore += res.Total
	s.RoundsPlayed++
	s.Results = append(s.Results, res)
	s.Scores.Push(float64(res.Total))
}

// Game is a fixed number of rounds played back to back.
type Game struct {
	numRounds int
	player    RoundPlayer
	reporter  Reporter
	roundLog  io.Writer
}

func NewGame(numRounds int, player RoundPlayer, reporter Reporter) *Game {
	if numRounds <= 0 {
		numRounds = DefaultNumRounds
	}
	return &Game{numRounds: numRounds, player: player, reporter: reporter}
}

// SetRoundLog makes the game append a YAML record of every round to w.
func (g *Game) SetRoundLog(w io.Writer) {
	g.roundLog = w
}

func (g *Game) NumRounds() int {
	return g.numRounds
}

// Play runs every round. Only the end of ctx stops it early, in which case
// the state so far is returned along with the context's error.
func (g *Game) Play(ctx context.Context) (*State, error) {
	st := &State{}
	for st.RoundsPlayed < g.numRounds {
		n := st.RoundsPlayed + 1
		g.reporter.RoundStarted(n, g.numRounds)
		res, err := g.player.PlayRound(ctx)
		if err != nil {
			log.Info().Err(err).Int("round", n).Msg("game-interrupted")
			return st, err
		}
		st.record(res)
		log.Debug().Int("round", n).Int("score", res.Total).Int("total", st.TotalScore).
			Msg("round-finished")
		if g.roundLog != nil {
			if err := writeRoundLog(g.roundLog, n, res); err != nil {
				log.Err(err).Msg("could-not-write-round-log")
			}
		}
	}
	g.reporter.GameOver(st)
	return st, nil
}
