package round

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsprint/equity"
	"github.com/domino14/wordsprint/lexicon"
)

const (
	DefaultBudget = 15 * time.Second
	DefaultTick   = time.Second
)

type Settings struct {
	Budget time.Duration
	Tick   time.Duration
	Length LengthPolicy
}

// Controller plays single rounds. It is not safe to play two rounds on the
// same Controller concurrently since they would share one Source.
type Controller struct {
	settings Settings
	lex      lexicon.Lexicon
	calc     *equity.Calculator
	clock    clockwork.Clock
	source   Source
	reporter Reporter
}

func NewController(settings Settings, lex lexicon.Lexicon, calc *equity.Calculator,
	clock clockwork.Clock, source Source, reporter Reporter) *Controller {

	if settings.Budget <= 0 {
		settings.Budget = DefaultBudget
	}
	if settings.Tick <= 0 {
		settings.Tick = DefaultTick
	}
	if settings.Length == nil {
		settings.Length = FixedLength(5)
	}
	return &Controller{
		settings: settings,
		lex:      lex,
		calc:     calc,
		clock:    clock,
		source:   source,
		reporter: reporter,
	}
}

// PlayRound asks for words until one is accepted or the timer runs out.
// Rejections and timeouts are part of the Result, not errors; an error is
// only returned if ctx ends the round.
func (c *Controller) PlayRound(ctx context.Context) (*Result, error) {
	required := c.settings.Length.RequiredLength()
	res := &Result{RequiredLength: required}
	c.reporter.Prompt(required)

	timer := NewTimer(c.clock, c.settings.Budget, c.settings.Tick, c.reporter)
	readCtx := timer.Start(ctx)
	start := timer.StartedAt()
	log.Debug().Int("required-length", required).Dur("budget", c.settings.Budget).Msg("round-started")

	accepted := false
	// Expiry is only checked before asking for a word. A word that has
	// been read is always validated, and once accepted it stands even if
	// the timer fires a moment later.
	for !timer.Expired() {
		raw, err := c.source.ReadWord(readCtx)
		if err != nil {
			if readCtx.Err() != nil {
				break
			}
			log.Debug().Err(err).Msg("input-source-failure; treating as no submission")
			continue
		}
		word := lexicon.Normalize(raw)
		reason := lexicon.Validate(word, c.lex, required)
		if reason != lexicon.Accepted {
			log.Debug().Str("word", word).Stringer("reason", reason).Msg("word-rejected")
			res.Rejections = append(res.Rejections, Rejection{Word: word, Reason: reason})
			c.reporter.Rejected(word, reason, required)
			continue
		}
		accepted = true
		res.Word = word
		break
	}

	timer.Stop()
	if err := timer.Wait(); err != nil && !accepted {
		return nil, err
	}
	res.Elapsed = c.clock.Since(start)

	if !accepted {
		if !timer.Expired() {
			// The timer was cancelled by ctx rather than running out.
			return nil, ctx.Err()
		}
		res.Outcome = OutcomeTimedOut
		log.Debug().Dur("elapsed", res.Elapsed).Msg("round-timed-out")
		c.reporter.TimedOut(res.Elapsed)
		return res, nil
	}

	bd, err := c.calc.Breakdown(res.Word, res.Elapsed)
	if err != nil {
		return nil, fmt.Errorf("scoring accepted word %q: %w", res.Word, err)
	}
	res.Outcome = OutcomeAccepted
	res.BaseScore = bd.Base
	res.Bonus = bd.Bonus
	res.Total = bd.Total
	log.Debug().Str("word", res.Word).Int("total", res.Total).Dur("elapsed", res.Elapsed).
		Msg("round-accepted")
	c.reporter.Accepted(res)
	return res, nil
}
