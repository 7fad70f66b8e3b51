package game

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsprint/config"
	"github.com/domino14/wordsprint/equity"
	"github.com/domino14/wordsprint/lexicon"
	"github.com/domino14/wordsprint/round"
	"github.com/domino14/wordsprint/tilemapping"
)

// Rules are the immutable objects shared by every round of a game.
type Rules struct {
	Lexicon    lexicon.Lexicon
	Dist       *tilemapping.LetterDistribution
	Calculator *equity.Calculator
	Settings   round.Settings
	NumRounds  int
}

// NewRules loads the lexicon and letter distribution named in cfg and
// derives the round settings from it.
func NewRules(cfg *config.Config) (*Rules, error) {
	lex, err := lexicon.Get(cfg)
	if err != nil {
		return nil, fmt.Errorf("loading lexicon: %w", err)
	}
	dist, err := tilemapping.Get(cfg)
	if err != nil {
		return nil, fmt.Errorf("loading letter distribution: %w", err)
	}
	settings := round.Settings{
		Budget: cfg.GetDuration(config.ConfigRoundTime),
		Tick:   cfg.GetDuration(config.ConfigTickInterval),
		Length: LengthPolicy(cfg),
	}
	if settings.Budget <= 0 {
		settings.Budget = round.DefaultBudget
	}
	return &Rules{
		Lexicon:    lex,
		Dist:       dist,
		Calculator: equity.NewCalculator(dist, settings.Budget, cfg.GetInt(config.ConfigBonusPerSecond)),
		Settings:   settings,
		NumRounds:  cfg.GetInt(config.ConfigNumRounds),
	}, nil
}

// LengthPolicy is a fixed length, or a random one when required-length
// is 0.
func LengthPolicy(cfg *config.Config) round.LengthPolicy {
	if n := cfg.GetInt(config.ConfigRequiredLength); n > 0 {
		return round.FixedLength(n)
	}
	minLen, maxLen := cfg.GetInt(config.ConfigMinLength), cfg.GetInt(config.ConfigMaxLength)
	if minLen < 1 {
		minLen = 1
	}
	if maxLen < minLen {
		log.Warn().Int("min", minLen).Int("max", maxLen).Msg("max-length below min-length; using min-length")
		maxLen = minLen
	}
	return round.RandomLength{Min: minLen, Max: maxLen}
}

// NewGameFromRules wires a game together with its collaborators.
func NewGameFromRules(rules *Rules, clock clockwork.Clock, source round.Source, reporter Reporter) *Game {
	ctrl := round.NewController(rules.Settings, rules.Lexicon, rules.Calculator, clock, source, reporter)
	return NewGame(rules.NumRounds, ctrl, reporter)
}
