package shell

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordsprint/config"
	"github.com/domino14/wordsprint/game"
	"github.com/domino14/wordsprint/round"
)

// ShellController runs a game against the terminal.
type ShellController struct {
	l      *readline.Instance
	config *config.Config

	// quit ends the game in progress. It is set while Play is running.
	quit context.CancelFunc
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) (*ShellController, error) {
	return newShellController(cfg, &readline.Config{
		Prompt:          "\033[31mword>\033[0m ",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		FuncFilterInputRune: filterInput,
	})
}

func newShellController(cfg *config.Config, rlcfg *readline.Config) (*ShellController, error) {
	l, err := readline.NewEx(rlcfg)
	if err != nil {
		return nil, err
	}
	return &ShellController{l: l, config: cfg}, nil
}

// ReadLine reads one line from the terminal. An interrupted line counts
// as an empty submission; Ctrl-C on an empty line quits the game.
func (sc *ShellController) ReadLine() (string, error) {
	line, err := sc.l.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		if len(line) == 0 && sc.quit != nil {
			log.Debug().Msg("interrupt on empty line; quitting")
			sc.quit()
		}
		return "", nil
	}
	return line, err
}

// Play runs a full game. It returns when every round has been played, or
// early if ctx ends or the player quits.
func (sc *ShellController) Play(ctx context.Context) (*game.State, error) {
	rules, err := game.NewRules(sc.config)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	sc.quit = cancel

	source := round.NewLineSource(sc)
	defer source.Close()

	reporter := game.NewTextReporter(round.NewTextReporter(sc.l.Stderr()))
	g := game.NewGameFromRules(rules, clockwork.NewRealClock(), source, reporter)

	if path := sc.config.GetString(config.ConfigRoundLog); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		g.SetRoundLog(f)
		showMessage("rounds will be logged to "+path, sc.l.Stderr())
	}

	return g.Play(ctx)
}

// Close releases the terminal. A pending ReadLine returns io.EOF.
func (sc *ShellController) Close() error {
	return sc.l.Close()
}
