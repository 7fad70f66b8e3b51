package round

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/matryer/is"

	"github.com/domino14/wordsprint/equity"
	"github.com/domino14/wordsprint/lexicon"
	"github.com/domino14/wordsprint/tilemapping"
)

// recorder is a Reporter that remembers what it was told.
type recorder struct {
	mu         sync.Mutex
	prompts    []int
	rejections []lexicon.Rejection
	timeUp     int
	timedOut   []time.Duration
	accepted   []*Result
}

func (r *recorder) Prompt(requiredLength int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = append(r.prompts, requiredLength)
}

func (r *recorder) Rejected(word string, reason lexicon.Rejection, requiredLength int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejections = append(r.rejections, reason)
}

func (r *recorder) TimeUp() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timeUp++
}

func (r *recorder) TimedOut(elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timedOut = append(r.timedOut, elapsed)
}

func (r *recorder) Accepted(res *Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accepted = append(r.accepted, res)
}

func (r *recorder) timeUps() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timeUp
}

type roundOutcome struct {
	res *Result
	err error
}

func testCalculator(t *testing.T) *equity.Calculator {
	is := is.New(t)
	ld, err := tilemapping.EnglishLetterDistribution()
	is.NoErr(err)
	return equity.NewCalculator(ld, DefaultBudget, equity.DefaultBonusPerSecond)
}

func newTestController(t *testing.T, clock clockwork.Clock, src Source, rep Reporter) *Controller {
	return NewController(
		Settings{Budget: DefaultBudget, Tick: DefaultTick, Length: FixedLength(5)},
		lexicon.DefaultWordSet(), testCalculator(t), clock, src, rep)
}

func playAsync(ctx context.Context, c *Controller) <-chan roundOutcome {
	ch := make(chan roundOutcome, 1)
	go func() {
		res, err := c.PlayRound(ctx)
		ch <- roundOutcome{res, err}
	}()
	return ch
}

// waitFor blocks until the fake clock has n pending timers.
func waitFor(t *testing.T, fc *clockwork.FakeClock, n int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fc.BlockUntilContext(ctx, n); err != nil {
		t.Fatalf("waiting for %d timers: %v", n, err)
	}
}
