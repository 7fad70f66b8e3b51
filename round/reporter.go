package round

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/domino14/wordsprint/lexicon"
)

// Reporter narrates a round to the player. TimeUp is called from the timer
// goroutine, the rest from the goroutine playing the round.
type Reporter interface {
	Prompt(requiredLength int)
	Rejected(word string, reason lexicon.Rejection, requiredLength int)
	TimeUp()
	TimedOut(elapsed time.Duration)
	Accepted(res *Result)
}

// TextReporter writes line-oriented narration to a writer.
type TextReporter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (r *TextReporter) ShowMessage(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	io.WriteString(r.w, msg)
	io.WriteString(r.w, "\n")
}

func (r *TextReporter) Prompt(requiredLength int) {
	r.ShowMessage(fmt.Sprintf("Please enter a valid word with exactly %d letters", requiredLength))
}

func (r *TextReporter) Rejected(word string, reason lexicon.Rejection, requiredLength int) {
	r.ShowMessage(reason.Reason(requiredLength))
}

func (r *TextReporter) TimeUp() {
	r.ShowMessage("\nTime's up!")
}

func (r *TextReporter) TimedOut(elapsed time.Duration) {
	r.ShowMessage(fmt.Sprintf("Time's up! You took too long.\nTime taken: %.2f seconds.\nYour score: 0",
		elapsed.Seconds()))
}

func (r *TextReporter) Accepted(res *Result) {
	r.ShowMessage(fmt.Sprintf(
		"Valid word!\nBase score (word value): %d\nTime taken: %.2f seconds.\nTime bonus: %d\nYour total score: %d",
		res.BaseScore, res.Elapsed.Seconds(), res.Bonus, res.Total))
}
