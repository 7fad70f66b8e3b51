package round

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// ScriptedWord is one submission of a ScriptedSource. Delay is measured on
// the source's clock from the moment the word is asked for. If Err is set
// the read fails with it instead of returning Word.
type ScriptedWord struct {
	Word  string
	Delay time.Duration
	Err   error
}

// ScriptedSource plays back a fixed sequence of submissions. Once the
// script runs out it behaves like a silent player and waits for ctx to end.
// An entry interrupted by ctx is kept for the next read, unless it was
// already due when ctx ended.
type ScriptedSource struct {
	mu     sync.Mutex
	clock  clockwork.Clock
	script []ScriptedWord
	next   int
}

func NewScriptedSource(clock clockwork.Clock, script ...ScriptedWord) *ScriptedSource {
	return &ScriptedSource{clock: clock, script: script}
}

func (s *ScriptedSource) ReadWord(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.next >= len(s.script) {
		s.mu.Unlock()
		<-ctx.Done()
		return "", ctx.Err()
	}
	entry := s.script[s.next]
	s.mu.Unlock()

	if entry.Delay > 0 {
		tm := s.clock.NewTimer(entry.Delay)
		defer tm.Stop()
		select {
		case <-ctx.Done():
			// A word due at the same instant ctx ended still arrives.
			select {
			case <-tm.Chan():
			default:
				return "", ctx.Err()
			}
		case <-tm.Chan():
		}
	} else if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.next++
	s.mu.Unlock()
	return entry.Word, entry.Err
}

// Remaining is the number of entries not yet delivered.
func (s *ScriptedSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.script) - s.next
}
