package round

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/matryer/is"
)

func TestLineSourceReadsLinesThenEOF(t *testing.T) {
	is := is.New(t)
	src := NewLineSource(NewReaderLines(strings.NewReader("apple\n  pear \n")))
	defer src.Close()
	ctx := context.Background()

	w, err := src.ReadWord(ctx)
	is.NoErr(err)
	is.Equal(w, "apple")
	w, err = src.ReadWord(ctx)
	is.NoErr(err)
	is.Equal(w, "  pear ")
	_, err = src.ReadWord(ctx)
	is.True(errors.Is(err, io.EOF))

	// After the reader is done, reads wait for the context.
	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = src.ReadWord(cctx)
	is.True(errors.Is(err, context.Canceled))
}

func TestLineSourceKeepsLateLines(t *testing.T) {
	is := is.New(t)
	pr, pw := io.Pipe()
	src := NewLineSource(NewReaderLines(pr))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := src.ReadWord(ctx)
	is.True(errors.Is(err, context.Canceled))

	go pw.Write([]byte("grape\n"))
	w, err := src.ReadWord(context.Background())
	is.NoErr(err)
	is.Equal(w, "grape")

	is.NoErr(src.Close())
	// closing twice is fine
	is.NoErr(src.Close())
}

func TestScriptedSource(t *testing.T) {
	is := is.New(t)
	fc := clockwork.NewFakeClock()
	boom := errors.New("boom")
	src := NewScriptedSource(fc,
		ScriptedWord{Word: "pear"},
		ScriptedWord{Err: boom},
		ScriptedWord{Word: "apple", Delay: 2 * time.Second},
	)
	ctx := context.Background()

	w, err := src.ReadWord(ctx)
	is.NoErr(err)
	is.Equal(w, "pear")
	_, err = src.ReadWord(ctx)
	is.Equal(err, boom)

	got := make(chan string, 1)
	go func() {
		w, _ := src.ReadWord(ctx)
		got <- w
	}()
	waitFor(t, fc, 1)
	fc.Advance(2 * time.Second)
	is.Equal(<-got, "apple")
	is.Equal(src.Remaining(), 0)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = src.ReadWord(cctx)
	is.True(errors.Is(err, context.Canceled))
}

func TestScriptedSourceKeepsInterruptedEntry(t *testing.T) {
	is := is.New(t)
	fc := clockwork.NewFakeClock()
	src := NewScriptedSource(fc, ScriptedWord{Word: "apple", Delay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := src.ReadWord(ctx)
	is.True(errors.Is(err, context.Canceled))
	is.Equal(src.Remaining(), 1)
}

func TestRandomLength(t *testing.T) {
	is := is.New(t)
	seen := map[int]bool{}
	p := RandomLength{Min: 3, Max: 10}
	for i := 0; i < 2000; i++ {
		n := p.RequiredLength()
		is.True(n >= 3 && n <= 10)
		seen[n] = true
	}
	is.Equal(len(seen), 8)
	is.Equal(RandomLength{Min: 4, Max: 4}.RequiredLength(), 4)
	is.Equal(FixedLength(5).RequiredLength(), 5)
}
