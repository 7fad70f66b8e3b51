package round

import (
	"bufio"
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Source supplies the player's submissions. ReadWord blocks until a word
// arrives and must return ctx.Err() promptly once ctx ends.
type Source interface {
	ReadWord(ctx context.Context) (string, error)
}

// LineReader is a blocking "read next line" operation, like a terminal.
type LineReader interface {
	ReadLine() (string, error)
}

type lineResult struct {
	line string
	err  error
}

// LineSource turns a blocking LineReader into a Source. A single reader
// goroutine lives as long as the source, so a round can stop waiting
// without abandoning a read in progress; a line typed after a round ends
// is delivered to the next one.
type LineSource struct {
	r     LineReader
	lines chan lineResult
	done  chan struct{}
	g     errgroup.Group
	once  sync.Once
}

func NewLineSource(r LineReader) *LineSource {
	s := &LineSource{
		r:     r,
		lines: make(chan lineResult),
		done:  make(chan struct{}),
	}
	s.g.Go(s.readLoop)
	return s
}

func (s *LineSource) readLoop() error {
	defer close(s.lines)
	for {
		line, err := s.r.ReadLine()
		select {
		case s.lines <- lineResult{line, err}:
		case <-s.done:
			return nil
		}
		if err != nil {
			log.Debug().Err(err).Msg("line-reader-finished")
			return nil
		}
	}
}

// ReadWord returns the next line. Once the reader has failed, the error is
// returned once and later calls wait for ctx to end.
func (s *LineSource) ReadWord(ctx context.Context) (string, error) {
	select {
	case lr, ok := <-s.lines:
		if !ok {
			<-ctx.Done()
			return "", ctx.Err()
		}
		return lr.line, lr.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close stops the reader goroutine. If the LineReader is also an io.Closer
// it is closed first so a pending read returns.
func (s *LineSource) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		if c, ok := s.r.(io.Closer); ok {
			err = c.Close()
		}
		s.g.Wait()
	})
	return err
}

// ReaderLines reads lines from an io.Reader.
type ReaderLines struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

func NewReaderLines(r io.Reader) *ReaderLines {
	rl := &ReaderLines{scanner: bufio.NewScanner(r)}
	if c, ok := r.(io.Closer); ok {
		rl.closer = c
	}
	return rl
}

func (rl *ReaderLines) ReadLine() (string, error) {
	if rl.scanner.Scan() {
		return rl.scanner.Text(), nil
	}
	if err := rl.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (rl *ReaderLines) Close() error {
	if rl.closer == nil {
		return nil
	}
	return rl.closer.Close()
}
