package tilemapping

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestLetterDistributionScores(t *testing.T) {
	is := is.New(t)
	ld, err := EnglishLetterDistribution()
	is.NoErr(err)

	is.Equal(ld.Score('A'), 1)
	is.Equal(ld.Score('a'), 1)
	is.Equal(ld.Score('D'), 2)
	is.Equal(ld.Score('P'), 3)
	is.Equal(ld.Score('y'), 4)
	is.Equal(ld.Score('K'), 5)
	is.Equal(ld.Score('X'), 8)
	is.Equal(ld.Score('z'), 10)
	is.Equal(ld.Score('?'), 0)
	is.Equal(ld.Score('1'), 0)
	is.Equal(ld.Score('é'), 0)
}

func TestEveryLetterHasAValue(t *testing.T) {
	is := is.New(t)
	ld, err := EnglishLetterDistribution()
	is.NoErr(err)
	for c := 'A'; c <= 'Z'; c++ {
		is.True(ld.Score(c) > 0)
	}
}

func TestLetterDistributionWordScore(t *testing.T) {
	is := is.New(t)
	ld, err := EnglishLetterDistribution()
	is.NoErr(err)

	type scoretest struct {
		word string
		pts  int
	}
	for _, tc := range []scoretest{
		{"apple", 9},
		{"HELLO", 8},
		{"hElLo", 8},
		{"CoOKIE", 12},
		{"quiz", 22},
		{"banana", 8},
	} {
		score, err := ld.WordScore(tc.word)
		is.NoErr(err)
		assert.Equal(t, tc.pts, score, tc.word)
	}
}

func TestWordScoreCaseInsensitive(t *testing.T) {
	is := is.New(t)
	ld, err := EnglishLetterDistribution()
	is.NoErr(err)

	for _, w := range []string{"apple", "Orange", "GRAPE", "pEaR", "jukebox"} {
		s, err := ld.WordScore(w)
		is.NoErr(err)
		upper, err := ld.WordScore(strings.ToUpper(w))
		is.NoErr(err)
		lower, err := ld.WordScore(strings.ToLower(w))
		is.NoErr(err)
		is.Equal(s, upper)
		is.Equal(s, lower)
	}
}

func TestWordScoreInvalidInput(t *testing.T) {
	is := is.New(t)
	ld, err := EnglishLetterDistribution()
	is.NoErr(err)

	for _, w := range []string{"app1e", "", "two words", "pear!", "café"} {
		score, err := ld.WordScore(w)
		is.True(errors.Is(err, ErrInvalidInput))
		is.Equal(score, 0)
	}
}

func TestScanLetterDistributionMissingLetters(t *testing.T) {
	is := is.New(t)
	ld, err := ScanLetterDistribution("tiny", strings.NewReader("A,1,2,1\nb,1,7,0\n"))
	is.NoErr(err)
	is.Equal(ld.Name, "tiny")

	score, err := ld.WordScore("abc")
	is.NoErr(err)
	// C is not defined and counts as 0.
	is.Equal(score, 9)
}

func TestScanLetterDistributionErrors(t *testing.T) {
	is := is.New(t)
	for _, data := range []string{
		"A,1,x,1\n",
		"AB,1,1,1\n",
		"1,1,1,0\n",
		"A,1,1\n",
		"A,1,-2,1\n",
		"A,1,1,1\nA,1,2,1\n",
	} {
		_, err := ScanLetterDistribution("bad", strings.NewReader(data))
		is.True(err != nil)
	}
}
