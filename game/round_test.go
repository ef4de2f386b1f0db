package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func mustRound(t *testing.T, word string) *Round {
	t.Helper()
	r, err := NewRound(word)
	if err != nil {
		t.Fatalf("NewRound(%q): %v", word, err)
	}
	return r
}

func TestNewRound(t *testing.T) {
	is := is.New(t)
	r := mustRound(t, "cat")
	is.Equal(r.Word(), "CAT")
	is.Equal(r.Pattern(), "_ _ _")
	is.Equal(r.Tries(), MaxTries)
	is.Equal(r.State(), AwaitingGuess)
	is.Equal(len(r.GuessedLetters()), 0)

	_, err := NewRound("c4t")
	is.True(errors.Is(err, ErrInvalidWord))
	_, err = NewRound("")
	is.True(errors.Is(err, ErrInvalidWord))
}

func TestCatScenario(t *testing.T) {
	is := is.New(t)
	r := mustRound(t, "CAT")

	res, err := r.SubmitGuess("a")
	is.NoErr(err)
	is.Equal(res, GuessResult{Kind: LetterGuess, Guess: "A", Correct: true})
	is.Equal(r.Pattern(), "_ A _")
	is.Equal(r.Tries(), 6)

	res, err = r.SubmitGuess("Z")
	is.NoErr(err)
	is.True(!res.Correct)
	is.Equal(r.Tries(), 5)
	is.Equal(r.Pattern(), "_ A _")

	res, err = r.SubmitGuess("cat")
	is.NoErr(err)
	is.Equal(res, GuessResult{Kind: WordGuess, Guess: "CAT", Correct: true})
	is.Equal(r.State(), RoundWon)
	is.Equal(r.Pattern(), "C A T")
	is.Equal(r.Revealed(), r.Word())
}

func TestDogScenario(t *testing.T) {
	is := is.New(t)
	r := mustRound(t, "DOG")
	for i, l := range []string{"Q", "X", "Z", "V", "W", "Y"} {
		is.Equal(r.State(), AwaitingGuess)
		_, err := r.SubmitGuess(l)
		is.NoErr(err)
		is.Equal(r.Tries(), MaxTries-i-1)
	}
	is.Equal(r.Tries(), 0)
	is.Equal(r.State(), RoundLost)
	is.Equal(r.Pattern(), "_ _ _")

	_, err := r.SubmitGuess("D")
	is.True(errors.Is(err, ErrRoundOver))
	is.Equal(r.Tries(), 0)
}

func TestLetterRevealsEveryOccurrence(t *testing.T) {
	is := is.New(t)
	r := mustRound(t, "BANANA")
	_, err := r.SubmitGuess("a")
	is.NoErr(err)
	is.Equal(r.Revealed(), "_A_A_A")
	is.Equal(r.Tries(), MaxTries)
	_, err = r.SubmitGuess("N")
	is.NoErr(err)
	is.Equal(r.Revealed(), "_ANANA")
	_, err = r.SubmitGuess("b")
	is.NoErr(err)
	is.Equal(r.State(), RoundWon)
	is.Equal(r.Revealed(), r.Word())
}

func TestDuplicateLetterRejected(t *testing.T) {
	is := is.New(t)
	for _, letter := range []string{"A", "Z"} {
		r := mustRound(t, "CAT")
		_, err := r.SubmitGuess(letter)
		is.NoErr(err)
		tries, pattern := r.Tries(), r.Pattern()

		_, err = r.SubmitGuess(strings.ToLower(letter))
		is.True(errors.Is(err, ErrDuplicateGuess))
		var ge *GuessError
		is.True(errors.As(err, &ge))
		is.Equal(ge.Kind, LetterGuess)
		is.Equal(ge.Guess, letter)

		is.Equal(r.Tries(), tries)
		is.Equal(r.Pattern(), pattern)
		is.Equal(r.GuessedLetters(), []string{letter})
	}
}

func TestDuplicateWordRejected(t *testing.T) {
	is := is.New(t)
	r := mustRound(t, "CAT")
	_, err := r.SubmitGuess("COT")
	is.NoErr(err)
	is.Equal(r.Tries(), 5)

	_, err = r.SubmitGuess("cot")
	is.True(errors.Is(err, ErrDuplicateGuess))
	is.Equal(err.Error(), "you already guessed the word COT")
	is.Equal(r.Tries(), 5)
	is.Equal(r.GuessedWords(), []string{"COT"})
}

func TestInvalidGuess(t *testing.T) {
	is := is.New(t)
	r := mustRound(t, "CAT")
	for _, g := range []string{"", "CA", "CATS", "?", "1", "C T", "C4T", " A"} {
		_, err := r.SubmitGuess(g)
		is.True(errors.Is(err, ErrInvalidGuess))
		var ge *GuessError
		is.True(errors.As(err, &ge))
		is.Equal(ge.WordLength, 3)
		is.True(strings.Contains(err.Error(), "3 letters"))
	}
	is.Equal(r.Tries(), MaxTries)
	is.Equal(r.Pattern(), "_ _ _")
	is.Equal(len(r.GuessedLetters()), 0)
	is.Equal(len(r.GuessedWords()), 0)
}

func TestWordGuessWinsOnLastTry(t *testing.T) {
	is := is.New(t)
	r := mustRound(t, "CAT")
	for _, l := range []string{"Q", "X", "Z", "V", "W"} {
		_, err := r.SubmitGuess(l)
		is.NoErr(err)
	}
	is.Equal(r.Tries(), 1)
	res, err := r.SubmitGuess("CAT")
	is.NoErr(err)
	is.True(res.Correct)
	is.Equal(r.State(), RoundWon)
	is.Equal(r.Tries(), 1)
}

func TestWrongWordOnLastTryLoses(t *testing.T) {
	is := is.New(t)
	r := mustRound(t, "CAT")
	for _, l := range []string{"Q", "X", "Z", "V", "W"} {
		_, err := r.SubmitGuess(l)
		is.NoErr(err)
	}
	_, err := r.SubmitGuess("COT")
	is.NoErr(err)
	is.Equal(r.Tries(), 0)
	is.Equal(r.State(), RoundLost)
}

func TestRevealingLastLetterWins(t *testing.T) {
	is := is.New(t)
	r := mustRound(t, "OX")
	_, err := r.SubmitGuess("O")
	is.NoErr(err)
	is.Equal(r.State(), AwaitingGuess)
	_, err = r.SubmitGuess("X")
	is.NoErr(err)
	is.Equal(r.State(), RoundWon)
}

func TestSingleLetterWordIsLetterGuess(t *testing.T) {
	is := is.New(t)
	r := mustRound(t, "A")
	res, err := r.SubmitGuess("a")
	is.NoErr(err)
	is.Equal(res.Kind, LetterGuess)
	is.Equal(r.State(), RoundWon)
}

func TestNonASCIIWord(t *testing.T) {
	is := is.New(t)
	r := mustRound(t, "ñandú")
	is.Equal(r.Pattern(), "_ _ _ _ _")
	_, err := r.SubmitGuess("ñ")
	is.NoErr(err)
	is.Equal(r.Revealed(), "Ñ____")
	_, err = r.SubmitGuess("ÑANDU")
	is.NoErr(err)
	is.Equal(r.Tries(), 5)
	_, err = r.SubmitGuess("ÑANDÚ")
	is.NoErr(err)
	is.Equal(r.State(), RoundWon)
}

// Every letter of the alphabet exactly once: blanks never outnumber the
// word, tries stay in range and the pattern only ever gains letters.
func TestAlphabetSweep(t *testing.T) {
	is := is.New(t)
	r := mustRound(t, "JAZZ")
	prev := r.Revealed()
	for c := 'A'; c <= 'Z' && !r.Over(); c++ {
		_, err := r.SubmitGuess(string(c))
		is.NoErr(err)
		is.Equal(len([]rune(r.Revealed())), 4)
		is.True(r.Tries() >= 0 && r.Tries() <= MaxTries)
		for i, p := range []rune(prev) {
			if p != '_' {
				is.Equal([]rune(r.Revealed())[i], p)
			}
		}
		prev = r.Revealed()
	}
	is.Equal(r.State(), RoundLost)
}
