package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gallows/alphabet"
)

// MaxTries is the number of wrong guesses a guesser may make in a round.
const MaxTries = 6

var (
	ErrInvalidGuess   = errors.New("not a valid guess")
	ErrDuplicateGuess = errors.New("already guessed")
	ErrRoundOver      = errors.New("round is over")
	ErrInvalidWord    = errors.New("secret word must be purely alphabetic")
)

type RoundState int

const (
	AwaitingGuess RoundState = iota
	RoundWon
	RoundLost
)

func (s RoundState) String() string {
	switch s {
	case AwaitingGuess:
		return "awaiting guess"
	case RoundWon:
		return "won"
	case RoundLost:
		return "lost"
	}
	return fmt.Sprintf("RoundState(%d)", int(s))
}

type GuessKind int

const (
	LetterGuess GuessKind = iota
	WordGuess
)

func (k GuessKind) String() string {
	if k == WordGuess {
		return "word"
	}
	return "letter"
}

// GuessResult describes an accepted guess.
type GuessResult struct {
	Kind    GuessKind
	Guess   string
	Correct bool
}

// GuessError is returned for a guess that was rejected without changing the
// round. It matches ErrInvalidGuess or ErrDuplicateGuess with errors.Is.
type GuessError struct {
	Reason     error
	Kind       GuessKind
	Guess      string
	WordLength int
}

func (e *GuessError) Error() string {
	if e.Reason == ErrDuplicateGuess {
		return fmt.Sprintf("you already guessed the %s %s", e.Kind, e.Guess)
	}
	return fmt.Sprintf("not a valid guess; please enter a word with %d letters", e.WordLength)
}

func (e *GuessError) Unwrap() error {
	return e.Reason
}

// Round is one play of guess-the-word against a single secret word.
type Round struct {
	word    []rune
	pattern []rune
	tries   int
	state   RoundState

	letters   []string
	letterSet map[string]bool
	words     []string
	wordSet   map[string]bool
}

// NewRound starts a round for word, which is normalized to upper case.
func NewRound(word string) (*Round, error) {
	w, ok := alphabet.NormalizeWord(word)
	if !ok {
		return nil, ErrInvalidWord
	}
	r := &Round{
		word:      []rune(w),
		tries:     MaxTries,
		state:     AwaitingGuess,
		letterSet: map[string]bool{},
		wordSet:   map[string]bool{},
	}
	r.pattern = make([]rune, len(r.word))
	for i := range r.pattern {
		r.pattern[i] = alphabet.Blank
	}
	return r, nil
}

func (r *Round) Word() string {
	return string(r.word)
}

// Pattern is the revealed word with blanks, letters separated by spaces,
// e.g. "_ A _".
func (r *Round) Pattern() string {
	parts := make([]string, len(r.pattern))
	for i, c := range r.pattern {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}

// Revealed returns the pattern with no separators.
func (r *Round) Revealed() string {
	return string(r.pattern)
}

func (r *Round) Tries() int {
	return r.tries
}

func (r *Round) State() RoundState {
	return r.state
}

func (r *Round) Over() bool {
	return r.state != AwaitingGuess
}

// GuessedLetters returns the letters guessed so far, in guess order.
func (r *Round) GuessedLetters() []string {
	return append([]string(nil), r.letters...)
}

// GuessedWords returns the wrong and right words guessed so far, in guess
// order.
func (r *Round) GuessedWords() []string {
	return append([]string(nil), r.words...)
}

// SubmitGuess evaluates raw as either a single letter or a whole word.
func (r *Round) SubmitGuess(raw string) (GuessResult, error) {
	if r.Over() {
		return GuessResult{}, ErrRoundOver
	}
	guess := alphabet.Normalize(raw)
	n := alphabet.Len(guess)

	var res GuessResult
	switch {
	case n == 1 && alphabet.IsAlpha(guess):
		if r.letterSet[guess] {
			return GuessResult{}, &GuessError{Reason: ErrDuplicateGuess, Kind: LetterGuess,
				Guess: guess, WordLength: len(r.word)}
		}
		res = r.guessLetter(guess)
	case n == len(r.word) && alphabet.IsAlpha(guess):
		if r.wordSet[guess] {
			return GuessResult{}, &GuessError{Reason: ErrDuplicateGuess, Kind: WordGuess,
				Guess: guess, WordLength: len(r.word)}
		}
		res = r.guessWord(guess)
	default:
		return GuessResult{}, &GuessError{Reason: ErrInvalidGuess, Guess: guess,
			WordLength: len(r.word)}
	}

	switch {
	case !strings.ContainsRune(string(r.pattern), alphabet.Blank):
		r.state = RoundWon
	case r.tries == 0:
		r.state = RoundLost
	}
	log.Debug().Str("guess", guess).Stringer("kind", res.Kind).Bool("correct", res.Correct).
		Int("tries", r.tries).Stringer("state", r.state).Msg("guess")
	return res, nil
}

func (r *Round) guessLetter(letter string) GuessResult {
	r.letters = append(r.letters, letter)
	r.letterSet[letter] = true
	l := []rune(letter)[0]
	found := false
	for i, c := range r.word {
		if c == l {
			r.pattern[i] = c
			found = true
		}
	}
	if !found {
		r.loseTry()
	}
	return GuessResult{Kind: LetterGuess, Guess: letter, Correct: found}
}

func (r *Round) guessWord(word string) GuessResult {
	r.words = append(r.words, word)
	r.wordSet[word] = true
	if word != string(r.word) {
		r.loseTry()
		return GuessResult{Kind: WordGuess, Guess: word, Correct: false}
	}
	copy(r.pattern, r.word)
	return GuessResult{Kind: WordGuess, Guess: word, Correct: true}
}

func (r *Round) loseTry() {
	if r.tries > 0 {
		r.tries--
	}
}
