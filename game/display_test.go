package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource []string

func (f *fixedSource) NextWord(string) (string, bool) {
	if len(*f) == 0 {
		return "", false
	}
	w := (*f)[0]
	*f = (*f)[1:]
	return w, true
}

func TestStages(t *testing.T) {
	for i := 0; i <= MaxTries; i++ {
		assert.Equal(t, stages[i], Stage(i))
	}
	assert.Equal(t, Stage(0), Stage(-3))
	assert.Equal(t, Stage(MaxTries), Stage(99))

	assert.Contains(t, Stage(0), `/ \`)
	assert.NotContains(t, Stage(MaxTries), "O")
	for i := 1; i <= MaxTries; i++ {
		assert.NotEqual(t, Stage(i-1), Stage(i), "stage %d", i)
	}
}

func TestToDisplayText(t *testing.T) {
	src := &fixedSource{"CAT"}
	m, err := NewMatch(GameConfig{Mode: ModeBot, Rounds: 3}, [2]string{}, src)
	require.NoError(t, err)
	assert.Contains(t, m.ToDisplayText(), "Waiting for Bot to choose a word")

	_, err = m.Start()
	require.NoError(t, err)
	_, err = m.Guess("A")
	require.NoError(t, err)
	_, err = m.Guess("Z")
	require.NoError(t, err)
	_, err = m.Guess("COT")
	require.NoError(t, err)

	txt := m.ToDisplayText()
	lines := strings.Split(txt, "\n")
	assert.Equal(t, "Round 1 of 3", lines[0])
	assert.Equal(t, "Player's turn to guess", lines[1])
	assert.Contains(t, txt, Stage(4))
	assert.Contains(t, txt, "_ A _")
	assert.Contains(t, txt, "Tries left: 4")
	assert.Contains(t, txt, "Used letters: A, Z")
	assert.Contains(t, txt, "Used words: COT")
	assert.Contains(t, txt, "Player: 0  Bot: 0")
}

func TestFeedback(t *testing.T) {
	assert.Equal(t, "Good job! A is in the word!", GuessResult{Kind: LetterGuess, Guess: "A", Correct: true}.Feedback())
	assert.Equal(t, "Z is not in the word.", GuessResult{Kind: LetterGuess, Guess: "Z"}.Feedback())
	assert.Equal(t, "CATS is not the correct word.", GuessResult{Kind: WordGuess, Guess: "CATS"}.Feedback())
	assert.Equal(t, "", GuessResult{Kind: WordGuess, Guess: "CAT", Correct: true}.Feedback())

	r, err := NewRound("cat")
	require.NoError(t, err)
	_, err = r.SubmitGuess("a")
	require.NoError(t, err)
	_, err = r.SubmitGuess("A")
	var ge *GuessError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "You already guessed the letter A", ge.Feedback())

	_, err = r.SubmitGuess("ab")
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "Not a valid guess. Please enter a word with 3 letters.", ge.Feedback())
}

func TestRoundResultText(t *testing.T) {
	src := &fixedSource{"CAT", "DOG"}
	m, err := NewMatch(GameConfig{Mode: ModePvP, Rounds: 1}, [2]string{"Ann", "Bob"}, src)
	require.NoError(t, err)
	assert.Equal(t, "", m.RoundResultText())

	_, err = m.Start()
	require.NoError(t, err)
	assert.Equal(t, "", m.RoundResultText())
	_, err = m.Guess("CAT")
	require.NoError(t, err)
	assert.Equal(t, "Congrats, Bob! You guessed the word!", m.RoundResultText())

	_, err = m.Next()
	require.NoError(t, err)
	for _, g := range []string{"Q", "W", "X", "Y", "Z", "V"} {
		_, err = m.Guess(g)
		require.NoError(t, err)
	}
	assert.Equal(t, Over, m.Status())
	assert.Equal(t, "Sorry, Ann! The word was DOG", m.RoundResultText())
}
