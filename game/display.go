package game

import (
	"fmt"
	"strings"
)

// UsedLetters lists the guessed letters for display.
func (r *Round) UsedLetters() string {
	return strings.Join(r.letters, ", ")
}

// TurnLabel names the player whose turn it is to guess.
func (m *Match) TurnLabel() string {
	return m.Guesser() + "'s turn to guess"
}

// ScoreLine is a one-line summary of both scores.
func (m *Match) ScoreLine() string {
	return fmt.Sprintf("%s: %d  %s: %d", m.players[0], m.scores[0], m.players[1], m.scores[1])
}

// FinalScoresText is shown when the match ends.
func (m *Match) FinalScoresText() string {
	var sb strings.Builder
	sb.WriteString("Final Scores:\n")
	for _, ps := range m.Scores() {
		fmt.Fprintf(&sb, "%s: %d\n", ps.Name, ps.Score)
	}
	return sb.String()
}

// ToDisplayText renders the current round as plain text.
func (m *Match) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString(m.RoundLabel() + "\n")
	if m.round == nil {
		sb.WriteString("Waiting for " + m.Setter() + " to choose a word\n")
		return sb.String()
	}
	sb.WriteString(m.TurnLabel() + "\n")
	sb.WriteString(Stage(m.round.tries))
	sb.WriteString("\n   " + m.round.Pattern() + "\n\n")
	fmt.Fprintf(&sb, "Tries left: %d\n", m.round.tries)
	sb.WriteString("Used letters: " + m.round.UsedLetters() + "\n")
	if len(m.round.words) > 0 {
		sb.WriteString("Used words: " + strings.Join(m.round.words, ", ") + "\n")
	}
	sb.WriteString(m.ScoreLine() + "\n")
	return sb.String()
}

// Feedback is the message shown after an accepted guess. A correct word
// guess needs none, the round result covers it.
func (res GuessResult) Feedback() string {
	switch {
	case res.Kind == LetterGuess && res.Correct:
		return fmt.Sprintf("Good job! %s is in the word!", res.Guess)
	case res.Kind == LetterGuess:
		return fmt.Sprintf("%s is not in the word.", res.Guess)
	case !res.Correct:
		return fmt.Sprintf("%s is not the correct word.", res.Guess)
	}
	return ""
}

// Feedback is the message shown for a rejected guess.
func (e *GuessError) Feedback() string {
	if e.Reason == ErrDuplicateGuess {
		return fmt.Sprintf("You already guessed the %s %s", e.Kind, e.Guess)
	}
	return fmt.Sprintf("Not a valid guess. Please enter a word with %d letters.", e.WordLength)
}

// RoundResultText announces how the round that just finished went. It is
// empty unless the match is between rounds or over.
func (m *Match) RoundResultText() string {
	if m.round == nil || (m.status != RoundOver && m.status != Over) {
		return ""
	}
	if m.round.state == RoundWon {
		return fmt.Sprintf("Congrats, %s! You guessed the word!", m.Guesser())
	}
	return fmt.Sprintf("Sorry, %s! The word was %s", m.Guesser(), m.round.Word())
}
