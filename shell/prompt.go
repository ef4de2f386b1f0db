package shell

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gallows/alphabet"
)

// prompter reads one line of input. Secret input is not echoed.
type prompter interface {
	Prompt(prompt string, secret bool) (string, error)
}

type readlinePrompter struct {
	l *readline.Instance
}

func (p readlinePrompter) Prompt(prompt string, secret bool) (string, error) {
	if secret {
		b, err := p.l.ReadPassword(prompt)
		return string(b), err
	}
	p.l.SetPrompt(prompt)
	return p.l.Readline()
}

// cancelled reports whether err means the player backed out of a prompt.
func cancelled(err error) bool {
	return errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF)
}

// ask prompts once. ok is false if the player cancelled.
func (sc *ShellController) ask(prompt string, secret bool) (string, bool) {
	line, err := sc.in.Prompt(prompt, secret)
	if err != nil {
		if !cancelled(err) {
			log.Error().Err(err).Msg("reading input")
		}
		return "", false
	}
	return line, true
}

// playerSource asks the setter for the secret word, re-prompting until the
// entry is purely alphabetic.
type playerSource struct {
	sc *ShellController
}

func (p playerSource) NextWord(setter string) (string, bool) {
	p.sc.showMessage(setter + ", choose a word for your opponent. Ctrl-C gives up the match.")
	for {
		line, ok := p.sc.ask(setter+", enter the secret word: ", p.sc.options.hideWords)
		if !ok {
			return "", false
		}
		if w, valid := alphabet.NormalizeWord(line); valid {
			return w, true
		}
		p.sc.showMessage("Invalid Input: Please enter a valid word.")
	}
}
