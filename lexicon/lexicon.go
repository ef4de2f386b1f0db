// Package lexicon provides the dictionary that secret words are drawn from
// when a human is playing against the bot.
package lexicon

import (
	_ "embed"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/gallows/alphabet"
)

const DefaultName = "default"

var ErrEmptyDictionary = errors.New("dictionary has no usable words")

//go:embed words.txt
var defaultWords string

// Dictionary is an immutable list of upper-case alphabetic words.
type Dictionary struct {
	name  string
	words []string
	// intn picks an index in [0, n). Tests swap it for a fixed sequence.
	intn func(n int) int
}

// New normalizes words to upper case and builds a dictionary from them.
// Entries that are not purely alphabetic are skipped and duplicates are
// dropped. It is an error for nothing to be left.
func New(name string, words []string) (*Dictionary, error) {
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		nw, ok := alphabet.NormalizeWord(w)
		if !ok {
			log.Debug().Str("lexicon", name).Str("entry", w).Msg("skipping non-alphabetic entry")
			continue
		}
		normalized = append(normalized, nw)
	}
	normalized = lo.Uniq(normalized)
	if len(normalized) == 0 {
		return nil, ErrEmptyDictionary
	}
	return &Dictionary{name: name, words: normalized, intn: frand.Intn}, nil
}

// Default returns the dictionary built into the binary.
func Default() *Dictionary {
	words, err := parseText(strings.NewReader(defaultWords))
	if err != nil {
		panic(err)
	}
	d, err := New(DefaultName, words)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Dictionary) Name() string {
	return d.name
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns a copy of the word list.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}

func (d *Dictionary) Contains(word string) bool {
	w, ok := alphabet.NormalizeWord(word)
	return ok && lo.Contains(d.words, w)
}

// Random draws a word uniformly, with replacement.
func (d *Dictionary) Random() string {
	return d.words[d.intn(len(d.words))]
}

// NextWord supplies the secret word for the bot. It never declines.
func (d *Dictionary) NextWord(setter string) (string, bool) {
	w := d.Random()
	log.Debug().Str("lexicon", d.name).Str("setter", setter).Int("length", alphabet.Len(w)).
		Msg("drew word")
	return w, true
}
