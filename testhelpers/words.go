// Package testhelpers has fixtures shared by tests in several packages.
package testhelpers

import (
	"testing"

	"github.com/domino14/gallows/lexicon"
)

// ScriptedSource hands out its words in order and records who asked. Once
// the words run out it declines, which a match treats as an abort.
type ScriptedSource struct {
	Words   []string
	Setters []string
}

func NewScriptedSource(words ...string) *ScriptedSource {
	return &ScriptedSource{Words: words}
}

func (s *ScriptedSource) NextWord(setter string) (string, bool) {
	s.Setters = append(s.Setters, setter)
	if len(s.Words) == 0 {
		return "", false
	}
	w := s.Words[0]
	s.Words = s.Words[1:]
	return w, true
}

// Dictionary builds a dictionary from words, failing the test if it can't.
func Dictionary(t testing.TB, words ...string) *lexicon.Dictionary {
	t.Helper()
	d, err := lexicon.New("test", words)
	if err != nil {
		t.Fatalf("building test dictionary: %v", err)
	}
	return d
}
