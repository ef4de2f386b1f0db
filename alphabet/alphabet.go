// Package alphabet holds the letter rules shared by the word source and the
// guess evaluator: how raw text is folded to upper case and what counts as
// an alphabetic word.
package alphabet

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Blank is the rune shown in a revealed pattern for a letter that has not
// been guessed yet.
const Blank = '_'

// Normalize folds s to upper case. It does not trim or validate.
func Normalize(s string) string {
	// A Caser keeps state between calls, so one is made per call.
	return cases.Upper(language.Und).String(s)
}

// IsAlpha reports whether s is non-empty and made only of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// NormalizeWord returns the upper-case form of s and whether it is a valid
// secret word. Surrounding whitespace is ignored.
func NormalizeWord(s string) (string, bool) {
	w := Normalize(strings.TrimSpace(s))
	if !IsAlpha(w) {
		return "", false
	}
	return w, true
}

// Len is the number of letters in w.
func Len(w string) int {
	return utf8.RuneCountInString(w)
}
