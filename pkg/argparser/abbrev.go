package argparser

import (
	"strings"
)

// Known is the view of the registry handed to an Abbreviator.
type Known interface {
	Spellings() []string
	Standard(spelling string) string
}

// Abbreviator expands an unrecognised token to a known spelling.
type Abbreviator interface {
	Expand(token string, known Known) (string, bool)
}

// AbbreviatorFunc adapts a function to the Abbreviator interface.
type AbbreviatorFunc func(token string, known Known) (string, bool)

func (f AbbreviatorFunc) Expand(token string, known Known) (string, bool) {
	return f(token, known)
}

// NoAbbreviations never expands anything. It is the default.
var NoAbbreviations Abbreviator = AbbreviatorFunc(func(string, Known) (string, bool) {
	return "", false
})

// StandardAbbreviations expands token to the one spelling it is a prefix
// of. Tokens that prefix several spellings, even spellings of the same
// option, are not expanded.
var StandardAbbreviations Abbreviator = AbbreviatorFunc(standardAbbreviation)

func standardAbbreviation(token string, known Known) (string, bool) {
	var match string
	for _, spelling := range known.Spellings() {
		if !strings.HasPrefix(spelling, token) {
			continue
		}
		if match != "" {
			return "", false
		}
		match = spelling
	}
	return match, match != ""
}
