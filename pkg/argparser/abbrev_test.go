package argparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/D1CED/argparser/pkg/argparser"
)

func TestStandardAbbreviations(t *testing.T) {
	reg := argparser.NewRegistry()
	reg.AddArgumentless([]string{"--verbose"}, 0, "")
	reg.AddArgumentless([]string{"--version"}, 0, "")
	reg.AddArgumentless([]string{"--colour", "--color"}, 0, "")

	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{"--verb", "--verbose", true},
		{"--vers", "--version", true},
		{"--verbose", "--verbose", true},
		{"--ver", "", false},
		{"--col", "", false},
		{"--colo", "", false},
		{"--colou", "--colour", true},
		{"--color", "--color", true},
		{"--x", "", false},
		{"--", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := argparser.StandardAbbreviations.Expand(tt.token, reg)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNoAbbreviations(t *testing.T) {
	reg := argparser.NewRegistry()
	reg.AddArgumentless([]string{"--verbose"}, 0, "")

	_, ok := argparser.NoAbbreviations.Expand("--verb", reg)
	assert.False(t, ok)
}

func TestAbbreviatorFunc(t *testing.T) {
	var seen []string
	ab := argparser.AbbreviatorFunc(func(token string, known argparser.Known) (string, bool) {
		seen = known.Spellings()
		return "--" + token[1:], true
	})

	reg := argparser.NewRegistry()
	reg.AddArgumentless([]string{"--x"}, 0, "")
	p := argparser.New("test", reg)
	p.Abbreviations = ab

	r := p.Parse([]string{"-x"}, true)
	assert.True(t, r.OK)
	assert.True(t, r.Used("--x"))
	assert.Equal(t, []string{"--x"}, seen)
}
