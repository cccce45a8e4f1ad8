package stringset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/D1CED/argparser/pkg/stringset"
)

func TestStringSet(t *testing.T) {
	set := stringset.Make("--verbose", "-v")
	set.Extend("--version", "-v")

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Get("-v"))
	assert.False(t, set.Get("--verb"))

	set.Remove("-v")
	assert.False(t, set.Get("-v"))
	assert.Equal(t, []string{"--verbose", "--version"}, set.Sorted())
}

func TestStringSet_Map(t *testing.T) {
	set := stringset.Make("-a", "--all", "-x")

	mapped := set.Map(func(s string) string {
		if s == "-x" {
			return ""
		}
		return strings.TrimLeft(s, "-")[:1]
	})

	assert.Equal(t, []string{"a"}, mapped.Sorted())
	assert.ElementsMatch(t, []string{"-a", "--all", "-x"}, set.ToSlice())
}
