package argparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/D1CED/argparser/pkg/argparser"
)

func TestNewOption(t *testing.T) {
	t.Run("standard index", func(t *testing.T) {
		o := argparser.NewArgumented([]string{"-o", "--out", "--output"}, -1, "FILE")
		assert.Equal(t, "--output", o.Standard())
		assert.Equal(t, "FILE", o.ArgumentName())
		assert.Equal(t, argparser.Argumented, o.Kind())

		o = argparser.NewArgumentless([]string{"-o", "--out"}, 1)
		assert.Equal(t, "--out", o.Standard())
		assert.Equal(t, "", o.ArgumentName())
	})

	t.Run("default argument name", func(t *testing.T) {
		o := argparser.NewVariadic([]string{"--rest"}, 0, "")
		assert.Equal(t, "ARG", o.ArgumentName())
	})

	t.Run("alternatives are copied", func(t *testing.T) {
		alts := []string{"-a", "--all"}
		o := argparser.NewArgumentless(alts, 0)
		alts[0] = "-x"
		assert.Equal(t, []string{"-a", "--all"}, o.Alternatives())
	})

	t.Run("invalid", func(t *testing.T) {
		assert.Panics(t, func() { argparser.NewArgumentless(nil, 0) })
		assert.Panics(t, func() { argparser.NewArgumentless([]string{"-a"}, 1) })
		assert.Panics(t, func() { argparser.NewArgumentless([]string{"-a"}, -2) })
	})

	t.Run("default stickless", func(t *testing.T) {
		o := argparser.NewOptargumented([]string{"-L"}, 0, "", nil)
		assert.True(t, o.Stickless("value"))
		assert.True(t, o.Stickless(""))
		assert.False(t, o.Stickless("-x"))
		assert.False(t, o.Stickless("+x"))
	})
}

func TestKind(t *testing.T) {
	assert.False(t, argparser.Argumentless.TakesArgument())
	assert.True(t, argparser.Argumented.TakesArgument())
	assert.True(t, argparser.Optargumented.TakesArgument())
	assert.True(t, argparser.Variadic.TakesArgument())
	assert.Equal(t, "optargumented", argparser.Optargumented.String())
}

func TestRegistry(t *testing.T) {
	reg := argparser.NewRegistry()
	reg.AddArgumented([]string{"-l", "--line"}, 0, "LINE", "")
	reg.AddArgumentless([]string{"-h", "--help"}, -1, "")
	reg.AddVariadic([]string{"--rest"}, 0, "", "")

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"--help", "--line", "--rest", "-h", "-l"}, reg.Spellings())

	o, ok := reg.Lookup("--line")
	assert.True(t, ok)
	assert.Equal(t, "-l", o.Standard())

	_, ok = reg.Lookup("--nope")
	assert.False(t, ok)

	assert.Equal(t, "--help", reg.Standard("-h"))
	assert.Equal(t, "", reg.Standard("-x"))

	var order []string
	for _, o := range reg.Options() {
		order = append(order, o.Standard())
	}
	assert.Equal(t, []string{"-l", "--help", "--rest"}, order)
}

func TestRegistry_LastWins(t *testing.T) {
	reg := argparser.NewRegistry()
	reg.AddArgumentless([]string{"-a"}, 0, "")
	reg.AddArgumented([]string{"-b", "-a"}, 0, "", "")

	o, _ := reg.Lookup("-a")
	assert.Equal(t, "-b", o.Standard())
}
