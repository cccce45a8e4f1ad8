package argparser_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/D1CED/argparser/pkg/argparser"
)

func TestEnumerate(t *testing.T) {

	t.Run("short", func(t *testing.T) {
		reg, err := argparser.Enumerate("ab:c")
		require.NoError(t, err)

		p := argparser.New("test", reg)
		r := p.Parse(strings.Split("-a -bc -b x target1", " "), false)

		assert.True(t, r.Used("-a"))
		assert.False(t, r.Used("-c"))
		assert.Equal(t, []string{"c", "x"}, r.Strings("-b"))
		assert.Equal(t, []string{"target1"}, r.Files)
	})

	t.Run("short+long", func(t *testing.T) {
		reg, err := argparser.Enumerate("a(foo)b(bar):c(baz)")
		require.NoError(t, err)

		p := argparser.New("test", reg)
		r := p.Parse(strings.Split("--foo --bar=c -b x target1", " "), false)

		assert.True(t, r.Used("-a"))
		assert.False(t, r.Used("--baz"))
		assert.Equal(t, []string{"c", "x"}, r.Strings("--bar"))
		assert.Equal(t, []string{"target1"}, r.Files)

		o, ok := reg.Lookup("-b")
		require.True(t, ok)
		assert.Equal(t, "--bar", o.Standard())
	})

	t.Run("long", func(t *testing.T) {
		reg, err := argparser.Enumerate("[foo][bar]:[baz]")
		require.NoError(t, err)

		p := argparser.New("test", reg)
		r := p.Parse(strings.Split("--foo --bar=c --bar x target1", " "), false)

		assert.True(t, r.OK)
		assert.True(t, r.Used("--foo"))
		assert.False(t, r.Used("--baz"))
		assert.Equal(t, []string{"c", "x"}, r.Strings("--bar"))
		assert.Equal(t, []string{"target1"}, r.Files)
	})

	t.Run("arity", func(t *testing.T) {
		reg, err := argparser.Enumerate("o(opt)? [rest]* v")
		require.NoError(t, err)

		kinds := map[string]argparser.Kind{}
		for _, o := range reg.Options() {
			kinds[o.Standard()] = o.Kind()
		}
		assert.Equal(t, map[string]argparser.Kind{
			"--opt":  argparser.Optargumented,
			"--rest": argparser.Variadic,
			"-v":     argparser.Argumentless,
		}, kinds)

		p := argparser.New("test", reg)
		r := p.Parse(strings.Split("-o -v --rest a b", " "), false)
		vs, _ := r.Values("--opt")
		assert.Equal(t, []argparser.Value{argparser.Null}, vs)
		assert.True(t, r.Used("-v"))
		assert.Equal(t, []string{"a", "b"}, r.Strings("--rest"))
	})

	t.Run("multline", func(t *testing.T) {
		const desc = `
			a:bc
			d(def):
			g(gir)
			[foo]
			[bar]:
			[baz-zing]
		`
		reg, err := argparser.Enumerate(desc)
		require.NoError(t, err)

		p := argparser.New("test", reg)
		r := p.Parse(strings.Split("-ahello --baz-zing --bar=test --def target2 -gcb", " "), false)

		assert.True(t, r.OK)
		assert.True(t, r.Used("--baz-zing"))
		assert.True(t, r.Used("--def"))
		assert.True(t, r.Used("-c"))
		assert.True(t, r.Used("-b"))
		assert.True(t, r.Used("--gir"))
		assert.False(t, r.Used("--foo"))

		assert.Equal(t, []string{"hello"}, r.Strings("-a"))
		assert.Equal(t, []string{"target2"}, r.Strings("-d"))
		assert.Equal(t, []string{"test"}, r.Strings("--bar"))
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := argparser.Enumerate("[f]g(f):[baz]")
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, desc := range []string{"a(", "[a)", "a(b]", "(a)", "a::", "[a-", "%"} {
			_, err := argparser.Enumerate(desc)
			assert.True(t, errors.Is(err, argparser.ErrEnumerate), desc)
		}
	})
}
