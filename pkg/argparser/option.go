package argparser

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind describes how many values an option invocation takes.
type Kind int

const (
	// Argumentless options never take a value.
	Argumentless Kind = iota
	// Argumented options take exactly one value per invocation.
	Argumented
	// Optargumented options take a value if it is sticky or if the
	// next token looks like one.
	Optargumented
	// Variadic options take every following token.
	Variadic
)

const defaultArgumentName = "ARG"

func (k Kind) String() string {
	switch k {
	case Argumentless:
		return "argumentless"
	case Argumented:
		return "argumented"
	case Optargumented:
		return "optargumented"
	case Variadic:
		return "variadic"
	default:
		return "invalid"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < Argumentless || k > Variadic {
		return nil, errors.Errorf("invalid option kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText accepts the names returned by String.
func (k *Kind) UnmarshalText(b []byte) error {
	for c := Argumentless; c <= Variadic; c++ {
		if string(b) == c.String() {
			*k = c
			return nil
		}
	}
	return errors.Errorf("unknown option kind %q", b)
}

// TakesArgument reports whether k is Argumented or one of its sub kinds.
func (k Kind) TakesArgument() bool {
	return k >= Argumented && k <= Variadic
}

// Value is one recorded value of an option invocation.
// Argumentless invocations and values that never arrived are recorded as
// invalid (null) values so that repetitions can still be counted.
type Value struct {
	Text  string
	Valid bool
}

// Null is the value recorded when an invocation has no value.
var Null = Value{}

// Some wraps s in a valid Value.
func Some(s string) Value {
	return Value{Text: s, Valid: true}
}

func (v Value) String() string {
	if !v.Valid {
		return "<nil>"
	}
	return v.Text
}

// Trigger is invoked whenever an option is used, with the spelling that was
// used, the standard spelling and the value if there is one.
type Trigger func(used, standard string, value Value)

// Option is a declared command line option.
type Option struct {
	kind         Kind
	alternatives []string
	standard     string
	argument     string

	// Help is the short, possibly multi line, description shown in help
	// output. Options without help are hidden.
	Help string

	// Stickless decides whether a following, non sticky, token may be used
	// as the value of an Optargumented option.
	Stickless func(string) bool

	Trigger Trigger
}

// NewArgumentless creates an option that takes no value.
// standard selects the standard spelling, negative values count from the end.
func NewArgumentless(alternatives []string, standard int) *Option {
	return newOption(Argumentless, alternatives, standard, "")
}

// NewArgumented creates an option that takes exactly one value.
func NewArgumented(alternatives []string, standard int, argument string) *Option {
	return newOption(Argumented, alternatives, standard, argument)
}

// NewOptargumented creates an option whose value is optional. A nil stickless
// falls back to DefaultStickless.
func NewOptargumented(alternatives []string, standard int, argument string, stickless func(string) bool) *Option {
	o := newOption(Optargumented, alternatives, standard, argument)
	if stickless != nil {
		o.Stickless = stickless
	}
	return o
}

// NewVariadic creates an option that consumes all following tokens.
func NewVariadic(alternatives []string, standard int, argument string) *Option {
	return newOption(Variadic, alternatives, standard, argument)
}

func newOption(kind Kind, alternatives []string, standard int, argument string) *Option {
	if len(alternatives) == 0 {
		panic("argparser: option without alternatives")
	}
	idx := standard
	if idx < 0 {
		idx += len(alternatives)
	}
	if idx < 0 || idx >= len(alternatives) {
		panic("argparser: standard index out of range")
	}

	alts := make([]string, len(alternatives))
	copy(alts, alternatives)

	o := &Option{
		kind:         kind,
		alternatives: alts,
		standard:     alts[idx],
	}
	if kind.TakesArgument() {
		if argument == "" {
			argument = defaultArgumentName
		}
		o.argument = argument
	}
	if kind == Optargumented {
		o.Stickless = DefaultStickless
	}
	return o
}

// DefaultStickless accepts every token that does not look like an option.
func DefaultStickless(arg string) bool {
	return !(strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "+"))
}

func (o *Option) Kind() Kind { return o.kind }

// Alternatives returns a copy of the option's spellings.
func (o *Option) Alternatives() []string {
	alts := make([]string, len(o.alternatives))
	copy(alts, o.alternatives)
	return alts
}

func (o *Option) Standard() string { return o.standard }

// ArgumentName is empty for argumentless options.
func (o *Option) ArgumentName() string { return o.argument }

func (o *Option) trigger(used string, value Value) {
	if o.Trigger != nil {
		o.Trigger(used, o.standard, value)
	}
}

func (o *Option) stickless(arg string) bool {
	if o.Stickless == nil {
		return DefaultStickless(arg)
	}
	return o.Stickless(arg)
}
