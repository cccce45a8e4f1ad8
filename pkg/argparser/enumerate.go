package argparser

import (
	"github.com/pkg/errors"
)

// ErrEnumerate is returned for malformed option descriptions.
var ErrEnumerate = errors.New("malformed option description")

// Enumerate builds a Registry from a compact option description.
//
// Format:
//
//	a(all):
//	b
//	c(clear)?
//	d
//	e:
//	[emit]*
//
//	longid :: alnum ( alnum | '-' )*
//	arity  :: ':' | '?' | '*'
//	single :: ( alnum ( '(' longid ')' )? | '[' longid ']' ) ws arity?
//	full   :: ws ( single ws )*
//
// Short names become "-a", long names "--all". The long spelling is the
// standard one when present. ':' declares an argumented, '?' an
// optargumented and '*' a variadic option.
func Enumerate(desc string) (*Registry, error) {
	ops, err := parseEnumeration(desc)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(ops)*2)
	reg := NewRegistry()
	for _, op := range ops {
		var alts []string
		if op.ShortName != 0 {
			alts = append(alts, "-"+string(op.ShortName))
		}
		if op.LongName != "" {
			alts = append(alts, "--"+op.LongName)
		}
		for _, a := range alts {
			if seen[a] {
				return nil, errors.Errorf("same option twice: %s", a)
			}
			seen[a] = true
		}
		reg.Add(newOption(op.Kind, alts, -1, ""))
	}
	return reg, nil
}

func isWS(r rune) bool {
	switch r {
	default:
		return false
	case ' ', '\t', '\n', '\r':
		return true
	}
}

func isAlnum(r rune) bool {
	if ('0' <= r && r <= '9') || 'A' <= r && r <= 'Z' || 'a' <= r && r <= 'z' {
		return true
	}
	return false
}

func arityOf(r rune) (Kind, bool) {
	switch r {
	case ':':
		return Argumented, true
	case '?':
		return Optargumented, true
	case '*':
		return Variadic, true
	}
	return Argumentless, false
}

type enumerated struct {
	ShortName rune
	LongName  string
	Kind      Kind
}

func parseEnumeration(s string) ([]enumerated, error) {
	const (
		slong = iota
		long
		end
		afterEnd
		bad
	)

	gathered := []enumerated{}
	startIdx := 0
	cur := enumerated{}
	state := afterEnd

	for i, r := range s {
		switch state {
		case afterEnd:
			if isWS(r) {
				break
			}
			if r == '[' {
				state = slong
				break
			}
			if isAlnum(r) {
				cur.ShortName = r
				state = end
				break
			}
			state = bad
		case end:
			if r == '(' && cur.ShortName != 0 && cur.LongName == "" {
				state = slong
				break
			}
			if r == '[' {
				gathered = append(gathered, cur)
				cur = enumerated{}
				state = slong
				break
			}
			if isWS(r) {
				break
			}
			if kind, ok := arityOf(r); ok {
				cur.Kind = kind
				gathered = append(gathered, cur)
				cur = enumerated{}
				state = afterEnd
				break
			}
			if isAlnum(r) {
				gathered = append(gathered, cur)
				cur = enumerated{ShortName: r}
				state = end
				break
			}
			state = bad
		case slong:
			if !isAlnum(r) {
				state = bad
				break
			}
			startIdx = i
			state = long
		case long:
			if isAlnum(r) || r == '-' {
				break
			}
			if (r == ')' && cur.ShortName != 0) || (r == ']' && cur.ShortName == 0) {
				cur.LongName = s[startIdx:i]
				state = end
				break
			}
			state = bad
		}
		if state == bad {
			return nil, errors.Wrapf(ErrEnumerate, "unexpected %q at offset %d", r, i)
		}
	}

	switch state {
	case end:
		gathered = append(gathered, cur)
		fallthrough
	case afterEnd:
		return gathered, nil
	default:
		return nil, errors.Wrap(ErrEnumerate, "unexpected end of description")
	}
}
