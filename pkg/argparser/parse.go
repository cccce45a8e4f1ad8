package argparser

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ef-ds/deque"
	"github.com/google/shlex"
	"github.com/pkg/errors"

	"github.com/D1CED/argparser/pkg/text"
)

// maxWarnings is the number of unrecognised options reported one by one.
const maxWarnings = 5

// Parser classifies command line tokens against a Registry.
// A Parser may be reused for any number of sequential Parse calls.
type Parser struct {
	// Program prefixes every line written to Out.
	Program string
	// Out receives warnings, text.ErrOut when nil.
	Out io.Writer
	// Abbreviations expands unrecognised long options, NoAbbreviations
	// when nil.
	Abbreviations Abbreviator

	reg *Registry
}

func New(program string, reg *Registry) *Parser {
	return &Parser{
		Program:       program,
		Abbreviations: NoAbbreviations,
		reg:           reg,
	}
}

func (p *Parser) Registry() *Registry { return p.reg }

func (p *Parser) out() io.Writer {
	if p.Out == nil {
		return text.ErrOut
	}
	return p.Out
}

func (p *Parser) abbreviations() Abbreviator {
	if p.Abbreviations == nil {
		return NoAbbreviations
	}
	return p.Abbreviations
}

type token struct {
	text     string
	expanded bool // produced by abbreviation expansion, never expanded again
}

type invocation struct {
	opt      *Option
	spelling string
	value    Value
	settled  bool
}

// state is everything one Parse call mutates.
type state struct {
	p           *Parser
	res         *Result
	alternative bool

	queue       deque.Deque // of token
	pending     deque.Deque // of indices into invocations, awaiting a value
	invocations []invocation

	dashed    bool
	tmpDashed bool
	dontget   int
}

// Parse classifies args, which must not include the program name.
// With alternative set a single '-' or '+' introduces long options.
//
// Parse never fails: unrecognised options are counted, reported to the
// parser's output and flagged in Result.OK.
func (p *Parser) Parse(args []string, alternative bool) *Result {
	s := &state{
		p:           p,
		res:         newResult(p, args),
		alternative: alternative,
	}
	for _, arg := range args {
		s.queue.PushBack(token{text: arg})
	}

	for s.queue.Len() > 0 {
		e, _ := s.queue.PopFront()
		s.next(e.(token))
	}

	s.settle()
	return s.res
}

// ParseString splits line like a POSIX shell would and parses the result.
func (p *Parser) ParseString(line string, alternative bool) (*Result, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, errors.Wrap(err, text.T("cannot split command line"))
	}
	return p.Parse(args, alternative), nil
}

func (s *state) next(tok token) {
	arg := tok.text

	if s.pending.Len() > 0 && s.dontget == 0 {
		if s.takeValue(arg) {
			return
		}
	}

	switch {
	case s.tmpDashed:
		s.file(arg)
		s.tmpDashed = false
	case s.dashed:
		s.file(arg)
	case arg == "++":
		s.tmpDashed = true
	case arg == "--":
		s.dashed = true
	case len(arg) > 1 && (arg[0] == '-' || arg[0] == '+'):
		if s.alternative || arg[1] == arg[0] {
			s.long(tok)
		} else {
			s.short(arg)
		}
	default:
		s.file(arg)
	}
}

// takeValue hands arg to the oldest option awaiting a value. It reports
// false if the option declined arg, which then has to be classified.
func (s *state) takeValue(arg string) bool {
	e, _ := s.pending.PopFront()
	inv := &s.invocations[e.(int)]
	inv.settled = true

	if inv.opt.kind == Optargumented && !inv.opt.stickless(arg) {
		inv.opt.trigger(inv.spelling, Null)
		return false
	}

	inv.value = Some(arg)
	inv.opt.trigger(inv.spelling, inv.value)
	return true
}

func (s *state) file(arg string) {
	s.res.Files = append(s.res.Files, arg)
}

// use records a completed invocation and fires its trigger.
func (s *state) use(opt *Option, spelling string, value Value) {
	s.invocations = append(s.invocations, invocation{opt, spelling, value, true})
	opt.trigger(spelling, value)
}

// await records an invocation whose value is the next token.
func (s *state) await(opt *Option, spelling string) {
	s.invocations = append(s.invocations, invocation{opt: opt, spelling: spelling})
	s.pending.PushBack(len(s.invocations) - 1)
}

// variadic records a variadic invocation, first is its sticky value if any.
func (s *state) variadic(opt *Option, spelling string, first Value) {
	s.invocations = append(s.invocations, invocation{opt, spelling, first, true})
	opt.trigger(spelling, Null)
	s.dashed = true
}

// long handles "--name", "--name=value" and, in alternative mode, their
// single sign forms.
func (s *state) long(tok token) {
	arg := tok.text
	reg := s.p.reg

	if s.dontget > 0 {
		s.dontget--
		return
	}

	if opt, ok := reg.Lookup(arg); ok && opt.kind == Argumentless {
		s.use(opt, arg, Null)
		return
	}

	if idx := strings.IndexByte(arg, '='); idx >= 0 {
		name, value := arg[:idx], arg[idx+1:]
		if opt, ok := reg.Lookup(name); ok && opt.kind.TakesArgument() {
			if opt.kind == Variadic {
				s.variadic(opt, name, Some(value))
			} else {
				s.use(opt, name, Some(value))
			}
			return
		}
		if expanded, ok := s.expand(tok, name); ok {
			s.queue.PushFront(token{text: expanded + "=" + value, expanded: true})
			return
		}
		s.unrecognised(name)
		return
	}

	if opt, ok := reg.Lookup(arg); ok {
		switch opt.kind {
		case Argumented, Optargumented:
			s.await(opt, arg)
		case Variadic:
			s.variadic(opt, arg, Null)
		}
		return
	}

	if expanded, ok := s.expand(tok, arg); ok {
		s.queue.PushFront(token{text: expanded, expanded: true})
		return
	}
	s.unrecognised(arg)
}

// short handles a cluster of single character options like "-abc".
func (s *state) short(arg string) {
	sign, rest := arg[:1], arg[1:]

	for i := 0; i < len(rest); {
		_, size := utf8.DecodeRuneInString(rest[i:])
		spelling := sign + rest[i:i+size]
		i += size
		tail := rest[i:]

		opt, ok := s.p.reg.Lookup(spelling)
		if !ok {
			s.unrecognised(spelling)
			continue
		}

		switch opt.kind {
		case Argumentless:
			s.use(opt, spelling, Null)
			continue
		case Argumented, Optargumented:
			if tail == "" {
				s.await(opt, spelling)
			} else {
				s.use(opt, spelling, Some(tail))
			}
		case Variadic:
			first := Null
			if tail != "" {
				first = Some(tail)
			}
			s.variadic(opt, spelling, first)
		}
		return
	}
}

func (s *state) expand(tok token, name string) (string, bool) {
	if tok.expanded {
		return "", false
	}
	return s.p.abbreviations().Expand(name, s.p.reg)
}

func (s *state) unrecognised(arg string) {
	s.res.Unrecognised++
	if s.res.Unrecognised <= maxWarnings {
		text.Fwarnln(s.p.out(), s.p.Program, text.Tf("unrecognised option %s", arg))
	}
	s.res.OK = false
}

// settle runs once all tokens are consumed.
func (s *state) settle() {
	for i := range s.invocations {
		inv := &s.invocations[i]
		if !inv.settled {
			inv.opt.trigger(inv.spelling, Null)
			inv.settled = true
		}
		s.res.record(inv.opt, inv.spelling, inv.value)
	}

	for _, opt := range s.p.reg.Options() {
		if opt.kind != Variadic {
			continue
		}
		values, used := s.res.values[opt.standard]
		if !used {
			continue
		}
		files := make([]Value, 0, len(s.res.Files))
		for _, f := range s.res.Files {
			files = append(files, Some(f))
		}
		if values[0].Valid {
			s.res.values[opt.standard] = append(values, files...)
		} else {
			s.res.values[opt.standard] = files
		}
		s.res.Files = []string{}
		break
	}

	s.res.Message = strings.Join(s.res.Files, " ")

	if more := s.res.Unrecognised - maxWarnings; more > 0 {
		text.Fwarnln(s.p.out(), s.p.Program,
			text.Tn("%d more unrecognised option", "%d more unrecognised options", more, more))
	}
}
