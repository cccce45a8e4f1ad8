package argparser

import (
	"fmt"
)

// Result is the outcome of one Parse call. It is owned by the caller.
type Result struct {
	// Arguments is the parsed vector as given.
	Arguments []string
	// Files holds the positional arguments that no variadic option claimed.
	Files []string
	// Message is Files joined by single spaces.
	Message string
	// Unrecognised counts unknown options, including each unknown
	// character of a short option cluster.
	Unrecognised int
	// OK is true if no unrecognised option was seen.
	OK bool

	p         *Parser
	values    map[string][]Value  // standard -> one entry per invocation
	spellings map[string][]string // standard -> distinct spellings used
}

func newResult(p *Parser, args []string) *Result {
	arguments := make([]string, len(args))
	copy(arguments, args)

	return &Result{
		Arguments: arguments,
		Files:     make([]string, 0),
		OK:        true,
		p:         p,
		values:    make(map[string][]Value),
		spellings: make(map[string][]string),
	}
}

func (r *Result) record(opt *Option, spelling string, value Value) {
	r.values[opt.standard] = append(r.values[opt.standard], value)
	for _, s := range r.spellings[opt.standard] {
		if s == spelling {
			return
		}
	}
	r.spellings[opt.standard] = append(r.spellings[opt.standard], spelling)
}

// standard maps any spelling to the key its values are stored under.
func (r *Result) standard(name string) string {
	if std := r.p.reg.Standard(name); std != "" {
		return std
	}
	return name
}

// Used reports whether the option owning name was used at least once.
func (r *Result) Used(name string) bool {
	_, ok := r.values[r.standard(name)]
	return ok
}

// Values returns one entry per invocation, which can be null. The boolean
// is false if the option was never used. A used variadic option may have
// no values at all.
func (r *Result) Values(name string) ([]Value, bool) {
	vs, ok := r.values[r.standard(name)]
	return vs, ok
}

// Count returns how many values were recorded, for most options this is
// how often they were used.
func (r *Result) Count(name string) int {
	return len(r.values[r.standard(name)])
}

// Strings returns the non null values of name.
func (r *Result) Strings(name string) []string {
	vs := r.values[r.standard(name)]
	ss := make([]string, 0, len(vs))
	for _, v := range vs {
		if v.Valid {
			ss = append(ss, v.Text)
		}
	}
	return ss
}

// Last returns the last non null value of name.
func (r *Result) Last(name string) (string, bool) {
	vs := r.values[r.standard(name)]
	for i := len(vs) - 1; i >= 0; i-- {
		if vs[i].Valid {
			return vs[i].Text, true
		}
	}
	return "", false
}

// Spellings returns the distinct spellings name was used with, in order of
// first use.
func (r *Result) Spellings(name string) []string {
	return r.spellings[r.standard(name)]
}

// Iterate calls fn for every used option in declaration order until fn
// returns false.
func (r *Result) Iterate(fn func(standard string, values []Value) bool) {
	for _, opt := range r.p.reg.Options() {
		vs, ok := r.values[opt.standard]
		if !ok {
			continue
		}
		if !fn(opt.standard, vs) {
			return
		}
	}
}

func (r *Result) String() string {
	return fmt.Sprintf("Options:%v Files:%v Unrecognised:%d", r.values, r.Files, r.Unrecognised)
}
