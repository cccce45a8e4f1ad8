package argparser

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map"
)

// Registry maps every spelling to the option owning it.
// It is filled at configuration time and only read while parsing.
type Registry struct {
	bySpelling map[string]*Option
	order      *orderedmap.OrderedMap // standard -> *Option
}

func NewRegistry() *Registry {
	return &Registry{
		bySpelling: make(map[string]*Option),
		order:      orderedmap.New(),
	}
}

// Add registers all spellings of opt.
// Registering the same spelling for two options is not supported, the last
// registration wins.
func (r *Registry) Add(opt *Option) *Option {
	r.order.Set(opt.standard, opt)
	for _, alt := range opt.alternatives {
		r.bySpelling[alt] = opt
	}
	return opt
}

func (r *Registry) AddArgumentless(alternatives []string, standard int, help string) *Option {
	o := NewArgumentless(alternatives, standard)
	o.Help = help
	return r.Add(o)
}

func (r *Registry) AddArgumented(alternatives []string, standard int, argument, help string) *Option {
	o := NewArgumented(alternatives, standard, argument)
	o.Help = help
	return r.Add(o)
}

func (r *Registry) AddOptargumented(alternatives []string, standard int, argument, help string, stickless func(string) bool) *Option {
	o := NewOptargumented(alternatives, standard, argument, stickless)
	o.Help = help
	return r.Add(o)
}

func (r *Registry) AddVariadic(alternatives []string, standard int, argument, help string) *Option {
	o := NewVariadic(alternatives, standard, argument)
	o.Help = help
	return r.Add(o)
}

// Lookup resolves a spelling to its option.
func (r *Registry) Lookup(spelling string) (*Option, bool) {
	o, ok := r.bySpelling[spelling]
	return o, ok
}

// Standard returns the standard spelling of the option owning spelling or
// the empty string if spelling is unknown.
func (r *Registry) Standard(spelling string) string {
	if o, ok := r.bySpelling[spelling]; ok {
		return o.standard
	}
	return ""
}

// Spellings returns all known spellings in lexical order.
func (r *Registry) Spellings() []string {
	ss := make([]string, 0, len(r.bySpelling))
	for s := range r.bySpelling {
		ss = append(ss, s)
	}
	sort.Strings(ss)
	return ss
}

// Options returns the registered options in the order they were added.
func (r *Registry) Options() []*Option {
	opts := make([]*Option, 0, r.order.Len())
	for pair := r.order.Oldest(); pair != nil; pair = pair.Next() {
		opts = append(opts, pair.Value.(*Option))
	}
	return opts
}

func (r *Registry) Len() int {
	return r.order.Len()
}
