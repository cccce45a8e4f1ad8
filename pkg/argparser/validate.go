package argparser

import (
	"os"
	"strings"

	"github.com/D1CED/argparser/pkg/intrange"
	"github.com/D1CED/argparser/pkg/multierror"
	"github.com/D1CED/argparser/pkg/stringset"
	"github.com/D1CED/argparser/pkg/text"
)

// Exit terminates the process in the Must* helpers.
var Exit = os.Exit

// ConflictError reports mutually exclusive options used together.
type ConflictError struct {
	// Invocations are spellings, qualified with their standard spelling
	// in parentheses when it differs.
	Invocations []string
}

func (e *ConflictError) Error() string {
	return text.Tf("conflicting options: %s", strings.Join(e.Invocations, " "))
}

// ContextError reports an option used where it is not allowed.
type ContextError struct {
	Spelling string
	Standard string
}

func (e *ContextError) Error() string {
	return text.Tf("option used out of context: %s", qualify(e.Spelling, e.Standard))
}

func qualify(spelling, standard string) string {
	if spelling == standard {
		return spelling
	}
	return spelling + "(" + standard + ")"
}

// standards maps names to standard spellings, unknown names are dropped.
func (r *Result) standards(names []string) stringset.StringSet {
	return stringset.Make(names...).Map(r.p.reg.Standard)
}

// Exclusive fails with a *ConflictError if more than one of the named
// options was used. Any spelling of an option may be named.
func (r *Result) Exclusive(names ...string) error {
	exclusives := r.standards(names)

	var (
		used        []string
		usedOptions int
	)
	for _, opt := range r.p.reg.Options() {
		if !exclusives.Get(opt.standard) || !r.Used(opt.standard) {
			continue
		}
		usedOptions++
		for _, spelling := range r.spellings[opt.standard] {
			used = append(used, qualify(spelling, opt.standard))
		}
	}

	if usedOptions > 1 {
		return &ConflictError{Invocations: used}
	}
	return nil
}

// Allowed fails for every spelling of every used option that is not among
// names. The returned error is a *multierror.MultiError of *ContextError.
func (r *Result) Allowed(names ...string) error {
	allowed := r.standards(names)
	errs := &multierror.MultiError{}

	for _, opt := range r.p.reg.Options() {
		if allowed.Get(opt.standard) || !r.Used(opt.standard) {
			continue
		}
		for _, spelling := range r.spellings[opt.standard] {
			errs.Add(&ContextError{Spelling: spelling, Standard: opt.standard})
		}
	}

	return errs.Return()
}

// FilesMin reports whether at least min positional arguments remain.
func (r *Result) FilesMin(min int) bool {
	return intrange.AtLeast(min).Get(len(r.Files))
}

// FilesMax reports whether at most max positional arguments remain.
func (r *Result) FilesMax(max int) bool {
	return intrange.AtMost(max).Get(len(r.Files))
}

// FilesBetween reports whether the number of positional arguments lies in
// the closed range [min, max].
func (r *Result) FilesBetween(min, max int) bool {
	return intrange.New(min, max).Get(len(r.Files))
}

// FilesIn is FilesBetween for a prepared range.
func (r *Result) FilesIn(bounds intrange.IntRange) bool {
	return bounds.Get(len(r.Files))
}

func (r *Result) report(err error) {
	if merr, ok := err.(*multierror.MultiError); ok {
		for _, e := range merr.Errors() {
			text.Fprogln(r.p.out(), r.p.Program, e.Error())
		}
		return
	}
	text.Fprogln(r.p.out(), r.p.Program, err.Error())
}

// MustExclusive is Exclusive that reports the conflict and exits with code.
func (r *Result) MustExclusive(code int, names ...string) {
	if err := r.Exclusive(names...); err != nil {
		r.report(err)
		Exit(code)
	}
}

// MustAllowed is Allowed that reports every violation and exits with code.
func (r *Result) MustAllowed(code int, names ...string) {
	if err := r.Allowed(names...); err != nil {
		r.report(err)
		Exit(code)
	}
}

// MustFiles exits with code unless the number of positional arguments lies
// within bounds.
func (r *Result) MustFiles(code int, bounds intrange.IntRange) {
	if !r.FilesIn(bounds) {
		text.Fprogln(r.p.out(), r.p.Program,
			text.Tf("expected %s positional arguments, got %d", bounds, len(r.Files)))
		Exit(code)
	}
}
