package main

import (
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"

	"github.com/D1CED/argparser/pkg/argparser"
	"github.com/D1CED/argparser/pkg/help"
	"github.com/D1CED/argparser/pkg/intrange"
	"github.com/D1CED/argparser/pkg/multierror"
	"github.com/D1CED/argparser/pkg/stringset"
	"github.com/D1CED/argparser/pkg/text"
)

const (
	exitOK = iota
	exitRejected
	exitUsage
)

const program = "argparser"

var usage = help.Program{
	Name:        program,
	Description: "parse a command line against declared options",
	Usage: program + " (-f FILE | -e DESC) [options] [--args] [ARG...]\n" +
		program + " (-f FILE | -e DESC) [options] -c LINE",
	LongDescription: "Reads option declarations from a YAML or TOML file, or from an inline\n" +
		"description such as 'ab:c(long)[only-long]*', parses the given\n" +
		"arguments against them and prints what was recognised.",
}

func newCommandRegistry() *argparser.Registry {
	reg := argparser.NewRegistry()
	reg.AddArgumentless([]string{"-h", "-?", "--help"}, -1, "Print this help message")
	reg.AddArgumentless([]string{"-V", "--version"}, -1, "Print the version")
	reg.AddArgumented([]string{"-f", "--file"}, -1, "FILE", "Read declarations from FILE (.yaml, .yml, .toml)")
	reg.AddArgumented([]string{"-e", "--enumerate"}, -1, "DESC", "Declare options inline, e.g. 'ab:c(long)?[rest]*'")
	reg.AddArgumented([]string{"-p", "--program"}, -1, "NAME", "Program name used in warnings")
	reg.AddArgumentless([]string{"-a", "--alternative"}, -1, "Let a single '-' or '+' introduce long options")
	reg.AddArgumentless([]string{"--abbrev"}, 0, "Accept unambiguous prefixes of long options")
	reg.AddArgumented([]string{"-c", "--command"}, -1, "LINE", "Split LINE like a shell and parse the result,\n- reads LINE from standard input")
	reg.AddArgumented([]string{"-x", "--exclusive"}, -1, "OPTIONS", "Reject more than one of the comma separated\nOPTIONS, may be repeated")
	reg.AddArgumented([]string{"--allowed"}, 0, "OPTIONS", "Reject options not in the comma separated OPTIONS")
	reg.AddArgumented([]string{"--files"}, 0, "RANGE", "Require MIN:MAX positional arguments")
	reg.AddOptargumented([]string{"-o", "--output"}, -1, "FORMAT", "Report as text, yaml or toml, yaml if bare", nil)
	reg.AddArgumented([]string{"--color"}, 0, "WHEN", "Colour output: always, auto or never")
	reg.AddArgumentless([]string{"--describe"}, 0, "Print the help of the declared program")
	reg.AddVariadic([]string{"--args"}, 0, "ARG", "Parse every following argument")
	return reg
}

// config is the outcome of parsing our own command line.
type config struct {
	help, version bool

	declFile  string
	enumerate string
	program   string

	alternative bool
	abbrev      bool
	describe    bool

	command string
	args    []string

	exclusive [][]string
	allowed   []string
	files     *intrange.IntRange

	format string
	color  string
}

var formats = stringset.Make("text", "yaml", "toml")

func newConfig(r *argparser.Result) (*config, error) {
	if err := r.Exclusive("--file", "--enumerate"); err != nil {
		return nil, err
	}

	cfg := &config{
		help:        r.Used("--help"),
		version:     r.Used("--version"),
		alternative: r.Used("--alternative"),
		abbrev:      r.Used("--abbrev"),
		describe:    r.Used("--describe"),
		format:      "text",
		color:       "auto",
	}
	if c, ok := r.Last("--color"); ok {
		cfg.color = c
	}
	switch cfg.color {
	case "always", "auto", "never":
	default:
		return nil, errors.New(text.Tf("invalid --color '%s'", cfg.color))
	}

	if cfg.help || cfg.version {
		return cfg, nil
	}

	cfg.declFile, _ = r.Last("--file")
	cfg.enumerate, _ = r.Last("--enumerate")
	cfg.program, _ = r.Last("--program")
	cfg.command, _ = r.Last("--command")
	if cfg.declFile == "" && cfg.enumerate == "" {
		return nil, errors.New(text.T("no declarations given, use -f or -e"))
	}

	cfg.args = append(append([]string{}, r.Files...), r.Strings("--args")...)
	if cfg.command != "" && len(cfg.args) > 0 {
		return nil, errors.New(text.T("arguments cannot be combined with --command"))
	}

	for _, group := range r.Strings("--exclusive") {
		cfg.exclusive = append(cfg.exclusive, splitList(group))
	}
	if list, ok := r.Last("--allowed"); ok {
		cfg.allowed = splitList(list)
	}
	if s, ok := r.Last("--files"); ok {
		bounds, err := intrange.Parse(s)
		if err != nil {
			return nil, errors.Wrap(err, text.T("invalid --files"))
		}
		cfg.files = &bounds
	}

	if r.Used("--output") {
		cfg.format = "yaml"
		if f, ok := r.Last("--output"); ok {
			cfg.format = f
		}
	}
	if !formats.Get(cfg.format) {
		return nil, errors.New(text.Tf("unknown output format '%s'", cfg.format))
	}

	return cfg, nil
}

func splitList(s string) []string {
	ss := stringset.Make(strings.Split(s, ",")...).Map(strings.TrimSpace)
	return ss.Sorted()
}

func (cfg *config) useColor() bool {
	switch cfg.color {
	case "always":
		return true
	case "never":
		return false
	}
	return text.OutIsTerminal()
}

// declaration loads the target program's declaration, flags given on our
// command line take precedence.
func (cfg *config) declaration() (*Declaration, error) {
	var decl *Declaration
	if cfg.declFile != "" {
		d, err := loadDeclaration(cfg.declFile)
		if err != nil {
			return nil, err
		}
		decl = d
	} else {
		reg, err := argparser.Enumerate(cfg.enumerate)
		if err != nil {
			return nil, err
		}
		decl = declarationOf("", reg)
	}

	if cfg.program != "" {
		decl.Program = cfg.program
	}
	if decl.Program == "" {
		decl.Program = program
	}
	decl.Abbreviations = decl.Abbreviations || cfg.abbrev
	decl.Alternative = decl.Alternative || cfg.alternative
	return decl, nil
}

// commandLine is the -c argument, "-" reads it from standard input.
func (cfg *config) commandLine() (string, error) {
	if cfg.command != "-" {
		return cfg.command, nil
	}
	b, err := ioutil.ReadAll(text.In)
	if err != nil {
		return "", errors.Wrap(err, text.T("failed to read command line"))
	}
	return string(b), nil
}

func handleCmd(cfg *config) (int, error) {
	switch {
	case cfg.help:
		help.Print(text.Out, usage, newCommandRegistry(), text.UseColor)
		return exitOK, nil
	case cfg.version:
		handleVersion()
		return exitOK, nil
	}

	decl, err := cfg.declaration()
	if err != nil {
		return exitUsage, err
	}
	reg, err := decl.Registry()
	if err != nil {
		return exitUsage, err
	}

	if cfg.describe {
		if cfg.command != "" || len(cfg.args) > 0 {
			text.Warnln(program, text.T("arguments are ignored with --describe"))
		}
		help.Print(text.Out, decl.Help(), reg, text.UseColor)
		return exitOK, nil
	}

	p := argparser.New(decl.Program, reg)
	if decl.Abbreviations {
		p.Abbreviations = argparser.StandardAbbreviations
	}

	var r *argparser.Result
	if cfg.command != "" {
		line, err := cfg.commandLine()
		if err != nil {
			return exitUsage, err
		}
		r, err = p.ParseString(line, decl.Alternative)
		if err != nil {
			return exitUsage, err
		}
	} else {
		r = p.Parse(cfg.args, decl.Alternative)
	}

	failures := cfg.validate(r)
	for _, e := range failures.Errors() {
		text.Fprogln(text.ErrOut, decl.Program, e)
	}

	rep := newReport(r, failures)
	if err := rep.write(text.Out, cfg.format); err != nil {
		return exitUsage, err
	}

	if !r.OK || failures.Len() > 0 {
		return exitRejected, nil
	}
	return exitOK, nil
}

// validate runs the requested checks, an error that collects several
// failures is flattened.
func (cfg *config) validate(r *argparser.Result) *multierror.MultiError {
	var failures multierror.MultiError
	add := func(err error) {
		var merr *multierror.MultiError
		if errors.As(err, &merr) {
			for _, e := range merr.Errors() {
				failures.Add(e)
			}
			return
		}
		failures.Add(err)
	}

	for _, group := range cfg.exclusive {
		add(r.Exclusive(group...))
	}
	if cfg.allowed != nil {
		add(r.Allowed(cfg.allowed...))
	}
	if cfg.files != nil && !r.FilesIn(*cfg.files) {
		add(errors.New(text.Tf("expected %s positional arguments, got %d", *cfg.files, len(r.Files))))
	}
	return &failures
}

func handleVersion() {
	text.Printf("%s v%s\n", program, version)
}
