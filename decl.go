package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/D1CED/argparser/pkg/argparser"
	"github.com/D1CED/argparser/pkg/help"
	"github.com/D1CED/argparser/pkg/text"
)

// OptionDecl declares one option of the described program.
type OptionDecl struct {
	Kind         argparser.Kind `yaml:"kind" toml:"kind"`
	Alternatives []string       `yaml:"alternatives" toml:"alternatives"`
	Standard     int            `yaml:"standard" toml:"standard"`
	Argument     string         `yaml:"argument,omitempty" toml:"argument,omitempty"`
	Help         string         `yaml:"help,omitempty" toml:"help,omitempty"`
}

// Declaration describes the command line of a program.
type Declaration struct {
	Program         string       `yaml:"program" toml:"program"`
	Description     string       `yaml:"description,omitempty" toml:"description,omitempty"`
	Usage           string       `yaml:"usage,omitempty" toml:"usage,omitempty"`
	LongDescription string       `yaml:"long_description,omitempty" toml:"long_description,omitempty"`
	Abbreviations   bool         `yaml:"abbreviations,omitempty" toml:"abbreviations,omitempty"`
	Alternative     bool         `yaml:"alternative,omitempty" toml:"alternative,omitempty"`
	Options         []OptionDecl `yaml:"options" toml:"options"`
}

// loadDeclaration reads a declaration file, its extension selects the
// format.
func loadDeclaration(path string) (*Declaration, error) {
	var d Declaration

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &d); err != nil {
			return nil, errors.Wrap(err, text.Tf("failed to read declaration file '%s'", path))
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, text.Tf("failed to open declaration file '%s'", path))
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, errors.Wrap(err, text.Tf("failed to read declaration file '%s'", path))
		}
	default:
		return nil, errors.New(text.Tf("unsupported declaration format '%s'", ext))
	}

	return &d, nil
}

// Registry builds the declared options. Declarations the option
// constructors would reject are reported as errors.
func (d *Declaration) Registry() (*argparser.Registry, error) {
	reg := argparser.NewRegistry()
	for i, o := range d.Options {
		n := len(o.Alternatives)
		switch {
		case n == 0:
			return nil, errors.New(text.Tf("option %d has no alternatives", i+1))
		case o.Standard >= n || o.Standard < -n:
			return nil, errors.New(text.Tf("option %d: standard %d out of range", i+1, o.Standard))
		}
		for _, alt := range o.Alternatives {
			if _, dup := reg.Lookup(alt); dup {
				return nil, errors.New(text.Tf("option %s declared twice", alt))
			}
		}

		switch o.Kind {
		case argparser.Argumentless:
			reg.AddArgumentless(o.Alternatives, o.Standard, o.Help)
		case argparser.Argumented:
			reg.AddArgumented(o.Alternatives, o.Standard, o.Argument, o.Help)
		case argparser.Optargumented:
			reg.AddOptargumented(o.Alternatives, o.Standard, o.Argument, o.Help, nil)
		case argparser.Variadic:
			reg.AddVariadic(o.Alternatives, o.Standard, o.Argument, o.Help)
		default:
			return nil, errors.New(text.Tf("option %d has an invalid kind", i+1))
		}
	}
	return reg, nil
}

func (d *Declaration) Help() help.Program {
	return help.Program{
		Name:            d.Program,
		Description:     d.Description,
		Usage:           d.Usage,
		LongDescription: d.LongDescription,
	}
}

// declarationOf turns an enumerated registry back into a declaration, so
// that both sources are handled alike.
func declarationOf(program string, reg *argparser.Registry) *Declaration {
	d := &Declaration{Program: program}
	for _, opt := range reg.Options() {
		alts := opt.Alternatives()
		std := 0
		for i, alt := range alts {
			if alt == opt.Standard() {
				std = i
			}
		}
		d.Options = append(d.Options, OptionDecl{
			Kind:         opt.Kind(),
			Alternatives: alts,
			Standard:     std,
			Argument:     opt.ArgumentName(),
			Help:         opt.Help,
		})
	}
	return d
}
