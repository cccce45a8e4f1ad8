package main

import (
	"io"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/D1CED/argparser/pkg/argparser"
	"github.com/D1CED/argparser/pkg/multierror"
	"github.com/D1CED/argparser/pkg/text"
)

type optionReport struct {
	Count     int      `yaml:"count" toml:"count"`
	Spellings []string `yaml:"spellings" toml:"spellings"`
	Values    []string `yaml:"values,omitempty" toml:"values,omitempty"`
}

// report is what we print about one parse.
type report struct {
	OK           bool                    `yaml:"ok" toml:"ok"`
	Unrecognised int                     `yaml:"unrecognised" toml:"unrecognised"`
	Files        []string                `yaml:"files" toml:"files"`
	Message      string                  `yaml:"message" toml:"message"`
	Errors       []string                `yaml:"errors,omitempty" toml:"errors,omitempty"`
	Options      map[string]optionReport `yaml:"options" toml:"options"`

	order []string // standard spellings in declaration order
}

func newReport(r *argparser.Result, failures *multierror.MultiError) *report {
	rep := &report{
		OK:           r.OK && failures.Len() == 0,
		Unrecognised: r.Unrecognised,
		Files:        r.Files,
		Message:      r.Message,
		Options:      make(map[string]optionReport),
	}
	for _, e := range failures.Errors() {
		rep.Errors = append(rep.Errors, e.Error())
	}

	r.Iterate(func(standard string, values []argparser.Value) bool {
		rep.order = append(rep.order, standard)
		rep.Options[standard] = optionReport{
			Count:     len(values),
			Spellings: r.Spellings(standard),
			Values:    r.Strings(standard),
		}
		return true
	})
	return rep
}

func (rep *report) write(w io.Writer, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return errors.Wrap(err, text.T("failed to write report"))
		}
		return enc.Close()
	case "toml":
		return errors.Wrap(toml.NewEncoder(w).Encode(rep), text.T("failed to write report"))
	case "text":
		text.CaptureOutput(w, nil, rep.printInfo)
		return nil
	}
	return errors.New(text.Tf("unknown output format '%s'", format))
}

func (rep *report) printInfo() {
	for _, std := range rep.order {
		o := rep.Options[std]
		if len(o.Values) == 0 {
			text.PrintInfoValue(std, text.Tn("used %d time", "used %d times", o.Count, o.Count))
			continue
		}
		text.PrintInfoValue(std, o.Values...)
	}
	text.PrintInfoValue(text.T("Files"), rep.Files...)
	text.PrintInfoValue(text.T("Unrecognised"), strconv.Itoa(rep.Unrecognised))
	ok := text.Red(strconv.FormatBool(rep.OK))
	if rep.OK {
		ok = text.Green(strconv.FormatBool(rep.OK))
	}
	text.PrintInfoValue(text.T("OK"), ok)
}
