// Package help renders the help message of a program from its option
// registry.
package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/D1CED/argparser/pkg/argparser"
	"github.com/D1CED/argparser/pkg/text"
)

// Program is the prose around the option table.
type Program struct {
	Name        string
	Description string
	// Usage may span several lines, each is one way to invoke the program.
	Usage           string
	LongDescription string
}

// Print prints help to w. Options without help text are left out.
func Print(w io.Writer, prog Program, reg *argparser.Registry, colours bool) {
	pal := text.Palette{Enabled: colours}
	clean := func(s string) string {
		if colours {
			return s
		}
		return text.StripEscapes(s)
	}

	dash := "—"
	if text.IsLinuxVT() {
		dash = "-"
	}
	fmt.Fprintf(w, "%s %s %s\n\n", pal.Bold(prog.Name), dash, prog.Description)

	if prog.LongDescription != "" {
		fmt.Fprintf(w, "%s\n\n", clean(prog.LongDescription))
	}

	if prog.Usage != "" {
		for i, line := range strings.Split(prog.Usage, "\n") {
			if i == 0 {
				fmt.Fprint(w, pal.Bold(text.T("USAGE:")))
			} else {
				fmt.Fprint(w, "    "+text.T("or"))
			}
			fmt.Fprintf(w, "\t%s\n", clean(line))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, pal.Bold(text.T("SYNOPSIS:")))
	for _, row := range synopsis(reg, pal) {
		fmt.Fprintln(w, row)
	}
	fmt.Fprintln(w)
}

type entry struct {
	short, long string // both already padded and styled
	width       int    // printed width of short and long
	help        []string
}

func visible(reg *argparser.Registry) []*argparser.Option {
	var opts []*argparser.Option
	for _, opt := range reg.Options() {
		if opt.Help != "" {
			opts = append(opts, opt)
		}
	}
	return opts
}

// width is the number of terminal cells s occupies.
func width(s string) int { return ansi.StringWidth(s) }

// synopsis lays out one row per visible option: the first spelling, the
// last spelling with its argument and the help text starting at a common
// tab aligned column.
func synopsis(reg *argparser.Registry, pal text.Palette) []string {
	opts := visible(reg)

	firstWidth := 0
	for _, opt := range opts {
		alts := opt.Alternatives()
		if len(alts) > 1 && width(alts[0]) > firstWidth {
			firstWidth = width(alts[0])
		}
	}

	entries := make([]entry, 0, len(opts))
	col := 0
	for i, opt := range opts {
		alts := opt.Alternatives()
		first, last := "", alts[len(alts)-1]
		if len(alts) > 1 {
			first = alts[0]
		}
		first += strings.Repeat(" ", firstWidth-width(first))

		e := entry{
			short: "    " + pal.Dim(first) + "  ",
			width: width(first) + 6 + width(last),
			help:  strings.Split(opt.Help, "\n"),
		}

		long := pal.Bold(pal.Row(i, last))
		arg := opt.ArgumentName()
		switch opt.Kind() {
		case argparser.Argumented:
			long += " " + pal.Underline(arg)
			e.width += width(arg) + 1
		case argparser.Optargumented:
			long += " [" + pal.Underline(arg) + "]"
			e.width += width(arg) + 3
		case argparser.Variadic:
			long += " [" + pal.Underline(arg) + "...]"
			e.width += width(arg) + 6
		}
		e.long = long

		if e.width > col {
			col = e.width
		}
		entries = append(entries, e)
	}
	col += 8 - ((col - 4) & 7)

	rows := make([]string, 0, len(entries))
	for i, e := range entries {
		row := e.short + e.long + strings.Repeat(" ", col-e.width) + pal.Bold(pal.Row(i, e.help[0]))
		rows = append(rows, row)
		for _, line := range e.help[1:] {
			rows = append(rows, strings.Repeat(" ", col)+pal.Row(i, line))
		}
	}
	return rows
}
