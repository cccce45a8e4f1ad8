package main // import "github.com/D1CED/argparser"

import (
	"os"

	"github.com/pkg/errors"

	"github.com/D1CED/argparser/pkg/argparser"
	"github.com/D1CED/argparser/pkg/text"
)

// Overridden at build time with -ldflags -X.
var (
	version    = "1.0.0"
	localePath = "/usr/share/locale"
)

func main() {
	text.Init(localePath)

	rc, err := appMain(os.Args[1:])
	if err != nil && err.Error() != "" {
		text.Fprogln(text.ErrOut, program, err)
	}
	os.Exit(rc)
}

func appMain(args []string) (int, error) {
	p := argparser.New(program, newCommandRegistry())
	p.Abbreviations = argparser.StandardAbbreviations

	r := p.Parse(args, false)
	if !r.OK {
		// the parser already warned
		return exitUsage, errors.New("")
	}

	cfg, err := newConfig(r)
	if err != nil {
		return exitUsage, err
	}
	text.UseColor = cfg.useColor()

	return handleCmd(cfg)
}
