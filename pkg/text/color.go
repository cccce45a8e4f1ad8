package text

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
)

// UseColor enables escape codes in the package level helpers below.
var UseColor = false

var (
	boldAttr      = color.New(color.Bold)
	dimAttr       = color.New(color.Faint)
	underlineAttr = color.New(color.Underline)
	cyanAttr      = color.New(color.FgCyan)
	blueAttr      = color.New(color.FgBlue)
	yellowAttr    = color.New(color.FgYellow)
	redAttr       = color.New(color.FgRed)
	greenAttr     = color.New(color.FgGreen)
)

func init() {
	// Whether to colour is decided by Palette, not by fatih/color's own
	// terminal detection.
	for _, c := range []*color.Color{boldAttr, dimAttr, underlineAttr, cyanAttr, blueAttr, yellowAttr, redAttr, greenAttr} {
		c.EnableColor()
	}
}

// Palette colours text if Enabled and returns it unchanged otherwise.
type Palette struct {
	Enabled bool
}

func (p Palette) style(c *color.Color, s string) string {
	if !p.Enabled {
		return s
	}
	return c.Sprint(s)
}

func (p Palette) Bold(s string) string      { return p.style(boldAttr, s) }
func (p Palette) Dim(s string) string       { return p.style(dimAttr, s) }
func (p Palette) Underline(s string) string { return p.style(underlineAttr, s) }
func (p Palette) Cyan(s string) string      { return p.style(cyanAttr, s) }
func (p Palette) Blue(s string) string      { return p.style(blueAttr, s) }
func (p Palette) Yellow(s string) string    { return p.style(yellowAttr, s) }
func (p Palette) Red(s string) string       { return p.style(redAttr, s) }
func (p Palette) Green(s string) string     { return p.style(greenAttr, s) }

// Row colours successive rows cyan and blue.
func (p Palette) Row(row int, s string) string {
	if row&1 == 0 {
		return p.Cyan(s)
	}
	return p.Blue(s)
}

func current() Palette { return Palette{Enabled: UseColor} }

func Bold(s string) string  { return current().Bold(s) }
func Red(s string) string   { return current().Red(s) }
func Green(s string) string { return current().Green(s) }

func yellow(s string) string { return current().Yellow(s) }

// StripEscapes removes escape sequences, used when text written with
// colours in mind is printed without them.
func StripEscapes(s string) string {
	return ansi.Strip(s)
}
