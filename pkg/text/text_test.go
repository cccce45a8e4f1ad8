package text

import (
	"bytes"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPalette(t *testing.T) {
	off := Palette{}
	assert.Equal(t, "x", off.Bold("x"))
	assert.Equal(t, "x", off.Row(1, "x"))

	on := Palette{Enabled: true}
	assert.NotEqual(t, "x", on.Bold("x"))
	assert.NotEqual(t, on.Row(0, "x"), on.Row(1, "x"))
	assert.Equal(t, on.Cyan("x"), on.Row(2, "x"))
	assert.Equal(t, "x", StripEscapes(on.Bold(on.Blue("x"))))
	assert.Equal(t, "link", StripEscapes("\x1b]8;;https://example.org\x07link\x1b]8;;\x07"))
}

func TestPackageColours(t *testing.T) {
	UseColor = true
	defer func() { UseColor = false }()

	assert.Equal(t, Palette{Enabled: true}.Green("ok"), Green("ok"))
	assert.Equal(t, Palette{Enabled: true}.Red("no"), Red("no"))
	assert.Equal(t, "ok", StripEscapes(Green("ok")))

	UseColor = false
	assert.Equal(t, "no", Red("no"))
}

func TestFwarnln(t *testing.T) {
	UseColor = false

	var buf bytes.Buffer
	Fwarnln(&buf, "prog", "something", 3)
	Fprogln(&buf, "prog", "done")

	assert.Equal(t, "prog: warning: something 3\nprog: done\n", buf.String())
}

func TestCaptureOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	CaptureOutput(&out, &errOut, func() {
		Printf("%s\n", "out")
		Warnln("prog", "careful")
	})

	assert.Equal(t, "out\n", out.String())
	assert.Equal(t, "prog: warning: careful\n", errOut.String())

	CaptureOutput(nil, nil, func() {
		assert.Equal(t, ioutil.Discard, Out)
	})
}

func TestPrintInfoValue(t *testing.T) {
	UseColor = false
	saved := cachedColumnCount
	cachedColumnCount = 40
	defer func() { cachedColumnCount = saved }()

	var out bytes.Buffer
	CaptureOutput(&out, nil, func() {
		PrintInfoValue("Key", "alpha", "beta", "gamma", "delta", "epsilon")
		PrintInfoValue("Empty")
	})

	assert.Equal(t, "Key             : alpha  beta  gamma\n"+
		strings.Repeat(" ", 18)+"delta  epsilon\n"+
		"Empty           : None\n", out.String())
}

func TestColumnCount(t *testing.T) {
	saved := cachedColumnCount
	cachedColumnCount = -1
	defer func() { cachedColumnCount = saved }()

	t.Setenv("COLUMNS", "123")
	assert.Equal(t, 123, ColumnCount())
}

func TestIsLinuxVT(t *testing.T) {
	t.Setenv("TERM", "linux")
	assert.True(t, IsLinuxVT())
	t.Setenv("TERM", "xterm-256color")
	assert.False(t, IsLinuxVT())
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
