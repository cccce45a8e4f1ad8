package text

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

var (
	Out    io.Writer = os.Stdout
	ErrOut io.Writer = os.Stderr
	In     io.Reader = os.Stdin
)

// CaptureOutput takes two io.Writer and runs a function so that the output gets written to those.
// If you supply nil for the writers the output will be discarded.
//
// Be very careful with concurrent use!!!
// No writing function may run concurrently.
func CaptureOutput(out, errOut io.Writer, f func()) {
	if out == nil {
		out = ioutil.Discard
	}
	if errOut == nil {
		errOut = ioutil.Discard
	}

	safeOut := Out
	safeErrOut := ErrOut

	Out = out
	ErrOut = errOut

	defer func() {
		Out = safeOut
		ErrOut = safeErrOut
	}()

	f()
}

func Printf(format string, a ...interface{}) {
	fmt.Fprintf(Out, format, a...)
}

// Fprogln writes a line prefixed with the program name, the way command
// line tools report to their users.
func Fprogln(w io.Writer, program string, a ...interface{}) {
	fmt.Fprintln(w, append([]interface{}{Bold(program + ":")}, a...)...)
}

// Fwarnln is Fprogln with a warning marker.
func Fwarnln(w io.Writer, program string, a ...interface{}) {
	Fprogln(w, program, append([]interface{}{Bold(yellow(T("warning:")))}, a...)...)
}

func Warnln(program string, a ...interface{}) {
	Fwarnln(ErrOut, program, a...)
}

// PrintInfoValue prints key and values as an aligned, column wrapped block.
func PrintInfoValue(key string, values ...string) {
	// 16 (text) + 1 (:) + 1 ( )
	const (
		keyLength  = 18
		delimCount = 2
	)

	str := Bold(fmt.Sprintf("%-16s: ", key))
	if len(values) == 0 || (len(values) == 1 && values[0] == "") {
		fmt.Fprintf(Out, "%s%s\n", str, gotext.Get("None"))
		return
	}

	maxCols := ColumnCount()
	cols := keyLength + len(values[0])
	str += values[0]
	for _, value := range values[1:] {
		if maxCols > keyLength && cols+len(value)+delimCount >= maxCols {
			cols = keyLength
			str += "\n" + strings.Repeat(" ", keyLength)
		} else if cols != keyLength {
			str += strings.Repeat(" ", delimCount)
			cols += delimCount
		}
		str += value
		cols += len(value)
	}
	fmt.Fprintln(Out, str)
}
