package text

import (
	"os"

	"github.com/leonelquinteros/gotext"
)

const domain = "argparser"

func Init(localePath string) {
	if envLocalePath := os.Getenv("LOCALE_PATH"); envLocalePath != "" {
		localePath = envLocalePath
	}

	gotext.Configure(localePath, os.Getenv("LANG"), domain)
}

func T(s string) string { return gotext.Get(s) }

func Tf(s string, args ...interface{}) string { return gotext.Get(s, args...) }

// Tn picks the singular or plural form for n.
func Tn(singular, plural string, n int, args ...interface{}) string {
	return gotext.GetN(singular, plural, n, args...)
}
