/*
Package argparser classifies command line arguments.

Options are declared once in a Registry. Every option has one or more
spellings and one of four kinds:

	Argumentless   -h, --help
	Argumented     -l LINE, -lLINE, --line LINE, --line=LINE
	Optargumented  -L, -L LINE, --Line=LINE (the next token only if it
	               does not look like an option)
	Variadic       --lines A B C (every following token)

Example

	-a argumentless
	-b argumented
	--def argumented
	--tail variadic

	my-program -a file1 -ab x --def=1 ++ -file2 --tail t1 t2

	Result:

	-a      [<nil> <nil>]
	-b      [x]
	--def   [1]
	--tail  [file1 -file2 t1 t2]

	files   []

Short options may be bundled, "--" makes every following token positional
and "++" does so for the next token only. Values are kept as raw strings,
one entry per invocation.
*/
package argparser
