package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "reorder":
		pterm.Info.Println("reorder <text>")
		pterm.Println(`
	Runs the bidi algorithm over the text (default direction right-to-left),
	writes it in visual order with mirroring and without bidi controls, and
	shapes Arabic letters into presentation forms.
	`)
	case "reshape":
		pterm.Info.Println("reshape <text>")
		pterm.Println(`
	Shapes Arabic letters without bidi analysis: the text is reversed with
	mirroring, shaped, and reversed again.
	`)
	case "levels":
		pterm.Info.Println("levels <text>")
		pterm.Println(`
	Prints the resolved embedding level of every code unit and, in the
	column 'Shown at', its position in visual order.
	`)
	case "input":
		pterm.Info.Println("input text|hex")
		pterm.Println(`
	Selects how arguments are read: as text, or as code units in U+XXXX or
	0xXXXX notation, separated by blanks or commas.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	reorder <text>    bidi reordering and Arabic shaping
	reshape <text>    Arabic shaping only
	levels <text>     bidi levels and visual map
	unshape <text>    map presentation forms back to letters
	last              print the most recent output
	input text|hex    select input notation
	help [command]    help on a command
	quit              leave
	`)
	}
}
