package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/bidishape/internal/codeunits"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'bidishape'
func tracer() tracing.Trace {
	return tracing.Select("bidishape")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.bidishape":        "Info",
		"trace.bidishape.ubidi":  "Error",
		"trace.bidishape.ushape": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	hex := flag.Bool("hex", false, "Read input as U+XXXX code units")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)      // will set the correct level later
	pterm.Info.Println("Welcome to Bidi-Shape CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("bidi > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, hex: *hex}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	hex  bool     // input as U+XXXX code units
	last []uint16 // output of the most recent operation
}

func (intp *Intp) String() string {
	mode := "text"
	if intp.hex {
		mode = "hex"
	}
	if intp.last == nil {
		return fmt.Sprintf("( input=%s )", mode)
	}
	return fmt.Sprintf("( input=%s, last=%d code units )", mode, len(intp.last))
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a parsed command: an op-code and the rest of the input line.
type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	INPUT
	REORDER
	RESHAPE
	LEVELS
	UNSHAPE
	LAST
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"input":   INPUT,
	"reorder": REORDER,
	"reshape": RESHAPE,
	"levels":  LEVELS,
	"unshape": UNSHAPE,
	"last":    LAST,
}

var opNames = []string{
	"quit",
	"help",
	"input",
	"reorder",
	"reshape",
	"levels",
	"unshape",
	"last",
}

// parseCommand splits a line into command word and argument text. The
// argument keeps inner white space, as it may be text to operate on.
func (intp *Intp) parseCommand(line string) (*Op, error) {
	word, arg, _ := strings.Cut(line, " ")
	code, ok := opMap[strings.ToLower(word)]
	if !ok {
		return &Op{code: HELP}, nil
	}
	op := &Op{code: code, arg: strings.TrimSpace(arg)}
	tracer().Debugf("parsed command %s '%s'", opNames[code], op.arg)
	return op, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	HELP:    helpOp,
	INPUT:   inputOp,
	REORDER: reorderOp,
	RESHAPE: reshapeOp,
	LEVELS:  levelsOp,
	UNSHAPE: unshapeOp,
	LAST:    lastOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	if err, stop = f(intp, op); err != nil {
		pterm.Error.Println(err)
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

func inputOp(intp *Intp, op *Op) (error, bool) {
	switch strings.ToLower(op.arg) {
	case "hex":
		intp.hex = true
	case "text":
		intp.hex = false
	default:
		return fmt.Errorf("input mode must be 'text' or 'hex', is '%s'", op.arg), false
	}
	tracer().Infof("input mode is %s", op.arg)
	return nil, false
}

var errNoInput = errors.New("no input text")

// codeUnits converts the argument of an op to UTF-16, according to the
// input mode.
func (intp *Intp) codeUnits(op *Op) ([]uint16, error) {
	if op.arg == "" {
		return nil, errNoInput
	}
	if intp.hex {
		return codeunits.Parse(op.arg)
	}
	return codeunits.FromString(op.arg), nil
}
