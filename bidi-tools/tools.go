package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/bidishape"
	"github.com/npillmayer/bidishape/ubidi"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("bidi-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for testing bidi reordering and Arabic shaping of UTF-16 text.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("reorder").
		SetDescription("Reorder text from logical to visual order and shape Arabic letters.").
		SetShortDescription("reorder and shape").
		AddArgument("text...", "text to process (variadic argument parts joined by comma by commando)", "").
		AddFlag("codepoints,c", "code points instead of text (comma/space separated, e.g. U+0627,U+0644)", commando.String, "-").
		AddFlag("file,F", "read text from file instead of arguments", commando.String, "-").
		AddFlag("encoding,e", "file encoding: utf8|utf16|utf16le|utf16be", commando.String, "utf16").
		AddFlag("output,o", "output format: text|hex|table", commando.String, "text").
		SetAction(runOperation(bidishape.ReorderReshape))

	commando.
		Register("reshape").
		SetDescription("Shape Arabic letters without bidi reordering.").
		SetShortDescription("shape only").
		AddArgument("text...", "text to process (variadic argument parts joined by comma by commando)", "").
		AddFlag("codepoints,c", "code points instead of text (comma/space separated, e.g. U+0627,U+0644)", commando.String, "-").
		AddFlag("file,F", "read text from file instead of arguments", commando.String, "-").
		AddFlag("encoding,e", "file encoding: utf8|utf16|utf16le|utf16be", commando.String, "utf16").
		AddFlag("output,o", "output format: text|hex|table", commando.String, "text").
		SetAction(runOperation(bidishape.Reshape))

	commando.
		Register("levels").
		SetDescription("Print resolved bidi embedding levels and the visual map of a text.").
		SetShortDescription("bidi levels").
		AddArgument("text...", "text to analyze", "").
		AddFlag("codepoints,c", "code points instead of text (comma/space separated, e.g. U+0627,U+0644)", commando.String, "-").
		AddFlag("direction,d", "paragraph direction: ltr|rtl|auto-ltr|auto-rtl", commando.String, "auto-rtl").
		SetAction(runLevelsCommand)

	commando.Parse(nil)
}

func runOperation(op bidishape.Operation) func(map[string]commando.ArgValue, map[string]commando.FlagValue) {
	return func(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
		src, err := readInput(args["text"], flags)
		if err != nil {
			fatalf("%v", err)
		}
		format, err := parseOutputFormat(flags["output"])
		if err != nil {
			fatalf("%v", err)
		}
		dest := make([]uint16, len(src))
		n, err := op.Apply(src, dest, 0, len(src))
		if err != nil {
			fatalf("%s failed: %v", op, err)
		}
		if mustFlagBool(flags["verbose"], "verbose") {
			fmt.Printf("%s: %d code units in, %d out\n", op, len(src), n)
		}
		printResult(os.Stdout, format, src, dest[:n])
	}
}

func runLevelsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	src, err := parseTextInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	level, err := parseDirection(flags["direction"])
	if err != nil {
		fatalf("%v", err)
	}
	para, err := ubidi.OpenSized(len(src))
	if err != nil {
		fatalf("%v", err)
	}
	defer para.Close()
	para.SetReorderingMode(ubidi.ReorderInverseLikeDirect)
	if err := para.SetPara(src, level); err != nil {
		fatalf("analysis failed: %v", err)
	}
	levels, err := para.Levels()
	if err != nil {
		fatalf("%v", err)
	}
	lmap, err := para.LogicalMap()
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("paragraph level %d, direction %v\n", para.ParaLevel(), para.Direction())
	for i, c := range src {
		fmt.Printf("%4d  U+%04X  level %3d  shown at %4d\n", i, c, levels[i], lmap[i])
	}
}

func parseDirection(flag commando.FlagValue) (ubidi.Level, error) {
	s, err := flag.GetString()
	if err != nil {
		return 0, fmt.Errorf("invalid --direction flag: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr":
		return 0, nil
	case "rtl":
		return 1, nil
	case "auto-ltr":
		return ubidi.DefaultLTR, nil
	case "", "auto-rtl":
		return ubidi.DefaultRTL, nil
	}
	return 0, fmt.Errorf("unsupported direction %q (want ltr|rtl|auto-ltr|auto-rtl)", s)
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "bidi-tools: "+format+"\n", args...)
	os.Exit(1)
}
