package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/bidishape/internal/codeunits"
	"github.com/thatisuday/commando"
)

type outputFormat int

const (
	formatText outputFormat = iota
	formatHex
	formatTable
)

func parseOutputFormat(flag commando.FlagValue) (outputFormat, error) {
	s, err := flag.GetString()
	if err != nil {
		return formatText, fmt.Errorf("invalid --output flag: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return formatText, nil
	case "hex":
		return formatHex, nil
	case "table":
		return formatTable, nil
	}
	return formatText, fmt.Errorf("unsupported output format %q (want text|hex|table)", s)
}

func printResult(w io.Writer, format outputFormat, in, out []uint16) {
	switch format {
	case formatHex:
		fmt.Fprintln(w, codeunits.Format(out))
	case formatTable:
		for i := range max(len(in), len(out)) {
			fmt.Fprintf(w, "%4d  %-8s  %-8s\n", i, unitAt(in, i), unitAt(out, i))
		}
	default:
		fmt.Fprintln(w, codeunits.ToString(out))
	}
}

func unitAt(u []uint16, i int) string {
	if i >= len(u) {
		return "-"
	}
	return fmt.Sprintf("U+%04X", u[i])
}
