package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/bidishape/internal/codeunits"
	"github.com/thatisuday/commando"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// readInput collects the text to operate on, from a file if --file is set,
// else from code points or the text arguments.
func readInput(textArg commando.ArgValue, flags map[string]commando.FlagValue) ([]uint16, error) {
	path, err := flags["file"].GetString()
	if err != nil {
		return nil, fmt.Errorf("invalid --file flag: %w", err)
	}
	if path = strings.TrimSpace(path); path == "-" || path == "" {
		return parseTextInput(textArg, flags["codepoints"])
	}
	enc, err := flags["encoding"].GetString()
	if err != nil {
		return nil, fmt.Errorf("invalid --encoding flag: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeText(f, enc)
}

func parseTextInput(textArg commando.ArgValue, cpFlag commando.FlagValue) ([]uint16, error) {
	cp, err := cpFlag.GetString()
	if err != nil {
		return nil, fmt.Errorf("invalid --codepoints flag: %w", err)
	}
	cp = strings.TrimSpace(cp)
	if cp == "-" {
		cp = ""
	}
	if cp != "" {
		return codeunits.Parse(cp)
	}
	if textArg.Value == "" {
		return nil, fmt.Errorf("input text is empty")
	}
	return codeunits.FromString(textArg.Value), nil
}

// decodeText reads r in the named encoding and returns its UTF-16 code
// units. "utf16" honours a byte order mark and defaults to little endian.
func decodeText(r io.Reader, enc string) ([]uint16, error) {
	var e encoding.Encoding
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "utf8", "utf-8":
		e = unicode.UTF8BOM
	case "utf16", "utf-16":
		e = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "utf16le", "utf-16le":
		e = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf16be", "utf-16be":
		e = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	default:
		return nil, fmt.Errorf("unsupported encoding %q", enc)
	}
	b, err := io.ReadAll(e.NewDecoder().Reader(r))
	if err != nil {
		return nil, fmt.Errorf("decoding %s input: %w", enc, err)
	}
	return codeunits.FromString(string(b)), nil
}
