package main

import (
	"fmt"

	"github.com/npillmayer/bidishape/internal/codeunits"
	"github.com/npillmayer/bidishape/ubidi"
	"github.com/pterm/pterm"
)

// printCodeUnits prints input and output side by side, one code unit per row.
func printCodeUnits(in, out []uint16) {
	data := [][]string{
		{"Pos", "Input", "Output"},
	}
	for i := range max(len(in), len(out)) {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			formatUnit(in, i),
			formatUnit(out, i),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if len(in) > 0 {
		pterm.Printf("input:  %s\n", codeunits.ToString(in))
	}
	pterm.Printf("output: %s\n", codeunits.ToString(out))
}

func formatUnit(u []uint16, i int) string {
	if i >= len(u) {
		return "-"
	}
	return fmt.Sprintf("U+%04X %q", u[i], rune(u[i]))
}

func printLevels(text []uint16, levels []ubidi.Level, lmap []int) {
	pterm.DefaultTable.WithHasHeader().WithData(levelTable(text, levels, lmap)).Render()
}

// levelTable has one row per logical position, with the visual position
// the code unit is shown at.
func levelTable(text []uint16, levels []ubidi.Level, lmap []int) [][]string {
	data := [][]string{
		{"Pos", "Code unit", "Level", "Shown at"},
	}
	for i, c := range text {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("U+%04X", c),
			fmt.Sprintf("%d", levels[i]),
			fmt.Sprintf("%d", lmap[i]),
		})
	}
	return data
}
