package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// OutputConfig contains parameters for verbose output formatting
type OutputConfig struct {
	Writer       io.Writer
	KeyColor     *color.Color
	ValueColor   *color.Color
	HeaderColor  *color.Color
	EnableColors bool
}

// DefaultOutputConfig returns a default configuration for verbose output
func DefaultOutputConfig(writer io.Writer) *OutputConfig {
	return &OutputConfig{
		Writer:       writer,
		KeyColor:     color.New(color.FgCyan, color.Bold),
		ValueColor:   color.New(color.FgMagenta),
		HeaderColor:  color.New(color.FgYellow, color.Bold),
		EnableColors: true,
	}
}

// FillSummary describes one fill for the verbose table
type FillSummary struct {
	Source       string // prompt id and title, or "ad-hoc"
	Fields       int    // field values given
	Keys         int    // canonical keys after expansion
	AliasGroups  int
	Placeholders int // distinct placeholders in the template
	Missing      []string
}

// PrintFillSummary displays the fill statistics in a two-pair-per-row table
func PrintFillSummary(summary FillSummary, outputCfg *OutputConfig) {
	if outputCfg == nil {
		outputCfg = DefaultOutputConfig(os.Stderr)
	}

	w := tabwriter.NewWriter(outputCfg.Writer, 0, 0, 3, ' ', 0)

	type param struct {
		Key   string
		Value string
	}

	params := []param{
		{Key: "Fields", Value: fmt.Sprintf("%d", summary.Fields)},
		{Key: "Expanded Keys", Value: fmt.Sprintf("%d", summary.Keys)},
		{Key: "Alias Groups", Value: fmt.Sprintf("%d", summary.AliasGroups)},
		{Key: "Placeholders", Value: fmt.Sprintf("%d", summary.Placeholders)},
		{Key: "Resolved", Value: fmt.Sprintf("%d", summary.Placeholders-len(summary.Missing))},
	}

	source := runewidth.Truncate(summary.Source, 65, "...")
	printRow(w, outputCfg, "Template", source, "", "")

	for i := 0; i < len(params); i += 2 {
		p1 := params[i]
		if (i + 1) < len(params) {
			p2 := params[i+1]
			printRow(w, outputCfg, p1.Key, p1.Value, p2.Key, p2.Value)
		} else {
			printRow(w, outputCfg, p1.Key, p1.Value, "", "")
		}
	}

	if len(summary.Missing) > 0 {
		printRow(w, outputCfg, "Missing", strings.Join(summary.Missing, ", "), "", "")
	}

	fmt.Fprintf(w, "\n")
	w.Flush()
}

// printRow prints a multi-column row for one or two key-value pairs
func printRow(w io.Writer, outputCfg *OutputConfig, key1, value1, key2, value2 string) {
	keySprint := outputCfg.KeyColor.SprintFunc()
	valueSprint := outputCfg.ValueColor.SprintFunc()

	if !outputCfg.EnableColors {
		keySprint = fmt.Sprint
		valueSprint = fmt.Sprint
	}

	if key2 != "" {
		fmt.Fprintf(w, "%s:\t%s\t%s:\t%s\n",
			keySprint(key1),
			valueSprint(value1),
			keySprint(key2),
			valueSprint(value2),
		)
	} else {
		fmt.Fprintf(w, "%s:\t%s\n",
			keySprint(key1),
			valueSprint(value1),
		)
	}
}
