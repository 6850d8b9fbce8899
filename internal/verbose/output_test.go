package verbose

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fatih/color"
)

func TestPrintFillSummary(t *testing.T) {
	summary := FillSummary{
		Source:       "3 · Open house announcement",
		Fields:       4,
		Keys:         11,
		AliasGroups:  20,
		Placeholders: 6,
		Missing:      []string{"start time", "end time"},
	}

	t.Run("DefaultOutput", func(t *testing.T) {
		var buf bytes.Buffer
		PrintFillSummary(summary, DefaultOutputConfig(&buf))

		output := buf.String()
		expectedStrings := []string{
			"Template", "Open house announcement",
			"Fields", "4",
			"Expanded Keys", "11",
			"Alias Groups", "20",
			"Placeholders", "6",
			"Resolved", "4",
			"Missing", "start time, end time",
		}

		for _, expected := range expectedStrings {
			if !strings.Contains(output, expected) {
				t.Errorf("Expected output to contain %q, got: %s", expected, output)
			}
		}
	})

	t.Run("WithoutColors", func(t *testing.T) {
		var buf bytes.Buffer
		outputCfg := DefaultOutputConfig(&buf)
		outputCfg.EnableColors = false

		PrintFillSummary(summary, outputCfg)

		output := buf.String()
		if strings.Contains(output, "\x1b[") {
			t.Errorf("Expected output without color codes, got: %s", output)
		}
		if !strings.Contains(output, "Fields:") {
			t.Errorf("Expected plain key labels, got: %s", output)
		}
	})

	t.Run("WithColors", func(t *testing.T) {
		color.NoColor = false
		defer func() { color.NoColor = false }()

		var buf bytes.Buffer
		PrintFillSummary(summary, &OutputConfig{
			Writer:       &buf,
			KeyColor:     color.New(color.FgRed),
			ValueColor:   color.New(color.FgBlue),
			HeaderColor:  color.New(color.FgGreen),
			EnableColors: true,
		})

		if !strings.Contains(buf.String(), "\x1b[") {
			t.Errorf("Expected output to contain color codes, got: %s", buf.String())
		}
	})

	t.Run("NothingMissing", func(t *testing.T) {
		var buf bytes.Buffer
		outputCfg := DefaultOutputConfig(&buf)
		outputCfg.EnableColors = false

		complete := summary
		complete.Missing = nil
		PrintFillSummary(complete, outputCfg)

		output := buf.String()
		if strings.Contains(output, "Missing") {
			t.Errorf("Expected no missing row, got: %s", output)
		}
		if !strings.Contains(output, "Resolved:") || !strings.Contains(output, "6") {
			t.Errorf("Expected every placeholder resolved, got: %s", output)
		}
	})

	t.Run("LongSourceTruncated", func(t *testing.T) {
		var buf bytes.Buffer
		outputCfg := DefaultOutputConfig(&buf)
		outputCfg.EnableColors = false

		long := summary
		long.Source = strings.Repeat("t", 80)
		PrintFillSummary(long, outputCfg)

		if !strings.Contains(buf.String(), strings.Repeat("t", 62)+"...") {
			t.Errorf("Expected truncated source, got: %s", buf.String())
		}
	})

	t.Run("MultiByteSourceTruncated", func(t *testing.T) {
		var buf bytes.Buffer
		outputCfg := DefaultOutputConfig(&buf)
		outputCfg.EnableColors = false

		long := summary
		long.Source = "12 · " + strings.Repeat("é", 40) + strings.Repeat("家", 30)
		PrintFillSummary(long, outputCfg)

		output := buf.String()
		if !utf8.ValidString(output) {
			t.Errorf("Expected valid UTF-8, got: %q", output)
		}
		if !strings.Contains(output, "...") {
			t.Errorf("Expected truncated source, got: %s", output)
		}
		if strings.Contains(output, strings.Repeat("家", 30)) {
			t.Errorf("Expected wide runes to be cut, got: %s", output)
		}
	})

	t.Run("OddNumberOfParameters", func(t *testing.T) {
		var buf bytes.Buffer
		outputCfg := DefaultOutputConfig(&buf)
		outputCfg.EnableColors = false

		PrintFillSummary(summary, outputCfg)

		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.Contains(line, "Resolved") {
				for _, other := range []string{"Fields", "Expanded Keys", "Alias Groups", "Placeholders"} {
					if strings.Contains(line, other) {
						t.Errorf("Last parameter should be on its own line, found: %s", line)
					}
				}
				return
			}
		}
		t.Errorf("Did not find Resolved row in output: %s", buf.String())
	})

	t.Run("WithNilOutputConfig", func(t *testing.T) {
		PrintFillSummary(summary, nil)
	})
}
