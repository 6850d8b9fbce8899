// Package render prints prompts, fill results and field tables for the terminal
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chriscorrea/promptdeck/internal/catalog"
	"github.com/chriscorrea/promptdeck/internal/data"
	"github.com/chriscorrea/promptdeck/internal/template"
)

// column widths for table output
const (
	titleWidth    = 48
	categoryWidth = 20
	aliasesWidth  = 60
)

// Style contains color configuration for terminal output
type Style struct {
	Writer       io.Writer
	KeyColor     *color.Color
	ValueColor   *color.Color
	HeaderColor  *color.Color
	GroupColor   *color.Color
	MissingColor *color.Color
	EnableColors bool
}

// NewStyle creates the default style writing to w
func NewStyle(w io.Writer, enableColors bool) *Style {
	return &Style{
		Writer:       w,
		KeyColor:     color.New(color.FgCyan, color.Bold),
		ValueColor:   color.New(color.FgMagenta),
		HeaderColor:  color.New(color.FgYellow, color.Bold, color.Underline),
		GroupColor:   color.New(color.FgGreen, color.Bold),
		MissingColor: color.New(color.FgRed, color.Bold),
		EnableColors: enableColors,
	}
}

// sprint returns c's SprintFunc, or plain fmt.Sprint when colors are off
func (s *Style) sprint(c *color.Color) func(a ...interface{}) string {
	if !s.EnableColors || c == nil {
		return fmt.Sprint
	}
	// force output even when the writer isn't a terminal
	c.EnableColor()
	return c.SprintFunc()
}

// Filled prints the filled text with unresolved placeholders highlighted,
// followed by a Missing footer when showMissing is set. Only entries still
// present as "[raw]" in the text are highlighted; the footer lists them all.
func (s *Style) Filled(result template.Result, showMissing bool) {
	text := result.Text
	if s.EnableColors && len(result.Missing) > 0 {
		missingSprint := s.sprint(s.MissingColor)
		pairs := make([]string, 0, len(result.Missing)*2)
		for _, raw := range result.Missing {
			marker := "[" + raw + "]"
			pairs = append(pairs, marker, missingSprint(marker))
		}
		text = strings.NewReplacer(pairs...).Replace(text)
	}

	fmt.Fprintln(s.Writer, text)

	if showMissing && !result.Complete() {
		s.MissingFooter(result.Missing)
	}
}

// MissingFooter prints the list of unresolved placeholders
func (s *Style) MissingFooter(missing []string) {
	headerSprint := s.sprint(s.MissingColor)
	fmt.Fprintf(s.Writer, "\n%s %d unresolved\n", headerSprint("Missing:"), len(missing))
	for _, raw := range missing {
		fmt.Fprintf(s.Writer, "  - %s\n", raw)
	}
}

// PromptTable prints one row per prompt with its placeholder count
func (s *Style) PromptTable(prompts []catalog.Prompt) {
	w := tabwriter.NewWriter(s.Writer, 0, 0, 3, ' ', 0)
	headerSprint := s.sprint(s.HeaderColor)
	keySprint := s.sprint(s.KeyColor)
	valueSprint := s.sprint(s.ValueColor)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerSprint("ID"),
		headerSprint("Category"),
		headerSprint("Title"),
		headerSprint("Fields"))

	for _, p := range prompts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			keySprint(p.ID),
			valueSprint(runewidth.Truncate(p.Category, categoryWidth, "...")),
			runewidth.Truncate(p.Title, titleWidth, "..."),
			len(template.Placeholders(p.Body)))
	}

	w.Flush()
}

// PromptDetail prints a prompt's metadata, body and placeholders
func (s *Style) PromptDetail(p catalog.Prompt, placeholders []template.Placeholder) {
	keySprint := s.sprint(s.KeyColor)
	groupSprint := s.sprint(s.GroupColor)

	w := tabwriter.NewWriter(s.Writer, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", keySprint("ID:"), p.ID)
	fmt.Fprintf(w, "%s\t%s\n", keySprint("Title:"), p.Title)
	fmt.Fprintf(w, "%s\t%s\n", keySprint("Category:"), p.Category)
	if len(p.Keywords) > 0 {
		fmt.Fprintf(w, "%s\t%s\n", keySprint("Keywords:"), strings.Join(p.Keywords, ", "))
	}
	w.Flush()

	fmt.Fprintf(s.Writer, "\n%s\n%s\n", groupSprint("▶ Template"), p.Body)

	if len(placeholders) == 0 {
		return
	}

	fmt.Fprintf(s.Writer, "\n%s\n", groupSprint("▶ Placeholders"))
	w = tabwriter.NewWriter(s.Writer, 0, 0, 3, ' ', 0)
	for _, ph := range placeholders {
		fmt.Fprintf(w, "%s\t%s\t%s\n", keySprint(ph.Raw), ph.Style, ph.Key)
	}
	w.Flush()
}

// FieldTable prints the form labels followed by the alias groups in effect
func (s *Style) FieldTable(groups []template.AliasGroup, form []data.FormField) {
	groupSprint := s.sprint(s.GroupColor)
	keySprint := s.sprint(s.KeyColor)
	valueSprint := s.sprint(s.ValueColor)
	title := cases.Title(language.English)

	w := tabwriter.NewWriter(s.Writer, 0, 0, 3, ' ', 0)

	fmt.Fprintf(w, "%s\n", groupSprint("▶ Form fields"))
	for _, f := range form {
		fmt.Fprintf(w, "%s\t%s\n", keySprint(f.Label), f.Help)
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "%s\n", groupSprint("▶ Aliases"))
	for _, g := range groups {
		aliases := runewidth.Truncate(strings.Join(g.Aliases, ", "), aliasesWidth, "...")
		fmt.Fprintf(w, "%s\t%s\n", keySprint(title.String(g.Canonical)), valueSprint(aliases))
	}

	w.Flush()
}

// Names prints one category or keyword per line
func (s *Style) Names(names []string) {
	keySprint := s.sprint(s.KeyColor)
	for _, n := range names {
		fmt.Fprintln(s.Writer, keySprint(n))
	}
}

// FieldLookup prints the alias group that name belongs to. With ok unset
// the name only fills placeholders spelled the same way.
func (s *Style) FieldLookup(name string, group template.AliasGroup, ok bool) {
	keySprint := s.sprint(s.KeyColor)
	valueSprint := s.sprint(s.ValueColor)

	if !ok {
		fmt.Fprintf(s.Writer, "%s is not in any alias group; it fills placeholders named %q only\n",
			keySprint(name), template.Normalize(name))
		return
	}

	fmt.Fprintf(s.Writer, "%s → %s\n", keySprint(name), keySprint(group.Canonical))
	fmt.Fprintf(s.Writer, "Also filled by: %s\n", valueSprint(strings.Join(group.Aliases, ", ")))
}
