package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chriscorrea/promptdeck/internal/app"
	"github.com/chriscorrea/promptdeck/internal/fields"
	promptIO "github.com/chriscorrea/promptdeck/internal/io"
	"github.com/chriscorrea/promptdeck/internal/template"
	"github.com/chriscorrea/promptdeck/internal/verbose"
)

// fillOptions holds the fill command's local flags
type fillOptions struct {
	assignments []string
	valuesFile  string
	interactive bool
	text        string
	files       []string
	stdin       bool
	verbose     bool
}

// adHoc reports whether the template comes from flags rather than the catalog
func (o *fillOptions) adHoc() bool {
	return o.text != "" || len(o.files) > 0 || o.stdin
}

// createFillCommand creates the fill subcommand
func createFillCommand(state *rootCmdState) *cobra.Command {
	opts := &fillOptions{}

	fillCmd := &cobra.Command{
		Use:   "fill [id]",
		Short: "Fill a prompt's placeholders with field values",
		Long: `Fill a catalog prompt, or ad-hoc template text, with field values.

Values are merged in order: --values file, then --set flags, then the
interactive form (-i). When a label is given more than once the last one wins.
Placeholders that no value resolves are left in the output as [name].

Examples:
  promptdeck fill 1 --set "Bedrooms=3" --set "City=Austin"
  promptdeck fill 4 --values listing.yaml --copy
  promptdeck fill 2 -i
  promptdeck fill --text "A {bedrooms} bed home in [city]" --set beds=3
  cat template.txt | promptdeck fill --stdin --values listing.yaml --strict`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.adHoc() {
				if len(args) > 0 {
					return fmt.Errorf("cannot combine a prompt id with --text, --file or --stdin")
				}
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf("expected a prompt id, or one of --text, --file, --stdin")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := state.application()
			if err != nil {
				return err
			}

			values, err := collectValues(opts)
			if err != nil {
				return err
			}

			tpl, source, err := resolveTemplate(cmd, a, opts, args)
			if err != nil {
				return err
			}

			if opts.interactive {
				values, err = runForm(cmd, state.ask, a.Pending(tpl, values), values)
				if err != nil {
					return err
				}
			}

			var result template.Result
			if opts.adHoc() {
				result = a.FillText(tpl, values)
			} else if result, _, err = a.FillPrompt(args[0], values); err != nil {
				return err
			}

			if opts.verbose {
				outputCfg := verbose.DefaultOutputConfig(cmd.ErrOrStderr())
				outputCfg.EnableColors = a.Config().Output.Color
				verbose.PrintFillSummary(a.Summarize(source, tpl, values, result), outputCfg)
			}
			return a.Deliver(cmd.OutOrStdout(), cmd.ErrOrStderr(), result, a.Config().Output.Copy)
		},
	}

	fillCmd.Flags().StringArrayVar(&opts.assignments, "set", nil, "Set a field value as label=value (repeatable)")
	fillCmd.Flags().StringVar(&opts.valuesFile, "values", "", "Read field values from a YAML or JSON mapping")
	fillCmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Ask for each unresolved placeholder")
	fillCmd.Flags().StringVar(&opts.text, "text", "", "Fill this template text instead of a catalog prompt")
	fillCmd.Flags().StringSliceVar(&opts.files, "file", nil, "Read template text from file(s)")
	fillCmd.Flags().BoolVar(&opts.stdin, "stdin", false, "Read template text from stdin")
	fillCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print fill statistics to stderr")
	fillCmd.Flags().Bool("copy", false, "Copy the filled prompt to the clipboard")
	fillCmd.Flags().Bool("strict", false, "Exit with status 3 when placeholders remain")

	return fillCmd
}

// collectValues merges the values file and --set flags in that order
func collectValues(opts *fillOptions) (fields.Values, error) {
	var values fields.Values

	if opts.valuesFile != "" {
		fromFile, err := fields.ReadFile(opts.valuesFile)
		if err != nil {
			return nil, err
		}
		values = values.Merge(fromFile)
	}

	fromFlags, err := fields.ParseAssignments(opts.assignments)
	if err != nil {
		return nil, err
	}
	return values.Merge(fromFlags), nil
}

// resolveTemplate returns the catalog prompt body or the ad-hoc template
// text, plus a label naming where it came from
func resolveTemplate(cmd *cobra.Command, a *app.App, opts *fillOptions, args []string) (string, string, error) {
	if !opts.adHoc() {
		p, err := a.Catalog().Get(args[0])
		if err != nil {
			return "", "", err
		}
		return p.Body, p.ID + " · " + p.Title, nil
	}

	var stdin *os.File
	if opts.stdin {
		f, ok := cmd.InOrStdin().(*os.File)
		if !ok {
			return "", "", fmt.Errorf("--stdin requires a file or pipe on standard input")
		}
		stdin = f
	}

	var textArgs []string
	if opts.text != "" {
		textArgs = []string{opts.text}
	}

	tpl, err := promptIO.ReadTemplate(stdin, textArgs, opts.files)
	if err != nil {
		return "", "", fmt.Errorf("failed to read template: %w", err)
	}
	return tpl, "ad-hoc", nil
}

// runForm asks for each pending placeholder, then for any custom fields
func runForm(cmd *cobra.Command, ask askFunc, pending []template.Placeholder, values fields.Values) (fields.Values, error) {
	cyan := color.New(color.FgCyan).SprintFunc()
	title := cases.Title(language.English)

	if len(pending) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Every placeholder already has a value")
	}

	for _, p := range pending {
		var answer string
		prompt := &survey.Input{
			Message: fmt.Sprintf("%s %s:", cyan("✎"), title.String(p.Raw)),
			Help:    fmt.Sprintf("fills %s placeholders named %q; leave blank to skip", p.Style, p.Raw),
		}
		if err := ask(prompt, &answer); err != nil {
			return nil, fmt.Errorf("survey error: %w", err)
		}
		if strings.TrimSpace(answer) != "" {
			values.Set(p.Raw, answer)
		}
	}

	for {
		var addCustom bool
		confirm := &survey.Confirm{
			Message: fmt.Sprintf("%s Add a custom field?", cyan("➕")),
			Default: false,
		}
		if err := ask(confirm, &addCustom); err != nil {
			return nil, fmt.Errorf("survey error: %w", err)
		}
		if !addCustom {
			return values, nil
		}

		var label, value string
		if err := ask(&survey.Input{Message: "Field label:"}, &label, survey.WithValidator(survey.Required)); err != nil {
			return nil, fmt.Errorf("survey error: %w", err)
		}
		if err := ask(&survey.Input{Message: "Field value:"}, &value); err != nil {
			return nil, fmt.Errorf("survey error: %w", err)
		}
		values.Set(label, value)
	}
}
