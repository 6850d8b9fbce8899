package cmd

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chriscorrea/promptdeck/internal/config"
)

// ConfigDisplayInfo holds information for displaying config item
type ConfigDisplayInfo struct {
	Key         string
	Value       string
	Description string
	Target      string // the canonical path an alias points to
}

// OutputStyle contains color configuration for the list output
type OutputStyle struct {
	Writer       io.Writer
	KeyColor     *color.Color
	ValueColor   *color.Color
	GroupColor   *color.Color
	EnableColors bool
}

// NewOutputStyle creates new output style configuration
func NewOutputStyle(writer io.Writer, enableColors bool) *OutputStyle {
	return &OutputStyle{
		Writer:       writer,
		KeyColor:     color.New(color.FgCyan, color.Bold),
		ValueColor:   color.New(color.FgMagenta),
		GroupColor:   color.New(color.FgGreen, color.Bold),
		EnableColors: enableColors,
	}
}

// createConfigCommand creates the config command and its list/set subcommands
func createConfigCommand(state *rootCmdState) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage promptdeck configuration",
		Long: `Manage promptdeck configuration settings. This command provides subcommands
to view and modify configuration values.

Examples:
  promptdeck config                       # Show current configuration status
  promptdeck config list                  # Show every setting
  promptdeck config set strict=true       # Set a configuration value
  promptdeck config set catalog.dataset=~/prompts.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := state.manager.Config()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Configuration loaded successfully")
			fmt.Fprintf(out, "Alias groups: %d\n", len(cfg.AliasGroups()))

			if used := state.manager.Viper().ConfigFileUsed(); used != "" {
				fmt.Fprintf(out, "Config file: %s\n", used)
			}
			return nil
		},
	}

	configCmd.AddCommand(createConfigListCommand(state))
	configCmd.AddCommand(createConfigSetCommand(state))

	return configCmd
}

// createConfigListCommand creates the config list subcommand
func createConfigListCommand(state *rootCmdState) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List configuration values",
		Long: `List configuration values.

By default, shows the short aliases accepted by 'config set'. Use --canonical
to see the full dotted configuration paths instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := config.DefaultConfigSchema()
			showCanonical, _ := cmd.Flags().GetBool("canonical")
			style := NewOutputStyle(cmd.OutOrStdout(), state.manager.Config().Output.Color)

			if showCanonical {
				displayCanonicalView(state, schema, style)
			} else {
				displayAliasesView(state, schema, style)
			}
			return nil
		},
	}

	listCmd.Flags().Bool("canonical", false, "Show canonical configuration paths")
	return listCmd
}

// displayAliasesView shows aliases grouped by the section they point into
func displayAliasesView(state *rootCmdState, schema *config.ConfigSchema, style *OutputStyle) {
	w := tabwriter.NewWriter(style.Writer, 0, 0, 3, ' ', 0)

	groups := make(map[string][]ConfigDisplayInfo)
	for _, alias := range schema.ListAliases() {
		canonicalPath := schema.Aliases[alias]
		fieldInfo, err := schema.GetFieldInfo(canonicalPath)
		if err != nil {
			continue
		}

		section := sectionName(canonicalPath)
		groups[section] = append(groups[section], ConfigDisplayInfo{
			Key:         alias,
			Value:       getConfigValue(state, canonicalPath),
			Description: fieldInfo.Description,
			Target:      canonicalPath,
		})
	}

	for _, section := range sectionOrder {
		items := groups[section]
		if len(items) == 0 {
			continue
		}

		printSectionHeader(w, style, section)
		for _, item := range items {
			printConfigRow(w, style, item.Key, item.Value, item.Description)
		}
		fmt.Fprintf(w, "\n")
	}

	w.Flush()
}

// displayCanonicalView shows every canonical path with its value
func displayCanonicalView(state *rootCmdState, schema *config.ConfigSchema, style *OutputStyle) {
	w := tabwriter.NewWriter(style.Writer, 0, 0, 3, ' ', 0)

	groups := make(map[string][]ConfigDisplayInfo)
	for _, key := range schema.ListCanonicalKeys() {
		section := sectionName(key)
		groups[section] = append(groups[section], ConfigDisplayInfo{
			Key:   key,
			Value: getConfigValue(state, key),
		})
	}

	groupSprint := style.sprint(style.GroupColor)
	for _, section := range sectionOrder {
		items := groups[section]
		if len(items) == 0 {
			continue
		}

		fmt.Fprintf(w, "%s\n", groupSprint(fmt.Sprintf("▶ %s", section)))
		for _, item := range items {
			fmt.Fprintf(w, "%s\t%s\n", style.sprint(style.KeyColor)(item.Key), style.sprint(style.ValueColor)(item.Value))
		}
		fmt.Fprintf(w, "\n")
	}

	w.Flush()
}

var sectionOrder = []string{"Catalog", "Output", "Clipboard"}

// sectionName maps a dotted path to its display section
func sectionName(path string) string {
	switch {
	case strings.HasPrefix(path, "catalog."):
		return "Catalog"
	case strings.HasPrefix(path, "clipboard."):
		return "Clipboard"
	default:
		return "Output"
	}
}

func (s *OutputStyle) sprint(c *color.Color) func(a ...interface{}) string {
	if !s.EnableColors {
		return fmt.Sprint
	}
	return c.SprintFunc()
}

// printSectionHeader prints a section header for grouped config items
func printSectionHeader(w io.Writer, style *OutputStyle, groupName string) {
	keySprint := style.sprint(style.KeyColor)
	valueSprint := style.sprint(style.ValueColor)

	fmt.Fprintf(w, "%s\n", style.sprint(style.GroupColor)(fmt.Sprintf("▶ %s", groupName)))
	fmt.Fprintf(w, "%s\t%s\t%s\n", keySprint("Key"), valueSprint("Value"), "Description")
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		keySprint(strings.Repeat("-", 12)),
		valueSprint(strings.Repeat("-", 15)),
		strings.Repeat("-", 40))
}

// printConfigRow prints a single configuration row
func printConfigRow(w io.Writer, style *OutputStyle, key, value, description string) {
	if len(description) > 50 {
		description = description[:47] + "..."
	}
	if len(value) > 25 {
		value = value[:22] + "..."
	}

	fmt.Fprintf(w, "%s\t%s\t%s\n",
		style.sprint(style.KeyColor)(key),
		style.sprint(style.ValueColor)(value),
		description)
}

// getConfigValue retrieves the current value for a configuration key using Viper
func getConfigValue(state *rootCmdState, canonicalPath string) string {
	value := state.manager.Viper().Get(canonicalPath)

	if value == nil {
		return "<not set>"
	}
	if str, ok := value.(string); ok && str == "" {
		return "<not set>"
	}

	result := fmt.Sprintf("%v", value)
	if len(result) > 40 {
		return result[:37] + "..."
	}
	return result
}

// createConfigSetCommand creates the config set subcommand
func createConfigSetCommand(state *rootCmdState) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key>=<value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the config file.

The key is a dotted path (e.g., output.strict) or one of its short aliases
(see 'promptdeck config list').

Examples:
  promptdeck config set strict=true
  promptdeck config set catalog.default_category="Open House"
  promptdeck config set clipboard=xsel`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			argument := args[0]
			parts := strings.SplitN(argument, "=", 2)
			if len(parts) != 2 {
				return fmt.Errorf("invalid format: expected key=value, got %q", argument)
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			if key == "" {
				return fmt.Errorf("key cannot be empty")
			}

			schema := config.DefaultConfigSchema()
			canonicalKey, err := schema.ResolveKey(key)
			if err != nil {
				return err
			}

			fieldInfo, err := schema.GetFieldInfo(canonicalKey)
			if err != nil {
				return err
			}

			convertedValue, err := convertValueToType(value, fieldInfo.Type)
			if err != nil {
				return fmt.Errorf("failed to convert value %q for key %q: %w", value, canonicalKey, err)
			}

			if err := schema.ValidateValue(canonicalKey, convertedValue); err != nil {
				return fmt.Errorf("validation failed for key %q: %w", canonicalKey, err)
			}

			state.manager.Viper().Set(canonicalKey, convertedValue)
			if err := state.manager.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			if key != canonicalKey {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration updated: %s (%s) = %v\n", key, canonicalKey, convertedValue)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration updated: %s = %v\n", canonicalKey, convertedValue)
			}
			return nil
		},
	}
}

// convertValueToType converts a string value to the specified type
func convertValueToType(value string, targetType reflect.Type) (interface{}, error) {
	// unquote the value if it appears to be quoted
	if len(value) >= 2 && (value[0] == '"' || value[0] == '\'' || value[0] == '`') {
		if unquoted, err := strconv.Unquote(value); err == nil {
			value = unquoted
		}
	}

	switch targetType.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Bool:
		return strconv.ParseBool(strings.ToLower(value))
	default:
		return nil, fmt.Errorf("unsupported type: %s", targetType.String())
	}
}
