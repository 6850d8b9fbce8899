package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/chriscorrea/promptdeck/internal/app"
	"github.com/chriscorrea/promptdeck/internal/config"
	"github.com/chriscorrea/promptdeck/internal/logger"
)

// current version (hardcoded for now, could be replaced with build flags)
const version = "0.1.0"

// askFunc matches survey.AskOne so the interactive form can be stubbed
type askFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// rootCmdState holds the config manager, logger and app for one command run
type rootCmdState struct {
	manager *config.Manager
	logger  *slog.Logger
	ask     askFunc

	appOptions []app.Option
	app        *app.App
}

// application builds the App on first use so config commands never load a dataset
func (s *rootCmdState) application() (*app.App, error) {
	if s.app != nil {
		return s.app, nil
	}
	if s.manager == nil {
		return nil, fmt.Errorf("config manager not initialized")
	}

	a, err := app.NewApp(s.manager.Config(), s.logger, s.appOptions...)
	if err != nil {
		return nil, err
	}
	s.app = a
	return a, nil
}

// flagBindings maps flags to their viper keys; flags missing on a command are skipped
var flagBindings = map[string]string{
	"dataset": "catalog.dataset",
	"copy":    "output.copy",
	"strict":  "output.strict",
}

// bindFlags binds every flag in flagBindings that the command defines
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for flagName, viperKey := range flagBindings {
		flag := flags.Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(viperKey, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
		}
	}
	return nil
}

// newRootCommand builds the command tree; opts override App collaborators
func newRootCommand(opts ...app.Option) *cobra.Command {
	state := &rootCmdState{
		ask:        survey.AskOne,
		appOptions: opts,
	}

	rootCmd := &cobra.Command{
		Use:     "promptdeck",
		Version: version,
		Short:   "Fill prompt templates with your listing details",
		Long: `promptdeck keeps a catalog of prompt templates and fills their
placeholders ([...], {{...}}, {...}, <...> and (...)) from the field values
you provide. Field names match loosely: case, punctuation and spacing are
ignored, and aliases like "beds" and "number of bedrooms" stand in for each other.`,
		SilenceUsage: true, // Don't show usage after errors

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// get the debug flag value and create logger
			debug, err := cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("failed to get debug flag: %w", err)
			}
			state.logger = logger.New(debug)

			// instantiate the config manager with logger
			state.manager = config.NewManager().WithLogger(state.logger).WithStderr(cmd.ErrOrStderr())

			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}

			// if config is not set, use default path
			if configPath == "" {
				configPath = config.DefaultPath
			}

			configPath, err = config.ExpandHomePath(configPath)
			if err != nil {
				return fmt.Errorf("failed to expand home path: %w", err)
			}

			// bind flags to their corresponding Viper keys
			v := state.manager.Viper()
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}

			// --no-color inverts output.color, so it can't bind directly
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				v.Set("output.color", false)
			}

			if err := state.manager.Load(configPath); err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default ~/.promptdeck/config.toml)")
	rootCmd.PersistentFlags().String("dataset", "", "Path to a YAML or JSON prompt dataset")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable detailed debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(createListCommand(state))
	rootCmd.AddCommand(createCategoriesCommand(state))
	rootCmd.AddCommand(createShowCommand(state))
	rootCmd.AddCommand(createFillCommand(state))
	rootCmd.AddCommand(createFieldsCommand(state))
	rootCmd.AddCommand(createVersionCommand())
	rootCmd.AddCommand(createConfigCommand(state))

	return rootCmd
}

// Execute runs the root command and exits with the code the error carries.
// This is called by main.main()
func Execute() {
	err := newRootCommand().Execute()
	if err != nil {
		os.Exit(app.ExitCode(err))
	}
}

// createVersionCommand creates the version subcommand
func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the current version of promptdeck.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), "promptdeck version ", version, "\n")
			return nil
		},
	}
}
