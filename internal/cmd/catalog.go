package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chriscorrea/promptdeck/internal/catalog"
	"github.com/chriscorrea/promptdeck/internal/data"
	"github.com/chriscorrea/promptdeck/internal/render"
	"github.com/chriscorrea/promptdeck/internal/template"
)

// createListCommand creates the list subcommand
func createListCommand(state *rootCmdState) *cobra.Command {
	var query catalog.Query
	var useFuzzy, keywords bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List prompts in the catalog",
		Long: `List prompts in the catalog, optionally filtered by category, keyword or
a search term. Search is a case-insensitive substring match over titles,
bodies and keywords; with --fuzzy the search term ranks titles instead.

Examples:
  promptdeck list
  promptdeck list --category "Open House"
  promptdeck list --keyword luxury
  promptdeck list --search "price drop" --fuzzy
  promptdeck list --keywords`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := state.application()
			if err != nil {
				return err
			}
			cfg := a.Config()

			if keywords {
				render.NewStyle(cmd.OutOrStdout(), cfg.Output.Color).Names(a.Catalog().Keywords())
				return nil
			}

			if !cmd.Flags().Changed("category") {
				query.Category = cfg.Catalog.DefaultCategory
			}

			q := query
			if useFuzzy {
				q.Search = ""
			}
			prompts := a.Catalog().Filter(q)
			if useFuzzy {
				prompts = catalog.Rank(query.Search, prompts)
			}

			if len(prompts) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No prompts match")
				return nil
			}

			render.NewStyle(cmd.OutOrStdout(), cfg.Output.Color).PromptTable(prompts)
			return nil
		},
	}

	listCmd.Flags().StringVarP(&query.Category, "category", "c", "", "Only list prompts in this category (\"All\" for every category)")
	listCmd.Flags().StringVarP(&query.Keyword, "keyword", "k", "", "Only list prompts tagged with this keyword")
	listCmd.Flags().StringVarP(&query.Search, "search", "s", "", "Only list prompts containing this text")
	listCmd.Flags().BoolVar(&useFuzzy, "fuzzy", false, "Rank titles by fuzzy match against --search")
	listCmd.Flags().BoolVar(&keywords, "keywords", false, "List every keyword instead of prompts")
	listCmd.MarkFlagsMutuallyExclusive("keywords", "fuzzy")

	return listCmd
}

// createCategoriesCommand creates the categories subcommand
func createCategoriesCommand(state *rootCmdState) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List prompt categories",
		Long:  "List the distinct prompt categories in the order they first appear in the catalog.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := state.application()
			if err != nil {
				return err
			}
			render.NewStyle(cmd.OutOrStdout(), a.Config().Output.Color).Names(a.Catalog().Categories())
			return nil
		},
	}
}

// createShowCommand creates the show subcommand
func createShowCommand(state *rootCmdState) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a prompt template and its placeholders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := state.application()
			if err != nil {
				return err
			}

			p, err := a.Catalog().Get(args[0])
			if err != nil {
				return err
			}

			render.NewStyle(cmd.OutOrStdout(), a.Config().Output.Color).PromptDetail(p, template.Placeholders(p.Body))
			return nil
		},
	}
}

// createFieldsCommand creates the fields subcommand
func createFieldsCommand(state *rootCmdState) *cobra.Command {
	return &cobra.Command{
		Use:   "fields [name]",
		Short: "List form fields and the alias table in effect",
		Long: `List the listing form fields and the alias groups in effect. Any name in
a group fills placeholders written with any other name in the same group.

With a name, show the alias group it belongs to.

Examples:
  promptdeck fields
  promptdeck fields beds`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := state.manager.Config()
			table, err := cfg.AliasTable()
			if err != nil {
				return err
			}

			style := render.NewStyle(cmd.OutOrStdout(), cfg.Output.Color)
			if len(args) == 0 {
				style.FieldTable(table.Groups(), data.FormFields())
				return nil
			}

			canonical, ok := table.Lookup(args[0])
			var group template.AliasGroup
			for _, g := range table.Groups() {
				if g.Canonical == canonical {
					group = g
					break
				}
			}
			style.FieldLookup(args[0], group, ok)
			return nil
		},
	}
}
