package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/chriscorrea/promptdeck/internal/catalog"
	"github.com/chriscorrea/promptdeck/internal/clipboard"
	"github.com/chriscorrea/promptdeck/internal/config"
	"github.com/chriscorrea/promptdeck/internal/data"
	"github.com/chriscorrea/promptdeck/internal/fields"
	"github.com/chriscorrea/promptdeck/internal/render"
	"github.com/chriscorrea/promptdeck/internal/template"
	"github.com/chriscorrea/promptdeck/internal/verbose"
)

// App represents the main application and holds its dependencies
type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	catalog   *catalog.Catalog
	expander  *template.Expander
	clipboard clipboard.Writer
}

// Option overrides one of the App's collaborators
type Option func(*App)

// WithCatalog uses c instead of loading the configured dataset
func WithCatalog(c *catalog.Catalog) Option {
	return func(a *App) { a.catalog = c }
}

// WithExpander uses e instead of the configured alias table
func WithExpander(e *template.Expander) Option {
	return func(a *App) { a.expander = e }
}

// WithClipboard uses w instead of the system clipboard
func WithClipboard(w clipboard.Writer) Option {
	return func(a *App) { a.clipboard = w }
}

// NewApp creates a new App; collaborators not given as options are built from cfg
func NewApp(cfg *config.Config, logger *slog.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	a := &App{cfg: cfg, logger: logger}
	for _, opt := range opts {
		opt(a)
	}

	if a.catalog == nil {
		prompts, source, err := data.LoadPrompts(cfg.Catalog.Dataset)
		if err != nil {
			return nil, fmt.Errorf("failed to load prompts: %w", err)
		}
		a.catalog = catalog.New(prompts)
		a.logger.Debug("Prompt dataset loaded", "dataset", source, "prompts", a.catalog.Len())
	}

	if a.expander == nil {
		table, err := cfg.AliasTable()
		if err != nil {
			return nil, err
		}
		a.expander = template.NewExpander(table)
		a.logger.Debug("Alias table built", "groups", table.Len())
	}

	if a.clipboard == nil {
		a.clipboard = clipboard.NewSystem(cfg.Clipboard.Command, cfg.Clipboard.Args...)
	}

	return a, nil
}

// Catalog returns the loaded prompt catalog
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// Config returns the configuration the app was built with
func (a *App) Config() *config.Config {
	return a.cfg
}

// FillPrompt fills the catalog prompt with the given id
func (a *App) FillPrompt(id string, values fields.Values) (template.Result, catalog.Prompt, error) {
	p, err := a.catalog.Get(id)
	if err != nil {
		return template.Result{}, catalog.Prompt{}, err
	}
	a.logger.Debug("Filling prompt", "id", p.ID, "title", p.Title)
	return a.FillText(p.Body, values), p, nil
}

// FillText fills an ad-hoc template
func (a *App) FillText(tpl string, values fields.Values) template.Result {
	a.logger.Debug("Field values", "labels", values.Labels())
	vars := a.expander.Expand(values)
	result := template.Fill(tpl, vars)

	a.logger.Info("Template filled",
		"fields", len(values),
		"keys", len(vars),
		"placeholders", len(template.Placeholders(tpl)),
		"missing", len(result.Missing))

	return result
}

// Pending lists the placeholders of tpl that values do not resolve yet
func (a *App) Pending(tpl string, values fields.Values) []template.Placeholder {
	vars := a.expander.Expand(values)

	var out []template.Placeholder
	for _, p := range template.Placeholders(tpl) {
		if _, ok := template.Resolve(p.Raw, vars); !ok {
			out = append(out, p)
		}
	}
	return out
}

// Summarize collects the statistics printed by fill --verbose
func (a *App) Summarize(source, tpl string, values fields.Values, result template.Result) verbose.FillSummary {
	return verbose.FillSummary{
		Source:       source,
		Fields:       len(values),
		Keys:         len(a.expander.Expand(values)),
		AliasGroups:  a.expander.Table().Len(),
		Placeholders: len(template.Placeholders(tpl)),
		Missing:      result.Missing,
	}
}

// Deliver prints result to w, or copies it to the clipboard when copyText is
// set; notices and the missing list go to errW in that case. With strict
// output an incomplete result returns an ExitCodeError after delivery.
func (a *App) Deliver(w, errW io.Writer, result template.Result, copyText bool) error {
	out := a.cfg.Output

	if !copyText {
		render.NewStyle(w, out.Color).Filled(result, out.ShowMissing)
	} else {
		notice := render.NewStyle(errW, out.Color)
		outcome, err := clipboard.Copy(a.clipboard, result.Text, w)
		a.logger.Info("Clipboard delivery", "outcome", outcome.String())
		if err != nil {
			a.logger.Debug("Clipboard write failed", "error", err)
			fmt.Fprintf(errW, "Clipboard unavailable (%v); select the text between the markers above\n", err)
		} else {
			fmt.Fprintln(errW, "Copied filled prompt to clipboard")
		}
		if out.ShowMissing && !result.Complete() {
			notice.MissingFooter(result.Missing)
		}
	}

	if out.Strict && !result.Complete() {
		return &ExitCodeError{
			Code: ExitMissing,
			Err:  fmt.Errorf("%d placeholder(s) unresolved", len(result.Missing)),
		}
	}
	return nil
}
