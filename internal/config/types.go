package config

import (
	"fmt"

	"github.com/chriscorrea/promptdeck/internal/template"
)

// Config represents the complete configuration structure for promptdeck
type Config struct {
	Catalog      Catalog               `mapstructure:"catalog"`
	Output       Output                `mapstructure:"output"`
	Clipboard    Clipboard             `mapstructure:"clipboard"`
	Aliases      []template.AliasGroup `mapstructure:"aliases"`
	ExtraAliases []template.AliasGroup `mapstructure:"extra_aliases"`
}

// Catalog selects the prompt dataset
type Catalog struct {
	Dataset         string `mapstructure:"dataset"`
	DefaultCategory string `mapstructure:"default_category"`
}

// Output controls how fill results are delivered
type Output struct {
	Color       bool `mapstructure:"color"`
	Copy        bool `mapstructure:"copy"`
	Strict      bool `mapstructure:"strict"`
	ShowMissing bool `mapstructure:"show_missing"`
}

// Clipboard overrides the platform clipboard command
type Clipboard struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// AliasGroups returns the alias groups in effect: the configured table (or
// the built-in one when none is configured) followed by any extra groups
func (c *Config) AliasGroups() []template.AliasGroup {
	base := c.Aliases
	if len(base) == 0 {
		base = template.DefaultAliasGroups()
	}
	groups := make([]template.AliasGroup, 0, len(base)+len(c.ExtraAliases))
	groups = append(groups, base...)
	return append(groups, c.ExtraAliases...)
}

// AliasTable builds and validates the alias table in effect
func (c *Config) AliasTable() (*template.AliasTable, error) {
	table, err := template.NewAliasTable(c.AliasGroups())
	if err != nil {
		return nil, fmt.Errorf("invalid alias configuration: %w", err)
	}
	return table, nil
}
