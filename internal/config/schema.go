package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ConfigFieldInfo contains metadata about a configuration field
type ConfigFieldInfo struct {
	Type        reflect.Type
	Description string
	Default     interface{}
	Validation  func(interface{}) error
}

// ConfigSchema holds the registry of valid configuration paths and aliases
type ConfigSchema struct {
	ValidPaths map[string]ConfigFieldInfo
	Aliases    map[string]string
}

// validateNotBlank rejects strings that are empty after trimming
func validateNotBlank() func(interface{}) error {
	return func(value interface{}) error {
		if v, ok := value.(string); ok {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("value must not be blank")
			}
			return nil
		}
		return fmt.Errorf("expected string, got %T", value)
	}
}

// DefaultConfigSchema returns the default configuration schema
func DefaultConfigSchema() *ConfigSchema {
	return &ConfigSchema{
		ValidPaths: map[string]ConfigFieldInfo{
			"catalog.dataset": {
				Type:        reflect.TypeOf(""),
				Description: "Path to a YAML/JSON prompt dataset (empty = built-in)",
				Default:     "",
			},
			"catalog.default_category": {
				Type:        reflect.TypeOf(""),
				Description: "Category listed when --category is not given",
				Default:     "All",
				Validation:  validateNotBlank(),
			},
			"output.color": {
				Type:        reflect.TypeOf(bool(false)),
				Description: "Colorize output",
				Default:     true,
			},
			"output.copy": {
				Type:        reflect.TypeOf(bool(false)),
				Description: "Copy filled prompts to the clipboard",
				Default:     false,
			},
			"output.strict": {
				Type:        reflect.TypeOf(bool(false)),
				Description: "Exit with status 3 when placeholders remain",
				Default:     false,
			},
			"output.show_missing": {
				Type:        reflect.TypeOf(bool(false)),
				Description: "Print the list of unresolved placeholders",
				Default:     true,
			},
			"clipboard.command": {
				Type:        reflect.TypeOf(""),
				Description: "Clipboard command override (empty = platform default)",
				Default:     "",
			},
		},
		Aliases: map[string]string{
			"dataset":   "catalog.dataset",
			"category":  "catalog.default_category",
			"color":     "output.color",
			"copy":      "output.copy",
			"strict":    "output.strict",
			"missing":   "output.show_missing",
			"clipboard": "clipboard.command",
		},
	}
}

// ResolveKey resolves an alias to its canonical path or returns the path if already canonical
func (s *ConfigSchema) ResolveKey(key string) (string, error) {
	if canonicalPath, exists := s.Aliases[key]; exists {
		return canonicalPath, nil
	}

	if _, exists := s.ValidPaths[key]; exists {
		return key, nil
	}

	suggestions := s.FindSimilarKeys(key)
	if len(suggestions) > 0 {
		return "", fmt.Errorf("invalid config key %q. Did you mean one of: %s", key, strings.Join(suggestions, ", "))
	}

	return "", fmt.Errorf("invalid config key %q. Use 'promptdeck config list' to see valid keys", key)
}

// ValidateValue validates a value against the field's type and validation rules
func (s *ConfigSchema) ValidateValue(path string, value interface{}) error {
	fieldInfo, exists := s.ValidPaths[path]
	if !exists {
		return fmt.Errorf("unknown config path: %s", path)
	}

	valueType := reflect.TypeOf(value)
	if valueType != fieldInfo.Type {
		return fmt.Errorf("expected %s, got %v", fieldInfo.Type.String(), valueType)
	}

	if fieldInfo.Validation != nil {
		return fieldInfo.Validation(value)
	}

	return nil
}

// GetFieldInfo returns information about a configuration field
func (s *ConfigSchema) GetFieldInfo(path string) (ConfigFieldInfo, error) {
	fieldInfo, exists := s.ValidPaths[path]
	if !exists {
		return ConfigFieldInfo{}, fmt.Errorf("unknown config path: %s", path)
	}
	return fieldInfo, nil
}

// ListCanonicalKeys returns only the canonical configuration paths
func (s *ConfigSchema) ListCanonicalKeys() []string {
	keys := make([]string, 0, len(s.ValidPaths))
	for path := range s.ValidPaths {
		keys = append(keys, path)
	}
	sort.Strings(keys)
	return keys
}

// ListAliases returns only the alias keys
func (s *ConfigSchema) ListAliases() []string {
	aliases := make([]string, 0, len(s.Aliases))
	for alias := range s.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// FindSimilarKeys finds keys similar to the input using simple string matching
func (s *ConfigSchema) FindSimilarKeys(key string) []string {
	var suggestions []string
	lowerKey := strings.ToLower(key)
	if lowerKey == "" {
		return nil
	}

	for _, path := range s.ListCanonicalKeys() {
		parts := strings.Split(path, ".")
		leaf := parts[len(parts)-1]
		if strings.Contains(path, lowerKey) || strings.Contains(lowerKey, leaf) {
			suggestions = append(suggestions, path)
		}
	}

	for _, alias := range s.ListAliases() {
		if strings.Contains(alias, lowerKey) || strings.Contains(lowerKey, alias) {
			suggestions = append(suggestions, alias)
		}
	}

	// limit suggestions to avoid overwhelming output
	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}

	return suggestions
}
