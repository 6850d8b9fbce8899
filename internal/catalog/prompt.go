// Package catalog normalizes prompt records and answers filter/search queries
package catalog

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTitle is used for records without a title
	DefaultTitle = "Untitled prompt"
	// DefaultCategory is used for records without a category
	DefaultCategory = "Other"
)

// ErrPromptNotFound is returned when no prompt has the requested id
var ErrPromptNotFound = errors.New("prompt not found")

// Record is a prompt as it appears in a dataset file; the template may be
// stored under body, text or prompt
type Record struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
	Body     string   `yaml:"body"`
	Text     string   `yaml:"text"`
	Prompt   string   `yaml:"prompt"`
}

// Prompt is the canonical record handed to the rest of the program
type Prompt struct {
	ID       string
	Title    string
	Category string
	Keywords []string
	Body     string
}

// Normalize applies record defaults; ids default to the 1-based position
func Normalize(records []Record) []Prompt {
	prompts := make([]Prompt, 0, len(records))
	for i, r := range records {
		p := Prompt{
			ID:       strings.TrimSpace(r.ID),
			Title:    strings.TrimSpace(r.Title),
			Category: strings.TrimSpace(r.Category),
			Keywords: make([]string, 0, len(r.Keywords)),
			Body:     firstNonBlank(r.Body, r.Text, r.Prompt),
		}
		if p.ID == "" {
			p.ID = strconv.Itoa(i + 1)
		}
		if p.Title == "" {
			p.Title = DefaultTitle
		}
		if p.Category == "" {
			p.Category = DefaultCategory
		}
		for _, k := range r.Keywords {
			if k = strings.TrimSpace(k); k != "" {
				p.Keywords = append(p.Keywords, k)
			}
		}
		prompts = append(prompts, p)
	}
	return prompts
}

// Decode reads a YAML or JSON dataset: either a sequence of records or a
// mapping with a "prompts" sequence
func Decode(r io.Reader) ([]Prompt, error) {
	records, err := DecodeRecords(r)
	if err != nil {
		return nil, err
	}
	return Normalize(records), nil
}

// DecodeRecords is Decode without applying defaults
func DecodeRecords(r io.Reader) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("failed to parse prompt dataset: %w", err)
	}

	if len(doc.Content) == 0 {
		return []Record{}, nil
	}

	node := doc.Content[0]
	if node.Kind == yaml.MappingNode {
		var wrapped struct {
			Prompts []Record `yaml:"prompts"`
		}
		if err := node.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("failed to decode prompts: %w", err)
		}
		return wrapped.Prompts, nil
	}

	var records []Record
	if err := node.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode prompts: %w", err)
	}
	return records, nil
}

func firstNonBlank(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}
