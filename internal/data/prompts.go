package data

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/chriscorrea/promptdeck/internal/catalog"
)

// see https://pkg.go.dev/embed for more on embedding files

//go:embed prompts/*.yaml
var promptsFS embed.FS

// DatasetFile is the name looked for in the working dir or next to the executable
const DatasetFile = "prompts.yaml"

// EmbeddedSource names the built-in dataset in LoadPrompts results
const EmbeddedSource = "built-in"

// LoadPrompts loads the prompt dataset and reports where it came from.
// An explicit path is read from disk. Otherwise a dataset file found by
// DiscoverDataset overrides the embedded one.
func LoadPrompts(path string) ([]catalog.Prompt, string, error) {
	if path != "" {
		prompts, err := loadPromptsFile(path)
		return prompts, path, err
	}

	if found, ok := DiscoverDataset(); ok {
		prompts, err := loadPromptsFile(found)
		return prompts, found, err
	}

	prompts, err := loadEmbedded(promptsFS)
	if err != nil {
		return nil, "", err
	}
	return prompts, EmbeddedSource, nil
}

// DiscoverDataset returns the first dataset file present in the working
// directory or next to the executable
func DiscoverDataset() (string, bool) {
	for _, p := range discoveryPaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

func discoveryPaths() []string {
	paths := []string{
		DatasetFile,                           // current working directory
		filepath.Join("prompts", DatasetFile), // current working dir/prompts/
	}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		paths = append(paths,
			filepath.Join(execDir, DatasetFile),            // same dir as executable
			filepath.Join(execDir, "prompts", DatasetFile), // same dir as executable/prompts/
		)
	}
	return paths
}

func loadPromptsFile(path string) ([]catalog.Prompt, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt dataset: %w", err)
	}

	prompts, err := catalog.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to load prompts from %s: %w", path, err)
	}
	return prompts, nil
}

// loadEmbedded concatenates every embedded dataset file in name order.
// Positional ids count across files.
func loadEmbedded(fsys fs.FS) ([]catalog.Prompt, error) {
	names, err := fs.Glob(fsys, "prompts/*.yaml")
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no embedded prompt datasets")
	}
	sort.Strings(names)

	var records []catalog.Record
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded %s: %w", name, err)
		}
		fileRecords, err := catalog.DecodeRecords(bytes.NewReader(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse embedded %s: %w", name, err)
		}
		records = append(records, fileRecords...)
	}

	return catalog.Normalize(records), nil
}
