package fields

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ReadFile reads a YAML or JSON mapping of label: value pairs
func ReadFile(path string) (Values, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open values file: %w", err)
	}
	defer f.Close()

	values, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file %q: %w", path, err)
	}
	return values, nil
}

// Decode reads a single mapping document, keeping document order.
// Scalars of any type are taken as their literal text; an empty document
// yields no values.
func Decode(r io.Reader) (Values, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Values{}, nil
		}
		return nil, err
	}

	if len(doc.Content) == 0 {
		return Values{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping of field labels to values, got %s", kindName(root.Kind))
	}

	values := make(Values, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: value for %q must be a scalar", val.Line, key.Value)
		}
		// null values count as absent
		if val.ShortTag() == "!!null" {
			continue
		}
		values = append(values, Field{Label: key.Value, Value: val.Value})
	}

	return values, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
