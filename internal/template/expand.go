package template

import (
	"sort"
	"strings"

	"github.com/chriscorrea/promptdeck/internal/fields"
)

// Vars maps canonical keys to resolved values
type Vars map[string]string

// Get normalizes name and returns its value; the empty key never resolves
func (v Vars) Get(name string) (string, bool) {
	key := Normalize(name)
	if key == "" {
		return "", false
	}
	val, ok := v[key]
	return val, ok
}

// Expander spreads field values across their alias groups
type Expander struct {
	table *AliasTable
}

// NewExpander creates an expander over table; a nil table means no aliases
func NewExpander(table *AliasTable) *Expander {
	return &Expander{table: table}
}

// Table returns the alias table the expander was built with
func (e *Expander) Table() *AliasTable {
	if e == nil {
		return nil
	}
	return e.table
}

// Expand normalizes every label, drops blank values, then fills empty
// canonical slots from their aliases (first present alias in declared order
// wins) and empty alias slots from their canonical. Values that were set
// explicitly are never overwritten. Labels that normalize to the same key
// resolve to the last one given.
func (e *Expander) Expand(values fields.Values) Vars {
	vars := make(Vars, len(values))
	for _, f := range values {
		key := Normalize(f.Label)
		value := strings.TrimSpace(f.Value)
		if key == "" || value == "" {
			continue
		}
		vars[key] = value
	}

	if e == nil || e.table == nil {
		return vars
	}

	// alias -> canonical
	for _, g := range e.table.groups {
		if _, ok := vars[g.Canonical]; ok {
			continue
		}
		for _, alias := range g.Aliases {
			if v, ok := vars[alias]; ok {
				vars[g.Canonical] = v
				break
			}
		}
	}

	// canonical -> alias
	for _, g := range e.table.groups {
		v, ok := vars[g.Canonical]
		if !ok {
			continue
		}
		for _, alias := range g.Aliases {
			if _, taken := vars[alias]; !taken {
				vars[alias] = v
			}
		}
	}

	return vars
}

// ExpandMap expands an unordered map; duplicate normalized labels are
// resolved in lexicographic label order, so the last label in sort order wins
func (e *Expander) ExpandMap(m map[string]string) Vars {
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	values := make(fields.Values, 0, len(labels))
	for _, label := range labels {
		values = append(values, fields.Field{Label: label, Value: m[label]})
	}
	return e.Expand(values)
}

// Values converts expanded vars back to field values, sorted by key, so an
// expansion can be fed through Expand again
func (v Vars) Values() fields.Values {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make(fields.Values, 0, len(keys))
	for _, k := range keys {
		values = append(values, fields.Field{Label: k, Value: v[k]})
	}
	return values
}
