package template

import (
	"errors"
	"fmt"
)

var (
	// ErrAliasOverlap is returned when a name belongs to more than one alias group
	ErrAliasOverlap = errors.New("alias table overlap")
	// ErrEmptyAlias is returned when a canonical name or alias normalizes to nothing
	ErrEmptyAlias = errors.New("empty alias name")
)

// AliasGroup ties alternate names to one canonical field name.
// Aliases are searched in declared order.
type AliasGroup struct {
	Canonical string   `mapstructure:"canonical"`
	Aliases   []string `mapstructure:"aliases"`
}

// AliasTable is an immutable, validated set of disjoint alias groups
type AliasTable struct {
	groups []AliasGroup
	owner  map[string]int // name -> index into groups
}

// NewAliasTable normalizes every name and checks that no name appears twice
// across the whole table
func NewAliasTable(groups []AliasGroup) (*AliasTable, error) {
	t := &AliasTable{
		groups: make([]AliasGroup, 0, len(groups)),
		owner:  make(map[string]int),
	}

	for _, g := range groups {
		idx := len(t.groups)
		canonical := Normalize(g.Canonical)
		if canonical == "" {
			return nil, fmt.Errorf("%w: canonical name %q", ErrEmptyAlias, g.Canonical)
		}
		if err := t.claim(canonical, idx, canonical); err != nil {
			return nil, err
		}

		normalized := AliasGroup{Canonical: canonical, Aliases: make([]string, 0, len(g.Aliases))}
		for _, alias := range g.Aliases {
			key := Normalize(alias)
			if key == "" {
				return nil, fmt.Errorf("%w: alias %q of %q", ErrEmptyAlias, alias, canonical)
			}
			if err := t.claim(key, idx, canonical); err != nil {
				return nil, err
			}
			normalized.Aliases = append(normalized.Aliases, key)
		}

		t.groups = append(t.groups, normalized)
	}

	return t, nil
}

// MustAliasTable is like NewAliasTable but panics on an invalid table
func MustAliasTable(groups []AliasGroup) *AliasTable {
	t, err := NewAliasTable(groups)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *AliasTable) claim(name string, idx int, canonical string) error {
	if prev, taken := t.owner[name]; taken {
		first := canonical
		if prev < len(t.groups) {
			first = t.groups[prev].Canonical
		}
		return fmt.Errorf("%w: %q is listed under both %q and %q", ErrAliasOverlap, name, first, canonical)
	}
	t.owner[name] = idx
	return nil
}

// Groups returns a copy of the normalized groups in declared order
func (t *AliasTable) Groups() []AliasGroup {
	if t == nil {
		return nil
	}
	out := make([]AliasGroup, len(t.groups))
	for i, g := range t.groups {
		out[i] = AliasGroup{Canonical: g.Canonical, Aliases: append([]string(nil), g.Aliases...)}
	}
	return out
}

// Len returns the number of groups
func (t *AliasTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.groups)
}

// Lookup returns the canonical name of the group that contains name
func (t *AliasTable) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	idx, ok := t.owner[Normalize(name)]
	if !ok {
		return "", false
	}
	return t.groups[idx].Canonical, true
}

// DefaultAliasGroups returns the built-in groups for the listing form fields
func DefaultAliasGroups() []AliasGroup {
	return []AliasGroup{
		{Canonical: "property type", Aliases: []string{"type of property", "home type", "type"}},
		{Canonical: "address", Aliases: []string{"property address", "street address"}},
		{Canonical: "city", Aliases: []string{"town", "city name"}},
		{Canonical: "neighborhood", Aliases: []string{"neighbourhood", "area", "community"}},
		{Canonical: "number of bedrooms", Aliases: []string{"bedrooms", "beds", "bedroom", "bed", "br"}},
		{Canonical: "number of bathrooms", Aliases: []string{"bathrooms", "baths", "bathroom", "bath", "ba"}},
		{Canonical: "square footage", Aliases: []string{"sqft", "sq ft", "square feet", "size"}},
		{Canonical: "price", Aliases: []string{"listing price", "asking price", "list price"}},
		{Canonical: "hoa fee", Aliases: []string{"hoa", "hoa fees", "hoa dues"}},
		{Canonical: "year built", Aliases: []string{"built", "year"}},
		{Canonical: "lot size", Aliases: []string{"lot", "lot area"}},
		{Canonical: "school district", Aliases: []string{"schools", "district"}},
		{Canonical: "key features", Aliases: []string{"features", "highlights", "amenities"}},
		{Canonical: "neighborhood characteristics", Aliases: []string{"neighborhood features", "area characteristics"}},
		{Canonical: "lifestyle benefits", Aliases: []string{"lifestyle", "benefits"}},
		{Canonical: "word count", Aliases: []string{"words", "length", "number of words"}},
		{Canonical: "date", Aliases: []string{"event date", "open house date"}},
		{Canonical: "start time", Aliases: []string{"start", "from"}},
		{Canonical: "end time", Aliases: []string{"end", "until"}},
		{Canonical: "lead source", Aliases: []string{"source", "lead"}},
	}
}
