package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAliasTableNormalizes(t *testing.T) {
	table, err := NewAliasTable([]AliasGroup{
		{Canonical: "Number of Bedrooms", Aliases: []string{"Bedrooms", " BEDS "}},
	})
	require.NoError(t, err)

	groups := table.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, "number of bedrooms", groups[0].Canonical)
	assert.Equal(t, []string{"bedrooms", "beds"}, groups[0].Aliases)
	assert.Equal(t, 1, table.Len())
}

func TestNewAliasTableRejectsOverlap(t *testing.T) {
	tests := []struct {
		name   string
		groups []AliasGroup
	}{
		{
			name: "alias shared by two groups",
			groups: []AliasGroup{
				{Canonical: "number of bedrooms", Aliases: []string{"beds"}},
				{Canonical: "sleeping spots", Aliases: []string{"Beds"}},
			},
		},
		{
			name: "alias equals another canonical",
			groups: []AliasGroup{
				{Canonical: "city", Aliases: []string{"town"}},
				{Canonical: "location", Aliases: []string{"city"}},
			},
		},
		{
			name: "duplicate canonical",
			groups: []AliasGroup{
				{Canonical: "price"},
				{Canonical: "Price", Aliases: []string{"cost"}},
			},
		},
		{
			name: "alias equals own canonical",
			groups: []AliasGroup{
				{Canonical: "price", Aliases: []string{"PRICE"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAliasTable(tt.groups)
			assert.ErrorIs(t, err, ErrAliasOverlap)
		})
	}
}

func TestNewAliasTableOverlapMessageNamesBothGroups(t *testing.T) {
	_, err := NewAliasTable([]AliasGroup{
		{Canonical: "number of bedrooms", Aliases: []string{"beds"}},
		{Canonical: "sleeping spots", Aliases: []string{"beds"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"number of bedrooms"`)
	assert.Contains(t, err.Error(), `"sleeping spots"`)
}

func TestNewAliasTableRejectsEmptyNames(t *testing.T) {
	_, err := NewAliasTable([]AliasGroup{{Canonical: "  "}})
	assert.ErrorIs(t, err, ErrEmptyAlias)

	_, err = NewAliasTable([]AliasGroup{{Canonical: "city", Aliases: []string{"()"}}})
	assert.ErrorIs(t, err, ErrEmptyAlias)
}

func TestDefaultAliasGroupsAreDisjoint(t *testing.T) {
	table, err := NewAliasTable(DefaultAliasGroups())
	require.NoError(t, err)
	assert.Equal(t, len(DefaultAliasGroups()), table.Len())

	// bedrooms must be searched before beds
	for _, g := range table.Groups() {
		if g.Canonical == "number of bedrooms" {
			require.GreaterOrEqual(t, len(g.Aliases), 2)
			assert.Equal(t, "bedrooms", g.Aliases[0])
			assert.Equal(t, "beds", g.Aliases[1])
		}
	}
}

func TestAliasTableLookup(t *testing.T) {
	table := MustAliasTable(DefaultAliasGroups())

	canonical, ok := table.Lookup("Beds")
	assert.True(t, ok)
	assert.Equal(t, "number of bedrooms", canonical)

	canonical, ok = table.Lookup("hoa fee")
	assert.True(t, ok)
	assert.Equal(t, "hoa fee", canonical)

	_, ok = table.Lookup("favorite color")
	assert.False(t, ok)

	var nilTable *AliasTable
	_, ok = nilTable.Lookup("beds")
	assert.False(t, ok)
	assert.Equal(t, 0, nilTable.Len())
	assert.Nil(t, nilTable.Groups())
}

func TestGroupsReturnsCopy(t *testing.T) {
	table := MustAliasTable([]AliasGroup{{Canonical: "city", Aliases: []string{"town"}}})

	groups := table.Groups()
	groups[0].Aliases[0] = "village"

	assert.Equal(t, "town", table.Groups()[0].Aliases[0])
}

func TestMustAliasTablePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustAliasTable([]AliasGroup{{Canonical: "a", Aliases: []string{"a"}}})
	})
}
