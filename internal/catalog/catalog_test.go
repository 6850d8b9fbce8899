package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePrompts() []Prompt {
	return Normalize([]Record{
		{ID: "listing", Title: "Luxury Listing Description", Category: "Listings", Keywords: []string{"MLS", "luxury"}, Body: "Write a listing for a [property type] in [city]."},
		{ID: "open-house", Title: "Open House Invite", Category: "Events", Keywords: []string{"open house"}, Body: "Join us on {{date}} from <start time>."},
		{ID: "followup", Title: "Lead Follow-up Email", Category: "Email", Keywords: []string{"lead", "nurture"}, Text: "Thanks for reaching out via [lead source]."},
		{Title: "Neighborhood Spotlight", Category: "listings", Prompt: "Describe [neighborhood]."},
	})
}

func TestNormalizeDefaults(t *testing.T) {
	prompts := Normalize([]Record{
		{},
		{ID: " a ", Title: " Title ", Category: " Email ", Keywords: []string{" x ", "", "y"}, Body: "  ", Text: "from text", Prompt: "from prompt"},
		{Prompt: "only prompt"},
	})

	require.Len(t, prompts, 3)

	assert.Equal(t, Prompt{ID: "1", Title: DefaultTitle, Category: DefaultCategory, Keywords: []string{}, Body: ""}, prompts[0])
	assert.Equal(t, Prompt{ID: "a", Title: "Title", Category: "Email", Keywords: []string{"x", "y"}, Body: "from text"}, prompts[1])
	assert.Equal(t, "3", prompts[2].ID)
	assert.Equal(t, "only prompt", prompts[2].Body)
}

func TestDecodeSequence(t *testing.T) {
	input := `
- id: 7
  title: Price Reduction
  category: Social
  keywords: [price, update]
  body: "New price: [price]!"
- title: No id
  text: "Hello [city]"
`
	prompts, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, prompts, 2)

	assert.Equal(t, "7", prompts[0].ID)
	assert.Equal(t, []string{"price", "update"}, prompts[0].Keywords)
	assert.Equal(t, "2", prompts[1].ID)
	assert.Equal(t, "Hello [city]", prompts[1].Body)
	assert.Equal(t, DefaultCategory, prompts[1].Category)
}

func TestDecodeWrappedJSON(t *testing.T) {
	input := `{"prompts": [{"id": "a", "title": "A", "body": "[city]"}]}`
	prompts, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, prompts, 1)
	assert.Equal(t, "[city]", prompts[0].Body)
}

func TestDecodeEmptyAndInvalid(t *testing.T) {
	prompts, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, prompts)

	_, err = Decode(strings.NewReader("- [unclosed"))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("just a string"))
	assert.Error(t, err)
}

func TestCatalogGet(t *testing.T) {
	c := New(samplePrompts())

	p, err := c.Get("open-house")
	require.NoError(t, err)
	assert.Equal(t, "Open House Invite", p.Title)

	p, err = c.Get("4")
	require.NoError(t, err)
	assert.Equal(t, "Neighborhood Spotlight", p.Title)

	_, err = c.Get("nope")
	assert.ErrorIs(t, err, ErrPromptNotFound)
	assert.Equal(t, 4, c.Len())
}

func TestCatalogCategoriesAndKeywords(t *testing.T) {
	c := New(samplePrompts())

	// "listings" folds into "Listings"
	assert.Equal(t, []string{"Listings", "Events", "Email"}, c.Categories())
	assert.Equal(t, []string{"lead", "luxury", "mls", "nurture", "open house"}, c.Keywords())
}

func TestFilter(t *testing.T) {
	c := New(samplePrompts())

	ids := func(prompts []Prompt) []string {
		out := make([]string, len(prompts))
		for i, p := range prompts {
			out[i] = p.ID
		}
		return out
	}

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{name: "empty query", query: Query{}, want: []string{"listing", "open-house", "followup", "4"}},
		{name: "all categories", query: Query{Category: "all"}, want: []string{"listing", "open-house", "followup", "4"}},
		{name: "category is case-insensitive", query: Query{Category: "LISTINGS"}, want: []string{"listing", "4"}},
		{name: "keyword", query: Query{Keyword: "mls"}, want: []string{"listing"}},
		{name: "search title", query: Query{Search: "invite"}, want: []string{"open-house"}},
		{name: "search body", query: Query{Search: "[lead source]"}, want: []string{"followup"}},
		{name: "search keywords", query: Query{Search: "nurture"}, want: []string{"followup"}},
		{name: "criteria combine", query: Query{Category: "Listings", Search: "neighborhood"}, want: []string{"4"}},
		{name: "no match", query: Query{Category: "Events", Keyword: "lead"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.Filter(tt.query)))
		})
	}
}

func TestRank(t *testing.T) {
	prompts := samplePrompts()

	assert.Equal(t, prompts, Rank("", prompts))

	ranked := Rank("open", prompts)
	require.NotEmpty(t, ranked)
	assert.Equal(t, "open-house", ranked[0].ID)

	assert.Empty(t, Rank("zzzz", prompts))
}
