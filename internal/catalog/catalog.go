package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// AllCategories matches every category in a Query
const AllCategories = "All"

// Catalog is an ordered, read-only set of prompts
type Catalog struct {
	prompts []Prompt
	byID    map[string]int
}

// New builds a catalog; a later prompt with a duplicate id shadows the earlier one in Get
func New(prompts []Prompt) *Catalog {
	c := &Catalog{
		prompts: prompts,
		byID:    make(map[string]int, len(prompts)),
	}
	for i, p := range prompts {
		c.byID[p.ID] = i
	}
	return c
}

// Len returns the number of prompts
func (c *Catalog) Len() int {
	return len(c.prompts)
}

// Get returns the prompt with the given id
func (c *Catalog) Get(id string) (Prompt, error) {
	idx, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Prompt{}, fmt.Errorf("%w: %q", ErrPromptNotFound, id)
	}
	return c.prompts[idx], nil
}

// Categories returns distinct categories in order of first appearance
func (c *Catalog) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range c.prompts {
		key := strings.ToLower(p.Category)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p.Category)
	}
	return out
}

// Keywords returns every distinct keyword, lowercased and sorted
func (c *Catalog) Keywords() []string {
	seen := make(map[string]bool)
	for _, p := range c.prompts {
		for _, k := range p.Keywords {
			seen[strings.ToLower(k)] = true
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Query narrows the catalog; empty fields match everything
type Query struct {
	Category string
	Keyword  string
	Search   string
}

// Matches reports whether p satisfies every non-empty criterion
func (q Query) Matches(p Prompt) bool {
	category := strings.TrimSpace(q.Category)
	if category != "" && !strings.EqualFold(category, AllCategories) && !strings.EqualFold(category, p.Category) {
		return false
	}

	if keyword := strings.TrimSpace(q.Keyword); keyword != "" {
		found := false
		for _, k := range p.Keywords {
			if strings.EqualFold(k, keyword) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		haystack := strings.ToLower(p.Title + "\n" + p.Body + "\n" + strings.Join(p.Keywords, "\n"))
		if !strings.Contains(haystack, search) {
			return false
		}
	}

	return true
}

// Filter returns the prompts matching q in dataset order
func (c *Catalog) Filter(q Query) []Prompt {
	out := make([]Prompt, 0, len(c.prompts))
	for _, p := range c.prompts {
		if q.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// titles adapts prompts to fuzzy.Source
type titles []Prompt

func (t titles) String(i int) string { return t[i].Title }
func (t titles) Len() int            { return len(t) }

// Rank orders prompts by fuzzy match of pattern against their titles,
// dropping non-matches; an empty pattern returns prompts unchanged
func Rank(pattern string, prompts []Prompt) []Prompt {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return prompts
	}

	matches := fuzzy.FindFrom(pattern, titles(prompts))
	out := make([]Prompt, 0, len(matches))
	for _, m := range matches {
		out = append(out, prompts[m.Index])
	}
	return out
}
