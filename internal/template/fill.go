package template

import (
	"regexp"
	"strconv"
	"strings"
)

// Style identifies a placeholder delimiter pair
type Style int

const (
	Brackets Style = iota
	DoubleCurly
	Curly
	Angle
	Parens
)

func (s Style) String() string {
	switch s {
	case Brackets:
		return "[...]"
	case DoubleCurly:
		return "{{...}}"
	case Curly:
		return "{...}"
	case Angle:
		return "<...>"
	case Parens:
		return "(...)"
	default:
		return "unknown"
	}
}

// inner text never spans a newline and never contains its own delimiters,
// which keeps every match to the shortest span
var stylePatterns = []struct {
	style Style
	re    *regexp.Regexp
}{
	{Brackets, regexp.MustCompile(`\[([^\[\]\n]*)\]`)},
	{DoubleCurly, regexp.MustCompile(`\{\{([^{}\n]*)\}\}`)},
	{Curly, regexp.MustCompile(`\{([^{}\n]*)\}`)},
	{Angle, regexp.MustCompile(`<([^<>\n]*)>`)},
	{Parens, regexp.MustCompile(`\(([^()\n]*)\)`)},
}

// anyPlaceholder is every style in pass order; leftmost-first alternation
// gives earlier styles precedence at the same position
var anyPlaceholder = regexp.MustCompile(
	`\[([^\[\]\n]*)\]|\{\{([^{}\n]*)\}\}|\{([^{}\n]*)\}|<([^<>\n]*)>|\(([^()\n]*)\)`,
)

var bracketPattern = stylePatterns[0].re

// matched against the canonical key, so case and whitespace are already folded
var numberOfPattern = regexp.MustCompile(`^number of (.+)$`)

// substituted values are parked behind these runes until their pass is done,
// so a pass never rescans text it inserted
const (
	valueOpen  = '\uE000'
	valueClose = '\uE001'
)

// Result is the outcome of a fill
type Result struct {
	Text    string
	Missing []string
}

// Complete reports whether every placeholder was resolved
func (r Result) Complete() bool {
	return len(r.Missing) == 0
}

// Placeholder is a distinct placeholder found in a template
type Placeholder struct {
	Raw   string
	Key   string
	Style Style
}

// Fill substitutes every resolvable placeholder and rewrites the rest as
// [raw]. Styles are processed in order, brackets first, each pass seeing the
// output of the previous one; a final pass retries bracketed
// "number of X" placeholders against X in singular and plural form.
func Fill(template string, vars Vars) Result {
	if template == "" {
		return Result{Text: "", Missing: []string{}}
	}

	text := template
	for _, p := range stylePatterns {
		text = fillStyle(text, p.re, vars)
	}

	text = bracketPattern.ReplaceAllStringFunc(text, func(match string) string {
		raw := match[1 : len(match)-1]
		if v, ok := numberOfFallback(raw, vars); ok {
			return v
		}
		return match
	})

	return Result{Text: text, Missing: missing(template, vars)}
}

// fillStyle runs one delimiter pass until the text stops changing. An
// unresolved rewrite can expose an enclosing pair of the same style
// ("<<city>>" becomes "<[city]>"), which the next round picks up. Every
// round that changes the text removes at least one delimiter of this style,
// so the loop ends.
func fillStyle(text string, re *regexp.Regexp, vars Vars) string {
	var values []string
	for {
		next := re.ReplaceAllStringFunc(text, func(match string) string {
			raw := re.FindStringSubmatch(match)[1]
			if strings.ContainsRune(raw, valueOpen) {
				// wraps a value inserted by an earlier round: literal text
				return match
			}
			if v, ok := vars.Get(raw); ok {
				values = append(values, v)
				return string(valueOpen) + strconv.Itoa(len(values)-1) + string(valueClose)
			}
			return "[" + raw + "]"
		})
		if next == text {
			break
		}
		text = next
	}

	if len(values) == 0 {
		return text
	}
	return restoreValues(text, values)
}

// restoreValues swaps parked value markers back for their values
func restoreValues(text string, values []string) string {
	var b strings.Builder
	for {
		start := strings.IndexRune(text, valueOpen)
		if start < 0 {
			b.WriteString(text)
			return b.String()
		}
		end := strings.IndexRune(text[start:], valueClose)
		if end < 0 {
			b.WriteString(text)
			return b.String()
		}
		end += start

		b.WriteString(text[:start])
		marker := text[start+len(string(valueOpen)) : end]
		if i, err := strconv.Atoi(marker); err == nil && i >= 0 && i < len(values) {
			b.WriteString(values[i])
		} else {
			b.WriteString(text[start : end+len(string(valueClose))])
		}
		text = text[end+len(string(valueClose)):]
	}
}

// Placeholders lists the distinct placeholders of template in order of
// first appearance
func Placeholders(template string) []Placeholder {
	var out []Placeholder
	seen := make(map[string]bool)
	for _, m := range anyPlaceholder.FindAllStringSubmatchIndex(template, -1) {
		raw, style := placeholderFromMatch(template, m)
		if seen[raw] {
			continue
		}
		seen[raw] = true
		out = append(out, Placeholder{Raw: raw, Key: Normalize(raw), Style: style})
	}
	return out
}

// Resolve looks raw up directly, then through the "number of X" fallback
func Resolve(raw string, vars Vars) (string, bool) {
	if v, ok := vars.Get(raw); ok {
		return v, true
	}
	return numberOfFallback(raw, vars)
}

// missing reports the distinct raw texts of the original template that do
// not resolve. It does not look at the filled text: a placeholder whose
// delimiters were consumed by an earlier pass ("[a (city) b]" fills to
// "[a Miami b]") is still reported under its original raw text.
func missing(template string, vars Vars) []string {
	out := []string{}
	for _, p := range Placeholders(template) {
		if _, ok := Resolve(p.Raw, vars); !ok {
			out = append(out, p.Raw)
		}
	}
	return out
}

func placeholderFromMatch(s string, m []int) (string, Style) {
	// m[0:2] is the whole match, then one pair per style group
	for g := 1; g*2+1 < len(m); g++ {
		if m[g*2] >= 0 {
			return s[m[g*2]:m[g*2+1]], Style(g - 1)
		}
	}
	return "", Brackets
}

func numberOfFallback(raw string, vars Vars) (string, bool) {
	sub := numberOfPattern.FindStringSubmatch(Normalize(raw))
	if sub == nil {
		return "", false
	}

	noun := sub[1]
	singular := strings.TrimSuffix(noun, "s")
	for _, candidate := range []string{noun, singular, singular + "s"} {
		if v, ok := vars.Get(candidate); ok {
			return v, true
		}
	}
	return "", false
}
