// Package lexicon rewrites catalog text into Ukrainian: dictionary
// translation, letter fallback and orthographic repair.
package lexicon

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"solarcatalog/internal/language"
)

// Rule replaces From with To.
type Rule struct {
	From string
	To   string
}

// Table is an ordered list of literal substitutions. Longer entries are tried
// before shorter ones at every position, so an entry never partially
// overwrites a longer one it is a prefix of.
type Table struct {
	byFirst   map[rune][]Rule
	wholeWord bool
	size      int
}

// NewTable builds a table. Each lowercase entry also gets a capitalized
// variant ("инвертор" adds "Инвертор"). With wholeWord set, a rule only fires
// when From is bounded by non-word runes on both sides.
func NewTable(rules []Rule, wholeWord bool) *Table {
	expanded := make([]Rule, 0, len(rules)*2)
	seen := make(map[string]bool, len(rules)*2)
	add := func(r Rule) {
		if r.From == "" || seen[r.From] {
			return
		}
		seen[r.From] = true
		expanded = append(expanded, r)
	}
	for _, r := range rules {
		add(r)
		if c := (Rule{From: capitalize(r.From), To: capitalize(r.To)}); c.From != r.From {
			add(c)
		}
	}

	sort.SliceStable(expanded, func(i, j int) bool {
		return utf8.RuneCountInString(expanded[i].From) > utf8.RuneCountInString(expanded[j].From)
	})

	t := &Table{byFirst: make(map[rune][]Rule), wholeWord: wholeWord, size: len(expanded)}
	for _, r := range expanded {
		first, _ := utf8.DecodeRuneInString(r.From)
		t.byFirst[first] = append(t.byFirst[first], r)
	}
	return t
}

// Len returns the number of rules including generated variants.
func (t *Table) Len() int { return t.size }

// Apply runs one left-to-right pass over s. Replaced text is not rescanned.
func (t *Table) Apply(s string) string {
	if s == "" || t.size == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	prev := rune(-1)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !t.wholeWord || !language.IsWordRune(prev) {
			if rule, ok := t.match(r, s[i:]); ok {
				sb.WriteString(rule.To)
				i += len(rule.From)
				prev, _ = utf8.DecodeLastRuneInString(rule.From)
				continue
			}
		}
		sb.WriteString(s[i : i+size])
		prev = r
		i += size
	}
	return sb.String()
}

func (t *Table) match(first rune, s string) (Rule, bool) {
	for _, rule := range t.byFirst[first] {
		if !strings.HasPrefix(s, rule.From) {
			continue
		}
		if t.wholeWord && len(s) > len(rule.From) {
			next, _ := utf8.DecodeRuneInString(s[len(rule.From):])
			if language.IsWordRune(next) {
				continue
			}
		}
		return rule, true
	}
	return Rule{}, false
}

// Pattern is a regular-expression substitution. A settling pattern is
// reapplied until it stops matching; its expression must not match its own
// output.
type Pattern struct {
	Re     *regexp.Regexp
	Repl   string
	Settle bool
}

func pattern(expr, repl string) Pattern {
	return Pattern{Re: regexp.MustCompile(expr), Repl: repl}
}

func settling(expr, repl string) Pattern {
	p := pattern(expr, repl)
	p.Settle = true
	return p
}

// Patterns are applied in order, each over the whole string.
type Patterns []Pattern

func (ps Patterns) Apply(s string) string {
	for _, p := range ps {
		next := p.Re.ReplaceAllString(s, p.Repl)
		for p.Settle && next != s {
			s, next = next, p.Re.ReplaceAllString(next, p.Repl)
		}
		s = next
	}
	return s
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
