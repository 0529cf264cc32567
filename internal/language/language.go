// Package language decides whether catalog text is Ukrainian, Russian or too
// short to tell.
package language

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Language is the verdict category.
type Language int

const (
	Ambiguous Language = iota
	Target
	Other
)

func (l Language) String() string {
	switch l {
	case Target:
		return "target"
	case Other:
		return "other"
	default:
		return "ambiguous"
	}
}

// Verdict is a classification plus the evidence behind it.
type Verdict struct {
	Language      Language
	TargetLetters int
	Disqualifiers int
	FunctionWords int
	// Suspicious counts distinct shared words; only filled in strict mode.
	Suspicious int
	Suspect    bool
}

type Options struct {
	MinTargetLetters int
	Strict           bool
	SuspectThreshold int
}

func DefaultOptions() Options {
	return Options{MinTargetLetters: 2, SuspectThreshold: 3}
}

type Classifier struct {
	opts Options
}

func New(opts Options) *Classifier {
	if opts.MinTargetLetters <= 0 {
		opts.MinTargetLetters = 2
	}
	if opts.SuspectThreshold <= 0 {
		opts.SuspectThreshold = 3
	}
	return &Classifier{opts: opts}
}

// Strict returns a copy of c that also flags suspect ambiguous text.
func (c *Classifier) Strict() *Classifier {
	opts := c.opts
	opts.Strict = true
	return &Classifier{opts: opts}
}

func (c *Classifier) Classify(text string) Verdict {
	var v Verdict
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return v
	}

	for _, r := range lower {
		if disqualifying[r] {
			v.Disqualifiers++
		}
	}
	if v.Disqualifiers > 0 {
		v.Language = Other
		return v
	}

	raw := Tokens(text)
	tokens := make([]string, len(raw))
	for i, tok := range raw {
		tokens[i] = strings.ToLower(tok)
		if skipToken(tok) {
			continue
		}
		if functionWords[tokens[i]] {
			v.FunctionWords++
		}
		for _, r := range tokens[i] {
			if targetLetters[r] {
				v.TargetLetters++
			}
		}
	}
	v.FunctionWords += countConstructions(tokens)

	switch {
	case v.FunctionWords > 0:
		v.Language = Other
	case v.TargetLetters >= c.opts.MinTargetLetters:
		v.Language = Target
	default:
		v.Language = Ambiguous
	}

	// The suspicious-word scan counts every token, short ones included.
	if c.opts.Strict && v.Language == Ambiguous {
		seen := map[string]bool{}
		for _, tok := range tokens {
			if suspicious[tok] {
				seen[tok] = true
			}
		}
		v.Suspicious = len(seen)
		v.Suspect = v.Suspicious > c.opts.SuspectThreshold
	}

	return v
}

// HasDisqualifier reports whether s contains a Russian-only letter.
func HasDisqualifier(s string) bool {
	for _, r := range strings.ToLower(s) {
		if disqualifying[r] {
			return true
		}
	}
	return false
}

// Tokens splits s into words. Apostrophes and hyphens inside a word are kept.
func Tokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !IsWordRune(r) && r != '-'
	})
}

// IsWordRune reports whether r can be part of a word.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '’' || r == 'ʼ'
}

// skipToken filters out short words and technical identifiers: anything with
// a digit or a Latin letter, and all-caps abbreviations.
func skipToken(tok string) bool {
	if utf8.RuneCountInString(tok) <= 3 {
		return true
	}
	upper := true
	for _, r := range tok {
		if unicode.IsDigit(r) || r == '_' || (r < unicode.MaxASCII && unicode.IsLetter(r)) {
			return true
		}
		if unicode.IsLower(r) {
			upper = false
		}
	}
	return upper
}

func countConstructions(tokens []string) int {
	n := 0
	for i := range tokens {
		for _, phrase := range constructions {
			if i+len(phrase) > len(tokens) {
				continue
			}
			match := true
			for j, w := range phrase {
				if tokens[i+j] != w {
					match = false
					break
				}
			}
			if match {
				n++
			}
		}
	}
	return n
}
