package lexicon

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"solarcatalog/internal/language"
)

// maxPasses bounds the fixpoint loop; real input settles in two or three.
const maxPasses = 8

var sentenceBreak = regexp.MustCompile(`[.!?]+(?:\s+|$)`)

type Options struct {
	// MinSentenceLength is the shortest sentence, in runes, FilterSentences keeps.
	MinSentenceLength int
}

func DefaultOptions() Options {
	return Options{MinSentenceLength: 12}
}

// Result is normalized text with the verdicts before and after.
type Result struct {
	Text    string
	Source  language.Verdict
	Verdict language.Verdict
}

// Translated reports whether the input was rewritten from Russian.
func (r Result) Translated() bool {
	return r.Source.Language == language.Other
}

type Normalizer struct {
	classifier   *language.Classifier
	translation  *Table
	fallback     *Table
	brands       *Table
	misspellings *Table
	minSentence  int
}

func New(classifier *language.Classifier, opts Options) *Normalizer {
	if opts.MinSentenceLength <= 0 {
		opts.MinSentenceLength = DefaultOptions().MinSentenceLength
	}
	return &Normalizer{
		classifier:   classifier,
		translation:  NewTable(Translation, true),
		fallback:     NewTable(Fallback, false),
		brands:       NewTable(Brands, true),
		misspellings: NewTable(Misspellings, true),
		minSentence:  opts.MinSentenceLength,
	}
}

// Normalize repeats the rewrite pass until the text stops changing, so
// normalizing its own output is a no-op.
func (n *Normalizer) Normalize(text string) Result {
	res := Result{Source: n.classifier.Classify(text)}

	cur := text
	for i := 0; i < maxPasses; i++ {
		next := n.pass(cur)
		if next == cur {
			break
		}
		cur = next
	}

	res.Text = cur
	res.Verdict = n.classifier.Classify(cur)
	return res
}

func (n *Normalizer) pass(s string) string {
	if n.classifier.Classify(s).Language == language.Other {
		s = n.translation.Apply(s)
		s = n.fallback.Apply(s)
	}
	return n.Orthography(s)
}

// Orthography fixes units, brand casing, corrupted endings and punctuation.
// It runs on every text regardless of language.
func (n *Normalizer) Orthography(s string) string {
	s = Units.Apply(s)
	s = n.brands.Apply(s)
	s = n.misspellings.Apply(s)
	s = Morphology.Apply(s)
	s = Punctuation.Apply(s)
	return strings.TrimSpace(s)
}

// FilterSentences keeps the sentences of a description that read as
// Ukrainian and are long enough to carry meaning. The result ends with a
// period, or is empty when nothing survives.
func (n *Normalizer) FilterSentences(text string) string {
	var kept []string
	for _, sentence := range sentenceBreak.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if utf8.RuneCountInString(sentence) < n.minSentence {
			continue
		}
		if n.classifier.Classify(sentence).Language == language.Other {
			continue
		}
		kept = append(kept, sentence)
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ". ") + "."
}

// Description normalizes a description and drops sentences that are still Russian.
func (n *Normalizer) Description(text string) string {
	return n.FilterSentences(n.Normalize(text).Text)
}
