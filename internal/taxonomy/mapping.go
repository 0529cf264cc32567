package taxonomy

import "strings"

// Reference is one row of the category reference sheet.
type Reference struct {
	Raw        string
	Translated string
}

// Mapping maps raw category labels to canonical names. It is built once per
// import run and only read afterwards.
type Mapping struct {
	entries map[string]string
}

func NewMapping() *Mapping {
	return &Mapping{entries: make(map[string]string)}
}

// BuildMapping maps each reference label to a base category when its name
// belongs to a keyword family, else to its translated name. usable rejects
// translations that are not fit to become a category name.
func BuildMapping(refs []Reference, usable func(string) bool) *Mapping {
	m := NewMapping()
	for _, ref := range refs {
		raw := strings.TrimSpace(ref.Raw)
		translated := strings.TrimSpace(ref.Translated)
		if raw == "" {
			raw = translated
		}
		if raw == "" {
			continue
		}

		if translated != "" && !usable(translated) {
			translated = ""
		}

		switch {
		case translated != "":
			if k, ok := Family(translated); ok {
				m.Add(raw, CategoryName(k))
			} else {
				m.Add(raw, translated)
			}
		default:
			if k, ok := Family(raw); ok {
				m.Add(raw, CategoryName(k))
			}
		}
	}
	return m
}

func (m *Mapping) Add(raw, canonical string) {
	key := labelKey(raw)
	if key == "" || canonical == "" {
		return
	}
	m.entries[key] = canonical
}

func (m *Mapping) Lookup(raw string) (string, bool) {
	canonical, ok := m.entries[labelKey(raw)]
	return canonical, ok
}

func (m *Mapping) Len() int { return len(m.entries) }

func labelKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
