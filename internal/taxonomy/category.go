// Package taxonomy files products under canonical categories and brands.
package taxonomy

import "strings"

// Key identifies a base category independently of its display name.
type Key string

const (
	Kits      Key = "kits"
	Panels    Key = "panels"
	Batteries Key = "batteries"
	Inverters Key = "inverters"
)

// Rule tells which step of the resolution order produced a result.
type Rule string

const (
	RuleKit       Rule = "kit"
	RulePanel     Rule = "panel"
	RuleBattery   Rule = "battery"
	RuleInverter  Rule = "inverter"
	RuleService   Rule = "service"
	RuleMapping   Rule = "mapping"
	RuleUnmatched Rule = "unmatched"
)

type family struct {
	key      Key
	name     string
	rule     Rule
	keywords []string
}

// families are checked in order. Kits come first because a kit name also
// mentions the parts it bundles; inverters come last among products because
// "hybrid" appears in kit names too.
var families = []family{
	{Kits, "Комплекти резервного живлення", RuleKit, []string{"комплект", "набір", "набор", "kit"}},
	{Panels, "Сонячні панелі", RulePanel, []string{"панел", "сонячн", "солнечн", "монокристал", "полікристал", "поликристал", "solar panel"}},
	{Batteries, "Акумуляторні батареї", RuleBattery, []string{"акумулятор", "аккумулятор", "батаре", "літієв", "литиев", "lifepo4", "li-ion", "battery"}},
	{Inverters, "Інвертори", RuleInverter, []string{"інвертор", "инвертор", "гібридн", "гибридн", "inverter"}},
}

// services are not catalog products.
var services = []string{"монтаж", "послуг", "услуг", "сервіс", "сервис"}

// BaseCategories lists the canonical categories in resolution order.
func BaseCategories() map[Key]string {
	m := make(map[Key]string, len(families))
	for _, f := range families {
		m[f.key] = f.name
	}
	return m
}

// CategoryName returns the display name of a base category.
func CategoryName(k Key) string {
	for _, f := range families {
		if f.key == k {
			return f.name
		}
	}
	return ""
}

// Resolution is a resolved canonical category.
type Resolution struct {
	Name string
	Key  Key
	Rule Rule
}

type Resolver struct {
	mapping *Mapping
}

func NewResolver(mapping *Mapping) *Resolver {
	if mapping == nil {
		mapping = NewMapping()
	}
	return &Resolver{mapping: mapping}
}

// ResolveCategory infers the category from the product name and falls back
// to the raw label mapping. Name inference always wins over the mapping. The
// second return is false for service lines and unknown labels.
func (r *Resolver) ResolveCategory(name, rawLabel string) (Resolution, bool) {
	if res, ok := inferFromName(name); ok {
		return res, res.Rule != RuleService
	}

	if canonical, ok := r.mapping.Lookup(rawLabel); ok {
		return Resolution{Name: canonical, Key: keyFor(canonical), Rule: RuleMapping}, true
	}
	return Resolution{Rule: RuleUnmatched}, false
}

func inferFromName(name string) (Resolution, bool) {
	lower := strings.ToLower(name)
	for _, f := range families {
		if containsAny(lower, f.keywords) {
			return Resolution{Name: f.name, Key: f.key, Rule: f.rule}, true
		}
	}
	if containsAny(lower, services) {
		return Resolution{Rule: RuleService}, true
	}
	return Resolution{}, false
}

// Family returns the base category a free-form label belongs to, if any.
func Family(label string) (Key, bool) {
	res, ok := inferFromName(label)
	if !ok || res.Rule == RuleService {
		return "", false
	}
	return res.Key, true
}

func keyFor(name string) Key {
	for _, f := range families {
		if f.name == name {
			return f.key
		}
	}
	return ""
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// CategoryDescription is written for categories created on demand.
func CategoryDescription(name string) string {
	return "Категорія " + name
}
