package taxonomy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCategory(t *testing.T) {
	mapping := NewMapping()
	mapping.Add("Инверторы Deye", "Сонячні панелі")
	mapping.Add("Кабельна продукція", "Кабельна продукція")
	r := NewResolver(mapping)

	tests := []struct {
		name     string
		product  string
		label    string
		wantKey  Key
		wantName string
		wantRule Rule
		wantOK   bool
	}{
		{name: "inverter by name beats mapping", product: "Гібридний інвертор Deye 8кВт", label: "Инверторы Deye", wantKey: Inverters, wantName: "Інвертори", wantRule: RuleInverter, wantOK: true},
		{name: "kit beats inverter", product: "Комплект гібридний інвертор та акумулятор", wantKey: Kits, wantName: "Комплекти резервного живлення", wantRule: RuleKit, wantOK: true},
		{name: "panel", product: "Панель Longi 615W", wantKey: Panels, wantName: "Сонячні панелі", wantRule: RulePanel, wantOK: true},
		{name: "battery", product: "Акумулятор LiFePO4 48 В", wantKey: Batteries, wantName: "Акумуляторні батареї", wantRule: RuleBattery, wantOK: true},
		{name: "latin battery", product: "Pylontech US5000 battery", wantKey: Batteries, wantName: "Акумуляторні батареї", wantRule: RuleBattery, wantOK: true},
		{name: "service excluded", product: "Монтаж обладнання на даху", wantRule: RuleService},
		{name: "service even with mapping", product: "Послуги з налаштування", label: "Кабельна продукція", wantRule: RuleService},
		{name: "mapping fallback", product: "Кабель PV1-F 6 мм", label: " кабельна  продукція ", wantName: "Кабельна продукція", wantRule: RuleMapping, wantOK: true},
		{name: "unresolvable", product: "Кабель PV1-F 6 мм", label: "Щось інше", wantRule: RuleUnmatched},
		{name: "no label", product: "Кабель PV1-F 6 мм", wantRule: RuleUnmatched},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := r.ResolveCategory(tt.product, tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRule, res.Rule)
			if tt.wantOK {
				assert.Equal(t, tt.wantKey, res.Key)
				assert.Equal(t, tt.wantName, res.Name)
			}
		})
	}
}

func TestResolveCategoryKitPriority(t *testing.T) {
	r := NewResolver(nil)
	names := []string{
		"Інвертор у комплекті",
		"Набір: гібридний інвертор Deye",
		"Solar kit inverter 5kW",
	}
	for _, name := range names {
		res, ok := r.ResolveCategory(name, "")
		require.True(t, ok, name)
		assert.Equal(t, Kits, res.Key, name)
	}
}

func TestBuildMapping(t *testing.T) {
	usable := func(s string) bool { return s != "Плохое название" }
	m := BuildMapping([]Reference{
		{Raw: "Инверторы", Translated: "Інвертори"},
		{Raw: "Кабели", Translated: "Кабелі та з'єднувачі"},
		{Raw: "Аккумуляторы", Translated: ""},
		{Raw: "Прочее", Translated: "Плохое название"},
		{Raw: "", Translated: ""},
	}, usable)

	got, ok := m.Lookup("инверторы")
	require.True(t, ok)
	assert.Equal(t, "Інвертори", got)

	got, ok = m.Lookup("Кабели")
	require.True(t, ok)
	assert.Equal(t, "Кабелі та з'єднувачі", got)

	got, ok = m.Lookup("Аккумуляторы")
	require.True(t, ok)
	assert.Equal(t, "Акумуляторні батареї", got)

	_, ok = m.Lookup("Прочее")
	assert.False(t, ok)
	assert.Equal(t, 3, m.Len())
}

func TestResolveBrand(t *testing.T) {
	tests := []struct {
		name  string
		label string
		title string
		want  string
	}{
		{name: "label wins", label: "Victron Energy", title: "Інвертор Deye", want: "Victron Energy"},
		{name: "known label recased", label: "DEYE", title: "", want: "Deye"},
		{name: "label whitespace", label: "  Sun   Power ", want: "Sun Power"},
		{name: "brand from name", title: "Гібридний інвертор Deye 8кВт", want: "Deye"},
		{name: "two word brand", title: "Панель JA Solar 550W", want: "JA Solar"},
		{name: "generic", title: "Кабель 6 мм", want: GenericBrand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveBrand(tt.label, tt.title))
		})
	}
}

func TestDescriptions(t *testing.T) {
	assert.Equal(t, "Категорія Інвертори", CategoryDescription("Інвертори"))
	assert.Equal(t, "Бренд Deye з Китай", BrandDescription("Deye", " Китай "))
	assert.Equal(t, "Бренд Deye", BrandDescription("Deye", ""))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Інвертори", "invertory"},
		{"Сонячні панелі", "soniachni-paneli"},
		{"Комплекти резервного живлення", "komplekty-rezervnoho-zhyvlennia"},
		{"Deye", "deye"},
		{"JA Solar", "ja-solar"},
		{"Загальний", "zahalnyi"},
		{"Café № 1", "cafe-1"},
		{"!!!", "item"},
		{"", "item"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestUniqueSlug(t *testing.T) {
	taken := map[string]bool{"invertory": true, "invertory-1": true}
	exists := func(_ context.Context, s string) (bool, error) { return taken[s], nil }

	got, err := UniqueSlug(context.Background(), "invertory", exists)
	require.NoError(t, err)
	assert.Equal(t, "invertory-2", got)

	got, err = UniqueSlug(context.Background(), "paneli", exists)
	require.NoError(t, err)
	assert.Equal(t, "paneli", got)

	boom := errors.New("boom")
	_, err = UniqueSlug(context.Background(), "x", func(context.Context, string) (bool, error) { return false, boom })
	assert.ErrorIs(t, err, boom)
}
