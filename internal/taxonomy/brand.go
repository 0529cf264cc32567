package taxonomy

import (
	"strings"
	"unicode"
)

// GenericBrand is used when neither the label nor the name names a brand.
const GenericBrand = "Загальний"

// knownBrands maps lowercase spellings to display names.
var knownBrands = map[string]string{
	"deye":      "Deye",
	"must":      "Must",
	"longi":     "Longi",
	"growatt":   "Growatt",
	"victron":   "Victron",
	"pylontech": "Pylontech",
	"huawei":    "Huawei",
	"jinko":     "Jinko",
	"trina":     "Trina",
	"risen":     "Risen",
	"sofar":     "Sofar",
	"solis":     "Solis",
	"fronius":   "Fronius",
	"goodwe":    "GoodWe",
	"ecoflow":   "EcoFlow",
	"felicity":  "Felicity",
	"dyness":    "Dyness",
	"axioma":    "Axioma",
	"ja solar":  "JA Solar",
	"canadian":  "Canadian Solar",
}

// ResolveBrand picks the brand from the raw label, then from a known brand
// mentioned in the product name, then falls back to GenericBrand.
func ResolveBrand(rawLabel, name string) string {
	label := strings.Join(strings.Fields(rawLabel), " ")
	if label != "" {
		if known, ok := knownBrands[strings.ToLower(label)]; ok {
			return known
		}
		return label
	}

	if known, ok := brandInName(name); ok {
		return known
	}
	return GenericBrand
}

func brandInName(name string) (string, bool) {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i, w := range words {
		if i+1 < len(words) {
			if known, ok := knownBrands[w+" "+words[i+1]]; ok {
				return known, true
			}
		}
		if known, ok := knownBrands[w]; ok {
			return known, true
		}
	}
	return "", false
}

// BrandDescription is written for brands created on demand.
func BrandDescription(name, country string) string {
	desc := "Бренд " + name
	if country = strings.TrimSpace(country); country != "" {
		desc += " з " + country
	}
	return desc
}
