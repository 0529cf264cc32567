package importer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"solarcatalog/internal/model"
)

const (
	// minPreferredName is the length a Ukrainian name needs to be preferred
	// over the Russian one.
	minPreferredName = 5
	// minDescription is the length a description needs to be used at all.
	minDescription = 11
)

var priceCleaner = strings.NewReplacer(" ", "", "\u00a0", "", "грн", "", "UAH", "", "₴", "", ",", ".")

// ParsePrice reads a supplier price. Empty input is zero; negative prices
// are rejected.
func ParsePrice(raw string) (decimal.Decimal, error) {
	s := priceCleaner.Replace(strings.TrimSpace(raw))
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse price %q: %w", raw, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative price %q", raw)
	}
	return d.Round(2), nil
}

// TechFields extracts power, efficiency and warranty from characteristics.
// The first matching characteristic wins.
func TechFields(chars []model.Characteristic) (power, efficiency, warranty string) {
	for _, c := range chars {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		value := strings.TrimSpace(strings.Join([]string{strings.TrimSpace(c.Value), strings.TrimSpace(c.Unit)}, " "))
		if name == "" || value == "" {
			continue
		}
		switch {
		case power == "" && hasAny(name, "потужн", "мощн"):
			power = value
		case efficiency == "" && hasAny(name, "ккд", "кпд", "ефективн", "эффективн"):
			efficiency = value
		case warranty == "" && hasAny(name, "гаранті", "гаранти"):
			warranty = value
		}
	}
	return power, efficiency, warranty
}

func hasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// pickName prefers the Ukrainian name unless it is too short to be real.
func pickName(uk, ru string) string {
	if utf8.RuneCountInString(uk) >= minPreferredName || ru == "" {
		return uk
	}
	return ru
}

func defaultDescription(name string) string {
	return name + " від надійного виробника. Висока якість та гарантія."
}

func longEnough(s string) bool {
	return utf8.RuneCountInString(s) >= minDescription
}
