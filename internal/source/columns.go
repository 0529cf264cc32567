// Package source reads product exports (Prom.ua xlsx or csv) into raw rows.
package source

import (
	"strings"

	"solarcatalog/internal/model"
)

// headers maps normalized column titles to fields. Prom.ua export titles
// come first, short aliases after.
var headers = map[string]model.Field{
	"назва_позиції":                 model.FieldNameRU,
	"назва_позиції_укр":             model.FieldNameUK,
	"опис":                          model.FieldDescriptionRU,
	"опис_укр":                      model.FieldDescriptionUK,
	"ціна":                          model.FieldPrice,
	"назва_групи":                   model.FieldCategory,
	"виробник":                      model.FieldBrand,
	"країна_виробник":               model.FieldCountry,
	"код_товару":                    model.FieldProductCode,
	"посилання_зображення":          model.FieldImages,
	"назва_характеристики":          model.FieldCharacteristicName,
	"одиниця_виміру_характеристики": model.FieldCharacteristicUnit,
	"значення_характеристики":       model.FieldCharacteristicValue,

	"name":           model.FieldNameRU,
	"name_ru":        model.FieldNameRU,
	"name_uk":        model.FieldNameUK,
	"description":    model.FieldDescriptionRU,
	"description_ru": model.FieldDescriptionRU,
	"description_uk": model.FieldDescriptionUK,
	"price":          model.FieldPrice,
	"category":       model.FieldCategory,
	"brand":          model.FieldBrand,
	"country":        model.FieldCountry,
	"sku":            model.FieldProductCode,
	"images":         model.FieldImages,
}

// layout is the column positions found in a header row. Characteristic
// columns repeat, so they are kept as ordered lists.
type layout struct {
	index  map[model.Field]int
	fields []model.Field
	chars  struct{ names, units, values []int }
}

func headerKey(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

func parseHeader(row []string) layout {
	l := layout{index: make(map[model.Field]int)}
	for i, title := range row {
		f, ok := headers[headerKey(title)]
		if !ok {
			continue
		}
		switch f {
		case model.FieldCharacteristicName:
			l.chars.names = append(l.chars.names, i)
		case model.FieldCharacteristicUnit:
			l.chars.units = append(l.chars.units, i)
		case model.FieldCharacteristicValue:
			l.chars.values = append(l.chars.values, i)
		default:
			if _, dup := l.index[f]; dup {
				continue
			}
			l.index[f] = i
		}
		l.fields = append(l.fields, f)
	}
	return l
}

func (l layout) row(cells []string) model.RawRow {
	get := func(f model.Field) string {
		i, ok := l.index[f]
		if !ok {
			return ""
		}
		return cellAt(cells, i)
	}

	r := model.RawRow{
		NameUK:        get(model.FieldNameUK),
		NameRU:        get(model.FieldNameRU),
		DescriptionUK: get(model.FieldDescriptionUK),
		DescriptionRU: get(model.FieldDescriptionRU),
		Price:         get(model.FieldPrice),
		CategoryLabel: get(model.FieldCategory),
		BrandLabel:    get(model.FieldBrand),
		Country:       get(model.FieldCountry),
		ProductCode:   get(model.FieldProductCode),
		ImageURLs:     get(model.FieldImages),
	}

	for n, nameIdx := range l.chars.names {
		c := model.Characteristic{Name: strings.TrimSpace(cellAt(cells, nameIdx))}
		if c.Name == "" {
			continue
		}
		if n < len(l.chars.values) {
			c.Value = strings.TrimSpace(cellAt(cells, l.chars.values[n]))
		}
		if n < len(l.chars.units) {
			c.Unit = strings.TrimSpace(cellAt(cells, l.chars.units[n]))
		}
		r.Characteristics = append(r.Characteristics, c)
	}
	return r
}

func cellAt(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
