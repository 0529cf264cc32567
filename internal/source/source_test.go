package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"solarcatalog/internal/model"
)

var promHeader = []interface{}{
	"Код_товару", "Назва_позиції", "Назва_позиції_укр", "Опис", "Опис_укр", "Ціна",
	"Назва_групи", "Виробник", "Країна_виробник", "Посилання_зображення",
	"Назва_Характеристики", "Одиниця_виміру_Характеристики", "Значення_Характеристики",
	"Назва_Характеристики", "Одиниця_виміру_Характеристики", "Значення_Характеристики",
}

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	path := filepath.Join(t.TempDir(), "products.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func drain(t *testing.T, s interface {
	Next(context.Context) (model.RawRow, error)
}) []model.RawRow {
	t.Helper()
	var out []model.RawRow
	for {
		row, err := s.Next(context.Background())
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, row)
	}
}

func TestOpenXLSX(t *testing.T) {
	path := writeWorkbook(t, "Export Products Sheet", [][]interface{}{
		promHeader,
		{"SKU-1", "Гибридный инвертор Deye 8кВт", "Гібридний інвертор Deye 8кВт", "<p>Описание</p>", "<p>Опис</p>", "45 000,00",
			"Инверторы", "Deye", "Китай", "https://a.example/1.jpg, https://a.example/2.jpg",
			"Мощность", "кВт", "8", "Гарантия", "років", "5"},
		{},
		{"SKU-2", "Панель", "", "", "", "3200",
			"Панели", "", "", "", "", "", "", "", "", ""},
	})

	s, err := OpenXLSX(path, "Export Products Sheet")
	require.NoError(t, err)
	defer s.Close()

	assert.Contains(t, s.Fields(), model.FieldNameUK)
	assert.Contains(t, s.Fields(), model.FieldCategory)

	rows := drain(t, s)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "SKU-1", first.ProductCode)
	assert.Equal(t, "Гібридний інвертор Deye 8кВт", first.NameUK)
	assert.Equal(t, "Гибридный инвертор Deye 8кВт", first.NameRU)
	assert.Equal(t, "45 000,00", first.Price)
	assert.Equal(t, "Инверторы", first.CategoryLabel)
	assert.Equal(t, "Deye", first.BrandLabel)
	assert.Equal(t, "Китай", first.Country)
	assert.Equal(t, []model.Characteristic{
		{Name: "Мощность", Unit: "кВт", Value: "8"},
		{Name: "Гарантия", Unit: "років", Value: "5"},
	}, first.Characteristics)

	assert.Equal(t, "Панель", rows[1].NameRU)
	assert.Empty(t, rows[1].Characteristics)
}

func TestOpenXLSXFallsBackToFirstSheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"Назва_позиції", "Ціна"},
		{"Акумулятор LiFePO4 100Ah", "12000"},
	})

	s, err := OpenXLSX(path, "missing")
	require.NoError(t, err)
	defer s.Close()

	rows := drain(t, s)
	require.Len(t, rows, 1)
	assert.Equal(t, "Акумулятор LiFePO4 100Ah", rows[0].NameRU)
	assert.Equal(t, "12000", rows[0].Price)
}

func TestOpenCSVWindows1251(t *testing.T) {
	text := "Назва_позиції;Назва_групи;Ціна\nСолнечная панель 450 Вт;Панели;4 100\n;;\n"
	encoded, _, err := transform.Bytes(charmap.Windows1251.NewEncoder(), []byte(text))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "products.csv")
	require.NoError(t, os.WriteFile(path, encoded, 0o644))

	s, err := OpenCSV(path)
	require.NoError(t, err)

	rows := drain(t, s)
	require.Len(t, rows, 1)
	assert.Equal(t, "Солнечная панель 450 Вт", rows[0].NameRU)
	assert.Equal(t, "Панели", rows[0].CategoryLabel)
	assert.Equal(t, "4 100", rows[0].Price)
}

func TestNewCSVUTF8WithBOM(t *testing.T) {
	s, err := NewCSV([]byte("\xef\xbb\xbfname_uk,price\n\"Сонячна панель, 450 Вт\",4100\n"))
	require.NoError(t, err)

	assert.Equal(t, []model.Field{model.FieldNameUK, model.FieldPrice}, s.Fields())
	rows := drain(t, s)
	require.Len(t, rows, 1)
	assert.Equal(t, "Сонячна панель, 450 Вт", rows[0].NameUK)
}

func TestNewCSVEmpty(t *testing.T) {
	_, err := NewCSV(nil)
	assert.Error(t, err)
}

func TestOpenUnsupported(t *testing.T) {
	_, err := Open("products.json", "")
	assert.Error(t, err)
}

func TestLoadCategoryMapping(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"Номер_групи", "Назва_групи", "Назва_групи_укр"},
		{"1", "Инверторы гибридные", "Інвертори гібридні"},
		{"2", "Стабилизаторы", "Стабілізатори напруги"},
		{"3", "Зарядные станции", "Зарядные станции"},
		{"4", "", ""},
	})

	usable := func(s string) bool { return s != "Зарядные станции" }
	m, err := LoadCategoryMapping(path, usable)
	require.NoError(t, err)

	got, ok := m.Lookup("инверторы  гибридные")
	require.True(t, ok)
	assert.Equal(t, "Інвертори", got)

	got, ok = m.Lookup("Стабилизаторы")
	require.True(t, ok)
	assert.Equal(t, "Стабілізатори напруги", got)

	_, ok = m.Lookup("Зарядные станции")
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())
}

func TestLoadCategoryMappingCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groups.csv")
	require.NoError(t, os.WriteFile(path, []byte("Назва_групи,Назва_групи_укр\nАккумуляторы,Акумулятори\n"), 0o644))

	m, err := LoadCategoryMapping(path, func(string) bool { return true })
	require.NoError(t, err)

	got, ok := m.Lookup("Аккумуляторы")
	require.True(t, ok)
	assert.Equal(t, "Акумуляторні батареї", got)
}
