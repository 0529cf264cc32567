package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"solarcatalog/internal/model"
	"solarcatalog/internal/taxonomy"
)

// Source is a product source that may hold an open file.
type Source interface {
	Fields() []model.Field
	Next(ctx context.Context) (model.RawRow, error)
	io.Closer
}

// Open picks a reader by file extension.
func Open(path, sheet string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		s, err := OpenXLSX(path, sheet)
		if err != nil {
			return nil, err
		}
		return s, nil
	case ".csv", ".txt":
		s, err := OpenCSV(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported source format %q", filepath.Ext(path))
	}
}

// LoadCategoryMapping reads a category reference file with the columns
// Назва_групи and Назва_групи_укр. usable rejects Ukrainian names that
// should not become category names.
func LoadCategoryMapping(path string, usable func(string) bool) (*taxonomy.Mapping, error) {
	refs, err := readReferences(path)
	if err != nil {
		return nil, err
	}
	return taxonomy.BuildMapping(refs, usable), nil
}

func readReferences(path string) ([]taxonomy.Reference, error) {
	var rows [][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open workbook: %w", err)
		}
		defer f.Close()
		rows, err = f.GetRows(f.GetSheetName(0))
		if err != nil {
			return nil, fmt.Errorf("read categories: %w", err)
		}
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read categories: %w", err)
		}
		if data, err = decode(data); err != nil {
			return nil, err
		}
		r := csv.NewReader(bytes.NewReader(data))
		r.Comma = delimiter(data)
		r.LazyQuotes = true
		r.FieldsPerRecord = -1
		if rows, err = r.ReadAll(); err != nil {
			return nil, fmt.Errorf("read categories: %w", err)
		}
	}
	return references(rows), nil
}

// references finds the first row naming a group column and reads the rows
// under it.
func references(rows [][]string) []taxonomy.Reference {
	raw, uk := -1, -1
	start := 0
	for i, row := range rows {
		for j, title := range row {
			switch headerKey(title) {
			case "назва_групи":
				raw = j
			case "назва_групи_укр":
				uk = j
			}
		}
		if raw >= 0 || uk >= 0 {
			start = i + 1
			break
		}
	}
	if raw < 0 && uk < 0 {
		return nil
	}

	var refs []taxonomy.Reference
	for _, row := range rows[start:] {
		ref := taxonomy.Reference{Raw: cellAt(row, raw), Translated: cellAt(row, uk)}
		if ref.Raw == "" && ref.Translated == "" {
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}
