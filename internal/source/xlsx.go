package source

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"solarcatalog/internal/model"
)

// XLSXSource streams product rows from one worksheet.
type XLSXSource struct {
	file   *excelize.File
	rows   *excelize.Rows
	layout layout
	line   int
}

// OpenXLSX opens path and positions the reader after the header row of
// sheet. An empty or unknown sheet name falls back to the first sheet.
func OpenXLSX(path, sheet string) (*XLSXSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	if sheet == "" || !hasSheet(f, sheet) {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	s := &XLSXSource{file: f, rows: rows}
	for rows.Next() {
		s.line++
		cells, err := rows.Columns()
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("read header: %w", err)
		}
		if blank(cells) {
			continue
		}
		s.layout = parseHeader(cells)
		return s, nil
	}
	s.Close()
	return nil, fmt.Errorf("sheet %q has no header row", sheet)
}

func hasSheet(f *excelize.File, name string) bool {
	for _, s := range f.GetSheetList() {
		if s == name {
			return true
		}
	}
	return false
}

func (s *XLSXSource) Fields() []model.Field { return s.layout.fields }

func (s *XLSXSource) Next(ctx context.Context) (model.RawRow, error) {
	for {
		if err := ctx.Err(); err != nil {
			return model.RawRow{}, err
		}
		if !s.rows.Next() {
			if err := s.rows.Error(); err != nil {
				return model.RawRow{}, err
			}
			return model.RawRow{}, io.EOF
		}
		s.line++
		cells, err := s.rows.Columns()
		if err != nil {
			return model.RawRow{}, fmt.Errorf("row %d: %w", s.line, err)
		}
		if blank(cells) {
			continue
		}
		return s.layout.row(cells), nil
	}
}

func (s *XLSXSource) Close() error {
	if s.rows != nil {
		s.rows.Close()
	}
	return s.file.Close()
}
