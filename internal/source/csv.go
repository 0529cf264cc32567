package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"solarcatalog/internal/model"
)

// CSVSource reads product rows from a delimited export.
type CSVSource struct {
	reader *csv.Reader
	layout layout
	line   int
}

// OpenCSV loads path into memory, decoding Windows-1251 when the content
// is not valid UTF-8. The delimiter is guessed from the header line.
func OpenCSV(path string) (*CSVSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return NewCSV(data)
}

func NewCSV(data []byte) (*CSVSource, error) {
	data, err := decode(data)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delimiter(data)
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	s := &CSVSource{reader: r}
	for {
		cells, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csv has no header row")
		}
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		s.line++
		if blank(cells) {
			continue
		}
		s.layout = parseHeader(cells)
		return s, nil
	}
}

func decode(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if utf8.Valid(data) {
		return data, nil
	}
	out, _, err := transform.Bytes(charmap.Windows1251.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decode windows-1251: %w", err)
	}
	return out, nil
}

func delimiter(data []byte) rune {
	first := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		first = data[:i]
	}
	best, n := ',', bytes.Count(first, []byte{','})
	for _, d := range []rune{';', '\t'} {
		if c := bytes.Count(first, []byte(string(d))); c > n {
			best, n = d, c
		}
	}
	return best
}

func (s *CSVSource) Fields() []model.Field { return s.layout.fields }

func (s *CSVSource) Next(ctx context.Context) (model.RawRow, error) {
	for {
		if err := ctx.Err(); err != nil {
			return model.RawRow{}, err
		}
		cells, err := s.reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return model.RawRow{}, io.EOF
			}
			return model.RawRow{}, fmt.Errorf("row %d: %w", s.line+1, err)
		}
		s.line++
		if blank(cells) {
			continue
		}
		return s.layout.row(cells), nil
	}
}

func (s *CSVSource) Close() error { return nil }
