// Package importfile stages and validates the bulk user import file before it
// is uploaded. Format rejection happens client-side so a bad file never
// reaches the network.
package importfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is raised when the staged file is not a spreadsheet.
var ErrUnsupportedFormat = errors.New("unsupported file format: only xlsx, xls, or csv files can be imported")

var allowedTypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-excel": true,
	"text/csv":                 true,
}

var allowedExts = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

// File is an import file staged in memory, ready for upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Stage reads the picked file and validates its type against the allow-list.
// An empty contentType falls back to content sniffing.
func Stage(name, contentType string, r io.Reader) (*File, error) {
	if !allowedExts[strings.ToLower(filepath.Ext(name))] {
		return nil, ErrUnsupportedFormat
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	// Sniffing reports csv as text/plain and xlsx as a zip archive; the
	// extension check above already vouched for those cases.
	base, _, _ := strings.Cut(contentType, ";")
	base = strings.TrimSpace(base)
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case allowedTypes[base]:
	case base == "text/plain" && ext == ".csv":
	case base == "application/zip" && ext == ".xlsx":
	case base == "application/octet-stream":
	default:
		return nil, ErrUnsupportedFormat
	}

	return &File{Name: name, ContentType: base, Data: data}, nil
}

// Reader returns a fresh reader over the staged bytes.
func (f *File) Reader() io.Reader {
	return bytes.NewReader(f.Data)
}

// TemplateColumns is the header row of the import template, in order.
var TemplateColumns = []string{"name", "email", "password", "division", "cohort", "source_of_internship"}

const templateSheet = "Users"

// BuildTemplate produces the import template workbook.
func BuildTemplate() ([]byte, error) {
	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName("Sheet1", templateSheet); err != nil {
		return nil, fmt.Errorf("build template: %w", err)
	}
	for i, col := range TemplateColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("build template: %w", err)
		}
		if err := wb.SetCellValue(templateSheet, cell, col); err != nil {
			return nil, fmt.Errorf("build template: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return nil, fmt.Errorf("build template: %w", err)
	}
	return buf.Bytes(), nil
}

// Preview reads up to limit data rows from a staged xlsx workbook, for
// showing the user what is about to be uploaded. The header row is skipped.
func Preview(f *File, limit int) ([][]string, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(f.Data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows(wb.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	rows = rows[1:]
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}
