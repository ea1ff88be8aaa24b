package importfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestStage_RejectsUnsupportedExtension(t *testing.T) {
	t.Parallel()

	_, err := Stage("notes.txt", "text/plain", strings.NewReader("hello"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Stage("report.pdf", "application/pdf", strings.NewReader("%PDF"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestStage_RejectsMismatchedContentType(t *testing.T) {
	t.Parallel()

	// Right extension, wrong declared type.
	_, err := Stage("users.xlsx", "text/plain", strings.NewReader("plain text"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestStage_AcceptsDeclaredSpreadsheetTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
	}{
		{"users.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"users.xls", "application/vnd.ms-excel"},
		{"users.csv", "text/csv"},
		{"users.csv", "text/csv; charset=utf-8"},
	}
	for _, tc := range tests {
		f, err := Stage(tc.name, tc.contentType, strings.NewReader("name,email"))
		require.NoError(t, err, "%s as %s", tc.name, tc.contentType)
		assert.Equal(t, tc.name, f.Name)
	}
}

func TestStage_SniffsCSVAsTextPlain(t *testing.T) {
	t.Parallel()

	f, err := Stage("users.csv", "", strings.NewReader("name,email\nAndi,andi@magang.id\n"))
	require.NoError(t, err)
	assert.Equal(t, "text/plain", f.ContentType)
}

func TestStage_SniffsXLSXAsZip(t *testing.T) {
	t.Parallel()

	data, err := BuildTemplate()
	require.NoError(t, err)

	f, err := Stage("template.xlsx", "", bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "template.xlsx", f.Name)
	assert.Equal(t, data, f.Data)
}

func TestBuildTemplate_HeaderRow(t *testing.T) {
	t.Parallel()

	data, err := BuildTemplate()
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Users")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, TemplateColumns, rows[0])
}

func TestPreview_SkipsHeaderAndLimits(t *testing.T) {
	t.Parallel()

	wb := excelize.NewFile()
	defer wb.Close()
	sheet := wb.GetSheetName(0)
	rows := [][]string{
		{"name", "email"},
		{"Andi", "andi@magang.id"},
		{"Budi", "budi@magang.id"},
		{"Citra", "citra@magang.id"},
	}
	for i, r := range rows {
		for j, v := range r {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, wb.SetCellValue(sheet, cell, v))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))

	f, err := Stage("interns.xlsx", "", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	preview, err := Preview(f, 2)
	require.NoError(t, err)
	require.Len(t, preview, 2)
	assert.Equal(t, []string{"Andi", "andi@magang.id"}, preview[0])
	assert.Equal(t, []string{"Budi", "budi@magang.id"}, preview[1])
}

func TestPreview_HeaderOnlyWorkbook(t *testing.T) {
	t.Parallel()

	data, err := BuildTemplate()
	require.NoError(t, err)
	f, err := Stage("template.xlsx", "", bytes.NewReader(data))
	require.NoError(t, err)

	preview, err := Preview(f, 10)
	require.NoError(t, err)
	assert.Empty(t, preview)
}

func TestFileReader_IsRewindable(t *testing.T) {
	t.Parallel()

	f, err := Stage("users.csv", "text/csv", strings.NewReader("a,b"))
	require.NoError(t, err)

	first := new(bytes.Buffer)
	_, err = first.ReadFrom(f.Reader())
	require.NoError(t, err)

	second := new(bytes.Buffer)
	_, err = second.ReadFrom(f.Reader())
	require.NoError(t, err)

	assert.Equal(t, "a,b", first.String())
	assert.Equal(t, first.String(), second.String())
}
