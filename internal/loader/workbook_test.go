package loader_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rezonia/intrari-furnizori/internal/loader"
	"github.com/rezonia/intrari-furnizori/internal/model"
)

type sheet struct {
	name string
	rows [][]interface{}
}

func workbook(t *testing.T, sheets ...sheet) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for _, s := range sheets {
		_, err := f.NewSheet(s.name)
		require.NoError(t, err)
		for i, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(s.name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestLoadWorkbook(t *testing.T) {
	buf := workbook(t,
		sheet{loader.SheetAntet, [][]interface{}{
			{"TipDocument", "FACTURA INTRARE"},
			{"AnLucru", "2020"},
			{"LunaLucru", "02"},
		}},
		sheet{loader.SheetDocumente, [][]interface{}{
			{"SerieDoc", "NrDoc", "Moneda", "Operat"},
			{"FF", "100", "RON", "Da"},
			{"FF", "101", "EUR", ""},
		}},
		sheet{loader.SheetLinii, [][]interface{}{
			{"NrDoc", "IDArticol", "Cant", "Pret"},
			{"100", "ART-1", 2, 3.5},
			{"101", "ART-2", "1", "10"},
			{"100", "ART-3", 1, 1},
		}},
	)

	batch, err := loader.LoadWorkbook(buf)
	require.NoError(t, err)

	assert.Equal(t, "FACTURA INTRARE", *batch.TipDocument)
	assert.Equal(t, "02", *batch.LunaLucru)
	require.Len(t, batch.Documente, 2)

	first := batch.Documente[0]
	assert.Equal(t, "100", *first.NrDoc)
	assert.Equal(t, model.Da, *first.Operat)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "ART-1", *first.Items[0].IDArticol)
	assert.Equal(t, "3.5", *first.Items[0].Pret)
	assert.Equal(t, "ART-3", *first.Items[1].IDArticol)

	second := batch.Documente[1]
	assert.Equal(t, "EUR", *second.Moneda)
	assert.Nil(t, second.Operat)
	require.Len(t, second.Items, 1)
}

func TestLoadWorkbook_Errors(t *testing.T) {
	tests := []struct {
		name     string
		sheets   []sheet
		target   error
		contains string
	}{
		{
			name:     "no documente sheet",
			sheets:   []sheet{{loader.SheetLinii, [][]interface{}{{"NrDoc"}}}},
			contains: "no Documente sheet",
		},
		{
			name: "document without NrDoc",
			sheets: []sheet{{loader.SheetDocumente, [][]interface{}{
				{"SerieDoc", "NrDoc"},
				{"FF", ""},
			}}},
			contains: "NrDoc is required",
		},
		{
			name: "duplicate NrDoc",
			sheets: []sheet{{loader.SheetDocumente, [][]interface{}{
				{"NrDoc"},
				{"1"},
				{"1"},
			}}},
			contains: "duplicate",
		},
		{
			name: "line for unknown document",
			sheets: []sheet{
				{loader.SheetDocumente, [][]interface{}{{"NrDoc"}, {"1"}}},
				{loader.SheetLinii, [][]interface{}{{"NrDoc", "IDArticol"}, {"2", "A"}}},
			},
			contains: "no document with NrDoc",
		},
		{
			name: "document without lines",
			sheets: []sheet{
				{loader.SheetDocumente, [][]interface{}{{"NrDoc"}, {"1"}}},
			},
			target: model.ErrMissingField,
		},
		{
			name: "unknown column",
			sheets: []sheet{
				{loader.SheetDocumente, [][]interface{}{{"NrDoc", "Valuta"}, {"1", "RON"}}},
				{loader.SheetLinii, [][]interface{}{{"NrDoc", "IDArticol"}, {"1", "A"}}},
			},
			contains: "schema",
		},
		{
			name: "bad currency",
			sheets: []sheet{
				{loader.SheetDocumente, [][]interface{}{{"NrDoc", "Moneda"}, {"1", "HUF"}}},
				{loader.SheetLinii, [][]interface{}{{"NrDoc", "IDArticol"}, {"1", "A"}}},
			},
			target: model.ErrInvalidCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.LoadWorkbook(workbook(t, tt.sheets...))
			require.Error(t, err)
			if tt.target != nil {
				require.ErrorIs(t, err, tt.target)
			}
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestLoadWorkbook_NotAWorkbook(t *testing.T) {
	_, err := loader.LoadWorkbook(bytes.NewBufferString("plain text"))
	require.Error(t, err)
}

func TestLoadFile_Workbook(t *testing.T) {
	buf := workbook(t,
		sheet{loader.SheetDocumente, [][]interface{}{{"NrDoc"}, {"9"}}},
		sheet{loader.SheetLinii, [][]interface{}{{"NrDoc", "IDArticol"}, {"9", "A"}}},
	)
	path := writeFile(t, "batch.xlsx", buf.String())

	batch, err := loader.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, batch.Documente, 1)
	assert.Equal(t, "9", *batch.Documente[0].NrDoc)
	assert.Equal(t, filepath.Ext(path), ".xlsx")
}
