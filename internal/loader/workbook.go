package loader

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rezonia/intrari-furnizori/internal/model"
)

// Workbook sheet names.
const (
	SheetAntet     = "Antet"
	SheetDocumente = "Documente"
	SheetLinii     = "Linii"
)

// linkColumn ties a line on the Linii sheet to its document.
const linkColumn = "NrDoc"

// LoadWorkbook reads a batch from an XLSX workbook.
//
// Layout:
//   - Antet (optional): label in column A, value in column B, for
//     TipDocument, AnLucru and LunaLucru
//   - Documente: header row of document labels, one document per row,
//     NrDoc required and unique
//   - Linii: header row of line labels plus NrDoc naming the document
//
// Cells are read raw, without number formatting. Empty cells leave the
// field unset. Lots (Serii) and payment schedules (Scadente) have no place
// in this layout.
func LoadWorkbook(r io.Reader) (model.IntrareFurnizori, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return model.IntrareFurnizori{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	raw := map[string]any{}

	if hasSheet(f, SheetAntet) {
		rows, err := f.GetRows(SheetAntet, excelize.Options{RawCellValue: true})
		if err != nil {
			return model.IntrareFurnizori{}, fmt.Errorf("failed to read sheet %s: %w", SheetAntet, err)
		}
		for _, row := range rows {
			if len(row) < 2 || strings.TrimSpace(row[0]) == "" || row[1] == "" {
				continue
			}
			raw[strings.TrimSpace(row[0])] = row[1]
		}
	}

	if !hasSheet(f, SheetDocumente) {
		return model.IntrareFurnizori{}, fmt.Errorf("workbook has no %s sheet", SheetDocumente)
	}
	docRows, err := readTable(f, SheetDocumente)
	if err != nil {
		return model.IntrareFurnizori{}, err
	}

	documente := make([]any, 0, len(docRows))
	byNr := map[string]map[string]any{}
	for _, row := range docRows {
		nr, _ := row.values[linkColumn].(string)
		if nr == "" {
			return model.IntrareFurnizori{}, fmt.Errorf("%s row %d: %s is required", SheetDocumente, row.line, linkColumn)
		}
		if _, dup := byNr[nr]; dup {
			return model.IntrareFurnizori{}, fmt.Errorf("%s row %d: duplicate %s %q", SheetDocumente, row.line, linkColumn, nr)
		}
		byNr[nr] = row.values
		documente = append(documente, row.values)
	}
	raw["Documente"] = documente

	if hasSheet(f, SheetLinii) {
		lineRows, err := readTable(f, SheetLinii)
		if err != nil {
			return model.IntrareFurnizori{}, err
		}
		for _, row := range lineRows {
			nr, _ := row.values[linkColumn].(string)
			doc, ok := byNr[nr]
			if !ok {
				return model.IntrareFurnizori{}, fmt.Errorf("%s row %d: no document with %s %q", SheetLinii, row.line, linkColumn, nr)
			}
			delete(row.values, linkColumn)
			items, _ := doc["items"].([]any)
			doc["items"] = append(items, row.values)
		}
	}

	return FromMap(raw)
}

type tableRow struct {
	line   int
	values map[string]any
}

// readTable maps every non-empty row below the header to label->cell.
func readTable(f *excelize.File, sheet string) ([]tableRow, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", sheet)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	var out []tableRow
	for i, row := range rows[1:] {
		values := map[string]any{}
		for col, cell := range row {
			if col >= len(header) || header[col] == "" || cell == "" {
				continue
			}
			values[header[col]] = cell
		}
		if len(values) == 0 {
			continue
		}
		out = append(out, tableRow{line: i + 2, values: values})
	}
	return out, nil
}

func hasSheet(f *excelize.File, name string) bool {
	idx, err := f.GetSheetIndex(name)
	return err == nil && idx >= 0
}
