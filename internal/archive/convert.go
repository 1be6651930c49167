package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kervadec/gites-ledger/internal/pkg/logger"
)

// maxArchiveColumns mirrors the live source: only columns A–I matter.
const maxArchiveColumns = 9

// ConvertWorkbooks compiles every .xlsx workbook in dir into archive data:
// one entry per sheet name (trimmed), headers dropped, at most maxSheets
// sheets per workbook. Sheets sharing a name across workbooks are
// concatenated in file-name order.
//
// Cell values that parse as plain numbers are written as JSON numbers so
// the converted archive matches what the live source would have produced;
// everything else stays text.
func ConvertWorkbooks(dir string, maxSheets int) (map[string][][]any, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading workbook directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".xlsx") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	out := make(map[string][][]any)
	for _, name := range files {
		if err := convertWorkbook(filepath.Join(dir, name), maxSheets, out); err != nil {
			return nil, fmt.Errorf("converting %s: %w", name, err)
		}
	}
	return out, nil
}

func convertWorkbook(path string, maxSheets int, out map[string][][]any) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) > maxSheets {
		sheets = sheets[:maxSheets]
	}

	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}

		property := strings.TrimSpace(sheet)
		converted := 0
		for i, row := range rows {
			if i == 0 {
				continue // header
			}
			cells := convertRow(row)
			if cells == nil {
				continue
			}
			out[property] = append(out[property], cells)
			converted++
		}
		logger.Info("sheet converted", "file", filepath.Base(path), "property", property, "rows", converted)
	}
	return nil
}

// convertRow keeps the first 9 cells, restoring numeric typing where the
// formatted value is a plain number. Entirely empty rows convert to nil.
func convertRow(row []string) []any {
	if len(row) > maxArchiveColumns {
		row = row[:maxArchiveColumns]
	}

	cells := make([]any, len(row))
	blank := true
	for i, v := range row {
		if strings.TrimSpace(v) != "" {
			blank = false
		}
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			cells[i] = n
		} else {
			cells[i] = v
		}
	}
	if blank {
		return nil
	}
	return cells
}

// WriteFile persists converted archive data as indented JSON.
func WriteFile(path string, data map[string][][]any) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding archive: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("writing archive: %w", err)
	}
	return nil
}
