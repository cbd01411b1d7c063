package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	apperrors "ipedscli/internal/errors"
)

// sourceTable is one loaded IPEDS survey file: a header row plus data rows,
// with columns addressed by name.
type sourceTable struct {
	name   string
	header []string
	rows   [][]string
	index  map[string]int
}

// readSource loads a survey table, preferring the CSV extract and falling
// back to the Excel workbook IPEDS also distributes. Neither being present
// is a fatal missing-input error identifying the expected CSV path.
func readSource(csvPath, xlsxPath string) (*sourceTable, error) {
	if _, err := os.Stat(csvPath); err == nil {
		return readCSVTable(csvPath)
	}
	if _, err := os.Stat(xlsxPath); err == nil {
		return readWorkbookTable(xlsxPath)
	}
	return nil, apperrors.NewNotFoundError(csvPath)
}

// readCSVTable reads a comma-delimited, Latin-1 encoded survey file.
func readCSVTable(path string) (*sourceTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(transform.NewReader(file, charmap.ISO8859_1.NewDecoder()))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read %s", path), err)
	}

	return newSourceTable(path, records)
}

// readWorkbookTable reads the first sheet of an Excel survey workbook.
func readWorkbookTable(path string) (*sourceTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read %s", path), err)
	}

	return newSourceTable(path, rows)
}

func newSourceTable(path string, records [][]string) (*sourceTable, error) {
	if len(records) == 0 {
		return nil, apperrors.NewParsingError(fmt.Sprintf("%s contains no header row", path), nil)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	t := &sourceTable{
		name:   name,
		header: records[0],
		rows:   records[1:],
		index:  make(map[string]int, len(records[0])),
	}
	for i, col := range t.header {
		t.index[strings.TrimSpace(col)] = i
	}
	return t, nil
}

// columnIndex resolves a required column by name; absence is a fatal
// schema error identifying the table and the column.
func (t *sourceTable) columnIndex(col string) (int, error) {
	idx, ok := t.index[col]
	if !ok {
		return 0, apperrors.NewSchemaError(t.name, col)
	}
	return idx, nil
}

// cell returns the trimmed value at idx, or an empty string when the row is
// ragged and does not reach the column.
func (t *sourceTable) cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
