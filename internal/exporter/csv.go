package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"ipedscli/internal/config"
	"ipedscli/internal/dataset"
	apperrors "ipedscli/internal/errors"
)

// PanelColumns is the exact header of the persisted panel file, in order.
var PanelColumns = []string{
	"ID_IPEDS",
	"stabbr",
	"highest_degree",
	"degree_bach",
	"public",
	"enroll_ftug",
	"grant_federal",
	"year",
}

// Writer persists pipeline outputs as CSV files.
type Writer struct {
	paths  *config.Paths
	logger *slog.Logger
}

// New creates a CSV writer instance.
func New(paths *config.Paths, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{paths: paths, logger: logger}
}

// WritePanel serializes the cleaned panel to its fixed location,
// Latin-1 encoded, one header row, no index column. This file is the sole
// persistence boundary between assembly and analysis: downstream commands
// re-read it rather than receiving the panel in memory.
func (w *Writer) WritePanel(ctx context.Context, panel dataset.Panel) error {
	path := w.paths.CleanDataCSV

	w.logger.InfoContext(ctx, "exporting cleaned panel",
		slog.String("path", path),
		slog.Int("rows", len(panel)))

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create %s", path), err)
	}
	defer file.Close()

	encoded := transform.NewWriter(file, charmap.ISO8859_1.NewEncoder())
	writer := csv.NewWriter(encoded)

	if err := writer.Write(PanelColumns); err != nil {
		return apperrors.NewStorageError("failed to write panel header", err)
	}

	for i, r := range panel {
		record := []string{
			strconv.FormatInt(r.UnitID, 10),
			r.State,
			r.HighestDegree.String(),
			formatFlag(r.DegreeBach),
			formatFlag(r.Public),
			r.EnrollFTUG.String(),
			r.GrantFederal.String(),
			strconv.Itoa(r.Year),
		}
		if err := writer.Write(record); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to write panel row %d", i), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewStorageError("failed to flush panel file", err)
	}
	if err := encoded.Close(); err != nil {
		return apperrors.NewStorageError("failed to encode panel file", err)
	}

	w.logger.InfoContext(ctx, "cleaned panel exported", slog.String("path", path))
	return nil
}

// WriteTable writes a presentation table to the reports directory.
func (w *Writer) WriteTable(ctx context.Context, name string, table dataset.Table) error {
	path := w.paths.ReportPath(name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create reports directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create %s", path), err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Columns); err != nil {
		return apperrors.NewStorageError("failed to write table header", err)
	}
	for i, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to write table row %d", i), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewStorageError("failed to flush table file", err)
	}

	w.logger.InfoContext(ctx, "wrote report table",
		slog.String("path", path),
		slog.Int("rows", len(table.Rows)))
	return nil
}

// ReadPanel loads a previously exported panel file. The required columns
// are resolved by name; a missing column is a schema error naming it.
func ReadPanel(path string) (dataset.Panel, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(path)
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(transform.NewReader(file, charmap.ISO8859_1.NewDecoder()))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read %s", path), err)
	}
	if len(records) == 0 {
		return nil, apperrors.NewParsingError(fmt.Sprintf("%s contains no header row", path), nil)
	}

	index := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		index[col] = i
	}
	table := filepath.Base(path)
	for _, col := range PanelColumns {
		if _, ok := index[col]; !ok {
			return nil, apperrors.NewSchemaError(table, col)
		}
	}

	cell := func(row []string, col string) string {
		idx := index[col]
		if idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	panel := make(dataset.Panel, 0, len(records)-1)
	for line, row := range records[1:] {
		id, err := strconv.ParseInt(cell(row, "ID_IPEDS"), 10, 64)
		if err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("parse ID_IPEDS at line %d", line+2), err)
		}
		year, err := strconv.Atoi(cell(row, "year"))
		if err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("parse year at line %d", line+2), err)
		}
		highest, err := dataset.ParseFloat(cell(row, "highest_degree"))
		if err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("parse highest_degree at line %d", line+2), err)
		}
		enroll, err := dataset.ParseFloat(cell(row, "enroll_ftug"))
		if err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("parse enroll_ftug at line %d", line+2), err)
		}
		grant, err := dataset.ParseFloat(cell(row, "grant_federal"))
		if err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("parse grant_federal at line %d", line+2), err)
		}

		panel = append(panel, dataset.Row{
			UnitID:        id,
			State:         cell(row, "stabbr"),
			HighestDegree: highest,
			DegreeBach:    cell(row, "degree_bach") == "1",
			Public:        cell(row, "public") == "1",
			EnrollFTUG:    enroll,
			GrantFederal:  grant,
			Year:          year,
		})
	}

	return panel, nil
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
