package loader

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"ipedscli/internal/config"
	"ipedscli/internal/dataset"
)

// Required columns per source table. HD is the institutional directory
// survey, SFA the student financial aid survey.
const (
	colUnitID  = "UNITID"
	colState   = "STABBR"
	colHLOffer = "HLOFFER"
	colUGOffer = "UGOFFER"
	colControl = "CONTROL"
	colEnroll  = "SCUGFFN"
	colGrant   = "FGRNT_T"
)

// maxConcurrentYears bounds the parallel per-year source loads.
const maxConcurrentYears = 4

// Loader assembles the institution-year panel from yearly HD and SFA
// survey files.
type Loader struct {
	paths  *config.Paths
	logger *slog.Logger
}

// New creates a panel loader.
func New(paths *config.Paths, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{paths: paths, logger: logger}
}

// Load assembles the panel covering academic years [start, end] inclusive.
//
// The directory survey for survey year y describes the fall of y, so the
// academic year starting in start is covered by the HD table named start+1
// and the SFA table spanning start..start+1. Years load concurrently but
// the assembled panel is always in ascending year order; any missing file
// or column aborts the whole load, never returning a partial panel.
func (l *Loader) Load(ctx context.Context, start, end int) (dataset.Panel, error) {
	surveyYears := make([]int, 0, end-start+1)
	for y := start + 1; y <= end+1; y++ {
		surveyYears = append(surveyYears, y)
	}

	l.logger.InfoContext(ctx, "assembling panel",
		slog.Int("start_year", start),
		slog.Int("end_year", end),
		slog.Int("survey_years", len(surveyYears)))

	yearRows := make([]dataset.Panel, len(surveyYears))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentYears)
	for i, y := range surveyYears {
		i, y := i, y
		g.Go(func() error {
			rows, err := l.loadYear(ctx, y)
			if err != nil {
				return err
			}
			yearRows[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var panel dataset.Panel
	for _, rows := range yearRows {
		panel = append(panel, rows...)
	}

	l.logger.InfoContext(ctx, "panel assembled",
		slog.Int("rows", len(panel)),
		slog.Int("years", len(surveyYears)))

	return panel, nil
}

// loadYear merges the directory and aid tables for one survey year and
// tags the result with the academic year's starting year.
func (l *Loader) loadYear(ctx context.Context, surveyYear int) (dataset.Panel, error) {
	hd, err := readSource(
		l.paths.DirectorySource(surveyYear, ".csv"),
		l.paths.DirectorySource(surveyYear, ".xlsx"))
	if err != nil {
		return nil, err
	}

	sfa, err := readSource(
		l.paths.AidSource(surveyYear, ".csv"),
		l.paths.AidSource(surveyYear, ".xlsx"))
	if err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "loaded source tables",
		slog.String("directory", hd.name),
		slog.Int("directory_rows", len(hd.rows)),
		slog.String("aid", sfa.name),
		slog.Int("aid_rows", len(sfa.rows)))

	hdID, err := hd.columnIndex(colUnitID)
	if err != nil {
		return nil, err
	}
	hdState, err := hd.columnIndex(colState)
	if err != nil {
		return nil, err
	}
	hdHLOffer, err := hd.columnIndex(colHLOffer)
	if err != nil {
		return nil, err
	}
	hdUGOffer, err := hd.columnIndex(colUGOffer)
	if err != nil {
		return nil, err
	}
	hdControl, err := hd.columnIndex(colControl)
	if err != nil {
		return nil, err
	}

	sfaID, err := sfa.columnIndex(colUnitID)
	if err != nil {
		return nil, err
	}
	sfaEnroll, err := sfa.columnIndex(colEnroll)
	if err != nil {
		return nil, err
	}
	sfaGrant, err := sfa.columnIndex(colGrant)
	if err != nil {
		return nil, err
	}

	// Index aid rows by institution for the inner join. Rows without a
	// match on the other side drop out for this year.
	aidByID := make(map[int64][]string, len(sfa.rows))
	for _, row := range sfa.rows {
		id, ok := parseUnitID(sfa.cell(row, sfaID))
		if !ok {
			continue
		}
		aidByID[id] = row
	}

	year := surveyYear - 1
	rows := make(dataset.Panel, 0, len(hd.rows))

	for _, hdRow := range hd.rows {
		id, ok := parseUnitID(hd.cell(hdRow, hdID))
		if !ok {
			continue
		}
		sfaRow, ok := aidByID[id]
		if !ok {
			continue
		}

		hlOffer, err := dataset.ParseFloat(hd.cell(hdRow, hdHLOffer))
		if err != nil {
			return nil, parseError(hd.name, colHLOffer, err)
		}
		enroll, err := dataset.ParseFloat(sfa.cell(sfaRow, sfaEnroll))
		if err != nil {
			return nil, parseError(sfa.name, colEnroll, err)
		}
		grant, err := dataset.ParseFloat(sfa.cell(sfaRow, sfaGrant))
		if err != nil {
			return nil, parseError(sfa.name, colGrant, err)
		}

		rows = append(rows, dataset.Row{
			UnitID:        id,
			State:         hd.cell(hdRow, hdState),
			HighestDegree: hlOffer,
			DegreeBach:    recodeFlag(hd.cell(hdRow, hdUGOffer)),
			Public:        recodeFlag(hd.cell(hdRow, hdControl)),
			EnrollFTUG:    enroll,
			GrantFederal:  grant,
			Year:          year,
		})
	}

	l.logger.InfoContext(ctx, "merged survey year",
		slog.Int("survey_year", surveyYear),
		slog.Int("academic_year", year),
		slog.Int("rows", len(rows)))

	return rows, nil
}

// recodeFlag projects a categorical source code onto a strict boolean:
// exactly the value 1 means true, everything else including a missing cell
// means false.
func recodeFlag(cell string) bool {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return false
	}
	return v == 1
}

// parseUnitID parses the institution identifier; rows with an unparsable
// key cannot participate in the join.
func parseUnitID(cell string) (int64, bool) {
	id, err := strconv.ParseInt(cell, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func parseError(table, column string, err error) error {
	return fmt.Errorf("parse %s in %s: %w", column, table, err)
}
