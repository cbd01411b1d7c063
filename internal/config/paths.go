package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the pipeline paths.
// This is the single source of truth for file locations: raw IPEDS survey
// files live under RawDataDir, figures and tabular reports are written to
// FiguresDir and ReportsDir, and the cleaned panel always lands at
// CleanDataCSV so downstream commands can find it without coordination.
type Paths struct {
	BaseDir      string
	RawDataDir   string
	FiguresDir   string
	ReportsDir   string
	CleanDataCSV string
}

// GetPaths returns the pipeline paths relative to the current working
// directory. The layout mirrors how the raw IPEDS extracts are organized:
//
//	./
//	├── Raw Data/
//	│   ├── HD2011/hd2011.csv      (directory survey, fall 2011)
//	│   └── SFA1011/sfa1011.csv    (financial aid, academic year 2010-11)
//	├── Figure/                    (generated charts and maps)
//	├── reports/                   (generated tables)
//	└── clean_data.csv             (exported panel)
func GetPaths() (*Paths, error) {
	base, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewPaths(base), nil
}

// NewPaths builds the path set rooted at base.
func NewPaths(base string) *Paths {
	return &Paths{
		BaseDir:      base,
		RawDataDir:   filepath.Join(base, "Raw Data"),
		FiguresDir:   filepath.Join(base, "Figure"),
		ReportsDir:   filepath.Join(base, "reports"),
		CleanDataCSV: filepath.Join(base, "clean_data.csv"),
	}
}

// EnsureDirectories creates the output directories if they don't exist.
// The raw data directory is deliberately not created: its absence is a
// missing-input error, not something to paper over.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.FiguresDir, p.ReportsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// DirectorySource returns the path of the institutional-directory table for
// survey year y, e.g. "Raw Data/HD2011/hd2011" plus the extension.
func (p *Paths) DirectorySource(year int, ext string) string {
	folder := fmt.Sprintf("HD%d", year)
	return filepath.Join(p.RawDataDir, folder, fmt.Sprintf("hd%d%s", year, ext))
}

// AidSource returns the path of the financial-aid table for the academic
// year ending in y, e.g. "SFA1011/sfa1011" for y=2011.
func (p *Paths) AidSource(year int, ext string) string {
	suffix := AcademicYearSuffix(year)
	folder := fmt.Sprintf("SFA%s", suffix)
	return filepath.Join(p.RawDataDir, folder, fmt.Sprintf("sfa%s%s", suffix, ext))
}

// FigurePath returns the full path for a figure file.
func (p *Paths) FigurePath(name string) string {
	return filepath.Join(p.FiguresDir, name)
}

// ReportPath returns the full path for a report file.
func (p *Paths) ReportPath(name string) string {
	return filepath.Join(p.ReportsDir, name)
}

// AcademicYearSuffix returns the concatenated two-digit start/end of the
// academic year ending in y: 2011 -> "1011".
func AcademicYearSuffix(year int) string {
	return fmt.Sprintf("%02d%02d", (year-1)%100, year%100)
}

// AcademicYearLabel returns the conventional label of the academic year
// starting in y: 2010 -> "2010-11".
func AcademicYearLabel(year int) string {
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}
