package content

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/adytum/internal/database"
	"github.com/example/adytum/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the station import configuration. Columns are fixed:
// day number, theme, quote, koan, commentary, practice title, practice
// duration, practice instructions ("|"-separated), meditation title,
// meditation guidance, advice, fable title, fable, reminder practice,
// bridge chapter, bridge topics ("|"-separated).
type ImportConfig struct {
	FilePath  string // Path to the Excel or CSV file
	SheetName string // Name of the sheet to import
	StartRow  int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SheetName: "Sheet1",
		StartRow:  2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Updated        int
	Errors         []string
}

// ImportStations imports course stations from an Excel or CSV file into the
// stations table. Imported stations extend or override the built-in catalog
// on the next startup.
func ImportStations(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))

	if ext == ".csv" {
		return importFromCSV(config)
	}

	return importFromExcel(config)
}

// importFromExcel imports stations from an Excel file
func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	repo := database.NewStationRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}

		result.TotalProcessed++

		if err := processStationRow(row, repo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

// importFromCSV imports stations from a CSV file
func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	repo := database.NewStationRepository()
	result := &ImportResult{Errors: make([]string, 0)}

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++

		// Skip header rows
		if rowNum < config.StartRow {
			continue
		}

		result.TotalProcessed++

		if err := processStationRow(row, repo, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return result, nil
}

// processStationRow turns one spreadsheet row into a station and stores it
func processStationRow(row []string, repo *database.StationRepository, result *ImportResult) error {
	cell := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	dayNumber, err := strconv.Atoi(cell(0))
	if err != nil || dayNumber < 1 {
		return fmt.Errorf("invalid day number %q", cell(0))
	}

	theme := cell(1)
	if theme == "" {
		return fmt.Errorf("theme cannot be empty")
	}

	station := models.DailyContent{
		ID:         fmt.Sprintf("day-%d", dayNumber),
		DayNumber:  dayNumber,
		Theme:      theme,
		Quote:      cell(2),
		Koan:       cell(3),
		Commentary: cell(4),
		FormalPractice: models.FormalPractice{
			Title:        cell(5),
			Duration:     cell(6),
			Instructions: splitList(cell(7)),
		},
		Meditation: models.Meditation{
			Title:    cell(8),
			Guidance: cell(9),
		},
		Wisdom: models.Wisdom{
			Advice:     cell(10),
			FableTitle: cell(11),
			Fable:      cell(12),
		},
		ReminderPractice: cell(13),
		Bridge: models.Bridge{
			Chapter: cell(14),
			Topics:  splitList(cell(15)),
		},
	}

	existed, err := repo.Exists(dayNumber)
	if err != nil {
		return fmt.Errorf("failed to check station for day %d: %v", dayNumber, err)
	}

	if err := repo.Upsert(station); err != nil {
		return err
	}

	if existed {
		result.Updated++
	} else {
		result.Created++
	}
	return nil
}

// splitList parses a "|"-separated cell into its entries
func splitList(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, "|")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
