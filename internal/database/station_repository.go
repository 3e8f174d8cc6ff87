package database

import (
	"encoding/json"
	"fmt"

	"github.com/example/adytum/pkg/models"
)

// StationRepository handles imported course stations
type StationRepository struct{}

// NewStationRepository creates a new repository instance
func NewStationRepository() *StationRepository {
	return &StationRepository{}
}

// Upsert stores a station under its day number, replacing any previous version
func (r *StationRepository) Upsert(content models.DailyContent) error {
	data, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal station for day %d: %v", content.DayNumber, err)
	}

	var query string
	if Type() == "sqlite" {
		query = `
			INSERT OR REPLACE INTO stations (day_number, content)
			VALUES ($1, $2)
		`
	} else {
		query = `
			INSERT INTO stations (day_number, content) VALUES ($1, $2)
			ON CONFLICT (day_number) DO UPDATE SET content = EXCLUDED.content
		`
	}
	if _, err := DB.Exec(query, content.DayNumber, string(data)); err != nil {
		return fmt.Errorf("failed to store station for day %d: %v", content.DayNumber, err)
	}
	return nil
}

// Exists reports whether a station is stored for the given day
func (r *StationRepository) Exists(dayNumber int) (bool, error) {
	var count int
	err := DB.Get(&count, "SELECT COUNT(*) FROM stations WHERE day_number = $1", dayNumber)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAll returns every imported station ordered by day number
func (r *StationRepository) GetAll() ([]models.DailyContent, error) {
	var rows []string
	err := DB.Select(&rows, "SELECT content FROM stations ORDER BY day_number ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to load stations: %v", err)
	}

	stations := make([]models.DailyContent, 0, len(rows))
	for _, raw := range rows {
		var content models.DailyContent
		if err := json.Unmarshal([]byte(raw), &content); err != nil {
			return nil, fmt.Errorf("failed to parse stored station: %v", err)
		}
		stations = append(stations, content)
	}
	return stations, nil
}
