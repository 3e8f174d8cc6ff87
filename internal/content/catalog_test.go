package content

import (
	"testing"

	"github.com/example/adytum/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForDayReturnsMatchingStation(t *testing.T) {
	catalog := NewCatalog()

	station := catalog.ForDay(2)

	assert.Equal(t, 2, station.DayNumber)
	assert.Equal(t, "El Campo de Posibilidades", station.Theme)
}

func TestForDayFallsBackToFirstStation(t *testing.T) {
	catalog := NewCatalog()

	// Days beyond the catalog are served with the first station
	station := catalog.ForDay(99)
	assert.Equal(t, 1, station.DayNumber)

	station = catalog.ForDay(0)
	assert.Equal(t, 1, station.DayNumber)
}

func TestNewCatalogWithMergesAndOverrides(t *testing.T) {
	extra := []models.DailyContent{
		{ID: "day-2", DayNumber: 2, Theme: "Tema Revisado"},
		{ID: "day-4", DayNumber: 4, Theme: "La Cuarta Estación"},
	}

	catalog := NewCatalogWith(extra)

	require.Equal(t, 4, catalog.Len())
	assert.Equal(t, "Tema Revisado", catalog.ForDay(2).Theme)
	assert.Equal(t, "La Cuarta Estación", catalog.ForDay(4).Theme)
	// Built-in stations without an override survive the merge
	assert.Equal(t, "El Océano y las Olas", catalog.ForDay(3).Theme)
}

func TestStationsAreOrderedByDay(t *testing.T) {
	extra := []models.DailyContent{
		{ID: "day-7", DayNumber: 7, Theme: "Siete"},
		{ID: "day-5", DayNumber: 5, Theme: "Cinco"},
	}

	stations := NewCatalogWith(extra).Stations()

	previous := 0
	for _, s := range stations {
		assert.Greater(t, s.DayNumber, previous)
		previous = s.DayNumber
	}
}

func TestChapterForBridge(t *testing.T) {
	chapter, ok := ChapterForBridge("Capítulo 1.1 y 1.2")
	require.True(t, ok)
	assert.Equal(t, "cap-1", chapter.ID)

	chapter, ok = ChapterForBridge("Capítulo 2.3")
	require.True(t, ok)
	assert.Equal(t, "cap-2", chapter.ID)

	_, ok = ChapterForBridge("Capítulo 9")
	assert.False(t, ok)
}

func TestTotalSections(t *testing.T) {
	assert.Equal(t, 6, TotalSections())
}
