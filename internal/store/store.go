package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jusunglee/precinct-go/internal/models"
)

var (
	// ErrEmptyID is returned when a station has no identifier
	ErrEmptyID = errors.New("station id is empty")
	// ErrDuplicateID is returned when two stations share an identifier
	ErrDuplicateID = errors.New("duplicate station id")
)

// Store holds the station dataset. It is built once and never mutated,
// so it is safe to share between request handlers without locking.
type Store struct {
	stations []models.Station
	byID     map[string]int
	haystack []string
}

// NewStore creates a store from stations, keeping their order
func NewStore(stations []models.Station) (*Store, error) {
	s := &Store{
		stations: make([]models.Station, len(stations)),
		byID:     make(map[string]int, len(stations)),
		haystack: make([]string, len(stations)),
	}

	for i, station := range stations {
		if station.ID == "" {
			return nil, fmt.Errorf("station %d (%q): %w", i, station.Name, ErrEmptyID)
		}
		if _, ok := s.byID[station.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, station.ID)
		}

		s.stations[i] = clone(station)
		s.byID[station.ID] = i
		s.haystack[i] = strings.ToLower(station.SearchText())
	}

	return s, nil
}

// Len returns the number of stations
func (s *Store) Len() int {
	return len(s.stations)
}

// Stations returns all stations in dataset order
func (s *Store) Stations() []models.Station {
	result := make([]models.Station, len(s.stations))
	for i := range s.stations {
		result[i] = clone(s.stations[i])
	}
	return result
}

// Station returns the station with the given id
func (s *Store) Station(id string) (models.Station, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Station{}, false
	}
	return clone(s.stations[i]), true
}

// Filter returns the stations whose search text contains query,
// ignoring case and surrounding whitespace. An empty query matches everything.
func (s *Store) Filter(query string) []models.Station {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.Stations()
	}

	result := make([]models.Station, 0, len(s.stations))
	for i, hay := range s.haystack {
		if strings.Contains(hay, q) {
			result = append(result, clone(s.stations[i]))
		}
	}
	return result
}

// clone copies station so callers cannot reach the store's hours slice
func clone(station models.Station) models.Station {
	station.Hours = append([]models.OpeningHours(nil), station.Hours...)
	return station
}
