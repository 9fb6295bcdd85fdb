package directory

import (
	"github.com/jusunglee/precinct-go/internal/models"
	"github.com/jusunglee/precinct-go/internal/report"
	"github.com/jusunglee/precinct-go/internal/sites"
)

// Client defines the interface for accessing the station directory
// Abstracts the dataset source behind a common interface
type Client interface {
	Site() sites.Site

	Stations() []models.Station
	Count() int
	Station(id string) (models.Station, bool)
	Search(query string) []models.Station

	Validate(form report.Form) report.Result
}

// Config holds configuration for the directory client
// StationsFile, when set, replaces the profile's built-in dataset
type Config struct {
	Site         string
	StationsFile string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Site: sites.DefaultKey,
	}
}
