// Package sites holds the site profiles the directory can be served as.
// Each profile carries the agency copy and its demo station dataset.
package sites

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/jusunglee/precinct-go/internal/models"
)

// ErrUnknownSite is returned by Lookup for keys with no profile
var ErrUnknownSite = errors.New("unknown site")

// DefaultKey is the profile served when none is configured
const DefaultKey = "nvcpd"

// Site is one parameterization of the directory template
type Site struct {
	Key           string
	Agency        string
	ShortName     string
	City          string
	PostcodeLabel string
	BannerText    string
	Stations      []models.Station
}

// SubmitMessage is shown after a report passes validation
func (s Site) SubmitMessage() string {
	return "Submitted (demo). In production, this would securely send to " + s.ShortName + "."
}

var profiles = map[string]func() Site{
	"nvcpd": nowhereVille,
	"avpd":  anyvale,
}

// Lookup returns the built-in profile for key
func Lookup(key string) (Site, error) {
	build, ok := profiles[key]
	if !ok {
		return Site{}, fmt.Errorf("%w: %q", ErrUnknownSite, key)
	}
	return build(), nil
}

// Keys lists the built-in profile keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(profiles))
	for k := range profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadStationsFile reads a JSON array of station records
func LoadStationsFile(path string) ([]models.Station, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stations file: %w", err)
	}

	var stations []models.Station
	if err := json.Unmarshal(data, &stations); err != nil {
		return nil, fmt.Errorf("parse stations file %s: %w", path, err)
	}
	return stations, nil
}
