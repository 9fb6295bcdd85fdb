package directory

import (
	"fmt"

	"github.com/jusunglee/precinct-go/internal/models"
	"github.com/jusunglee/precinct-go/internal/report"
	"github.com/jusunglee/precinct-go/internal/sites"
	"github.com/jusunglee/precinct-go/internal/store"
)

// LocalClient implements the Client interface over an in-memory dataset
type LocalClient struct {
	site  sites.Site
	store *store.Store
}

// NewLocal creates a new local directory client
// The dataset is loaded and validated once; it is read-only afterwards
func NewLocal(config Config) (*LocalClient, error) {
	key := config.Site
	if key == "" {
		key = sites.DefaultKey
	}

	site, err := sites.Lookup(key)
	if err != nil {
		return nil, err
	}

	if config.StationsFile != "" {
		stations, err := sites.LoadStationsFile(config.StationsFile)
		if err != nil {
			return nil, err
		}
		site.Stations = stations
	}

	s, err := store.NewStore(site.Stations)
	if err != nil {
		return nil, fmt.Errorf("site %s: %w", site.Key, err)
	}

	return &LocalClient{site: site, store: s}, nil
}

func (c *LocalClient) Site() sites.Site {
	return c.site
}

func (c *LocalClient) Stations() []models.Station {
	return c.store.Stations()
}

func (c *LocalClient) Count() int {
	return c.store.Len()
}

func (c *LocalClient) Station(id string) (models.Station, bool) {
	return c.store.Station(id)
}

func (c *LocalClient) Search(query string) []models.Station {
	return c.store.Filter(query)
}

// Validate checks a report form; unknown station ids are dropped
func (c *LocalClient) Validate(form report.Form) report.Result {
	if _, ok := c.store.Station(form.Station); !ok {
		form.Station = ""
	}
	return report.Validate(form, c.site.SubmitMessage())
}
