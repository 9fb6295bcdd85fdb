package models

import (
	"strings"

	"github.com/jusunglee/precinct-go/internal/format"
)

// Location represents a geographic coordinate
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// OpeningHours is one row of a station's opening times, e.g. "Mon–Fri" / "08:00 AM – 06:00 PM"
type OpeningHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// Station represents a single directory entry
type Station struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Area         string         `json:"area"`
	Postcode     string         `json:"postcode"`
	AddressLines [2]string      `json:"address_lines"`
	Phone        string         `json:"phone"`
	Email        string         `json:"email"`
	Location     Location       `json:"location"`
	Hours        []OpeningHours `json:"hours"`
}

// StationResponse is the API response format for a station
type StationResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Area          string         `json:"area"`
	Postcode      string         `json:"postcode"`
	AddressLines  []string       `json:"address_lines"`
	Phone         string         `json:"phone"`
	TelHref       string         `json:"tel_href"`
	Email         string         `json:"email"`
	Location      [2]float64     `json:"location"`
	Hours         []OpeningHours `json:"hours"`
	MapURL        string         `json:"map_url"`
	DirectionsURL string         `json:"directions_url"`
}

// SearchText is the text matched by directory filtering:
// name, area, postcode and both address lines, space separated.
func (s *Station) SearchText() string {
	parts := []string{s.Name, s.Area, s.Postcode, s.AddressLines[0], s.AddressLines[1]}
	return strings.Join(parts, " ")
}

// ConvertToResponse converts a Station to StationResponse format
func (s *Station) ConvertToResponse() StationResponse {
	hours := make([]OpeningHours, len(s.Hours))
	copy(hours, s.Hours)

	return StationResponse{
		ID:            s.ID,
		Name:          s.Name,
		Area:          s.Area,
		Postcode:      s.Postcode,
		AddressLines:  []string{s.AddressLines[0], s.AddressLines[1]},
		Phone:         s.Phone,
		TelHref:       format.TelHref(s.Phone),
		Email:         s.Email,
		Location:      [2]float64{s.Location.Lat, s.Location.Lon},
		Hours:         hours,
		MapURL:        format.MapEmbedURL(s.Location.Lat, s.Location.Lon),
		DirectionsURL: format.DirectionsURL(s.Location.Lat, s.Location.Lon),
	}
}
