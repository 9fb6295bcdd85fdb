// Package views maps station data to page view models.
//
// Builders are pure: they take the site profile, the stations and the chrome
// state and return structs that the templates only print. Fields typed
// template.HTML are assembled here from format.EscapeHTML-ed pieces; plain
// string fields are escaped by html/template when rendered.
package views

import (
	"html/template"
	"strings"

	"github.com/jusunglee/precinct-go/internal/chrome"
	"github.com/jusunglee/precinct-go/internal/format"
	"github.com/jusunglee/precinct-go/internal/models"
	"github.com/jusunglee/precinct-go/internal/report"
	"github.com/jusunglee/precinct-go/internal/sites"
)

// NotFoundMessage is the flash shown after an unknown station redirect
const NotFoundMessage = "Station not found. Showing station list."

// Page carries what every layout needs
type Page struct {
	Title     template.HTML
	Agency    string
	ShortName string
	City      string
	Chrome    chrome.Chrome
}

// StationCard is one entry in the directory grid
type StationCard struct {
	ID          string
	DetailHref  template.URL
	TelHref     template.URL
	CallLabel   template.HTML
	Name        template.HTML
	Address     template.HTML
	Area        template.HTML
	PostcodeTag template.HTML
}

// DirectoryPage is the station list with its search box
type DirectoryPage struct {
	Page
	Query string
	Cards []StationCard
	Count string
}

// DetailPage is a single station
type DetailPage struct {
	Page
	StationID     string
	Name          template.HTML
	Meta          template.HTML
	Address       template.HTML
	Phone         template.HTML
	PhoneHref     template.URL
	Email         template.HTML
	EmailHref     template.URL
	CallHref      template.URL
	DirectionsURL template.URL
	Hours         template.HTML
	MapURL        template.URL
	ReportHref    template.URL
}

// StationOption is an entry in the report form's station picker
type StationOption struct {
	ID       string
	Name     template.HTML
	Selected bool
}

// ReportPage is the demo incident-report form
type ReportPage struct {
	Page
	Form     report.Form
	Result   report.Result
	Stations []StationOption
}

// HasStatus reports whether a submit has happened
func (p ReportPage) HasStatus() bool {
	return p.Result.Status == report.Validated
}

// StatusStyle is the inline style of the status line
func (p ReportPage) StatusStyle() template.CSS {
	if c := p.Result.Tone.Color(); c != "" {
		return template.CSS("color: " + c)
	}
	return ""
}

func newPage(site sites.Site, title string, c chrome.Chrome) Page {
	return Page{
		Title:     template.HTML(format.EscapeHTML(title)),
		Agency:    site.Agency,
		ShortName: site.ShortName,
		City:      site.City,
		Chrome:    c,
	}
}

// DetailHref is the detail page link for a station id
func DetailHref(id string) string {
	return "/station?id=" + format.EncodeURIComponent(id)
}

// NotFoundRedirect is where an unknown station id sends the browser
func NotFoundRedirect() string {
	return "/?msg=" + format.EncodeURIComponent(NotFoundMessage) + "#stations"
}

// BuildCards renders the grid entries for stations, in order
func BuildCards(site sites.Site, stations []models.Station) []StationCard {
	cards := make([]StationCard, 0, len(stations))
	for _, s := range stations {
		addr := strings.Join(s.AddressLines[:], ", ") + " " + s.Postcode
		cards = append(cards, StationCard{
			ID:          s.ID,
			DetailHref:  template.URL(DetailHref(s.ID)),
			TelHref:     template.URL(format.TelHref(s.Phone)),
			CallLabel:   template.HTML(format.EscapeHTML("Call " + s.Name)),
			Name:        template.HTML(format.EscapeHTML(s.Name)),
			Address:     template.HTML(format.EscapeHTML(addr)),
			Area:        template.HTML(format.EscapeHTML(s.Area)),
			PostcodeTag: template.HTML(format.EscapeHTML(site.PostcodeLabel + " " + s.Postcode)),
		})
	}
	return cards
}

// BuildDirectory builds the directory page for an already filtered list
func BuildDirectory(site sites.Site, stations []models.Station, query string, c chrome.Chrome) DirectoryPage {
	return DirectoryPage{
		Page:  newPage(site, site.ShortName+" | Station Directory", c),
		Query: query,
		Cards: BuildCards(site, stations),
		Count: format.CountLabel(len(stations)),
	}
}

// BuildDetail builds the detail page for one station
func BuildDetail(site sites.Site, s models.Station, c chrome.Chrome) DetailPage {
	lat, lon := s.Location.Lat, s.Location.Lon

	address := "<strong>" + format.EscapeHTML(s.Name) + "</strong><br />" +
		format.EscapeHTML(s.AddressLines[0]) + "<br />" +
		format.EscapeHTML(s.AddressLines[1]) + "<br />" +
		"<strong>" + format.EscapeHTML(site.PostcodeLabel) + ":</strong> " + format.EscapeHTML(s.Postcode)

	var hours strings.Builder
	for _, h := range s.Hours {
		hours.WriteString("<li><strong>" + format.EscapeHTML(h.Day) + ":</strong> " + format.EscapeHTML(h.Hours) + "</li>")
	}

	return DetailPage{
		Page:          newPage(site, site.ShortName+" | "+s.Name, c),
		StationID:     s.ID,
		Name:          template.HTML(format.EscapeHTML(s.Name)),
		Meta:          template.HTML(format.EscapeHTML(s.Area + " · " + site.City + " " + s.Postcode)),
		Address:       template.HTML(address),
		Phone:         template.HTML(format.EscapeHTML(s.Phone)),
		PhoneHref:     template.URL(format.TelHref(s.Phone)),
		Email:         template.HTML(format.EscapeHTML(s.Email)),
		EmailHref:     template.URL(format.MailtoHref(s.Email)),
		CallHref:      template.URL(format.TelHref(s.Phone)),
		DirectionsURL: template.URL(format.DirectionsURL(lat, lon)),
		Hours:         template.HTML(hours.String()),
		MapURL:        template.URL(format.MapEmbedURL(lat, lon)),
		ReportHref:    template.URL("/report?station=" + format.EncodeURIComponent(s.ID)),
	}
}

// BuildReport builds the report form page. result is the zero Result
// before any submit.
func BuildReport(site sites.Site, stations []models.Station, result report.Result, form report.Form, c chrome.Chrome) ReportPage {
	options := make([]StationOption, 0, len(stations))
	for _, s := range stations {
		options = append(options, StationOption{ID: s.ID, Name: template.HTML(format.EscapeHTML(s.Name)), Selected: s.ID == form.Station})
	}

	return ReportPage{
		Page:     newPage(site, site.ShortName+" | Report an Incident", c),
		Form:     form,
		Result:   result,
		Stations: options,
	}
}
