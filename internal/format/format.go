// Package format turns station data into markup-safe text and outbound links.
package format

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// mapDelta is the half-width, in degrees, of the embedded map's bounding box.
const mapDelta = 0.01

const (
	osmEmbedBase      = "https://www.openstreetmap.org/export/embed.html"
	osmDirectionsBase = "https://www.openstreetmap.org/directions"
)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes s for interpolation into markup.
// It must wrap every data-derived string placed into rendered HTML.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

// DialTarget strips everything from phone except digits and '+'.
func DialTarget(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TelHref returns a tel: dial link for phone.
func TelHref(phone string) string {
	return "tel:" + DialTarget(phone)
}

// MailtoHref returns a mailto: link for email.
func MailtoHref(email string) string {
	return "mailto:" + email
}

// Coord formats a coordinate the way a browser prints a number: the
// shortest decimal that round-trips, exponent form below 1e-6 or from 1e21
// up (9.999999999940612e-8, 1e+21), and negative zero as "0".
func Coord(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	if abs := math.Abs(v); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	exp, _ := strconv.Atoi(s[i+1:])
	sign := "+"
	if exp < 0 {
		sign = "-"
		exp = -exp
	}
	return s[:i] + "e" + sign + strconv.Itoa(exp)
}

// MapEmbedURL builds an OpenStreetMap embed URL with a ±0.01° bounding box
// around (lat, lon) and a marker on the exact point.
func MapEmbedURL(lat, lon float64) string {
	left := lon - mapDelta
	right := lon + mapDelta
	bottom := lat - mapDelta
	top := lat + mapDelta

	bbox := strings.Join([]string{Coord(left), Coord(bottom), Coord(right), Coord(top)}, "%2C")
	return osmEmbedBase + "?bbox=" + bbox + "&layer=mapnik&marker=" + Coord(lat) + "%2C" + Coord(lon)
}

// DirectionsURL builds an OpenStreetMap directions URL targeting (lat, lon).
func DirectionsURL(lat, lon float64) string {
	return osmDirectionsBase + "?to=" + Coord(lat) + "%2C" + Coord(lon)
}

// uriMarkReplacer undoes url.QueryEscape for the marks a browser's
// encodeURIComponent leaves alone, and writes spaces as %20.
var uriMarkReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s for use as a query value,
// escaping the same characters as a browser's encodeURIComponent.
func EncodeURIComponent(s string) string {
	return uriMarkReplacer.Replace(url.QueryEscape(s))
}

// CountLabel renders the directory's result count.
func CountLabel(n int) string {
	if n == 1 {
		return "1 station shown."
	}
	return strconv.Itoa(n) + " stations shown."
}
