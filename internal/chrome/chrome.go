// Package chrome holds the page furniture shared by every view:
// the mobile navigation toggle, the site banner, the flash region and the footer year.
package chrome

import (
	"net/http"
	"net/url"
	"time"
)

// menuParam carries the expanded navigation state for clients without script
const menuParam = "menu"

// BannerCookie stores whether the site banner is hidden
const BannerCookie = "site_banner"

// Nav is the mobile navigation panel state
type Nav struct {
	Expanded bool
}

// Toggle flips the panel open or closed
func (n *Nav) Toggle() {
	n.Expanded = !n.Expanded
}

// Collapse closes the panel, as clicking any link inside it does
func (n *Nav) Collapse() {
	n.Expanded = false
}

// AriaExpanded is the toggle button's aria-expanded value
func (n Nav) AriaExpanded() string {
	if n.Expanded {
		return "true"
	}
	return "false"
}

// Hidden reports whether the panel carries the hidden attribute
func (n Nav) Hidden() bool {
	return !n.Expanded
}

// Banner is the dismissible site alert
type Banner struct {
	Text    string
	Visible bool
}

// Dismiss hides the banner
func (b *Banner) Dismiss() {
	b.Visible = false
}

// Toggle shows a hidden banner or hides a visible one
func (b *Banner) Toggle() {
	b.Visible = !b.Visible
}

// Hidden reports whether the banner carries the hidden attribute
func (b Banner) Hidden() bool {
	return !b.Visible
}

// Cookie returns the cookie that persists the banner state
func (b Banner) Cookie() *http.Cookie {
	value := "shown"
	if !b.Visible {
		value = "hidden"
	}
	return &http.Cookie{
		Name:     BannerCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Chrome is the per-request furniture state
type Chrome struct {
	Nav    Nav
	Banner Banner
	Flash  string
	Year   int
	// Here is the current path and query without the menu parameter
	Here string
}

// MenuHref is the menu button's target: this page with the panel flipped
func (c Chrome) MenuHref() string {
	next := c.Nav
	next.Toggle()
	return withNav(c.Here, next)
}

// NavHref is the target of a link inside the panel, which collapses it
func (c Chrome) NavHref(target string) string {
	next := c.Nav
	next.Collapse()
	return withNav(target, next)
}

func withNav(target string, nav Nav) string {
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	q := u.Query()
	q.Del(menuParam)
	if nav.Expanded {
		q.Set(menuParam, "open")
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// HasFlash reports whether the flash region should be shown
func (c Chrome) HasFlash() bool {
	return c.Flash != ""
}

// FromRequest derives the chrome state: msg becomes the flash message,
// menu=open expands the navigation and the banner cookie decides visibility.
func FromRequest(r *http.Request, bannerText string, now time.Time) Chrome {
	c := FromQuery(r.URL.Query(), bannerText, now)
	c.Here = withNav(r.URL.RequestURI(), Nav{})
	if cookie, err := r.Cookie(BannerCookie); err == nil && cookie.Value == "hidden" {
		c.Banner.Dismiss()
	}
	return c
}

// FromQuery derives the chrome state from query parameters alone
func FromQuery(q url.Values, bannerText string, now time.Time) Chrome {
	return Chrome{
		Nav:    Nav{Expanded: q.Get(menuParam) == "open"},
		Banner: Banner{Text: bannerText, Visible: bannerText != ""},
		Flash:  q.Get("msg"),
		Year:   now.Year(),
		Here:   "/",
	}
}
