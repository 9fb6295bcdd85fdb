package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/jusunglee/precinct-go/internal/chrome"
	"github.com/jusunglee/precinct-go/internal/models"
	"github.com/jusunglee/precinct-go/internal/report"
	"github.com/jusunglee/precinct-go/internal/sites"
	"github.com/jusunglee/precinct-go/internal/views"
	"github.com/jusunglee/precinct-go/pkg/directory"
)

// MockClient implements directory.Client for testing
type MockClient struct {
	site     sites.Site
	stations []models.Station
}

func (m *MockClient) Site() sites.Site { return m.site }

func (m *MockClient) Stations() []models.Station { return m.stations }

func (m *MockClient) Count() int { return len(m.stations) }

func (m *MockClient) Station(id string) (models.Station, bool) {
	for _, s := range m.stations {
		if s.ID == id {
			return s, true
		}
	}
	return models.Station{}, false
}

func (m *MockClient) Search(query string) []models.Station { return m.stations }

func (m *MockClient) Validate(form report.Form) report.Result {
	return report.Validate(form, m.site.SubmitMessage())
}

func newRouter(t *testing.T, client directory.Client) *mux.Router {
	t.Helper()
	renderer, err := views.NewRenderer()
	if err != nil {
		t.Fatalf("Failed to create renderer: %v", err)
	}

	h := NewHandler(client, renderer, zap.NewNop().Sugar())
	h.now = func() time.Time { return time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC) }

	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func localRouter(t *testing.T) *mux.Router {
	t.Helper()
	client, err := directory.NewLocal(directory.DefaultConfig())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return newRouter(t, client)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestDirectoryPage(t *testing.T) {
	r := localRouter(t)

	for _, path := range []string{"/", "/index.html"} {
		rec := serve(r, httptest.NewRequest("GET", path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
		body := rec.Body.String()
		for _, name := range []string{"NVCPD Headquarters", "North Precinct", "South Precinct", "3 stations shown."} {
			if !strings.Contains(body, name) {
				t.Errorf("%s: expected %q in body", path, name)
			}
		}
		if !strings.Contains(body, `<div id="flash" class="flash" role="alert" hidden>`) {
			t.Errorf("%s: expected hidden flash without msg", path)
		}
	}

	rec := serve(r, httptest.NewRequest("GET", "/?q=north", nil))
	body := rec.Body.String()
	if !strings.Contains(body, "1 station shown.") || strings.Contains(body, "South Precinct") {
		t.Error("Expected query to filter the directory")
	}
}

func TestFlashMessage(t *testing.T) {
	r := localRouter(t)

	rec := serve(r, httptest.NewRequest("GET", "/?msg="+url.QueryEscape("Hello there"), nil))
	if !strings.Contains(rec.Body.String(), `role="alert">Hello there</div>`) {
		t.Error("Expected flash message to be shown")
	}
}

func TestResultsPartial(t *testing.T) {
	r := localRouter(t)

	rec := serve(r, httptest.NewRequest("GET", "/partials/stations?q=00024", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "South Precinct") || !strings.Contains(body, "1 station shown.") {
		t.Errorf("Unexpected fragment: %s", body)
	}
	if strings.Contains(body, "<html") {
		t.Error("Fragment should not include the layout")
	}

	rec = serve(r, httptest.NewRequest("GET", "/partials/stations?q=", nil))
	if !strings.Contains(rec.Body.String(), "3 stations shown.") {
		t.Error("Expected empty query to restore the full list")
	}
}

func TestStationPage(t *testing.T) {
	r := localRouter(t)

	t.Run("Found", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest("GET", "/station?id=north", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		for _, want := range []string{
			"<title>NVCPD | North Precinct</title>",
			`<h1 id="stationName">North Precinct</h1>`,
			"north@nvcpd.gov",
			"directions?to=37.8044%2c-122.2712",
			"<li><strong>Sat:</strong> 10:00 AM – 02:00 PM</li>",
		} {
			if !strings.Contains(strings.ToLower(body), strings.ToLower(want)) {
				t.Errorf("Expected %q in body", want)
			}
		}

		if !strings.Contains(body, `href="/station?id=north&amp;menu=open" aria-controls="mobileNav" aria-expanded="false"`) {
			t.Error("Expected menu button to link to the expanded page")
		}

		rec = serve(r, httptest.NewRequest("GET", "/station?id=north&menu=open", nil))
		body = rec.Body.String()
		if !strings.Contains(body, `href="/station?id=north" aria-controls="mobileNav" aria-expanded="true"`) {
			t.Error("Expected expanded menu button to link back to the collapsed page")
		}
		if !strings.Contains(body, `<nav id="mobileNav" class="mobile-nav">`) {
			t.Error("Expected navigation panel to be visible")
		}
		if !strings.Contains(body, `<a href="/report">Report an Incident</a>`) {
			t.Error("Expected panel links to collapse the navigation")
		}

		rec = serve(r, httptest.NewRequest("GET", "/station.html?id=hq", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("Expected station.html alias to work, got %d", rec.Code)
		}
	})

	t.Run("Redirects", func(t *testing.T) {
		for _, target := range []string{"/station", "/station?id=", "/station?id=nope"} {
			rec := serve(r, httptest.NewRequest("GET", target, nil))
			if rec.Code != http.StatusFound {
				t.Errorf("%s: expected 302, got %d", target, rec.Code)
				continue
			}
			loc, err := url.Parse(rec.Header().Get("Location"))
			if err != nil {
				t.Fatalf("Bad Location header: %v", err)
			}
			if loc.Path != "/" || loc.Fragment != "stations" {
				t.Errorf("%s: unexpected redirect %s", target, loc)
			}
			if loc.Query().Get("msg") == "" {
				t.Errorf("%s: expected a flash message", target)
			}
		}
	})
}

func TestStationPageEscapes(t *testing.T) {
	site, _ := sites.Lookup(sites.DefaultKey)
	client := &MockClient{site: site, stations: []models.Station{{
		ID:           "evil",
		Name:         `<script>alert("x")</script>`,
		Area:         "<b>area</b>",
		AddressLines: [2]string{"<img src=x>", "ok"},
		Hours:        []models.OpeningHours{{Day: "<u>", Hours: "'x'"}},
	}}}
	r := newRouter(t, client)

	rec := serve(r, httptest.NewRequest("GET", "/station?id=evil", nil))
	body := rec.Body.String()
	for _, raw := range []string{"<script>alert", "<b>area", "<img src=x>", "<u>"} {
		if strings.Contains(body, raw) {
			t.Errorf("Found unescaped %q in body", raw)
		}
	}
	if !strings.Contains(body, "&lt;img src=x&gt;") {
		t.Error("Expected escaped address line")
	}
	if !strings.Contains(body, "&#039;x&#039;") {
		t.Error("Expected hours escaped with EscapeHTML")
	}
}

func TestReportForm(t *testing.T) {
	r := localRouter(t)

	post := func(values url.Values) string {
		req := httptest.NewRequest("POST", "/report", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := serve(r, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		return rec.Body.String()
	}

	body := post(url.Values{"details": {strings.Repeat("a", 19)}, "date": {"2026-10-01"}, "consent": {"on"}})
	if !strings.Contains(body, report.MsgDetails) {
		t.Error("Expected minimum length message for 19 characters")
	}

	details := strings.Repeat("a", 20)
	body = post(url.Values{"details": {details}, "date": {"2026-10-01"}, "consent": {"on"}, "station": {"north"}})
	if !strings.Contains(body, "Submitted (demo). In production, this would securely send to NVCPD.") {
		t.Error("Expected success message")
	}
	if strings.Contains(body, details) || strings.Contains(body, `value="2026-10-01"`) || strings.Contains(body, " selected>") {
		t.Error("Expected form to be cleared after success")
	}

	rec := serve(r, httptest.NewRequest("GET", "/report?station=south", nil))
	if !strings.Contains(rec.Body.String(), `<option value="south" selected>`) {
		t.Error("Expected station to be preselected")
	}
}

func TestBanner(t *testing.T) {
	r := localRouter(t)

	form := url.Values{"action": {"dismiss"}, "return": {"/report"}}
	req := httptest.NewRequest("POST", "/banner", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(r, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", rec.Code)
	}
	if rec.Header().Get("Location") != "/report" {
		t.Errorf("Unexpected redirect %s", rec.Header().Get("Location"))
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != chrome.BannerCookie || cookies[0].Value != "hidden" {
		t.Fatalf("Unexpected cookies %v", cookies)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])
	body := serve(r, req).Body.String()
	if !strings.Contains(body, `class="site-alert" role="status" hidden>`) {
		t.Error("Expected dismissed banner to render hidden")
	}

	form = url.Values{"action": {"toggle"}, "return": {"//evil.example"}}
	req = httptest.NewRequest("POST", "/banner", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookies[0])
	rec = serve(r, req)
	if rec.Header().Get("Location") != "/" {
		t.Errorf("Expected off-site return to be replaced, got %s", rec.Header().Get("Location"))
	}
	if c := rec.Result().Cookies(); len(c) != 1 || c[0].Value != "shown" {
		t.Errorf("Expected toggle to show banner, got %v", c)
	}

	form = url.Values{"action": {"explode"}}
	req = httptest.NewRequest("POST", "/banner", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if rec := serve(r, req); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown action, got %d", rec.Code)
	}
}

func TestAPI(t *testing.T) {
	r := localRouter(t)

	t.Run("Stations", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest("GET", "/api/stations?q=PRECINCT", nil))
		var resp StationsResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if resp.Count != 2 || resp.Data[0].ID != "north" || resp.Data[1].ID != "south" {
			t.Errorf("Unexpected response %+v", resp)
		}
		if resp.Label != "2 stations shown." {
			t.Errorf("Unexpected label %q", resp.Label)
		}
	})

	t.Run("Station", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest("GET", "/api/stations/hq", nil))
		var resp StationResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if resp.Data.TelHref != "tel:+15550101" {
			t.Errorf("Unexpected tel href %s", resp.Data.TelHref)
		}

		rec = serve(r, httptest.NewRequest("GET", "/api/stations/nope", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", rec.Code)
		}
	})

	t.Run("Report", func(t *testing.T) {
		body := `{"details":"` + strings.Repeat("z", 25) + `","date":"2026-10-01","consent":false}`
		rec := serve(r, httptest.NewRequest("POST", "/api/report", strings.NewReader(body)))
		var resp struct {
			OK      bool   `json:"ok"`
			Message string `json:"message"`
			Tone    string `json:"tone"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if resp.OK || resp.Message != report.MsgConsent || resp.Tone != "error" {
			t.Errorf("Unexpected response %+v", resp)
		}

		rec = serve(r, httptest.NewRequest("POST", "/api/report", strings.NewReader("{")))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", rec.Code)
		}
	})

	t.Run("Health", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest("GET", "/health", nil))
		var resp HealthResponse
		json.NewDecoder(rec.Body).Decode(&resp)
		if resp.Status != "ok" || resp.Site != "nvcpd" || resp.Stations != 3 {
			t.Errorf("Unexpected health %+v", resp)
		}
	})
}

func TestStatic(t *testing.T) {
	r := localRouter(t)

	for _, path := range []string{"/static/app.js", "/static/site.css"} {
		rec := serve(r, httptest.NewRequest("GET", path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestLoggingMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := LoggingMiddleware(zap.NewNop().Sugar())(next)

	rec := serve(h, httptest.NewRequest("GET", "/x", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("Expected status to pass through, got %d", rec.Code)
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("Expected a generated request id")
	}

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set(RequestIDHeader, "abc")
	if got := serve(h, req).Header().Get(RequestIDHeader); got != "abc" {
		t.Errorf("Expected incoming request id to be kept, got %s", got)
	}
}
