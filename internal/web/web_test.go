package web_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/puppybowl-roster/internal/factory"
	"github.com/mcoot/puppybowl-roster/internal/model"
	"github.com/mcoot/puppybowl-roster/internal/web"
)

// webTestServer drives the web router against an in-process Players API
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	cookies *cookieJar
}

// newWebTestServer creates a new test server with all dependencies wired
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := factory.NewTestApp()
	t.Cleanup(app.Close)

	router := web.NewRouter(web.RouterConfig{
		Logger:     logger,
		Controller: app.Controller,
		Hub:        app.Hub,
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	ts.cookies.extract(rr)
	return rr
}

func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil, false)
}

func (ts *webTestServer) getHTMX(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil, true)
}

func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form, false)
}

func (ts *webTestServer) postHTMX(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form, true)
}

// followRedirect follows a Location header
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "Expected Location header for redirect")
	return ts.get(location)
}

// seedPlayers stores players directly in the Players API's storage, in order
func (ts *webTestServer) seedPlayers(names ...string) []model.PlayerID {
	ts.t.Helper()
	ids := make([]model.PlayerID, len(names))
	for i, name := range names {
		p := &model.Player{
			Name:     name,
			Breed:    "Breed of " + name,
			Status:   model.StatusBench,
			ImageURL: "http://img/" + strings.ToLower(name) + ".png",
		}
		require.NoError(ts.t, ts.app.Storage.CreatePlayer(ts.t.Context(), factory.TestCohort, p))
		ids[i] = p.ID
	}
	ts.app.Requests.Reset()
	return ids
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{cookies: make(map[string]*http.Cookie)}
}

func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// cardNames returns the names on the roster cards, in page order
func cardNames(doc *goquery.Document) []string {
	var names []string
	doc.Find("#all-players-container .player .player-name").Each(func(_ int, s *goquery.Selection) {
		names = append(names, s.Text())
	})
	return names
}

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertNotContainsElement asserts that the document does not contain an element matching the selector
func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if n := doc.Find(selector).Length(); n > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, n)
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}
