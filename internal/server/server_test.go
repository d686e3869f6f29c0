package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	gocmp "github.com/google/go-cmp/cmp"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/folio/internal/interact"
	"github.com/ziadkadry99/folio/internal/loader"
	"github.com/ziadkadry99/folio/internal/pages"
	"github.com/ziadkadry99/folio/internal/render"
)

const siteDir = "../../testdata/site"

func testServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	if cfg.Env.Fetcher == nil {
		cfg.Env.Fetcher = loader.NewFSFetcher(siteDir)
	}
	cfg.Env.Now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	return New(cfg, nil, nil)
}

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", target, nil))
	return w
}

func recordIDs(resp pageResponse) []string {
	out := make([]string, len(resp.Records))
	for i, e := range resp.Records {
		out[i] = e.ID
	}
	return out
}

func hasNoResults(tree *render.Node) bool {
	for _, n := range tree.FindAll(render.KindPlaceholder) {
		if render.IsNoResults(n) {
			return true
		}
	}
	return false
}

func TestHealthCheck(t *testing.T) {
	w := get(t, testServer(t, Config{}), "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := testServer(t, Config{AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestListPages(t *testing.T) {
	w := get(t, testServer(t, Config{}), "/api/pages")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var infos []pageInfo
	if err := json.Unmarshal(w.Body.Bytes(), &infos); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(infos) != len(pages.Names()) {
		t.Fatalf("pages = %d", len(infos))
	}
	for _, info := range infos {
		if info.Error != "" {
			t.Errorf("%s: %s", info.Name, info.Error)
		}
		if info.Name == "conferences" {
			if diff := gocmp.Diff([]string{"all", "conference", "workshop", "open", "upcoming"}, info.Filters); diff != "" {
				t.Errorf("filters mismatch (-want +got):\n%s", diff)
			}
		}
	}
}

func TestPageQuery(t *testing.T) {
	srv := testServer(t, Config{})

	w := get(t, srv, "/api/pages/conferences?filter=open&tag=AI")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp pageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := gocmp.Diff([]string{"acl", "neurips"}, recordIDs(resp)); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	if resp.State.Primary != "open" || resp.State.Visible != 2 || resp.State.Total != 4 {
		t.Errorf("state = %+v", resp.State)
	}
	if resp.Tree == nil || resp.Tree.Find("conferences-container") == nil {
		t.Error("tree missing container")
	}

	w = get(t, srv, "/api/pages/projects?q=nothing-matches")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Records) != 0 || !hasNoResults(resp.Tree) {
		t.Errorf("expected no-results placeholder, got %d records", len(resp.Records))
	}
}

func TestPageErrors(t *testing.T) {
	srv := testServer(t, Config{})
	tests := []struct {
		target string
		status int
	}{
		{"/api/pages/blog", http.StatusNotFound},
		{"/api/pages/conferences?filter=keynote", http.StatusBadRequest},
		{"/api/pages/home?q=jane", http.StatusBadRequest},
	}
	for _, tt := range tests {
		if w := get(t, srv, tt.target); w.Code != tt.status {
			t.Errorf("GET %s = %d, want %d", tt.target, w.Code, tt.status)
		}
	}

	broken := testServer(t, Config{Env: pages.Env{Fetcher: loader.NewFSFetcher(t.TempDir())}})
	if w := get(t, broken, "/api/pages/students"); w.Code != http.StatusBadGateway {
		t.Errorf("missing data = %d, want 502", w.Code)
	}
	w := get(t, broken, "/api/pages/students/fragment")
	if w.Code != http.StatusBadGateway || !strings.Contains(w.Body.String(), "placeholder-error") {
		t.Errorf("fragment on failure = %d %s", w.Code, w.Body.String())
	}
}

func TestFragment(t *testing.T) {
	w := get(t, testServer(t, Config{}), "/api/pages/teaching/fragment?filter=postgraduate")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Find("#courses-container article.card").Length(); got != 1 {
		t.Errorf("cards = %d, want 1", got)
	}
	if got := doc.Find(`.badge[data-value="postgraduate"]`).HasClass("active"); !got {
		t.Error("postgraduate chip should be active")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := testServer(t, Config{})
	get(t, srv, "/api/pages/conferences?filter=workshop")
	w := get(t, srv, "/metrics")
	if !strings.Contains(w.Body.String(), `folio_interaction_events_total{page="conferences",result="ok",type="filter"} 1`) {
		t.Errorf("metrics missing event counter:\n%s", w.Body.String())
	}
}

func TestStaticSite(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>home</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	w := get(t, testServer(t, Config{SiteDir: dir}), "/index.html")
	if w.Code != http.StatusOK && w.Code != http.StatusMovedPermanently {
		t.Fatalf("expected static file, got %d", w.Code)
	}
	w = get(t, testServer(t, Config{SiteDir: dir}), "/")
	if !strings.Contains(w.Body.String(), "home") {
		t.Errorf("root = %q", w.Body.String())
	}
}

func TestLiveSession(t *testing.T) {
	ts := httptest.NewServer(testServer(t, Config{}).Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/pages/conferences/live"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}

	var first liveMessage
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("read: %v", err)
	}
	if first.Session == "" || first.State == nil || first.State.Visible != 4 {
		t.Fatalf("initial message = %+v", first)
	}

	send := func(ev interact.Event) liveMessage {
		t.Helper()
		if err := conn.WriteJSON(ev); err != nil {
			t.Fatalf("write: %v", err)
		}
		var msg liveMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		return msg
	}

	msg := send(interact.Event{Type: interact.EventFilter, Value: "workshop"})
	if msg.Session != first.Session || msg.State.Visible != 1 || msg.Records[0].ID != "cvpr-ws" {
		t.Errorf("after filter = %+v", msg)
	}

	msg = send(interact.Event{Type: interact.EventFilter, Value: "keynote"})
	if msg.Error == "" || msg.State != nil {
		t.Errorf("unknown filter should report an error, got %+v", msg)
	}

	// The failed event left the state untouched and the session open.
	msg = send(interact.Event{Type: interact.EventSearch, Value: "document"})
	if msg.Error != "" || msg.State.Primary != "workshop" || msg.State.Visible != 1 {
		t.Errorf("after search = %+v", msg)
	}

	msg = send(interact.Event{Type: interact.EventReset})
	if msg.State.Visible != 4 {
		t.Errorf("after reset visible = %d", msg.State.Visible)
	}
}

func TestLiveUnknownPage(t *testing.T) {
	ts := httptest.NewServer(testServer(t, Config{}).Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/pages/blog/live"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		t.Fatal("expected dial to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Errorf("response = %v", resp)
	}
}
