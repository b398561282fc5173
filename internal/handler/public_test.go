package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return string(data)
}

func TestHome_FallbackWhenBackendDown(t *testing.T) {
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	resp := app.get(t, "/")
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Agricultural Engineering Associates") {
		t.Error("expected fallback hero title in body")
	}
}

func TestHome_RendersSectionContent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/public/pages/home", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sections": []map[string]any{
				{"id": "s1", "name": "hero", "title": "Custom Hero Title", "content": "Custom subtitle", "order": 0},
			},
		})
	})
	app := newTestApp(t, mux)

	resp := app.get(t, "/")
	body := readBody(t, resp)

	if !strings.Contains(body, "Custom Hero Title") {
		t.Error("expected section title in body")
	}
	if !strings.Contains(body, "Custom subtitle") {
		t.Error("expected section content in body")
	}
}

func TestStaffPage_SortedByDisplayOrder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/public/staff", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "b", "name": "Beth Second", "title": "Engineer", "displayOrder": 2},
			{"id": "a", "name": "Alan First", "title": "Principal", "displayOrder": 1},
		})
	})
	app := newTestApp(t, mux)

	resp := app.get(t, "/staff")
	body := readBody(t, resp)

	first := strings.Index(body, "Alan First")
	second := strings.Index(body, "Beth Second")
	if first == -1 || second == -1 {
		t.Fatal("expected both staff members in body")
	}
	if first > second {
		t.Error("expected staff sorted by display order")
	}
}

func TestProjectsPage_GroupedByCategory(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/public/projects", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "p1", "title": "Pivot Design", "category": "Irrigation", "location": "Uniontown, KS"},
			{"id": "p2", "title": "Terrace Layout", "category": "", "location": "Fort Scott, KS"},
		})
	})
	app := newTestApp(t, mux)

	resp := app.get(t, "/projects")
	body := readBody(t, resp)

	if !strings.Contains(body, "Irrigation") {
		t.Error("expected category heading")
	}
	if !strings.Contains(body, "Other") {
		t.Error("expected empty category grouped under Other")
	}
}

func TestSubmitContact_ValidationErrors(t *testing.T) {
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/public/contact" {
			t.Error("backend should not be called when validation fails")
		}
		http.NotFound(w, r)
	}))

	resp := app.postForm(t, "/contact", url.Values{
		"name":    {"Pat"},
		"email":   {"not-an-email"},
		"message": {"Hello"},
	})
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", resp.StatusCode)
	}
	// Entered values survive the round trip.
	if !strings.Contains(body, "Pat") || !strings.Contains(body, "not-an-email") {
		t.Error("expected entered values preserved in re-rendered form")
	}
}

func TestSubmitContact_Success(t *testing.T) {
	var received map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/public/contact", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decoding contact payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	})
	app := newTestApp(t, mux)

	resp := app.postForm(t, "/contact", url.Values{
		"name":    {"Pat Miller"},
		"email":   {"pat@example.com"},
		"subject": {"Drainage question"},
		"message": {"Can you help with a drainage plan?"},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/contact?sent=1" {
		t.Errorf("expected redirect to thank-you state, got %s", loc)
	}
	if received["name"] != "Pat Miller" || received["email"] != "pat@example.com" {
		t.Errorf("backend received wrong payload: %v", received)
	}
}

func TestSubmitContact_BackendFailureKeepsValues(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/public/contact", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unavailable"}`, http.StatusServiceUnavailable)
	})
	app := newTestApp(t, mux)

	resp := app.postForm(t, "/contact", url.Values{
		"name":    {"Pat Miller"},
		"email":   {"pat@example.com"},
		"message": {"Still here?"},
	})
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Pat Miller") || !strings.Contains(body, "Still here?") {
		t.Error("expected entered values preserved after backend failure")
	}
}
