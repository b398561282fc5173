package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestAdmin_RequiresAuth(t *testing.T) {
	app := newTestApp(t, http.NotFoundHandler())

	for _, path := range []string{"/admin", "/admin/pages", "/admin/staff", "/admin/messages", "/admin/settings"} {
		resp := app.get(t, path)
		resp.Body.Close()
		if resp.StatusCode != http.StatusSeeOther {
			t.Errorf("%s: expected 303, got %d", path, resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != RouteLogin {
			t.Errorf("%s: expected redirect to login, got %s", path, loc)
		}
	}
}

func TestAdmin_Backend401ResetsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", loginOK)
	mux.HandleFunc("GET /api/admin/dashboard", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"token expired"}`, http.StatusUnauthorized)
	})
	app := newTestApp(t, mux)

	app.login(t)

	resp := app.get(t, "/admin")
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect on backend 401, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != RouteLogin {
		t.Errorf("expected redirect to login, got %s", loc)
	}

	// The auth pair is gone, so the guard now rejects before any
	// backend call.
	resp2 := app.get(t, "/admin/staff")
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect after session reset, got %d", resp2.StatusCode)
	}
}

func TestDashboard_RendersStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", loginOK)
	mux.HandleFunc("GET /api/admin/dashboard", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{
			"totalPages":     6,
			"totalStaff":     4,
			"totalProjects":  12,
			"totalMessages":  9,
			"unreadMessages": 3,
		})
	})
	app := newTestApp(t, mux)
	app.login(t)

	resp := app.get(t, "/admin")
	body := readBody(t, resp)

	if !strings.Contains(body, "12") || !strings.Contains(body, "3 unread") {
		t.Error("expected stats in dashboard body")
	}
}

func TestStaffCreate_ForwardsToBackend(t *testing.T) {
	var created map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", loginOK)
	mux.HandleFunc("POST /api/admin/staff", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&created); err != nil {
			t.Errorf("decoding staff payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	})
	app := newTestApp(t, mux)
	app.login(t)

	resp := app.postMultipart(t, "/admin/staff/new", url.Values{
		"name":          {"Dana Smith"},
		"title":         {"Project Engineer"},
		"bio":           {"Dana designs irrigation systems."},
		"display_order": {"2"},
	})
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect after create, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != redirectAdminStaff {
		t.Errorf("expected redirect to staff list, got %s", loc)
	}
	if created["name"] != "Dana Smith" || created["displayOrder"] != float64(2) {
		t.Errorf("backend received wrong payload: %v", created)
	}
}

func TestStaffCreate_RequiresName(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", loginOK)
	mux.HandleFunc("POST /api/admin/staff", func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called without a name")
	})
	app := newTestApp(t, mux)
	app.login(t)

	resp := app.postMultipart(t, "/admin/staff/new", url.Values{
		"title": {"Engineer"},
	})
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Name is required") {
		t.Error("expected validation message")
	}
}

func TestStaffDelete_ForwardsToBackend(t *testing.T) {
	deleted := ""
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", loginOK)
	mux.HandleFunc("DELETE /api/admin/staff/{id}", func(w http.ResponseWriter, r *http.Request) {
		deleted = r.PathValue("id")
		w.WriteHeader(http.StatusNoContent)
	})
	app := newTestApp(t, mux)
	app.login(t)

	resp := app.postForm(t, "/admin/staff/s42/delete", url.Values{})
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect after delete, got %d", resp.StatusCode)
	}
	if deleted != "s42" {
		t.Errorf("expected delete of s42, got %q", deleted)
	}
}

func TestSettingsUpdate_ForwardsToBackend(t *testing.T) {
	var saved map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", loginOK)
	mux.HandleFunc("PUT /api/admin/settings", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&saved); err != nil {
			t.Errorf("decoding settings payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	})
	app := newTestApp(t, mux)
	app.login(t)

	resp := app.postForm(t, "/admin/settings", url.Values{
		"business_name": {"AEA Engineering"},
		"phone":         {"(620) 555-0100"},
	})
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect after save, got %d", resp.StatusCode)
	}
	if saved["businessName"] != "AEA Engineering" || saved["phone"] != "(620) 555-0100" {
		t.Errorf("backend received wrong payload: %v", saved)
	}
}

func TestMessageDetail_MarksUnreadRead(t *testing.T) {
	markCalls := 0
	read := false
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", loginOK)
	mux.HandleFunc("GET /api/admin/contacts/{id}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "m1", "name": "Pat", "email": "pat@example.com",
			"subject": "Hello", "message": "Hi there", "read": read,
			"createdAt": "2026-08-01T10:00:00Z",
		})
	})
	mux.HandleFunc("PATCH /api/admin/contacts/{id}/read", func(w http.ResponseWriter, r *http.Request) {
		markCalls++
		read = true
		w.WriteHeader(http.StatusOK)
	})
	app := newTestApp(t, mux)
	app.login(t)

	resp := app.get(t, "/admin/messages/m1")
	body := readBody(t, resp)
	if !strings.Contains(body, "Hi there") {
		t.Error("expected message body")
	}
	if markCalls != 1 {
		t.Fatalf("expected one mark-read call, got %d", markCalls)
	}

	// Already read: opening again does not mark again.
	resp2 := app.get(t, "/admin/messages/m1")
	resp2.Body.Close()
	if markCalls != 1 {
		t.Errorf("expected mark-read to be skipped for read message, got %d calls", markCalls)
	}
}

func TestMessageDelete_ForwardsToBackend(t *testing.T) {
	deleted := ""
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", loginOK)
	mux.HandleFunc("DELETE /api/admin/contacts/{id}", func(w http.ResponseWriter, r *http.Request) {
		deleted = r.PathValue("id")
		w.WriteHeader(http.StatusNoContent)
	})
	app := newTestApp(t, mux)
	app.login(t)

	resp := app.postForm(t, "/admin/messages/m7/delete", url.Values{})
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect after delete, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != redirectAdminMessages {
		t.Errorf("expected redirect to message list, got %s", loc)
	}
	if deleted != "m7" {
		t.Errorf("expected delete of m7, got %q", deleted)
	}
}

func TestAdminForms_BlockRepeatSubmit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", loginOK)
	mux.HandleFunc("GET /api/admin/pages/{pageName}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"sections":[]}`))
	})
	mux.HandleFunc("GET /api/admin/settings", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"businessName":"AEA"}`))
	})
	app := newTestApp(t, mux)
	app.login(t)

	// A second save while one is pending must never reach the backend,
	// so every editor form carries the in-flight submit guard.
	for _, path := range []string{"/admin/staff/new", "/admin/projects/new", "/admin/pages/home", "/admin/settings"} {
		resp := app.get(t, path)
		body := readBody(t, resp)
		if !strings.Contains(body, "this.dataset.busy") {
			t.Errorf("%s: form is missing the repeat-submit guard", path)
		}
	}
}
