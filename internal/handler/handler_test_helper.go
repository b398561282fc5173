package handler

import (
	"database/sql"
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "modernc.org/sqlite"

	"github.com/aea-eng/aea-site/internal/gateway"
	"github.com/aea-eng/aea-site/internal/middleware"
	"github.com/aea-eng/aea-site/internal/render"
	"github.com/aea-eng/aea-site/internal/session"
	"github.com/aea-eng/aea-site/web"
)

// testDB creates an in-memory SQLite database with the session schema.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	schema := `
		CREATE TABLE sessions (
			token TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			expiry REAL NOT NULL
		);
		CREATE INDEX idx_sessions_expiry ON sessions(expiry);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("failed to create test schema: %v", err)
	}

	return db
}

// testApp is a fully wired application talking to a stub backend.
type testApp struct {
	Server  *httptest.Server
	Client  *http.Client
	Session *session.Manager
}

// newTestApp builds the real router (minus CSRF and rate limiting)
// against the given stub backend and serves it over httptest. The
// returned client carries a cookie jar and does not follow redirects,
// so tests can assert on Location headers.
func newTestApp(t *testing.T, backend http.Handler) *testApp {
	t.Helper()

	backendSrv := httptest.NewServer(backend)
	t.Cleanup(backendSrv.Close)

	db := testDB(t)
	sm := session.New(db, true)
	gw := gateway.New(backendSrv.URL)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("getting templates fs: %v", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sm,
		IsDev:          true,
	})
	if err != nil {
		t.Fatalf("initializing renderer: %v", err)
	}

	publicHandler := NewPublicHandler(gw, renderer)
	authHandler := NewAuthHandler(gw, sm, renderer)
	adminHandler := NewAdminHandler(gw, sm, renderer)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)

	r.Get(RouteRoot, publicHandler.Home)
	r.Get(RouteServices, publicHandler.Services)
	r.Get(RouteProjects, publicHandler.Projects)
	r.Get(RouteStaff, publicHandler.Staff)
	r.Get(RouteAbout, publicHandler.About)
	r.Get(RouteContact, publicHandler.Contact)
	r.Post(RouteContact, publicHandler.SubmitContact)

	r.Route("/admin", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireGuest(sm, redirectAdmin))
			r.Get("/login", authHandler.LoginForm)
			r.Post("/login", authHandler.Login)
		})
		r.Post("/logout", authHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(sm))

			r.Get("/", adminHandler.Dashboard)
			r.Get("/pages", adminHandler.Pages)
			r.Get("/pages"+RouteParamPageName, adminHandler.EditPage)
			r.Post("/pages"+RouteParamPageName, adminHandler.UpdatePage)
			r.Get("/staff", adminHandler.StaffList)
			r.Get("/staff/new", adminHandler.StaffNewForm)
			r.Post("/staff/new", adminHandler.StaffCreate)
			r.Get("/staff"+RouteParamID+"/edit", adminHandler.StaffEditForm)
			r.Post("/staff"+RouteParamID+"/edit", adminHandler.StaffUpdate)
			r.Post("/staff"+RouteParamID+"/delete", adminHandler.StaffDelete)
			r.Get("/projects", adminHandler.ProjectList)
			r.Get("/projects/new", adminHandler.ProjectNewForm)
			r.Post("/projects/new", adminHandler.ProjectCreate)
			r.Get("/projects"+RouteParamID+"/edit", adminHandler.ProjectEditForm)
			r.Post("/projects"+RouteParamID+"/edit", adminHandler.ProjectUpdate)
			r.Post("/projects"+RouteParamID+"/delete", adminHandler.ProjectDelete)
			r.Get("/settings", adminHandler.SettingsForm)
			r.Post("/settings", adminHandler.SettingsUpdate)
			r.Get("/messages", adminHandler.MessageList)
			r.Get("/messages"+RouteParamID, adminHandler.MessageDetail)
			r.Post("/messages"+RouteParamID+"/delete", adminHandler.MessageDelete)
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("creating cookie jar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testApp{Server: srv, Client: client, Session: sm}
}

func (a *testApp) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := a.Client.Get(a.Server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := a.Client.PostForm(a.Server.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

// postMultipart submits fields as a multipart form, the encoding the
// editor forms use.
func (a *testApp) postMultipart(t *testing.T, path string, fields url.Values) *http.Response {
	t.Helper()

	var body strings.Builder
	boundary := "testboundary"
	for key, values := range fields {
		for _, v := range values {
			body.WriteString("--" + boundary + "\r\n")
			body.WriteString(`Content-Disposition: form-data; name="` + key + `"` + "\r\n\r\n")
			body.WriteString(v + "\r\n")
		}
	}
	body.WriteString("--" + boundary + "--\r\n")

	req, err := http.NewRequest(http.MethodPost, a.Server.URL+path, strings.NewReader(body.String()))
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set(HeaderContentType, "multipart/form-data; boundary="+boundary)

	resp, err := a.Client.Do(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

// login authenticates through the real login flow so the client's jar
// holds an authenticated session cookie. The stub backend must serve
// POST /api/auth/login.
func (a *testApp) login(t *testing.T) {
	t.Helper()

	resp := a.postForm(t, "/admin/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"secret"},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login: expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != redirectAdmin {
		t.Fatalf("login: expected redirect to %s, got %s", redirectAdmin, loc)
	}
}

// loginOK is a stub backend login response accepting any credentials.
func loginOK(w http.ResponseWriter, _ *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"token": "test-token",
		"user":  map[string]string{"id": "u1", "email": "admin@example.com", "name": "Admin"},
	})
}
