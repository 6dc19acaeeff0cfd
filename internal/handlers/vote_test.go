package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"driftboard/internal/content"
	"driftboard/internal/db"
	"driftboard/internal/middleware"
	"driftboard/internal/services"
	"driftboard/internal/voting"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	db.DB = gdb

	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test_secret"))
	// httptest serves plain HTTP; the Secure default would keep the cookie
	// jar from retaining the session cookie.
	store.Options(sessions.Options{Path: "/", MaxAge: 86400, Secure: false, HttpOnly: true})
	r.Use(sessions.Sessions("driftboard_session", store))
	r.Use(middleware.LoadUser())

	registry := content.NewDefaultRegistry()
	authHandler := NewAuthHandler()
	submissionHandler := NewSubmissionHandler()
	voteHandler := NewVoteHandler(voting.NewService(gdb, registry))
	commentHandler := NewCommentHandler(services.NewCommentService(gdb, registry))

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/submissions", submissionHandler.List)
	r.GET("/submissions/:id", submissionHandler.Detail)

	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/submit", submissionHandler.Create)
		authorized.POST("/comments", commentHandler.Create)
		authorized.POST("/vote", voteHandler.Vote)
	}

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func postForm(t *testing.T, client *http.Client, serverURL, path string, form url.Values) (int, map[string]interface{}) {
	t.Helper()
	resp, err := client.PostForm(serverURL+path, form)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("POST %s: failed to decode body: %v", path, err)
	}
	return resp.StatusCode, body
}

func signup(t *testing.T, client *http.Client, serverURL, email string) {
	t.Helper()
	status, body := postForm(t, client, serverURL, "/signup", url.Values{
		"email":    {email},
		"password": {"hunter22"},
	})
	if status != http.StatusOK {
		t.Fatalf("signup status = %d, body = %v", status, body)
	}
}

func TestVoteEndpoint(t *testing.T) {
	server := setupServer(t)
	client := newClient(t)
	signup(t, client, server.URL, "alice@example.com")

	status, body := postForm(t, client, server.URL, "/submit", url.Values{
		"title":   {"a fine link"},
		"url":     {"https://example.com"},
		"content": {""},
	})
	if status != http.StatusOK {
		t.Fatalf("submit status = %d, body = %v", status, body)
	}

	// Another user votes on it
	voter := newClient(t)
	signup(t, voter, server.URL, "bob@example.com")

	vote := url.Values{"what": {"submission"}, "what_id": {"1"}, "vote_value": {"1"}}
	status, body = postForm(t, voter, server.URL, "/vote", vote)
	if status != http.StatusOK {
		t.Fatalf("vote status = %d, body = %v", status, body)
	}
	if body["voteDiff"].(float64) != 1 || body["outcome"].(string) != "cast" {
		t.Errorf("vote body = %v, want voteDiff 1, outcome cast", body)
	}

	// Same value again cancels
	status, body = postForm(t, voter, server.URL, "/vote", vote)
	if status != http.StatusOK {
		t.Fatalf("vote status = %d, body = %v", status, body)
	}
	if body["voteDiff"].(float64) != -1 || body["outcome"].(string) != "cancelled" {
		t.Errorf("vote body = %v, want voteDiff -1, outcome cancelled", body)
	}
}

func TestVoteEndpointErrorMapping(t *testing.T) {
	server := setupServer(t)
	client := newClient(t)
	signup(t, client, server.URL, "alice@example.com")

	if status, _ := postForm(t, client, server.URL, "/submit", url.Values{"title": {"post"}}); status != http.StatusOK {
		t.Fatalf("submit status = %d", status)
	}

	cases := []struct {
		name       string
		form       url.Values
		wantStatus int
	}{
		{"unknown kind", url.Values{"what": {"poll"}, "what_id": {"1"}, "vote_value": {"1"}}, http.StatusBadRequest},
		{"bad value", url.Values{"what": {"submission"}, "what_id": {"1"}, "vote_value": {"7"}}, http.StatusBadRequest},
		{"missing value", url.Values{"what": {"submission"}, "what_id": {"1"}}, http.StatusBadRequest},
		{"missing target", url.Values{"what": {"submission"}, "what_id": {"999999"}, "vote_value": {"1"}}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := postForm(t, client, server.URL, "/vote", tc.form)
			if status != tc.wantStatus {
				t.Errorf("status = %d, want %d (body %v)", status, tc.wantStatus, body)
			}
		})
	}

	// No session at all is rejected before the core runs
	anon := newClient(t)
	status, _ := postForm(t, anon, server.URL, "/vote", url.Values{
		"what": {"submission"}, "what_id": {"1"}, "vote_value": {"1"},
	})
	if status != http.StatusForbidden {
		t.Errorf("anonymous vote status = %d, want %d", status, http.StatusForbidden)
	}
}

func TestCommentEndpoint(t *testing.T) {
	server := setupServer(t)
	client := newClient(t)
	signup(t, client, server.URL, "alice@example.com")

	if status, _ := postForm(t, client, server.URL, "/submit", url.Values{"title": {"post"}}); status != http.StatusOK {
		t.Fatal("submit failed")
	}

	status, body := postForm(t, client, server.URL, "/comments", url.Values{
		"parentType":     {"submission"},
		"parentId":       {"1"},
		"commentContent": {"well said"},
	})
	if status != http.StatusOK {
		t.Fatalf("comment status = %d, body = %v", status, body)
	}

	status, body = postForm(t, client, server.URL, "/comments", url.Values{
		"parentType":     {"submission"},
		"parentId":       {"1"},
		"commentContent": {"   "},
	})
	if status != http.StatusBadRequest {
		t.Errorf("blank comment status = %d, want 400 (body %v)", status, body)
	}

	// The detail view now carries the comment
	resp, err := client.Get(server.URL + "/submissions/1")
	if err != nil {
		t.Fatalf("GET detail failed: %v", err)
	}
	defer resp.Body.Close()
	var detail struct {
		Comments []struct {
			Content string `json:"content"`
		} `json:"comments"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		t.Fatalf("failed to decode detail: %v", err)
	}
	if len(detail.Comments) != 1 || detail.Comments[0].Content != "well said" {
		t.Errorf("detail comments = %+v, want the posted comment", detail.Comments)
	}
}
