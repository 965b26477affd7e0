package directory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"forumhub/internal/domain"
	"forumhub/internal/httputil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolveSuccess(t *testing.T) {
	var gotPath, gotQuery, gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":42,"username":"lena","email":"lena@example.com","profile":{"profileName":"MOD"}}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, testLogger())
	ctx := httputil.WithBearerToken(context.Background(), "token-abc")

	author, err := client.Resolve(ctx, 42)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if gotPath != "/users/summary-info" {
		t.Errorf("path = %q, want /users/summary-info", gotPath)
	}
	if gotQuery != "user_id=42" {
		t.Errorf("query = %q, want user_id=42", gotQuery)
	}
	if gotAuth != "Bearer token-abc" {
		t.Errorf("Authorization = %q, want Bearer token-abc", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}

	if author.ID != 42 || author.Username != "lena" || author.Email != "lena@example.com" {
		t.Errorf("unexpected author: %+v", author)
	}
	if author.Role != "MOD" {
		t.Errorf("role = %q, want MOD", author.Role)
	}
}

func TestResolveDomainNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"no user registered with id 99"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, testLogger())

	_, err := client.Resolve(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Fatal("domain 404 must not be reported as a remote outage")
	}
	if got := err.Error(); got != "no user registered with id 99" {
		t.Errorf("message = %q, want the directory's detail text", got)
	}
}

func TestResolveUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, testLogger())

	_, err := client.Resolve(context.Background(), 7)
	var remoteErr *domain.RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("err = %T, want *domain.RemoteError", err)
	}
	if remoteErr.UpstreamStatus != http.StatusInternalServerError {
		t.Errorf("upstream status = %d, want 500", remoteErr.UpstreamStatus)
	}
	if remoteErr.Body != "boom" {
		t.Errorf("body = %q, want boom", remoteErr.Body)
	}
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Error("unexpected status should match ErrRemoteUnavailable")
	}
}

func TestResolveTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Simulate a directory that never begins responding.
		<-release
	}))
	defer srv.Close()
	defer close(release)

	client := NewHTTPClient(srv.URL, 50*time.Millisecond, testLogger())

	start := time.Now()
	_, err := client.Resolve(context.Background(), 1)
	elapsed := time.Since(start)

	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Fatalf("err = %v, want ErrRemoteUnavailable", err)
	}
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		t.Fatal("timeout must not surface as not-found")
	}
	if elapsed > 2*time.Second {
		t.Errorf("Resolve blocked for %v, timeout not applied", elapsed)
	}
}

func TestResolveConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens on the URL anymore

	client := NewHTTPClient(srv.URL, time.Second, testLogger())

	_, err := client.Resolve(context.Background(), 1)
	if !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Fatalf("err = %v, want ErrRemoteUnavailable", err)
	}
}

func TestResolveUnknownProfileDefaultsToBasic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":5,"username":"sam","email":"sam@example.com","profile":{"profileName":"SUPERUSER"}}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, testLogger())

	author, err := client.Resolve(context.Background(), 5)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if author.Role != "BASIC" {
		t.Errorf("role = %q, want BASIC fallback", author.Role)
	}
}
