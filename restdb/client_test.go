package restdb

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/invtracker/tracker"
)

func TestClient_URLShape(t *testing.T) {
	var gotMethod, gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotQuery = r.Method, r.URL.Path, r.URL.RawQuery
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()
	c := New(srv.URL + "/") // trailing slash must not double up

	if _, err := c.Get("vehicles", 3); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodGet || gotPath != "/vehicles/3" {
		t.Errorf("Get routed to %s %s, want GET /vehicles/3", gotMethod, gotPath)
	}

	if _, err := c.Post("vehicles", json.RawMessage(`{"symbol":"VOO"}`)); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPost || gotPath != "/vehicles" {
		t.Errorf("Post routed to %s %s, want POST /vehicles", gotMethod, gotPath)
	}

	if _, err := c.Put("vehicles", 5, json.RawMessage(`{}`)); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPut || gotPath != "/vehicles/5" {
		t.Errorf("Put routed to %s %s, want PUT /vehicles/5", gotMethod, gotPath)
	}

	// Query parameters must be percent-encoded, symbols with reserved
	// characters included.
	if _, err := c.Find("vehicles", url.Values{"q": {"S&P 500"}}); err != nil {
		t.Fatal(err)
	}
	if gotQuery != "q=S%26P+500" {
		t.Errorf("Find query = %q, want %q", gotQuery, "q=S%26P+500")
	}
}

func TestClient_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Get("vehicles", 1)
	if !errors.Is(err, tracker.ErrRejected) {
		t.Errorf("a 500 response must surface as ErrRejected, got %v", err)
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	_, err := New(srv.URL).Get("vehicles", 1)
	if !errors.Is(err, tracker.ErrUnreachable) {
		t.Errorf("a connection failure must surface as ErrUnreachable, got %v", err)
	}
}

func TestClient_ReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":7,"symbol":"VOO","name":"Vanguard"}`)
	}))
	defer srv.Close()

	body, err := New(srv.URL).Get("vehicles", 7)
	if err != nil {
		t.Fatal(err)
	}
	var jobj map[string]any
	if err := json.Unmarshal(body, &jobj); err != nil {
		t.Fatalf("body %q is not json: %v", body, err)
	}
	if jobj["symbol"] != "VOO" {
		t.Errorf("body symbol = %v, want VOO", jobj["symbol"])
	}
}
