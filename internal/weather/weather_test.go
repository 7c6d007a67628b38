package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient_NilWithoutKey(t *testing.T) {
	if c := NewClient(""); c != nil {
		t.Error("NewClient(\"\") = non-nil, want nil")
	}
}

func TestCurrent(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"main":{"temp":31.4},"weather":[{"description":"scattered clouds","icon":"03d"}]}`))
	}))
	defer srv.Close()

	c := NewClient("key")
	c.baseURL = srv.URL

	cond, err := c.Current(context.Background(), "Goa, India")
	if err != nil {
		t.Fatal(err)
	}
	if cond.TempC != 31.4 || cond.Description != "scattered clouds" || cond.Icon != "03d" {
		t.Errorf("Conditions = %+v, want 31.4 / scattered clouds / 03d", cond)
	}
	if !strings.Contains(gotQuery, "units=metric") {
		t.Errorf("query = %q, want metric units", gotQuery)
	}
	if !strings.Contains(gotQuery, "q=Goa%2C+India") {
		t.Errorf("query = %q, want escaped destination", gotQuery)
	}
}

func TestCurrent_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("bad-key")
	c.baseURL = srv.URL

	if _, err := c.Current(context.Background(), "Goa"); err == nil {
		t.Error("Current on 401 succeeded, want error")
	}
}

func TestCurrent_EmptyWeatherArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"main":{"temp":20},"weather":[]}`))
	}))
	defer srv.Close()

	c := NewClient("key")
	c.baseURL = srv.URL

	if _, err := c.Current(context.Background(), "Goa"); err == nil {
		t.Error("Current with empty weather array succeeded, want error")
	}
}
