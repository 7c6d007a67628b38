package sheets

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("sheet-1", "key-1", "")
	c.baseURL = srv.URL
	return c, srv
}

func TestNewClient_NilWithoutCredentials(t *testing.T) {
	if c := NewClient("", "key", ""); c != nil {
		t.Error("NewClient without sheet id = non-nil, want nil")
	}
	if c := NewClient("sheet", "", ""); c != nil {
		t.Error("NewClient without API key = non-nil, want nil")
	}
}

func TestAppendRow_ValuesAPI(t *testing.T) {
	var gotPath, gotBody string
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))

	outcome, err := c.AppendRow(context.Background(), tripsSheet, tripsAppendRange, tripHeaders, []any{"t1", "Goa"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeSent {
		t.Errorf("outcome = %v, want OutcomeSent", outcome)
	}
	if !strings.Contains(gotPath, "sheet-1/values/") || !strings.Contains(gotPath, ":append") {
		t.Errorf("path = %q, want an append call on sheet-1", gotPath)
	}
	if !strings.Contains(gotBody, `"t1"`) {
		t.Errorf("body = %q, want row values", gotBody)
	}
}

func TestAppendRow_APIErrorIsFailed(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	outcome, err := c.AppendRow(context.Background(), expensesSheet, expensesAppendRange, expenseHeaders, []any{"e1"})
	if err == nil {
		t.Fatal("expected error on 403")
	}
	if outcome != OutcomeFailed {
		t.Errorf("outcome = %v, want OutcomeFailed", outcome)
	}
}

func TestAppendRow_ScriptTransportUnconfirmed(t *testing.T) {
	var scriptHits int
	script := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scriptHits++
		if ct := r.Header.Get("Content-Type"); ct != "text/plain" {
			t.Errorf("Content-Type = %q, want text/plain", ct)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer script.Close()

	c := NewClient("sheet-1", "key-1", script.URL)

	outcome, err := c.AppendRow(context.Background(), tripsSheet, tripsAppendRange, tripHeaders, []any{"t1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeUnknown {
		t.Errorf("outcome = %v, want OutcomeUnknown for opaque script transport", outcome)
	}
	if scriptHits != 1 {
		t.Errorf("script hits = %d, want 1", scriptHits)
	}
}

func TestAppendRow_ScriptFailureFallsBack(t *testing.T) {
	var apiHits int
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiHits++
		w.WriteHeader(http.StatusOK)
	}))
	// Unreachable script endpoint forces the fallback.
	c.scriptURL = "http://127.0.0.1:1/script"

	outcome, err := c.AppendRow(context.Background(), tripsSheet, tripsAppendRange, tripHeaders, []any{"t1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != OutcomeSent {
		t.Errorf("outcome = %v, want OutcomeSent via fallback", outcome)
	}
	if apiHits != 1 {
		t.Errorf("API hits = %d, want 1", apiHits)
	}
}

func TestFetchRange_CoercesCells(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"values":[["t1","Goa",1500.0,true,null]]}`))
	}))

	rows, err := c.FetchRange(context.Background(), tripsFetchRange)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]string{{"t1", "Goa", "1500", "TRUE", ""}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestFetchRange_EmptySheet(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	rows, err := c.FetchRange(context.Background(), tripsFetchRange)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %v, want empty", rows)
	}
}

func TestOutcomeString(t *testing.T) {
	cases := map[Outcome]string{
		OutcomeSkipped: "skipped",
		OutcomeSent:    "sent",
		OutcomeUnknown: "sent (unconfirmed)",
		OutcomeFailed:  "failed",
	}
	for o, want := range cases {
		if got := o.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(o), got, want)
		}
	}
}
