package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const resultsPage = `
<html><body>
  <div class="result">
    <h2 class="result__title">
      <a href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Ffirst">First Result</a>
    </h2>
    <a class="result__snippet">Snippet for the first result.</a>
  </div>
  <div class="result">
    <h2 class="result__title">
      <a href="https://example.org/direct">Second Result</a>
    </h2>
    <a class="result__snippet">Second snippet.</a>
  </div>
  <div class="result">
    <h2 class="result__title">
      <a href="https://example.org/third">Third Result</a>
    </h2>
  </div>
</body></html>`

func TestSearchParsesResults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.PostFormValue("q"); got != "test query" {
			t.Errorf("unexpected query: %q", got)
		}
		_, _ = w.Write([]byte(resultsPage))
	}))
	defer server.Close()

	provider := NewDuckDuckGoProvider(server.Client())
	provider.endpoint = server.URL

	results, err := provider.Search(context.Background(), "test query", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Title != "First Result" {
		t.Fatalf("unexpected title: %q", results[0].Title)
	}
	if results[0].URL != "https://example.com/first" {
		t.Fatalf("expected redirect unwrapped, got %q", results[0].URL)
	}
	if results[0].Snippet != "Snippet for the first result." {
		t.Fatalf("unexpected snippet: %q", results[0].Snippet)
	}
	if results[1].URL != "https://example.org/direct" {
		t.Fatalf("expected direct link kept, got %q", results[1].URL)
	}
}

func TestSearchHonorsLimit(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(resultsPage))
	}))
	defer server.Close()

	provider := NewDuckDuckGoProvider(server.Client())
	provider.endpoint = server.URL

	results, err := provider.Search(context.Background(), "q", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestSearchUnexpectedStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewDuckDuckGoProvider(server.Client())
	provider.endpoint = server.URL

	if _, err := provider.Search(context.Background(), "q", 5); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestResolveRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "uddg redirect",
			in:   "//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fpage&rut=abc",
			want: "https://example.com/page",
		},
		{name: "direct link", in: "https://example.com/page", want: "https://example.com/page"},
		{name: "scheme-relative direct", in: "//example.com/page", want: "https://example.com/page"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveRedirect(tc.in); got != tc.want {
				t.Fatalf("resolveRedirect(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
