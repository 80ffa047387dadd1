package imager

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kataras/figma-icons/pkg/figma"
)

type fakeResolver struct {
	calls  [][]string
	images map[string]string
	err    error
}

func (r *fakeResolver) GetImages(ctx context.Context, fileKey string, ids []string, format string, scale float64) (*figma.ImagesResponse, error) {
	if format != "svg" || scale != 1 {
		return nil, fmt.Errorf("unexpected format %q scale %v", format, scale)
	}
	r.calls = append(r.calls, ids)
	if r.err != nil {
		return nil, r.err
	}

	resp := &figma.ImagesResponse{Images: map[string]string{}}
	for _, id := range ids {
		if u, ok := r.images[id]; ok {
			resp.Images[id] = u
		}
	}
	return resp, nil
}

func nodes(ids ...string) []figma.Node {
	out := make([]figma.Node, len(ids))
	for i, id := range ids {
		out[i] = figma.Node{ID: id, Name: "icon " + id, Type: figma.TypeComponent}
	}
	return out
}

func TestResolveURLs(t *testing.T) {
	r := &fakeResolver{images: map[string]string{
		"1:1": "https://cdn/1.svg",
		"1:2": "https://cdn/2.svg",
		"1:3": "https://cdn/3.svg",
	}}

	got, err := ResolveURLs(context.Background(), r, "KEY", nodes("1:3", "1:1", "1:2"))
	if err != nil {
		t.Fatalf("ResolveURLs() error = %v", err)
	}

	want := []Source{
		{NodeID: "1:3", URL: "https://cdn/3.svg"},
		{NodeID: "1:1", URL: "https://cdn/1.svg"},
		{NodeID: "1:2", URL: "https://cdn/2.svg"},
	}
	if len(got) != len(want) {
		t.Fatalf("ResolveURLs() returned %d sources, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ResolveURLs()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if len(r.calls) != 1 {
		t.Errorf("GetImages called %d times, want 1", len(r.calls))
	}
}

func TestResolveURLs_Batches(t *testing.T) {
	images := map[string]string{}
	var ids []string
	for i := 0; i < 250; i++ {
		id := fmt.Sprintf("1:%d", i)
		ids = append(ids, id)
		images[id] = "https://cdn/" + id
	}
	r := &fakeResolver{images: images}

	got, err := ResolveURLs(context.Background(), r, "KEY", nodes(ids...))
	if err != nil {
		t.Fatalf("ResolveURLs() error = %v", err)
	}
	if len(got) != 250 {
		t.Errorf("ResolveURLs() returned %d sources, want 250", len(got))
	}

	wantBatches := []int{100, 100, 50}
	if len(r.calls) != len(wantBatches) {
		t.Fatalf("GetImages called %d times, want %d", len(r.calls), len(wantBatches))
	}
	for i, n := range wantBatches {
		if len(r.calls[i]) != n {
			t.Errorf("batch %d has %d ids, want %d", i, len(r.calls[i]), n)
		}
	}
}

func TestResolveURLs_MissingURL(t *testing.T) {
	r := &fakeResolver{images: map[string]string{"1:1": "https://cdn/1.svg", "1:2": ""}}

	_, err := ResolveURLs(context.Background(), r, "KEY", nodes("1:1", "1:2"))
	if err == nil || !strings.Contains(err.Error(), "1:2") {
		t.Fatalf("ResolveURLs() error = %v, want missing URL for 1:2", err)
	}
}

func TestResolveURLs_APIError(t *testing.T) {
	r := &fakeResolver{err: errors.New("boom")}

	if _, err := ResolveURLs(context.Background(), r, "KEY", nodes("1:1")); err == nil {
		t.Fatal("ResolveURLs() expected error")
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "<svg>%s</svg>", strings.TrimPrefix(r.URL.Path, "/"))
	}))
	defer srv.Close()

	sources := []Source{
		{NodeID: "1:1", URL: srv.URL + "/a"},
		{NodeID: "1:2", URL: srv.URL + "/b"},
		{NodeID: "1:3", URL: srv.URL + "/c"},
	}

	f := &Fetcher{
		HTTPClient: srv.Client(),
		Parallel:   2,
		Transform:  func(s string) (string, error) { return strings.ToUpper(s), nil },
	}

	got, err := f.Fetch(context.Background(), sources)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	want := map[string]string{
		"1:1": "<SVG>A</SVG>",
		"1:2": "<SVG>B</SVG>",
		"1:3": "<SVG>C</SVG>",
	}
	if len(got) != len(want) {
		t.Fatalf("Fetch() returned %d bodies, want %d", len(got), len(want))
	}
	for id, body := range want {
		if got[id] != body {
			t.Errorf("Fetch()[%s] = %q, want %q", id, got[id], body)
		}
	}
}

func TestFetch_FailFast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			http.Error(w, "gone", http.StatusNotFound)
			return
		}
		fmt.Fprint(w, "<svg></svg>")
	}))
	defer srv.Close()

	sources := []Source{
		{NodeID: "1:1", URL: srv.URL + "/ok"},
		{NodeID: "1:2", URL: srv.URL + "/broken"},
		{NodeID: "1:3", URL: srv.URL + "/ok"},
	}

	f := &Fetcher{HTTPClient: srv.Client()}
	got, err := f.Fetch(context.Background(), sources)
	if err == nil {
		t.Fatal("Fetch() expected error")
	}
	if got != nil {
		t.Errorf("Fetch() returned partial results: %v", got)
	}
	if !strings.Contains(err.Error(), "1:2") || !strings.Contains(err.Error(), "404") {
		t.Errorf("Fetch() error = %v, want 404 for 1:2", err)
	}
}

func TestFetch_TransformError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<svg></svg>")
	}))
	defer srv.Close()

	f := &Fetcher{
		HTTPClient: srv.Client(),
		Transform: func(string) (string, error) {
			return "", errors.New("bad markup")
		},
	}

	_, err := f.Fetch(context.Background(), []Source{{NodeID: "1:1", URL: srv.URL}})
	if err == nil || !strings.Contains(err.Error(), "bad markup") {
		t.Fatalf("Fetch() error = %v, want bad markup", err)
	}
}

func TestFetch_Empty(t *testing.T) {
	got, err := (&Fetcher{}).Fetch(context.Background(), nil)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Fetch() = %v, want empty", got)
	}
}
