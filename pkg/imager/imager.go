package imager

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/kataras/figma-icons/pkg/figma"

	"golang.org/x/sync/errgroup"
)

// Format and scale every icon is rendered with.
const (
	Format = "svg"
	Scale  = 1.0
)

const maxNodesPerRequest = 100
const maxParallelDownloads = 5

// Source pairs a component with the temporary URL its SVG can be downloaded from.
type Source struct {
	NodeID string
	URL    string
}

// ImageResolver is the part of the Figma client ResolveURLs needs.
type ImageResolver interface {
	GetImages(ctx context.Context, fileKey string, ids []string, format string, scale float64) (*figma.ImagesResponse, error)
}

// ResolveURLs asks Figma for SVG renders of all components and returns their download URLs
// in component order. IDs are sent in batches of at most 100 per request.
// A component without a URL fails the whole resolution.
func ResolveURLs(ctx context.Context, client ImageResolver, fileKey string, components []figma.Node) ([]Source, error) {
	ids := make([]string, len(components))
	for i, c := range components {
		ids[i] = c.ID
	}

	urls := make(map[string]string, len(ids))
	for i := 0; i < len(ids); i += maxNodesPerRequest {
		end := min(i+maxNodesPerRequest, len(ids))

		imgResp, err := client.GetImages(ctx, fileKey, ids[i:end], Format, Scale)
		if err != nil {
			return nil, fmt.Errorf("failed to get images from Figma API: %w", err)
		}

		for id, u := range imgResp.Images {
			urls[id] = u
		}
	}

	sources := make([]Source, 0, len(components))
	for _, c := range components {
		u := urls[c.ID]
		if u == "" {
			return nil, fmt.Errorf("no image URL returned for node %s (%s)", c.ID, c.Name)
		}
		sources = append(sources, Source{NodeID: c.ID, URL: u})
	}

	return sources, nil
}

// Fetcher downloads SVG bodies concurrently.
type Fetcher struct {
	// HTTPClient performs the downloads. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// Parallel bounds the number of in-flight downloads. Defaults to 5.
	Parallel int
	// Transform, when set, is applied to every downloaded body before it is stored.
	Transform func(string) (string, error)
}

// Fetch downloads every source and returns the (transformed) bodies keyed by node ID.
// The first failing download or transform cancels the rest and is returned; there are no partial results.
func (f *Fetcher) Fetch(ctx context.Context, sources []Source) (map[string]string, error) {
	parallel := f.Parallel
	if parallel <= 0 {
		parallel = maxParallelDownloads
	}

	bodies := make([]string, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, src := range sources {
		g.Go(func() error {
			body, err := f.download(ctx, src.URL)
			if err != nil {
				return fmt.Errorf("failed to download %s: %w", src.NodeID, err)
			}

			if f.Transform != nil {
				if body, err = f.Transform(body); err != nil {
					return fmt.Errorf("failed to optimize %s: %w", src.NodeID, err)
				}
			}

			bodies[i] = body
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	svgs := make(map[string]string, len(sources))
	for i, src := range sources {
		svgs[src.NodeID] = bodies[i]
	}

	return svgs, nil
}

// download performs an HTTP GET and returns the response body.
func (f *Fetcher) download(ctx context.Context, url string) (string, error) {
	client := f.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP GET failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d downloading image", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}

	return string(body), nil
}
