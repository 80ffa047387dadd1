package figmaicons

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kataras/figma-icons/pkg/extractor"
	"github.com/kataras/figma-icons/pkg/figma"
	"github.com/kataras/figma-icons/pkg/formatter"
	"github.com/kataras/figma-icons/pkg/imager"
	"github.com/kataras/figma-icons/pkg/progress"
	"github.com/kataras/figma-icons/pkg/svgmarkup"
)

// ErrNoComponents is returned when the Figma file has no COMPONENT nodes to export.
var ErrNoComponents = errors.New("No components found")

// Reporter receives progress messages. A nil Reporter means silent operation.
type Reporter = progress.Reporter

// Options configures an export run.
type Options struct {
	AccessToken string
	FileKey     string
	Format      string // "files" (default), "json" or "react"
	Output      string // directory or file; empty = the format's default
	Parallel    int    // concurrent SVG downloads; 0 = 5
	Reporter    Reporter

	// Writer, when set, replaces the one selected by Format and Output.
	Writer formatter.Writer
	// ClientOptions are passed to the Figma client, e.g. figma.WithBaseURL.
	ClientOptions []figma.ClientOption
}

// Result contains the export output.
type Result struct {
	FileName   string       // Figma file name
	Components []figma.Node // every component found, in document order
	Summary    *formatter.Summary
	Target     string // where the icons were written
}

// Run fetches the Figma file, collects its components, downloads and normalizes their SVGs
// and writes them with the selected output writer. Any failure aborts the run, except
// per-icon failures the file and React writers skip.
func Run(ctx context.Context, opts Options) (*Result, error) {
	reporter := progress.OrNop(opts.Reporter)

	if opts.FileKey == "" {
		return nil, errors.New("file key is required")
	}

	writer := opts.Writer
	if writer == nil {
		w, err := formatter.New(opts.Format, opts.Output, reporter)
		if err != nil {
			return nil, err
		}
		writer = w
	}

	client := figma.NewClient(opts.AccessToken, opts.ClientOptions...)

	reporter.Info("Figma file key: %s", opts.FileKey)

	reporter.Start("Fetching components")
	fileResp, err := client.GetFile(ctx, opts.FileKey)
	if err != nil {
		return nil, fmt.Errorf("fetch file: %w", err)
	}

	components := extractor.Components(&fileResp.Document)
	if len(components) == 0 {
		return nil, ErrNoComponents
	}
	reporter.Succeed("Found %d components", len(components))

	reporter.Start("Fetching image URLs")
	sources, err := imager.ResolveURLs(ctx, client, opts.FileKey, components)
	if err != nil {
		return nil, err
	}

	reporter.Start("Downloading SVGs")
	fetcher := &imager.Fetcher{
		HTTPClient: client.HTTPClient(),
		Parallel:   opts.Parallel,
		Transform:  svgmarkup.Optimize,
	}
	svgs, err := fetcher.Fetch(ctx, sources)
	if err != nil {
		return nil, err
	}

	reporter.Start("Writing icons")
	summary, err := writer.Write(components, svgs)
	if err != nil {
		return nil, err
	}

	reporter.Succeed("Exported %d icons to %s", summary.Icons, displayPath(writer.Target()))

	return &Result{
		FileName:   fileResp.Name,
		Components: components,
		Summary:    summary,
		Target:     writer.Target(),
	}, nil
}

// displayPath shows path relative to the working directory when it lives below it.
func displayPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}

	return "./" + filepath.ToSlash(rel)
}
