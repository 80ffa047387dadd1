// Package figmaicons exports the icon components of a Figma file as SVG.
//
// The CLI lives in cmd/figma-icons; this root package exposes the same
// pipeline as a Go API so that callers can embed the export in their own
// build tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmaicons:
//
//	import "github.com/kataras/figma-icons" // package figmaicons
//
// # Quick start
//
//	result, err := figmaicons.Run(ctx, figmaicons.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    FileKey:     "ABC123",
//	    Format:      "files", // icons/<size>/<name>.svg
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary.Icons, "icons written to", result.Target)
//
// # Pipeline
//
// Every COMPONENT node of the file is an icon and must be square. The
// pipeline fetches the document, collects components depth-first, asks
// Figma for SVG renders of all of them, downloads the renders concurrently,
// strips fill and stroke attributes and hands the result to a
// [formatter.Writer]:
//
//   - "files" writes icons/<size>/<name>.svg with fill="currentColor"
//   - "json" writes dist/data.json mapping name → size → inner markup
//   - "react" writes src/icons/<size>/<Name>.tsx plus an index.ts per size
//
// The file and React writers skip icons they cannot write (for example a
// non-square component) and keep going; everything else fails the run.
//
// # Progress
//
// Pass a [Reporter] in [Options.Reporter] to follow the steps of a run.
// A nil Reporter silences all output. [progress.Console] prints colored
// lines to a terminal.
package figmaicons
