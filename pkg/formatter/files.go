package formatter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kataras/figma-icons/pkg/extractor"
	"github.com/kataras/figma-icons/pkg/figma"
	"github.com/kataras/figma-icons/pkg/progress"
	"github.com/kataras/figma-icons/pkg/svgmarkup"
)

// FileWriter writes one SVG document per icon to Dir/<size>/<name>.svg.
// Size directories left by a previous export are removed first. A component that cannot be written is reported and skipped.
type FileWriter struct {
	Dir      string
	Reporter progress.Reporter
}

func (w *FileWriter) Target() string { return w.Dir }

func (w *FileWriter) Write(components []figma.Node, svgs map[string]string) (*Summary, error) {
	if err := cleanSizeDirs(w.Dir); err != nil {
		return nil, err
	}

	return writeEach(w.Dir, components, progress.OrNop(w.Reporter), func(component figma.Node, size float64) (string, []byte, error) {
		contents := svgmarkup.InnerContents(svgs[component.ID])
		name := FileName(component.Name) + ".svg"
		return name, []byte(svgmarkup.Wrap(size, contents)), nil
	})
}

// renderFunc produces the file name and content of one icon.
type renderFunc func(component figma.Node, size float64) (string, []byte, error)

// writeEach writes every component under dir/<size>/ and isolates per-component failures.
func writeEach(dir string, components []figma.Node, reporter progress.Reporter, render renderFunc) (*Summary, error) {
	summary := &Summary{}

	for _, component := range components {
		path, err := writeOne(dir, component, render)
		if err != nil {
			reporter.Info("Skipping %s: %v", component.Name, err)
			summary.Skipped = append(summary.Skipped, Skip{Name: component.Name, Err: err})
			continue
		}

		summary.Files = append(summary.Files, path)
		summary.Icons++
	}

	return summary, nil
}

func writeOne(dir string, component figma.Node, render renderFunc) (string, error) {
	size, err := extractor.Size(component)
	if err != nil {
		return "", err
	}

	name, data, err := render(component, size)
	if err != nil {
		return "", err
	}

	sizeDir := filepath.Join(dir, extractor.FormatSize(size))
	if err := os.MkdirAll(sizeDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %q: %w", sizeDir, err)
	}

	path := filepath.Join(sizeDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %q: %w", path, err)
	}

	return path, nil
}
