package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kataras/figma-icons/pkg/extractor"
	"github.com/kataras/figma-icons/pkg/figma"
	"github.com/kataras/figma-icons/pkg/svgmarkup"
)

// Data is the aggregated export: icon name → size → inner SVG markup.
type Data map[string]map[string]string

// Compose groups components by name and then by size. Unlike the per-file writers,
// a single non-square component fails the whole composition.
// A later component with the same name and size replaces an earlier one.
func Compose(components []figma.Node, svgs map[string]string) (Data, error) {
	data := make(Data)

	for _, component := range components {
		size, err := extractor.Size(component)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", component.Name, err)
		}

		sizes, ok := data[component.Name]
		if !ok {
			sizes = make(map[string]string)
			data[component.Name] = sizes
		}

		sizes[extractor.FormatSize(size)] = svgmarkup.InnerContents(svgs[component.ID])
	}

	return data, nil
}

// Marshal encodes data as compact JSON. Markup is kept as is, without < escapes.
func (d Data) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// JSONWriter writes every icon into a single JSON file at Path.
type JSONWriter struct {
	Path string
}

func (w *JSONWriter) Target() string { return w.Path }

func (w *JSONWriter) Write(components []figma.Node, svgs map[string]string) (*Summary, error) {
	data, err := Compose(components, svgs)
	if err != nil {
		return nil, err
	}

	b, err := data.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to encode data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(w.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(w.Path, b, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %q: %w", w.Path, err)
	}

	icons := 0
	for _, sizes := range data {
		icons += len(sizes)
	}

	return &Summary{Files: []string{w.Path}, Icons: icons}, nil
}
