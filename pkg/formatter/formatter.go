// Package formatter writes exported icons to disk. Each output shape is a Writer:
// a tree of SVG files, a single JSON data file or a directory of React components.
package formatter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/kataras/figma-icons/pkg/extractor"
	"github.com/kataras/figma-icons/pkg/figma"
	"github.com/kataras/figma-icons/pkg/progress"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Output formats accepted by New.
const (
	FormatFiles = "files"
	FormatJSON  = "json"
	FormatReact = "react"
)

// Default output locations, relative to the working directory.
const (
	DefaultFilesDir = "icons"
	DefaultJSONFile = "dist/data.json"
	DefaultReactDir = "src/icons"
)

// Writer writes normalized icons. svgs maps component IDs to optimized SVG documents.
type Writer interface {
	Write(components []figma.Node, svgs map[string]string) (*Summary, error)
	// Target is the directory or file the writer produces.
	Target() string
}

// Summary describes what a Writer produced.
type Summary struct {
	Files   []string // paths written
	Icons   int      // icons written
	Skipped []Skip   // components left out of a per-file export
}

// Skip records a component that could not be written.
type Skip struct {
	Name string
	Err  error
}

// Formats lists the names New accepts.
func Formats() []string {
	return []string{FormatFiles, FormatJSON, FormatReact}
}

// New returns the Writer for format. An empty target selects the format's default location.
func New(format, target string, reporter progress.Reporter) (Writer, error) {
	switch format {
	case "", FormatFiles:
		return &FileWriter{Dir: orDefault(target, DefaultFilesDir), Reporter: reporter}, nil
	case FormatJSON:
		return &JSONWriter{Path: orDefault(target, DefaultJSONFile)}, nil
	case FormatReact:
		return &ReactWriter{Dir: orDefault(target, DefaultReactDir), Reporter: reporter, Entrypoints: true}, nil
	default:
		return nil, fmt.Errorf("invalid output format %q (must be %s)", format, strings.Join(Formats(), ", "))
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// FileName turns a component name into a lowercase, hyphenated file name without extension:
// "Arrow Right" → "arrow-right", "ChevronDown/Small" → "chevron-down-small". Letters outside
// ASCII are kept: "Flèche" → "flèche".
func FileName(name string) string {
	name = strings.ToLower(strcase.ToKebab(name))
	name = strings.Trim(unsafeFileChars.ReplaceAllString(name, "-"), "-")
	if name == "" {
		return "icon"
	}
	return name
}

var nonWordChars = regexp.MustCompile(`[^A-Za-z0-9]+`)

// ComponentName turns a component name into a PascalCase JavaScript identifier:
// "arrow right" → "ArrowRight", "HTTPServer" → "HttpServer", "Flèche" → "Fleche".
// Names starting with a digit get an "Svg" prefix.
func ComponentName(name string) string {
	if folded, _, err := transform.String(foldMarks(), name); err == nil {
		name = folded
	}
	words := strcase.ToDelimited(nonWordChars.ReplaceAllString(name, " "), ' ')
	name = strcase.ToCamel(words)
	if name == "" {
		return "Icon"
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "Svg" + name
	}
	return name
}

// foldMarks strips combining marks, so accented letters become their ASCII base.
func foldMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// cleanSizeDirs makes sure dir exists and removes the <size> subdirectories a previous
// export left in it. Any other entry of dir is kept.
func cleanSizeDirs(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read output directory %q: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || !isSizeDir(entry.Name()) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("failed to clean output directory %q: %w", dir, err)
		}
	}

	return nil
}

// isSizeDir reports whether name is a directory name extractor.FormatSize produces.
func isSizeDir(name string) bool {
	if name == "" || name[0] < '0' || name[0] > '9' {
		return false
	}
	size, err := strconv.ParseFloat(name, 64)
	return err == nil && size > 0 && extractor.FormatSize(size) == name
}
