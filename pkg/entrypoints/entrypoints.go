// Package entrypoints writes barrel files that re-export every module of a directory.
package entrypoints

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kataras/figma-icons/pkg/progress"
)

// DefaultFileName is the entrypoint written into each directory.
const DefaultFileName = "index.ts"

// Options configures Generate.
type Options struct {
	// FileName of the entrypoint, "index.ts" when empty.
	FileName string
}

func (o Options) fileName() string {
	if o.FileName == "" {
		return DefaultFileName
	}
	return o.FileName
}

// Render builds the entrypoint for the given file names: one default re-export per file,
// named after the file without its extension. The entrypoint itself and directories are left out.
func Render(files []string, entrypoint string) string {
	exports := make([]string, 0, len(files))
	for _, file := range files {
		if filepath.Base(file) == entrypoint {
			continue
		}
		name := ExportName(file)
		exports = append(exports, fmt.Sprintf("export { default as %s } from './%s';", name, name))
	}

	return strings.Join(exports, "\n")
}

// ExportName derives the export identifier of a module file: Foo.tsx → Foo.
func ExportName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Generate lists the files in dir (sorted by name) and overwrites the entrypoint with
// a re-export of each of them. It returns the path of the written entrypoint.
func Generate(dir string, opts Options) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read directory %q: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}

	outFile := filepath.Join(dir, opts.fileName())
	if err := os.WriteFile(outFile, []byte(Render(files, opts.fileName())), 0644); err != nil {
		return "", fmt.Errorf("write %q: %w", outFile, err)
	}

	return outFile, nil
}

// GenerateAll runs Generate for every directory, reporting progress per entrypoint.
// It stops at the first failure.
func GenerateAll(dirs []string, opts Options, reporter progress.Reporter) ([]string, error) {
	reporter = progress.OrNop(reporter)
	reporter.Info("Generating entrypoints for %s", strings.Join(dirs, ", "))

	written := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		reporter.Start("Generating %s", filepath.Join(dir, opts.fileName()))

		outFile, err := Generate(dir, opts)
		if err != nil {
			return written, err
		}

		written = append(written, outFile)
		reporter.Succeed("Generated %s", outFile)
	}

	return written, nil
}
