package formatter

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kataras/figma-icons/pkg/entrypoints"
	"github.com/kataras/figma-icons/pkg/extractor"
	"github.com/kataras/figma-icons/pkg/figma"
	"github.com/kataras/figma-icons/pkg/progress"
	"github.com/kataras/figma-icons/pkg/svgmarkup"
)

const reactTemplate = `import * as React from 'react';
const %[1]s = (props: React.SVGProps<SVGSVGElement>) => <svg xmlns="%[2]s" width={%[3]s} height={%[3]s} viewBox="0 0 %[3]s %[3]s" fill="currentColor" {...props}>%[4]s</svg>;
export default %[1]s;
`

// ReactComponent renders a TypeScript React component for an icon of the given size.
func ReactComponent(name string, size float64, contents string) (string, error) {
	jsx, err := svgmarkup.ToJSX(contents)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(reactTemplate, name, svgmarkup.Namespace, extractor.FormatSize(size), jsx), nil
}

// ReactWriter writes one component per icon to Dir/<size>/<ComponentName>.tsx.
// Size directories left by a previous export are removed first, failing components are reported and skipped. With Entrypoints set,
// an index.ts re-exporting the components is generated in every size directory.
type ReactWriter struct {
	Dir         string
	Reporter    progress.Reporter
	Entrypoints bool
}

func (w *ReactWriter) Target() string { return w.Dir }

func (w *ReactWriter) Write(components []figma.Node, svgs map[string]string) (*Summary, error) {
	if err := cleanSizeDirs(w.Dir); err != nil {
		return nil, err
	}

	reporter := progress.OrNop(w.Reporter)
	summary, err := writeEach(w.Dir, components, reporter, func(component figma.Node, size float64) (string, []byte, error) {
		name := ComponentName(component.Name)
		src, err := ReactComponent(name, size, svgmarkup.InnerContents(svgs[component.ID]))
		if err != nil {
			return "", nil, err
		}
		return name + ".tsx", []byte(src), nil
	})
	if err != nil || !w.Entrypoints {
		return summary, err
	}

	dirs := sizeDirs(summary.Files)
	if len(dirs) == 0 {
		return summary, nil
	}
	indexes, err := entrypoints.GenerateAll(dirs, entrypoints.Options{}, reporter)
	if err != nil {
		return nil, err
	}
	summary.Files = append(summary.Files, indexes...)

	return summary, nil
}

// sizeDirs returns the distinct parent directories of files, sorted.
func sizeDirs(files []string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, f := range files {
		dir := filepath.Dir(f)
		if !seen[dir] && strings.HasSuffix(f, ".tsx") {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)

	return dirs
}
