package extractor

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kataras/figma-icons/pkg/figma"
)

// ErrNoBoundingBox is returned by Size for components Figma sent without an absolute bounding box.
var ErrNoBoundingBox = errors.New("missing bounding box")

// Components walks the document tree depth-first and returns every COMPONENT node in document order.
// Documents, canvases, frames and groups are walked into; a component is collected without looking
// at its children; everything else is ignored.
func Components(root *figma.Node) []figma.Node {
	components := []figma.Node{}
	if root == nil {
		return components
	}

	return collectComponents(root, components)
}

func collectComponents(node *figma.Node, components []figma.Node) []figma.Node {
	switch node.Kind() {
	case figma.KindComponent:
		return append(components, *node)
	case figma.KindContainer:
		for i := range node.Children {
			components = collectComponents(&node.Children[i], components)
		}
	}

	return components
}

// Size returns the edge length of a square component.
// Icons must be square; a width that differs from the height is an error.
func Size(component figma.Node) (float64, error) {
	box := component.AbsoluteBoundingBox
	if box == nil {
		return 0, ErrNoBoundingBox
	}

	if box.Width != box.Height {
		return 0, fmt.Errorf("width (%s) and height (%s) do not match", FormatSize(box.Width), FormatSize(box.Height))
	}

	return box.Width, nil
}

// FormatSize renders a size the way it appears in directory names and JSON keys: 24, 24.5.
func FormatSize(size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 64)
}
