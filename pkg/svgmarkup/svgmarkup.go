// Package svgmarkup cleans up SVG documents exported by Figma so they can be
// recolored with CSS: presentation attributes are removed, the root element is
// peeled off and whitespace is collapsed.
package svgmarkup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Namespace is the SVG XML namespace written on every generated root element.
const Namespace = "http://www.w3.org/2000/svg"

// PresentationAttrs matches the attributes Optimize strips from every element.
var PresentationAttrs = regexp.MustCompile(`^(fill|stroke.*)$`)

var whitespaceRe = regexp.MustCompile(`\s+`)

var bodyContext = &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

// Optimize removes fill and stroke* attributes from every element of svg and drops comments.
// The result is still a complete SVG document.
func Optimize(svg string) (string, error) {
	nodes, err := html.ParseFragment(strings.NewReader(svg), bodyContext)
	if err != nil {
		return "", fmt.Errorf("parse svg: %w", err)
	}

	var sb strings.Builder
	for _, n := range nodes {
		if n.Type == html.CommentNode || n.Type == html.DoctypeNode {
			continue
		}
		stripAttrs(n)
		if err := html.Render(&sb, n); err != nil {
			return "", fmt.Errorf("render svg: %w", err)
		}
	}

	return sb.String(), nil
}

func stripAttrs(n *html.Node) {
	if n.Type == html.ElementNode {
		kept := n.Attr[:0]
		for _, a := range n.Attr {
			if a.Namespace == "" && PresentationAttrs.MatchString(a.Key) {
				continue
			}
			kept = append(kept, a)
		}
		n.Attr = kept
	}

	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
		} else {
			stripAttrs(c)
		}
		c = next
	}
}

// InnerContents returns the markup between the opening and closing tags of the first <svg>
// element with whitespace collapsed. It returns an empty string when svg has no such element.
func InnerContents(svg string) string {
	nodes, err := html.ParseFragment(strings.NewReader(svg), bodyContext)
	if err != nil {
		return ""
	}

	var root *html.Node
	for _, n := range nodes {
		if root = findSVG(n); root != nil {
			break
		}
	}
	if root == nil {
		return ""
	}

	collapseWhitespace(root)

	var sb strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return ""
		}
	}

	return sb.String()
}

func findSVG(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "svg" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findSVG(c); found != nil {
			return found
		}
	}

	return nil
}

// collapseWhitespace drops whitespace-only text between tags and squeezes runs of
// whitespace inside text to a single space.
func collapseWhitespace(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		switch c.Type {
		case html.TextNode:
			text := strings.TrimSpace(whitespaceRe.ReplaceAllString(c.Data, " "))
			if text == "" {
				n.RemoveChild(c)
			} else {
				c.Data = text
			}
		case html.CommentNode:
			n.RemoveChild(c)
		case html.ElementNode:
			collapseWhitespace(c)
		}
		c = next
	}
}

// Wrap builds a standalone square SVG document around contents.
// The root carries the namespace, width and height of size, a 0 0 size size viewBox and
// fill="currentColor" so the icon takes the surrounding text color.
func Wrap(size float64, contents string) string {
	s := strconv.FormatFloat(size, 'f', -1, 64)
	return fmt.Sprintf(`<svg xmlns="%s" width="%s" height="%s" viewBox="0 0 %s %s" fill="currentColor">%s</svg>`,
		Namespace, s, s, s, s, contents)
}
