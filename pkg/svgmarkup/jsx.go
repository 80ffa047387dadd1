package svgmarkup

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var svgContext = &html.Node{Type: html.ElementNode, Data: "svg", DataAtom: atom.Svg, Namespace: "svg"}

var jsxText = strings.NewReplacer("{", "&#123;", "}", "&#125;")

// ToJSX converts the inner markup of an SVG element into JSX: hyphenated and namespaced
// attributes become camelCase props, inline styles become style objects and childless
// elements are self-closed.
func ToJSX(contents string) (string, error) {
	nodes, err := html.ParseFragment(strings.NewReader(contents), svgContext)
	if err != nil {
		return "", fmt.Errorf("parse svg contents: %w", err)
	}

	var sb strings.Builder
	for _, n := range nodes {
		writeJSX(&sb, n)
	}

	return sb.String(), nil
}

func writeJSX(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) != "" {
			sb.WriteString(jsxText.Replace(html.EscapeString(n.Data)))
		}
		return
	case html.ElementNode:
	default:
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.Data)
	for _, a := range n.Attr {
		sb.WriteByte(' ')
		sb.WriteString(JSXAttrName(a))
		sb.WriteByte('=')
		if a.Namespace == "" && a.Key == "style" {
			sb.WriteString(styleObject(a.Val))
			continue
		}
		sb.WriteByte('"')
		sb.WriteString(html.EscapeString(a.Val))
		sb.WriteByte('"')
	}

	if n.FirstChild == nil {
		sb.WriteString(" />")
		return
	}

	sb.WriteByte('>')
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeJSX(sb, c)
	}
	sb.WriteString("</")
	sb.WriteString(n.Data)
	sb.WriteByte('>')
}

// JSXAttrName returns the React prop name for an SVG attribute,
// e.g. fill-rule → fillRule, xlink:href → xlinkHref, class → className.
func JSXAttrName(a html.Attribute) string {
	if a.Namespace != "" {
		return a.Namespace + strcase.ToCamel(a.Key)
	}

	switch {
	case a.Key == "class":
		return "className"
	case strings.HasPrefix(a.Key, "data-"), strings.HasPrefix(a.Key, "aria-"):
		return a.Key
	case strings.ContainsAny(a.Key, "-:"):
		return strcase.ToLowerCamel(strings.ReplaceAll(a.Key, ":", "-"))
	}

	return a.Key
}

// styleObject turns "mix-blend-mode:multiply;opacity:.5" into {{mixBlendMode: 'multiply', opacity: '.5'}}.
func styleObject(style string) string {
	var props []string
	for _, decl := range strings.Split(style, ";") {
		key, val, ok := strings.Cut(decl, ":")
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)
		if !ok || key == "" {
			continue
		}
		val = strings.ReplaceAll(val, `'`, `\'`)
		props = append(props, fmt.Sprintf("%s: '%s'", strcase.ToLowerCamel(key), val))
	}

	return "{{" + strings.Join(props, ", ") + "}}"
}
