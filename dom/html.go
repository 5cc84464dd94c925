package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Adapter over golang.org/x/net/html parse trees. Comments, doctypes and
// other non-content nodes are invisible through the Node contract.

type htmlElement struct {
	n *html.Node
}

func (e htmlElement) Kind() Kind  { return KindElement }
func (e htmlElement) Tag() string { return strings.ToLower(e.n.Data) }

func (e htmlElement) Attributes() []Attribute {
	if len(e.n.Attr) == 0 {
		return nil
	}
	attrs := make([]Attribute, 0, len(e.n.Attr))
	for _, a := range e.n.Attr {
		attrs = append(attrs, Attribute{Name: strings.ToLower(a.Key), Value: a.Val})
	}
	return attrs
}

func (e htmlElement) Attr(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

func (e htmlElement) Children() []Node {
	var out []Node
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			out = append(out, htmlElement{n: c})
		case html.TextNode:
			out = append(out, htmlText{n: c})
		}
	}
	return out
}

type htmlText struct {
	n *html.Node
}

func (t htmlText) Kind() Kind    { return KindText }
func (t htmlText) Value() string { return t.n.Data }

// FromHTML wraps a parsed x/net/html node. Document nodes are presented as
// elements so a whole parse tree can be handed to the converter directly.
func FromHTML(n *html.Node) (Node, error) {
	if n == nil {
		return nil, fmt.Errorf("nil html node")
	}
	switch n.Type {
	case html.ElementNode, html.DocumentNode:
		return htmlElement{n: n}, nil
	case html.TextNode:
		return htmlText{n: n}, nil
	default:
		return nil, fmt.Errorf("unsupported html node type %d", n.Type)
	}
}

// ParseDocument parses a complete HTML document and returns its body element.
func ParseDocument(r io.Reader) (Element, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	body := findElement(doc, atom.Body)
	if body == nil {
		// html.Parse always synthesizes a body, but do not rely on it
		return htmlElement{n: doc}, nil
	}
	return htmlElement{n: body}, nil
}

// ParseFragment parses an HTML fragment in body context and returns one
// container element holding the fragment's top-level nodes.
func ParseFragment(markup string) (Element, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse html fragment: %w", err)
	}
	container := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return htmlElement{n: container}, nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
