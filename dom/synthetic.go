package dom

import (
	"fmt"
	"strings"
)

// SynthElement is a tree node constructed in code, without any parser behind
// it. Tests and embedders build inputs with Elem/Txt and Set.
type SynthElement struct {
	tag      string
	attrs    []Attribute
	children []Node
}

// Elem creates a synthetic element with the given children.
func Elem(tag string, children ...Node) *SynthElement {
	return &SynthElement{tag: strings.ToLower(tag), children: children}
}

// Set appends an attribute and returns the element for chaining.
func (e *SynthElement) Set(name, value string) *SynthElement {
	e.attrs = append(e.attrs, Attribute{Name: strings.ToLower(name), Value: value})
	return e
}

// Add appends children and returns the element for chaining.
func (e *SynthElement) Add(children ...Node) *SynthElement {
	e.children = append(e.children, children...)
	return e
}

func (e *SynthElement) Kind() Kind              { return KindElement }
func (e *SynthElement) Tag() string             { return e.tag }
func (e *SynthElement) Attributes() []Attribute { return e.attrs }
func (e *SynthElement) Children() []Node        { return e.children }

func (e *SynthElement) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (e *SynthElement) String() string {
	return fmt.Sprintf("<%s> (%d attrs, %d children)", e.tag, len(e.attrs), len(e.children))
}

// SynthText is a synthetic text node.
type SynthText string

// Txt creates a synthetic text node.
func Txt(s string) SynthText { return SynthText(s) }

func (t SynthText) Kind() Kind    { return KindText }
func (t SynthText) Value() string { return string(t) }
