// Package dom defines the read-only node contract the converter walks. A tree
// is made of two node variants, elements and text, behind small interfaces so
// that parsed HTML, parsed XML and synthetic test trees all convert the same
// way. Adapters never copy the underlying tree and never mutate it.
package dom

import "regexp"

// Kind discriminates node variants.
type Kind string

const (
	KindElement Kind = "element"
	KindText    Kind = "text"
)

// Node is a single node of an input tree: an Element or a Text.
type Node interface {
	Kind() Kind
}

// Element is a named node with ordered attributes and ordered children.
type Element interface {
	Node
	Tag() string
	Attributes() []Attribute
	// Attr returns the value of the first attribute with the given name.
	Attr(name string) (string, bool)
	Children() []Node
}

// Text is a leaf carrying character data.
type Text interface {
	Node
	Value() string
}

// Attribute is one name/value pair of an element.
type Attribute struct {
	Name  string
	Value string
}

var dataAttrRe = regexp.MustCompile(`^data-[a-z0-9-]+$`)

// IsDataAttr reports whether name is a custom data attribute.
func IsDataAttr(name string) bool {
	return dataAttrRe.MatchString(name)
}

// DataAttributes returns all data-* attributes of an element in document order.
func DataAttributes(e Element) []Attribute {
	var out []Attribute
	for _, a := range e.Attributes() {
		if IsDataAttr(a.Name) {
			out = append(out, a)
		}
	}
	return out
}
