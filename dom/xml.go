package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// Adapter over etree documents, for XHTML and other XML-shaped markup.

type etreeElement struct {
	e *etree.Element
}

func (e etreeElement) Kind() Kind  { return KindElement }
func (e etreeElement) Tag() string { return strings.ToLower(e.e.Tag) }

func (e etreeElement) Attributes() []Attribute {
	if len(e.e.Attr) == 0 {
		return nil
	}
	attrs := make([]Attribute, 0, len(e.e.Attr))
	for _, a := range e.e.Attr {
		attrs = append(attrs, Attribute{Name: strings.ToLower(a.Key), Value: a.Value})
	}
	return attrs
}

func (e etreeElement) Attr(name string) (string, bool) {
	for _, a := range e.e.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Value, true
		}
	}
	return "", false
}

func (e etreeElement) Children() []Node {
	var out []Node
	for _, tok := range e.e.Child {
		switch c := tok.(type) {
		case *etree.Element:
			out = append(out, etreeElement{e: c})
		case *etree.CharData:
			out = append(out, etreeText{d: c})
		}
	}
	return out
}

type etreeText struct {
	d *etree.CharData
}

func (t etreeText) Kind() Kind    { return KindText }
func (t etreeText) Value() string { return t.d.Data }

// FromEtree wraps an etree element.
func FromEtree(e *etree.Element) (Element, error) {
	if e == nil {
		return nil, fmt.Errorf("nil etree element")
	}
	return etreeElement{e: e}, nil
}

// ReadXML reads an XML/XHTML document permissively and returns its root
// element. Character encodings are resolved the same way browsers do.
func ReadXML(r io.Reader) (Element, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		ValidateInput: false,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	return FromEtree(root)
}
