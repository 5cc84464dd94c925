package convert

import (
	"richdoc/dom"
	"richdoc/model"
)

// linkAttrs are the anchor attributes copied into link entity data besides
// the required href.
var linkAttrs = []string{"rel", "target", "title"}

// resolveEntity extracts an entity from an inline element, or nil when the
// element carries none. An anchor without href and an image without src yield
// nil so the enclosing active entity stays in effect.
func resolveEntity(el dom.Element) *model.Entity {
	switch el.Tag() {
	case "a":
		href, ok := el.Attr("href")
		if !ok || href == "" {
			return nil
		}
		data := map[string]string{"url": href}
		for _, name := range linkAttrs {
			if v, ok := el.Attr(name); ok {
				data[name] = v
			}
		}
		addDataAttrs(data, el)
		return &model.Entity{Kind: model.EntityLink, Mutability: model.Mutable, Data: data}

	case "img":
		src, ok := el.Attr("src")
		if !ok || src == "" {
			return nil
		}
		data := map[string]string{"src": src}
		if alt, ok := el.Attr("alt"); ok {
			data["alt"] = alt
		}
		addDataAttrs(data, el)
		return &model.Entity{Kind: model.EntityImage, Mutability: model.Mutable, Data: data}
	}
	return nil
}

func addDataAttrs(data map[string]string, el dom.Element) {
	for _, a := range dom.DataAttributes(el) {
		data[a.Name] = a.Value
	}
}
