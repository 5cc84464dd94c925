package convert

import (
	"richdoc/css"
	"richdoc/dom"
)

// Style sets are immutable: adding a style returns a new set, the one beneath
// on the stack is never touched. This keeps sibling inline scopes independent.

// addStyle returns the set extended by style, preserving first-seen order.
// Adding a style already present returns the set unchanged.
func addStyle(set []string, style string) []string {
	for _, s := range set {
		if s == style {
			return set
		}
	}
	out := make([]string, len(set), len(set)+1)
	copy(out, set)
	return append(out, style)
}

// resolveTagStyle adds the style contributed by the tag itself: the fixed
// built-in rule when one exists, otherwise the caller-supplied element style.
func resolveTagStyle(current []string, tag string, elementStyles map[string]string) []string {
	if s, ok := tagStyles[tag]; ok {
		return addStyle(current, s)
	}
	if s, ok := elementStyles[tag]; ok {
		return addStyle(current, s)
	}
	return current
}

// resolveStyles combines the enclosing style set with everything this inline
// element contributes: its tag rule plus any style attribute declarations
// matching the caller's custom style map.
func (w *walker) resolveStyles(current []string, el dom.Element, tag string) []string {
	next := resolveTagStyle(current, tag, w.opts.ElementStyles)
	if attr, ok := el.Attr("style"); ok && attr != "" {
		for _, d := range css.ParseInline(attr, w.log) {
			if name, ok := w.styleIndex.Resolve(d); ok {
				next = addStyle(next, name)
			}
		}
	}
	return next
}
