package convert

import "richdoc/model"

// Fixed classification tables. Immutable after initialization, shared by all
// conversions.

// inlineTags is the set of phrasing tags that contribute inline styling or
// entities instead of opening a new block.
var inlineTags = map[string]struct{}{
	"a": {}, "abbr": {}, "acronym": {}, "b": {}, "bdi": {}, "bdo": {},
	"big": {}, "br": {}, "button": {}, "cite": {}, "code": {}, "data": {},
	"del": {}, "dfn": {}, "em": {}, "embed": {}, "font": {}, "i": {},
	"img": {}, "input": {}, "ins": {}, "kbd": {}, "label": {}, "map": {},
	"mark": {}, "meter": {}, "nobr": {}, "object": {}, "output": {},
	"progress": {}, "q": {}, "rp": {}, "rt": {}, "ruby": {}, "s": {},
	"samp": {}, "slot": {}, "small": {}, "span": {}, "strike": {},
	"strong": {}, "sub": {}, "sup": {}, "time": {}, "tt": {}, "u": {},
	"var": {}, "wbr": {},
}

// specialTags open a block context but never appear in the output themselves:
// their own text is discarded, only nested renderable blocks survive.
var specialTags = map[string]struct{}{
	"html": {}, "head": {}, "title": {}, "meta": {}, "link": {},
	"style": {}, "script": {}, "noscript": {},
	"table": {}, "thead": {}, "tbody": {}, "tfoot": {}, "tr": {},
	"colgroup": {}, "col": {}, "caption": {},
	"ul": {}, "ol": {}, "select": {}, "optgroup": {}, "option": {},
	"datalist": {},
}

// selfClosingTags cannot contain visible children; they occupy one placeholder
// character so entity ranges have something to attach to.
var selfClosingTags = map[string]struct{}{
	"img": {}, "input": {}, "embed": {}, "wbr": {},
}

// breakTags force a line break inside the current block.
var breakTags = map[string]struct{}{
	"br": {},
}

// blockTypeByTag maps block-level tags to their block type. Anything missing
// here is unstyled; list items are classified by their enclosing list tag.
var blockTypeByTag = map[string]model.BlockType{
	"h1":         model.HeaderOne,
	"h2":         model.HeaderTwo,
	"h3":         model.HeaderThree,
	"h4":         model.HeaderFour,
	"h5":         model.HeaderFive,
	"h6":         model.HeaderSix,
	"blockquote": model.Blockquote,
	"pre":        model.CodeBlock,
	"figure":     model.Atomic,
}

// tagStyles maps inline tags to their fixed style identifier.
var tagStyles = map[string]string{
	"b":      "BOLD",
	"strong": "BOLD",
	"i":      "ITALIC",
	"em":     "ITALIC",
	"ins":    "UNDERLINE",
	"code":   "CODE",
	"del":    "STRIKETHROUGH",
}

func isInline(tag string) bool {
	_, ok := inlineTags[tag]
	return ok
}

func isSpecial(tag string) bool {
	_, ok := specialTags[tag]
	return ok
}

func isSelfClosing(tag string) bool {
	_, ok := selfClosingTags[tag]
	return ok
}

func isBreak(tag string) bool {
	_, ok := breakTags[tag]
	return ok
}
