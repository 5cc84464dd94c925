// Package convert walks a read-only markup tree and produces the rich
// document model: ordered blocks with inline style ranges and entity ranges.
// Conversion is total over malformed markup: unknown tags degrade to unstyled
// blocks or plain text, missing attributes degrade to "no entity". Only a
// value that is not a node at all or options of the wrong shape fail.
package convert

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"richdoc/css"
	"richdoc/dom"
	"richdoc/model"
)

const (
	// softBreak is the internal line-break placeholder. Input CR and CRLF are
	// normalized to '\n' before substitution, so it cannot occur naturally.
	softBreak = '\r'
	// objectChar occupies one character position for self-closing elements so
	// entity ranges have an anchor. Non-breaking, survives collapsing.
	objectChar = ' '
	// zeroWidthSpace in source text marks a pre-existing break placeholder.
	zeroWidthSpace = "​"
)

// Converter converts markup trees into content states. A converter is
// immutable after New and safe for concurrent use; all traversal state is
// local to one Convert call.
type Converter struct {
	opts Options
	log  *zap.Logger
}

// New validates the options and creates a converter.
func New(opts Options, log *zap.Logger) (*Converter, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Converter{opts: opts, log: log.Named("converter")}, nil
}

// Convert is a convenience wrapper creating a one-shot converter.
func Convert(root dom.Node, opts Options, log *zap.Logger) (*model.ContentState, error) {
	c, err := New(opts, log)
	if err != nil {
		return nil, err
	}
	return c.Convert(root)
}

// Convert walks the tree and returns the converted document. The root is
// always treated as block-level regardless of its tag. The input tree is
// never mutated.
func (c *Converter) Convert(root dom.Node) (*model.ContentState, error) {
	w := &walker{
		opts:       &c.opts,
		styleIndex: css.NewIndex(c.opts.CustomStyleMap),
		log:        c.log,
		entities:   make(map[int]model.Entity),
	}

	switch n := root.(type) {
	case dom.Element:
		w.walkBlock(n)
	case dom.Text:
		// bare text converts as if wrapped in a generic container
		pb := newParsedBlock("", model.Unstyled, nil, 0)
		w.blockStack = append(w.blockStack, pb)
		w.blockList = append(w.blockList, pb)
		w.text(n)
		w.blockStack = w.blockStack[:0]
	case nil:
		return nil, fmt.Errorf("%w: nil node", ErrInvalidInput)
	default:
		return nil, fmt.Errorf("%w: %T does not implement Element or Text", ErrInvalidInput, root)
	}

	blocks := w.emit()
	c.log.Debug("Converted tree",
		zap.Int("blocks", len(blocks)),
		zap.Int("entities", len(w.entities)),
		zap.Int("dropped_empty", w.dropped))
	return model.New(blocks, w.entities), nil
}

// walker holds the state of one traversal: the stack of open blocks, the
// linear list of blocks destined for output, and the list nesting counter.
type walker struct {
	opts       *Options
	styleIndex css.Index
	log        *zap.Logger

	blockStack []*parsedBlock
	blockList  []*parsedBlock
	listDepth  int

	entities map[int]model.Entity
	dropped  int
}

// parsedBlock is one open block during traversal: accumulated text fragments
// plus the stacks of active inline styles and entities. The innermost stack
// entry is what the next text fragment gets annotated with.
type parsedBlock struct {
	tag   string
	typ   model.BlockType
	data  map[string]any
	depth int

	frags       []fragment
	styleStack  [][]string
	entityStack []int
}

// fragment is a run of text sharing one style set and entity.
type fragment struct {
	runes  []rune
	styles []string
	entity int
}

func newParsedBlock(tag string, typ model.BlockType, data map[string]any, depth int) *parsedBlock {
	return &parsedBlock{
		tag:         tag,
		typ:         typ,
		data:        data,
		depth:       depth,
		styleStack:  [][]string{nil},
		entityStack: []int{noEntity},
	}
}

func (pb *parsedBlock) topStyles() []string { return pb.styleStack[len(pb.styleStack)-1] }
func (pb *parsedBlock) topEntity() int      { return pb.entityStack[len(pb.entityStack)-1] }

func (pb *parsedBlock) push(styles []string, entity int) {
	pb.styleStack = append(pb.styleStack, styles)
	pb.entityStack = append(pb.entityStack, entity)
}

func (pb *parsedBlock) pop() {
	pb.styleStack = pb.styleStack[:len(pb.styleStack)-1]
	pb.entityStack = pb.entityStack[:len(pb.entityStack)-1]
}

func (pb *parsedBlock) emitRune(r rune) {
	pb.frags = append(pb.frags, fragment{runes: []rune{r}, styles: pb.topStyles(), entity: pb.topEntity()})
}

// drain concatenates fragments into flat text with one annotation per rune.
func (pb *parsedBlock) drain() ([]rune, []annotation) {
	n := 0
	for _, f := range pb.frags {
		n += len(f.runes)
	}
	text := make([]rune, 0, n)
	ann := make([]annotation, 0, n)
	for _, f := range pb.frags {
		for _, r := range f.runes {
			text = append(text, r)
			ann = append(ann, annotation{styles: f.styles, entity: f.entity})
		}
	}
	return text, ann
}

func (w *walker) current() *parsedBlock {
	return w.blockStack[len(w.blockStack)-1]
}

func (w *walker) parentTag() string {
	if len(w.blockStack) == 0 {
		return ""
	}
	return w.current().tag
}

// walkBlock opens a block for the element, walks its subtree and closes it.
// Special container tags open a context but are not listed for output, so
// their own text is discarded while nested renderable blocks survive.
func (w *walker) walkBlock(el dom.Element) {
	tag := el.Tag()
	typ, data := w.classify(el, tag)

	depth := 0
	if typ.ListItem() {
		depth = w.listDepth
	}
	pb := newParsedBlock(tag, typ, data, depth)

	listed := !isSpecial(tag)
	w.blockStack = append(w.blockStack, pb)
	if listed {
		w.blockList = append(w.blockList, pb)
	}

	bumped := false
	if listed && typ.ListItem() {
		w.listDepth++
		bumped = true
	}

	for _, child := range el.Children() {
		w.walkNode(child)
	}

	if bumped {
		w.listDepth--
	}
	w.blockStack = w.blockStack[:len(w.blockStack)-1]
}

// classify determines the block type: the caller hook wins, then the fixed
// tables. List items look at the nearest enclosing open block to pick
// ordered vs unordered.
func (w *walker) classify(el dom.Element, tag string) (model.BlockType, map[string]any) {
	if w.opts.BlockFn != nil {
		if ov := w.opts.BlockFn(el); ov != nil && ov.Type.Valid() {
			return ov.Type, ov.Data
		}
	}
	if tag == "li" {
		if w.parentTag() == "ol" {
			return model.OrderedListItem, nil
		}
		return model.UnorderedListItem, nil
	}
	if t, ok := blockTypeByTag[tag]; ok {
		return t, nil
	}
	return model.Unstyled, nil
}

func (w *walker) walkNode(n dom.Node) {
	switch t := n.(type) {
	case dom.Element:
		tag := t.Tag()
		if isInline(tag) {
			w.walkInline(t, tag)
		} else {
			w.walkBlock(t)
		}
	case dom.Text:
		w.text(t)
	default:
		w.log.Debug("Skipping unknown node implementation", zap.String("type", fmt.Sprintf("%T", n)))
	}
}

// walkInline pushes the element's style set and entity onto the current
// block's stacks for the duration of its subtree. Break tags emit the
// soft-break placeholder and nothing else; self-closing tags emit one
// placeholder character so their entity has a position to attach to.
func (w *walker) walkInline(el dom.Element, tag string) {
	pb := w.current()

	if isBreak(tag) {
		pb.emitRune(softBreak)
		return
	}

	styles := w.resolveStyles(pb.topStyles(), el, tag)
	entity := pb.topEntity()
	if e := resolveEntity(el); e != nil {
		entity = w.addEntity(*e)
	}

	pb.push(styles, entity)
	for _, child := range el.Children() {
		w.walkNode(child)
	}
	if isSelfClosing(tag) {
		pb.emitRune(objectChar)
	}
	pb.pop()
}

// text appends a text fragment under the current top-of-stack scope. Line
// ending variants are canonicalized first, then pre-existing zero-width-space
// placeholders become soft breaks.
func (w *walker) text(t dom.Text) {
	val := normalizeBreaks(t.Value())
	if val == "" {
		return
	}
	pb := w.current()
	pb.frags = append(pb.frags, fragment{runes: []rune(val), styles: pb.topStyles(), entity: pb.topEntity()})
}

func normalizeBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, zeroWidthSpace, string(softBreak))
}

func (w *walker) addEntity(e model.Entity) int {
	key := len(w.entities)
	w.entities[key] = e
	return key
}

// emit normalizes every listed block and builds the final block sequence.
// Empty blocks are dropped unless their entire content was a single soft
// break, which survives as an explicitly preserved empty block.
func (w *walker) emit() []model.Block {
	blocks := make([]model.Block, 0, len(w.blockList))
	for _, pb := range w.blockList {
		text, ann := pb.drain()
		if pb.typ == model.CodeBlock {
			text, ann = trimLeadingNewline(text, ann)
		} else {
			text, ann = collapseWhitespace(text, ann)
		}

		preserved := len(text) == 1 && text[0] == softBreak
		if preserved {
			text, ann = text[:0], ann[:0]
		} else {
			for i, r := range text {
				if r == softBreak {
					text[i] = '\n'
				}
			}
		}

		if len(text) == 0 && !preserved {
			w.dropped++
			continue
		}

		blocks = append(blocks, model.Block{
			Type:         pb.typ,
			Depth:        pb.depth,
			Text:         string(text),
			StyleRanges:  styleRanges(ann),
			EntityRanges: entityRanges(ann),
			Data:         pb.data,
		})
	}
	return blocks
}
