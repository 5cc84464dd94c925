// Package model defines the rich document produced by conversion: an ordered
// list of typed blocks with inline style ranges and entity ranges, plus the
// entity map the ranges point into.
package model

import (
	"strings"

	"github.com/google/uuid"
)

// BlockType distinguishes the different kinds of content blocks.
type BlockType string

const (
	Unstyled          BlockType = "unstyled"
	OrderedListItem   BlockType = "ordered-list-item"
	UnorderedListItem BlockType = "unordered-list-item"
	Blockquote        BlockType = "blockquote"
	HeaderOne         BlockType = "header-one"
	HeaderTwo         BlockType = "header-two"
	HeaderThree       BlockType = "header-three"
	HeaderFour        BlockType = "header-four"
	HeaderFive        BlockType = "header-five"
	HeaderSix         BlockType = "header-six"
	CodeBlock         BlockType = "code-block"
	Atomic            BlockType = "atomic"
)

// ListItem reports whether the type participates in list nesting depth.
func (bt BlockType) ListItem() bool {
	return bt == OrderedListItem || bt == UnorderedListItem
}

// Valid reports whether the type is one of the declared block types.
func (bt BlockType) Valid() bool {
	switch bt {
	case Unstyled, OrderedListItem, UnorderedListItem, Blockquote,
		HeaderOne, HeaderTwo, HeaderThree, HeaderFour, HeaderFive, HeaderSix,
		CodeBlock, Atomic:
		return true
	}
	return false
}

// StyleRange marks a run of text carrying one inline style.
// Offset and Length count runes.
type StyleRange struct {
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Style  string `json:"style"`
}

// EntityRange attaches the entity stored under Key to a run of text.
// Offset and Length count runes.
type EntityRange struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
	Key    int `json:"key"`
}

// Block is one paragraph-equivalent unit of the document.
type Block struct {
	Key          string         `json:"key"`
	Type         BlockType      `json:"type"`
	Depth        int            `json:"depth"`
	Text         string         `json:"text"`
	StyleRanges  []StyleRange   `json:"inlineStyleRanges"`
	EntityRanges []EntityRange  `json:"entityRanges"`
	Data         map[string]any `json:"data,omitempty"`
}

// EntityKind distinguishes entity payloads.
type EntityKind string

const (
	EntityLink  EntityKind = "LINK"
	EntityImage EntityKind = "IMAGE"
)

// Mutability describes how the editor may treat the entity's text range.
type Mutability string

const (
	Mutable   Mutability = "MUTABLE"
	Immutable Mutability = "IMMUTABLE"
	Segmented Mutability = "SEGMENTED"
)

// Entity is a reference object attached to text by key.
type Entity struct {
	Kind       EntityKind        `json:"type"`
	Mutability Mutability        `json:"mutability"`
	Data       map[string]string `json:"data"`
}

// ContentState is the complete converted document.
type ContentState struct {
	Blocks   []Block
	Entities map[int]Entity
}

// New builds a content state from a block array, assigning a fresh key to
// every block that does not carry one. The block slice is taken over, not
// copied. A document is never empty: with no blocks a single empty unstyled
// block is emitted.
func New(blocks []Block, entities map[int]Entity) *ContentState {
	if len(blocks) == 0 {
		blocks = []Block{{Type: Unstyled}}
	}
	for i := range blocks {
		if blocks[i].Key == "" {
			blocks[i].Key = NewBlockKey()
		}
		if blocks[i].StyleRanges == nil {
			blocks[i].StyleRanges = []StyleRange{}
		}
		if blocks[i].EntityRanges == nil {
			blocks[i].EntityRanges = []EntityRange{}
		}
	}
	if entities == nil {
		entities = make(map[int]Entity)
	}
	return &ContentState{Blocks: blocks, Entities: entities}
}

// PlainText returns the document text with blocks separated by newlines.
func (cs *ContentState) PlainText() string {
	parts := make([]string, 0, len(cs.Blocks))
	for i := range cs.Blocks {
		parts = append(parts, cs.Blocks[i].Text)
	}
	return strings.Join(parts, "\n")
}

// NewBlockKey generates a unique block identifier. Time-ordered UUIDs keep
// keys sorted by creation when available.
func NewBlockKey() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return strings.ReplaceAll(id.String(), "-", "")
}
