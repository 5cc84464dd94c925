package convert

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"richdoc/css"
	"richdoc/dom"
	"richdoc/model"
)

var (
	// ErrInvalidInput is returned when the value handed to Convert is not a
	// node at all.
	ErrInvalidInput = errors.New("input is not a valid node")
	// ErrInvalidConfiguration is returned when options do not have the
	// documented shape.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// BlockOverride is what a BlockFn may return to take precedence over the
// fixed tag tables: a block type and optional opaque block data.
type BlockOverride struct {
	Type model.BlockType
	Data map[string]any
}

// BlockFn classifies an element into a block type, overriding the fixed
// tables. Returning nil falls back to the default classification. The hook is
// treated as pure and read-only for the duration of a conversion.
type BlockFn func(dom.Element) *BlockOverride

// Options configure one converter. All fields are optional and must not be
// mutated while a conversion is running.
type Options struct {
	// ElementStyles maps a tag name to a style identifier, consulted when no
	// fixed built-in style rule matches the tag.
	ElementStyles map[string]string

	// CustomStyleMap maps a style identifier to the declarations that
	// recognize it in inline style attributes.
	CustomStyleMap map[string]css.Declarations

	// BlockFn overrides block classification per element.
	BlockFn BlockFn
}

// validate checks the options shape, reporting every problem at once.
func (o *Options) validate() error {
	var errs error
	for tag, style := range o.ElementStyles {
		if tag == "" {
			errs = multierr.Append(errs, fmt.Errorf("element style for %q: empty tag name", style))
		}
		if style == "" {
			errs = multierr.Append(errs, fmt.Errorf("element style for tag %q: empty style identifier", tag))
		}
	}
	for name, ds := range o.CustomStyleMap {
		if name == "" {
			errs = multierr.Append(errs, errors.New("custom style with empty identifier"))
		}
		if len(ds) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("custom style %q: no declarations", name))
			continue
		}
		for _, d := range ds {
			if d.Property == "" {
				errs = multierr.Append(errs, fmt.Errorf("custom style %q: declaration with empty property", name))
			}
		}
	}
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, errs)
	}
	return nil
}
