package css

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// ParseInline parses the content of a style="" attribute into normalized
// declarations. Malformed input never fails: whatever parses is returned,
// the rest is dropped. The optional logger traces what was skipped.
func ParseInline(style string, log *zap.Logger) Declarations {
	if log == nil {
		log = zap.NewNop()
	}
	style = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(style), ";"))
	if style == "" {
		return nil
	}

	input := parse.NewInput(strings.NewReader(style))
	parser := css.NewParser(input, true)

	var ds Declarations
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				log.Debug("Inline style parse stopped", zap.Error(parser.Err()), zap.String("style", style))
			}
			return ds

		case css.DeclarationGrammar:
			prop := normalizeProperty(string(data))
			val := joinTokens(parser.Values())
			if prop == "" || val == "" {
				continue
			}
			ds = append(ds, Declaration{Property: prop, Value: normalizeValue(val)})

		case css.CustomPropertyGrammar:
			// custom properties (--var) carry no style information for us
			continue
		}
	}
}

// joinTokens renders value tokens to a string with single spaces between
// non-whitespace tokens.
func joinTokens(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
