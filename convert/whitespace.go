package convert

// Whitespace normalization over a block's drained text. Both operations keep
// the text and annotation sequences the same length: whatever character is
// removed takes its annotation with it.

// collapsible whitespace is what markup renderers fold away. The soft-break
// placeholder and non-breaking spaces are not collapsible.
func collapsible(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

// collapseWhitespace folds every run of collapsible whitespace into a single
// space, trims leading and trailing spaces, and removes one space adjacent to
// each soft-break placeholder on either side (a break already is a boundary).
// The operation is idempotent.
func collapseWhitespace(text []rune, ann []annotation) ([]rune, []annotation) {
	rs := make([]rune, 0, len(text))
	as := make([]annotation, 0, len(ann))
	for i := 0; i < len(text); {
		if collapsible(text[i]) {
			rs = append(rs, ' ')
			as = append(as, ann[i])
			for i < len(text) && collapsible(text[i]) {
				i++
			}
			continue
		}
		rs = append(rs, text[i])
		as = append(as, ann[i])
		i++
	}

	start := 0
	for start < len(rs) && rs[start] == ' ' {
		start++
	}
	end := len(rs)
	for end > start && rs[end-1] == ' ' {
		end--
	}
	rs, as = rs[start:end], as[start:end]

	outR := make([]rune, 0, len(rs))
	outA := make([]annotation, 0, len(as))
	for i := range rs {
		if rs[i] == ' ' {
			if i+1 < len(rs) && rs[i+1] == softBreak {
				continue
			}
			if i > 0 && rs[i-1] == softBreak {
				continue
			}
		}
		outR = append(outR, rs[i])
		outA = append(outA, as[i])
	}
	return outR, outA
}

// trimLeadingNewline removes exactly one leading newline, preserving all
// other whitespace verbatim. Used for code blocks only, where markup authors
// put the opening tag on its own line.
func trimLeadingNewline(text []rune, ann []annotation) ([]rune, []annotation) {
	if len(text) > 0 && text[0] == '\n' {
		return text[1:], ann[1:]
	}
	return text, ann
}
