package convert

import "richdoc/model"

// annotation carries the styles and entity active for one character. The
// annotation sequence always has exactly one entry per rune of block text.
type annotation struct {
	styles []string
	entity int
}

// noEntity marks characters outside any entity scope.
const noEntity = -1

func (a annotation) hasStyle(style string) bool {
	for _, s := range a.styles {
		if s == style {
			return true
		}
	}
	return false
}

// styleRanges coalesces per-character annotations into ranges. Ranges are
// grouped by style identifier in first-seen order, runs in text order within
// each identifier, so equal input always serializes identically.
func styleRanges(ann []annotation) []model.StyleRange {
	var order []string
	seen := make(map[string]struct{})
	for _, a := range ann {
		for _, s := range a.styles {
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				order = append(order, s)
			}
		}
	}

	var out []model.StyleRange
	for _, style := range order {
		for i := 0; i < len(ann); {
			if !ann[i].hasStyle(style) {
				i++
				continue
			}
			j := i + 1
			for j < len(ann) && ann[j].hasStyle(style) {
				j++
			}
			out = append(out, model.StyleRange{Offset: i, Length: j - i, Style: style})
			i = j
		}
	}
	return out
}

// entityRanges coalesces runs of characters under the same entity key.
func entityRanges(ann []annotation) []model.EntityRange {
	var out []model.EntityRange
	for i := 0; i < len(ann); {
		key := ann[i].entity
		if key == noEntity {
			i++
			continue
		}
		j := i + 1
		for j < len(ann) && ann[j].entity == key {
			j++
		}
		out = append(out, model.EntityRange{Offset: i, Length: j - i, Key: key})
		i = j
	}
	return out
}
