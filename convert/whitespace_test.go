package convert

import "testing"

// uniform builds an annotation per rune so trims can be checked in lockstep.
func uniform(text []rune) []annotation {
	ann := make([]annotation, len(text))
	for i := range ann {
		ann[i] = annotation{entity: i}
	}
	return ann
}

func TestCollapseWhitespace(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple_run", in: "a  b", want: "a b"},
		{name: "mixed_run", in: "a \t\n b", want: "a b"},
		{name: "trim_both_ends", in: "  a b  ", want: "a b"},
		{name: "only_whitespace", in: " \t\n ", want: ""},
		{name: "space_before_break", in: "a \rb", want: "a\rb"},
		{name: "space_after_break", in: "a\r b", want: "a\rb"},
		{name: "spaces_both_sides", in: "a \r b", want: "a\rb"},
		{name: "consecutive_breaks", in: "a \r \r b", want: "a\r\rb"},
		{name: "nbsp_not_collapsed", in: "a  b", want: "a  b"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := []rune(tc.in)
			text, ann := collapseWhitespace(in, uniform(in))
			if string(text) != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, string(text))
			}
			if len(text) != len(ann) {
				t.Fatalf("length invariant broken: %d runes, %d annotations", len(text), len(ann))
			}
		})
	}
}

func TestCollapseWhitespaceIdempotent(t *testing.T) {
	inputs := []string{
		"  a  \t b \n c  ",
		"a \r b \r c",
		" \r ",
		"already clean",
	}
	for _, in := range inputs {
		rs := []rune(in)
		once, onceAnn := collapseWhitespace(rs, uniform(rs))
		twice, twiceAnn := collapseWhitespace(once, onceAnn)
		if string(once) != string(twice) {
			t.Fatalf("not idempotent for %q: %q vs %q", in, string(once), string(twice))
		}
		if len(twice) != len(twiceAnn) {
			t.Fatalf("length invariant broken for %q", in)
		}
	}
}

func TestCollapseKeepsAnnotationsInLockstep(t *testing.T) {
	// annotations carry their original index in the entity field, so after
	// collapsing each annotation must still point at the character it
	// annotated in the input
	in := []rune("  x  y\r z ")
	text, ann := collapseWhitespace(in, uniform(in))
	for i, r := range text {
		if r == ' ' || r == softBreak {
			continue
		}
		orig := ann[i].entity
		if in[orig] != r {
			t.Fatalf("annotation %d points at %q, expected %q", i, string(in[orig]), string(r))
		}
	}
}

func TestTrimLeadingNewline(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "one_leading_newline", in: "\ncode", want: "code"},
		{name: "only_first_removed", in: "\n\ncode", want: "\ncode"},
		{name: "no_leading_newline", in: "code\n", want: "code\n"},
		{name: "internal_untouched", in: "a\nb", want: "a\nb"},
		{name: "empty", in: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := []rune(tc.in)
			text, ann := trimLeadingNewline(in, uniform(in))
			if string(text) != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, string(text))
			}
			if len(text) != len(ann) {
				t.Fatalf("length invariant broken")
			}
		})
	}
}
