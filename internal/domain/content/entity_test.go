package content

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		in    string
		kind  Kind
		table string
		valid bool
	}{
		{"blog", KindBlog, "blogs", true},
		{"recipe", KindRecipe, "recipes", true},
		{"", "", "", false},
		{"Recipe", "", "", false},
		{"recipes", "", "", false},
		{"video", "", "", false},
	}

	for _, tc := range cases {
		k, err := ParseKind(tc.in)
		if tc.valid {
			if err != nil {
				t.Fatalf("ParseKind(%q) failed: %v", tc.in, err)
			}
			if k != tc.kind || k.Table() != tc.table || !k.Valid() {
				t.Fatalf("ParseKind(%q) = %q (table %q)", tc.in, k, k.Table())
			}
			continue
		}
		if !errors.Is(err, ErrInvalidKind) {
			t.Fatalf("ParseKind(%q): expected ErrInvalidKind, got %v", tc.in, err)
		}
	}
}
