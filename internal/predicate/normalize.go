package predicate

import (
	"github.com/mitchellh/go-homedir"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ExpandPath replaces a leading "~" or "~/" with the home directory. When no
// home directory can be resolved, or the path names another user ("~bob"),
// the input is returned unchanged.
func ExpandPath(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

// Fold is the single case-insensitive normalization used by every literal
// comparison: NFC composition, full Unicode case folding, then NFC again so
// folded expansions recompose. "ß" folds to "ss" and "NAÏVE" to "naïve".
func Fold(s string) string {
	return norm.NFC.String(cases.Fold().String(norm.NFC.String(s)))
}

// EqualFold reports whether a and b are equal under Fold.
func EqualFold(a, b string) bool {
	return a == b || Fold(a) == Fold(b)
}
