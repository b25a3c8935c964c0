package predicate

import (
	"fmt"
	"regexp"

	"golang.org/x/mod/semver"
)

// semverGrammar is the semver.org 2.0.0 grammar: no "v" prefix, no leading
// zeros, optional pre-release and build metadata.
var semverGrammar = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
	`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// CompareSemver orders two versions by semver precedence. Build metadata is
// ignored, so 1.0.0+a and 1.0.0+b compare equal.
func CompareSemver(a, b string) (int, error) {
	for _, v := range []string{a, b} {
		if !semverGrammar.MatchString(v) {
			return 0, fmt.Errorf("%w: %q is not a semantic version", ErrUnparseable, v)
		}
	}
	return semver.Compare("v"+a, "v"+b), nil
}

func evalSemver(r SemverRequest) Result {
	c, err := CompareSemver(r.A, r.B)
	if err != nil {
		return falseBecause(err)
	}
	switch r.Verb {
	case NumEq:
		return verdict(c == 0)
	case NumNe:
		return verdict(c != 0)
	case NumGt:
		return verdict(c > 0)
	case NumGe:
		return verdict(c >= 0)
	case NumLt:
		return verdict(c < 0)
	case NumLe:
		return verdict(c <= 0)
	}
	return unknownVerb(FamilySemver, r.Verb)
}
