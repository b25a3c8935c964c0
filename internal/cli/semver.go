package cli

import "github.com/patbeagan1/is-test/internal/predicate"

func semverLeaf(verb predicate.Verb, short string) leaf {
	return leaf{
		verb:     verb,
		operands: []operand{op("v1", kindVersion), op("v2", kindVersion)},
		short:    short,
		build: func(o *operands) predicate.Request {
			return predicate.SemverRequest{Verb: verb, A: o.str(0), B: o.str(1)}
		},
	}
}

var semverFamily = family{
	name:  predicate.FamilySemver,
	short: "Semantic versioning-related checks",
	leaves: []leaf{
		semverLeaf(predicate.NumEq, "Versions have equal precedence"),
		semverLeaf(predicate.NumNe, "Versions have different precedence"),
		semverLeaf(predicate.NumGt, "First version is newer"),
		semverLeaf(predicate.NumGe, "First version is newer or equal"),
		semverLeaf(predicate.NumLt, "First version is older"),
		semverLeaf(predicate.NumLe, "First version is older or equal"),
	},
}
