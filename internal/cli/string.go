package cli

import "github.com/patbeagan1/is-test/internal/predicate"

func unaryStringLeaf(verb predicate.Verb, short string, aliases ...string) leaf {
	return leaf{
		verb:     verb,
		aliases:  aliases,
		operands: []operand{op("string", kindString)},
		short:    short,
		build: func(o *operands) predicate.Request {
			return predicate.StringRequest{Verb: verb, Value: o.str(0)}
		},
	}
}

func binaryStringLeaf(verb predicate.Verb, second operand, short string, aliases ...string) leaf {
	return leaf{
		verb:     verb,
		aliases:  aliases,
		operands: []operand{op("string", kindString), second},
		short:    short,
		build: func(o *operands) predicate.Request {
			return predicate.StringRequest{Verb: verb, Value: o.str(0), Operand: o.str(1)}
		},
	}
}

func lengthLeaf(verb predicate.Verb, short string) leaf {
	return leaf{
		verb:     verb,
		operands: []operand{op("string", kindString), op("n", kindUnsigned)},
		short:    short,
		build: func(o *operands) predicate.Request {
			return predicate.StringRequest{Verb: verb, Value: o.str(0), N: o.uint64(1)}
		},
	}
}

var stringFamily = family{
	name:  predicate.FamilyString,
	short: "String-related checks",
	leaves: []leaf{
		binaryStringLeaf(predicate.StringEqual, op("other", kindString), "Strings are byte-for-byte equal (=)", "eq"),
		binaryStringLeaf(predicate.StringNotEqual, op("other", kindString), "Strings differ (!=)", "not-equals", "ne"),
		unaryStringLeaf(predicate.StringEmpty, "String is empty (-z)", "zero"),
		unaryStringLeaf(predicate.StringNotEmpty, "String is not empty (-n)", "non-empty"),
		binaryStringLeaf(predicate.StringEqualCI, op("other", kindString), "Strings are equal under Unicode case folding"),
		binaryStringLeaf(predicate.StringMatches, op("pattern", kindPattern), "Regular expression matches anywhere in the string"),
		binaryStringLeaf(predicate.StringMatchesCI, op("pattern", kindPattern), "Case-insensitive regular expression match"),
		binaryStringLeaf(predicate.StringContains, op("needle", kindString), "String contains needle"),
		binaryStringLeaf(predicate.StringContainsCI, op("needle", kindString), "String contains needle, ignoring case"),
		binaryStringLeaf(predicate.StringStartsWith, op("prefix", kindString), "String starts with prefix"),
		binaryStringLeaf(predicate.StringStartsWithCI, op("prefix", kindString), "String starts with prefix, ignoring case"),
		binaryStringLeaf(predicate.StringEndsWith, op("suffix", kindString), "String ends with suffix"),
		binaryStringLeaf(predicate.StringEndsWithCI, op("suffix", kindString), "String ends with suffix, ignoring case"),
		unaryStringLeaf(predicate.StringIsInteger, "String is a base-10 64-bit integer"),
		unaryStringLeaf(predicate.StringIsNumber, "String is an integer or floating-point number"),
		unaryStringLeaf(predicate.StringIsUUID, "String is a UUID in 8-4-4-4-12 hex form"),
		unaryStringLeaf(predicate.StringIsIPv4, "String is a dotted-quad IPv4 address"),
		unaryStringLeaf(predicate.StringIsASCII, "String contains only ASCII characters"),
		lengthLeaf(predicate.StringLenGt, "Length in characters is greater than n"),
		lengthLeaf(predicate.StringLenGe, "Length in characters is at least n"),
		lengthLeaf(predicate.StringLenLt, "Length in characters is less than n"),
		lengthLeaf(predicate.StringLenLe, "Length in characters is at most n"),
		lengthLeaf(predicate.StringLenEq, "Length in characters equals n"),
		{
			verb:     predicate.StringAdviseQuote,
			operands: []operand{op("value", kindString)},
			short:    "Warn on stderr and fail if the value looks like an unquoted shell operator or flag",
			build: func(o *operands) predicate.Request {
				return predicate.StringRequest{Verb: predicate.StringAdviseQuote, Value: o.str(0)}
			},
		},
	},
}
