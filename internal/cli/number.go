package cli

import "github.com/patbeagan1/is-test/internal/predicate"

func intCompareLeaf(verb predicate.Verb, short string) leaf {
	return leaf{
		verb:     verb,
		operands: []operand{op("num1", kindInt), op("num2", kindInt)},
		short:    short,
		build: func(o *operands) predicate.Request {
			return predicate.IntRequest{Verb: verb, A: o.int64(0), B: o.int64(1)}
		},
	}
}

func floatCompareLeaf(verb predicate.Verb, short string) leaf {
	return leaf{
		verb:     verb,
		operands: []operand{op("num1", kindFloat), op("num2", kindFloat)},
		short:    short,
		build: func(o *operands) predicate.Request {
			return predicate.FloatRequest{Verb: verb, A: o.float64(0), B: o.float64(1)}
		},
	}
}

// signLeaf accepts any number in both the int and float families. The
// request keeps the family it was resolved under.
func signLeaf(f predicate.Family, verb predicate.Verb, short string) leaf {
	return leaf{
		verb:     verb,
		operands: []operand{op("n", kindFloat)},
		short:    short,
		build: func(o *operands) predicate.Request {
			return predicate.FloatRequest{Verb: verb, Source: f, A: o.float64(0)}
		},
	}
}

var intFamily = family{
	name:  predicate.FamilyInt,
	short: "Integer-related checks",
	leaves: []leaf{
		intCompareLeaf(predicate.NumEq, "Integers are equal (-eq)"),
		intCompareLeaf(predicate.NumNe, "Integers differ (-ne)"),
		intCompareLeaf(predicate.NumGt, "First integer is greater (-gt)"),
		intCompareLeaf(predicate.NumGe, "First integer is greater or equal (-ge)"),
		intCompareLeaf(predicate.NumLt, "First integer is less (-lt)"),
		intCompareLeaf(predicate.NumLe, "First integer is less or equal (-le)"),
		{
			verb:     predicate.NumInRange,
			operands: []operand{op("value", kindInt), op("min", kindInt), op("max", kindInt)},
			short:    "Integer lies in the inclusive range [min, max]",
			build: func(o *operands) predicate.Request {
				return predicate.IntRequest{Verb: predicate.NumInRange, A: o.int64(0), B: o.int64(1), C: o.int64(2)}
			},
		},
		signLeaf(predicate.FamilyInt, predicate.NumPositive, "Number is greater than zero"),
		signLeaf(predicate.FamilyInt, predicate.NumNegative, "Number is less than zero"),
	},
}

var floatFamily = family{
	name:  predicate.FamilyFloat,
	short: "Floating point-related checks",
	leaves: []leaf{
		{
			verb:     predicate.NumInRange,
			operands: []operand{op("min", kindFloat), op("max", kindFloat), op("value", kindFloat)},
			short:    "Value lies in the inclusive range [min, max]",
			build: func(o *operands) predicate.Request {
				return predicate.FloatRequest{Verb: predicate.NumInRange, A: o.float64(0), B: o.float64(1), C: o.float64(2)}
			},
		},
		floatCompareLeaf(predicate.NumEq, "Numbers are exactly equal"),
		floatCompareLeaf(predicate.NumNe, "Numbers are not exactly equal"),
		floatCompareLeaf(predicate.NumGt, "First number is greater"),
		floatCompareLeaf(predicate.NumGe, "First number is greater or equal"),
		floatCompareLeaf(predicate.NumLt, "First number is less"),
		floatCompareLeaf(predicate.NumLe, "First number is less or equal"),
		{
			verb:     predicate.NumApproxEq,
			operands: []operand{op("a", kindFloat), op("b", kindFloat), op("epsilon", kindFloat)},
			short:    "Numbers differ by at most epsilon",
			build: func(o *operands) predicate.Request {
				return predicate.FloatRequest{Verb: predicate.NumApproxEq, A: o.float64(0), B: o.float64(1), C: o.float64(2)}
			},
		},
		signLeaf(predicate.FamilyFloat, predicate.NumPositive, "Number is greater than zero"),
		signLeaf(predicate.FamilyFloat, predicate.NumNegative, "Number is less than zero"),
	},
}
