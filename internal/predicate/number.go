package predicate

import "math"

func evalInt(r IntRequest) Result {
	a, b := r.A, r.B
	switch r.Verb {
	case NumEq:
		return verdict(a == b)
	case NumNe:
		return verdict(a != b)
	case NumGt:
		return verdict(a > b)
	case NumGe:
		return verdict(a >= b)
	case NumLt:
		return verdict(a < b)
	case NumLe:
		return verdict(a <= b)
	case NumInRange:
		return verdict(a >= b && a <= r.C)
	}
	return unknownVerb(FamilyInt, r.Verb)
}

// evalFloat treats eq and ne as exact: the absolute difference must be zero.
// approx-eq is the tolerant variant. NaN compares false everywhere except ne.
func evalFloat(r FloatRequest) Result {
	a, b := r.A, r.B
	switch r.Verb {
	case NumEq:
		return verdict(math.Abs(a-b) == 0)
	case NumNe:
		return verdict(math.Abs(a-b) != 0)
	case NumGt:
		return verdict(a > b)
	case NumGe:
		return verdict(a >= b)
	case NumLt:
		return verdict(a < b)
	case NumLe:
		return verdict(a <= b)
	case NumInRange:
		return verdict(r.C >= a && r.C <= b)
	case NumApproxEq:
		return verdict(math.Abs(a-b) <= r.C)
	case NumPositive:
		return verdict(a > 0)
	case NumNegative:
		return verdict(a < 0)
	}
	return unknownVerb(r.Family(), r.Verb)
}
