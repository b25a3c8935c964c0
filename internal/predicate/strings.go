package predicate

import (
	"errors"
	"fmt"
	"net/netip"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// shellOperators are words a test(1)-style caller may parse as operators
// when an unquoted variable expands to them.
var shellOperators = map[string]bool{
	"-a": true,
	"-o": true,
	"!":  true,
	"(":  true,
	")":  true,
}

func (e *Evaluator) evalString(r StringRequest) Result {
	s, op := r.Value, r.Operand
	switch r.Verb {
	case StringEqual:
		return verdict(s == op)
	case StringNotEqual:
		return verdict(s != op)
	case StringEmpty:
		return verdict(s == "")
	case StringNotEmpty:
		return verdict(s != "")
	case StringEqualCI:
		return verdict(EqualFold(s, op))
	case StringMatches:
		return matchRegexp(op, s)
	case StringMatchesCI:
		return matchRegexp("(?i)"+op, s)
	case StringContains:
		return verdict(strings.Contains(s, op))
	case StringContainsCI:
		return verdict(strings.Contains(Fold(s), Fold(op)))
	case StringStartsWith:
		return verdict(strings.HasPrefix(s, op))
	case StringStartsWithCI:
		return verdict(strings.HasPrefix(Fold(s), Fold(op)))
	case StringEndsWith:
		return verdict(strings.HasSuffix(s, op))
	case StringEndsWithCI:
		return verdict(strings.HasSuffix(Fold(s), Fold(op)))
	case StringIsInteger:
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			return falseBecause(fmt.Errorf("%w: %v", ErrUnparseable, err))
		}
		return verdict(true)
	case StringIsNumber:
		return isNumber(s)
	case StringIsUUID:
		return verdict(isUUID(s))
	case StringIsIPv4:
		addr, err := netip.ParseAddr(s)
		if err != nil {
			return falseBecause(fmt.Errorf("%w: %v", ErrUnparseable, err))
		}
		return verdict(addr.Is4())
	case StringIsASCII:
		return verdict(isASCII(s))
	case StringLenGt:
		return verdict(runeLen(s) > r.N)
	case StringLenGe:
		return verdict(runeLen(s) >= r.N)
	case StringLenLt:
		return verdict(runeLen(s) < r.N)
	case StringLenLe:
		return verdict(runeLen(s) <= r.N)
	case StringLenEq:
		return verdict(runeLen(s) == r.N)
	case StringAdviseQuote:
		return e.adviseQuote(s)
	}
	return unknownVerb(FamilyString, r.Verb)
}

// matchRegexp reports an unanchored match. A pattern that does not compile
// is a failed match.
func matchRegexp(pattern, s string) Result {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return falseBecause(fmt.Errorf("%w: %v", ErrUnparseable, err))
	}
	return verdict(re.MatchString(s))
}

// isNumber accepts anything ParseFloat accepts, including values that
// overflow to infinity.
func isNumber(s string) Result {
	_, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return falseBecause(fmt.Errorf("%w: %v", ErrUnparseable, err))
	}
	return verdict(true)
}

// isUUID accepts only the hyphenated 8-4-4-4-12 form, in either case.
// uuid.Parse also takes braced, URN and bare forms; the length check
// excludes those.
func isUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func runeLen(s string) uint64 {
	return uint64(utf8.RuneCountInString(s))
}

// adviseQuote is True for values that survive unquoted expansion in a shell
// test. Otherwise it prints a warning to stderr and is False.
func (e *Evaluator) adviseQuote(v string) Result {
	if v != "" && !strings.HasPrefix(v, "-") && !shellOperators[v] {
		return verdict(true)
	}
	fmt.Fprintf(e.stderr, "Value '%s' may need quoting. Consider using \"$VAR\" in your shell.\n", v)
	return verdict(false)
}
