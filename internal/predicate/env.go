package predicate

import "fmt"

// evalEnv treats a variable that is defined but empty as unset.
func (e *Evaluator) evalEnv(r EnvRequest) Result {
	v, ok := e.lookupEnv(r.Name)
	switch r.Verb {
	case EnvSet:
		if !ok || v == "" {
			return falseBecause(fmt.Errorf("%w: %s", ErrUnset, r.Name))
		}
		return verdict(true)
	case EnvEqualTo:
		if !ok {
			return falseBecause(fmt.Errorf("%w: %s", ErrUnset, r.Name))
		}
		return verdict(v == r.Value)
	}
	return unknownVerb(FamilyEnv, r.Verb)
}
