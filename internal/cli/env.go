package cli

import "github.com/patbeagan1/is-test/internal/predicate"

var envFamily = family{
	name:  predicate.FamilyEnv,
	short: "Environment variable-related checks",
	leaves: []leaf{
		{
			verb:     predicate.EnvSet,
			operands: []operand{op("name", kindName)},
			short:    "Variable is defined and not empty",
			build: func(o *operands) predicate.Request {
				return predicate.EnvRequest{Verb: predicate.EnvSet, Name: o.str(0)}
			},
		},
		{
			verb:     predicate.EnvEqualTo,
			operands: []operand{op("name", kindName), op("value", kindString)},
			short:    "Variable is defined and equals value",
			build: func(o *operands) predicate.Request {
				return predicate.EnvRequest{Verb: predicate.EnvEqualTo, Name: o.str(0), Value: o.str(1)}
			},
		},
	},
}
