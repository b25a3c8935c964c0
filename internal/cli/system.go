package cli

import "github.com/patbeagan1/is-test/internal/predicate"

var systemFamily = family{
	name:  predicate.FamilySystem,
	short: "System-related checks",
	leaves: []leaf{
		{
			verb:     predicate.SystemOS,
			operands: []operand{op("name", kindName)},
			short:    "Operating system matches name (linux, darwin/macos, windows, freebsd, ...)",
			build: func(o *operands) predicate.Request {
				return predicate.SystemRequest{Verb: predicate.SystemOS, Name: o.str(0)}
			},
		},
		{
			verb:     predicate.SystemCommandExists,
			aliases:  []string{"has-command"},
			operands: []operand{op("command", kindName)},
			short:    "Command is found on PATH and executable",
			build: func(o *operands) predicate.Request {
				return predicate.SystemRequest{Verb: predicate.SystemCommandExists, Name: o.str(0)}
			},
		},
		{
			verb:     predicate.SystemArch,
			operands: []operand{op("name", kindName)},
			short:    "CPU architecture matches name (amd64/x86_64, arm64/aarch64, ...)",
			build: func(o *operands) predicate.Request {
				return predicate.SystemRequest{Verb: predicate.SystemArch, Name: o.str(0)}
			},
		},
		{
			verb:     predicate.SystemFDTTY,
			aliases:  []string{"tty"},
			operands: []operand{op("fd", kindFD)},
			short:    "File descriptor is open on a terminal (-t)",
			build: func(o *operands) predicate.Request {
				return predicate.SystemRequest{Verb: predicate.SystemFDTTY, FD: o.fd(0)}
			},
		},
	},
}
