// Package predicate evaluates a single typed predicate request against the
// live system: filesystem metadata, environment variables, TCP reachability
// and platform identity.
//
// Every predicate reduces to True or False. Missing files, unparseable
// operands, failed connections and unset variables all fold into False; the
// reason is kept on Result.Cause for diagnostics but never changes the
// outcome. Malformed invocations are rejected before a Request exists, so the
// evaluator has no error path of its own.
package predicate
