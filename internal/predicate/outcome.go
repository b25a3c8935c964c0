package predicate

// Process exit statuses. ExitUsage is reserved for the resolver; the
// evaluator only ever produces ExitTrue or ExitFalse.
const (
	ExitTrue  = 0
	ExitFalse = 1
	ExitUsage = 2
)

// Outcome is the boolean verdict of one evaluation.
type Outcome bool

const (
	True  Outcome = true
	False Outcome = false
)

func (o Outcome) String() string {
	if o {
		return "true"
	}
	return "false"
}

// ExitCode maps an outcome to the process exit status.
func (o Outcome) ExitCode() int {
	if o {
		return ExitTrue
	}
	return ExitFalse
}

// Result is the terminal value of an evaluation. Cause, when set, records
// why the outcome is False; it is informational only.
type Result struct {
	Outcome Outcome
	Cause   error
}

func verdict(ok bool) Result {
	return Result{Outcome: Outcome(ok)}
}

func falseBecause(err error) Result {
	return Result{Outcome: False, Cause: err}
}
