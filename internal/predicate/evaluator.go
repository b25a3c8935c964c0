package predicate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"runtime"
	"time"
)

// DefaultOnlineAddress is the well-known resolver used by the online probe.
// Reaching it suggests, but does not prove, general internet access.
const DefaultOnlineAddress = "1.1.1.1:53"

const (
	DefaultOnlineTimeout   = 800 * time.Millisecond
	DefaultPortOpenTimeout = 1000 * time.Millisecond
)

// DialFunc opens a connection; it matches (*net.Dialer).DialContext.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Options wires the evaluator to its environment. Zero fields fall back to
// the live process: os.Stderr, os.LookupEnv, a net.Dialer, time.Now and the
// runtime platform.
type Options struct {
	Stderr        io.Writer
	LookupEnv     func(string) (string, bool)
	Dial          DialFunc
	Now           func() time.Time
	GOOS          string
	GOARCH        string
	OnlineAddress string
	OnlineTimeout time.Duration
	Logger        *slog.Logger
}

// Evaluator executes requests. It holds no mutable state; one value may
// evaluate any number of requests.
type Evaluator struct {
	stderr        io.Writer
	lookupEnv     func(string) (string, bool)
	dial          DialFunc
	now           func() time.Time
	goos          string
	goarch        string
	onlineAddress string
	onlineTimeout time.Duration
	logger        *slog.Logger
}

func New(opts Options) *Evaluator {
	e := &Evaluator{
		stderr:        opts.Stderr,
		lookupEnv:     opts.LookupEnv,
		dial:          opts.Dial,
		now:           opts.Now,
		goos:          opts.GOOS,
		goarch:        opts.GOARCH,
		onlineAddress: opts.OnlineAddress,
		onlineTimeout: opts.OnlineTimeout,
		logger:        opts.Logger,
	}
	if e.stderr == nil {
		e.stderr = os.Stderr
	}
	if e.lookupEnv == nil {
		e.lookupEnv = os.LookupEnv
	}
	if e.dial == nil {
		e.dial = (&net.Dialer{}).DialContext
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.goos == "" {
		e.goos = runtime.GOOS
	}
	if e.goarch == "" {
		e.goarch = runtime.GOARCH
	}
	if e.onlineAddress == "" {
		e.onlineAddress = DefaultOnlineAddress
	}
	if e.onlineTimeout == 0 {
		e.onlineTimeout = DefaultOnlineTimeout
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e
}

// Evaluate runs exactly one predicate. It never returns an error: every
// failure to confirm the predicate is a False result.
func (e *Evaluator) Evaluate(ctx context.Context, req Request) Result {
	var res Result
	switch r := req.(type) {
	case FileRequest:
		res = e.evalFile(r)
	case StringRequest:
		res = e.evalString(r)
	case IntRequest:
		res = evalInt(r)
	case FloatRequest:
		res = evalFloat(r)
	case SemverRequest:
		res = evalSemver(r)
	case EnvRequest:
		res = e.evalEnv(r)
	case NetRequest:
		res = e.evalNet(ctx, r)
	case SystemRequest:
		res = e.evalSystem(r)
	default:
		res = falseBecause(fmt.Errorf("%w: %T", ErrUnknownVerb, req))
	}

	attrs := []any{"predicate", Describe(req), "outcome", res.Outcome.String()}
	if res.Cause != nil {
		attrs = append(attrs, "cause", res.Cause.Error())
	}
	e.logger.Debug("predicate evaluated", attrs...)
	return res
}

func unknownVerb(f Family, v Verb) Result {
	return falseBecause(fmt.Errorf("%w: %s %s", ErrUnknownVerb, f, v))
}
