package cli

import (
	"errors"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/patbeagan1/is-test/internal/predicate"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const timeoutFlag = "timeout-ms"

var netFamily = family{
	name:  predicate.FamilyNet,
	short: "Network-related checks",
	leaves: []leaf{
		{
			verb:  predicate.NetOnline,
			short: "A TCP connection to a well-known public resolver succeeds (heuristic)",
			build: func(o *operands) predicate.Request {
				return predicate.NetRequest{Verb: predicate.NetOnline}
			},
		},
		{
			verb:     predicate.NetPortOpen,
			operands: []operand{op("host", kindName), op("port", kindPort)},
			short:    "A TCP connection to host:port succeeds within the timeout",
			flags: []flagDoc{{
				name:  timeoutFlag,
				kind:  kindUnsigned,
				def:   strconv.FormatInt(predicate.DefaultPortOpenTimeout.Milliseconds(), 10),
				usage: "connect timeout in milliseconds",
			}},
			build: func(o *operands) predicate.Request {
				return predicate.NetRequest{
					Verb:    predicate.NetPortOpen,
					Host:    o.str(0),
					Port:    o.port(1),
					Timeout: o.timeout,
				}
			},
		},
	},
}

// newPortOpenCommand is the one leaf with a flag. Cobra flag parsing stays
// disabled like every other leaf; the flag is parsed here so the operand
// rules match the rest of the tree.
func newPortOpenCommand(inv *invocation, l leaf) *cobra.Command {
	cmd := newLeafCommand(inv, l)
	cmd.Use = l.use() + " [--" + timeoutFlag + " N]"
	cmd.Args = cobra.ArbitraryArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		defaultMS := uint64(inv.opts.PortTimeout / time.Millisecond)
		timeoutMS := fs.Uint64(timeoutFlag, defaultMS, "connect timeout in milliseconds")
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, pflag.ErrHelp) {
				return cmd.Help()
			}
			return &UsageError{Cmd: cmd, Err: err}
		}
		if err := exactOperands(l.operands)(cmd, fs.Args()); err != nil {
			return err
		}
		if *timeoutMS > uint64(math.MaxInt64/int64(time.Millisecond)) {
			return usageErrorf(cmd, "invalid --%s %d: too large", timeoutFlag, *timeoutMS)
		}

		o := &operands{
			decl:    l.operands,
			values:  fs.Args(),
			timeout: time.Duration(*timeoutMS) * time.Millisecond,
		}
		req := l.build(o)
		if o.err != nil {
			return &UsageError{Cmd: cmd, Err: o.err}
		}
		inv.request = req
		return nil
	}
	return cmd
}
