package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/patbeagan1/is-test/internal/predicate"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is stamped at build time with -ldflags "-X".
var Version = "dev"

// families is the verb table, in display order.
var families = []family{
	fileFamily,
	stringFamily,
	intFamily,
	floatFamily,
	semverFamily,
	envFamily,
	netFamily,
	systemFamily,
}

// invocation collects what one run of the command tree resolved to.
type invocation struct {
	opts    Options
	request predicate.Request
}

const rootLong = `is evaluates one predicate and reports the answer through its exit status:

  0  the predicate holds
  1  the predicate does not hold, or could not be confirmed
  2  the invocation is malformed

Global flags must come before the family name. Leaf predicates take their
operands literally, so values such as "-5" or "-a" need no escaping.
Use "is help <family> <predicate>" for help on a single predicate.`

func newRootCommand(inv *invocation) *cobra.Command {
	root := &cobra.Command{
		Use:           "is <family> <predicate> [args...]",
		Short:         "A modern, descriptive replacement for the 'test' command",
		Long:          rootLong,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	bindGlobalFlags(root.Flags(), &inv.opts)

	for _, f := range families {
		root.AddCommand(newFamilyCommand(inv, f))
	}
	root.AddCommand(newVerbsCommand())
	return root
}

func bindGlobalFlags(fs *pflag.FlagSet, opts *Options) {
	fs.BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "log the resolved predicate and why it is false to stderr")
	fs.StringVar(&opts.OnlineAddress, "online-address", opts.OnlineAddress, "host:port probed by 'net online'")
	fs.DurationVar(&opts.OnlineTimeout, "online-timeout", opts.OnlineTimeout, "connect timeout for 'net online'")
}

// resolve parses leading global flags itself, then hands the rest to cobra.
// Leaf commands never parse flags, so cobra would otherwise pass a global
// flag through to the leaf as an operand.
func (inv *invocation) resolve(root *cobra.Command, argv []string) (*cobra.Command, error) {
	root.InitDefaultHelpFlag()
	root.InitDefaultVersionFlag()
	fs := root.Flags()
	fs.SetInterspersed(false)
	if err := fs.Parse(argv); err != nil {
		return root, &UsageError{Cmd: root, Err: err}
	}
	if help, _ := fs.GetBool("help"); help {
		return root, root.Help()
	}
	if version, _ := fs.GetBool("version"); version {
		_, err := fmt.Fprintf(root.OutOrStdout(), "is version %s\n", Version)
		return root, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return root, usageErrorf(root, "missing predicate family")
	}
	root.SetArgs(rest)
	return root.ExecuteC()
}

// Resolve maps argv to a request without evaluating it and without touching
// the filesystem, network or environment. Help and listing commands resolve
// to a nil request.
func Resolve(argv []string) (predicate.Request, error) {
	inv := &invocation{opts: DefaultOptions()}
	root := newRootCommand(inv)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if _, err := inv.resolve(root, argv); err != nil {
		return nil, err
	}
	return inv.request, nil
}

// Run resolves and evaluates argv and returns the process exit status.
// It is the only place that turns outcomes into exit codes.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	inv := &invocation{opts: DefaultOptions()}
	root := newRootCommand(inv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := inv.resolve(root, argv)
	if err != nil {
		reportError(stderr, cmd, err)
		return predicate.ExitUsage
	}
	if inv.request == nil {
		return predicate.ExitTrue
	}

	logger := NewLogger(stderr, inv.opts.Verbose)
	logger.Debug("predicate resolved",
		"predicate", predicate.Describe(inv.request),
		"request", fmt.Sprintf("%+v", inv.request))

	evaluator := predicate.New(predicate.Options{
		Stderr:        stderr,
		Logger:        logger,
		OnlineAddress: inv.opts.OnlineAddress,
		OnlineTimeout: inv.opts.OnlineTimeout,
	})
	return evaluator.Evaluate(ctx, inv.request).Outcome.ExitCode()
}

func reportError(w io.Writer, cmd *cobra.Command, err error) {
	var ue *UsageError
	if errors.As(err, &ue) && ue.Cmd != nil {
		cmd = ue.Cmd
	}
	fmt.Fprintf(w, "error: %v\n", err)
	if cmd != nil {
		fmt.Fprintf(w, "usage: %s\n", cmd.UseLine())
	}
}
