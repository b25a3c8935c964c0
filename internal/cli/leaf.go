package cli

import (
	"strings"

	"github.com/patbeagan1/is-test/internal/predicate"
	"github.com/spf13/cobra"
)

// leaf is one row of the verb table: a predicate, its legacy aliases, its
// positional operands and the builder that turns converted operands into a
// request.
type leaf struct {
	verb     predicate.Verb
	aliases  []string
	operands []operand
	flags    []flagDoc
	short    string
	build    func(o *operands) predicate.Request
}

// flagDoc describes a leaf flag for the verb catalog.
type flagDoc struct {
	name  string
	kind  operandKind
	def   string
	usage string
}

// family is a top-level command and its verb table.
type family struct {
	name   predicate.Family
	short  string
	leaves []leaf
}

func (l leaf) use() string {
	parts := []string{string(l.verb)}
	for _, o := range l.operands {
		parts = append(parts, "<"+o.name+">")
	}
	return strings.Join(parts, " ")
}

// newLeafCommand builds a command that only records the resolved request.
// Flag parsing is disabled so operands such as "-5" or "-a" stay
// positional.
func newLeafCommand(inv *invocation, l leaf) *cobra.Command {
	return &cobra.Command{
		Use:                   l.use(),
		Aliases:               l.aliases,
		Short:                 l.short,
		Args:                  exactOperands(l.operands),
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := &operands{decl: l.operands, values: args}
			req := l.build(o)
			if o.err != nil {
				return &UsageError{Cmd: cmd, Err: o.err}
			}
			inv.request = req
			return nil
		},
	}
}

// newFamilyCommand groups leaves. Its own RunE only runs when no leaf
// matched, so any argument reaching it is an unknown verb.
func newFamilyCommand(inv *invocation, f family) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(f.name) + " <predicate> [args...]",
		Short: f.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageErrorf(cmd, "missing %s predicate", f.name)
			}
			if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
				return usageErrorf(cmd, "unknown %s predicate %q (did you mean %s?)",
					f.name, args[0], strings.Join(suggestions, ", "))
			}
			return usageErrorf(cmd, "unknown %s predicate %q", f.name, args[0])
		},
	}
	for _, l := range f.leaves {
		if l.verb == predicate.NetPortOpen {
			cmd.AddCommand(newPortOpenCommand(inv, l))
			continue
		}
		cmd.AddCommand(newLeafCommand(inv, l))
	}
	return cmd
}
