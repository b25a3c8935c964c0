package cli

import (
	"fmt"
	"strings"

	"github.com/patbeagan1/is-test/internal/catalog"
	"github.com/patbeagan1/is-test/internal/predicate"
	"github.com/spf13/cobra"
)

const (
	formatMarkdown = "md"
	formatJSON     = "json"
	formatYAML     = "yaml"
)

func newVerbsCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "verbs",
		Short: "List every predicate with its arguments and aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := buildCatalog()
			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case formatMarkdown:
				return catalog.WriteMarkdown(out, c)
			case formatYAML:
				return catalog.WriteYAML(out, c)
			case formatJSON:
				errs, err := catalog.Validate(c)
				if err != nil {
					return err
				}
				if len(errs) > 0 {
					return fmt.Errorf("catalog does not match its schema: %s", strings.Join(errs, "; "))
				}
				return catalog.WriteJSON(out, c)
			default:
				return usageErrorf(cmd, "unsupported format %q (want %s, %s or %s)",
					format, formatMarkdown, formatJSON, formatYAML)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", formatMarkdown, "output format: md, json or yaml")
	return cmd
}

// buildCatalog renders the verb tables as catalog data.
func buildCatalog() catalog.Catalog {
	c := catalog.Catalog{
		Program: "is",
		Version: Version,
		ExitCodes: catalog.ExitCodes{
			True:  predicate.ExitTrue,
			False: predicate.ExitFalse,
			Usage: predicate.ExitUsage,
		},
		Families: make([]catalog.Family, 0, len(families)),
	}
	for _, f := range families {
		cf := catalog.Family{
			Name:    string(f.name),
			Summary: f.short,
			Verbs:   make([]catalog.Verb, 0, len(f.leaves)),
		}
		for _, l := range f.leaves {
			cf.Verbs = append(cf.Verbs, catalogVerb(l))
		}
		c.Families = append(c.Families, cf)
	}
	return c
}

func catalogVerb(l leaf) catalog.Verb {
	v := catalog.Verb{
		Name:     string(l.verb),
		Aliases:  l.aliases,
		Operands: make([]catalog.Operand, 0, len(l.operands)),
		Summary:  l.short,
	}
	for _, o := range l.operands {
		v.Operands = append(v.Operands, catalog.Operand{Name: o.name, Kind: string(o.kind)})
	}
	for _, f := range l.flags {
		v.Flags = append(v.Flags, catalog.Flag{
			Name:    f.name,
			Kind:    string(f.kind),
			Default: f.def,
			Usage:   f.usage,
		})
	}
	return v
}
