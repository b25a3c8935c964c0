package catalog

import (
	"fmt"
	"io"
	"strings"
)

func BuildMarkdown(c Catalog) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# %s predicate reference\n\n", c.Program))
	b.WriteString(fmt.Sprintf("- Version: `%s`\n", c.Version))
	b.WriteString(fmt.Sprintf("- Predicates: `%d`\n", c.VerbCount()))
	b.WriteString(fmt.Sprintf("- Exit codes: true `%d`, false `%d`, usage error `%d`\n",
		c.ExitCodes.True, c.ExitCodes.False, c.ExitCodes.Usage))

	for _, f := range c.Families {
		b.WriteString(fmt.Sprintf("\n## %s\n\n", f.Name))
		if f.Summary != "" {
			b.WriteString(f.Summary + "\n\n")
		}
		b.WriteString("| Predicate | Arguments | Aliases | Description |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, v := range f.Verbs {
			b.WriteString(fmt.Sprintf("| `%s` | %s | %s | %s |\n",
				v.Name, arguments(v), aliases(v), escapeCell(v.Summary)))
		}
	}
	return b.String()
}

func WriteMarkdown(w io.Writer, c Catalog) error {
	_, err := io.WriteString(w, BuildMarkdown(c))
	return err
}

func arguments(v Verb) string {
	parts := make([]string, 0, len(v.Operands)+len(v.Flags))
	for _, o := range v.Operands {
		parts = append(parts, fmt.Sprintf("`<%s>` %s", o.Name, o.Kind))
	}
	for _, f := range v.Flags {
		parts = append(parts, fmt.Sprintf("`--%s` %s (default %s)", f.Name, f.Kind, f.Default))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func aliases(v Verb) string {
	if len(v.Aliases) == 0 {
		return "-"
	}
	quoted := make([]string, len(v.Aliases))
	for i, a := range v.Aliases {
		quoted[i] = "`" + a + "`"
	}
	return strings.Join(quoted, ", ")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
