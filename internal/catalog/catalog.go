// Package catalog describes the predicate tree as data so it can be
// printed for humans (Markdown) or consumed by tooling (JSON, YAML).
package catalog

// Catalog is the full verb listing of one build of the command.
type Catalog struct {
	Program   string    `json:"program" yaml:"program"`
	Version   string    `json:"version" yaml:"version"`
	ExitCodes ExitCodes `json:"exit_codes" yaml:"exit_codes"`
	Families  []Family  `json:"families" yaml:"families"`
}

type ExitCodes struct {
	True  int `json:"true" yaml:"true"`
	False int `json:"false" yaml:"false"`
	Usage int `json:"usage" yaml:"usage"`
}

type Family struct {
	Name    string `json:"name" yaml:"name"`
	Summary string `json:"summary" yaml:"summary"`
	Verbs   []Verb `json:"verbs" yaml:"verbs"`
}

type Verb struct {
	Name     string    `json:"name" yaml:"name"`
	Aliases  []string  `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Operands []Operand `json:"operands" yaml:"operands"`
	Flags    []Flag    `json:"flags,omitempty" yaml:"flags,omitempty"`
	Summary  string    `json:"summary" yaml:"summary"`
}

type Operand struct {
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
}

type Flag struct {
	Name    string `json:"name" yaml:"name"`
	Kind    string `json:"kind" yaml:"kind"`
	Default string `json:"default" yaml:"default"`
	Usage   string `json:"usage" yaml:"usage"`
}

// VerbCount returns the number of leaf predicates across all families.
func (c Catalog) VerbCount() int {
	n := 0
	for _, f := range c.Families {
		n += len(f.Verbs)
	}
	return n
}
