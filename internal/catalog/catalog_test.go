package catalog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"gopkg.in/yaml.v3"
)

func sampleCatalog() Catalog {
	return Catalog{
		Program:   "is",
		Version:   "1.2.3",
		ExitCodes: ExitCodes{True: 0, False: 1, Usage: 2},
		Families: []Family{
			{
				Name:    "file",
				Summary: "File-related checks",
				Verbs: []Verb{
					{
						Name:     "regular",
						Aliases:  []string{"file", "regular-file"},
						Operands: []Operand{{Name: "path", Kind: "path"}},
						Summary:  "Path is a regular file (-f)",
					},
					{
						Name:     "size-gt",
						Operands: []Operand{{Name: "path", Kind: "path"}, {Name: "bytes", Kind: "unsigned"}},
						Summary:  "File size is greater than bytes",
					},
				},
			},
			{
				Name:    "net",
				Summary: "Network-related checks",
				Verbs: []Verb{
					{Name: "online", Operands: []Operand{}, Summary: "Resolver reachable"},
					{
						Name:     "port-open",
						Operands: []Operand{{Name: "host", Kind: "name"}, {Name: "port", Kind: "port"}},
						Flags:    []Flag{{Name: "timeout-ms", Kind: "unsigned", Default: "1000", Usage: "connect timeout"}},
						Summary:  "Port accepts | connections",
					},
				},
			},
		},
	}
}

func TestVerbCount(t *testing.T) {
	if got := sampleCatalog().VerbCount(); got != 4 {
		t.Errorf("VerbCount = %d, want 4", got)
	}
}

func TestBuildMarkdown(t *testing.T) {
	md := BuildMarkdown(sampleCatalog())

	for _, want := range []string{
		"# is predicate reference",
		"Version: `1.2.3`",
		"Predicates: `4`",
		"true `0`, false `1`, usage error `2`",
		"## file",
		"## net",
		"| `regular` | `<path>` path | `file`, `regular-file` | Path is a regular file (-f) |",
		"`--timeout-ms` unsigned (default 1000)",
		"| `online` | - | - |",
		`Port accepts \| connections`,
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestBuildMarkdown_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "markdown", []byte(BuildMarkdown(sampleCatalog())))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleCatalog()); err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["program"] != "is" {
		t.Errorf("program = %v", decoded["program"])
	}
	if !strings.Contains(buf.String(), `"exit_codes"`) {
		t.Error("missing exit_codes key")
	}
	if strings.Contains(buf.String(), `"operands": null`) {
		t.Error("operands rendered as null")
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, sampleCatalog()); err != nil {
		t.Fatal(err)
	}
	var decoded Catalog
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if decoded.VerbCount() != 4 {
		t.Errorf("decoded %d verbs", decoded.VerbCount())
	}
	if got := decoded.Families[1].Verbs[1].Flags[0].Default; got != "1000" {
		t.Errorf("flag default = %q", got)
	}
}

func TestValidate_Sample(t *testing.T) {
	errs, err := Validate(sampleCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) > 0 {
		t.Errorf("unexpected violations: %v", errs)
	}
}

func TestValidate_Violations(t *testing.T) {
	c := sampleCatalog()
	c.Families[0].Verbs[0].Name = "Regular File"
	c.Families[0].Verbs[1].Operands[0].Kind = "blob"
	errs, err := Validate(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) < 2 {
		t.Errorf("expected at least 2 violations, got %v", errs)
	}
}

func TestValidateJSON_MissingFields(t *testing.T) {
	errs, err := ValidateJSON([]byte(`{"program": "is"}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) == 0 {
		t.Error("expected violations for missing fields")
	}
}

func TestValidateJSON_Malformed(t *testing.T) {
	if _, err := ValidateJSON([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed document")
	}
}
