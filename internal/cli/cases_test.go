package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type runCase struct {
	Name string            `yaml:"name"`
	Env  map[string]string `yaml:"env"`
	Argv []string          `yaml:"argv"`
	Exit int               `yaml:"exit"`
}

func loadCases(t *testing.T) []runCase {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "cases.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	var cases []runCase
	if err := yaml.Unmarshal(raw, &cases); err != nil {
		t.Fatalf("parse cases.yaml: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("cases.yaml has no cases")
	}
	return cases
}

func caseFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "data.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "empty.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(dir, "data.txt"), filepath.Join(dir, "link")); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestRun_Cases(t *testing.T) {
	dir := caseFixture(t)
	for _, tc := range loadCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			for k, v := range tc.Env {
				t.Setenv(k, v)
			}
			argv := make([]string, len(tc.Argv))
			for i, a := range tc.Argv {
				argv[i] = strings.ReplaceAll(a, "{tmp}", dir)
			}
			code, _, stderr := run(t, argv...)
			if code != tc.Exit {
				t.Errorf("%v: exit %d, want %d (stderr %q)", argv, code, tc.Exit, stderr)
			}
		})
	}
}
