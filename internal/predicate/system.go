package predicate

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// Platform names are compared against Go's GOOS and GOARCH. These aliases
// accept the spellings other toolchains report for the same platform.
var (
	osAliases = map[string]string{
		"macos": "darwin",
		"osx":   "darwin",
		"mac":   "darwin",
	}
	archAliases = map[string]string{
		"x86_64":      "amd64",
		"x64":         "amd64",
		"aarch64":     "arm64",
		"x86":         "386",
		"i386":        "386",
		"i686":        "386",
		"powerpc64":   "ppc64",
		"powerpc64le": "ppc64le",
		"riscv64gc":   "riscv64",
	}
)

func (e *Evaluator) evalSystem(r SystemRequest) Result {
	switch r.Verb {
	case SystemOS:
		return verdict(platformIs(r.Name, e.goos, osAliases))
	case SystemArch:
		return verdict(platformIs(r.Name, e.goarch, archAliases))
	case SystemCommandExists:
		return e.commandExists(r.Name)
	case SystemFDTTY:
		if r.FD < 0 {
			return falseBecause(fmt.Errorf("%w: negative descriptor %d", ErrUnparseable, r.FD))
		}
		return verdict(term.IsTerminal(r.FD))
	}
	return unknownVerb(FamilySystem, r.Verb)
}

func platformIs(name, actual string, aliases map[string]string) bool {
	folded := Fold(name)
	if canonical, ok := aliases[folded]; ok {
		folded = canonical
	}
	return folded == Fold(actual)
}

// commandExists checks a name containing a path separator directly;
// otherwise it searches PATH, where an empty entry means the working
// directory.
func (e *Evaluator) commandExists(name string) Result {
	if name == "" {
		return falseBecause(fmt.Errorf("%w: empty command name", ErrUnparseable))
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return executableFile(ExpandPath(name))
	}
	pathList, _ := e.lookupEnv("PATH")
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			dir = "."
		}
		if res := executableFile(filepath.Join(dir, name)); res.Outcome {
			return res
		}
	}
	return falseBecause(fmt.Errorf("%w: %s not found in PATH", ErrNoMetadata, name))
}

func executableFile(path string) Result {
	return statCheck(path, func(fi fs.FileInfo) bool {
		return !fi.IsDir() && effectiveAccess(path, accessExecute) == nil
	})
}

