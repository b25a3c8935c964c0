package predicate

import (
	"fmt"
	"time"
)

// Family groups related verbs under one top-level command.
type Family string

const (
	FamilyFile   Family = "file"
	FamilyString Family = "string"
	FamilyInt    Family = "int"
	FamilyFloat  Family = "float"
	FamilySemver Family = "semver"
	FamilyEnv    Family = "env"
	FamilyNet    Family = "net"
	FamilySystem Family = "system"
)

// Families lists every family in display order.
var Families = []Family{
	FamilyFile, FamilyString, FamilyInt, FamilyFloat,
	FamilySemver, FamilyEnv, FamilyNet, FamilySystem,
}

// Verb is the canonical leaf name of a predicate within its family.
type Verb string

// File verbs.
const (
	FileExists         Verb = "exists"
	FileDirectory      Verb = "directory"
	FileRegular        Verb = "regular"
	FileSymlink        Verb = "symlink"
	FileBlockDevice    Verb = "block-device"
	FileCharDevice     Verb = "character-device"
	FileNamedPipe      Verb = "named-pipe"
	FileSocket         Verb = "socket"
	FileNonEmpty       Verb = "non-empty"
	FileReadable       Verb = "readable"
	FileWritable       Verb = "writable"
	FileExecutable     Verb = "executable"
	FileSetuid         Verb = "has-suid"
	FileSetgid         Verb = "has-sgid"
	FileSticky         Verb = "has-sticky"
	FileOwnedByEUID    Verb = "owned-by-effective-user"
	FileOwnedByEGID    Verb = "owned-by-effective-group"
	FileSameInode      Verb = "has-same-inode"
	FileNewerThan      Verb = "newer-than"
	FileOlderThan      Verb = "older-than"
	FileExistsGlob     Verb = "exists-glob"
	FileNonEmptyGlob   Verb = "non-empty-glob"
	FileSizeGt         Verb = "size-gt"
	FileSizeGe         Verb = "size-ge"
	FileSizeLt         Verb = "size-lt"
	FileSizeLe         Verb = "size-le"
	FileSizeEq         Verb = "size-eq"
	FileMtimeOlderThan Verb = "mtime-older-than"
	FileMtimeNewerThan Verb = "mtime-newer-than"
)

// String verbs.
const (
	StringEqual        Verb = "equal"
	StringNotEqual     Verb = "not-equal"
	StringEmpty        Verb = "empty"
	StringNotEmpty     Verb = "not-empty"
	StringEqualCI      Verb = "equal-ci"
	StringMatches      Verb = "matches-regex"
	StringMatchesCI    Verb = "matches-regex-ci"
	StringContains     Verb = "contains"
	StringContainsCI   Verb = "contains-ci"
	StringStartsWith   Verb = "starts-with"
	StringStartsWithCI Verb = "starts-with-ci"
	StringEndsWith     Verb = "ends-with"
	StringEndsWithCI   Verb = "ends-with-ci"
	StringIsInteger    Verb = "integer"
	StringIsNumber     Verb = "number"
	StringIsUUID       Verb = "uuid"
	StringIsIPv4       Verb = "ipv4"
	StringIsASCII      Verb = "ascii"
	StringLenGt        Verb = "len-gt"
	StringLenGe        Verb = "len-ge"
	StringLenLt        Verb = "len-lt"
	StringLenLe        Verb = "len-le"
	StringLenEq        Verb = "len-eq"
	StringAdviseQuote  Verb = "advise-quote"
)

// Numeric and semver verbs. The same names are shared by the int, float and
// semver families.
const (
	NumEq       Verb = "eq"
	NumNe       Verb = "ne"
	NumGt       Verb = "gt"
	NumGe       Verb = "ge"
	NumLt       Verb = "lt"
	NumLe       Verb = "le"
	NumInRange  Verb = "in-range"
	NumPositive Verb = "positive"
	NumNegative Verb = "negative"
	NumApproxEq Verb = "approx-eq"
)

// Environment verbs.
const (
	EnvSet     Verb = "set"
	EnvEqualTo Verb = "equal-to"
)

// Network verbs.
const (
	NetOnline   Verb = "online"
	NetPortOpen Verb = "port-open"
)

// System verbs.
const (
	SystemOS            Verb = "os"
	SystemArch          Verb = "arch"
	SystemCommandExists Verb = "command-exists"
	SystemFDTTY         Verb = "fd-tty"
)

// Request is one resolved predicate invocation. Implementations are plain
// values and are never mutated after the resolver builds them.
type Request interface {
	Family() Family
	Predicate() Verb
}

// FileRequest carries a raw, unexpanded path. Other is the second path of
// cross-file predicates. Bytes and Seconds are the operands of the size and
// mtime comparisons.
type FileRequest struct {
	Verb    Verb
	Path    string
	Other   string
	Bytes   uint64
	Seconds uint64
}

// StringRequest carries the subject string and, for binary verbs, the
// operand (second string, needle, prefix, suffix or pattern). N is the
// length operand of the len-* verbs.
type StringRequest struct {
	Verb    Verb
	Value   string
	Operand string
	N       uint64
}

// IntRequest operands: A and B for comparisons; for in-range A is the value
// and B, C the inclusive bounds.
type IntRequest struct {
	Verb    Verb
	A, B, C int64
}

// FloatRequest operands: A and B for comparisons, C is the epsilon of
// approx-eq. For in-range A, B are the inclusive bounds and C the value.
// Source is the family that resolved the request; the int family's sign
// tests accept any number and reuse this shape. Empty means FamilyFloat.
type FloatRequest struct {
	Verb    Verb
	Source  Family
	A, B, C float64
}

// SemverRequest holds two unparsed version strings.
type SemverRequest struct {
	Verb Verb
	A, B string
}

// EnvRequest names an environment variable and, for equal-to, the expected
// value.
type EnvRequest struct {
	Verb  Verb
	Name  string
	Value string
}

// NetRequest describes one outbound TCP probe.
type NetRequest struct {
	Verb    Verb
	Host    string
	Port    uint16
	Timeout time.Duration
}

// SystemRequest carries a platform name, a command name, or a descriptor.
type SystemRequest struct {
	Verb Verb
	Name string
	FD   int
}

func (r FileRequest) Family() Family { return FamilyFile }
func (r StringRequest) Family() Family { return FamilyString }
func (r IntRequest) Family() Family { return FamilyInt }
func (r SemverRequest) Family() Family { return FamilySemver }
func (r EnvRequest) Family() Family { return FamilyEnv }
func (r NetRequest) Family() Family { return FamilyNet }
func (r SystemRequest) Family() Family { return FamilySystem }

func (r FloatRequest) Family() Family {
	if r.Source != "" {
		return r.Source
	}
	return FamilyFloat
}

func (r FileRequest) Predicate() Verb { return r.Verb }
func (r StringRequest) Predicate() Verb { return r.Verb }
func (r IntRequest) Predicate() Verb { return r.Verb }
func (r FloatRequest) Predicate() Verb { return r.Verb }
func (r SemverRequest) Predicate() Verb { return r.Verb }
func (r EnvRequest) Predicate() Verb { return r.Verb }
func (r NetRequest) Predicate() Verb { return r.Verb }
func (r SystemRequest) Predicate() Verb { return r.Verb }

// Describe renders a request as "family verb" for logs.
func Describe(r Request) string {
	return fmt.Sprintf("%s %s", r.Family(), r.Predicate())
}
