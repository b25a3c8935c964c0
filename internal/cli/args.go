package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type operandKind string

const (
	kindString   operandKind = "string"
	kindPath     operandKind = "path"
	kindPattern  operandKind = "pattern"
	kindVersion  operandKind = "version"
	kindName     operandKind = "name"
	kindInt      operandKind = "integer"
	kindFloat    operandKind = "float"
	kindUnsigned operandKind = "unsigned"
	kindPort     operandKind = "port"
	kindFD       operandKind = "fd"
)

type operand struct {
	name string
	kind operandKind
}

func op(name string, kind operandKind) operand {
	return operand{name: name, kind: kind}
}

// operands converts positional arguments by index. The first conversion
// failure is kept and later getters return zero values, so a builder can
// read every operand unconditionally and check err once.
type operands struct {
	decl    []operand
	values  []string
	timeout time.Duration
	err     error
}

func (o *operands) fail(i int, want string, err error) {
	if o.err != nil {
		return
	}
	reason := want
	if errors.Is(err, strconv.ErrRange) {
		reason = want + " in range"
	}
	o.err = fmt.Errorf("invalid %s %q: expected %s", o.decl[i].name, o.values[i], reason)
}

func (o *operands) str(i int) string { return o.values[i] }

func (o *operands) int64(i int) int64 {
	v, err := strconv.ParseInt(o.values[i], 10, 64)
	if err != nil {
		o.fail(i, "a 64-bit integer", err)
	}
	return v
}

func (o *operands) float64(i int) float64 {
	v, err := strconv.ParseFloat(o.values[i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		o.fail(i, "a number", err)
	}
	return v
}

func (o *operands) uint64(i int) uint64 {
	v, err := strconv.ParseUint(o.values[i], 10, 64)
	if err != nil {
		o.fail(i, "a non-negative integer", err)
	}
	return v
}

func (o *operands) port(i int) uint16 {
	v, err := strconv.ParseUint(o.values[i], 10, 16)
	if err != nil {
		o.fail(i, "a port number (0-65535)", err)
	}
	return uint16(v)
}

func (o *operands) fd(i int) int {
	v, err := strconv.ParseInt(o.values[i], 10, 32)
	if err != nil {
		o.fail(i, "a file descriptor number", err)
	}
	return int(v)
}

// exactOperands is cobra.ExactArgs with a message naming the operands.
func exactOperands(decl []operand) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == len(decl) {
			return nil
		}
		if len(decl) == 0 {
			return usageErrorf(cmd, "%s takes no arguments, got %d", cmd.CommandPath(), len(args))
		}
		names := make([]string, len(decl))
		for i, s := range decl {
			names[i] = "<" + s.name + ">"
		}
		return usageErrorf(cmd, "%s expects %d argument(s) %s, got %d",
			cmd.CommandPath(), len(decl), strings.Join(names, " "), len(args))
	}
}
