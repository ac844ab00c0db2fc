package flagpkg

import (
	"flag"
	"fmt"
	"strconv"
)

// InverseBoolVar defines a flag that inverts a bool value.
//
// For example, "--no-foo" would set foo to false.
//
// Using --no-foo=false would set to true.
//
// Omitting flag does not change the value at all.
//
// If multiple flag.BoolVar and InverseBoolVar are used, the last one (on cmdline) wins.
func InverseBoolVar(p *bool, name string, value bool, usage string) {
	InverseBool(flag.CommandLine, p, name, value, usage)
}

// InverseBool is InverseBoolVar for any FlagSet
func InverseBool(fs *flag.FlagSet, p *bool, name string, value bool, usage string) {
	fs.Var(newInverseBoolValue(value, p), name, usage)
}

// -- inversebool  Value
// mostly from https://go.dev/src/flag/flag.go
// except: we invert the value below, in Set
type inverseboolValue bool

func newInverseBoolValue(val bool, p *bool) *inverseboolValue {
	*p = val
	return (*inverseboolValue)(p)
}

func (b *inverseboolValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid bool value: %w", err)
	}
	*b = inverseboolValue(!v) // invert value
	return nil
}

func (b *inverseboolValue) Get() any { return bool(*b) }

// String shows the flag's own sense, so a default of true reads as false
func (b *inverseboolValue) String() string {
	if b == nil {
		return "false"
	}
	return strconv.FormatBool(!bool(*b))
}

func (b *inverseboolValue) IsBoolFlag() bool { return true }
