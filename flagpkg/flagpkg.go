// flagpkg package provides some additional flag functions. (numeric flags with SI prefixes, bounds, hex; InverseBoolVar)
package flagpkg

import (
	"flag"
	"fmt"

	"github.com/aerth/sinum/numparse"
	"golang.org/x/exp/constraints"
)

// Value is a flag.Value that converts its argument with a parse function,
// such as numparse.SINumber[uint32].
//
// Parse errors are returned as-is, so the flag package prints for example:
//
//	invalid value "1k2345" for flag -resistance: not an integer
type Value[T any] struct {
	p     *T
	parse func(string) (T, error)
}

var _ flag.Getter = (*Value[int])(nil)

// NewValue sets *p to value and returns a Value storing into p
func NewValue[T any](p *T, value T, parse func(string) (T, error)) *Value[T] {
	*p = value
	return &Value[T]{p: p, parse: parse}
}

// Set is only called by the flag package. *p is untouched on error.
func (v *Value[T]) Set(s string) error {
	n, err := v.parse(s)
	if err != nil {
		return err
	}
	*v.p = n
	return nil
}

func (v *Value[T]) Get() any {
	if v.p == nil {
		var zero T
		return zero
	}
	return *v.p
}

// String may be called on a zero Value (flag does, to find default values)
func (v *Value[T]) String() string {
	if v == nil || v.p == nil {
		return ""
	}
	return fmt.Sprint(*v.p)
}

// Func defines a flag on fs that is converted with parse.
func Func[T any](fs *flag.FlagSet, p *T, name string, value T, usage string, parse func(string) (T, error)) {
	fs.Var(NewValue(p, value, parse), name, usage)
}

// SINumberVar defines an integer flag that accepts metric prefixes, eg: -resistance 4k7
func SINumberVar[T constraints.Integer](p *T, name string, value T, usage string) {
	Func(flag.CommandLine, p, name, value, usage, numparse.SINumber[T])
}

// SINumberRangeVar is SINumberVar limited to min..max, inclusive
func SINumberRangeVar[T constraints.Integer](p *T, name string, value, min, max T, usage string) {
	Func(flag.CommandLine, p, name, value, usage, func(s string) (T, error) {
		return numparse.SINumberRange(s, min, max)
	})
}

// NumberRangeVar defines a base 10 integer flag limited to min..max, inclusive
func NumberRangeVar[T constraints.Integer](p *T, name string, value, min, max T, usage string) {
	Func(flag.CommandLine, p, name, value, usage, func(s string) (T, error) {
		return numparse.NumberRange(s, min, max)
	})
}

// MaybeHexVar defines an unsigned flag that may be given in hex, eg: -addr 0x1F
func MaybeHexVar[T constraints.Unsigned](p *T, name string, value T, usage string) {
	Func(flag.CommandLine, p, name, value, usage, numparse.MaybeHex[T])
}

// MaybeHexRangeVar is MaybeHexVar limited to min..max, inclusive
func MaybeHexRangeVar[T constraints.Unsigned](p *T, name string, value, min, max T, usage string) {
	Func(flag.CommandLine, p, name, value, usage, func(s string) (T, error) {
		return numparse.MaybeHexRange(s, min, max)
	})
}

// MaybeBinVar defines an unsigned flag that may be given in binary, eg: -mask 0b1010
func MaybeBinVar[T constraints.Unsigned](p *T, name string, value T, usage string) {
	Func(flag.CommandLine, p, name, value, usage, numparse.MaybeBin[T])
}
