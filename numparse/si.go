// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package numparse

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aerth/sinum/ncode"
	"golang.org/x/exp/constraints"
)

// Prefix is a metric (SI) multiplier, a power of 1000.
type Prefix int

const (
	Kilo Prefix = iota + 1
	Mega
	Giga
	Tera
	Peta
	Exa
	Zetta
	Yotta
)

const prefixSymbols = "kMGTPEZY"

var prefixNames = [...]string{"kilo", "mega", "giga", "tera", "peta", "exa", "zetta", "yotta"}

// PrefixOf returns the prefix for symbol r. Symbols are case sensitive,
// except that 'K' is accepted for kilo.
func PrefixOf(r rune) (Prefix, bool) {
	if r == 'K' {
		return Kilo, true
	}
	if r >= utf8.RuneSelf {
		return 0, false
	}
	i := strings.IndexByte(prefixSymbols, byte(r))
	if i < 0 {
		return 0, false
	}
	return Prefix(i + 1), true
}

// Symbol is the canonical one letter symbol
func (p Prefix) Symbol() rune { return rune(prefixSymbols[p-1]) }

// Width is the number of decimal digits after the leading 1 of the multiplier,
// which is also how many fractional digits the prefix can carry exactly.
func (p Prefix) Width() int { return 3 * int(p) }

func (p Prefix) String() string {
	if p < Kilo || p > Yotta {
		return "Prefix(" + strconv.Itoa(int(p)) + ")"
	}
	return prefixNames[p-1]
}

// Multiplier returns 10^Width as a T.
//
// Zetta and Yotta never fit a Go integer and always fail with Overflow.
func Multiplier[T constraints.Integer](p Prefix) (T, error) {
	return multiplier[T](p.String(), p)
}

func multiplier[T constraints.Integer](input string, p Prefix) (T, error) {
	return parseDecimal[T](input, "1"+strings.Repeat("0", p.Width()))
}

// findPrefix returns the first prefix symbol in s and its byte offset.
func findPrefix(s string) (Prefix, int, bool) {
	for i, r := range s {
		if p, ok := PrefixOf(r); ok {
			return p, i, true
		}
	}
	return 0, -1, false
}

// SINumber parses a signed or unsigned integer with an optional metric prefix.
//
//	| Symbol | Name  | Value                             |
//	|--------|-------|-----------------------------------|
//	| Y      | yotta | 1_000_000_000_000_000_000_000_000 |
//	| Z      | zetta | 1_000_000_000_000_000_000_000     |
//	| E      | exa   | 1_000_000_000_000_000_000         |
//	| P      | peta  | 1_000_000_000_000_000             |
//	| T      | tera  | 1_000_000_000_000                 |
//	| G      | giga  | 1_000_000_000                     |
//	| M      | mega  | 1_000_000                         |
//	| k      | kilo  | 1_000                             |
//
// The prefix may be used as the decimal separator, or follow a decimal:
//
//	| String | Value     |
//	|--------|-----------|
//	| 3k3    | 3300      |
//	| 3.3k   | 3300      |
//	| 1M     | 1_000_000 |
//
// Underscores are ignored. The result is always exact: a fraction with more
// digits than the prefix can scale fails with NotAnInteger.
func SINumber[T constraints.Integer](s string) (T, error) {
	text := strings.ReplaceAll(s, "_", "")
	p, at, ok := findPrefix(text)
	if !ok {
		return parseDecimal[T](s, text)
	}
	if at == 0 {
		return 0, newError(MissingValueBeforePrefix, s, msgNoValue)
	}
	// prefix symbols are all one byte
	head, tail := text[:at], text[at+1:]

	var (
		whole, frac T
		err         error
	)
	switch dot := strings.IndexByte(head, '.'); {
	case tail != "": // 1k234
		if whole, err = parseDecimal[T](s, head); err != nil {
			return 0, err
		}
		if frac, err = parseFraction[T](s, tail, p); err != nil {
			return 0, err
		}
	case dot >= 0: // 1.234k
		if frac, err = parseFraction[T](s, head[dot+1:], p); err != nil {
			return 0, err
		}
		if whole, err = parseDecimal[T](s, head[:dot]); err != nil {
			return 0, err
		}
	default: // 1k
		if whole, err = parseDecimal[T](s, head); err != nil {
			return 0, err
		}
	}

	mult, err := multiplier[T](s, p)
	if err != nil {
		return 0, err
	}
	scaled, ok := ncode.CheckedMul(whole, mult)
	if !ok {
		return 0, overflow(s, whole < 0)
	}
	if scaled >= 0 {
		n, ok := ncode.CheckedAdd(scaled, frac)
		if !ok {
			return 0, overflow(s, false)
		}
		return n, nil
	}
	n, ok := ncode.CheckedSub(scaled, frac)
	if !ok {
		return 0, overflow(s, true)
	}
	return n, nil
}

// parseFraction right pads digits with zeros to the prefix width, so "2"
// after a kilo is 200.
func parseFraction[T constraints.Integer](input, digits string, p Prefix) (T, error) {
	if utf8.RuneCountInString(digits) > p.Width() {
		return 0, newError(NotAnInteger, input, msgNotInteger)
	}
	if strings.IndexFunc(digits, notDigit) >= 0 {
		return 0, newError(MalformedNumber, input, msgInvalidDigit)
	}
	return parseDecimal[T](input, digits+strings.Repeat("0", p.Width()-len(digits)))
}

func notDigit(r rune) bool { return r < '0' || r > '9' }

// SINumberRange is SINumber followed by CheckRange.
//
//	func kilo(s string) (uint32, error) {
//		return numparse.SINumberRange[uint32](s, 1_000, 999_999)
//	}
func SINumberRange[T constraints.Integer](s string, min, max T) (T, error) {
	mustBounds(min, max)
	v, err := SINumber[T](s)
	if err != nil {
		return 0, err
	}
	return checkRange(v, min, max)
}
