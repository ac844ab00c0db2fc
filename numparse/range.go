// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package numparse

import (
	"fmt"

	"github.com/aerth/sinum/ncode"
	"golang.org/x/exp/constraints"
)

// CheckRange returns v if min <= v <= max.
//
// CheckRange panics if min > max: that is a misconfigured caller, not bad input.
func CheckRange[T constraints.Ordered](v, min, max T) (T, error) {
	mustBounds(min, max)
	return checkRange(v, min, max)
}

func checkRange[T constraints.Ordered](v, min, max T) (T, error) {
	var zero T
	if v > max {
		return zero, newError(ExceedsMaximum, fmt.Sprint(v), fmt.Sprintf("exceeds maximum of %v", max))
	}
	if v < min {
		return zero, newError(BelowMinimum, fmt.Sprint(v), fmt.Sprintf("less than minimum of %v", min))
	}
	return v, nil
}

func mustBounds[T constraints.Ordered](min, max T) {
	if min > max {
		panic(fmt.Sprintf("numparse: minimum of %v exceeds maximum of %v", min, max))
	}
}

// NumberRange parses a base 10 signed or unsigned integer and checks that
// it is within min and max, inclusive.
//
//	func lessThan100(s string) (uint8, error) {
//		return numparse.NumberRange[uint8](s, 0, 99)
//	}
//
// Failures read like "invalid digit found in string",
// "number too large to fit in target type" or "exceeds maximum of 99".
func NumberRange[T constraints.Integer](s string, min, max T) (T, error) {
	mustBounds(min, max)
	v, err := parseDecimal[T](s, s)
	if err != nil {
		return 0, err
	}
	return checkRange(v, min, max)
}

// parseDecimal digits, which is (part of) input, as base 10
func parseDecimal[T constraints.Integer](input, digits string) (T, error) {
	return parseBase[T](input, digits, 10)
}

func parseBase[T constraints.Integer](input, digits string, base int) (T, error) {
	n, err := ncode.ParseBase[T](digits, base)
	if err != nil {
		return 0, classify(input, digits, err)
	}
	return n, nil
}
