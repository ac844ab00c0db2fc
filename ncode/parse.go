// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package ncode

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ErrZeroLength is wrapped by a *strconv.NumError when there is nothing to parse
var ErrZeroLength = fmt.Errorf("cannot decode zero length")

// ParseNumber string->~int or ~uint, base 10
func ParseNumber[T constraints.Integer](in string) (T, error) {
	return ParseBase[T](in, 10)
}

// ParseBase string->~int or ~uint
//
// The result is range checked against T, not against int64/uint64, so
// ParseBase[uint8]("256", 10) fails with strconv.ErrRange.
// A single leading '+' is accepted for unsigned types too.
func ParseBase[T constraints.Integer](in string, base int) (T, error) {
	if in == "" {
		return 0, &strconv.NumError{Func: "ParseBase", Num: in, Err: ErrZeroLength}
	}
	if Signed[T]() {
		n, err := strconv.ParseInt(in, base, Bits[T]())
		if err != nil {
			return 0, err
		}
		return T(n), nil
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(in, "+"), base, Bits[T]())
	if err != nil {
		return 0, err
	}
	return T(n), nil
}

// Bits is the size of T in bits
func Bits[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Signed reports whether T can hold negative values
func Signed[T constraints.Integer]() bool {
	var zero T
	return ^zero < 0
}

// MaxOf T
func MaxOf[T constraints.Integer]() T {
	if Signed[T]() {
		return T(1)<<(Bits[T]()-1) - 1
	}
	return ^T(0)
}

// MinOf T (zero for unsigned)
func MinOf[T constraints.Integer]() T {
	if Signed[T]() {
		return ^MaxOf[T]()
	}
	return 0
}
