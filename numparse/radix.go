// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package numparse

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// MaybeHex parses an unsigned integer as hexadecimal if it starts with "0x"
// (any case), otherwise as decimal.
func MaybeHex[T constraints.Unsigned](s string) (T, error) {
	return maybeRadix[T](s, "0x", 16)
}

// MaybeHexRange is MaybeHex followed by CheckRange.
func MaybeHexRange[T constraints.Unsigned](s string, min, max T) (T, error) {
	mustBounds(min, max)
	v, err := MaybeHex[T](s)
	if err != nil {
		return 0, err
	}
	return checkRange(v, min, max)
}

// MaybeBin parses an unsigned integer as binary if it starts with "0b"
// (any case), otherwise as decimal.
func MaybeBin[T constraints.Unsigned](s string) (T, error) {
	return maybeRadix[T](s, "0b", 2)
}

// MaybeBinRange is MaybeBin followed by CheckRange.
func MaybeBinRange[T constraints.Unsigned](s string, min, max T) (T, error) {
	mustBounds(min, max)
	v, err := MaybeBin[T](s)
	if err != nil {
		return 0, err
	}
	return checkRange(v, min, max)
}

func maybeRadix[T constraints.Unsigned](s, prefix string, base int) (T, error) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return parseBase[T](s, s[len(prefix):], base)
	}
	return parseDecimal[T](s, s)
}
