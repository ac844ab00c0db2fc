// Copyright © 2023 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package numparse

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aerth/sinum/ncode"
)

// Kind classifies a parse failure. Kind is an error so it can be the target
// of errors.Is:
//
//	if errors.Is(err, numparse.Overflow) {
//		// ...
//	}
type Kind int

const (
	// MalformedNumber is not a valid integer literal in the expected base
	MalformedNumber Kind = iota + 1
	// Overflow does not fit the target type, or scaling by a prefix overflowed
	Overflow
	// NotAnInteger has more fractional digits than the prefix can hold
	NotAnInteger
	// MissingValueBeforePrefix starts with a prefix symbol
	MissingValueBeforePrefix
	// BelowMinimum is less than the inclusive lower bound
	BelowMinimum
	// ExceedsMaximum is greater than the inclusive upper bound
	ExceedsMaximum
)

var kindNames = map[Kind]string{
	MalformedNumber:          "malformed number",
	Overflow:                 "overflow",
	NotAnInteger:             "not an integer",
	MissingValueBeforePrefix: "missing value before prefix",
	BelowMinimum:             "below minimum",
	ExceedsMaximum:           "exceeds maximum",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) Error() string { return k.String() }

// Error is returned by every parser in this package.
//
// Error() is only the short message, suitable for a flag package to print
// after its own "invalid value" prefix.
type Error struct {
	Kind  Kind
	Input string // the text as given by the caller
	Msg   string
}

var _ error = (*Error)(nil)

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

const (
	msgInvalidDigit = "invalid digit found in string"
	msgEmpty        = "cannot parse integer from empty string"
	msgTooLarge     = "number too large to fit in target type"
	msgTooSmall     = "number too small to fit in target type"
	msgNotInteger   = "not an integer"
	msgNoValue      = "no value found before SI symbol"
)

func newError(k Kind, input, msg string) *Error {
	return &Error{Kind: k, Input: input, Msg: msg}
}

func overflow(input string, negative bool) *Error {
	if negative {
		return newError(Overflow, input, msgTooSmall)
	}
	return newError(Overflow, input, msgTooLarge)
}

// classify an ncode parse failure of digits, which is part of input
func classify(input, digits string, err error) *Error {
	switch {
	case errors.Is(err, strconv.ErrRange):
		return overflow(input, strings.HasPrefix(digits, "-"))
	case errors.Is(err, ncode.ErrZeroLength):
		return newError(MalformedNumber, input, msgEmpty)
	default:
		return newError(MalformedNumber, input, msgInvalidDigit)
	}
}
