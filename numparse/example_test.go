package numparse_test

import (
	"errors"
	"fmt"

	"github.com/aerth/sinum/numparse"
)

func ExampleSINumber() {
	for _, s := range []string{"1k", "3k3", "3.3k", "1M1", "1k2345"} {
		v, err := numparse.SINumber[uint32](s)
		fmt.Println(s, v, err)
	}
	// Output:
	// 1k 1000 <nil>
	// 3k3 3300 <nil>
	// 3.3k 3300 <nil>
	// 1M1 1100000 <nil>
	// 1k2345 0 not an integer
}

func ExampleSINumberRange() {
	frequency := func(s string) (uint32, error) {
		return numparse.SINumberRange[uint32](s, 800, 3_333_000)
	}
	fmt.Println(frequency("3M333"))
	fmt.Println(frequency("4M"))
	// Output:
	// 3333000 <nil>
	// 0 exceeds maximum of 3333000
}

func ExampleNumberRange() {
	_, err := numparse.NumberRange[uint8]("100", 0, 99)
	fmt.Println(err, errors.Is(err, numparse.ExceedsMaximum))
	// Output: exceeds maximum of 99 true
}

func ExampleMaybeHex() {
	fmt.Println(numparse.MaybeHex[uint32]("0x10"))
	fmt.Println(numparse.MaybeHex[uint32]("10"))
	// Output:
	// 16 <nil>
	// 10 <nil>
}
