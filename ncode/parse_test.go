package ncode

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

type celsius int16

func TestBounds(t *testing.T) {
	if MaxOf[int8]() != math.MaxInt8 || MinOf[int8]() != math.MinInt8 {
		t.Fatalf("int8 bounds: %d %d", MinOf[int8](), MaxOf[int8]())
	}
	if MaxOf[uint16]() != math.MaxUint16 || MinOf[uint16]() != 0 {
		t.Fatalf("uint16 bounds: %d %d", MinOf[uint16](), MaxOf[uint16]())
	}
	if MaxOf[int64]() != math.MaxInt64 || MinOf[int64]() != math.MinInt64 {
		t.Fatalf("int64 bounds: %d %d", MinOf[int64](), MaxOf[int64]())
	}
	if MaxOf[uint64]() != math.MaxUint64 {
		t.Fatalf("uint64 max: %d", MaxOf[uint64]())
	}
	if MaxOf[celsius]() != math.MaxInt16 || Bits[celsius]() != 16 || !Signed[celsius]() {
		t.Fatalf("named type: max %d bits %d", MaxOf[celsius](), Bits[celsius]())
	}
	if Signed[uint32]() || !Signed[int32]() {
		t.Fatalf("signedness")
	}
}

func TestParseBase(t *testing.T) {
	if n, err := ParseNumber[uint8]("255"); err != nil || n != 255 {
		t.Fatalf("255: %d %v", n, err)
	}
	if n, err := ParseNumber[uint8]("+7"); err != nil || n != 7 {
		t.Fatalf("+7: %d %v", n, err)
	}
	if n, err := ParseNumber[int8]("-128"); err != nil || n != -128 {
		t.Fatalf("-128: %d %v", n, err)
	}
	if n, err := ParseBase[uint32]("ff", 16); err != nil || n != 255 {
		t.Fatalf("ff: %d %v", n, err)
	}
	if n, err := ParseBase[uint8]("1010", 2); err != nil || n != 10 {
		t.Fatalf("1010: %d %v", n, err)
	}
	if _, err := ParseNumber[uint8]("256"); !errors.Is(err, strconv.ErrRange) {
		t.Fatalf("256: want ErrRange, got %v", err)
	}
	if _, err := ParseNumber[int8]("-129"); !errors.Is(err, strconv.ErrRange) {
		t.Fatalf("-129: want ErrRange, got %v", err)
	}
	if _, err := ParseNumber[uint8]("-1"); !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("-1: want ErrSyntax, got %v", err)
	}
	if _, err := ParseNumber[int]("1_000"); !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("1_000: want ErrSyntax, got %v", err)
	}
	if _, err := ParseNumber[int](""); !errors.Is(err, ErrZeroLength) {
		t.Fatalf("empty: want ErrZeroLength, got %v", err)
	}
}

func TestChecked(t *testing.T) {
	if _, ok := CheckedAdd[uint8](200, 56); ok {
		t.Errorf("200+56 fits uint8?")
	}
	if n, ok := CheckedAdd[uint8](200, 55); !ok || n != 255 {
		t.Errorf("200+55: %d %v", n, ok)
	}
	if _, ok := CheckedAdd[int8](-100, -29); ok {
		t.Errorf("-100+-29 fits int8?")
	}
	if _, ok := CheckedSub[uint8](1, 2); ok {
		t.Errorf("1-2 fits uint8?")
	}
	if n, ok := CheckedSub[int8](-100, 28); !ok || n != -128 {
		t.Errorf("-100-28: %d %v", n, ok)
	}
	if _, ok := CheckedSub[int8](-100, 29); ok {
		t.Errorf("-100-29 fits int8?")
	}
	if _, ok := CheckedSub[int8](100, -28); ok {
		t.Errorf("100+28 fits int8?")
	}
	if n, ok := CheckedMul[uint16](65, 1000); !ok || n != 65000 {
		t.Errorf("65*1000: %d %v", n, ok)
	}
	if _, ok := CheckedMul[uint16](66, 1000); ok {
		t.Errorf("66*1000 fits uint16?")
	}
	if n, ok := CheckedMul[int16](-32, 1000); !ok || n != -32000 {
		t.Errorf("-32*1000: %d %v", n, ok)
	}
	if _, ok := CheckedMul[int16](-33, 1000); ok {
		t.Errorf("-33*1000 fits int16?")
	}
	if _, ok := CheckedMul[int8](-128, -1); ok {
		t.Errorf("-128*-1 fits int8?")
	}
	if _, ok := CheckedMul[int8](-1, -128); ok {
		t.Errorf("-1*-128 fits int8?")
	}
	if n, ok := CheckedMul[int64](0, math.MinInt64); !ok || n != 0 {
		t.Errorf("0*min: %d %v", n, ok)
	}
}
