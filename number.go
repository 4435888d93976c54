package numtree

import (
	"fmt"
	"math"
)

// Number is a value stored at a tree node. It must be of one of Go's built-in
// integer or floating point types. Dynamic type matters: int(5) and int64(5)
// are different values.
type Number any

// kind tags the dynamic type of a Number. Tags are part of the wire format
// and must never be re-numbered.
type kind uint8

const (
	kindInvalid kind = iota
	kindInt
	kindInt8
	kindInt16
	kindInt32
	kindInt64
	kindUint
	kindUint8
	kindUint16
	kindUint32
	kindUint64
	kindFloat32
	kindFloat64
	kindCount // sentinel
)

func kindOf(v Number) kind {
	switch v.(type) {
	case int:
		return kindInt
	case int8:
		return kindInt8
	case int16:
		return kindInt16
	case int32:
		return kindInt32
	case int64:
		return kindInt64
	case uint:
		return kindUint
	case uint8:
		return kindUint8
	case uint16:
		return kindUint16
	case uint32:
		return kindUint32
	case uint64:
		return kindUint64
	case float32:
		return kindFloat32
	case float64:
		return kindFloat64
	}
	return kindInvalid
}

func (k kind) signed() bool {
	return k >= kindInt && k <= kindInt64
}

// validate checks that v is a usable node value.
func validate(v Number) error {
	if v == nil {
		return fmt.Errorf("%w: nil", ErrInvalidValue)
	}
	if kindOf(v) == kindInvalid {
		return fmt.Errorf("%w: type %T is not numeric", ErrInvalidValue, v)
	}
	return nil
}

// bits returns the raw 64-bit pattern of v. Signed integers are sign-extended,
// floats are returned as their IEEE 754 representation.
func bits(v Number) uint64 {
	switch n := v.(type) {
	case int:
		return uint64(n)
	case int8:
		return uint64(n)
	case int16:
		return uint64(n)
	case int32:
		return uint64(n)
	case int64:
		return uint64(n)
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	case float32:
		return uint64(math.Float32bits(n))
	case float64:
		return math.Float64bits(n)
	}
	panic(fmt.Sprintf("numtree: bits of non-numeric value %T", v))
}

// fromBits is the inverse of bits.
func fromBits(k kind, b uint64) (Number, error) {
	switch k {
	case kindInt:
		return int(int64(b)), nil
	case kindInt8:
		return int8(int64(b)), nil
	case kindInt16:
		return int16(int64(b)), nil
	case kindInt32:
		return int32(int64(b)), nil
	case kindInt64:
		return int64(b), nil
	case kindUint:
		return uint(b), nil
	case kindUint8:
		return uint8(b), nil
	case kindUint16:
		return uint16(b), nil
	case kindUint32:
		return uint32(b), nil
	case kindUint64:
		return b, nil
	case kindFloat32:
		return math.Float32frombits(uint32(b)), nil
	case kindFloat64:
		return math.Float64frombits(b), nil
	}
	return nil, fmt.Errorf("%w: unknown value kind %d", ErrMalformedStream, k)
}

// sameNumber compares two valid numbers by type and bit pattern.
func sameNumber(a, b Number) bool {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb || ka == kindInvalid {
		return false
	}
	return bits(a) == bits(b)
}
