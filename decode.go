package jtok

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	"go4.org/mem"

	"jtok/internal/escape"
)

// maxUnsignedLong and maxLong/minLong bound UnsignedLong/Long to the 52/53
// significant bits a double can represent exactly without loss.
const (
	maxUnsignedLong = 1 << 52
	maxLong         = 1 << 52
	minLong         = -(1 << 52)
)

// decode.go implements the value decoders: pure functions from a token's
// raw lexeme to its decoded representation. They assume the lexeme was
// already validated by the scanner and never need to re-check structure,
// only range and, for strings, escape content.

func decodeBool(data mem.RO) bool {
	// the scanner only ever produces this lexeme for "true" or "false".
	return data.At(0) == 't'
}

// decodeDouble decodes a 64-bit float. Overflow to ±Inf and underflow to 0
// are the host's double-conversion semantics, not errors; strconv.ParseFloat
// already returns the correctly rounded ±Inf (alongside ErrRange) or 0 in
// those cases, so only a genuine syntax error is reported.
func decodeDouble(data mem.RO) (float64, error) {
	s := data.StringCopy()
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("invalid double %q: %w", s, err)
	}
	return v, nil
}

// decodeFloat decodes a 32-bit float. See decodeDouble for the
// overflow/underflow handling.
func decodeFloat(data mem.RO) (float32, error) {
	s := data.StringCopy()
	v, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("invalid float %q: %w", s, err)
	}
	return float32(v), nil
}

func decodeUnsignedInt(data mem.RO) (uint32, error) {
	s := data.StringCopy()
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid unsigned int %q: %w", s, err)
	}
	return uint32(v), nil
}

func decodeInt(data mem.RO) (int32, error) {
	s := data.StringCopy()
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid int %q: %w", s, err)
	}
	return int32(v), nil
}

// decodeUnsignedLong decodes an unsigned integer representable without loss
// in a double's 52-bit mantissa: the representable unsigned integer range is
// [0, 2^52].
func decodeUnsignedLong(data mem.RO) (uint64, error) {
	s := data.StringCopy()
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid unsigned long %q: %w", s, err)
	}
	if v > maxUnsignedLong {
		return 0, fmt.Errorf("unsigned long %q does not fit into 52 bits", s)
	}
	return v, nil
}

// decodeLong decodes a signed integer representable without loss alongside
// its sign in a double's mantissa: the representable signed integer range
// is [-2^52, 2^52]. It is only meaningful on 64-bit hosts; see ParsedLong.
func decodeLong(data mem.RO) (int64, error) {
	if bits.UintSize == 32 {
		return 0, fmt.Errorf("64-bit integer parsing is not supported on a 32-bit host")
	}
	s := data.StringCopy()
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid long %q: %w", s, err)
	}
	if v > maxLong || v < minLong {
		return 0, fmt.Errorf("long %q does not fit into 53 bits", s)
	}
	return v, nil
}

// decodeString decodes a String token's lexeme, which still carries its
// surrounding quotes. If the lexeme contains no backslash, the result
// aliases data with the quotes trimmed and requires no allocation.
func decodeString(data mem.RO, escaped bool) (mem.RO, []byte, error) {
	inner := data.SliceFrom(1).SliceTo(data.Len() - 2)
	if !escaped {
		return inner, nil, nil
	}
	dec, err := escape.Unquote(inner)
	if err != nil {
		return mem.RO{}, nil, fmt.Errorf("invalid string escape: %w", err)
	}
	return mem.RO{}, dec, nil
}
