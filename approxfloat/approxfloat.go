// Package approxfloat wraps a single-precision float in a value type whose
// equality is tolerance-based rather than bit-exact, paired with a hash code
// derived from the IEEE-754 bit layout so that values within tolerance
// usually, but not always, land in the same bucket of a hash container.
//
// The pairing is deliberately imperfect: equality is not transitive, and two
// values straddling a power-of-two exponent boundary can compare equal while
// hashing apart. Both behaviors are documented and kept, not fixed. NaN,
// infinities and subnormals take the same bit path with no special casing;
// NaN therefore equals nothing, including itself.
package approxfloat

import (
	"math"
	"strings"

	"github.com/floatset/go-approx-float32/util"
	"golang.org/x/xerrors"
)

// ErrorTolerance is the maximum absolute difference between two values that
// still compare equal. It also sets the mantissa truncation point for hashing.
const ErrorTolerance float32 = 0.00001

// Fixed by the IEEE-754 single-precision format.
const (
	Width         = 32
	ExponentWidth = 8
	ExponentBias  = 127
	MantissaWidth = 23
)

// Float is an immutable float32 wrapper. All bit views are recomputed from
// the canonical bit pattern on every call; nothing is cached.
type Float struct {
	value float32
}

// New wraps val. Total, no error conditions.
func New(val float32) Float {
	return Float{value: val}
}

// Value returns the wrapped float32.
func (f Float) Value() float32 {
	return f.value
}

// Bits returns the IEEE-754 bit pattern of the wrapped value.
func (f Float) Bits() uint32 {
	return math.Float32bits(f.value)
}

// SignBit reports whether the most significant bit of the pattern is set.
func (f Float) SignBit() bool {
	return f.Bits()&(1<<(Width-1)) != 0
}

// ExponentBits returns the 8 bits following the sign bit, most significant
// first.
func (f Float) ExponentBits() [ExponentWidth]bool {
	bits := f.Bits()
	selector := uint32(1) << (Width - 1 - 1)
	var exponent [ExponentWidth]bool
	for i := range exponent {
		exponent[i] = bits&selector != 0
		selector >>= 1
	}
	return exponent
}

// MantissaBits returns the trailing 23 bits, most significant first. Together
// with SignBit and ExponentBits it partitions the 32-bit pattern exactly.
func (f Float) MantissaBits() [MantissaWidth]bool {
	bits := f.Bits()
	selector := uint32(1) << (Width - 1 - 1 - ExponentWidth)
	var mantissa [MantissaWidth]bool
	for i := range mantissa {
		mantissa[i] = bits&selector != 0
		selector >>= 1
	}
	return mantissa
}

// Equals reports whether f and other are within ErrorTolerance of each other.
// Symmetric and, for non-NaN values, reflexive. It is NOT transitive: a chain
// of values each within tolerance of the next can span more than the
// tolerance end to end.
func (f Float) Equals(other Float) bool {
	return util.Abs(f.value-other.value) <= ErrorTolerance
}

// BinaryString renders the bit pattern as "0b" followed by the sign bit, the
// 8 exponent bits and the 23 mantissa bits. Diagnostic only.
func (f Float) BinaryString() string {
	bitChar := func(bit bool) byte {
		if bit {
			return '1'
		}
		return '0'
	}
	var sb strings.Builder
	sb.Grow(2 + Width)
	sb.WriteString("0b")
	sb.WriteByte(bitChar(f.SignBit()))
	for _, bit := range f.ExponentBits() {
		sb.WriteByte(bitChar(bit))
	}
	for _, bit := range f.MantissaBits() {
		sb.WriteByte(bitChar(bit))
	}
	return sb.String()
}

// ParseBinary is the inverse of BinaryString: it reads a "0b"-prefixed string
// of exactly 32 '0'/'1' characters back into a Float.
func ParseBinary(s string) (Float, error) {
	if !strings.HasPrefix(s, "0b") {
		return Float{}, xerrors.Errorf("missing 0b prefix in %q", s)
	}
	body := s[2:]
	if len(body) != Width {
		return Float{}, xerrors.Errorf("expected %d bits, got %d", Width, len(body))
	}
	var bits uint32
	for i := 0; i < Width; i++ {
		switch body[i] {
		case '1':
			bits |= 1 << (Width - 1 - i)
		case '0':
		default:
			return Float{}, xerrors.Errorf("bit %d is %q, expected '0' or '1'", i, body[i])
		}
	}
	return New(math.Float32frombits(bits)), nil
}
