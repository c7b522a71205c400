package approxfloat

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

const mantissaMask = (1 << MantissaWidth) - 1

// SignificantMantissa zeroes every mantissa bit of pattern whose place value,
// given the pattern's own exponent, has dropped below ErrorTolerance. Such
// bits cannot move a value across the equality tolerance, so clearing them
// before hashing makes values within tolerance likely to collide.
//
// The threshold is computed per pattern from that pattern's exponent, so two
// equal-comparing values on opposite sides of a power-of-two boundary can
// truncate at different positions and hash apart. Accepted, not fixed.
func SignificantMantissa(pattern uint32) uint32 {
	rawExp := int(pattern>>MantissaWidth&0xff) - ExponentBias
	// Place value of the leading (implicit) mantissa bit, halved as the walk
	// moves to each less significant position.
	scale := math.Exp2(float64(rawExp))
	mantissa := pattern & mantissaMask
	var significant uint32
	for i := 0; i < MantissaWidth; i++ {
		bit := uint32(1) << (MantissaWidth - 1 - i)
		if mantissa&bit != 0 && scale >= float64(ErrorTolerance) {
			significant |= bit
		}
		scale /= 2
	}
	return significant
}

// HashCode derives a hash from the bit pattern rather than the raw value:
// the sign bit (skipped for zero, so 0.0 and -0.0 hash identically), the
// exponent bits unmodified, then the mantissa with insignificant bits
// cleared by SignificantMantissa. Values that compare Equals therefore hash
// identically in the common case, which is what a hash container keyed by
// Float needs — see SignificantMantissa for the case where this breaks.
func (f Float) HashCode() uint64 {
	digest := xxhash.New()
	if f.value != 0.0 {
		writeBit(digest, f.SignBit())
	}
	for _, bit := range f.ExponentBits() {
		writeBit(digest, bit)
	}
	significant := SignificantMantissa(f.Bits())
	for i := 0; i < MantissaWidth; i++ {
		writeBit(digest, significant&(1<<(MantissaWidth-1-i)) != 0)
	}
	return digest.Sum64()
}

// writeBit feeds one bit into the accumulator as a full byte, so that bit
// sequences of different lengths never alias.
func writeBit(digest *xxhash.Digest, bit bool) {
	b := byte(0)
	if bit {
		b = 1
	}
	// the Digest Write never fails
	_, _ = digest.Write([]byte{b})
}
