package approxfloat

import (
	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

// CheckHashContract scans vals pairwise and reports every pair that compares
// equal yet produces different hash codes, one error per offending pair. A
// nil result means the equal-implies-equal-hash contract holds across the
// input; a non-nil result lists the pairs a hash container would silently
// treat as distinct. Quadratic in len(vals), intended for diagnostics and
// tests rather than hot paths.
func CheckHashContract(vals []Float) error {
	var merr *multierror.Error
	for i := 0; i < len(vals); i++ {
		for j := i + 1; j < len(vals); j++ {
			if !vals[i].Equals(vals[j]) {
				continue
			}
			if vals[i].HashCode() != vals[j].HashCode() {
				merr = multierror.Append(merr, xerrors.Errorf(
					"%v (%s) and %v (%s) compare equal but hash apart",
					vals[i].Value(), vals[i].BinaryString(),
					vals[j].Value(), vals[j].BinaryString()))
			}
		}
	}
	return merr.ErrorOrNil()
}
